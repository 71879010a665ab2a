package tm1637

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// PinID identifies a line within a Port.
type PinID int

// Direction is the electrical direction of a line.
//
// The bus is open-drain: an Output line is driven low, an Input line is
// released and pulled high.
type Direction bool

const (
	Input  Direction = false
	Output Direction = true
)

func (d Direction) String() string {
	if d == Output {
		return "Out"
	}
	return "In"
}

// Port is the set of platform capabilities the driver needs.
//
// A Port may be shared by any number of devices using distinct pin pairs.
type Port interface {
	// SetDirection switches pin to d.
	SetDirection(pin PinID, d Direction) error
	// Write sets the output level of pin. It is only used by Dev.Init to
	// force the idle level before a line is released.
	Write(pin PinID, l gpio.Level) error
	// Read samples pin.
	Read(pin PinID) gpio.Level
	// Delay blocks for units delay units.
	Delay(units int)
}

// NopPort is a Port that does nothing. Read always returns gpio.High, as an
// unconnected pulled-up line would, so no byte is ever acknowledged.
type NopPort struct{}

func (NopPort) SetDirection(PinID, Direction) error { return nil }
func (NopPort) Write(PinID, gpio.Level) error { return nil }
func (NopPort) Read(PinID) gpio.Level { return gpio.High }
func (NopPort) Delay(int) {}

// PinPort is a Port over periph.io GPIO pins. PinIDs are the pin numbers as
// returned by gpio.PinIO.Number.
type PinPort struct {
	// Unit is the duration of one delay unit (default: 1µs).
	Unit time.Duration

	pins map[PinID]gpio.PinIO
}

// NewPinPort returns a PinPort serving pins.
func NewPinPort(pins ...gpio.PinIO) (*PinPort, error) {
	p := &PinPort{Unit: time.Microsecond, pins: make(map[PinID]gpio.PinIO, len(pins))}
	for _, pin := range pins {
		if err := p.Add(pin); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add makes pin available through the port. Adding the same pin twice is a
// no-op.
func (p *PinPort) Add(pin gpio.PinIO) error {
	if pin == nil {
		return errors.New("tm1637: nil pin")
	}
	if p.pins == nil {
		p.pins = map[PinID]gpio.PinIO{}
	}
	id := PinID(pin.Number())
	if old, ok := p.pins[id]; ok && old != pin {
		return fmt.Errorf("tm1637: pin number %d used by both %s and %s", id, old, pin)
	}
	p.pins[id] = pin
	return nil
}

func (p *PinPort) pin(id PinID) (gpio.PinIO, error) {
	pin, ok := p.pins[id]
	if !ok {
		return nil, fmt.Errorf("tm1637: unknown pin %d", id)
	}
	return pin, nil
}

// SetDirection implements Port.
func (p *PinPort) SetDirection(id PinID, d Direction) error {
	pin, err := p.pin(id)
	if err != nil {
		return err
	}
	if d == Output {
		return pin.Out(gpio.Low)
	}
	return pin.In(gpio.PullUp, gpio.NoEdge)
}

// Write implements Port.
func (p *PinPort) Write(id PinID, l gpio.Level) error {
	pin, err := p.pin(id)
	if err != nil {
		return err
	}
	return pin.Out(l)
}

// Read implements Port. Unknown pins read as gpio.High.
func (p *PinPort) Read(id PinID) gpio.Level {
	pin, err := p.pin(id)
	if err != nil {
		return gpio.High
	}
	return pin.Read()
}

// Delay implements Port.
func (p *PinPort) Delay(units int) {
	if units > 0 {
		time.Sleep(time.Duration(units) * p.Unit)
	}
}

func (p *PinPort) String() string {
	return fmt.Sprintf("tm1637.PinPort{%d pins, %s}", len(p.pins), p.Unit)
}
