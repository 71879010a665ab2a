// Package tm1637 controls a TM1637 seven-segment LED display.
//
// The TM1637 uses a two-wire clock/data protocol that resembles I²C without
// addressing. Both lines are bit-banged as open-drain GPIOs.
//
// See the examples for how to use this package.
package tm1637

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/tm1637/segment"
)

const (
	// DefaultBitDelay is the default hold time between two transitions, in
	// Port delay units.
	DefaultBitDelay = 100
	// MaxBrightness is the brightest level.
	MaxBrightness byte = 7
)

const brightnessOn byte = 0x08

// Opts is the configuration for the TM1637 display.
type Opts struct {
	// Hold time between transitions, in Port delay units (default: 100)
	BitDelay int

	// Brightness level 0-7 (default: 7)
	Brightness byte
	// Off starts with the display switched off
	Off bool
}

// DefaultOpts is used when nil is passed as Opts.
var DefaultOpts = Opts{BitDelay: DefaultBitDelay, Brightness: MaxBrightness}

// Dev is the device handle for a TM1637 display.
type Dev struct {
	port     Port
	clk, dio PinID

	// Level in bits 0-2, on flag in bit 3
	brightness byte
	bitDelay   int
}

var _ conn.Resource = (*Dev)(nil)

// New returns a TM1637 device on the clk and dio lines of port.
//
// The lines are initialized before New returns. opts can be nil to use
// DefaultOpts.
func New(port Port, clk, dio PinID, opts *Opts) (*Dev, error) {
	if port == nil {
		return nil, errors.New("tm1637: nil port")
	}
	if clk == dio {
		return nil, errors.New("tm1637: clk and dio must be different pins")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.BitDelay < 0 {
		return nil, errors.New("tm1637: bit delay must not be negative")
	}
	if opts.Brightness > MaxBrightness {
		return nil, errors.New("tm1637: brightness must be between 0 and 7")
	}

	d := &Dev{
		port:     port,
		clk:      clk,
		dio:      dio,
		bitDelay: opts.BitDelay,
	}
	if d.bitDelay == 0 {
		d.bitDelay = DefaultBitDelay
	}
	d.SetBrightness(opts.Brightness, !opts.Off)

	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewGPIO returns a TM1637 device bit-banged on two periph.io pins.
//
// The pins must be able to switch between input with pull-up and output.
// Delay units are microseconds.
func NewGPIO(clk, dio gpio.PinIO, opts *Opts) (*Dev, error) {
	p, err := NewPinPort(clk, dio)
	if err != nil {
		return nil, err
	}
	return New(p, PinID(clk.Number()), PinID(dio.Number()), opts)
}

// Init drives both lines low, then releases them so that the bus is idle.
// It can be called any number of times.
func (d *Dev) Init() error {
	for _, pin := range [...]PinID{d.clk, d.dio} {
		if err := d.port.Write(pin, gpio.Low); err != nil {
			return fmt.Errorf("tm1637: failed to pull pin %d low: %w", pin, err)
		}
	}
	for _, pin := range [...]PinID{d.clk, d.dio} {
		if err := d.port.SetDirection(pin, Input); err != nil {
			return fmt.Errorf("tm1637: failed to release pin %d: %w", pin, err)
		}
	}
	return nil
}

// SetBrightness sets the brightness level (0-7, higher bits are ignored)
// and whether the display is lit.
//
// The setting takes effect with the next update of the displayed data.
func (d *Dev) SetBrightness(level byte, on bool) {
	d.brightness = level & MaxBrightness
	if on {
		d.brightness |= brightnessOn
	}
}

// Brightness returns the current brightness level and on flag.
func (d *Dev) Brightness() (level byte, on bool) {
	return d.brightness & MaxBrightness, d.brightness&brightnessOn != 0
}

// SetSegments displays raw glyphs. segs[0] goes to position pos (0 is the
// leftmost digit), the other positions are not affected.
func (d *Dev) SetSegments(segs []byte, pos int) error {
	if pos < 0 || pos >= segment.Digits {
		return errors.New("tm1637: position must be between 0 and 3")
	}
	if len(segs) == 0 || pos+len(segs) > segment.Digits {
		return errors.New("tm1637: segments do not fit the display")
	}
	return d.sendSegments(segs, pos)
}

// Write displays raw glyphs starting at the leftmost position.
// At most 4 bytes can be written.
func (d *Dev) Write(segs []byte) (int, error) {
	if err := d.SetSegments(segs, 0); err != nil {
		return 0, err
	}
	return len(segs), nil
}

// Clear blanks all four digits.
func (d *Dev) Clear() error {
	var f segment.Frame
	return d.SetSegments(f[:], 0)
}

// ShowNumberDec displays num in decimal on all four digits.
//
// Negative numbers get a minus sign left of the first digit when leadingZero
// is false.
func (d *Dev) ShowNumberDec(num int, leadingZero bool) error {
	return d.ShowNumberBaseEx(num, 10, 0, leadingZero, segment.Digits, 0)
}

// ShowNumberDecEx displays num in decimal with dot control on length digits
// starting at position pos.
//
// dots is a bitmask, bit 7 lights the dot (or colon) of position 0, bit 6
// the one of position 1 and so on. See segment.ShowDots.
//
// The caller must ensure that num fits in length digits.
func (d *Dev) ShowNumberDecEx(num int, dots byte, leadingZero bool, length, pos int) error {
	return d.ShowNumberBaseEx(num, 10, dots, leadingZero, length, pos)
}

// ShowNumberHex displays num in hexadecimal on all four digits.
func (d *Dev) ShowNumberHex(num uint16, dots byte, leadingZero bool) error {
	return d.ShowNumberBaseEx(int(num), 16, dots, leadingZero, segment.Digits, 0)
}

// ShowNumberHexEx displays num in hexadecimal on length digits starting at
// position pos.
func (d *Dev) ShowNumberHexEx(num uint16, dots byte, leadingZero bool, length, pos int) error {
	return d.ShowNumberBaseEx(int(num), 16, dots, leadingZero, length, pos)
}

// ShowNumberBase displays num in base 2-36 on all four digits.
func (d *Dev) ShowNumberBase(num, base int, dots byte, leadingZero bool) error {
	return d.ShowNumberBaseEx(num, base, dots, leadingZero, segment.Digits, 0)
}

// ShowNumberBaseEx displays num in base 2-36 on length digits starting at
// position pos. Only digits 0-F have a glyph.
func (d *Dev) ShowNumberBaseEx(num, base int, dots byte, leadingZero bool, length, pos int) error {
	f, err := segment.Encode(num, base, dots, leadingZero, length)
	if err != nil {
		return fmt.Errorf("tm1637: %w", err)
	}
	return d.SetSegments(f[:length], pos)
}

// EncodeDigit returns the glyph of digit 0-15, see segment.EncodeDigit.
func EncodeDigit(digit byte) byte {
	return segment.EncodeDigit(digit)
}

// Halt switches the display off. The current data is kept; the display
// comes back with the next update after SetBrightness(level, true).
func (d *Dev) Halt() error {
	d.brightness &^= brightnessOn
	return d.sendControl()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm1637.Dev{clk:%d, dio:%d}", d.clk, d.dio)
}
