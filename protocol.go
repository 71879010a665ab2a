package tm1637

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Controller commands.
const (
	cmdData    byte = 0x40 // Write data, automatic address increment, normal mode
	cmdAddress byte = 0xC0 // Set address, OR'ed with position 0-3
	cmdControl byte = 0x80 // Display control, OR'ed with the brightness nibble
)

// line performs the transitions of one exchange on the bus. The first Port
// error is kept and every following transition is skipped.
type line struct {
	d   *Dev
	err error
}

func (l *line) set(pin PinID, dir Direction) {
	if l.err != nil {
		return
	}
	if err := l.d.port.SetDirection(pin, dir); err != nil {
		l.err = fmt.Errorf("tm1637: failed to set pin %d %s: %w", pin, dir, err)
	}
}

// bitDelay waits the hold time between transitions.
func (l *line) bitDelay() {
	if l.err != nil {
		return
	}
	l.d.port.Delay(l.d.bitDelay)
}

// start pulls data low while clock is released.
func (l *line) start() {
	l.set(l.d.dio, Output)
	l.bitDelay()
}

// stop releases data while clock is released.
func (l *line) stop() {
	l.set(l.d.dio, Output)
	l.bitDelay()
	l.set(l.d.clk, Input)
	l.bitDelay()
	l.set(l.d.dio, Input)
	l.bitDelay()
}

// writeByte clocks b out LSB first and samples the acknowledgment. ack is
// true when the controller pulled data low.
func (l *line) writeByte(b byte) (ack bool) {
	for i := 0; i < 8; i++ {
		// CLK low
		l.set(l.d.clk, Output)
		l.bitDelay()

		if b&0x01 != 0 {
			l.set(l.d.dio, Input)
		} else {
			l.set(l.d.dio, Output)
		}
		l.bitDelay()

		// CLK high
		l.set(l.d.clk, Input)
		l.bitDelay()
		b >>= 1
	}

	// Hand data over to the controller for the ack bit
	l.set(l.d.clk, Output)
	l.set(l.d.dio, Input)
	l.bitDelay()

	l.set(l.d.clk, Input)
	l.bitDelay()
	if l.err != nil {
		return false
	}
	ack = l.d.port.Read(l.d.dio) == gpio.Low
	if ack {
		l.set(l.d.dio, Output)
	}
	l.bitDelay()

	l.set(l.d.clk, Output)
	l.bitDelay()
	return ack
}

// exchange sends bytes bracketed by a start and a stop condition.
// Acknowledgments are ignored, display updates are best effort.
func (l *line) exchange(bytes ...byte) {
	l.start()
	for _, b := range bytes {
		l.writeByte(b)
	}
	l.stop()
}

// sendSegments runs the three exchanges of a display update.
func (d *Dev) sendSegments(segs []byte, pos int) error {
	l := line{d: d}
	l.exchange(cmdData)
	l.exchange(append([]byte{cmdAddress + byte(pos&0x03)}, segs...)...)
	l.exchange(cmdControl + (d.brightness & 0x0f))
	return l.err
}

// sendControl only sends the display control command.
func (d *Dev) sendControl() error {
	l := line{d: d}
	l.exchange(cmdControl + (d.brightness & 0x0f))
	return l.err
}
