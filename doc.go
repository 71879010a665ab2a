// Package tm1637 controls a four digit seven-segment LED module driven by a
// TM1637 controller.
//
// The TM1637 is an LED driver with a two-wire serial interface. Most modules
// sold with it have four digits with either a dot per digit or a colon in the
// middle. This driver bit-bangs the interface on two GPIO lines.
//
// # Display Characteristics
//
// - 4 digits of 7 segments plus a dot (or colon)
// - 8 brightness levels (0-7) and an on/off switch
// - Numbers in decimal, hexadecimal or any base 2-36 (glyphs up to F)
// - Negative numbers shown with a minus sign
//
// # Hardware Connection
//
// Connect the module to any two GPIOs. The lines are open-drain: the driver
// only ever pulls a line low or releases it, the module's pull-ups (or the
// internal pull-ups of the GPIOs) set the high level.
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 3.3V (or 5V depending on module)
//	CLK        → GPIO (any available pin)
//	DIO        → GPIO (any available pin)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/tm1637"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Create device
//		dev, _ := tm1637.NewGPIO(gpioreg.ByName("GPIO4"), gpioreg.ByName("GPIO5"), nil)
//		defer dev.Halt()
//
//		// Show 12:34
//		dev.ShowNumberDecEx(1234, 0b01000000, true, 4, 0)
//	}
//
// # Other Platforms
//
// New accepts any Port implementation, the set of pin direction, pin read
// and delay capabilities the protocol is built from. Several devices may
// share one Port as long as they use distinct pins. NopPort is a Port that
// does nothing, useful for tests and dry runs.
//
//	dev, _ := tm1637.New(port, clkID, dioID, &tm1637.Opts{BitDelay: 50})
//
// # Brightness
//
// SetBrightness only updates the device state. The controller receives it
// with the next display update:
//
//	dev.SetBrightness(2, true)
//	dev.ShowNumberDec(42, false)
//
// # Partial Updates
//
// The *Ex variants write length digits starting at position pos (0 is the
// leftmost digit); other digits keep their content:
//
//	// Minutes on the two rightmost digits
//	dev.ShowNumberDecEx(7, 0, true, 2, 2)
//
// # Acknowledgment
//
// The controller acknowledges every byte. The driver samples the
// acknowledgment but does not act on it: a disconnected module makes updates
// silently invisible, never fail.
//
// # Datasheet
//
// https://www.mcielectronics.cl/website_MCI/static/documents/Datasheet_TM1637.pdf
//
// # Compatibility with periph.io
//
// Dev implements conn.Resource.
package tm1637
