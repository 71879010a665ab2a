package segment

import (
	"errors"
	"strings"
)

// Segment bits of a glyph byte.
const (
	SegA byte = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	// Dot is the decimal point, or the colon on clock style modules.
	Dot
)

const (
	// Blank lights no segment.
	Blank byte = 0x00
	// Minus lights the middle segment only.
	Minus byte = SegG
)

// Digits is the number of positions of a frame.
const Digits = 4

var (
	// ErrBase is returned when the base is outside 2-36.
	ErrBase = errors.New("segment: base must be between 2 and 36")
	// ErrLength is returned when the length is outside 1-4.
	ErrLength = errors.New("segment: length must be between 1 and 4")
)

//
//	    A
//	   ---
//	F |   | B
//	   -G-
//	E |   | C
//	   ---
//	    D
var glyphs = [16]byte{
	// XGFEDCBA
	0b00111111, // 0
	0b00000110, // 1
	0b01011011, // 2
	0b01001111, // 3
	0b01100110, // 4
	0b01101101, // 5
	0b01111101, // 6
	0b00000111, // 7
	0b01111111, // 8
	0b01101111, // 9
	0b01110111, // A
	0b01111100, // b
	0b00111001, // C
	0b01011110, // d
	0b01111001, // E
	0b01110001, // F
}

const digitRunes = "0123456789AbCdEF"

// Frame is the segment data of the four positions, leftmost first.
type Frame [Digits]byte

// String renders the frame as text. A dotted position is followed by '.',
// glyphs that are not a digit or minus sign show as '?'.
func (f Frame) String() string {
	var b strings.Builder
	for _, g := range f {
		switch seg := g &^ Dot; seg {
		case Blank:
			b.WriteByte(' ')
		case Minus:
			b.WriteByte('-')
		default:
			if d, ok := DecodeDigit(seg); ok {
				b.WriteByte(digitRunes[d])
			} else {
				b.WriteByte('?')
			}
		}
		if g&Dot != 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// EncodeDigit returns the glyph of d. Only the low 4 bits of d are used,
// 10-15 become the hexadecimal letters A-F.
func EncodeDigit(d byte) byte {
	return glyphs[d&0x0f]
}

// DecodeDigit returns the digit shown by glyph g, ignoring the dot.
func DecodeDigit(g byte) (byte, bool) {
	g &^= Dot
	for d, v := range glyphs {
		if v == g {
			return byte(d), true
		}
	}
	return 0, false
}

// ShowDots ORs the dot bits of mask into f. Bit 7 of mask goes to position
// 0, bit 6 to position 1 and so on.
//
// For modules with dots between each digit:
//
//	0.000   0b10000000
//	00.00   0b01000000
//	000.0   0b00100000
//	0.0.0.0 0b11100000
//
// For modules with a colon only, 00:00 is 0b01000000.
func ShowDots(mask byte, f *Frame) {
	for i := range f {
		f[i] |= mask & Dot
		mask <<= 1
	}
}

// Encode converts num into a frame of length positions in the given base,
// right aligned so that position length-1 holds the least significant digit.
//
// Without leadingZero, positions left of the first significant digit are
// blank and a negative num shows a minus sign right before it. A zero is
// always shown as a single 0. Digits that do not fit in length positions
// are dropped. Bases above 16 only render digits up to F correctly.
func Encode(num, base int, dots byte, leadingZero bool, length int) (Frame, error) {
	var f Frame
	if base < 2 || base > 36 {
		return f, ErrBase
	}
	if length < 1 || length > Digits {
		return f, ErrLength
	}

	negative := num < 0
	v := uint(num)
	if negative {
		v = uint(-num)
	}
	b := uint(base)

	if v == 0 && !leadingZero {
		f[length-1] = EncodeDigit(0)
	} else {
		for i := length - 1; i >= 0; i-- {
			digit := v % b
			if digit == 0 && v == 0 && !leadingZero {
				if negative {
					f[i] = Minus
					negative = false
				} else {
					f[i] = Blank
				}
			} else {
				f[i] = EncodeDigit(byte(digit))
			}
			v /= b
		}
	}

	if dots != 0 {
		ShowDots(dots, &f)
	}
	return f, nil
}
