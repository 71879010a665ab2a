// Package segment converts numbers into seven-segment glyphs for the TM1637
// display controller.
//
// Each glyph is one byte. Bit 0 is segment A, bit 6 is segment G and bit 7 is
// the dot (or colon, depending on the module):
//
//	    A
//	   ---
//	F |   | B
//	   -G-
//	E |   | C
//	   ---
//	    D
//
// A Frame holds the four glyphs of a module, leftmost position first.
//
// This package provides:
//
// - EncodeDigit: the glyph of a single digit 0-15 (0-9, A-F)
// - Encode: a number in any base 2-36 as a right aligned Frame
// - ShowDots: dot/colon injection from a bitmask
//
// Example usage:
//
//	// -42 in a four digit frame: "  -42" -> [blank, minus, 4, 2]
//	f, _ := segment.Encode(-42, 10, 0, false, 4)
//
//	// 12:34 on a clock module
//	f, _ = segment.Encode(1234, 10, 0b01000000, true, 4)
//	fmt.Println(f) // Output: 12.34
package segment
