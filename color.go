// Package epaper models the pixel colors of three-ink (black, white and red) e-paper displays.
//
// A [Color] is one of the three ink states the panel can physically show. Conversions from the
// controller byte encoding and from raw single-bit pixels are always available. Conversions
// from and to the monochrome and packed RGB colors of the [pixel] package are built unless the
// nographics build tag is set:
//
//	go build -tags nographics
//
// Conversions from RGB are lossy: only exact white and exact black survive, every other color
// ends up as red.
package epaper

import "fmt"

// Color is the state of a single e-paper pixel.
//
// The zero value is White, which matches a blank page.
type Color uint8

// Supported colors.
const (
	White Color = iota
	Black
	Red
)

// Controller byte encoding of the colors.
const (
	ByteBlack byte = 0x00
	ByteWhite byte = 0x01
	ByteRed   byte = 0x02
)

// InvalidByteError is the panic value of [FromByte] for bytes outside the color encoding.
type InvalidByteError byte

func (err InvalidByteError) Error() string {
	return fmt.Sprintf("epaper: invalid color value %#02x", byte(err))
}

// FromByte decodes a controller byte.
//
// The encoding is closed: any value other than [ByteBlack], [ByteWhite] or [ByteRed] means the
// data is corrupt, and FromByte panics with an [InvalidByteError].
func FromByte(b byte) Color {
	switch b {
	case ByteBlack:
		return Black
	case ByteWhite:
		return White
	case ByteRed:
		return Red
	default:
		panic(InvalidByteError(b))
	}
}

// FromRawBit decodes a raw single-bit pixel: zero is black and anything else is white.
//
// NB: raw pixels have no red representation, so this never returns Red.
func FromRawBit(bit uint8) Color {
	if bit == 0 {
		return Black
	}
	return White
}

// Byte returns the controller byte encoding of the color.
func (c Color) Byte() byte {
	switch c {
	case Black:
		return ByteBlack
	case White:
		return ByteWhite
	case Red:
		return ByteRed
	default:
		panic(fmt.Sprintf("epaper: invalid color %d", uint8(c)))
	}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Red:
		return "Red"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}
