//go:build !nographics

package epaper

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/BeatGlow/epaper/pixel"
)

// Model converts any color to the nearest ink using the same rules as [FromRGB]. Colors that are
// not fully opaque are composited over white paper first.
var Model color.Model = color.ModelFunc(model)

// FromMono converts a monochrome pixel: an inked pixel is black, a blank one stays white.
func FromMono(m pixel.Mono) Color {
	if m.On {
		return Black
	}
	return White
}

// FromRGB converts a 24-bit color.
//
// Only exact white and exact black map to White and Black, all other colors map to Red. This is
// not a nearest color search.
func FromRGB(r, g, b uint8) Color {
	switch {
	case r == 0xff && g == 0xff && b == 0xff:
		return White
	case r == 0x00 && g == 0x00 && b == 0x00:
		return Black
	default:
		return Red
	}
}

// FromCRGB16 converts a 16-bit 5-6-5 color.
func FromCRGB16(c pixel.CRGB16) Color {
	return FromRGB(c.Channels())
}

// FromCRGB15 converts a 15-bit 5-5-5 color.
func FromCRGB15(c pixel.CRGB15) Color {
	return FromRGB(c.Channels())
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// RGB returns the 24-bit color of the ink.
func (c Color) RGB() color.RGBA {
	switch c {
	case Black:
		return colornames.Black
	case Red:
		return colornames.Red
	default:
		return colornames.White
	}
}

// CRGB16 returns the 16-bit 5-6-5 color of the ink.
func (c Color) CRGB16() pixel.CRGB16 {
	switch c {
	case Black:
		return pixel.CRGB16Black
	case Red:
		return pixel.CRGB16Red
	default:
		return pixel.CRGB16White
	}
}

// CRGB15 returns the 15-bit 5-5-5 color of the ink.
func (c Color) CRGB15() pixel.CRGB15 {
	switch c {
	case Black:
		return pixel.CRGB15Black
	case Red:
		return pixel.CRGB15Red
	default:
		return pixel.CRGB15White
	}
}

func model(c color.Color) color.Color {
	switch c := c.(type) {
	case Color:
		return c
	case pixel.Mono:
		return FromMono(c)
	case pixel.CRGB16:
		return FromCRGB16(c)
	case pixel.CRGB15:
		return FromCRGB15(c)
	default:
		// Composite over blank paper so transparent pixels stay white.
		r, g, b, a := c.RGBA()
		paper := 0xffff - a
		return FromRGB(uint8((r+paper)>>8), uint8((g+paper)>>8), uint8((b+paper)>>8))
	}
}
