package pixel

import "image/color"

// Models for the standard color types.
var (
	MonoModel   color.Model = color.ModelFunc(monoModel)
	CRGB15Model color.Model = color.ModelFunc(crgb15Model)
	CRGB16Model color.Model = color.ModelFunc(crgb16Model)
)

var (
	Off = Mono{false}
	On  = Mono{true}
)

// Canonical packed colors.
var (
	CRGB15Black = CRGB15{0x0000}
	CRGB15White = CRGB15{0x7FFF}
	CRGB15Red   = CRGB15{0x7C00}
	CRGB16Black = CRGB16{0x0000}
	CRGB16White = CRGB16{0xFFFF}
	CRGB16Red   = CRGB16{0xF800}
)

// Mono represents a 1-bit e-paper pixel. On means the pixel is inked, which shows black on
// the page; Off leaves the paper blank.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0, 0, 0, 0xffff
	}
	return 0xffff, 0xffff, 0xffff, 0xffff
}

// monoModel inks every color darker than mid gray. Alpha is composited over blank paper first.
func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b := paper(c)

	// JFIF luma weights scaled to 1<<16; y is 16-bit luminance.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16

	return Mono{On: y < 0x8000}
}

// CRGB15 represents a 15-bit 5-5-5 RGB color.
type CRGB15 struct {
	// CIgnore, 1, CRed, 5, CGreen, 5, CBlue, 5
	V uint16
}

func (c CRGB15) RGBA() (r, g, b, a uint32) {
	red, grn, blu := c.Channels()
	return expand(red), expand(grn), expand(blu), 0xffff
}

// Channels unpacks the color to 8-bit red, green and blue channels.
func (c CRGB15) Channels() (r, g, b uint8) {
	// Build a 5-bit value at the top of each byte.
	r = uint8((c.V & 0x7C00) >> 7)
	g = uint8((c.V & 0x03E0) >> 2)
	b = uint8((c.V & 0x001F) << 3)
	// Duplicate the high bits in the low bits.
	r |= r >> 5
	g |= g >> 5
	b |= b >> 5
	return
}

func crgb15Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB15Black
		}
		return CRGB15White
	case CRGB15:
		return CRGB15{c.V & 0x7FFF}
	default:
		r, g, b := paper(c)
		r = (r & 0xF800) >> 1
		g = (g & 0xF800) >> 6
		b = (b & 0xF800) >> 11
		return CRGB15{uint16(r | g | b)}
	}
}

// CRGB16 represents a 16-bit 5-6-5 RGB color.
type CRGB16 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB16) RGBA() (r, g, b, a uint32) {
	red, grn, blu := c.Channels()
	return expand(red), expand(grn), expand(blu), 0xffff
}

// Channels unpacks the color to 8-bit red, green and blue channels.
func (c CRGB16) Channels() (r, g, b uint8) {
	// Build a 5- or 6-bit value at the top of each byte.
	r = uint8((c.V & 0xF800) >> 8)
	g = uint8((c.V & 0x07E0) >> 3)
	b = uint8((c.V & 0x001F) << 3)
	// Duplicate the high bits in the low bits.
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return
}

func crgb16Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		if c.On {
			return CRGB16Black
		}
		return CRGB16White
	case CRGB16:
		return c
	default:
		r, g, b := paper(c)
		r = (r & 0xF800)
		g = (g & 0xFC00) >> 5
		b = (b & 0xF800) >> 11
		return CRGB16{uint16(r | g | b)}
	}
}

// paper composites c over blank (white) paper and returns its 16-bit channels.
func paper(c color.Color) (uint32, uint32, uint32) {
	r, g, b, a := c.RGBA()
	blank := 0xffff - a
	return r + blank, g + blank, b + blank
}

// expand duplicates an 8-bit channel into the high byte.
func expand(v uint8) uint32 {
	return uint32(v) | uint32(v)<<8
}
