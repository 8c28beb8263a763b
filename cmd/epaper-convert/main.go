//go:build !nographics

package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/BeatGlow/epaper"
	"github.com/BeatGlow/epaper/pixel"
)

func main() {
	outputFlag := flag.String("o", "", "Output file for the ink plane (default: none)")
	previewFlag := flag.String("preview", "", "Output file for a PNG preview (default: none)")
	sourceFlag := flag.String("source", "rgb", "Source pixel format (rgb, mono, crgb16, crgb15)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o <plane>] [-preview <png>] [-source <format>] <image>\n", os.Args[0])
		os.Exit(1)
	}

	source, err := sourceModel(*sourceFlag)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using source format: %s\n", *sourceFlag)

	src, err := decode(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using image: %s (%s)\n", flag.Arg(0), src.Bounds().Size())

	plane, counts := quantize(src, source)
	for _, c := range []epaper.Color{epaper.Black, epaper.White, epaper.Red} {
		fmt.Printf("%-5s %d\n", c, counts[c])
	}

	if *outputFlag != "" {
		if err = writeFile(*outputFlag, func(w io.Writer) error {
			_, err := w.Write(plane)
			return err
		}); err != nil {
			fatal(err)
		}
	}

	if *previewFlag != "" {
		if err = writeFile(*previewFlag, func(w io.Writer) error {
			return png.Encode(w, preview(src.Bounds(), plane))
		}); err != nil {
			fatal(err)
		}
	}
}

func decode(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	i, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("epaper-convert: decode %s: %w", name, err)
	}
	fmt.Printf("using format: %s\n", format)
	return i, nil
}

// sourceModel returns the pixel format a frame source packs its colors in, or nil for plain RGB.
func sourceModel(name string) (color.Model, error) {
	switch name {
	case "", "rgb":
		return nil, nil
	case "mono":
		return pixel.MonoModel, nil
	case "crgb16":
		return pixel.CRGB16Model, nil
	case "crgb15":
		return pixel.CRGB15Model, nil
	default:
		return nil, fmt.Errorf("epaper-convert: unsupported source format %q", name)
	}
}

// quantize maps every pixel of i to an ink and returns the controller bytes in row-major order.
// A non-nil source packs each pixel into that format first.
func quantize(i image.Image, source color.Model) (plane []byte, counts map[epaper.Color]int) {
	var (
		r = i.Bounds()
		j int
	)
	plane = make([]byte, r.Dx()*r.Dy())
	counts = make(map[epaper.Color]int, 3)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := i.At(x, y)
			if source != nil {
				v = source.Convert(v)
			}
			c := epaper.Model.Convert(v).(epaper.Color)
			plane[j] = c.Byte()
			counts[c]++
			j++
		}
	}
	return
}

// preview renders a plane as produced by quantize.
func preview(r image.Rectangle, plane []byte) *image.Paletted {
	var (
		inks = []epaper.Color{epaper.Black, epaper.White, epaper.Red}
		p    = make(color.Palette, len(inks))
	)
	for _, c := range inks {
		p[c.Byte()] = c.RGB()
	}

	out := image.NewPaletted(image.Rect(0, 0, r.Dx(), r.Dy()), p)
	for j, b := range plane {
		out.Set(j%r.Dx(), j/r.Dx(), epaper.FromByte(b))
	}
	return out
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("epaper-convert: write %s: %w", name, err)
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
