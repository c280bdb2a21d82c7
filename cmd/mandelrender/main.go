// Command mandelrender sweeps the escape-time iteration z = z² + c over a
// rectangle of the complex plane and writes the result as a PNG: points
// still bounded after the iteration cap are drawn white, escaped points
// fade to black with the escape magnitude.
//
// Usage:
//
//	mandelrender -o mandel.png -width 1000 -height 1000 \
//	  -rmin -2 -rmax 1 -imin -1.5 -imax 1.5 -workers 8
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"runtime"

	"github.com/katalvlaran/lvlarr/mandel"
	"github.com/katalvlaran/lvlarr/ufunc"
)

func main() {
	var (
		out     = flag.String("o", "mandel.png", "output PNG path")
		width   = flag.Int("width", 1000, "image width in pixels")
		height  = flag.Int("height", 1000, "image height in pixels")
		rmin    = flag.Float64("rmin", -2.0, "minimum real part")
		rmax    = flag.Float64("rmax", 1.0, "maximum real part")
		imin    = flag.Float64("imin", -1.5, "minimum imaginary part")
		imax    = flag.Float64("imax", 1.5, "maximum imaginary part")
		workers = flag.Int("workers", runtime.NumCPU(), "goroutines for the sweep")
	)
	flag.Parse()

	params, err := mandel.Plane(*rmin, *rmax, *imin, *imax, *width, *height)
	if err != nil {
		log.Fatalf("mandelrender: build plane: %v", err)
	}

	values, err := mandel.Mandelbrot(params, ufunc.Options{Workers: *workers})
	if err != nil {
		log.Fatalf("mandelrender: sweep: %v", err)
	}

	img := render(values.Data(), *width, *height)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("mandelrender: create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("mandelrender: encode: %v", err)
	}
	log.Printf("mandelrender: wrote %dx%d image to %s", *width, *height, *out)
}

// render shades a row-major sweep result into a grayscale image: bounded
// points white, escaped points darker the faster they escaped.
func render(values []complex128, w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, shade(values[y*w+x]))
		}
	}

	return img
}

// shade maps one final iteration value to a gray level.
func shade(z complex128) color.Gray {
	if !mandel.Escaped(z) {
		return color.Gray{Y: 255}
	}
	// Larger escape magnitudes mean earlier divergence: darker pixel.
	mag := math.Sqrt(real(z)*real(z) + imag(z)*imag(z))
	level := 160 / (1 + math.Log1p(mag-math.Sqrt(mandel.DivergenceThreshold)))
	if math.IsNaN(level) || level < 0 {
		level = 0
	}

	return color.Gray{Y: uint8(level)}
}
