// seehuhn.de/go/vecpaint - render vector shapes with gradients and masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/testcases"
)

// TestAgainstReference compares the silhouettes of all scenes with the
// images generated by testcases/genpdf.  Scenes without a reference image
// are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("..", "testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				w, h := sc.Width, sc.Height
				if len(ref) != w*h {
					t.Fatalf("reference has %d pixels, want %d", len(ref), w*h)
				}
				actual := make([]byte, w*h)
				renderSilhouette(sc, actual, w, h)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderSilhouette paints the silhouette of a scene into a grayscale
// buffer, white on black.
func renderSilhouette(sc testcases.Scene, buf []byte, width, height int) {
	r := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})

	acc := make([]float32, width*height)
	emit := func(y, xMin int, coverage []float32) {
		row := acc[y*width:]
		for i, c := range coverage {
			row[xMin+i] = c + row[xMin+i]*(1-c)
		}
	}

	for _, op := range sc.Silhouette() {
		switch op := op.(type) {
		case testcases.Fill:
			rule := NonZero
			if op.Rule == document.EvenOdd {
				rule = EvenOdd
			}
			r.Fill(op.Path, rule, emit)
		case testcases.Stroke:
			r.Width = op.Width
			r.Cap = op.Cap
			r.Join = op.Join
			r.MiterLimit = op.MiterLimit
			r.Dash = op.Dash
			r.DashPhase = op.DashPhase
			r.Stroke(op.Path, emit)
		}
	}

	for i, c := range acc {
		buf[i] = byte(max(0, min(255, int(c*256))))
	}
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages accepts the rendering if at least 80% of the pixels are
// identical, 95% differ by less than 64 and 99% by less than 128.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		diffs[i] = max(d, -d)
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}
	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes actual, difference and expected side by side to
// debug/<name>.png.  In the middle panel green marks missing coverage and
// red marks excess coverage.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.Set(x, y, color.Gray{Y: a})

			var dc color.RGBA
			switch d := int(e) - int(a); {
			case d > 0:
				dc = color.RGBA{G: uint8(d), A: 255}
			case d < 0:
				dc = color.RGBA{R: uint8(-d), A: 255}
			default:
				dc = color.RGBA{A: 255}
			}
			img.Set(x+w, y, dc)
			img.Set(x+2*w, y, color.Gray{Y: e})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
