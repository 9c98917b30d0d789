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

package gradient

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/affine"
	"seehuhn.de/go/vecpaint/document"
)

// ErrNoStops is returned for gradients without color stops.
var ErrNoStops = errors.New("gradient has no stops")

// Kind distinguishes linear from radial gradients.
type Kind int

const (
	Linear Kind = iota
	Radial
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	default:
		return "Kind(?)"
	}
}

// KindOf returns the kind and the gradient of a gradient paint.
// For all other paints, ok is false.
func KindOf(p document.Paint) (kind Kind, g *document.Gradient, ok bool) {
	switch p := p.(type) {
	case document.LinearGradient:
		return Linear, p.Gradient, p.Gradient != nil
	case document.RadialGradient:
		return Radial, p.Gradient, p.Gradient != nil
	default:
		return 0, nil, false
	}
}

// maxFocalRadius keeps the focal point strictly inside the unit circle.
const maxFocalRadius = 1 - 1e-3

// Sampler evaluates one gradient in device space.
type Sampler struct {
	kind   Kind
	spread document.Spread
	focal  vec.Vec2
	toGrad matrix.Matrix // device space to gradient space
	lut    *LUT
}

// NewSampler prepares g for evaluation.  The matrix m maps gradient space
// to device space, i.e. it combines the gradient transform with the view.
// If m is not invertible, the returned error wraps [affine.ErrSingular].
func NewSampler(g *document.Gradient, kind Kind, m matrix.Matrix, opacity float64) (*Sampler, error) {
	if g == nil || len(g.Stops) == 0 {
		return nil, ErrNoStops
	}
	inv, err := affine.Invert(m)
	if err != nil {
		return nil, fmt.Errorf("%s gradient: %w", kind, err)
	}

	s := &Sampler{
		kind:   kind,
		spread: g.Spread,
		toGrad: inv,
		lut:    BuildLUT(g, opacity),
	}
	if kind == Radial {
		f := g.Focal
		if r := f.Length(); r > maxFocalRadius {
			f = f.Mul(maxFocalRadius / r)
		}
		s.focal = f
	}
	return s, nil
}

// SampleAt returns the gradient parameter at the device-space point p,
// before the spread mode is applied.
func (s *Sampler) SampleAt(p vec.Vec2) float64 {
	q := affine.Apply(s.toGrad, p)
	if s.kind == Linear {
		return q.Y
	}
	if s.focal == (vec.Vec2{}) {
		return q.Length()
	}
	return focalT(q, s.focal)
}

// ColorAt returns the (non-premultiplied) color at the device-space point p.
func (s *Sampler) ColorAt(p vec.Vec2) color.NRGBA {
	return s.lut.Lookup(ApplySpread(s.spread, s.SampleAt(p)))
}

// focalT computes the gradient parameter of q for a radial gradient with
// focal point f, both in gradient space.  The result is the distance from
// f to q, divided by the distance from f to the unit circle along the same
// ray.
func focalT(q, f vec.Vec2) float64 {
	d := q.Sub(f)
	dist := d.Length()
	if dist == 0 {
		return 0
	}
	dir := d.Mul(1 / dist)

	// |f + s·dir|² = 1  ⇔  s² + 2(f·dir)s + |f|²-1 = 0
	b := f.Dot(dir)
	c := f.Dot(f) - 1
	disc := b*b - c
	if disc < 0 {
		return q.Length()
	}
	exit := -b + math.Sqrt(disc)
	if exit <= 0 {
		return q.Length()
	}
	return dist / exit
}

// RasterizeInto paints the gradient into all pixels of dst which have
// non-zero alpha.  The existing alpha is treated as coverage, so a shape
// silhouette drawn into dst beforehand is replaced by the gradient colors.
// The result is premultiplied, as required by [image.RGBA].
// The sampler must have been created with dst's pixel coordinates as
// device space.
func (s *Sampler) RasterizeInto(dst *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			px := row[4*(x-b.Min.X) : 4*(x-b.Min.X)+4 : 4*(x-b.Min.X)+4]
			cover := uint32(px[3])
			if cover == 0 {
				continue
			}
			c := s.ColorAt(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			a := (uint32(c.A)*cover + 127) / 255
			px[0] = uint8((uint32(c.R)*a + 127) / 255)
			px[1] = uint8((uint32(c.G)*a + 127) / 255)
			px[2] = uint8((uint32(c.B)*a + 127) / 255)
			px[3] = uint8(a)
		}
	}
}

// FitBuffer computes the size of an offscreen buffer for a region of
// w×h pixels, such that neither side exceeds maxDim.  The returned ratio
// is the factor by which the region is scaled down; it is 1 if the region
// already fits.  A maxDim of zero or less disables the limit.
func FitBuffer(w, h, maxDim int) (bw, bh int, ratio float64) {
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return w, h, 1
	}
	ratio = float64(maxDim) / float64(max(w, h))
	bw = min(max(int(math.Ceil(float64(w)*ratio)), 1), maxDim)
	bh = min(max(int(math.Ceil(float64(h)*ratio)), 1), maxDim)
	return bw, bh, ratio
}
