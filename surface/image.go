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

package surface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/gradient"
	"seehuhn.de/go/vecpaint/raster"
)

// maxBufferSide is the largest width or height NewBuffer accepts.
const maxBufferSide = 1 << 14

// Image is a software Surface drawing into an *image.RGBA.
// Paths are rendered with analytic anti-aliasing and composited with
// the source-over operator.
type Image struct {
	img   *image.RGBA
	color color.NRGBA
	r     *raster.Rasterizer
}

var (
	_ Buffer         = (*Image)(nil)
	_ GradientFiller = (*Image)(nil)
)

// NewImage returns a surface drawing into img.
func NewImage(img *image.RGBA) *Image {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Image{
		img:   img,
		color: color.NRGBA{A: 255},
		r:     raster.NewRasterizer(clip),
	}
}

func (s *Image) RGBA() *image.RGBA {
	return s.img
}

func (s *Image) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *Image) SetColor(c color.NRGBA) {
	s.color = c
}

func (s *Image) FillPath(p *path.Data, rule document.FillRule) {
	c := s.color
	s.r.Fill(p, fillRule(rule), func(y, xMin int, coverage []float32) {
		s.blend(y, xMin, coverage, func(int, int) color.NRGBA { return c })
	})
}

func (s *Image) StrokePath(p *path.Data, style StrokeStyle) {
	s.r.Width = style.Width
	s.r.Cap = style.Cap
	s.r.Join = style.Join
	s.r.MiterLimit = style.MiterLimit
	s.r.Dash = style.Dash
	s.r.DashPhase = style.DashPhase

	c := s.color
	s.r.Stroke(p, func(y, xMin int, coverage []float32) {
		s.blend(y, xMin, coverage, func(int, int) color.NRGBA { return c })
	})
}

// FillLinear fills p with a linear gradient. Degenerate gradients are
// painted with their first stop.
func (s *Image) FillLinear(p *path.Data, rule document.FillRule, g LinearGradient) {
	grad := &document.Gradient{
		Transform: gradient.AxisMatrix(g.P0, g.P1),
		Spread:    g.Spread,
		Stops:     g.Stops,
	}
	s.fillGradient(p, rule, grad, gradient.Linear, g.Opacity)
}

// FillRadial fills p with a radial gradient. Degenerate gradients are
// painted with their first stop.
func (s *Image) FillRadial(p *path.Data, rule document.FillRule, g RadialGradient) {
	m, focal := gradient.CircleMatrix(g.Center, g.Radius, g.Focus)
	grad := &document.Gradient{
		Transform: m,
		Spread:    g.Spread,
		Stops:     g.Stops,
		Focal:     focal,
	}
	s.fillGradient(p, rule, grad, gradient.Radial, g.Opacity)
}

func (s *Image) fillGradient(p *path.Data, rule document.FillRule, g *document.Gradient, kind gradient.Kind, opacity float64) {
	if len(g.Stops) == 0 {
		return
	}
	if !(opacity > 0) {
		opacity = 0
	}
	opacity = min(opacity, 1)
	smp, err := gradient.NewSampler(g, kind, g.Transform, opacity)
	if err != nil {
		c, _ := g.FirstColor()
		c.A = uint8(float64(c.A)*opacity + 0.5)
		s.r.Fill(p, fillRule(rule), func(y, xMin int, coverage []float32) {
			s.blend(y, xMin, coverage, func(int, int) color.NRGBA { return c })
		})
		return
	}
	s.r.Fill(p, fillRule(rule), func(y, xMin int, coverage []float32) {
		s.blend(y, xMin, coverage, func(x, y int) color.NRGBA {
			return smp.ColorAt(vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		})
	})
}

// NewBuffer returns a transparent software buffer.
func (s *Image) NewBuffer(w, h int) (Buffer, error) {
	if w <= 0 || h <= 0 || w > maxBufferSide || h > maxBufferSide {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrBufferSize)
	}
	return NewImage(image.NewRGBA(image.Rect(0, 0, w, h))), nil
}

// DrawBuffer composites src of b onto dst. When the rectangles differ in
// size the buffer is scaled with bilinear interpolation.
func (s *Image) DrawBuffer(b Buffer, src, dst image.Rectangle) {
	img := b.RGBA()
	if src.Size() == dst.Size() {
		draw.Draw(s.img, dst, img, src.Min, draw.Over)
		return
	}
	draw.BiLinear.Scale(s.img, dst, img, src, draw.Over, nil)
}

// blend composites color c, with coverage as additional alpha, over one
// row of pixels.
func (s *Image) blend(y, xMin int, coverage []float32, colorAt func(x, y int) color.NRGBA) {
	off := s.img.PixOffset(xMin, y)
	for i, cov := range coverage {
		c := colorAt(xMin+i, y)
		a := cov * float32(c.A) / 255
		if a <= 0 {
			continue
		}
		px := s.img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
		k := 1 - a
		px[0] = uint8(float32(c.R)*a + float32(px[0])*k + 0.5)
		px[1] = uint8(float32(c.G)*a + float32(px[1])*k + 0.5)
		px[2] = uint8(float32(c.B)*a + float32(px[2])*k + 0.5)
		px[3] = uint8(255*a + float32(px[3])*k + 0.5)
	}
}

func fillRule(rule document.FillRule) raster.FillRule {
	if rule == document.EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}
