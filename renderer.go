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

package vecpaint

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vecpaint/affine"
	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/gradient"
	"seehuhn.de/go/vecpaint/raster"
	"seehuhn.de/go/vecpaint/surface"
)

// maxMaskDepth limits how deeply masks may be nested inside the shapes of
// other masks.  Deeper masks are ignored.
const maxMaskDepth = 8

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Renderer draws documents onto surfaces.
//
// A Renderer never fails: shapes which cannot be drawn exactly, for
// example because a gradient transform is singular or an offscreen buffer
// cannot be allocated, are drawn with a flat color approximation and the
// event is logged at debug level (see [SetLogger]).
//
// A Renderer holds no state between calls to Render, but it must not be
// used by several goroutines at the same time, since the surfaces it draws
// to are not safe for concurrent use.
type Renderer struct {
	Config Config
}

// NewRenderer returns a renderer with the given configuration.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{Config: cfg}
}

// Render draws all visible shapes of doc onto dst, in order.
func (r *Renderer) Render(dst surface.Surface, doc *document.Document, view View) {
	if doc == nil || !(view.Scale > 0) {
		return
	}
	for _, s := range doc.Shapes {
		r.drawShape(dst, s, view, r.Config.DisplayMode, 0)
	}
}

func (r *Renderer) drawShape(dst surface.Surface, s *document.Shape, view View, mode DisplayMode, depth int) {
	if s == nil || !s.Visible {
		return
	}
	region, ok := r.region(dst, s, view, mode)
	if !ok {
		return
	}

	if mode == Outline {
		r.drawOutline(dst, s, view)
		return
	}

	if s.HasMask() && depth < maxMaskDepth {
		r.drawMasked(dst, s, view, region, mode, depth)
		return
	}
	r.drawContent(dst, s, view, region, mode)
}

// region returns the part of dst which the shape can touch.
// The shape bounds are expanded by the stroke width times the miter
// limit, which contains all miter joins.
func (r *Renderer) region(dst surface.Surface, s *document.Shape, view View, mode DisplayMode) (image.Rectangle, bool) {
	b := view.Rect(s.Bounds)

	var pad float64
	switch {
	case mode == Outline:
		pad = 1
	case s.HasStroke():
		pad = s.StrokeWidth * view.Scale * max(s.MiterLimit, 1)
	}
	b = rect.Rect{LLx: b.LLx - pad, LLy: b.LLy - pad, URx: b.URx + pad, URy: b.URy + pad}

	return clipRect(b, dst.Bounds())
}

// clipRect converts b to integer coordinates and intersects it with clip.
func clipRect(b rect.Rect, clip image.Rectangle) (image.Rectangle, bool) {
	if math.IsNaN(b.LLx) || math.IsNaN(b.LLy) || math.IsNaN(b.URx) || math.IsNaN(b.URy) {
		return image.Rectangle{}, false
	}

	// Clamp before converting, to keep huge values away from int.
	lo := func(v float64, l, h int) int {
		return int(math.Floor(min(max(v, float64(l-1)), float64(h+1))))
	}
	hi := func(v float64, l, h int) int {
		return int(math.Ceil(min(max(v, float64(l-1)), float64(h+1))))
	}
	ir := image.Rectangle{
		Min: image.Point{X: lo(b.LLx, clip.Min.X, clip.Max.X), Y: lo(b.LLy, clip.Min.Y, clip.Max.Y)},
		Max: image.Point{X: hi(b.URx, clip.Min.X, clip.Max.X), Y: hi(b.URy, clip.Min.Y, clip.Max.Y)},
	}
	ir = ir.Intersect(clip)
	return ir, !ir.Empty()
}

func (r *Renderer) drawOutline(dst surface.Surface, s *document.Shape, view View) {
	p := s.Geometry(view.Apply)
	if p == nil {
		return
	}
	dst.SetColor(color.NRGBA(r.Config.OutlineColor))
	dst.StrokePath(p, surface.StrokeStyle{
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	})
}

// drawContent draws the fill and stroke of s.  The region is the area of
// dst which the shape can touch.
func (r *Renderer) drawContent(dst surface.Surface, s *document.Shape, view View, region image.Rectangle, mode DisplayMode) {
	if mode.drawFill() && s.HasFill() {
		geom := func(v View) *path.Data {
			return s.Geometry(v.Apply)
		}
		r.fill(dst, s, s.Fill, s.FillRule, geom, view, region, true)
	}
	if mode.drawStroke() && s.HasStroke() {
		r.stroke(dst, s, view, region)
	}
}

// drawMasked draws s into an offscreen buffer, applies the luminance of
// the mask shapes and composites the result onto dst.  If the buffers
// cannot be allocated, the mask is approximated by a uniform opacity.
func (r *Renderer) drawMasked(dst surface.Surface, s *document.Shape, view View, region image.Rectangle, mode DisplayMode, depth int) {
	bw, bh, ratio := gradient.FitBuffer(region.Dx(), region.Dy(), r.Config.MaxMaskBuffer)
	content, err := dst.NewBuffer(bw, bh)
	if err != nil {
		logFallback(s, "mask content buffer", "error", err)
		r.drawFlatMasked(dst, s, view, region, mode)
		return
	}
	mask, err := dst.NewBuffer(bw, bh)
	if err != nil {
		logFallback(s, "mask buffer", "error", err)
		r.drawFlatMasked(dst, s, view, region, mode)
		return
	}

	local := view.local(region, ratio)
	if sub, ok := r.region(content, s, local, mode); ok {
		r.drawContent(content, s, local, sub, mode)
	}
	for _, m := range s.Mask.Shapes {
		r.drawShape(mask, m, local, Normal, depth+1)
	}

	ApplyLuminance(content.RGBA(), mask.RGBA())
	dst.DrawBuffer(content, content.Bounds(), region)
}

// drawFlatMasked draws s directly onto dst, with the opacity reduced by
// the mask opacity of the topmost visible mask shape.
func (r *Renderer) drawFlatMasked(dst surface.Surface, s *document.Shape, view View, region image.Rectangle, mode DisplayMode) {
	f := flatMaskOpacity(s.Mask)
	if f == 0 {
		return
	}
	approx := *s
	approx.Mask = nil
	approx.Opacity = s.Opacity * f
	r.drawContent(dst, &approx, view, region, mode)
}

// flatMaskOpacity returns the mask opacity, in [0, 1], of the representative
// color of the topmost visible mask shape.  The result is 0 if no mask
// shape paints anything.
func flatMaskOpacity(m *document.Mask) float64 {
	for i := len(m.Shapes) - 1; i >= 0; i-- {
		ms := m.Shapes[i]
		if ms == nil || !ms.Visible {
			continue
		}
		c, ok := representative(ms.Fill)
		if !ok && ms.HasStroke() {
			c, ok = representative(ms.Stroke)
		}
		if !ok {
			continue
		}
		p := color.RGBAModel.Convert(withOpacity(c, ms.Opacity)).(color.RGBA)
		return float64(maskOpacity(p.R, p.G, p.B, p.A)) / 255
	}
	return 0
}

// representative returns a single color which stands in for the paint.
func representative(p document.Paint) (color.NRGBA, bool) {
	switch p := p.(type) {
	case document.Solid:
		return p.Color, true
	case document.LinearGradient:
		return p.MiddleColor()
	case document.RadialGradient:
		return p.MiddleColor()
	}
	return color.NRGBA{}, false
}

func (r *Renderer) stroke(dst surface.Surface, s *document.Shape, view View, region image.Rectangle) {
	if c, ok := s.Stroke.(document.Solid); ok {
		p := s.Geometry(view.Apply)
		if p == nil {
			return
		}
		dst.SetColor(withOpacity(c.Color, s.Opacity))
		dst.StrokePath(p, strokeStyle(s, view.Scale))
		return
	}

	_, g, ok := gradient.KindOf(s.Stroke)
	if !ok {
		return
	}

	// Gradient strokes are converted to fillable outlines.
	outline := func(v View) *path.Data {
		st := strokeStyle(s, v.Scale)
		o := raster.NewRasterizer(rect.Rect{})
		o.Width = st.Width
		o.Cap = st.Cap
		o.Join = st.Join
		o.MiterLimit = st.MiterLimit
		o.Dash = st.Dash
		o.DashPhase = st.DashPhase
		return o.StrokeOutline(s.Geometry(v.Apply))
	}
	if outline(view) == nil {
		c, ok := g.MiddleColor()
		if !ok {
			return
		}
		p := s.Geometry(view.Apply)
		if p == nil {
			return
		}
		logFallback(s, "empty stroke outline")
		dst.SetColor(withOpacity(c, s.Opacity))
		dst.StrokePath(p, strokeStyle(s, view.Scale))
		return
	}
	r.fill(dst, s, s.Stroke, document.NonZero, outline, view, region, false)
}

// fill paints the geometry returned by geom.  The geometry function is
// called with the view for the target, which is either dst or an
// offscreen buffer.  Native surface gradients are only used if native is
// true.
func (r *Renderer) fill(dst surface.Surface, s *document.Shape, paint document.Paint, rule document.FillRule, geom func(View) *path.Data, view View, region image.Rectangle, native bool) {
	if c, ok := paint.(document.Solid); ok {
		fillFlat(dst, geom(view), rule, withOpacity(c.Color, s.Opacity))
		return
	}

	kind, g, ok := gradient.KindOf(paint)
	if !ok {
		return
	}
	if len(g.Stops) == 0 {
		logFallback(s, "gradient without stops")
		return
	}

	m := g.Transform.Mul(view.Matrix())
	if _, err := affine.Invert(m); err != nil {
		logFallback(s, "singular gradient transform")
		c, _ := g.FirstColor()
		fillFlat(dst, geom(view), rule, withOpacity(c, s.Opacity))
		return
	}

	if native && r.Config.NativeGradients && gradient.Native(kind, m) {
		if gf, ok := dst.(surface.GradientFiller); ok {
			fillNative(gf, geom(view), rule, kind, g, m, s.Opacity)
			return
		}
	}

	r.fillRaster(dst, s, kind, g, rule, geom, view, region)
}

func fillNative(gf surface.GradientFiller, p *path.Data, rule document.FillRule, kind gradient.Kind, g *document.Gradient, m matrix.Matrix, opacity float64) {
	if p == nil {
		return
	}
	switch kind {
	case gradient.Linear:
		p0, p1 := gradient.Axis(m)
		gf.FillLinear(p, rule, surface.LinearGradient{
			P0:      p0,
			P1:      p1,
			Stops:   g.Stops,
			Spread:  g.Spread,
			Opacity: opacity,
		})
	case gradient.Radial:
		center, radius, focus := gradient.Circle(m, g.Focal)
		gf.FillRadial(p, rule, surface.RadialGradient{
			Center:  center,
			Radius:  radius,
			Focus:   focus,
			Stops:   g.Stops,
			Spread:  g.Spread,
			Opacity: opacity,
		})
	}
}

// fillRaster evaluates the gradient in an offscreen buffer covering
// region and composites the buffer onto dst.  Regions larger than
// MaxGradientBuffer are rendered at reduced resolution.
func (r *Renderer) fillRaster(dst surface.Surface, s *document.Shape, kind gradient.Kind, g *document.Gradient, rule document.FillRule, geom func(View) *path.Data, view View, region image.Rectangle) {
	bw, bh, ratio := gradient.FitBuffer(region.Dx(), region.Dy(), r.Config.MaxGradientBuffer)
	buf, err := dst.NewBuffer(bw, bh)
	if err != nil {
		logFallback(s, "gradient buffer", "error", err)
		c, _ := g.MiddleColor()
		fillFlat(dst, geom(view), rule, withOpacity(c, s.Opacity))
		return
	}

	local := view.local(region, ratio)
	p := geom(local)
	if p == nil {
		return
	}
	smp, err := gradient.NewSampler(g, kind, g.Transform.Mul(local.Matrix()), s.Opacity)
	if err != nil {
		logFallback(s, "gradient sampler", "error", err)
		c, _ := g.FirstColor()
		fillFlat(dst, geom(view), rule, withOpacity(c, s.Opacity))
		return
	}

	// The silhouette provides the coverage for the gradient colors.
	buf.SetColor(white)
	buf.FillPath(p, rule)
	smp.RasterizeInto(buf.RGBA())

	dst.DrawBuffer(buf, buf.Bounds(), region)
}

func fillFlat(dst surface.Surface, p *path.Data, rule document.FillRule, c color.NRGBA) {
	if p == nil || c.A == 0 {
		return
	}
	dst.SetColor(c)
	dst.FillPath(p, rule)
}

// strokeStyle converts the stroke parameters of s to surface units.
func strokeStyle(s *document.Shape, scale float64) surface.StrokeStyle {
	st := surface.StrokeStyle{
		Width:      s.StrokeWidth * scale,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
		DashPhase:  s.DashOffset * scale,
	}
	if len(s.Dash) > 0 {
		st.Dash = make([]float64, len(s.Dash))
		for i, d := range s.Dash {
			st.Dash[i] = d * scale
		}
	}
	return st
}

// withOpacity multiplies the alpha of c by opacity.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if !(opacity > 0) {
		opacity = 0
	}
	c.A = uint8(float64(c.A)*min(opacity, 1) + 0.5)
	return c
}

func logFallback(s *document.Shape, reason string, args ...any) {
	Logger().Debug("fallback", append([]any{"shape", s.ID, "reason", reason}, args...)...)
}
