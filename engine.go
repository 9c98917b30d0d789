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
	"sync/atomic"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vecpaint/document"
	"seehuhn.de/go/vecpaint/surface"
)

// Engine is the state of a document viewer: the loaded document, the view
// and the renderer settings.
//
// Load, Unload and Loaded may be called from any goroutine, also while
// Draw is running.  Draw always renders a single document, even if the
// document is replaced during the call.  All other methods must be called
// from the goroutine which calls Draw.
type Engine struct {
	doc atomic.Pointer[document.Document]

	// refit is set by Load.  The view is only modified on the drawing
	// goroutine, which fits it to the new document when it sees the flag.
	refit atomic.Bool

	renderer  *Renderer
	view      View
	autoScale bool
	window    image.Rectangle
}

// NewEngine returns an engine without a document.  Automatic scaling is
// enabled.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		renderer:  NewRenderer(cfg),
		view:      Identity,
		autoScale: true,
	}
}

// Load replaces the current document.  If automatic scaling is enabled,
// the view is fitted to the window before the document is next drawn or
// the view is next accessed.
func (e *Engine) Load(doc *document.Document) {
	e.doc.Store(doc)
	e.refit.Store(true)
}

// Unload removes the current document.
func (e *Engine) Unload() {
	e.doc.Store(nil)
}

// Loaded returns the current document, or nil.
func (e *Engine) Loaded() *document.Document {
	return e.doc.Load()
}

// Resize sets the window area used by the fitting and centering
// operations.
func (e *Engine) Resize(window image.Rectangle) {
	e.sync()
	e.window = window
	if e.autoScale {
		e.fit()
	}
}

func (e *Engine) View() View {
	e.sync()
	return e.view
}

// SetScale changes the scale of the view.  Scales which are not positive
// are ignored.
func (e *Engine) SetScale(scale float64) {
	e.sync()
	e.view = e.view.WithScale(scale)
}

func (e *Engine) SetOffset(offset vec.Vec2) {
	e.sync()
	e.view.Offset = offset
}

// SetAutoScale controls whether the view is fitted to the window
// whenever the document or the window changes.
func (e *Engine) SetAutoScale(enable bool) {
	e.sync()
	e.autoScale = enable
	if enable {
		e.fit()
	}
}

func (e *Engine) AutoScale() bool {
	return e.autoScale
}

// FitToWindow enables automatic scaling and fits the document to the
// window.
func (e *Engine) FitToWindow() {
	if e.doc.Load() == nil {
		return
	}
	e.SetAutoScale(true)
}

// CenterImage centers the document in the window at the current scale.
func (e *Engine) CenterImage() {
	e.sync()
	if doc := e.doc.Load(); doc != nil {
		e.view = e.view.Center(doc.Width, doc.Height, e.window)
	}
}

// ActualSize disables automatic scaling and shows the document at scale 1,
// centered in the window.
func (e *Engine) ActualSize() {
	e.sync()
	if doc := e.doc.Load(); doc != nil {
		e.autoScale = false
		e.view = e.view.ActualSize(doc.Width, doc.Height, e.window)
	}
}

func (e *Engine) DisplayMode() DisplayMode {
	return e.renderer.Config.DisplayMode
}

func (e *Engine) SetDisplayMode(mode DisplayMode) {
	e.renderer.Config.DisplayMode = mode
}

// DocumentBounds returns the area of the document in document space.
// The result is the zero rectangle if no document is loaded.
func (e *Engine) DocumentBounds() rect.Rect {
	doc := e.doc.Load()
	if doc == nil {
		return rect.Rect{}
	}
	return rect.Rect{URx: doc.Width, URy: doc.Height}
}

// Draw renders the current document onto dst.
func (e *Engine) Draw(dst surface.Surface) {
	refit := e.refit.Swap(false)
	doc := e.doc.Load()
	if doc == nil {
		return
	}
	if refit && e.autoScale {
		e.view = e.view.Fit(doc.Width, doc.Height, e.window)
	}
	e.renderer.Render(dst, doc, e.view)
}

// sync applies a fit requested by Load.
func (e *Engine) sync() {
	if e.refit.Swap(false) && e.autoScale {
		e.fit()
	}
}

func (e *Engine) fit() {
	if doc := e.doc.Load(); doc != nil {
		e.view = e.view.Fit(doc.Width, doc.Height, e.window)
	}
}
