package geodeck

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// SceneOptions configures a Scene.
type SceneOptions struct {
	// Width and Height are the canvas size in pixels. Default: 1024 x 512.
	Width  int
	Height int

	// Theme selects the scene palette. Default: LightTheme().
	Theme Theme

	// ViewGap is the horizontal spacing between side-by-side views in pixels.
	// Default: 0.
	ViewGap float64
}

// DefaultSceneOptions returns scene options with defaults.
func DefaultSceneOptions() SceneOptions {
	return SceneOptions{
		Width:  1024,
		Height: 512,
		Theme:  LightTheme(),
	}
}

// Scene composes views, layers, and widgets into a rendered image.
//
// Views split the canvas into side-by-side viewports; every layer is drawn
// once per view, in the order the layers were added; widgets are drawn last,
// in screen space over the whole canvas.
//
// A Scene is not safe for concurrent use. Rendering is synchronous and leaves
// a fresh picking index behind, so Pick reflects the most recent Render call.
type Scene struct {
	width   int
	height  int
	theme   Theme
	viewGap float64

	views   []View
	layers  []Layer
	widgets []Widget

	picker *pickIndex
}

// NewScene creates an empty scene.
//
// Example:
//
//	scene := geodeck.NewScene(geodeck.SceneOptions{
//	    Width:  1200,
//	    Height: 600,
//	    Theme:  geodeck.DarkTheme(),
//	})
func NewScene(opts SceneOptions) *Scene {
	def := DefaultSceneOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = def.Theme
	}
	return &Scene{
		width:   opts.Width,
		height:  opts.Height,
		theme:   opts.Theme,
		viewGap: opts.ViewGap,
	}
}

// AddView appends a view. Views share the canvas width equally, left to right.
func (s *Scene) AddView(v View) {
	s.views = append(s.views, v)
}

// AddLayer appends a layer. Layers added later draw on top.
func (s *Scene) AddLayer(l Layer) {
	s.layers = append(s.layers, l)
}

// AddWidget appends an overlay widget.
func (s *Scene) AddWidget(w Widget) {
	s.widgets = append(s.widgets, w)
}

// Layers returns the scene's layers in draw order.
func (s *Scene) Layers() []Layer {
	return s.layers
}

// Theme returns the scene palette.
func (s *Scene) Theme() Theme {
	return s.theme
}

// Render draws the scene and returns the resulting image.
//
// A scene with no views renders into a single default flat map view.
func (s *Scene) Render() (image.Image, error) {
	dc := gg.NewContext(s.width, s.height)
	defer dc.Close()

	dc.ClearWithColor(s.theme.Background)

	views := s.views
	if len(views) == 0 {
		views = []View{NewMapView(DefaultMapViewOptions())}
	}

	picker := newPickIndex()
	canvas := Viewport{Width: float64(s.width), Height: float64(s.height)}

	n := float64(len(views))
	vpWidth := (canvas.Width - s.viewGap*(n-1)) / n
	if vpWidth <= 0 {
		return nil, fmt.Errorf("render scene: %d views do not fit canvas width %d", len(views), s.width)
	}

	for i, view := range views {
		vp := Viewport{
			X:      float64(i) * (vpWidth + s.viewGap),
			Y:      0,
			Width:  vpWidth,
			Height: canvas.Height,
		}
		view.setViewport(vp)

		dc.Push()
		dc.ClipRect(vp.X, vp.Y, vp.Width, vp.Height)

		s.drawViewBackground(dc, view, vp)

		rc := &renderContext{
			dc:     dc,
			view:   view,
			theme:  s.theme,
			picker: picker,
		}
		for _, layer := range s.layers {
			if layer.Visible() {
				layer.render(rc)
			}
		}

		dc.Pop()
	}

	for _, w := range s.widgets {
		w.draw(dc, canvas, s.theme, s)
	}

	s.picker = picker
	return dc.Image(), nil
}

// drawViewBackground fills the projectable area of a view with the water color:
// the whole viewport for flat views, the globe disc for globe views.
func (s *Scene) drawViewBackground(dc *gg.Context, view View, vp Viewport) {
	dc.SetColor(s.theme.Water.Color())
	if globe, ok := view.(*GlobeView); ok {
		cx, cy := vp.Center()
		dc.DrawCircle(cx, cy, globe.Radius())
	} else {
		dc.DrawRectangle(vp.X, vp.Y, vp.Width, vp.Height)
	}
	dc.Fill()
}

// RenderPNG renders the scene and writes it to a PNG file.
func (s *Scene) RenderPNG(path string) error {
	img, err := s.Render()
	if err != nil {
		return err
	}
	pixmap := gg.FromImage(img)
	if err := pixmap.SavePNG(path); err != nil {
		return fmt.Errorf("save scene PNG: %w", err)
	}
	return nil
}

// Pick returns the topmost rendered object under the canvas position (x, y).
//
// Valid after Render; before the first render it reports no hit.
func (s *Scene) Pick(x, y float64) (PickInfo, bool) {
	if s.picker == nil {
		return PickInfo{}, false
	}
	return s.picker.pick(x, y)
}
