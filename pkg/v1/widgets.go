package geodeck

import (
	"math"

	"github.com/gogpu/gg"
)

// Placement anchors a widget to a corner of the canvas.
type Placement int

const (
	// PlacementDefault selects the widget's own default corner. It is the zero
	// value, so leaving Placement unset in an options struct means "default".
	PlacementDefault Placement = iota

	// PlacementTopLeft anchors to the top-left corner.
	PlacementTopLeft

	// PlacementTopRight anchors to the top-right corner.
	PlacementTopRight

	// PlacementBottomLeft anchors to the bottom-left corner.
	PlacementBottomLeft

	// PlacementBottomRight anchors to the bottom-right corner.
	PlacementBottomRight
)

// String returns the human-readable name of the placement.
func (p Placement) String() string {
	switch p {
	case PlacementDefault:
		return "default"
	case PlacementTopLeft:
		return "top-left"
	case PlacementTopRight:
		return "top-right"
	case PlacementBottomLeft:
		return "bottom-left"
	case PlacementBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// anchor returns the top-left pixel of a w x h box placed in the given corner.
func (p Placement) anchor(canvas Viewport, w, h, margin float64) (x, y float64) {
	switch p {
	case PlacementTopRight:
		return canvas.X + canvas.Width - w - margin, canvas.Y + margin
	case PlacementBottomLeft:
		return canvas.X + margin, canvas.Y + canvas.Height - h - margin
	case PlacementBottomRight:
		return canvas.X + canvas.Width - w - margin, canvas.Y + canvas.Height - h - margin
	default:
		return canvas.X + margin, canvas.Y + margin
	}
}

// Widget is an overlay control drawn over the rendered scene in screen space.
//
// Widgets carry no interactive behavior here; they are the visual counterparts
// of the controls an interactive frontend would wire up, drawn so exported
// images match what such a frontend shows.
type Widget interface {
	draw(dc *gg.Context, canvas Viewport, theme Theme, scene *Scene)
}

// widgetPanel strokes and fills a rounded widget background.
func widgetPanel(dc *gg.Context, theme Theme, x, y, w, h float64) {
	dc.DrawRoundedRectangle(x, y, w, h, 4)
	dc.SetColor(theme.WidgetFill.Color())
	dc.FillPreserve()
	dc.SetColor(theme.WidgetStroke.Color())
	dc.SetLineWidth(1)
	dc.Stroke()
}

// ZoomWidgetOptions configures a ZoomWidget.
type ZoomWidgetOptions struct {
	// Placement anchors the widget. Default: top-left.
	Placement Placement

	// ButtonSize is the side length of each button in pixels. Default: 28.
	ButtonSize float64

	// Margin is the distance from the canvas edge in pixels. Default: 12.
	Margin float64
}

// DefaultZoomWidgetOptions returns zoom widget options with defaults.
func DefaultZoomWidgetOptions() ZoomWidgetOptions {
	return ZoomWidgetOptions{
		Placement:  PlacementTopLeft,
		ButtonSize: 28,
		Margin:     12,
	}
}

// ZoomWidget draws stacked zoom-in / zoom-out buttons.
type ZoomWidget struct {
	placement Placement
	size      float64
	margin    float64
}

// NewZoomWidget creates a zoom control.
func NewZoomWidget(opts ZoomWidgetOptions) *ZoomWidget {
	def := DefaultZoomWidgetOptions()
	if opts.ButtonSize == 0 {
		opts.ButtonSize = def.ButtonSize
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.Placement == PlacementDefault {
		opts.Placement = def.Placement
	}
	return &ZoomWidget{placement: opts.Placement, size: opts.ButtonSize, margin: opts.Margin}
}

func (w *ZoomWidget) draw(dc *gg.Context, canvas Viewport, theme Theme, _ *Scene) {
	s := w.size
	x, y := w.placement.anchor(canvas, s, 2*s, w.margin)

	widgetPanel(dc, theme, x, y, s, 2*s)

	dc.SetColor(theme.WidgetStroke.Color())
	dc.SetLineWidth(1.5)

	// Plus glyph
	cx, cy := x+s/2, y+s/2
	g := s * 0.3
	dc.DrawLine(cx-g, cy, cx+g, cy)
	dc.Stroke()
	dc.DrawLine(cx, cy-g, cx, cy+g)
	dc.Stroke()

	// Divider
	dc.DrawLine(x, y+s, x+s, y+s)
	dc.Stroke()

	// Minus glyph
	cy = y + s + s/2
	dc.DrawLine(cx-g, cy, cx+g, cy)
	dc.Stroke()
}

// CompassWidgetOptions configures a CompassWidget.
type CompassWidgetOptions struct {
	// Placement anchors the widget. Default: top-right.
	Placement Placement

	// Size is the compass diameter in pixels. Default: 40.
	Size float64

	// Margin is the distance from the canvas edge in pixels. Default: 12.
	Margin float64

	// Bearing rotates the needle clockwise, in degrees. Default: 0 (north up).
	Bearing float64
}

// DefaultCompassWidgetOptions returns compass widget options with defaults.
func DefaultCompassWidgetOptions() CompassWidgetOptions {
	return CompassWidgetOptions{
		Placement: PlacementTopRight,
		Size:      40,
		Margin:    12,
	}
}

// CompassWidget draws a compass rose with a north needle.
type CompassWidget struct {
	placement Placement
	size      float64
	margin    float64
	bearing   float64
}

// NewCompassWidget creates a compass control.
func NewCompassWidget(opts CompassWidgetOptions) *CompassWidget {
	def := DefaultCompassWidgetOptions()
	if opts.Size == 0 {
		opts.Size = def.Size
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.Placement == PlacementDefault {
		opts.Placement = def.Placement
	}
	return &CompassWidget{
		placement: opts.Placement,
		size:      opts.Size,
		margin:    opts.Margin,
		bearing:   opts.Bearing,
	}
}

func (w *CompassWidget) draw(dc *gg.Context, canvas Viewport, theme Theme, _ *Scene) {
	d := w.size
	x, y := w.placement.anchor(canvas, d, d, w.margin)
	cx, cy := x+d/2, y+d/2
	r := d / 2

	dc.DrawCircle(cx, cy, r)
	dc.SetColor(theme.WidgetFill.Color())
	dc.FillPreserve()
	dc.SetColor(theme.WidgetStroke.Color())
	dc.SetLineWidth(1)
	dc.Stroke()

	// Needle: north half in the accent color, south half in the stroke color.
	angle := w.bearing * math.Pi / 180
	nx, ny := math.Sin(angle), -math.Cos(angle)
	wx, wy := -ny, nx // Perpendicular for the needle base
	tip := r * 0.72
	base := r * 0.18

	dc.MoveTo(cx+nx*tip, cy+ny*tip)
	dc.LineTo(cx+wx*base, cy+wy*base)
	dc.LineTo(cx-wx*base, cy-wy*base)
	dc.ClosePath()
	dc.SetColor(theme.Accent.Color())
	dc.Fill()

	dc.MoveTo(cx-nx*tip, cy-ny*tip)
	dc.LineTo(cx+wx*base, cy+wy*base)
	dc.LineTo(cx-wx*base, cy-wy*base)
	dc.ClosePath()
	dc.SetColor(theme.WidgetStroke.Color())
	dc.Fill()
}

// FullscreenWidgetOptions configures a FullscreenWidget.
type FullscreenWidgetOptions struct {
	// Placement anchors the widget. Default: bottom-right.
	Placement Placement

	// Size is the side length in pixels. Default: 28.
	Size float64

	// Margin is the distance from the canvas edge in pixels. Default: 12.
	Margin float64
}

// DefaultFullscreenWidgetOptions returns fullscreen widget options with defaults.
func DefaultFullscreenWidgetOptions() FullscreenWidgetOptions {
	return FullscreenWidgetOptions{
		Placement: PlacementBottomRight,
		Size:      28,
		Margin:    12,
	}
}

// FullscreenWidget draws an expand control. Toggling display modes belongs to
// an interactive frontend; the widget exists so exported images carry the same
// chrome.
type FullscreenWidget struct {
	placement Placement
	size      float64
	margin    float64
}

// NewFullscreenWidget creates a fullscreen control.
func NewFullscreenWidget(opts FullscreenWidgetOptions) *FullscreenWidget {
	def := DefaultFullscreenWidgetOptions()
	if opts.Size == 0 {
		opts.Size = def.Size
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.Placement == PlacementDefault {
		opts.Placement = def.Placement
	}
	return &FullscreenWidget{placement: opts.Placement, size: opts.Size, margin: opts.Margin}
}

func (w *FullscreenWidget) draw(dc *gg.Context, canvas Viewport, theme Theme, _ *Scene) {
	s := w.size
	x, y := w.placement.anchor(canvas, s, s, w.margin)

	widgetPanel(dc, theme, x, y, s, s)

	// Corner brackets
	dc.SetColor(theme.WidgetStroke.Color())
	dc.SetLineWidth(1.5)
	inset := s * 0.25
	arm := s * 0.15

	corners := [][2]float64{
		{x + inset, y + inset},         // top-left
		{x + s - inset, y + inset},     // top-right
		{x + inset, y + s - inset},     // bottom-left
		{x + s - inset, y + s - inset}, // bottom-right
	}
	dirs := [][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for i, c := range corners {
		dx, dy := dirs[i][0], dirs[i][1]
		dc.MoveTo(c[0]+dx*arm, c[1])
		dc.LineTo(c[0], c[1])
		dc.LineTo(c[0], c[1]+dy*arm)
		dc.Stroke()
	}
}

// LayerListWidgetOptions configures a LayerListWidget.
type LayerListWidgetOptions struct {
	// Placement anchors the widget. Default: bottom-left.
	Placement Placement

	// SwatchSize is the side length of each color swatch in pixels. Default: 10.
	SwatchSize float64

	// Margin is the distance from the canvas edge in pixels. Default: 12.
	Margin float64
}

// DefaultLayerListWidgetOptions returns layer list widget options with defaults.
func DefaultLayerListWidgetOptions() LayerListWidgetOptions {
	return LayerListWidgetOptions{
		Placement:  PlacementBottomLeft,
		SwatchSize: 10,
		Margin:     12,
	}
}

// LayerListWidget draws a legend: one color swatch per scene layer, in draw
// order, with hidden layers shown as hollow swatches.
type LayerListWidget struct {
	placement Placement
	swatch    float64
	margin    float64
}

// NewLayerListWidget creates a layer list control.
func NewLayerListWidget(opts LayerListWidgetOptions) *LayerListWidget {
	def := DefaultLayerListWidgetOptions()
	if opts.SwatchSize == 0 {
		opts.SwatchSize = def.SwatchSize
	}
	if opts.Margin == 0 {
		opts.Margin = def.Margin
	}
	if opts.Placement == PlacementDefault {
		opts.Placement = def.Placement
	}
	return &LayerListWidget{placement: opts.Placement, swatch: opts.SwatchSize, margin: opts.Margin}
}

func (w *LayerListWidget) draw(dc *gg.Context, canvas Viewport, theme Theme, scene *Scene) {
	layers := scene.Layers()
	if len(layers) == 0 {
		return
	}

	const pad = 6
	row := w.swatch + pad
	width := w.swatch*6 + 2*pad
	height := row*float64(len(layers)) + pad
	x, y := w.placement.anchor(canvas, width, height, w.margin)

	widgetPanel(dc, theme, x, y, width, height)

	for i, layer := range layers {
		sy := y + pad + float64(i)*row
		sx := x + pad

		dc.DrawRectangle(sx, sy, w.swatch, w.swatch)
		if layer.Visible() {
			dc.SetColor(layer.legendColor(theme).Color())
			dc.FillPreserve()
		}
		dc.SetColor(theme.WidgetStroke.Color())
		dc.SetLineWidth(1)
		dc.Stroke()

		// Bar standing in for the layer name, scaled to the ID length.
		barLen := float64(len(layer.ID()))
		if barLen > 12 {
			barLen = 12
		}
		dc.DrawLine(sx+w.swatch+pad, sy+w.swatch/2, sx+w.swatch+pad+barLen*3, sy+w.swatch/2)
		dc.Stroke()
	}
}
