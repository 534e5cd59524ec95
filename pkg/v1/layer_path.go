package geodeck

import (
	"github.com/gogpu/gg"
)

// PathLayerOptions configures a PathLayer.
type PathLayerOptions struct {
	// ID identifies the layer. Default: "path".
	ID string

	// Color is the stroke color. Default: mid gray.
	Color gg.RGBA

	// Width is the stroke width in pixels. Default: 1.
	Width float64
}

// DefaultPathLayerOptions returns path layer options with defaults.
func DefaultPathLayerOptions() PathLayerOptions {
	return PathLayerOptions{
		ID:    "path",
		Color: gg.Hex("#9aa3ad"),
		Width: 1,
	}
}

// PathLayer renders plain polyline data, such as a graticule grid.
//
// The layer takes ownership of the path slice and treats it as read-only.
type PathLayer struct {
	id      string
	paths   []Path
	color   gg.RGBA
	width   float64
	visible bool
}

// NewPathLayer creates a layer that strokes the given paths.
//
// A GraticuleSet can be passed directly:
//
//	grid := geodeck.NewPathLayer(geodeck.GenerateGraticule(30), geodeck.PathLayerOptions{
//	    ID:    "graticule",
//	    Color: gg.RGBA2(0.5, 0.5, 0.5, 0.4),
//	})
func NewPathLayer(paths []Path, opts PathLayerOptions) *PathLayer {
	def := DefaultPathLayerOptions()
	if opts.ID == "" {
		opts.ID = def.ID
	}
	if opts.Color == (gg.RGBA{}) {
		opts.Color = def.Color
	}
	if opts.Width == 0 {
		opts.Width = def.Width
	}
	return &PathLayer{
		id:      opts.ID,
		paths:   paths,
		color:   opts.Color,
		width:   opts.Width,
		visible: true,
	}
}

// ID returns the layer identifier.
func (l *PathLayer) ID() string { return l.id }

// Visible reports whether the layer is drawn.
func (l *PathLayer) Visible() bool { return l.visible }

// SetVisible toggles the layer on or off.
func (l *PathLayer) SetVisible(visible bool) { l.visible = visible }

func (l *PathLayer) legendColor(Theme) gg.RGBA { return l.color }

func (l *PathLayer) render(rc *renderContext) {
	rc.dc.SetColor(l.color.Color())
	rc.dc.SetLineWidth(l.width)

	for i, path := range l.paths {
		if len(path) < 2 {
			continue
		}
		var box screenBox
		rc.dc.ClearPath()
		tracePath(rc, path, &box)
		rc.dc.Stroke()
		rc.addPick(l.id, i, nil, box)
	}
}
