package geodeck

import (
	"github.com/gogpu/gg"
)

// ScatterplotLayerOptions configures a ScatterplotLayer.
type ScatterplotLayerOptions struct {
	// ID identifies the layer. Default: "scatterplot".
	ID string

	// FillColor fills each marker. Default: warm orange.
	FillColor gg.RGBA

	// StrokeColor outlines each marker when Stroked is true. Default: near black.
	StrokeColor gg.RGBA

	// Radius is the marker radius in pixels. Default: 4.
	Radius float64

	// Stroked outlines each marker. Default: false.
	Stroked bool

	// GetRadius optionally overrides Radius per feature. Return 0 to fall back
	// to the layer radius.
	GetRadius func(f *Feature) float64
}

// DefaultScatterplotLayerOptions returns scatterplot options with defaults.
func DefaultScatterplotLayerOptions() ScatterplotLayerOptions {
	return ScatterplotLayerOptions{
		ID:          "scatterplot",
		FillColor:   gg.Hex("#e8823c"),
		StrokeColor: gg.Hex("#22262a"),
		Radius:      4,
		Stroked:     false,
	}
}

// ScatterplotLayer renders circular markers for the point features of a
// dataset. Non-point features are ignored.
type ScatterplotLayer struct {
	id          string
	data        *Dataset
	fillColor   gg.RGBA
	strokeColor gg.RGBA
	radius      float64
	stroked     bool
	getRadius   func(f *Feature) float64
	visible     bool
}

// NewScatterplotLayer creates a marker layer over a dataset of points.
func NewScatterplotLayer(data *Dataset, opts ScatterplotLayerOptions) *ScatterplotLayer {
	def := DefaultScatterplotLayerOptions()
	if opts.ID == "" {
		opts.ID = def.ID
	}
	if opts.FillColor == (gg.RGBA{}) {
		opts.FillColor = def.FillColor
	}
	if opts.StrokeColor == (gg.RGBA{}) {
		opts.StrokeColor = def.StrokeColor
	}
	if opts.Radius == 0 {
		opts.Radius = def.Radius
	}
	return &ScatterplotLayer{
		id:          opts.ID,
		data:        data,
		fillColor:   opts.FillColor,
		strokeColor: opts.StrokeColor,
		radius:      opts.Radius,
		stroked:     opts.Stroked,
		getRadius:   opts.GetRadius,
		visible:     true,
	}
}

// ID returns the layer identifier.
func (l *ScatterplotLayer) ID() string { return l.id }

// Visible reports whether the layer is drawn.
func (l *ScatterplotLayer) Visible() bool { return l.visible }

// SetVisible toggles the layer on or off.
func (l *ScatterplotLayer) SetVisible(visible bool) { l.visible = visible }

func (l *ScatterplotLayer) legendColor(Theme) gg.RGBA { return l.fillColor }

func (l *ScatterplotLayer) render(rc *renderContext) {
	if l.data == nil {
		return
	}

	for i := range l.data.features {
		f := &l.data.features[i]
		if f.geometry.Type != GeometryTypePoint {
			continue
		}

		r := l.radius
		if l.getRadius != nil {
			if custom := l.getRadius(f); custom > 0 {
				r = custom
			}
		}

		var box screenBox
		for _, pt := range f.geometry.Points {
			x, y, visible := rc.view.Project(pt)
			if !visible {
				continue
			}
			box.add(x-r, y-r)
			box.add(x+r, y+r)

			rc.dc.DrawCircle(x, y, r)
			rc.dc.SetColor(l.fillColor.Color())
			if l.stroked {
				rc.dc.FillPreserve()
				rc.dc.SetColor(l.strokeColor.Color())
				rc.dc.SetLineWidth(1)
				rc.dc.Stroke()
			} else {
				rc.dc.Fill()
			}
		}

		rc.addPick(l.id, i, f.properties, box)
	}
}
