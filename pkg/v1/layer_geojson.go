package geodeck

import (
	"github.com/gogpu/gg"
)

// GeoJSONLayerOptions configures a GeoJSONLayer.
type GeoJSONLayerOptions struct {
	// ID identifies the layer. Default: "geojson".
	ID string

	// StrokeColor is the outline color. Default: dark slate.
	StrokeColor gg.RGBA

	// FillColor fills polygon interiors when Filled is true. Default: light
	// translucent gray.
	FillColor gg.RGBA

	// LineWidth is the stroke width in pixels. Default: 1.
	LineWidth float64

	// Filled enables polygon fills. Outlines are always stroked. Default: false.
	Filled bool

	// PointRadius is the radius for point features in pixels. Default: 3.
	PointRadius float64
}

// DefaultGeoJSONLayerOptions returns GeoJSON layer options with defaults.
func DefaultGeoJSONLayerOptions() GeoJSONLayerOptions {
	return GeoJSONLayerOptions{
		ID:          "geojson",
		StrokeColor: gg.Hex("#3d4852"),
		FillColor:   gg.RGBA2(0.55, 0.58, 0.55, 0.35),
		LineWidth:   1,
		Filled:      false,
		PointRadius: 3,
	}
}

// GeoJSONLayer renders the features of a dataset: polygon outlines and fills,
// polylines, and point markers, depending on each feature's geometry.
type GeoJSONLayer struct {
	id          string
	data        *Dataset
	strokeColor gg.RGBA
	fillColor   gg.RGBA
	lineWidth   float64
	filled      bool
	pointRadius float64
	visible     bool
}

// NewGeoJSONLayer creates a layer over a loaded dataset.
//
// Example:
//
//	countries, err := loader.LoadDataset(ctx, "ne_110m_admin_0_countries.geojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outlines := geodeck.NewGeoJSONLayer(countries, geodeck.GeoJSONLayerOptions{
//	    ID: "countries",
//	})
func NewGeoJSONLayer(data *Dataset, opts GeoJSONLayerOptions) *GeoJSONLayer {
	def := DefaultGeoJSONLayerOptions()
	if opts.ID == "" {
		opts.ID = def.ID
	}
	if opts.StrokeColor == (gg.RGBA{}) {
		opts.StrokeColor = def.StrokeColor
	}
	if opts.FillColor == (gg.RGBA{}) {
		opts.FillColor = def.FillColor
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = def.LineWidth
	}
	if opts.PointRadius == 0 {
		opts.PointRadius = def.PointRadius
	}
	return &GeoJSONLayer{
		id:          opts.ID,
		data:        data,
		strokeColor: opts.StrokeColor,
		fillColor:   opts.FillColor,
		lineWidth:   opts.LineWidth,
		filled:      opts.Filled,
		pointRadius: opts.PointRadius,
		visible:     true,
	}
}

// ID returns the layer identifier.
func (l *GeoJSONLayer) ID() string { return l.id }

// Visible reports whether the layer is drawn.
func (l *GeoJSONLayer) Visible() bool { return l.visible }

// SetVisible toggles the layer on or off.
func (l *GeoJSONLayer) SetVisible(visible bool) { l.visible = visible }

// Dataset returns the layer's underlying dataset.
func (l *GeoJSONLayer) Dataset() *Dataset { return l.data }

func (l *GeoJSONLayer) legendColor(Theme) gg.RGBA { return l.strokeColor }

func (l *GeoJSONLayer) render(rc *renderContext) {
	if l.data == nil {
		return
	}

	rc.dc.SetLineWidth(l.lineWidth)

	for i := range l.data.features {
		f := &l.data.features[i]
		var box screenBox

		switch f.geometry.Type {
		case GeometryTypePolygon:
			rc.dc.ClearPath()
			for _, rings := range f.geometry.Rings {
				for _, ring := range rings {
					traceRing(rc, ring, &box)
				}
			}
			if l.filled {
				rc.dc.SetColor(l.fillColor.Color())
				rc.dc.FillPreserve()
			}
			rc.dc.SetColor(l.strokeColor.Color())
			rc.dc.Stroke()

		case GeometryTypeLineString:
			rc.dc.ClearPath()
			for _, path := range f.geometry.Paths {
				tracePath(rc, path, &box)
			}
			rc.dc.SetColor(l.strokeColor.Color())
			rc.dc.Stroke()

		case GeometryTypePoint:
			rc.dc.SetColor(l.strokeColor.Color())
			for _, pt := range f.geometry.Points {
				x, y, visible := rc.view.Project(pt)
				if !visible {
					continue
				}
				box.add(x-l.pointRadius, y-l.pointRadius)
				box.add(x+l.pointRadius, y+l.pointRadius)
				rc.dc.DrawCircle(x, y, l.pointRadius)
				rc.dc.Fill()
			}
		}

		rc.addPick(l.id, i, f.properties, box)
	}
}
