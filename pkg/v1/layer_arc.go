package geodeck

import (
	"math"

	"github.com/gogpu/gg"
)

// Arc connects two coordinates along the great circle between them.
type Arc struct {
	Source     Coordinate
	Target     Coordinate
	Properties map[string]interface{}
}

// ArcLayerOptions configures an ArcLayer.
type ArcLayerOptions struct {
	// ID identifies the layer. Default: "arc".
	ID string

	// Color is the stroke color. Default: translucent blue.
	Color gg.RGBA

	// Width is the stroke width in pixels. Default: 1.5.
	Width float64

	// Segments is the number of line segments each arc is sampled into.
	// Default: 64.
	Segments int
}

// DefaultArcLayerOptions returns arc layer options with defaults.
func DefaultArcLayerOptions() ArcLayerOptions {
	return ArcLayerOptions{
		ID:       "arc",
		Color:    gg.RGBA2(0.15, 0.38, 0.75, 0.7),
		Width:    1.5,
		Segments: 64,
	}
}

// ArcLayer renders great-circle arcs between coordinate pairs, sampled into
// polylines so they curve correctly in both flat and globe views.
type ArcLayer struct {
	id       string
	arcs     []Arc
	color    gg.RGBA
	width    float64
	segments int
	visible  bool

	// sampled caches the great-circle polylines; arcs are immutable after
	// construction so this is computed once.
	sampled []Path
}

// NewArcLayer creates a layer of great-circle arcs.
func NewArcLayer(arcs []Arc, opts ArcLayerOptions) *ArcLayer {
	def := DefaultArcLayerOptions()
	if opts.ID == "" {
		opts.ID = def.ID
	}
	if opts.Color == (gg.RGBA{}) {
		opts.Color = def.Color
	}
	if opts.Width == 0 {
		opts.Width = def.Width
	}
	if opts.Segments == 0 {
		opts.Segments = def.Segments
	}

	l := &ArcLayer{
		id:       opts.ID,
		arcs:     arcs,
		color:    opts.Color,
		width:    opts.Width,
		segments: opts.Segments,
		visible:  true,
	}
	l.sampled = make([]Path, len(arcs))
	for i, arc := range arcs {
		l.sampled[i] = greatCirclePath(arc.Source, arc.Target, opts.Segments)
	}
	return l
}

// ID returns the layer identifier.
func (l *ArcLayer) ID() string { return l.id }

// Visible reports whether the layer is drawn.
func (l *ArcLayer) Visible() bool { return l.visible }

// SetVisible toggles the layer on or off.
func (l *ArcLayer) SetVisible(visible bool) { l.visible = visible }

func (l *ArcLayer) legendColor(Theme) gg.RGBA { return l.color }

func (l *ArcLayer) render(rc *renderContext) {
	rc.dc.SetColor(l.color.Color())
	rc.dc.SetLineWidth(l.width)

	for i, path := range l.sampled {
		var box screenBox
		rc.dc.ClearPath()
		tracePath(rc, path, &box)
		rc.dc.Stroke()
		rc.addPick(l.id, i, l.arcs[i].Properties, box)
	}
}

// greatCirclePath samples the great circle between two coordinates into
// segments+1 points using spherical linear interpolation.
func greatCirclePath(from, to Coordinate, segments int) Path {
	if segments < 1 {
		segments = 1
	}

	ax, ay, az := toUnitVector(from)
	bx, by, bz := toUnitVector(to)

	dot := ax*bx + ay*by + az*bz
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	omega := math.Acos(dot)

	// Near-coincident (or antipodal, where the great circle is ambiguous):
	// fall back to a straight two-point path.
	if omega < 1e-9 || math.Pi-omega < 1e-9 {
		return Path{from, to}
	}

	sinOmega := math.Sin(omega)
	path := make(Path, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		wa := math.Sin((1-t)*omega) / sinOmega
		wb := math.Sin(t*omega) / sinOmega
		x := wa*ax + wb*bx
		y := wa*ay + wb*by
		z := wa*az + wb*bz
		path = append(path, fromUnitVector(x, y, z))
	}
	return path
}

// toUnitVector converts a coordinate to a unit vector on the sphere.
func toUnitVector(c Coordinate) (x, y, z float64) {
	lat := c.Lat * math.Pi / 180
	lon := c.Lon * math.Pi / 180
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	return cosLat * cosLon, cosLat * sinLon, sinLat
}

// fromUnitVector converts a unit vector back to a coordinate.
func fromUnitVector(x, y, z float64) Coordinate {
	return Coordinate{
		Lon: math.Atan2(y, x) * 180 / math.Pi,
		Lat: math.Asin(math.Max(-1, math.Min(1, z))) * 180 / math.Pi,
	}
}
