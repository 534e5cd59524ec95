package geodeck

import (
	"math"
)

// Viewport is a rectangular region of the canvas in pixels.
type Viewport struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the pixel at the middle of the viewport.
func (vp Viewport) Center() (x, y float64) {
	return vp.X + vp.Width/2, vp.Y + vp.Height/2
}

// Contains reports whether the pixel (x, y) lies inside the viewport.
func (vp Viewport) Contains(x, y float64) bool {
	return x >= vp.X && x <= vp.X+vp.Width &&
		y >= vp.Y && y <= vp.Y+vp.Height
}

// View maps geographic coordinates to canvas pixels for one region of a scene.
//
// A scene may hold several views (e.g. a flat map and a globe side by side);
// each view is assigned its own viewport when the scene is rendered.
type View interface {
	// Name returns the view identifier used in pick results and layer filters.
	Name() string

	// Project converts a geographic coordinate to canvas pixels. visible is
	// false when the coordinate cannot appear in this view at all (e.g. the
	// back hemisphere of a globe); pixels outside the viewport still report
	// visible=true and are removed by clipping.
	Project(c Coordinate) (x, y float64, visible bool)

	// Unproject converts canvas pixels back to a geographic coordinate.
	// ok is false when the pixel is outside the projection domain.
	Unproject(x, y float64) (Coordinate, bool)

	// Viewport returns the screen region assigned to this view.
	Viewport() Viewport

	setViewport(vp Viewport)
}

// MapViewOptions configures a flat map view.
type MapViewOptions struct {
	// Name identifies the view. Default: "map".
	Name string

	// Center is the geographic coordinate at the middle of the viewport.
	// Default: (0, 0).
	Center Coordinate

	// Zoom follows the web map convention: at zoom 0 the full 360 degrees of
	// longitude span 256 pixels, and each unit doubles the scale. Default: 0.
	Zoom float64
}

// DefaultMapViewOptions returns map view options with defaults.
func DefaultMapViewOptions() MapViewOptions {
	return MapViewOptions{
		Name:   "map",
		Center: Coordinate{Lon: 0, Lat: 0},
		Zoom:   0,
	}
}

// MapView is a flat equirectangular view: longitude and latitude map linearly
// to pixels around the view center.
type MapView struct {
	name     string
	center   Coordinate
	zoom     float64
	viewport Viewport
}

// NewMapView creates a flat map view.
func NewMapView(opts MapViewOptions) *MapView {
	if opts.Name == "" {
		opts.Name = "map"
	}
	return &MapView{
		name:   opts.Name,
		center: opts.Center,
		zoom:   opts.Zoom,
	}
}

// Name returns the view identifier.
func (v *MapView) Name() string { return v.name }

// Viewport returns the screen region assigned to this view.
func (v *MapView) Viewport() Viewport { return v.viewport }

func (v *MapView) setViewport(vp Viewport) { v.viewport = vp }

// Zoom returns the current zoom level.
func (v *MapView) Zoom() float64 { return v.zoom }

// Center returns the current view center.
func (v *MapView) Center() Coordinate { return v.center }

// pixelsPerDegree returns the linear scale for the current zoom.
func (v *MapView) pixelsPerDegree() float64 {
	return 256 * math.Pow(2, v.zoom) / 360
}

// Project converts a geographic coordinate to canvas pixels.
func (v *MapView) Project(c Coordinate) (x, y float64, visible bool) {
	cx, cy := v.viewport.Center()
	s := v.pixelsPerDegree()
	x = cx + (c.Lon-v.center.Lon)*s
	y = cy - (c.Lat-v.center.Lat)*s
	return x, y, true
}

// Unproject converts canvas pixels back to a geographic coordinate.
func (v *MapView) Unproject(x, y float64) (Coordinate, bool) {
	cx, cy := v.viewport.Center()
	s := v.pixelsPerDegree()
	c := Coordinate{
		Lon: v.center.Lon + (x-cx)/s,
		Lat: v.center.Lat - (y-cy)/s,
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return Coordinate{}, false
	}
	return c, true
}

// GlobeViewOptions configures an orthographic globe view.
type GlobeViewOptions struct {
	// Name identifies the view. Default: "globe".
	Name string

	// Center is the coordinate facing the viewer. Default: (0, 0).
	Center Coordinate

	// Zoom scales the globe radius: at zoom 0 the globe fills 90% of the
	// smaller viewport dimension, and each unit doubles the radius. Default: 0.
	Zoom float64
}

// DefaultGlobeViewOptions returns globe view options with defaults.
func DefaultGlobeViewOptions() GlobeViewOptions {
	return GlobeViewOptions{
		Name:   "globe",
		Center: Coordinate{Lon: 0, Lat: 0},
		Zoom:   0,
	}
}

// GlobeView is an orthographic projection of the sphere: the hemisphere facing
// the view center is visible, the far hemisphere is culled.
type GlobeView struct {
	name     string
	center   Coordinate
	zoom     float64
	viewport Viewport
}

// NewGlobeView creates an orthographic globe view.
func NewGlobeView(opts GlobeViewOptions) *GlobeView {
	if opts.Name == "" {
		opts.Name = "globe"
	}
	return &GlobeView{
		name:   opts.Name,
		center: opts.Center,
		zoom:   opts.Zoom,
	}
}

// Name returns the view identifier.
func (v *GlobeView) Name() string { return v.name }

// Viewport returns the screen region assigned to this view.
func (v *GlobeView) Viewport() Viewport { return v.viewport }

func (v *GlobeView) setViewport(vp Viewport) { v.viewport = vp }

// Center returns the coordinate facing the viewer.
func (v *GlobeView) Center() Coordinate { return v.center }

// Radius returns the globe radius in pixels for the current viewport.
func (v *GlobeView) Radius() float64 {
	short := v.viewport.Width
	if v.viewport.Height < short {
		short = v.viewport.Height
	}
	return 0.45 * short * math.Pow(2, v.zoom)
}

// Project converts a geographic coordinate to canvas pixels.
//
// visible is false for coordinates on the far hemisphere.
func (v *GlobeView) Project(c Coordinate) (x, y float64, visible bool) {
	lat := c.Lat * math.Pi / 180
	lon := c.Lon * math.Pi / 180
	lat0 := v.center.Lat * math.Pi / 180
	lon0 := v.center.Lon * math.Pi / 180

	sinLat, cosLat := math.Sincos(lat)
	sinLat0, cosLat0 := math.Sincos(lat0)
	sinDLon, cosDLon := math.Sincos(lon - lon0)

	// Angular distance from the view center; negative means far hemisphere.
	cosC := sinLat0*sinLat + cosLat0*cosLat*cosDLon

	r := v.Radius()
	cx, cy := v.viewport.Center()
	x = cx + r*cosLat*sinDLon
	y = cy - r*(cosLat0*sinLat-sinLat0*cosLat*cosDLon)
	return x, y, cosC >= 0
}

// Unproject converts canvas pixels back to a geographic coordinate.
//
// ok is false for pixels outside the globe disc.
func (v *GlobeView) Unproject(x, y float64) (Coordinate, bool) {
	r := v.Radius()
	if r <= 0 {
		return Coordinate{}, false
	}
	cx, cy := v.viewport.Center()
	px := (x - cx) / r
	py := -(y - cy) / r

	rho := math.Hypot(px, py)
	if rho > 1 {
		return Coordinate{}, false
	}
	if rho == 0 {
		return v.center, true
	}

	c := math.Asin(rho)
	sinC, cosC := math.Sincos(c)
	lat0 := v.center.Lat * math.Pi / 180
	sinLat0, cosLat0 := math.Sincos(lat0)

	lat := math.Asin(cosC*sinLat0 + py*sinC*cosLat0/rho)
	lon := v.center.Lon*math.Pi/180 +
		math.Atan2(px*sinC, rho*cosC*cosLat0-py*sinC*sinLat0)

	return Coordinate{
		Lon: lon * 180 / math.Pi,
		Lat: lat * 180 / math.Pi,
	}, true
}
