package geodeck

// Coordinate is a geographic position in WGS-84 decimal degrees.
//
// Longitude comes first throughout this package, matching the GeoJSON
// convention.
type Coordinate struct {
	Lon float64
	Lat float64
}

// Path is an ordered sequence of coordinates forming a polyline.
type Path []Coordinate

// GraticuleSet is the collection of paths making up a graticule grid.
type GraticuleSet []Path
