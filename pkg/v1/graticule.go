package geodeck

// GenerateGraticule builds the grid of latitude parallels and meridians drawn
// behind a map at the given resolution in degrees.
//
// Parallels are emitted first, in north/south pairs working outward from the
// equator: for each latitude from 0 up to (but not including) 90 in resolution
// steps, a path at +lat then a path at -lat, each sampled at longitudes -180,
// -90, 0, 90, and 180 so it follows the parallel under non-linear projections.
// The equator is emitted twice, once per hemisphere pass. Meridians follow,
// one two-point path from the south pole to the north pole for each longitude
// from -180 up to (but not including) 180 in resolution steps.
//
// At 30 degree resolution this yields 6 parallel paths and 12 meridians.
// The resolution must be positive and finite; the latitude and longitude
// steps accumulate by repeated addition.
//
// Example:
//
//	grid := geodeck.GenerateGraticule(30)
//	scene.AddLayer(geodeck.NewPathLayer(grid, geodeck.PathLayerOptions{
//	    ID: "graticule",
//	}))
func GenerateGraticule(resolutionDegrees float64) GraticuleSet {
	var paths GraticuleSet

	for lat := 0.0; lat < 90; lat += resolutionDegrees {
		north := Path{
			{Lon: -180, Lat: lat},
			{Lon: -90, Lat: lat},
			{Lon: 0, Lat: lat},
			{Lon: 90, Lat: lat},
			{Lon: 180, Lat: lat},
		}
		south := Path{
			{Lon: -180, Lat: -lat},
			{Lon: -90, Lat: -lat},
			{Lon: 0, Lat: -lat},
			{Lon: 90, Lat: -lat},
			{Lon: 180, Lat: -lat},
		}
		paths = append(paths, north, south)
	}

	for lon := -180.0; lon < 180; lon += resolutionDegrees {
		paths = append(paths, Path{
			{Lon: lon, Lat: -90},
			{Lon: lon, Lat: 90},
		})
	}

	return paths
}
