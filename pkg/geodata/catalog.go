package geodata

// Kind classifies a catalog entry's payload.
type Kind int

const (
	// KindGeoJSON marks vector datasets in GeoJSON format.
	KindGeoJSON Kind = iota

	// KindRaster marks raster images (PNG or JPEG).
	KindRaster
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGeoJSON:
		return "GeoJSON"
	case KindRaster:
		return "Raster"
	default:
		return "Unknown"
	}
}

// Entry describes one remote dataset.
type Entry struct {
	Name        string // Short identifier, e.g. "world-countries"
	URL         string // Direct download URL
	Kind        Kind   // Payload format
	Description string // Human-readable summary
}

// Catalog is a registry of named remote datasets.
//
// Scenes refer to datasets by name; the catalog resolves names to URLs so demo
// programs and tests share one source of truth.
type Catalog struct {
	Entries []Entry
}

// BuiltinCatalog returns the datasets used by the bundled demos: public
// Natural Earth derivatives hosted for the deck.gl examples.
func BuiltinCatalog() *Catalog {
	return &Catalog{
		Entries: []Entry{
			{
				Name:        "world-countries",
				URL:         "https://raw.githubusercontent.com/visgl/deck.gl-data/master/website/ne_110m_admin_0_countries.geojson",
				Kind:        KindGeoJSON,
				Description: "Natural Earth 1:110m country boundaries",
			},
			{
				Name:        "airports",
				URL:         "https://raw.githubusercontent.com/visgl/deck.gl-data/master/examples/line/airports.json",
				Kind:        KindGeoJSON,
				Description: "Major world airports with name, abbreviation, and type",
			},
			{
				Name:        "world-basemap",
				URL:         "https://raw.githubusercontent.com/visgl/deck.gl-data/master/website/bitmap-world.jpg",
				Kind:        KindRaster,
				Description: "Equirectangular world raster covering [-180,180] x [-90,90]",
			},
		},
	}
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Add appends an entry, replacing any existing entry with the same name.
func (c *Catalog) Add(entry Entry) {
	for i, e := range c.Entries {
		if e.Name == entry.Name {
			c.Entries[i] = entry
			return
		}
	}
	c.Entries = append(c.Entries, entry)
}
