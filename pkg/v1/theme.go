package geodeck

import (
	"github.com/gogpu/gg"
)

// ThemeMode selects between the light and dark palettes.
type ThemeMode int

const (
	// ThemeLight is the default palette for light environments.
	ThemeLight ThemeMode = iota

	// ThemeDark is the palette for dark environments.
	ThemeDark
)

// String returns the human-readable name of the theme mode.
func (m ThemeMode) String() string {
	switch m {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		return "Unknown"
	}
}

// Theme is an immutable set of scene colors.
//
// Compute a Theme once at startup (e.g. from an environment preference) and
// pass it by parameter; theme selection is explicit configuration, never
// ambient process-wide state.
type Theme struct {
	Mode ThemeMode

	// Background fills the canvas outside all viewports.
	Background gg.RGBA

	// Water fills each viewport behind the layers (the globe disc on globe
	// views, the whole viewport on flat views).
	Water gg.RGBA

	// WidgetFill and WidgetStroke color the overlay controls.
	WidgetFill   gg.RGBA
	WidgetStroke gg.RGBA

	// Accent is used for emphasis marks such as the compass needle.
	Accent gg.RGBA
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Mode:         ThemeLight,
		Background:   gg.Hex("#e8e8e3"),
		Water:        gg.Hex("#cfe0ee"),
		WidgetFill:   gg.RGBA2(1, 1, 1, 0.92),
		WidgetStroke: gg.Hex("#4a5560"),
		Accent:       gg.Hex("#d43d33"),
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Mode:         ThemeDark,
		Background:   gg.Hex("#15181d"),
		Water:        gg.Hex("#1d2733"),
		WidgetFill:   gg.RGBA2(0.12, 0.14, 0.17, 0.92),
		WidgetStroke: gg.Hex("#aab4bf"),
		Accent:       gg.Hex("#e05a50"),
	}
}

// ThemeFor returns DarkTheme when dark is true, LightTheme otherwise.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
