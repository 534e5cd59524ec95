package geodeck

import (
	"testing"
)

// TestThemeFor tests explicit theme selection
func TestThemeFor(t *testing.T) {
	if got := ThemeFor(false); got.Mode != ThemeLight {
		t.Errorf("ThemeFor(false) mode = %v, want Light", got.Mode)
	}
	if got := ThemeFor(true); got.Mode != ThemeDark {
		t.Errorf("ThemeFor(true) mode = %v, want Dark", got.Mode)
	}
}

// TestThemePalettesDiffer tests that the palettes are distinct
func TestThemePalettesDiffer(t *testing.T) {
	light, dark := LightTheme(), DarkTheme()
	if light.Background == dark.Background {
		t.Error("Expected distinct background colors")
	}
	if light.Water == dark.Water {
		t.Error("Expected distinct water colors")
	}
}

// TestThemeModeString tests the mode names
func TestThemeModeString(t *testing.T) {
	if ThemeLight.String() != "Light" || ThemeDark.String() != "Dark" {
		t.Error("Unexpected theme mode names")
	}
	if ThemeMode(99).String() != "Unknown" {
		t.Error("Expected Unknown for out-of-range mode")
	}
}

// TestPlacementAnchor tests corner anchoring math
func TestPlacementAnchor(t *testing.T) {
	canvas := Viewport{Width: 100, Height: 100}

	tests := []struct {
		placement Placement
		wantX     float64
		wantY     float64
	}{
		{PlacementTopLeft, 10, 10},
		{PlacementTopRight, 70, 10},
		{PlacementBottomLeft, 10, 70},
		{PlacementBottomRight, 70, 70},
	}
	for _, tt := range tests {
		t.Run(tt.placement.String(), func(t *testing.T) {
			x, y := tt.placement.anchor(canvas, 20, 20, 10)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("anchor = (%f, %f), want (%f, %f)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
