package geodeck

import (
	"github.com/gogpu/gg"
)

// Layer is a renderable slice of the scene: a dataset plus the configuration
// describing how to draw it.
//
// Layers are created with the New*Layer constructors and added to a Scene;
// draw order is the order of addition. Layer implementations live in this
// package; rendering is delegated to the gg drawing context, so a layer only
// projects its data and issues path commands.
type Layer interface {
	// ID returns the layer identifier used in pick results and the layer list.
	ID() string

	// Visible reports whether the layer is drawn.
	Visible() bool

	// SetVisible toggles the layer on or off.
	SetVisible(visible bool)

	render(rc *renderContext)
	legendColor(theme Theme) gg.RGBA
}

// renderContext carries the per-view drawing state through one layer pass.
type renderContext struct {
	dc     *gg.Context
	view   View
	theme  Theme
	picker *pickIndex
}

// addPick registers a pick footprint for the current view, clipped to the
// view's viewport. Geometry that projects outside the viewport is removed by
// the clip rect and never drawn, so it must not be pickable there.
func (rc *renderContext) addPick(layerID string, index int, object map[string]interface{}, box screenBox) {
	if !box.any {
		return
	}
	vp := rc.view.Viewport()
	if box.minX < vp.X {
		box.minX = vp.X
	}
	if box.maxX > vp.X+vp.Width {
		box.maxX = vp.X + vp.Width
	}
	if box.minY < vp.Y {
		box.minY = vp.Y
	}
	if box.maxY > vp.Y+vp.Height {
		box.maxY = vp.Y + vp.Height
	}
	if box.minX > box.maxX || box.minY > box.maxY {
		return
	}
	rc.picker.add(layerID, rc.view.Name(), index, object, box)
}

// screenBox accumulates a screen-space bounding box for picking.
type screenBox struct {
	minX, minY, maxX, maxY float64
	any                    bool
}

func (b *screenBox) add(x, y float64) {
	if !b.any {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.any = true
		return
	}
	if x < b.minX {
		b.minX = x
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// tracePath projects a path through the view and appends line segments to the
// current gg path. Runs of far-hemisphere coordinates split the polyline so no
// segment is drawn across the invisible side of a globe. Returns the bounding
// box of the visible projected points.
func tracePath(rc *renderContext, path Path, box *screenBox) {
	penDown := false
	for _, c := range path {
		x, y, visible := rc.view.Project(c)
		if !visible {
			penDown = false
			continue
		}
		box.add(x, y)
		if penDown {
			rc.dc.LineTo(x, y)
		} else {
			rc.dc.MoveTo(x, y)
			penDown = true
		}
	}
}

// traceRing is tracePath plus ClosePath for polygon rings.
func traceRing(rc *renderContext, ring Path, box *screenBox) {
	var local screenBox
	tracePath(rc, ring, &local)
	if local.any {
		rc.dc.ClosePath()
		box.add(local.minX, local.minY)
		box.add(local.maxX, local.maxY)
	}
}
