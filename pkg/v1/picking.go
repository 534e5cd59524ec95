package geodeck

import (
	"github.com/dhconnelly/rtreego"
)

// PickInfo describes the rendered object found under a canvas position.
type PickInfo struct {
	// LayerID identifies the layer the object belongs to.
	LayerID string

	// ViewName identifies the view the object was rendered in.
	ViewName string

	// Index is the position of the object within its layer's data.
	Index int

	// Object holds the properties of the picked object (may be nil).
	Object map[string]interface{}
}

// pickRecord is one rendered object's screen footprint in the R-tree.
type pickRecord struct {
	layerID  string
	viewName string
	index    int
	object   map[string]interface{}
	rect     rtreego.Rect
	order    int
}

// Bounds implements rtreego.Spatial.
func (r *pickRecord) Bounds() rtreego.Rect {
	return r.rect
}

// pickIndex is a screen-space spatial index rebuilt on every render.
type pickIndex struct {
	tree *rtreego.Rtree
	seq  int
}

func newPickIndex() *pickIndex {
	return &pickIndex{
		tree: rtreego.NewTree(2, 25, 50),
	}
}

// add registers a rendered object's screen bounding box. Degenerate boxes
// (points, horizontal or vertical lines) are inflated so they stay pickable.
func (p *pickIndex) add(layerID, viewName string, index int, object map[string]interface{}, box screenBox) {
	if !box.any {
		return
	}

	const slop = 1.0
	w := box.maxX - box.minX
	h := box.maxY - box.minY
	rect, err := rtreego.NewRect(
		rtreego.Point{box.minX - slop, box.minY - slop},
		[]float64{w + 2*slop, h + 2*slop},
	)
	if err != nil {
		return
	}

	p.seq++
	p.tree.Insert(&pickRecord{
		layerID:  layerID,
		viewName: viewName,
		index:    index,
		object:   object,
		rect:     rect,
		order:    p.seq,
	})
}

// pick returns the topmost object whose footprint contains (x, y). Topmost
// means last drawn, matching the scene's layer order.
func (p *pickIndex) pick(x, y float64) (PickInfo, bool) {
	probe, err := rtreego.NewRect(rtreego.Point{x - 0.5, y - 0.5}, []float64{1, 1})
	if err != nil {
		return PickInfo{}, false
	}

	var best *pickRecord
	for _, spatial := range p.tree.SearchIntersect(probe) {
		rec := spatial.(*pickRecord)
		if best == nil || rec.order > best.order {
			best = rec
		}
	}
	if best == nil {
		return PickInfo{}, false
	}

	return PickInfo{
		LayerID:  best.layerID,
		ViewName: best.viewName,
		Index:    best.index,
		Object:   best.object,
	}, true
}
