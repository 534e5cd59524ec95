package geodeck

import (
	"image"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// BitmapLayerOptions configures a BitmapLayer.
type BitmapLayerOptions struct {
	// ID identifies the layer. Default: "bitmap".
	ID string

	// Opacity blends the bitmap over the layers below, in [0, 1]. Default: 1.
	Opacity float64
}

// DefaultBitmapLayerOptions returns bitmap layer options with defaults.
func DefaultBitmapLayerOptions() BitmapLayerOptions {
	return BitmapLayerOptions{
		ID:      "bitmap",
		Opacity: 1,
	}
}

// BitmapLayer stretches a raster image (a basemap tile, a scanned chart) over
// a geographic bounding box.
//
// The layer renders in flat map views only: a rectangular raster cannot be
// draped over an orthographic globe without resampling, which is out of scope.
type BitmapLayer struct {
	id      string
	img     image.Image
	bounds  Bounds
	opacity float64
	visible bool
}

// NewBitmapLayer creates a raster layer covering the given geographic bounds.
//
// Example:
//
//	img, err := geodeck.LoadImageFile("basemap.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	basemap := geodeck.NewBitmapLayer(img, geodeck.Bounds{
//	    MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90,
//	}, geodeck.BitmapLayerOptions{ID: "basemap"})
func NewBitmapLayer(img image.Image, bounds Bounds, opts BitmapLayerOptions) *BitmapLayer {
	def := DefaultBitmapLayerOptions()
	if opts.ID == "" {
		opts.ID = def.ID
	}
	if opts.Opacity == 0 {
		opts.Opacity = def.Opacity
	}
	return &BitmapLayer{
		id:      opts.ID,
		img:     img,
		bounds:  bounds,
		opacity: opts.Opacity,
		visible: true,
	}
}

// ID returns the layer identifier.
func (l *BitmapLayer) ID() string { return l.id }

// Visible reports whether the layer is drawn.
func (l *BitmapLayer) Visible() bool { return l.visible }

// SetVisible toggles the layer on or off.
func (l *BitmapLayer) SetVisible(visible bool) { l.visible = visible }

// GeoBounds returns the geographic extent the raster is stretched over.
func (l *BitmapLayer) GeoBounds() Bounds { return l.bounds }

func (l *BitmapLayer) legendColor(theme Theme) gg.RGBA { return theme.Water }

func (l *BitmapLayer) render(rc *renderContext) {
	if l.img == nil {
		return
	}
	if _, ok := rc.view.(*MapView); !ok {
		return
	}

	// Project the northwest and southeast corners to find the target rect.
	x0, y0, _ := rc.view.Project(Coordinate{Lon: l.bounds.MinLon, Lat: l.bounds.MaxLat})
	x1, y1, _ := rc.view.Project(Coordinate{Lon: l.bounds.MaxLon, Lat: l.bounds.MinLat})

	dstW := int(x1 - x0)
	dstH := int(y1 - y0)
	if dstW <= 0 || dstH <= 0 {
		return
	}

	scaled := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), l.img, l.img.Bounds(), xdraw.Over, nil)

	rc.dc.DrawImageEx(gg.ImageBufFromImage(scaled), gg.DrawImageOptions{
		X:       x0,
		Y:       y0,
		Opacity: l.opacity,
	})

	var box screenBox
	box.add(x0, y0)
	box.add(x1, y1)
	rc.addPick(l.id, 0, nil, box)
}
