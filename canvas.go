package graphics

// Canvas describes the background raster that scenes are painted onto.
type Canvas struct {
	Width      int
	Height     int
	Background Color
}

// Composite rasterizes the scene onto a fresh background pixmap.
// Drawables are painted in list order, so later entries overwrite
// earlier ones where they overlap.
func (canvas Canvas) Composite(scene Scene) *Pixmap {
	dst := NewPixmap(canvas.Width, canvas.Height, canvas.Background)
	for _, drawable := range scene {
		drawable.Draw(dst)
	}
	return dst
}

// CompositeSequence rasterizes each frame independently against the
// same canvas geometry.
func (canvas Canvas) CompositeSequence(frames []Scene) []*Pixmap {
	rasters := make([]*Pixmap, 0, len(frames))
	for _, scene := range frames {
		rasters = append(rasters, canvas.Composite(scene))
	}
	return rasters
}
