package graphics

// Drawable is a scene element that can paint itself onto a raster.
type Drawable interface {
	Draw(dst *Pixmap)
}

// Scene is an ordered list of drawables. The first element is painted
// first and ends up bottom-most.
type Scene []Drawable
