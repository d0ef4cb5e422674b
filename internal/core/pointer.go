package core

import "math"

// CellIndex maps a pointer offset along one axis of a drawing surface to
// a grid index: floor(offset / (surfaceExtent / gridExtent)). The boolean
// is false when the offset falls outside the surface.
func CellIndex(offset, surfaceExtent, gridExtent int) (int, bool) {
	if surfaceExtent <= 0 || gridExtent <= 0 || offset < 0 || offset >= surfaceExtent {
		return 0, false
	}
	cellSize := float64(surfaceExtent) / float64(gridExtent)
	idx := int(math.Floor(float64(offset) / cellSize))
	return min(idx, gridExtent-1), true
}

// MapPointer converts screen coordinates into grid coordinates for a grid
// of gridW x gridH cells drawn inside surface.
func MapPointer(surface Rect, px, py, gridW, gridH int) (x, y int, ok bool) {
	x, okX := CellIndex(px-surface.X, surface.W, gridW)
	y, okY := CellIndex(py-surface.Y, surface.H, gridH)
	return x, y, okX && okY
}

// DragTracker suppresses repeated edits of the same cell during one
// continuous drag. Press always acts; Drag acts only when the cell differs
// from the last one acted on. Cells skipped over by a fast drag are not
// interpolated.
type DragTracker struct {
	active bool
	lastX  int
	lastY  int
}

// Press starts a gesture on (x, y) and reports that the caller should act.
func (d *DragTracker) Press(x, y int) bool {
	d.active = true
	d.lastX, d.lastY = x, y
	return true
}

// Drag reports whether the caller should act on (x, y).
func (d *DragTracker) Drag(x, y int) bool {
	if !d.active {
		return false
	}
	if x == d.lastX && y == d.lastY {
		return false
	}
	d.lastX, d.lastY = x, y
	return true
}

// Release ends the gesture.
func (d *DragTracker) Release() {
	d.active = false
}

// Active reports whether a gesture is in progress.
func (d *DragTracker) Active() bool {
	return d.active
}
