package ggdt

// Rect is an axis-aligned rectangle described by its top-left corner and
// its extent. Width and Height are unsigned: a rect with zero width or
// height covers no area.
type Rect struct {
	X, Y          int32
	Width, Height uint32
}

// NewRect builds a rect directly from position and extent.
func NewRect(x, y int32, width, height uint32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCoords builds a rect from two corner coordinates, swapping them
// as necessary so the result always has non-negative extent.
func RectFromCoords(x1, y1, x2, y2 int32) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{
		X:      x1,
		Y:      y1,
		Width:  uint32(x2 - x1 + 1),
		Height: uint32(y2 - y1 + 1),
	}
}

// Right returns the inclusive right edge. A zero-width rect has no right
// edge and Right returns X.
func (r Rect) Right() int32 {
	if r.Width == 0 {
		return r.X
	}
	return r.X + int32(r.Width) - 1
}

// Bottom returns the inclusive bottom edge. A zero-height rect has no
// bottom edge and Bottom returns Y.
func (r Rect) Bottom() int32 {
	if r.Height == 0 {
		return r.Y
	}
	return r.Y + int32(r.Height) - 1
}

// ContainsPoint reports whether (x, y) lies within the rect.
func (r Rect) ContainsPoint(x, y int32) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely within r.
//
// Each axis checks its near edge inclusively but its far edge against the
// *opposite* bound of r strictly (other.X must be < r.Right(), and
// other.Right() must be > r.X), so a rect exactly one unit wide sitting
// on r's rightmost column is not considered contained. This matches the
// original implementation this is ported from; it is a quirk of that
// implementation, not a bug introduced here.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.X < r.Right() &&
		other.Right() > r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Y < r.Bottom() &&
		other.Bottom() > r.Y && other.Bottom() <= r.Bottom()
}

// Overlaps reports whether r and other share any area.
func (r Rect) Overlaps(other Rect) bool {
	if r.Width == 0 || r.Height == 0 || other.Width == 0 || other.Height == 0 {
		return false
	}
	return r.X <= other.Right() && r.Right() >= other.X &&
		r.Y <= other.Bottom() && r.Bottom() >= other.Y
}

// ClampTo intersects r with other in place, returning false (and leaving r
// unchanged) if the two rects do not overlap.
func (r *Rect) ClampTo(other Rect) bool {
	if !r.Overlaps(other) {
		return false
	}

	x1 := r.X
	y1 := r.Y
	x2 := r.Right()
	y2 := r.Bottom()

	if other.X > x1 {
		x1 = other.X
	}
	if other.Y > y1 {
		y1 = other.Y
	}
	if other.Right() < x2 {
		x2 = other.Right()
	}
	if other.Bottom() < y2 {
		y2 = other.Bottom()
	}

	r.X = x1
	r.Y = y1
	r.Width = uint32(x2 - x1 + 1)
	r.Height = uint32(y2 - y1 + 1)
	return true
}
