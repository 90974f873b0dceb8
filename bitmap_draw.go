package ggdt

// PixelFunc computes a blended pixel value for a draw op that needs more
// than a flat color — the *_custom family of primitives below takes one
// of these instead of a plain color.
type PixelFunc[P Pixel] func(x, y int32, dest P) P

// HorizLine draws a horizontal line of color from x1 to x2 (inclusive) on
// row y, clipped to the bitmap's clip region.
func (b *Bitmap[P]) HorizLine(x1, x2, y int32, color P) {
	b.HorizLineCustom(x1, x2, y, func(_, _ int32, _ P) P { return color })
}

// HorizLineCustom is HorizLine, but each pixel's value is computed by fn.
func (b *Bitmap[P]) HorizLineCustom(x1, x2, y int32, fn PixelFunc[P]) {
	line := RectFromCoords(x1, y, x2, y)
	if !line.ClampTo(b.clipRegion) {
		return
	}
	for x := line.X; x <= line.Right(); x++ {
		b.SetPixelUnchecked(x, y, fn(x, y, b.GetPixelUnchecked(x, y)))
	}
}

// VertLine draws a vertical line of color from y1 to y2 (inclusive) on
// column x, clipped to the bitmap's clip region.
func (b *Bitmap[P]) VertLine(x, y1, y2 int32, color P) {
	b.VertLineCustom(x, y1, y2, func(_, _ int32, _ P) P { return color })
}

// VertLineCustom is VertLine, but each pixel's value is computed by fn.
func (b *Bitmap[P]) VertLineCustom(x, y1, y2 int32, fn PixelFunc[P]) {
	line := RectFromCoords(x, y1, x, y2)
	if !line.ClampTo(b.clipRegion) {
		return
	}
	for y := line.Y; y <= line.Bottom(); y++ {
		b.SetPixelUnchecked(x, y, fn(x, y, b.GetPixelUnchecked(x, y)))
	}
}

// Line draws a line from (x1, y1) to (x2, y2) using Bresenham's algorithm,
// clipped to the bitmap's clip region.
func (b *Bitmap[P]) Line(x1, y1, x2, y2 int32, color P) {
	b.LineCustom(x1, y1, x2, y2, func(_, _ int32, _ P) P { return color })
}

// LineCustom is Line, but each pixel's value is computed by fn.
func (b *Bitmap[P]) LineCustom(x1, y1, x2, y2 int32, fn PixelFunc[P]) {
	dx := x2 - x1
	dy := y2 - y1

	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	var stepX, stepY int32 = 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	x, y := x1, y1
	plot := func(px, py int32) {
		if b.clipRegion.ContainsPoint(px, py) {
			b.SetPixelUnchecked(px, py, fn(px, py, b.GetPixelUnchecked(px, py)))
		}
	}

	if absDx >= absDy {
		d := 2*absDy - absDx
		for i := int32(0); i <= absDx; i++ {
			plot(x, y)
			if d > 0 {
				y += stepY
				d -= 2 * absDx
			}
			d += 2 * absDy
			x += stepX
		}
	} else {
		d := 2*absDx - absDy
		for i := int32(0); i <= absDy; i++ {
			plot(x, y)
			if d > 0 {
				x += stepX
				d -= 2 * absDy
			}
			d += 2 * absDx
			y += stepY
		}
	}
}

// Rect draws the outline of r, clipped to the bitmap's clip region.
func (b *Bitmap[P]) Rect(r Rect, color P) {
	b.RectCustom(r, func(_, _ int32, _ P) P { return color })
}

// RectCustom is Rect, but each pixel's value is computed by fn. The top
// and bottom spans stop one pixel short of the left and right columns,
// which the vertical lines cover, so a corner pixel shared by two edges is
// never visited twice by fn.
func (b *Bitmap[P]) RectCustom(r Rect, fn PixelFunc[P]) {
	if r.Width == 0 || r.Height == 0 {
		return
	}

	top, bottom := r.Y, r.Bottom()
	left, right := r.X, r.Right()

	horizDrawX := left + 1
	horizDrawWidth := right - left - 1
	if horizDrawWidth > 0 {
		b.HorizLineCustom(horizDrawX, horizDrawX+horizDrawWidth-1, top, fn)
		if bottom != top {
			b.HorizLineCustom(horizDrawX, horizDrawX+horizDrawWidth-1, bottom, fn)
		}
	}

	b.VertLineCustom(left, top, bottom, fn)
	if right != left {
		b.VertLineCustom(right, top, bottom, fn)
	}
}

// FilledRect fills r with color, clipped to the bitmap's clip region.
func (b *Bitmap[P]) FilledRect(r Rect, color P) {
	b.FilledRectCustom(r, func(_, _ int32, _ P) P { return color })
}

// FilledRectCustom is FilledRect, but each pixel's value is computed by fn.
func (b *Bitmap[P]) FilledRectCustom(r Rect, fn PixelFunc[P]) {
	clipped := r
	if !clipped.ClampTo(b.clipRegion) {
		return
	}
	for y := clipped.Y; y <= clipped.Bottom(); y++ {
		b.HorizLineCustom(clipped.X, clipped.Right(), y, fn)
	}
}

// Circle draws the outline of a circle of the given radius centered at
// (cx, cy), via the midpoint circle algorithm, clipped to the bitmap's
// clip region.
func (b *Bitmap[P]) Circle(cx, cy, radius int32, color P) {
	b.CircleCustom(cx, cy, radius, func(_, _ int32, _ P) P { return color })
}

// CircleCustom is Circle, but each pixel's value is computed by fn.
func (b *Bitmap[P]) CircleCustom(cx, cy, radius int32, fn PixelFunc[P]) {
	b.circleImpl(cx, cy, radius, fn, false)
}

// FilledCircle draws a filled circle of the given radius centered at
// (cx, cy), clipped to the bitmap's clip region.
func (b *Bitmap[P]) FilledCircle(cx, cy, radius int32, color P) {
	b.FilledCircleCustom(cx, cy, radius, func(_, _ int32, _ P) P { return color })
}

// FilledCircleCustom is FilledCircle, but each pixel's value is computed
// by fn.
func (b *Bitmap[P]) FilledCircleCustom(cx, cy, radius int32, fn PixelFunc[P]) {
	b.circleImpl(cx, cy, radius, fn, true)
}

func (b *Bitmap[P]) circleImpl(cx, cy, radius int32, fn PixelFunc[P], filled bool) {
	if radius <= 0 {
		if b.clipRegion.ContainsPoint(cx, cy) {
			b.SetPixelUnchecked(cx, cy, fn(cx, cy, b.GetPixelUnchecked(cx, cy)))
		}
		return
	}

	plot := func(px, py int32) {
		if b.clipRegion.ContainsPoint(px, py) {
			b.SetPixelUnchecked(px, py, fn(px, py, b.GetPixelUnchecked(px, py)))
		}
	}
	hspan := func(x1, x2, y int32) {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		b.HorizLineCustom(x1, x2, y, fn)
	}

	x := radius
	y := int32(0)
	m := 5 - 4*radius

	for x >= y {
		if filled {
			hspan(cx-x, cx+x, cy+y)
			hspan(cx-x, cx+x, cy-y)
			hspan(cx-y, cx+y, cy+x)
			hspan(cx-y, cx+y, cy-x)
		} else {
			plot(cx+x, cy+y)
			plot(cx-x, cy+y)
			plot(cx+x, cy-y)
			plot(cx-x, cy-y)
			plot(cx+y, cy+x)
			plot(cx-y, cy+x)
			plot(cx+y, cy-x)
			plot(cx-y, cy-x)
		}

		if m > 0 {
			x--
			m -= 8 * x
		}
		y++
		m += 8*y + 4
	}
}
