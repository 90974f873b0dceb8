package ggdt

import "math"

// clipBlit adjusts a source region and destination coordinate so that the
// area actually copied lies entirely within destClip. It returns false if,
// after clipping, there is nothing left to draw. When flipH/flipV are set,
// trimming happens from the opposite edge of srcRegion, so the pixels that
// would have landed off-screen are the ones dropped from the source too.
func clipBlit(srcRegion *Rect, destX, destY *int32, destClip Rect, flipH, flipV bool) bool {
	if srcRegion.Width == 0 || srcRegion.Height == 0 {
		return false
	}

	srcX, srcY := srcRegion.X, srcRegion.Y
	srcW, srcH := int32(srcRegion.Width), int32(srcRegion.Height)

	dx, dy := *destX, *destY

	// Left edge.
	if dx < destClip.X {
		overflow := destClip.X - dx
		if overflow >= srcW {
			return false
		}
		if flipH {
			srcW -= overflow
		} else {
			srcX += overflow
			srcW -= overflow
		}
		dx = destClip.X
	}
	// Top edge.
	if dy < destClip.Y {
		overflow := destClip.Y - dy
		if overflow >= srcH {
			return false
		}
		if flipV {
			srcH -= overflow
		} else {
			srcY += overflow
			srcH -= overflow
		}
		dy = destClip.Y
	}
	// Right edge.
	if dx+srcW-1 > destClip.Right() {
		overflow := dx + srcW - 1 - destClip.Right()
		if overflow >= srcW {
			return false
		}
		if flipH {
			srcX += overflow
		}
		srcW -= overflow
	}
	// Bottom edge.
	if dy+srcH-1 > destClip.Bottom() {
		overflow := dy + srcH - 1 - destClip.Bottom()
		if overflow >= srcH {
			return false
		}
		if flipV {
			srcY += overflow
		}
		srcH -= overflow
	}

	if srcW <= 0 || srcH <= 0 {
		return false
	}

	srcRegion.X = srcX
	srcRegion.Y = srcY
	srcRegion.Width = uint32(srcW)
	srcRegion.Height = uint32(srcH)
	*destX = dx
	*destY = dy
	return true
}

// perPixelBlit walks an axis-aligned source/dest region pair, calling fn
// for every pixel. No bounds checking is performed: callers must have
// already clipped region to both bitmaps.
func perPixelBlit[P Pixel](dest, src *Bitmap[P], srcRegion Rect, destX, destY int32, fn func(src, dest P) P) {
	for row := int32(0); row < int32(srcRegion.Height); row++ {
		sy := srcRegion.Y + row
		dy := destY + row
		for col := int32(0); col < int32(srcRegion.Width); col++ {
			sx := srcRegion.X + col
			dx := destX + col
			dest.SetPixelUnchecked(dx, dy, fn(src.GetPixelUnchecked(sx, sy), dest.GetPixelUnchecked(dx, dy)))
		}
	}
}

// perPixelFlippedBlit is perPixelBlit, but walks the source region in
// reverse along whichever axes are flipped.
func perPixelFlippedBlit[P Pixel](dest, src *Bitmap[P], srcRegion Rect, destX, destY int32, flipH, flipV bool, fn func(src, dest P) P) {
	for row := int32(0); row < int32(srcRegion.Height); row++ {
		sy := srcRegion.Y + row
		if flipV {
			sy = srcRegion.Y + int32(srcRegion.Height) - 1 - row
		}
		dy := destY + row
		for col := int32(0); col < int32(srcRegion.Width); col++ {
			sx := srcRegion.X + col
			if flipH {
				sx = srcRegion.X + int32(srcRegion.Width) - 1 - col
			}
			dx := destX + col
			dest.SetPixelUnchecked(dx, dy, fn(src.GetPixelUnchecked(sx, sy), dest.GetPixelUnchecked(dx, dy)))
		}
	}
}

// perPixelRotozoomBlit draws src, sampled via an inverse affine transform
// (rotation + uniform/non-uniform scale around the source region's
// center), into the bounding box of the rotated+scaled region on dest.
// The bounding box is expanded by one pixel in each direction to absorb
// rounding error at the edges, matching the original this is ported from.
func perPixelRotozoomBlit[P Pixel](dest, src *Bitmap[P], srcRegion Rect, destX, destY int32, angle, scaleX, scaleY float64, fn func(src P, ok bool, dest P) P) {
	srcCx := float64(srcRegion.Width) / 2
	srcCy := float64(srcRegion.Height) / 2

	corners := [4][2]float64{
		{0, 0}, {float64(srcRegion.Width), 0},
		{0, float64(srcRegion.Height)}, {float64(srcRegion.Width), float64(srcRegion.Height)},
	}

	sinA, cosA := sincos(angle)

	minX, minY := float64(1<<30), float64(1<<30)
	maxX, maxY := -float64(1<<30), -float64(1<<30)
	for _, c := range corners {
		lx := (c[0] - srcCx) * scaleX
		ly := (c[1] - srcCy) * scaleY
		rx := lx*cosA - ly*sinA
		ry := lx*sinA + ly*cosA
		if rx < minX {
			minX = rx
		}
		if rx > maxX {
			maxX = rx
		}
		if ry < minY {
			minY = ry
		}
		if ry > maxY {
			maxY = ry
		}
	}

	boundsX1 := destX + int32(minX) - 1
	boundsY1 := destY + int32(minY) - 1
	boundsX2 := destX + int32(maxX) + 1
	boundsY2 := destY + int32(maxY) + 1

	bounds := RectFromCoords(boundsX1, boundsY1, boundsX2, boundsY2)
	if !bounds.ClampTo(dest.ClipRegion()) {
		return
	}

	invScaleX := 1.0
	if scaleX != 0 {
		invScaleX = 1.0 / scaleX
	}
	invScaleY := 1.0
	if scaleY != 0 {
		invScaleY = 1.0 / scaleY
	}

	for y := bounds.Y; y <= bounds.Bottom(); y++ {
		for x := bounds.X; x <= bounds.Right(); x++ {
			rx := float64(x) - float64(destX)
			ry := float64(y) - float64(destY)
			lx := rx*cosA + ry*sinA
			ly := -rx*sinA + ry*cosA
			sx := lx*invScaleX + srcCx
			sy := ly*invScaleY + srcCy

			ix := int32(sx)
			iy := int32(sy)
			if ix < 0 || iy < 0 || ix >= int32(srcRegion.Width) || iy >= int32(srcRegion.Height) {
				dest.SetPixelUnchecked(x, y, fn(dest.GetPixelUnchecked(x, y), false, dest.GetPixelUnchecked(x, y)))
				continue
			}
			sp := src.GetPixelUnchecked(srcRegion.X+ix, srcRegion.Y+iy)
			dest.SetPixelUnchecked(x, y, fn(sp, true, dest.GetPixelUnchecked(x, y)))
		}
	}
}

func sincos(angleDegrees float64) (sin, cos float64) {
	radians := angleDegrees * math.Pi / 180.0
	return math.Sincos(radians)
}
