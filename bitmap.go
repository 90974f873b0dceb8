package ggdt

// Bitmap is a row-major pixel buffer of width*height elements, together
// with a clip region that all drawing and blitting operations respect.
// IndexedBitmap and RgbaBitmap are the two concrete instantiations used
// throughout this package.
type Bitmap[P Pixel] struct {
	width, height uint32
	pixels        []P
	clipRegion    Rect
}

// IndexedBitmap stores one palette index per pixel.
type IndexedBitmap = Bitmap[uint8]

// RgbaBitmap stores one packed ARGB value per pixel.
type RgbaBitmap = Bitmap[uint32]

// NewBitmap allocates a cleared bitmap of the given dimensions. The clip
// region is initialized to the bitmap's full bounds.
func NewBitmap[P Pixel](width, height uint32) (*Bitmap[P], error) {
	if width == 0 || height == 0 {
		return nil, newError(ErrInvalidDimensions, "width and height must be non-zero")
	}
	b := &Bitmap[P]{
		width:  width,
		height: height,
		pixels: make([]P, width*height),
	}
	b.clipRegion = b.FullBounds()
	return b, nil
}

// NewBitmapFromPixels wraps an existing pixel slice as a bitmap without
// copying. len(pixels) must equal width*height.
func NewBitmapFromPixels[P Pixel](pixels []P, width, height uint32) (*Bitmap[P], error) {
	if width == 0 || height == 0 {
		return nil, newError(ErrInvalidDimensions, "width and height must be non-zero")
	}
	if uint32(len(pixels)) != width*height {
		return nil, newError(ErrInvalidDimensions, "pixel slice length does not match width*height")
	}
	b := &Bitmap[P]{width: width, height: height, pixels: pixels}
	b.clipRegion = b.FullBounds()
	return b, nil
}

func (b *Bitmap[P]) Width() uint32  { return b.width }
func (b *Bitmap[P]) Height() uint32 { return b.height }

// Right is the inclusive right edge of the full bitmap (not the clip
// region).
func (b *Bitmap[P]) Right() int32 { return int32(b.width) - 1 }

// Bottom is the inclusive bottom edge of the full bitmap (not the clip
// region).
func (b *Bitmap[P]) Bottom() int32 { return int32(b.height) - 1 }

// FullBounds returns a rect covering the entire bitmap, ignoring the
// current clip region.
func (b *Bitmap[P]) FullBounds() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// ClipRegion returns the bitmap's current clip region.
func (b *Bitmap[P]) ClipRegion() Rect { return b.clipRegion }

// SetClipRegion replaces the clip region with the intersection of region
// and the bitmap's full bounds.
func (b *Bitmap[P]) SetClipRegion(region Rect) {
	clipped := region
	if !clipped.ClampTo(b.FullBounds()) {
		clipped = Rect{X: 0, Y: 0, Width: 0, Height: 0}
	}
	b.clipRegion = clipped
}

// ResetClipRegion sets the clip region back to the bitmap's full bounds.
func (b *Bitmap[P]) ResetClipRegion() {
	b.clipRegion = b.FullBounds()
}

// Pixels exposes the raw backing slice for callers (codec writers,
// presenters) that need direct access.
func (b *Bitmap[P]) Pixels() []P { return b.pixels }

func (b *Bitmap[P]) index(x, y int32) int {
	return int(y)*int(b.width) + int(x)
}

// Clear fills the entire bitmap (not just the clip region) with color.
func (b *Bitmap[P]) Clear(color P) {
	for i := range b.pixels {
		b.pixels[i] = color
	}
}

// SetPixel writes color at (x, y) if it lies within the clip region.
func (b *Bitmap[P]) SetPixel(x, y int32, color P) {
	if !b.clipRegion.ContainsPoint(x, y) {
		return
	}
	b.pixels[b.index(x, y)] = color
}

// SetPixelUnchecked writes color at (x, y) without any bounds check.
func (b *Bitmap[P]) SetPixelUnchecked(x, y int32, color P) {
	b.pixels[b.index(x, y)] = color
}

// GetPixel reads the pixel at (x, y), returning the zero value and false
// if it lies outside the clip region.
func (b *Bitmap[P]) GetPixel(x, y int32) (P, bool) {
	if !b.clipRegion.ContainsPoint(x, y) {
		var zero P
		return zero, false
	}
	return b.pixels[b.index(x, y)], true
}

// GetPixelUnchecked reads the pixel at (x, y) without any bounds check.
func (b *Bitmap[P]) GetPixelUnchecked(x, y int32) P {
	return b.pixels[b.index(x, y)]
}

// SampleAt performs a nearest-neighbor lookup of a normalized (u, v)
// coordinate pair, each expected in [0, 1]. A small epsilon nudges values
// that land exactly on the top edge of a texel back into that texel,
// matching the original this is ported from.
func (b *Bitmap[P]) SampleAt(u, v float64) P {
	const epsilon = 0.00001
	x := int32((u - epsilon) * float64(b.width))
	y := int32((v - epsilon) * float64(b.height))
	if x < 0 {
		x = 0
	} else if x > b.Right() {
		x = b.Right()
	}
	if y < 0 {
		y = 0
	} else if y > b.Bottom() {
		y = b.Bottom()
	}
	return b.GetPixelUnchecked(x, y)
}
