package ggdt

// CustomMouseCursor overlays a small bitmap at the mouse position on top
// of a destination bitmap, saving whatever was underneath so it can be
// restored before the next frame's draw.
type CustomMouseCursor[P Pixel] struct {
	cursor      *Bitmap[P]
	hotspotX    int32
	hotspotY    int32
	transparent P
	visible     bool

	background  *Bitmap[P]
	lastX       int32
	lastY       int32
	hasSaved    bool
}

// NewCustomMouseCursor builds a cursor overlay from a cursor bitmap, the
// pixel it treats as transparent, and a hotspot (the offset within the
// cursor bitmap that tracks the mouse position).
func NewCustomMouseCursor[P Pixel](cursor *Bitmap[P], transparent P, hotspotX, hotspotY int32) (*CustomMouseCursor[P], error) {
	background, err := NewBitmap[P](cursor.Width(), cursor.Height())
	if err != nil {
		return nil, err
	}
	return &CustomMouseCursor[P]{
		cursor:      cursor,
		hotspotX:    hotspotX,
		hotspotY:    hotspotY,
		transparent: transparent,
		visible:     true,
		background:  background,
	}, nil
}

// SetVisible toggles whether Render draws the cursor at all.
func (c *CustomMouseCursor[P]) SetVisible(visible bool) { c.visible = visible }

// Hide restores whatever background was saved under the cursor's last
// rendered position, undoing Render. It is a no-op if nothing has been
// rendered yet.
func (c *CustomMouseCursor[P]) Hide(dest *Bitmap[P]) {
	if !c.hasSaved {
		return
	}
	NewSolidBlitFor(c.background).Blit(dest, c.background, c.lastX, c.lastY)
	c.hasSaved = false
}

// Update moves the tracked mouse position, applying the hotspot offset.
func (c *CustomMouseCursor[P]) Update(mouseX, mouseY int32) {
	c.lastX = mouseX - c.hotspotX
	c.lastY = mouseY - c.hotspotY
}

// Render saves the area of dest the cursor is about to cover, then
// transparently blits the cursor bitmap on top of it.
func (c *CustomMouseCursor[P]) Render(dest *Bitmap[P]) {
	if !c.visible {
		return
	}
	region := NewRect(c.lastX, c.lastY, c.cursor.Width(), c.cursor.Height())
	if region.ClampTo(dest.FullBounds()) {
		NewSolidBlitFor(c.background).BlitRegion(c.background, dest, region, region.X-c.lastX, region.Y-c.lastY)
	}
	c.hasSaved = true
	blitTransparent(dest, c.cursor, c.transparent, c.lastX, c.lastY)
}

// NewSolidBlitFor exists only so CustomMouseCursor can reuse the same
// plain-copy blit kernel regardless of which concrete Pixel type P is.
func NewSolidBlitFor[P Pixel](_ *Bitmap[P]) solidCopy[P] { return solidCopy[P]{} }

type solidCopy[P Pixel] struct{}

func (solidCopy[P]) Blit(dest, src *Bitmap[P], destX, destY int32) {
	region := src.FullBounds()
	if !clipBlit(&region, &destX, &destY, dest.ClipRegion(), false, false) {
		return
	}
	perPixelBlit(dest, src, region, destX, destY, func(s, _ P) P { return s })
}

func (solidCopy[P]) BlitRegion(dest, src *Bitmap[P], region Rect, destX, destY int32) {
	clipped := region
	if !clipped.ClampTo(src.FullBounds()) {
		return
	}
	if !clipBlit(&clipped, &destX, &destY, dest.ClipRegion(), false, false) {
		return
	}
	perPixelBlit(dest, src, clipped, destX, destY, func(s, _ P) P { return s })
}

func blitTransparent[P Pixel](dest, src *Bitmap[P], transparent P, destX, destY int32) {
	region := src.FullBounds()
	if !clipBlit(&region, &destX, &destY, dest.ClipRegion(), false, false) {
		return
	}
	perPixelBlit(dest, src, region, destX, destY, func(s, d P) P {
		if s == transparent {
			return d
		}
		return s
	})
}

// DefaultCursorIndexed returns a small built-in 16x16 arrow cursor for
// indexed bitmaps, with palette index 255 as the transparent color.
func DefaultCursorIndexed() *IndexedBitmap {
	b, _ := NewBitmapFromPixels(append([]uint8(nil), defaultCursorIndexedPixels[:]...), 16, 16)
	return b
}

// DefaultCursorRGBA returns a small built-in 16x16 arrow cursor for RGBA
// bitmaps, with 0xFFFF00FF as the transparent color.
func DefaultCursorRGBA() *RgbaBitmap {
	b, _ := NewBitmapFromPixels(append([]uint32(nil), defaultCursorRGBAPixels[:]...), 16, 16)
	return b
}

// DefaultCursorIndexedTransparent is the palette index the indexed default
// cursor treats as transparent.
const DefaultCursorIndexedTransparent uint8 = 255

// DefaultCursorRGBATransparent is the ARGB value the RGBA default cursor
// treats as transparent.
const DefaultCursorRGBATransparent ARGB = 0xFFFF00FF

// defaultCursorShape is a 16x16 arrow glyph, '.' transparent, '#' outline,
// '*' fill — shared by both the indexed and RGBA default cursor bitmaps.
var defaultCursorShape = [16]string{
	"#...............",
	"##..............",
	"#*#.............",
	"#**#............",
	"#***#...........",
	"#****#..........",
	"#*****#.........",
	"#******#........",
	"#*******#.......",
	"#********#......",
	"#*****#####.....",
	"#***#.#*#.......",
	"#**#..#*#.......",
	"#*#....#*#......",
	"##.....#*#......",
	"#.......##......",
}

var defaultCursorIndexedPixels = buildDefaultCursorIndexed()
var defaultCursorRGBAPixels = buildDefaultCursorRGBA()

func buildDefaultCursorIndexed() [256]uint8 {
	var out [256]uint8
	for y, row := range defaultCursorShape {
		for x := 0; x < 16; x++ {
			idx := y*16 + x
			switch row[x] {
			case '#':
				out[idx] = 0 // outline: black
			case '*':
				out[idx] = 1 // fill: white
			default:
				out[idx] = DefaultCursorIndexedTransparent
			}
		}
	}
	return out
}

func buildDefaultCursorRGBA() [256]uint32 {
	var out [256]uint32
	for y, row := range defaultCursorShape {
		for x := 0; x < 16; x++ {
			idx := y*16 + x
			switch row[x] {
			case '#':
				out[idx] = uint32(ColorBlack)
			case '*':
				out[idx] = uint32(ColorWhite)
			default:
				out[idx] = uint32(DefaultCursorRGBATransparent)
			}
		}
	}
	return out
}
