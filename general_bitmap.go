package ggdt

// GeneralBitmap is the subset of Bitmap[P]'s operations that do not care
// whether P is an indexed palette entry or a packed ARGB color. Code that
// must work across both bitmap kinds without being generic over P can
// program against this interface instead of the concrete generic type.
type GeneralBitmap interface {
	Width() uint32
	Height() uint32
	Right() int32
	Bottom() int32
	ClipRegion() Rect
	FullBounds() Rect
	Clear(color uint32)
	Line(x1, y1, x2, y2 int32, color uint32)
	HorizLine(x1, x2, y int32, color uint32)
	VertLine(x, y1, y2 int32, color uint32)
	Rect(r Rect, color uint32)
	FilledRect(r Rect, color uint32)
	Circle(cx, cy, radius int32, color uint32)
	FilledCircle(cx, cy, radius int32, color uint32)
}

// GeneralBlitMethodKind is the reduced set of blit behaviors that make
// sense without knowing the concrete pixel type: a plain copy, or a copy
// that skips one designated transparent color.
type GeneralBlitMethodKind int

const (
	GeneralBlitSolid GeneralBlitMethodKind = iota
	GeneralBlitTransparent
)

// GeneralBlitMethod is the GeneralBitmap-level counterpart of
// IndexedBlitMethod/RgbaBlitMethod, deliberately missing everything
// beyond solid/transparent (no flips, blends, or rotozoom) since those
// all require knowing the concrete pixel type to implement.
type GeneralBlitMethod struct {
	Kind        GeneralBlitMethodKind
	Transparent uint32
}

func GeneralSolidBlit() GeneralBlitMethod { return GeneralBlitMethod{Kind: GeneralBlitSolid} }

func GeneralTransparentBlit(transparent uint32) GeneralBlitMethod {
	return GeneralBlitMethod{Kind: GeneralBlitTransparent, Transparent: transparent}
}

// indexedGeneralAdapter and rgbaGeneralAdapter let *IndexedBitmap and
// *RgbaBitmap satisfy GeneralBitmap, whose methods are necessarily
// expressed in terms of a single concrete color type (uint32) rather than
// the generic Pixel parameter.

type indexedGeneralAdapter struct{ *IndexedBitmap }

func AsGeneral(b *IndexedBitmap) GeneralBitmap { return indexedGeneralAdapter{b} }

func (a indexedGeneralAdapter) Clear(color uint32) { a.IndexedBitmap.Clear(uint8(color)) }
func (a indexedGeneralAdapter) Line(x1, y1, x2, y2 int32, color uint32) {
	a.IndexedBitmap.Line(x1, y1, x2, y2, uint8(color))
}
func (a indexedGeneralAdapter) HorizLine(x1, x2, y int32, color uint32) {
	a.IndexedBitmap.HorizLine(x1, x2, y, uint8(color))
}
func (a indexedGeneralAdapter) VertLine(x, y1, y2 int32, color uint32) {
	a.IndexedBitmap.VertLine(x, y1, y2, uint8(color))
}
func (a indexedGeneralAdapter) Rect(r Rect, color uint32) { a.IndexedBitmap.Rect(r, uint8(color)) }
func (a indexedGeneralAdapter) FilledRect(r Rect, color uint32) {
	a.IndexedBitmap.FilledRect(r, uint8(color))
}
func (a indexedGeneralAdapter) Circle(cx, cy, radius int32, color uint32) {
	a.IndexedBitmap.Circle(cx, cy, radius, uint8(color))
}
func (a indexedGeneralAdapter) FilledCircle(cx, cy, radius int32, color uint32) {
	a.IndexedBitmap.FilledCircle(cx, cy, radius, uint8(color))
}

type rgbaGeneralAdapter struct{ *RgbaBitmap }

func AsGeneralRGBA(b *RgbaBitmap) GeneralBitmap { return rgbaGeneralAdapter{b} }

func (a rgbaGeneralAdapter) Clear(color uint32) { a.RgbaBitmap.Clear(color) }
func (a rgbaGeneralAdapter) Line(x1, y1, x2, y2 int32, color uint32) {
	a.RgbaBitmap.Line(x1, y1, x2, y2, color)
}
func (a rgbaGeneralAdapter) HorizLine(x1, x2, y int32, color uint32) {
	a.RgbaBitmap.HorizLine(x1, x2, y, color)
}
func (a rgbaGeneralAdapter) VertLine(x, y1, y2 int32, color uint32) {
	a.RgbaBitmap.VertLine(x, y1, y2, color)
}
func (a rgbaGeneralAdapter) Rect(r Rect, color uint32)       { a.RgbaBitmap.Rect(r, color) }
func (a rgbaGeneralAdapter) FilledRect(r Rect, color uint32) { a.RgbaBitmap.FilledRect(r, color) }
func (a rgbaGeneralAdapter) Circle(cx, cy, radius int32, color uint32) {
	a.RgbaBitmap.Circle(cx, cy, radius, color)
}
func (a rgbaGeneralAdapter) FilledCircle(cx, cy, radius int32, color uint32) {
	a.RgbaBitmap.FilledCircle(cx, cy, radius, color)
}
