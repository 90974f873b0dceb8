package ggdt

// IndexedBlitMethodKind selects which compositing rule an IndexedBlitMethod
// applies. The full set mirrors the Rust enum this is ported from:
// solid/transparent copies, each with an optional horizontal/vertical
// flip, an optional BlendMap remap, or an index offset, plus a family of
// rotozoom (rotate + scale) variants.
type IndexedBlitMethodKind int

const (
	BlitSolid IndexedBlitMethodKind = iota
	BlitSolidBlended
	BlitSolidFlipped
	BlitSolidFlippedBlended
	BlitSolidOffset
	BlitSolidFlippedOffset
	BlitTransparent
	BlitTransparentBlended
	BlitTransparentFlipped
	BlitTransparentFlippedBlended
	BlitTransparentSingle
	BlitTransparentFlippedSingle
	BlitTransparentOffset
	BlitTransparentFlippedOffset
	BlitRotoZoom
	BlitRotoZoomBlended
	BlitRotoZoomTransparent
	BlitRotoZoomTransparentBlended
	BlitRotoZoomOffset
	BlitRotoZoomTransparentOffset
)

// IndexedBlitMethod is a tagged description of how to composite an
// IndexedBitmap source region onto an IndexedBitmap destination. Use one
// of the New*Blit constructors rather than building this directly.
type IndexedBlitMethod struct {
	Kind                   IndexedBlitMethodKind
	FlipH, FlipV           bool
	Transparent, DrawColor uint8
	Offset                 uint8
	BlendMap               *BlendMap
	Angle, ScaleX, ScaleY  float64
}

func NewSolidBlit() IndexedBlitMethod { return IndexedBlitMethod{Kind: BlitSolid} }

func NewSolidBlendedBlit(bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitSolidBlended, BlendMap: bm}
}

func NewSolidFlippedBlit(flipH, flipV bool) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitSolidFlipped, FlipH: flipH, FlipV: flipV}
}

func NewSolidFlippedBlendedBlit(flipH, flipV bool, bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitSolidFlippedBlended, FlipH: flipH, FlipV: flipV, BlendMap: bm}
}

func NewSolidOffsetBlit(offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitSolidOffset, Offset: offset}
}

func NewSolidFlippedOffsetBlit(flipH, flipV bool, offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitSolidFlippedOffset, FlipH: flipH, FlipV: flipV, Offset: offset}
}

func NewTransparentBlit(transparent uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparent, Transparent: transparent}
}

func NewTransparentBlendedBlit(transparent uint8, bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentBlended, Transparent: transparent, BlendMap: bm}
}

func NewTransparentFlippedBlit(transparent uint8, flipH, flipV bool) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentFlipped, Transparent: transparent, FlipH: flipH, FlipV: flipV}
}

func NewTransparentFlippedBlendedBlit(transparent uint8, flipH, flipV bool, bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentFlippedBlended, Transparent: transparent, FlipH: flipH, FlipV: flipV, BlendMap: bm}
}

func NewTransparentSingleBlit(transparent, draw uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentSingle, Transparent: transparent, DrawColor: draw}
}

func NewTransparentFlippedSingleBlit(transparent uint8, flipH, flipV bool, draw uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentFlippedSingle, Transparent: transparent, FlipH: flipH, FlipV: flipV, DrawColor: draw}
}

func NewTransparentOffsetBlit(transparent, offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentOffset, Transparent: transparent, Offset: offset}
}

func NewTransparentFlippedOffsetBlit(transparent uint8, flipH, flipV bool, offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitTransparentFlippedOffset, Transparent: transparent, FlipH: flipH, FlipV: flipV, Offset: offset}
}

func NewRotoZoomBlit(angle, scaleX, scaleY float64) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoom, Angle: angle, ScaleX: scaleX, ScaleY: scaleY}
}

func NewRotoZoomBlendedBlit(angle, scaleX, scaleY float64, bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoomBlended, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, BlendMap: bm}
}

func NewRotoZoomTransparentBlit(angle, scaleX, scaleY float64, transparent uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoomTransparent, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent}
}

func NewRotoZoomTransparentBlendedBlit(angle, scaleX, scaleY float64, transparent uint8, bm *BlendMap) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoomTransparentBlended, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent, BlendMap: bm}
}

func NewRotoZoomOffsetBlit(angle, scaleX, scaleY float64, offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoomOffset, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Offset: offset}
}

func NewRotoZoomTransparentOffsetBlit(angle, scaleX, scaleY float64, transparent, offset uint8) IndexedBlitMethod {
	return IndexedBlitMethod{Kind: BlitRotoZoomTransparentOffset, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent, Offset: offset}
}

// isRotoZoom reports whether m is one of the rotozoom variants, which skip
// clipBlit entirely (the bounding box math in perPixelRotozoomBlit handles
// clipping on its own).
func (m IndexedBlitMethod) isRotoZoom() bool {
	return m.Kind >= BlitRotoZoom && m.Kind <= BlitRotoZoomTransparentOffset
}

// Blit composites the entirety of src onto dest at (destX, destY).
func (m IndexedBlitMethod) Blit(dest, src *IndexedBitmap, destX, destY int32) {
	m.BlitRegion(dest, src, src.FullBounds(), destX, destY)
}

// BlitRegion composites srcRegion of src onto dest at (destX, destY),
// clipping against dest's clip region first.
func (m IndexedBlitMethod) BlitRegion(dest, src *IndexedBitmap, srcRegion Rect, destX, destY int32) {
	if m.isRotoZoom() {
		m.BlitRegionUnchecked(dest, src, srcRegion, destX, destY)
		return
	}
	region := srcRegion
	if !region.ClampTo(src.FullBounds()) {
		return
	}
	if !clipBlit(&region, &destX, &destY, dest.ClipRegion(), m.FlipH, m.FlipV) {
		return
	}
	m.BlitRegionUnchecked(dest, src, region, destX, destY)
}

// BlitRegionUnchecked composites srcRegion of src onto dest at (destX,
// destY) without clipping. Callers must ensure the region is already
// valid for both bitmaps.
func (m IndexedBlitMethod) BlitRegionUnchecked(dest, src *IndexedBitmap, srcRegion Rect, destX, destY int32) {
	switch m.Kind {
	case BlitSolid:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, _ uint8) uint8 { return s })
	case BlitSolidBlended:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint8) uint8 { return m.BlendMap.Lookup(s, d) })
	case BlitSolidFlipped:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, _ uint8) uint8 { return s })
	case BlitSolidFlippedBlended:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint8) uint8 { return m.BlendMap.Lookup(s, d) })
	case BlitSolidOffset:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, _ uint8) uint8 { return s + m.Offset })
	case BlitSolidFlippedOffset:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, _ uint8) uint8 { return s + m.Offset })
	case BlitTransparent:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return s
		})
	case BlitTransparentBlended:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return m.BlendMap.Lookup(s, d)
		})
	case BlitTransparentFlipped:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return s
		})
	case BlitTransparentFlippedBlended:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return m.BlendMap.Lookup(s, d)
		})
	case BlitTransparentSingle:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return m.DrawColor
		})
	case BlitTransparentFlippedSingle:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return m.DrawColor
		})
	case BlitTransparentOffset:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return s + m.Offset
		})
	case BlitTransparentFlippedOffset:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint8) uint8 {
			if s == m.Transparent {
				return d
			}
			return s + m.Offset
		})
	case BlitRotoZoom:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok {
				return d
			}
			return s
		})
	case BlitRotoZoomBlended:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok {
				return d
			}
			return m.BlendMap.Lookup(s, d)
		})
	case BlitRotoZoomTransparent:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok || s == m.Transparent {
				return d
			}
			return s
		})
	case BlitRotoZoomTransparentBlended:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok || s == m.Transparent {
				return d
			}
			return m.BlendMap.Lookup(s, d)
		})
	case BlitRotoZoomOffset:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok {
				return d
			}
			return s + m.Offset
		})
	case BlitRotoZoomTransparentOffset:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint8, ok bool, d uint8) uint8 {
			if !ok || s == m.Transparent {
				return d
			}
			return s + m.Offset
		})
	}
}

// BlitAtlas composites the region named by index from atlas onto dest at
// (destX, destY).
func (m IndexedBlitMethod) BlitAtlas(dest *IndexedBitmap, atlas *IndexedBitmapAtlas, index int, destX, destY int32) bool {
	region, ok := atlas.Get(index)
	if !ok {
		return false
	}
	m.BlitRegion(dest, atlas.Bitmap, region, destX, destY)
	return true
}
