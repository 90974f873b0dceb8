package ggdt

// RgbaBlitMethodKind mirrors IndexedBlitMethodKind's structure over an
// RgbaBitmap source/destination pair. Where the indexed variant offsets a
// palette index, the RGBA variant tints the color; where the indexed
// variant looks a color up in a BlendMap, the RGBA variant runs a
// BlendFunction directly.
type RgbaBlitMethodKind int

const (
	RgbaBlitSolid RgbaBlitMethodKind = iota
	RgbaBlitSolidBlended
	RgbaBlitSolidFlipped
	RgbaBlitSolidFlippedBlended
	RgbaBlitSolidTinted
	RgbaBlitSolidFlippedTinted
	RgbaBlitTransparent
	RgbaBlitTransparentBlended
	RgbaBlitTransparentFlipped
	RgbaBlitTransparentFlippedBlended
	RgbaBlitTransparentSingle
	RgbaBlitTransparentFlippedSingle
	RgbaBlitTransparentTinted
	RgbaBlitTransparentFlippedTinted
	RgbaBlitRotoZoom
	RgbaBlitRotoZoomBlended
	RgbaBlitRotoZoomTransparent
	RgbaBlitRotoZoomTransparentBlended
	RgbaBlitRotoZoomTinted
	RgbaBlitRotoZoomTransparentTinted
)

// RgbaBlitMethod is the RgbaBitmap counterpart of IndexedBlitMethod.
type RgbaBlitMethod struct {
	Kind                  RgbaBlitMethodKind
	FlipH, FlipV          bool
	Transparent, DrawColor ARGB
	Tint                  ARGB
	Blend                 BlendFunction
	Angle, ScaleX, ScaleY float64
}

func NewRgbaSolidBlit() RgbaBlitMethod { return RgbaBlitMethod{Kind: RgbaBlitSolid} }

func NewRgbaSolidBlendedBlit(fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitSolidBlended, Blend: fn}
}

func NewRgbaSolidFlippedBlit(flipH, flipV bool) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitSolidFlipped, FlipH: flipH, FlipV: flipV}
}

func NewRgbaSolidFlippedBlendedBlit(flipH, flipV bool, fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitSolidFlippedBlended, FlipH: flipH, FlipV: flipV, Blend: fn}
}

func NewRgbaSolidTintedBlit(tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitSolidTinted, Tint: tint}
}

func NewRgbaSolidFlippedTintedBlit(flipH, flipV bool, tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitSolidFlippedTinted, FlipH: flipH, FlipV: flipV, Tint: tint}
}

func NewRgbaTransparentBlit(transparent ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparent, Transparent: transparent}
}

func NewRgbaTransparentBlendedBlit(transparent ARGB, fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentBlended, Transparent: transparent, Blend: fn}
}

func NewRgbaTransparentFlippedBlit(transparent ARGB, flipH, flipV bool) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentFlipped, Transparent: transparent, FlipH: flipH, FlipV: flipV}
}

func NewRgbaTransparentFlippedBlendedBlit(transparent ARGB, flipH, flipV bool, fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentFlippedBlended, Transparent: transparent, FlipH: flipH, FlipV: flipV, Blend: fn}
}

func NewRgbaTransparentSingleBlit(transparent, draw ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentSingle, Transparent: transparent, DrawColor: draw}
}

func NewRgbaTransparentFlippedSingleBlit(transparent ARGB, flipH, flipV bool, draw ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentFlippedSingle, Transparent: transparent, FlipH: flipH, FlipV: flipV, DrawColor: draw}
}

func NewRgbaTransparentTintedBlit(transparent, tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentTinted, Transparent: transparent, Tint: tint}
}

func NewRgbaTransparentFlippedTintedBlit(transparent ARGB, flipH, flipV bool, tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitTransparentFlippedTinted, Transparent: transparent, FlipH: flipH, FlipV: flipV, Tint: tint}
}

func NewRgbaRotoZoomBlit(angle, scaleX, scaleY float64) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoom, Angle: angle, ScaleX: scaleX, ScaleY: scaleY}
}

func NewRgbaRotoZoomBlendedBlit(angle, scaleX, scaleY float64, fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoomBlended, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Blend: fn}
}

func NewRgbaRotoZoomTransparentBlit(angle, scaleX, scaleY float64, transparent ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoomTransparent, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent}
}

func NewRgbaRotoZoomTransparentBlendedBlit(angle, scaleX, scaleY float64, transparent ARGB, fn BlendFunction) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoomTransparentBlended, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent, Blend: fn}
}

func NewRgbaRotoZoomTintedBlit(angle, scaleX, scaleY float64, tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoomTinted, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Tint: tint}
}

func NewRgbaRotoZoomTransparentTintedBlit(angle, scaleX, scaleY float64, transparent, tint ARGB) RgbaBlitMethod {
	return RgbaBlitMethod{Kind: RgbaBlitRotoZoomTransparentTinted, Angle: angle, ScaleX: scaleX, ScaleY: scaleY, Transparent: transparent, Tint: tint}
}

func (m RgbaBlitMethod) isRotoZoom() bool {
	return m.Kind >= RgbaBlitRotoZoom && m.Kind <= RgbaBlitRotoZoomTransparentTinted
}

// Blit composites the entirety of src onto dest at (destX, destY).
func (m RgbaBlitMethod) Blit(dest, src *RgbaBitmap, destX, destY int32) {
	m.BlitRegion(dest, src, src.FullBounds(), destX, destY)
}

// BlitRegion composites srcRegion of src onto dest at (destX, destY),
// clipping against dest's clip region first.
func (m RgbaBlitMethod) BlitRegion(dest, src *RgbaBitmap, srcRegion Rect, destX, destY int32) {
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

func argbPixel(p uint32) ARGB { return ARGB(p) }

// BlitRegionUnchecked composites srcRegion of src onto dest at (destX,
// destY) without clipping.
func (m RgbaBlitMethod) BlitRegionUnchecked(dest, src *RgbaBitmap, srcRegion Rect, destX, destY int32) {
	switch m.Kind {
	case RgbaBlitSolid:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, _ uint32) uint32 { return s })
	case RgbaBlitSolidBlended:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 { return uint32(m.Blend(argbPixel(s), argbPixel(d))) })
	case RgbaBlitSolidFlipped:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, _ uint32) uint32 { return s })
	case RgbaBlitSolidFlippedBlended:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 { return uint32(m.Blend(argbPixel(s), argbPixel(d))) })
	case RgbaBlitSolidTinted:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 { return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d))) })
	case RgbaBlitSolidFlippedTinted:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 { return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d))) })
	case RgbaBlitTransparent:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return s
		})
	case RgbaBlitTransparentBlended:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(m.Blend(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitTransparentFlipped:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return s
		})
	case RgbaBlitTransparentFlippedBlended:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(m.Blend(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitTransparentSingle:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(m.DrawColor)
		})
	case RgbaBlitTransparentFlippedSingle:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(m.DrawColor)
		})
	case RgbaBlitTransparentTinted:
		perPixelBlit(dest, src, srcRegion, destX, destY, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitTransparentFlippedTinted:
		perPixelFlippedBlit(dest, src, srcRegion, destX, destY, m.FlipH, m.FlipV, func(s, d uint32) uint32 {
			if argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitRotoZoom:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok {
				return d
			}
			return s
		})
	case RgbaBlitRotoZoomBlended:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok {
				return d
			}
			return uint32(m.Blend(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitRotoZoomTransparent:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok || argbPixel(s) == m.Transparent {
				return d
			}
			return s
		})
	case RgbaBlitRotoZoomTransparentBlended:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok || argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(m.Blend(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitRotoZoomTinted:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok {
				return d
			}
			return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d)))
		})
	case RgbaBlitRotoZoomTransparentTinted:
		perPixelRotozoomBlit(dest, src, srcRegion, destX, destY, m.Angle, m.ScaleX, m.ScaleY, func(s uint32, ok bool, d uint32) uint32 {
			if !ok || argbPixel(s) == m.Transparent {
				return d
			}
			return uint32(TintedBlend(m.Tint)(argbPixel(s), argbPixel(d)))
		})
	}
}

// BlitAtlas composites the region named by index from atlas onto dest at
// (destX, destY).
func (m RgbaBlitMethod) BlitAtlas(dest *RgbaBitmap, atlas *RgbaBitmapAtlas, index int, destX, destY int32) bool {
	region, ok := atlas.Get(index)
	if !ok {
		return false
	}
	m.BlitRegion(dest, atlas.Bitmap, region, destX, destY)
	return true
}
