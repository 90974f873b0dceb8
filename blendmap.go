package ggdt

// BlendMapping is a destination-color to blend-color lookup table: indices
// are destination colors, values are the resulting blended color.
type BlendMapping [PaletteSize]uint8

// BlendMap matches source colors with destination colors to produce a
// blended color, driven by a lookup table rather than a formula. A blend
// map need not cover all 256 possible source colors, but for each source
// color it does cover, it holds mappings for all 256 destination colors.
type BlendMap struct {
	Start, End uint8
	mapping    []BlendMapping
}

// NewBlendMap returns a BlendMap with mappings for the inclusive source
// color range [start, end] only, all initialized to zero. start and end
// are normalized (swapped) if given in the wrong order; they may be equal
// to create a blend map with a single source color mapping.
func NewBlendMap(start, end uint8) *BlendMap {
	if start > end {
		start, end = end, start
	}
	numColors := int(end) - int(start) + 1
	return &BlendMap{Start: start, End: end, mapping: make([]BlendMapping, numColors)}
}

// NewColorizedLuminanceBlendMap returns a BlendMap with a single source
// color mapping, precomputed from palette so that blending any destination
// color against that one source color produces a simple colorization
// overlay effect that looks like translucency. The low end of the
// gradient range becomes the source color mapped in the returned blend
// map.
func NewColorizedLuminanceBlendMap(gradientStart, gradientEnd uint8, palette *Palette) *BlendMap {
	if gradientStart > gradientEnd {
		gradientStart, gradientEnd = gradientEnd, gradientStart
	}
	gradientSize := uint32(gradientEnd) - uint32(gradientStart) + 1
	sourceColor := gradientStart

	blendMap := NewBlendMap(sourceColor, sourceColor)
	bucket := uint8(256 / gradientSize)
	for idx := 0; idx < PaletteSize; idx++ {
		lit := uint8(luminance(palette.Color(uint8(idx))) * 255.0)
		blended := uint8(gradientSize-1) - (lit / bucket) + sourceColor
		blendMap.SetMapping(sourceColor, uint8(idx), blended)
	}
	return blendMap
}

// NewColoredLuminanceBlendMap returns a BlendMap covering all 256 source
// colors, where every (source, destination) pair is weighted by f, which
// combines the two colors' luminances (each in [0,1]) into a weight in
// [0,1] mapped into the gradient range.
func NewColoredLuminanceBlendMap(gradientStart, gradientEnd uint8, palette *Palette, f func(sourceLuminance, destLuminance float32) float32) *BlendMap {
	if gradientStart > gradientEnd {
		gradientStart, gradientEnd = gradientEnd, gradientStart
	}
	gradientSize := uint32(gradientEnd) - uint32(gradientStart) + 1

	blendMap := NewBlendMap(0, 255)
	bucket := uint8(256 / gradientSize)
	for source := 0; source < PaletteSize; source++ {
		sourceLum := luminance(palette.Color(uint8(source)))
		for dest := 0; dest < PaletteSize; dest++ {
			destLum := luminance(palette.Color(uint8(dest)))
			weight := uint8(f(sourceLum, destLum) * 255.0)
			blended := uint8(gradientSize-1) - (weight / bucket) + gradientStart
			blendMap.SetMapping(uint8(source), uint8(dest), blended)
		}
	}
	return blendMap
}

// NewTranslucencyBlendMap returns a BlendMap covering all 256 source
// colors, blending every source/destination pair against each other
// according to independent per-channel ratios (0.0 = fully destination,
// 1.0 = fully source). Slow: it performs a palette search for every one of
// the 65536 source/destination combinations, and results depend heavily on
// how populated the given palette's color space is.
func NewTranslucencyBlendMap(blendR, blendG, blendB float32, palette *Palette) *BlendMap {
	blendMap := NewBlendMap(0, 255)
	for source := 0; source < PaletteSize; source++ {
		sc := palette.Color(uint8(source))
		for dest := 0; dest < PaletteSize; dest++ {
			dc := palette.Color(uint8(dest))
			findR := uint8(lerp(float32(dc.R()), float32(sc.R()), blendR))
			findG := uint8(lerp(float32(dc.G()), float32(sc.G()), blendG))
			findB := uint8(lerp(float32(dc.B()), float32(sc.B()), blendB))
			result := palette.FindColor(NewRGB(findR, findG, findB))
			blendMap.mapping[source][dest] = result
		}
	}
	return blendMap
}

// IsMapped reports whether color is a source color mapped in this blend map.
func (m *BlendMap) IsMapped(color uint8) bool {
	return color >= m.Start && color <= m.End
}

func (m *BlendMap) mappingIndex(color uint8) (int, bool) {
	if color < m.Start || color > m.End {
		return 0, false
	}
	return int(color) - int(m.Start), true
}

// GetMapping returns the destination-to-blend lookup table for source
// color, and false if source is not mapped in this blend map.
func (m *BlendMap) GetMapping(source uint8) (*BlendMapping, bool) {
	i, ok := m.mappingIndex(source)
	if !ok {
		return nil, false
	}
	return &m.mapping[i], true
}

// SetMapping sets the blended color produced for (source, dest). It
// returns an ErrInvalidSourceColor error if source is not mapped in this
// blend map.
func (m *BlendMap) SetMapping(source, dest, blended uint8) error {
	i, ok := m.mappingIndex(source)
	if !ok {
		return newError(ErrInvalidSourceColor, "blend map source color out of range")
	}
	m.mapping[i][dest] = blended
	return nil
}

// SetMappings sets a contiguous run of blend color mappings for source,
// starting at baseDest. It returns an ErrInvalidSourceColor error if
// source is not mapped in this blend map.
func (m *BlendMap) SetMappings(source, baseDest uint8, blended []uint8) error {
	i, ok := m.mappingIndex(source)
	if !ok {
		return newError(ErrInvalidSourceColor, "blend map source color out of range")
	}
	copy(m.mapping[i][baseDest:], blended)
	return nil
}

// Blend returns the blended color for (source, dest), and false if source
// is not mapped in this blend map.
func (m *BlendMap) Blend(source, dest uint8) (uint8, bool) {
	mapping, ok := m.GetMapping(source)
	if !ok {
		return 0, false
	}
	return mapping[dest], true
}

// Lookup returns the blended result for source color src landing on top of
// the existing destination color dest. If src falls outside the map's
// [Start, End] range, src is returned unchanged.
func (m *BlendMap) Lookup(src, dest uint8) uint8 {
	blended, ok := m.Blend(src, dest)
	if !ok {
		return src
	}
	return blended
}

// luminance approximates perceived brightness of c on a 0..1 scale using
// ITU-R BT.601 luma weights. The exact formula used by the original isn't
// available in the retrieval pack; this is a standard substitute.
func luminance(c ARGB) float32 {
	return (float32(c.R())*0.299 + float32(c.G())*0.587 + float32(c.B())*0.114) / 255.0
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
