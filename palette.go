package ggdt

import "math"

// PaletteSize is the fixed number of entries in a Palette.
const PaletteSize = 256

// Palette is a 256-entry table mapping an indexed bitmap's palette
// indices to ARGB colors.
type Palette struct {
	colors [PaletteSize]ARGB
}

// NewPalette returns a palette with every entry set to black with full
// alpha.
func NewPalette() *Palette {
	p := &Palette{}
	for i := range p.colors {
		p.colors[i] = NewRGB(0, 0, 0)
	}
	return p
}

// Color returns the color at index.
func (p *Palette) Color(index uint8) ARGB { return p.colors[index] }

// SetColor sets the color at index.
func (p *Palette) SetColor(index uint8, color ARGB) { p.colors[index] = color }

// ToRGBA expands an IndexedBitmap to an RgbaBitmap using this palette.
func (p *Palette) ToRGBA(src *IndexedBitmap) (*RgbaBitmap, error) {
	dest, err := NewBitmap[uint32](src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	pixels := dest.Pixels()
	for i, idx := range src.Pixels() {
		pixels[i] = uint32(p.Color(idx))
	}
	return dest, nil
}

// LoadFromBytesVGA loads 256 entries of 3 bytes each (6-bit VGA DAC
// values, 0-63) into the palette.
func (p *Palette) LoadFromBytesVGA(data []byte) error {
	if len(data) < PaletteSize*3 {
		return newError(ErrInvalidFileFormat, "vga palette data too short")
	}
	for i := 0; i < PaletteSize; i++ {
		r := data[i*3+0]
		g := data[i*3+1]
		b := data[i*3+2]
		p.colors[i] = NewRGB(vgaToFull(r), vgaToFull(g), vgaToFull(b))
	}
	return nil
}

// LoadFromBytesNormal loads 256 entries of 3 bytes each (full 8-bit RGB)
// into the palette.
func (p *Palette) LoadFromBytesNormal(data []byte) error {
	if len(data) < PaletteSize*3 {
		return newError(ErrInvalidFileFormat, "palette data too short")
	}
	for i := 0; i < PaletteSize; i++ {
		p.colors[i] = NewRGB(data[i*3+0], data[i*3+1], data[i*3+2])
	}
	return nil
}

// ToBytesNormal writes the palette as 256*3 full 8-bit RGB bytes.
func (p *Palette) ToBytesNormal() []byte {
	out := make([]byte, PaletteSize*3)
	for i, c := range p.colors {
		out[i*3+0] = c.R()
		out[i*3+1] = c.G()
		out[i*3+2] = c.B()
	}
	return out
}

func vgaToFull(v byte) uint8 {
	if v > 63 {
		v = 63
	}
	return uint8(math.Round(float64(v) * 255.0 / 63.0))
}

// FadeColorTowardRGB steps the single color at index toward (r,g,b) by at
// most step per component, clamping so it never overshoots the target.
// Intended to be called repeatedly across frames, one step at a time. It
// returns true once the color has reached (r,g,b) exactly.
func (p *Palette) FadeColorTowardRGB(index uint8, r, g, b, step uint8) bool {
	c := p.colors[index]
	nr := stepToward(c.R(), r, step)
	ng := stepToward(c.G(), g, step)
	nb := stepToward(c.B(), b, step)
	if nr != c.R() || ng != c.G() || nb != c.B() {
		p.colors[index] = NewRGB(nr, ng, nb)
	}
	return nr == r && ng == g && nb == b
}

func stepToward(from, to, step uint8) uint8 {
	if from == to {
		return from
	}
	if from > to {
		diff := from - to
		if diff < step {
			step = diff
		}
		return from - step
	}
	diff := to - from
	if diff < step {
		step = diff
	}
	return from + step
}

// FadeColorsTowardRGB fades every color in [start, end] toward (r,g,b),
// returning true only once every color in the range has converged.
func (p *Palette) FadeColorsTowardRGB(start, end, r, g, b, step uint8) bool {
	allFaded := true
	for i := int(start); i <= int(end); i++ {
		if !p.FadeColorTowardRGB(uint8(i), r, g, b, step) {
			allFaded = false
		}
	}
	return allFaded
}

// FadeColorsTowardPalette fades every color in [start, end] toward the
// corresponding entry of target, returning true only once every color in
// the range has converged.
func (p *Palette) FadeColorsTowardPalette(start, end uint8, target *Palette, step uint8) bool {
	allFaded := true
	for i := int(start); i <= int(end); i++ {
		idx := uint8(i)
		tc := target.colors[idx]
		if !p.FadeColorTowardRGB(idx, tc.R(), tc.G(), tc.B(), step) {
			allFaded = false
		}
	}
	return allFaded
}

// Lerp linearly interpolates the colors in [start, end] between palettes a
// and b by fraction t, storing the result in this palette.
func (p *Palette) Lerp(start, end uint8, a, b *Palette, t float32) {
	for i := int(start); i <= int(end); i++ {
		idx := uint8(i)
		ca := a.colors[idx]
		cb := b.colors[idx]
		p.colors[idx] = NewRGB(
			lerpComponent(ca.R(), cb.R(), t),
			lerpComponent(ca.G(), cb.G(), t),
			lerpComponent(ca.B(), cb.B(), t),
		)
	}
}

func lerpComponent(a, b uint8, t float32) uint8 {
	v := float32(a) + (float32(b)-float32(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(float64(v)))
}

// RotateColors cyclically shifts the palette entries in [start, end]
// (inclusive) by step positions. A positive step rotates colors toward
// higher indices (a "right rotate" of the affected range); a negative
// step rotates toward lower indices.
func (p *Palette) RotateColors(start, end uint8, step int) {
	if end <= start {
		return
	}
	span := int(end) - int(start) + 1
	window := make([]ARGB, span)
	copy(window, p.colors[start:int(end)+1])

	shift := ((step % span) + span) % span
	for i := 0; i < span; i++ {
		srcIdx := (i - shift + span) % span
		p.colors[int(start)+i] = window[srcIdx]
	}
}

// FindColor returns the index of the palette entry closest to target,
// measured by Manhattan (L1) distance over R/G/B. An exact match short-
// circuits immediately; ties prefer the lowest index.
func (p *Palette) FindColor(target ARGB) uint8 {
	best := uint8(0)
	bestDist := -1
	for i, c := range p.colors {
		if c.R() == target.R() && c.G() == target.G() && c.B() == target.B() {
			return uint8(i)
		}
		dist := absInt(int(c.R())-int(target.R())) +
			absInt(int(c.G())-int(target.G())) +
			absInt(int(c.B())-int(target.B()))
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = uint8(i)
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
