package ggdt

import (
	"math"

	"github.com/gered/ggdt-sub001/internal/wide"
)

// Vertex2D is a triangle corner: a screen-space position plus an RGBA
// color, used either as the flat-shaded fill color or as one corner's
// contribution to a gouraud-interpolated fill.
type Vertex2D struct {
	X, Y  float32
	Color ARGB
}

// TexCoord is a normalized (u, v) texture coordinate at a triangle corner.
type TexCoord struct {
	U, V float32
}

// PixelShader computes the final color to write for a triangle-interior
// pixel, given that pixel's raw (un-normalized) barycentric edge weights
// and the destination pixel's current color. Each of the triangle-drawing
// entry points below builds one of these closures; PerPixelTriangle2D
// supplies the rasterization loop all of them share.
type PixelShader func(w0, w1, w2 float32, dest ARGB) ARGB

func edgeFunction(a, b, c Vertex2D) float32 {
	return (b.Y-a.Y)*(c.X-a.X) - (b.X-a.X)*(c.Y-a.Y)
}

// isBottomRightEdge reports whether the edge v1->v2 is a bottom-right edge
// under the top-left fill rule: a negative Y step, or exactly horizontal
// with a positive X step. Pixels lying exactly on such an edge are not
// drawn; all other edges own their boundary pixels.
func isBottomRightEdge(v1, v2 Vertex2D) bool {
	edgeY := v2.Y - v1.Y
	edgeX := v2.X - v1.X
	return edgeY < 0.0 || (edgeY == 0.0 && edgeX > 0.0)
}

// triangleEdge tracks one of a triangle's three edge functions as the
// rasterizer steps across a scanline, both as a plain scalar (for the
// width-1 remainder) and as 4-wide lanes (for the bulk of each row).
type triangleEdge struct {
	stepX, stepY float32
	origin       float32
	onFillEdge   bool

	xIncSIMD   wide.F32x4
	yIncSIMD   wide.F32x4
	originSIMD wide.F32x4
}

func newTriangleEdge(a, b, c Vertex2D, at Vertex2D) triangleEdge {
	stepX := b.Y - a.Y
	stepY := a.X - b.X
	origin := edgeFunction(a, b, at)

	e := triangleEdge{
		stepX:      stepX,
		stepY:      stepY,
		origin:     origin,
		onFillEdge: !isBottomRightEdge(a, b),
	}
	e.xIncSIMD = wide.F32x4{0, stepX, stepX * 2, stepX * 3}
	e.yIncSIMD = wide.SplatF32x4(stepY)
	e.originSIMD = wide.SplatF32x4(origin).Add(e.xIncSIMD)
	return e
}

// isInside reports whether a scalar edge function value lies on the
// filled side of the edge.
func isInside(value float32) bool { return value <= 0.0 }

// isOnFillEdge additionally rejects exact-zero values on edges that do
// not own their own boundary, so two triangles sharing an edge never both
// draw the shared pixels.
func (e triangleEdge) isOnFillEdge(value float32) bool {
	if value == 0.0 && !e.onFillEdge {
		return false
	}
	return isInside(value)
}

func (e *triangleEdge) step() {
	e.origin += e.stepY
	e.originSIMD = e.originSIMD.Add(e.yIncSIMD)
}

// PerPixelTriangle2D rasterizes the filled triangle (v0, v1, v2) into
// dest, invoking shade once per covered pixel to compute the color that
// gets written there. Only v0.X/v1.X/v2.X and their Y counterparts matter
// here; per-vertex colors are the concern of whichever shade closure the
// caller built.
func PerPixelTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, shade PixelShader) {
	minX := math.Floor(float64(min3(v0.X, v1.X, v2.X)))
	minY := math.Floor(float64(min3(v0.Y, v1.Y, v2.Y)))
	maxX := math.Ceil(float64(max3(v0.X, v1.X, v2.X)))
	maxY := math.Ceil(float64(max3(v0.Y, v1.Y, v2.Y)))

	bounds := RectFromCoords(int32(minX), int32(minY), int32(maxX), int32(maxY))
	if !bounds.ClampTo(dest.ClipRegion()) {
		return
	}

	area := edgeFunction(v0, v1, v2)
	if area == 0 {
		return
	}

	sample := Vertex2D{X: float32(bounds.X) + 0.5, Y: float32(bounds.Y) + 0.5}
	e0 := newTriangleEdge(v1, v2, v0, sample)
	e1 := newTriangleEdge(v2, v0, v1, sample)
	e2 := newTriangleEdge(v0, v1, v2, sample)

	switch {
	case bounds.Width%4 == 0:
		triangle2D4xWidth(dest, bounds, e0, e1, e2, shade)
	case bounds.Width > 4:
		triangle2D4xWidthAndRemainder(dest, bounds, e0, e1, e2, shade)
	default:
		triangle2DAnyWidth(dest, bounds, e0, e1, e2, shade)
	}
}

// FlatTriangle2D fills the triangle with a single solid color.
func FlatTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, color ARGB) {
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		return color
	})
}

// FlatBlendedTriangle2D fills the triangle with color, composited over
// each destination pixel via blend.
func FlatBlendedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, color ARGB, blend BlendFunction) {
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, destColor ARGB) ARGB {
		return blend(color, destColor)
	})
}

// GouraudTriangle2D fills the triangle with each pixel's color computed as
// the barycentric blend of v0.Color, v1.Color and v2.Color.
func GouraudTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		return barycentricColor(w0, w1, w2, area, v0, v1, v2)
	})
}

// GouraudBlendedTriangle2D is GouraudTriangle2D, composited over each
// destination pixel via blend rather than written directly.
func GouraudBlendedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, blend BlendFunction) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, destColor ARGB) ARGB {
		src := barycentricColor(w0, w1, w2, area, v0, v1, v2)
		return blend(src, destColor)
	})
}

// TexturedTriangle2D fills the triangle with texels nearest-neighbor
// sampled from src at the affinely-interpolated (u, v) coordinates given
// by uv0, uv1, uv2.
func TexturedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, src *RgbaBitmap) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		return sampleTexture(src, u, v)
	})
}

// TexturedFlatTriangle2D is TexturedTriangle2D with every sampled texel
// additionally multiplied by color.
func TexturedFlatTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, color ARGB, src *RgbaBitmap) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		return multiplyColor(texel, color)
	})
}

// TexturedFlatBlendedTriangle2D is TexturedFlatTriangle2D, composited over
// each destination pixel via blend rather than written directly.
func TexturedFlatBlendedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, color ARGB, src *RgbaBitmap, blend BlendFunction) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, destColor ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		tinted := multiplyColor(texel, color)
		return blend(tinted, destColor)
	})
}

// TexturedGouraudTriangle2D is TexturedTriangle2D with every sampled texel
// additionally multiplied by the barycentric blend of v0.Color, v1.Color
// and v2.Color.
func TexturedGouraudTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, src *RgbaBitmap) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		gouraud := barycentricColor(w0, w1, w2, area, v0, v1, v2)
		return multiplyColor(texel, gouraud)
	})
}

// TexturedGouraudBlendedTriangle2D is TexturedGouraudTriangle2D,
// composited over each destination pixel via blend rather than written
// directly.
func TexturedGouraudBlendedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, src *RgbaBitmap, blend BlendFunction) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, destColor ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		gouraud := barycentricColor(w0, w1, w2, area, v0, v1, v2)
		src := multiplyColor(texel, gouraud)
		return blend(src, destColor)
	})
}

// TexturedTintTriangle2D is TexturedTriangle2D with every sampled texel
// additionally tinted toward tint, weighted by tint's own alpha.
func TexturedTintTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, src *RgbaBitmap, tint ARGB) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, _ ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		return tintColor(texel, tint)
	})
}

// TexturedBlendedTriangle2D is TexturedTriangle2D, composited over each
// destination pixel via blend rather than written directly.
func TexturedBlendedTriangle2D(dest *RgbaBitmap, v0, v1, v2 Vertex2D, uv0, uv1, uv2 TexCoord, src *RgbaBitmap, blend BlendFunction) {
	area := edgeFunction(v0, v1, v2)
	PerPixelTriangle2D(dest, v0, v1, v2, func(w0, w1, w2 float32, destColor ARGB) ARGB {
		u, v := barycentricUV(w0, w1, w2, area, uv0, uv1, uv2)
		texel := sampleTexture(src, u, v)
		return blend(texel, destColor)
	})
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func barycentricColor(w0, w1, w2, area float32, v0, v1, v2 Vertex2D) ARGB {
	b0 := w0 / area
	b1 := w1 / area
	b2 := w2 / area
	r := b0*float32(v0.Color.R()) + b1*float32(v1.Color.R()) + b2*float32(v2.Color.R())
	g := b0*float32(v0.Color.G()) + b1*float32(v1.Color.G()) + b2*float32(v2.Color.G())
	b := b0*float32(v0.Color.B()) + b1*float32(v1.Color.B()) + b2*float32(v2.Color.B())
	a := b0*float32(v0.Color.A()) + b1*float32(v1.Color.A()) + b2*float32(v2.Color.A())
	return NewARGB(clamp255(a), clamp255(r), clamp255(g), clamp255(b))
}

func barycentricUV(w0, w1, w2, area float32, uv0, uv1, uv2 TexCoord) (float32, float32) {
	b0 := w0 / area
	b1 := w1 / area
	b2 := w2 / area
	u := b0*uv0.U + b1*uv1.U + b2*uv2.U
	v := b0*uv0.V + b1*uv1.V + b2*uv2.V
	return u, v
}

func sampleTexture(src *RgbaBitmap, u, v float32) ARGB {
	return ARGB(src.SampleAt(float64(u), float64(v)))
}

// multiplyColor combines a texel with a color, each channel (including
// alpha) scaled to [0, 1] before multiplying.
func multiplyColor(a, b ARGB) ARGB {
	r := uint8(uint32(a.R()) * uint32(b.R()) / 255)
	g := uint8(uint32(a.G()) * uint32(b.G()) / 255)
	bch := uint8(uint32(a.B()) * uint32(b.B()) / 255)
	alpha := uint8(uint32(a.A()) * uint32(b.A()) / 255)
	return NewARGB(alpha, r, g, bch)
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func triangle2DAnyWidth(dest *RgbaBitmap, bounds Rect, e0, e1, e2 triangleEdge, shade PixelShader) {
	for y := bounds.Y; y <= bounds.Bottom(); y++ {
		r0, r1, r2 := e0, e1, e2
		for x := bounds.X; x <= bounds.Right(); x++ {
			if r0.isOnFillEdge(r0.origin) && r1.isOnFillEdge(r1.origin) && r2.isOnFillEdge(r2.origin) {
				dest.SetPixelUnchecked(x, y, uint32(shade(r0.origin, r1.origin, r2.origin, ARGB(dest.GetPixelUnchecked(x, y)))))
			}
			r0.origin += r0.stepX
			r1.origin += r1.stepX
			r2.origin += r2.stepX
		}
		e0.step()
		e1.step()
		e2.step()
	}
}

func triangle2D4xWidth(dest *RgbaBitmap, bounds Rect, e0, e1, e2 triangleEdge, shade PixelShader) {
	for y := bounds.Y; y <= bounds.Bottom(); y++ {
		r0, r1, r2 := e0, e1, e2
		for x := bounds.X; x <= bounds.Right(); x += 4 {
			rasterizeLane4(dest, x, y, r0, r1, r2, shade)
			r0.originSIMD = r0.originSIMD.Add(wide.SplatF32x4(r0.stepX * 4))
			r1.originSIMD = r1.originSIMD.Add(wide.SplatF32x4(r1.stepX * 4))
			r2.originSIMD = r2.originSIMD.Add(wide.SplatF32x4(r2.stepX * 4))
		}
		e0.step()
		e1.step()
		e2.step()
	}
}

func triangle2D4xWidthAndRemainder(dest *RgbaBitmap, bounds Rect, e0, e1, e2 triangleEdge, shade PixelShader) {
	fullLanes := (int32(bounds.Width) / 4) * 4
	for y := bounds.Y; y <= bounds.Bottom(); y++ {
		r0, r1, r2 := e0, e1, e2
		x := bounds.X
		for ; x < bounds.X+fullLanes; x += 4 {
			rasterizeLane4(dest, x, y, r0, r1, r2, shade)
			r0.originSIMD = r0.originSIMD.Add(wide.SplatF32x4(r0.stepX * 4))
			r1.originSIMD = r1.originSIMD.Add(wide.SplatF32x4(r1.stepX * 4))
			r2.originSIMD = r2.originSIMD.Add(wide.SplatF32x4(r2.stepX * 4))
		}
		s0 := triangleEdge{stepX: r0.stepX, onFillEdge: r0.onFillEdge, origin: r0.originSIMD[0]}
		s1 := triangleEdge{stepX: r1.stepX, onFillEdge: r1.onFillEdge, origin: r1.originSIMD[0]}
		s2 := triangleEdge{stepX: r2.stepX, onFillEdge: r2.onFillEdge, origin: r2.originSIMD[0]}
		for ; x <= bounds.Right(); x++ {
			if s0.isOnFillEdge(s0.origin) && s1.isOnFillEdge(s1.origin) && s2.isOnFillEdge(s2.origin) {
				dest.SetPixelUnchecked(x, y, uint32(shade(s0.origin, s1.origin, s2.origin, ARGB(dest.GetPixelUnchecked(x, y)))))
			}
			s0.origin += s0.stepX
			s1.origin += s1.stepX
			s2.origin += s2.stepX
		}
		e0.step()
		e1.step()
		e2.step()
	}
}

func rasterizeLane4(dest *RgbaBitmap, x, y int32, e0, e1, e2 triangleEdge, shade PixelShader) {
	m0 := e0.originSIMD.LessEqualZero()
	m1 := e1.originSIMD.LessEqualZero()
	m2 := e2.originSIMD.LessEqualZero()
	for lane := 0; lane < 4; lane++ {
		if x+int32(lane) > dest.ClipRegion().Right() {
			return
		}
		if !m0[lane] || !m1[lane] || !m2[lane] {
			continue
		}
		if (e0.originSIMD[lane] == 0 && !e0.onFillEdge) ||
			(e1.originSIMD[lane] == 0 && !e1.onFillEdge) ||
			(e2.originSIMD[lane] == 0 && !e2.onFillEdge) {
			continue
		}
		px := x + int32(lane)
		dest.SetPixelUnchecked(px, y, uint32(shade(e0.originSIMD[lane], e1.originSIMD[lane], e2.originSIMD[lane], ARGB(dest.GetPixelUnchecked(px, y)))))
	}
}
