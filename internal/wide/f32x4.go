// Package wide provides small fixed-size float32 arrays for SIMD-style,
// auto-vectorization-friendly batch arithmetic. It is not a binding to any
// hardware intrinsic; it exists so hot inner loops can be written as
// whole-array operations that the compiler is free to vectorize.
package wide

// F32x4 holds four float32 lanes, matching the 4-pixel-wide step used by
// the triangle rasterizer's edge functions.
type F32x4 [4]float32

// SplatF32x4 returns an F32x4 with every lane set to n.
func SplatF32x4(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	return F32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	return F32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// LessEqualZero returns a boolean mask of v[i] <= 0.
func (v F32x4) LessEqualZero() [4]bool {
	return [4]bool{v[0] <= 0, v[1] <= 0, v[2] <= 0, v[3] <= 0}
}
