package ggdt

import "testing"

func TestARGBComponents(t *testing.T) {
	c := NewARGB(10, 20, 30, 40)
	if c.A() != 10 || c.R() != 20 || c.G() != 30 || c.B() != 40 {
		t.Fatalf("got A=%d R=%d G=%d B=%d", c.A(), c.R(), c.G(), c.B())
	}
}

func TestNewRGBIsFullyOpaque(t *testing.T) {
	c := NewRGB(1, 2, 3)
	if c.A() != 255 {
		t.Fatalf("expected alpha 255, got %d", c.A())
	}
}

func TestWithAlpha(t *testing.T) {
	c := NewRGB(10, 20, 30).WithAlpha(128)
	if c.A() != 128 || c.R() != 10 || c.G() != 20 || c.B() != 30 {
		t.Fatalf("got %+v", c)
	}
}

func TestBlendFullyOpaqueSourceReplacesDest(t *testing.T) {
	src := NewRGB(200, 100, 50)
	dest := NewRGB(0, 0, 0)
	got := Blend(src, dest)
	if got.R() != 200 || got.G() != 100 || got.B() != 50 {
		t.Fatalf("got %+v", got)
	}
}

func TestBlendFullyTransparentSourceLeavesDestUnchanged(t *testing.T) {
	src := NewARGB(0, 200, 100, 50)
	dest := NewRGB(10, 20, 30)
	got := Blend(src, dest)
	if got != dest {
		t.Fatalf("got %+v, want %+v", got, dest)
	}
}

func TestBlendSourceWithAlphaHalfway(t *testing.T) {
	src := NewRGB(200, 200, 200)
	dest := NewRGB(0, 0, 0)
	got := BlendSourceWithAlpha(128, src, dest)
	if got.R() == 0 || got.R() == 200 {
		t.Fatalf("expected a blended value strictly between 0 and 200, got %d", got.R())
	}
}

func TestMultipliedBlendZeroMultiplierGivesBlack(t *testing.T) {
	fn := MultipliedBlend(NewRGB(0, 0, 0))
	got := fn(NewRGB(255, 255, 255), NewRGB(0, 0, 0))
	if got.R() != 0 || got.G() != 0 || got.B() != 0 {
		t.Fatalf("got %+v", got)
	}
}
