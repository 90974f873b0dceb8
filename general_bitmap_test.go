package ggdt

import "testing"

func TestAsGeneralDrawsThroughIndexedBitmap(t *testing.T) {
	b, _ := NewBitmap[uint8](8, 8)
	g := AsGeneral(b)

	g.Clear(3)
	g.FilledRect(NewRect(1, 1, 2, 2), 5)

	if v := b.GetPixelUnchecked(0, 0); v != 3 {
		t.Fatalf("expected Clear to fill with index 3, got %d", v)
	}
	if v := b.GetPixelUnchecked(1, 1); v != 5 {
		t.Fatalf("expected FilledRect to draw with index 5, got %d", v)
	}
}

func TestAsGeneralRGBADrawsThroughRgbaBitmap(t *testing.T) {
	b, _ := NewBitmap[uint32](8, 8)
	g := AsGeneralRGBA(b)

	g.Clear(uint32(ColorRed))
	g.Circle(4, 4, 2, uint32(ColorBlue))

	if ARGB(b.GetPixelUnchecked(0, 0)) != ColorRed {
		t.Fatalf("expected Clear to fill with red")
	}
}

func TestGeneralBitmapReportsDimensionsAndBounds(t *testing.T) {
	b, _ := NewBitmap[uint8](10, 6)
	g := AsGeneral(b)

	if g.Width() != 10 || g.Height() != 6 {
		t.Fatalf("got %dx%d", g.Width(), g.Height())
	}
	if g.Right() != 9 || g.Bottom() != 5 {
		t.Fatalf("got right=%d bottom=%d", g.Right(), g.Bottom())
	}
}
