package ggdt

import "testing"

func makeIndexedSource() *IndexedBitmap {
	src, _ := NewBitmap[uint8](4, 4)
	for i := range src.Pixels() {
		src.Pixels()[i] = uint8(i + 1)
	}
	return src
}

func TestSolidBlitCopiesEveryPixel(t *testing.T) {
	src := makeIndexedSource()
	dest, _ := NewBitmap[uint8](8, 8)

	NewSolidBlit().Blit(dest, src, 2, 2)

	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			want := src.GetPixelUnchecked(x, y)
			got := dest.GetPixelUnchecked(x+2, y+2)
			if got != want {
				t.Fatalf("at (%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestTransparentBlitSkipsTransparentColor(t *testing.T) {
	src, _ := NewBitmap[uint8](2, 1)
	src.SetPixelUnchecked(0, 0, 5)
	src.SetPixelUnchecked(1, 0, 0) // transparent

	dest, _ := NewBitmap[uint8](2, 1)
	dest.SetPixelUnchecked(1, 0, 9)

	NewTransparentBlit(0).Blit(dest, src, 0, 0)

	if v := dest.GetPixelUnchecked(0, 0); v != 5 {
		t.Fatalf("expected opaque source pixel copied, got %d", v)
	}
	if v := dest.GetPixelUnchecked(1, 0); v != 9 {
		t.Fatalf("expected transparent source pixel to leave dest unchanged, got %d", v)
	}
}

func TestSolidFlippedBlitHorizontal(t *testing.T) {
	src, _ := NewBitmap[uint8](2, 1)
	src.SetPixelUnchecked(0, 0, 1)
	src.SetPixelUnchecked(1, 0, 2)

	dest, _ := NewBitmap[uint8](2, 1)
	NewSolidFlippedBlit(true, false).Blit(dest, src, 0, 0)

	if v := dest.GetPixelUnchecked(0, 0); v != 2 {
		t.Fatalf("expected horizontally flipped pixel 2 at x=0, got %d", v)
	}
	if v := dest.GetPixelUnchecked(1, 0); v != 1 {
		t.Fatalf("expected horizontally flipped pixel 1 at x=1, got %d", v)
	}
}

func TestSolidOffsetBlitAddsOffsetToEachIndex(t *testing.T) {
	src := makeIndexedSource()
	dest, _ := NewBitmap[uint8](4, 4)

	NewSolidOffsetBlit(10).Blit(dest, src, 0, 0)

	for i, want := range src.Pixels() {
		got := dest.Pixels()[i]
		if got != want+10 {
			t.Fatalf("pixel %d: got %d, want %d", i, got, want+10)
		}
	}
}

func TestBlitRegionClipsToRequestedSubRect(t *testing.T) {
	src := makeIndexedSource()
	dest, _ := NewBitmap[uint8](4, 4)

	NewSolidBlit().BlitRegion(dest, src, NewRect(1, 1, 2, 2), 0, 0)

	if v := dest.GetPixelUnchecked(0, 0); v != src.GetPixelUnchecked(1, 1) {
		t.Fatalf("expected sub-rect top-left copied, got %d", v)
	}
	if v := dest.GetPixelUnchecked(2, 2); v != 0 {
		t.Fatalf("expected pixels outside the blitted region to remain untouched, got %d", v)
	}
}

func TestBlitClipsAgainstDestClipRegion(t *testing.T) {
	src := makeIndexedSource()
	dest, _ := NewBitmap[uint8](4, 4)
	dest.SetClipRegion(NewRect(0, 0, 2, 2))

	NewSolidBlit().Blit(dest, src, 0, 0)

	if v := dest.GetPixelUnchecked(3, 3); v != 0 {
		t.Fatalf("expected blit to be clipped by dest's clip region, got %d", v)
	}
	if v := dest.GetPixelUnchecked(0, 0); v == 0 {
		t.Fatalf("expected blit within clip region to still occur")
	}
}
