package ggdt

import "testing"

func TestGifSaveLoadRoundTrip(t *testing.T) {
	bmp, pal := makeTestIndexedBitmapAndPalette(10, 6)

	data, err := SaveGifBytes(bmp, pal, gifNoTransparentIndex)
	if err != nil {
		t.Fatal(err)
	}

	gotBmp, gotPal, transparentIndex, err := LoadGifBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if transparentIndex != gifNoTransparentIndex {
		t.Fatalf("expected no transparent index, got %d", transparentIndex)
	}
	if gotBmp.Width() != bmp.Width() || gotBmp.Height() != bmp.Height() {
		t.Fatalf("dimensions mismatch: got %dx%d, want %dx%d", gotBmp.Width(), gotBmp.Height(), bmp.Width(), bmp.Height())
	}
	for i, want := range bmp.Pixels() {
		if got := gotBmp.Pixels()[i]; got != want {
			t.Fatalf("pixel %d: got %d, want %d", i, got, want)
		}
	}
	for i := 0; i < PaletteSize; i++ {
		if gotPal.Color(uint8(i)) != pal.Color(uint8(i)) {
			t.Fatalf("palette entry %d: got %+v, want %+v", i, gotPal.Color(uint8(i)), pal.Color(uint8(i)))
		}
	}
}

func TestGifSaveLoadRoundTripWithTransparentIndex(t *testing.T) {
	bmp, pal := makeTestIndexedBitmapAndPalette(6, 4)

	data, err := SaveGifBytes(bmp, pal, 3)
	if err != nil {
		t.Fatal(err)
	}
	_, _, transparentIndex, err := LoadGifBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if transparentIndex != 3 {
		t.Fatalf("expected transparent index 3, got %d", transparentIndex)
	}
}

func TestLoadGifBytesRGBAZeroesTransparentAlpha(t *testing.T) {
	bmp, _ := NewBitmap[uint8](2, 2)
	bmp.SetPixelUnchecked(0, 0, 1)
	pal := NewPalette()
	pal.SetColor(1, NewRGB(10, 20, 30))

	data, err := SaveGifBytes(bmp, pal, 1)
	if err != nil {
		t.Fatal(err)
	}
	rgba, err := LoadGifBytesRGBA(data)
	if err != nil {
		t.Fatal(err)
	}
	if ARGB(rgba.GetPixelUnchecked(0, 0)).A() != 0 {
		t.Fatalf("expected transparent-indexed pixel to decode with zero alpha")
	}
}

func TestLoadGifBytesRejectsBadMagic(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "NOTGIF")
	if _, _, _, err := LoadGifBytes(data); err == nil {
		t.Fatal("expected error for invalid gif magic")
	}
}

func TestSaveGifBytesRejectsZeroDimensions(t *testing.T) {
	bmp := &IndexedBitmap{}
	pal := NewPalette()
	if _, err := SaveGifBytes(bmp, pal, gifNoTransparentIndex); err == nil {
		t.Fatal("expected error for zero-dimension bitmap")
	}
}
