package ggdt

import "testing"

func TestIFFSaveLoadRoundTrip(t *testing.T) {
	bmp, pal := makeTestIndexedBitmapAndPalette(13, 7)

	data, err := SaveIFFBytes(bmp, pal)
	if err != nil {
		t.Fatal(err)
	}

	gotBmp, gotPal, err := LoadIFFBytes(data)
	if err != nil {
		t.Fatal(err)
	}

	if gotBmp.Width() != bmp.Width() || gotBmp.Height() != bmp.Height() {
		t.Fatalf("dimensions mismatch: got %dx%d, want %dx%d", gotBmp.Width(), gotBmp.Height(), bmp.Width(), bmp.Height())
	}
	for i, want := range bmp.Pixels() {
		if got := gotBmp.Pixels()[i]; got != want {
			t.Fatalf("pixel %d: got %d, want %d", i, got, want)
		}
	}
	for i := 0; i < 256; i++ {
		if gotPal.Color(uint8(i)) != pal.Color(uint8(i)) {
			t.Fatalf("palette entry %d: got %+v, want %+v", i, gotPal.Color(uint8(i)), pal.Color(uint8(i)))
		}
	}
}

func TestIFFSaveLoadRoundTripSparsePixels(t *testing.T) {
	bmp, _ := NewBitmap[uint8](8, 8)
	bmp.SetPixelUnchecked(0, 0, 1)
	bmp.SetPixelUnchecked(7, 7, 255)
	bmp.SetPixelUnchecked(3, 4, 128)
	pal := NewPalette()

	data, err := SaveIFFBytes(bmp, pal)
	if err != nil {
		t.Fatal(err)
	}
	gotBmp, _, err := LoadIFFBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range bmp.Pixels() {
		if got := gotBmp.Pixels()[i]; got != want {
			t.Fatalf("pixel %d: got %d, want %d", i, got, want)
		}
	}
}

func TestLoadIFFBytesRGBAExpandsPalette(t *testing.T) {
	bmp, pal := makeTestIndexedBitmapAndPalette(4, 4)
	data, err := SaveIFFBytes(bmp, pal)
	if err != nil {
		t.Fatal(err)
	}
	rgba, err := LoadIFFBytesRGBA(data)
	if err != nil {
		t.Fatal(err)
	}
	want := pal.Color(bmp.GetPixelUnchecked(0, 0))
	if ARGB(rgba.GetPixelUnchecked(0, 0)) != want {
		t.Fatalf("got %+v, want %+v", ARGB(rgba.GetPixelUnchecked(0, 0)), want)
	}
}

func TestLoadIFFBytesRejectsMissingForm(t *testing.T) {
	data := []byte("NOPE0000ILBM")
	if _, _, err := LoadIFFBytes(data); err == nil {
		t.Fatal("expected error for missing FORM header")
	}
}

func TestLoadIFFBytesRejectsTruncatedData(t *testing.T) {
	data := []byte("FORM")
	if _, _, err := LoadIFFBytes(data); err == nil {
		t.Fatal("expected error for truncated iff data")
	}
}
