package ggdt

import "testing"

func makeTestIndexedBitmapAndPalette(width, height uint32) (*IndexedBitmap, *Palette) {
	bmp, _ := NewBitmap[uint8](width, height)
	for i := range bmp.Pixels() {
		bmp.Pixels()[i] = uint8(i % 256)
	}
	pal := NewPalette()
	for i := 0; i < PaletteSize; i++ {
		pal.SetColor(uint8(i), NewRGB(uint8(i), uint8(255-i), uint8(i/2)))
	}
	return bmp, pal
}

func TestPCXSaveLoadRoundTrip(t *testing.T) {
	bmp, pal := makeTestIndexedBitmapAndPalette(17, 9) // odd width exercises scanline padding

	data, err := SavePCXBytes(bmp, pal)
	if err != nil {
		t.Fatal(err)
	}

	gotBmp, gotPal, err := LoadPCXBytes(data)
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
	for i := 0; i < PaletteSize; i++ {
		if gotPal.Color(uint8(i)) != pal.Color(uint8(i)) {
			t.Fatalf("palette entry %d: got %+v, want %+v", i, gotPal.Color(uint8(i)), pal.Color(uint8(i)))
		}
	}
}

func TestPCXSaveLoadRoundTripWithRuns(t *testing.T) {
	bmp, _ := NewBitmap[uint8](20, 4)
	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 20; x++ {
			bmp.SetPixelUnchecked(int32(x), int32(y), uint8(y)) // solid runs per row
		}
	}
	pal := NewPalette()

	data, err := SavePCXBytes(bmp, pal)
	if err != nil {
		t.Fatal(err)
	}
	gotBmp, _, err := LoadPCXBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range bmp.Pixels() {
		if got := gotBmp.Pixels()[i]; got != want {
			t.Fatalf("pixel %d: got %d, want %d", i, got, want)
		}
	}
}

func TestLoadPCXBytesRejectsWrongManufacturer(t *testing.T) {
	data := make([]byte, pcxHeaderSize+769)
	data[0] = 99
	if _, _, err := LoadPCXBytes(data); err == nil {
		t.Fatal("expected error for non-pcx manufacturer byte")
	}
}

func TestLoadPCXBytesRejectsTruncatedHeader(t *testing.T) {
	data := make([]byte, 10)
	if _, _, err := LoadPCXBytes(data); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestSavePCXBytesRejectsZeroDimensions(t *testing.T) {
	bmp := &IndexedBitmap{}
	pal := NewPalette()
	if _, err := SavePCXBytes(bmp, pal); err == nil {
		t.Fatal("expected error for zero-dimension bitmap")
	}
}
