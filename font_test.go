package ggdt

import "testing"

func TestNewBitmaskFontDefaultsSpaceWidth(t *testing.T) {
	f, err := NewBitmaskFont(8)
	if err != nil {
		t.Fatal(err)
	}
	if f.GlyphWidth(' ') != 4 {
		t.Fatalf("expected default space width of 4, got %d", f.GlyphWidth(' '))
	}
}

func TestNewBitmaskFontRejectsZeroLineHeight(t *testing.T) {
	if _, err := NewBitmaskFont(0); err == nil {
		t.Fatal("expected error for zero line height")
	}
}

func TestMeasureTextTrimsTrailingWhitespace(t *testing.T) {
	f, _ := NewBitmaskFont(8)
	f.SetGlyph('A', [8]uint8{}, 6)

	w1, _ := f.MeasureText("A")
	w2, _ := f.MeasureText("A   ")
	if w1 != w2 {
		t.Fatalf("expected trailing whitespace to not widen measured text, got %d vs %d", w1, w2)
	}
}

func TestMeasureTextMultilineHeight(t *testing.T) {
	f, _ := NewBitmaskFont(10)
	_, h := f.MeasureText("a\nb\nc")
	if h != 30 {
		t.Fatalf("expected height 30 for 3 lines at line height 10, got %d", h)
	}
}

func TestPrintCharSetsGlyphPixels(t *testing.T) {
	f, _ := NewBitmaskFont(8)
	f.SetGlyph('X', [8]uint8{0x80, 0, 0, 0, 0, 0, 0, 0}, 8)

	bmp, _ := NewBitmap[uint8](8, 8)
	bmp.PrintChar(f, 0, 0, 'X', 9)

	if v, _ := bmp.GetPixel(0, 0); v != 9 {
		t.Fatalf("expected top-left glyph bit to be drawn, got %d", v)
	}
	if v, _ := bmp.GetPixel(1, 0); v != 0 {
		t.Fatalf("expected unset glyph bit to remain blank, got %d", v)
	}
}

func TestFontSaveLoadRoundTrip(t *testing.T) {
	f, _ := NewBitmaskFont(8)
	f.SetGlyph('A', [8]uint8{0x80, 0x40, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01}, 7)
	f.SetGlyph('B', [8]uint8{0xff, 0x81, 0x81, 0xff, 0, 0, 0, 0}, 8)

	data := f.ToBytes()
	wantLen := fontGlyphCount*fontGlyphRows + fontGlyphCount + 1
	if len(data) != wantLen {
		t.Fatalf("expected %d bytes, got %d", wantLen, len(data))
	}

	got, err := LoadFontFromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.LineHeight != f.LineHeight {
		t.Fatalf("line height: got %d, want %d", got.LineHeight, f.LineHeight)
	}
	for code := 0; code < fontGlyphCount; code++ {
		if got.GlyphWidth(byte(code)) != f.GlyphWidth(byte(code)) {
			t.Fatalf("glyph %d width: got %d, want %d", code, got.GlyphWidth(byte(code)), f.GlyphWidth(byte(code)))
		}
		if got.glyphs[code] != f.glyphs[code] {
			t.Fatalf("glyph %d bitmask rows mismatch", code)
		}
	}
}

func TestLoadFontFromBytesRejectsShortData(t *testing.T) {
	if _, err := LoadFontFromBytes(make([]byte, 10)); err == nil {
		t.Fatal("expected error for truncated font data")
	}
}

func TestLoadFontFromBytesRejectsOutOfRangeLineHeight(t *testing.T) {
	data := make([]byte, fontGlyphCount*fontGlyphRows+fontGlyphCount+1)
	data[len(data)-1] = 9
	if _, err := LoadFontFromBytes(data); err == nil {
		t.Fatal("expected error for line height greater than 8")
	}
}

func TestPrintStringAdvancesAndWraps(t *testing.T) {
	f, _ := NewBitmaskFont(8)
	f.SetGlyph('A', [8]uint8{0x80}, 4)
	f.SetGlyph('B', [8]uint8{0x80}, 4)

	bmp, _ := NewBitmap[uint8](20, 20)
	bmp.PrintString(f, 0, 0, "A\nB", 9)

	if v, _ := bmp.GetPixel(0, 0); v != 9 {
		t.Fatalf("expected 'A' glyph drawn at origin")
	}
	if v, _ := bmp.GetPixel(0, 8); v != 9 {
		t.Fatalf("expected 'B' glyph drawn on next line after newline")
	}
}
