package ggdt

import "strings"

const fontGlyphCount = 256
const fontGlyphRows = 8

// BitmaskFont is a fixed-cell bitmap font: each of 256 glyphs is encoded
// as 8 rows of up to 8 bits, most-significant bit leftmost, with its own
// proportional width so text doesn't have to be monospaced.
type BitmaskFont struct {
	LineHeight uint32
	glyphs     [fontGlyphCount][fontGlyphRows]uint8
	widths     [fontGlyphCount]uint32
}

// NewBitmaskFont builds a font with every glyph blank and width 0, except
// space (code 32), which defaults to half of lineHeight.
func NewBitmaskFont(lineHeight uint32) (*BitmaskFont, error) {
	if lineHeight == 0 {
		return nil, newError(ErrInvalidFontParameters, "line height must be non-zero")
	}
	f := &BitmaskFont{LineHeight: lineHeight}
	f.widths[' '] = lineHeight / 2
	return f, nil
}

// LoadFontFromBytes parses the on-disk bitmask font format: 256 glyphs of
// 8 bitmask rows each, followed by 256 glyph width bytes, followed by a
// single line-height byte (which must be in [1, 8]).
func LoadFontFromBytes(data []byte) (*BitmaskFont, error) {
	want := fontGlyphCount*fontGlyphRows + fontGlyphCount + 1
	if len(data) < want {
		return nil, newError(ErrInvalidFileFormat, "font data too short")
	}

	f := &BitmaskFont{}
	offset := 0
	for i := 0; i < fontGlyphCount; i++ {
		copy(f.glyphs[i][:], data[offset:offset+fontGlyphRows])
		offset += fontGlyphRows
	}
	for i := 0; i < fontGlyphCount; i++ {
		f.widths[i] = uint32(data[offset])
		offset++
	}

	lineHeight := data[offset]
	if lineHeight == 0 || lineHeight > fontGlyphRows {
		return nil, newError(ErrInvalidFontParameters, "line height must be between 1 and 8")
	}
	f.LineHeight = uint32(lineHeight)

	return f, nil
}

// ToBytes serializes the font to the on-disk bitmask font format described
// by LoadFontFromBytes.
func (f *BitmaskFont) ToBytes() []byte {
	out := make([]byte, 0, fontGlyphCount*fontGlyphRows+fontGlyphCount+1)
	for i := 0; i < fontGlyphCount; i++ {
		out = append(out, f.glyphs[i][:]...)
	}
	for i := 0; i < fontGlyphCount; i++ {
		out = append(out, uint8(f.widths[i]))
	}
	out = append(out, uint8(f.LineHeight))
	return out
}

// SetGlyph installs the bitmask rows and advance width for character code.
func (f *BitmaskFont) SetGlyph(code byte, rows [fontGlyphRows]uint8, width uint32) {
	f.glyphs[code] = rows
	f.widths[code] = width
}

// GlyphWidth returns the advance width of character code.
func (f *BitmaskFont) GlyphWidth(code byte) uint32 { return f.widths[code] }

// MeasureText returns the pixel width and height text would occupy if
// drawn with PrintString, honoring '\n' line breaks. Trailing whitespace
// on each line does not widen that line's measured width.
func (f *BitmaskFont) MeasureText(text string) (width, height uint32) {
	lines := strings.Split(text, "\n")
	height = uint32(len(lines)) * f.LineHeight
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		var w uint32
		for i := 0; i < len(trimmed); i++ {
			w += f.widths[trimmed[i]]
		}
		if w > width {
			width = w
		}
	}
	return width, height
}

// printChar draws a single glyph at (x, y) using color for set bits, and
// returns the glyph's advance width.
func (dest *Bitmap[P]) printChar(f *BitmaskFont, x, y int32, code byte, color P) uint32 {
	rows := f.glyphs[code]
	for row := 0; row < fontGlyphRows; row++ {
		bits := rows[row]
		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) != 0 {
				dest.SetPixel(x+int32(col), y+int32(row), color)
			}
		}
	}
	return f.widths[code]
}

// PrintChar draws a single glyph at (x, y) using color for set bits.
func (dest *Bitmap[P]) PrintChar(f *BitmaskFont, x, y int32, code byte, color P) {
	dest.printChar(f, x, y, code, color)
}

// PrintString draws text starting at (x, y), advancing by each glyph's
// width. '\n' starts a new line (x reset, y advanced by f.LineHeight);
// '\r' only resets x to the start of the current line.
func (dest *Bitmap[P]) PrintString(f *BitmaskFont, x, y int32, text string, color P) {
	cursorX, cursorY := x, y
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\n':
			cursorX = x
			cursorY += int32(f.LineHeight)
		case '\r':
			cursorX = x
		default:
			cursorX += int32(dest.printChar(f, cursorX, cursorY, c, color))
		}
	}
}
