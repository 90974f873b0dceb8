package ggdt

import (
	"encoding/binary"

	"github.com/gered/ggdt-sub001/internal/compress"
)

const (
	gifHeader87a = "GIF87a"
	gifHeader89a = "GIF89a"

	gifExtensionIntroducer = 0x21
	gifImageDescriptor     = 0x2C
	gifTrailer             = 0x3B
	gifGraphicControlLabel = 0xF9
	gifBlockTerminator     = 0x00

	gifNoTransparentIndex = -1
)

// LoadGifBytes decodes the first frame of a GIF file, returning the
// indexed bitmap, its color table as a palette, and the index treated as
// transparent (gifNoTransparentIndex if none was specified).
func LoadGifBytes(data []byte) (*IndexedBitmap, *Palette, int, error) {
	if len(data) < 13 || (string(data[0:6]) != gifHeader87a && string(data[0:6]) != gifHeader89a) {
		return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "not a gif file")
	}

	packed := data[10]
	hasGlobalTable := packed&0x80 != 0
	globalTableSize := 2 << uint(packed&0x07)

	pos := 13
	palette := NewPalette()
	if hasGlobalTable {
		if pos+globalTableSize*3 > len(data) {
			return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif global color table truncated")
		}
		for i := 0; i < globalTableSize; i++ {
			o := pos + i*3
			palette.SetColor(uint8(i), NewRGB(data[o], data[o+1], data[o+2]))
		}
		pos += globalTableSize * 3
	}

	transparentIndex := gifNoTransparentIndex

	for pos < len(data) {
		marker := data[pos]
		switch marker {
		case gifTrailer:
			return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif contains no image data")

		case gifExtensionIntroducer:
			pos++
			if pos >= len(data) {
				return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif extension truncated")
			}
			label := data[pos]
			pos++
			if label == gifGraphicControlLabel && pos+1 < len(data) {
				blockSize := int(data[pos])
				flags := data[pos+1]
				if flags&0x01 != 0 {
					transparentIndex = int(data[pos+4])
				}
				pos += 1 + blockSize
			}
			pos = skipGifSubBlocks(data, pos)

		case gifImageDescriptor:
			pos++
			if pos+9 > len(data) {
				return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif image descriptor truncated")
			}
			width := binary.LittleEndian.Uint16(data[pos+4 : pos+6])
			height := binary.LittleEndian.Uint16(data[pos+6 : pos+8])
			imgPacked := data[pos+8]
			pos += 9

			if imgPacked&0x80 != 0 {
				localTableSize := 2 << uint(imgPacked&0x07)
				if pos+localTableSize*3 > len(data) {
					return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif local color table truncated")
				}
				palette = NewPalette()
				for i := 0; i < localTableSize; i++ {
					o := pos + i*3
					palette.SetColor(uint8(i), NewRGB(data[o], data[o+1], data[o+2]))
				}
				pos += localTableSize * 3
			}

			if pos >= len(data) {
				return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif missing lzw min code size")
			}
			minCodeSize := int(data[pos])
			pos++

			blockStart := pos
			pos = skipGifSubBlocks(data, pos)

			pixels := compress.LzwDecode(data[blockStart:pos], minCodeSize)

			interlaced := imgPacked&0x40 != 0
			bitmap, err := NewBitmap[uint8](uint32(width), uint32(height))
			if err != nil {
				return nil, nil, gifNoTransparentIndex, err
			}
			if interlaced {
				deinterlaceGifPixels(bitmap, pixels)
			} else {
				copy(bitmap.Pixels(), pixels)
			}

			return bitmap, palette, transparentIndex, nil

		default:
			pos++
		}
	}

	return nil, nil, gifNoTransparentIndex, newError(ErrInvalidFileFormat, "gif stream ended without image data")
}

func skipGifSubBlocks(data []byte, pos int) int {
	for pos < len(data) {
		size := int(data[pos])
		pos++
		if size == gifBlockTerminator {
			break
		}
		pos += size
	}
	return pos
}

func reassembleGifSubBlocks(data []byte) []byte {
	var out []byte
	pos := 0
	for pos < len(data) {
		size := int(data[pos])
		pos++
		if size == gifBlockTerminator {
			break
		}
		end := pos + size
		if end > len(data) {
			end = len(data)
		}
		out = append(out, data[pos:end]...)
		pos = end
	}
	return out
}

// deinterlaceGifPixels reorders a linearly-decoded interlaced pixel
// stream (four passes over increasing row strides) into top-to-bottom
// scanline order.
func deinterlaceGifPixels(bitmap *IndexedBitmap, decoded []byte) {
	width := int(bitmap.Width())
	height := int(bitmap.Height())
	pixels := bitmap.Pixels()

	passes := []struct{ start, step int }{{0, 8}, {4, 8}, {2, 4}, {1, 2}}
	srcRow := 0
	for _, p := range passes {
		for row := p.start; row < height; row += p.step {
			srcStart := srcRow * width
			if srcStart+width > len(decoded) {
				return
			}
			copy(pixels[row*width:(row+1)*width], decoded[srcStart:srcStart+width])
			srcRow++
		}
	}
}

// SaveGifBytes encodes an indexed bitmap plus palette as a single-frame,
// non-interlaced GIF89a file. If transparentIndex is not
// gifNoTransparentIndex, a Graphic Control Extension marks that palette
// index as transparent.
func SaveGifBytes(bitmap *IndexedBitmap, palette *Palette, transparentIndex int) ([]byte, error) {
	width := bitmap.Width()
	height := bitmap.Height()
	if width == 0 || height == 0 {
		return nil, newError(ErrInvalidDimensions, "bitmap has zero width or height")
	}
	if width > 0xFFFF || height > 0xFFFF {
		return nil, newError(ErrInvalidDimensions, "bitmap too large for gif")
	}

	var out []byte
	out = append(out, []byte(gifHeader89a)...)

	screenDescriptor := make([]byte, 7)
	binary.LittleEndian.PutUint16(screenDescriptor[0:2], uint16(width))
	binary.LittleEndian.PutUint16(screenDescriptor[2:4], uint16(height))
	screenDescriptor[4] = 0xF7 // global color table present, 256 entries, 8-bit color resolution
	out = append(out, screenDescriptor...)

	for i := 0; i < PaletteSize; i++ {
		c := palette.Color(uint8(i))
		out = append(out, c.R(), c.G(), c.B())
	}

	if transparentIndex != gifNoTransparentIndex {
		out = append(out, gifExtensionIntroducer, gifGraphicControlLabel, 4)
		out = append(out, 0x01, 0, 0, byte(transparentIndex))
		out = append(out, gifBlockTerminator)
	}

	out = append(out, gifImageDescriptor)
	descriptor := make([]byte, 9)
	binary.LittleEndian.PutUint16(descriptor[0:2], 0)
	binary.LittleEndian.PutUint16(descriptor[2:4], 0)
	binary.LittleEndian.PutUint16(descriptor[4:6], uint16(width))
	binary.LittleEndian.PutUint16(descriptor[6:8], uint16(height))
	descriptor[8] = 0
	out = append(out, descriptor...)

	minCodeSize := 8
	out = append(out, byte(minCodeSize))
	compressed := compress.LzwEncode(bitmap.Pixels(), minCodeSize)
	out = append(out, compressed...)

	out = append(out, gifTrailer)
	return out, nil
}

// LoadGifBytesRGBA decodes a GIF and expands it directly to an RGBA
// bitmap, applying the transparent index (if any) as zero alpha.
func LoadGifBytesRGBA(data []byte) (*RgbaBitmap, error) {
	indexed, palette, transparentIndex, err := LoadGifBytes(data)
	if err != nil {
		return nil, err
	}
	if transparentIndex != gifNoTransparentIndex {
		c := palette.Color(uint8(transparentIndex))
		palette.SetColor(uint8(transparentIndex), c.WithAlpha(0))
	}
	return palette.ToRGBA(indexed)
}
