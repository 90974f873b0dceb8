package ggdt

import (
	"encoding/binary"
)

const (
	pcxHeaderSize    = 128
	pcxManufacturer  = 10
	pcxVersion       = 5
	pcxEncodingRLE   = 1
	pcxBitsPerPixel  = 8
	pcxPaletteMarker = 0x0C
	pcxPaletteSize   = 768
)

type pcxHeader struct {
	manufacturer  uint8
	version       uint8
	encoding      uint8
	bitsPerPixel  uint8
	xMin, yMin    int16
	xMax, yMax    int16
	hdpi, vdpi    uint16
	colormap16    [48]byte
	reserved      uint8
	numPlanes     uint8
	bytesPerLine  uint16
	paletteInfo   uint16
	hScreenSize   uint16
	vScreenSize   uint16
}

func parsePCXHeader(data []byte) (pcxHeader, error) {
	var h pcxHeader
	if len(data) < pcxHeaderSize {
		return h, newError(ErrInvalidFileFormat, "pcx header truncated")
	}
	h.manufacturer = data[0]
	h.version = data[1]
	h.encoding = data[2]
	h.bitsPerPixel = data[3]
	h.xMin = int16(binary.LittleEndian.Uint16(data[4:6]))
	h.yMin = int16(binary.LittleEndian.Uint16(data[6:8]))
	h.xMax = int16(binary.LittleEndian.Uint16(data[8:10]))
	h.yMax = int16(binary.LittleEndian.Uint16(data[10:12]))
	h.hdpi = binary.LittleEndian.Uint16(data[12:14])
	h.vdpi = binary.LittleEndian.Uint16(data[14:16])
	copy(h.colormap16[:], data[16:64])
	h.reserved = data[64]
	h.numPlanes = data[65]
	h.bytesPerLine = binary.LittleEndian.Uint16(data[66:68])
	h.paletteInfo = binary.LittleEndian.Uint16(data[68:70])
	h.hScreenSize = binary.LittleEndian.Uint16(data[70:72])
	h.vScreenSize = binary.LittleEndian.Uint16(data[72:74])

	if h.manufacturer != pcxManufacturer {
		return h, newError(ErrInvalidFileFormat, "not a pcx file")
	}
	if h.version != pcxVersion {
		return h, newError(ErrUnsupportedFeature, "unsupported pcx version")
	}
	if h.encoding != pcxEncodingRLE {
		return h, newError(ErrUnsupportedFeature, "unsupported pcx encoding")
	}
	if h.bitsPerPixel != pcxBitsPerPixel || h.numPlanes != 1 {
		return h, newError(ErrUnsupportedFeature, "only 8bpp single-plane pcx is supported")
	}
	return h, nil
}

// LoadPCXBytes decodes an 8-bit single-plane PCX image, returning the
// indexed bitmap and its 256-color palette read from the trailing
// palette block.
func LoadPCXBytes(data []byte) (*IndexedBitmap, *Palette, error) {
	h, err := parsePCXHeader(data)
	if err != nil {
		return nil, nil, err
	}

	width := uint32(h.xMax-h.xMin) + 1
	height := uint32(h.yMax-h.yMin) + 1
	bitmap, err := NewBitmap[uint8](width, height)
	if err != nil {
		return nil, nil, err
	}

	if len(data) < pcxHeaderSize+769 {
		return nil, nil, newError(ErrInvalidFileFormat, "pcx file too short for trailing palette")
	}
	paletteStart := len(data) - 769
	if data[paletteStart] != pcxPaletteMarker {
		return nil, nil, newError(ErrInvalidFileFormat, "missing pcx palette marker")
	}
	palette := NewPalette()
	if err := palette.LoadFromBytesNormal(data[paletteStart+1:]); err != nil {
		return nil, nil, err
	}

	scanlineBytes := int(h.bytesPerLine)
	pos := pcxHeaderSize
	pixels := bitmap.Pixels()
	end := paletteStart

	for y := uint32(0); y < height; y++ {
		scanline := make([]byte, 0, scanlineBytes)
		for len(scanline) < scanlineBytes {
			if pos >= end {
				return nil, nil, newError(ErrInvalidFileFormat, "pcx data truncated")
			}
			b := data[pos]
			pos++
			if b&0xC0 == 0xC0 {
				count := int(b & 0x3F)
				if pos >= end {
					return nil, nil, newError(ErrInvalidFileFormat, "pcx run truncated")
				}
				value := data[pos]
				pos++
				for i := 0; i < count; i++ {
					scanline = append(scanline, value)
				}
			} else {
				scanline = append(scanline, b)
			}
		}
		copy(pixels[y*width:y*width+width], scanline[:width])
	}

	return bitmap, palette, nil
}

// SavePCXBytes encodes an indexed bitmap plus palette as an 8-bit
// single-plane RLE PCX file.
func SavePCXBytes(bitmap *IndexedBitmap, palette *Palette) ([]byte, error) {
	width := bitmap.Width()
	height := bitmap.Height()
	if width == 0 || height == 0 {
		return nil, newError(ErrInvalidDimensions, "bitmap has zero width or height")
	}

	header := make([]byte, pcxHeaderSize)
	header[0] = pcxManufacturer
	header[1] = pcxVersion
	header[2] = pcxEncodingRLE
	header[3] = pcxBitsPerPixel
	binary.LittleEndian.PutUint16(header[4:6], 0)
	binary.LittleEndian.PutUint16(header[6:8], 0)
	binary.LittleEndian.PutUint16(header[8:10], uint16(width-1))
	binary.LittleEndian.PutUint16(header[10:12], uint16(height-1))
	binary.LittleEndian.PutUint16(header[12:14], 300)
	binary.LittleEndian.PutUint16(header[14:16], 300)
	header[65] = 1
	bytesPerLine := width
	if bytesPerLine%2 == 1 {
		bytesPerLine++
	}
	binary.LittleEndian.PutUint16(header[66:68], uint16(bytesPerLine))
	binary.LittleEndian.PutUint16(header[68:70], 1)

	out := append([]byte(nil), header...)
	pixels := bitmap.Pixels()
	for y := uint32(0); y < height; y++ {
		row := pixels[y*width : y*width+width]
		padded := row
		if uint32(bytesPerLine) != width {
			padded = append(append([]byte(nil), row...), 0)
		}
		out = append(out, encodePCXScanline(padded)...)
	}

	out = append(out, pcxPaletteMarker)
	out = append(out, palette.ToBytesNormal()...)
	return out, nil
}

func encodePCXScanline(row []byte) []byte {
	var out []byte
	i := 0
	for i < len(row) {
		runLen := 1
		for i+runLen < len(row) && row[i+runLen] == row[i] && runLen < 63 {
			runLen++
		}
		if runLen > 1 || row[i]&0xC0 == 0xC0 {
			out = append(out, byte(0xC0|runLen), row[i])
		} else {
			out = append(out, row[i])
		}
		i += runLen
	}
	return out
}
