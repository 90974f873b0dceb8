package ggdt

import (
	"encoding/binary"

	"github.com/gered/ggdt-sub001/internal/compress"
)

const (
	iffFormID = "FORM"
	iffPBMID  = "PBM "
	iffILBMID = "ILBM"
	iffBMHDID = "BMHD"
	iffCMAPID = "CMAP"
	iffBODYID = "BODY"
)

type iffBitmapHeader struct {
	width, height uint16
	x, y          int16
	numPlanes     uint8
	masking       uint8
	compression   uint8
	transparent   uint16
	xAspect       uint8
	yAspect       uint8
	pageWidth     int16
	pageHeight    int16
}

func be16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// LoadIFFBytes decodes an IFF/LBM (PBM chunky or ILBM planar) image,
// returning the indexed bitmap and its palette.
func LoadIFFBytes(data []byte) (*IndexedBitmap, *Palette, error) {
	if len(data) < 12 || string(data[0:4]) != iffFormID {
		return nil, nil, newError(ErrInvalidFileFormat, "not an iff file")
	}
	formType := string(data[8:12])
	if formType != iffPBMID && formType != iffILBMID {
		return nil, nil, newError(ErrUnsupportedFeature, "unsupported iff form type")
	}

	var header *iffBitmapHeader
	palette := NewPalette()
	var body []byte

	pos := 12
	for pos+8 <= len(data) {
		chunkID := string(data[pos : pos+4])
		chunkSize := binary.BigEndian.Uint32(data[pos+4 : pos+8])
		chunkStart := pos + 8
		chunkEnd := chunkStart + int(chunkSize)
		if chunkEnd > len(data) {
			chunkEnd = len(data)
		}
		chunkData := data[chunkStart:chunkEnd]

		switch chunkID {
		case iffBMHDID:
			if len(chunkData) < 20 {
				return nil, nil, newError(ErrInvalidFileFormat, "bmhd chunk truncated")
			}
			header = &iffBitmapHeader{
				width:       be16(chunkData[0:2]),
				height:      be16(chunkData[2:4]),
				x:           int16(be16(chunkData[4:6])),
				y:           int16(be16(chunkData[6:8])),
				numPlanes:   chunkData[8],
				masking:     chunkData[9],
				compression: chunkData[10],
				transparent: be16(chunkData[12:14]),
				xAspect:     chunkData[14],
				yAspect:     chunkData[15],
				pageWidth:   int16(be16(chunkData[16:18])),
				pageHeight:  int16(be16(chunkData[18:20])),
			}
		case iffCMAPID:
			numColors := len(chunkData) / 3
			for i := 0; i < numColors && i < PaletteSize; i++ {
				palette.SetColor(uint8(i), NewRGB(chunkData[i*3], chunkData[i*3+1], chunkData[i*3+2]))
			}
		case iffBODYID:
			body = chunkData
		}

		pos = chunkEnd
		if chunkSize%2 == 1 {
			pos++ // chunks are word-aligned
		}
	}

	if header == nil {
		return nil, nil, newError(ErrInvalidFileFormat, "missing bmhd chunk")
	}
	if body == nil {
		return nil, nil, newError(ErrInvalidFileFormat, "missing body chunk")
	}

	bitmap, err := NewBitmap[uint8](uint32(header.width), uint32(header.height))
	if err != nil {
		return nil, nil, err
	}

	var decompressed []byte
	if header.compression == 1 {
		decompressed = compress.PackBitsDecode(body)
	} else {
		decompressed = body
	}

	if formType == iffPBMID {
		rowBytes := int(header.width)
		if rowBytes%2 == 1 {
			rowBytes++
		}
		pixels := bitmap.Pixels()
		for y := 0; y < int(header.height); y++ {
			start := y * rowBytes
			if start+int(header.width) > len(decompressed) {
				break
			}
			copy(pixels[y*int(header.width):(y+1)*int(header.width)], decompressed[start:start+int(header.width)])
		}
	} else {
		if err := unpackPlanarBody(bitmap, decompressed, int(header.numPlanes)); err != nil {
			return nil, nil, err
		}
	}

	return bitmap, palette, nil
}

// unpackPlanarBody expands ILBM bitplane-interleaved scanlines into
// bitmap's chunky pixel buffer.
func unpackPlanarBody(bitmap *IndexedBitmap, data []byte, numPlanes int) error {
	width := int(bitmap.Width())
	height := int(bitmap.Height())
	planeBytes := (width + 15) / 16 * 2
	rowSize := planeBytes * numPlanes

	pixels := bitmap.Pixels()
	for y := 0; y < height; y++ {
		rowStart := y * rowSize
		if rowStart+rowSize > len(data) {
			return newError(ErrInvalidFileFormat, "iff body truncated")
		}
		row := data[rowStart : rowStart+rowSize]
		for x := 0; x < width; x++ {
			pixels[y*width+x] = extractBitplanePixel(row, x, numPlanes, planeBytes)
		}
	}
	return nil
}

func extractBitplanePixel(row []byte, x, numPlanes, planeBytes int) uint8 {
	byteIdx := x / 8
	bitIdx := 7 - uint(x%8)
	var value uint8
	for plane := 0; plane < numPlanes; plane++ {
		planeStart := plane * planeBytes
		bit := (row[planeStart+byteIdx] >> bitIdx) & 1
		value |= bit << uint(plane)
	}
	return value
}

// mergeBitplanePixel spreads one bit of a chunky pixel value into its
// corresponding position across numPlanes separate bitplane rows.
func mergeBitplanePixel(planes [][]byte, x int, value uint8, numPlanes int) {
	byteIdx := x / 8
	bitIdx := 7 - uint(x%8)
	for plane := 0; plane < numPlanes; plane++ {
		bit := (value >> uint(plane)) & 1
		if bit != 0 {
			planes[plane][byteIdx] |= 1 << bitIdx
		}
	}
}

// SaveIFFBytes encodes an indexed bitmap plus palette as an uncompressed
// planar ILBM file.
func SaveIFFBytes(bitmap *IndexedBitmap, palette *Palette) ([]byte, error) {
	width := bitmap.Width()
	height := bitmap.Height()
	if width == 0 || height == 0 {
		return nil, newError(ErrInvalidDimensions, "bitmap has zero width or height")
	}

	numPlanes := 8
	planeBytes := (int(width) + 15) / 16 * 2
	rowSize := planeBytes * numPlanes
	body := make([]byte, rowSize*int(height))

	pixels := bitmap.Pixels()
	for y := 0; y < int(height); y++ {
		planes := make([][]byte, numPlanes)
		rowStart := y * rowSize
		for p := 0; p < numPlanes; p++ {
			planes[p] = body[rowStart+p*planeBytes : rowStart+(p+1)*planeBytes]
		}
		for x := 0; x < int(width); x++ {
			mergeBitplanePixel(planes, x, pixels[y*int(width)+x], numPlanes)
		}
	}

	bmhd := make([]byte, 20)
	binary.BigEndian.PutUint16(bmhd[0:2], uint16(width))
	binary.BigEndian.PutUint16(bmhd[2:4], uint16(height))
	bmhd[8] = uint8(numPlanes)
	binary.BigEndian.PutUint16(bmhd[16:18], uint16(width))
	binary.BigEndian.PutUint16(bmhd[18:20], uint16(height))

	cmap := palette.ToBytesNormal()

	var out []byte
	out = append(out, []byte(iffFormID)...)
	sizePlaceholder := len(out)
	out = append(out, 0, 0, 0, 0)
	out = append(out, []byte(iffILBMID)...)
	out = appendIFFChunk(out, iffBMHDID, bmhd)
	out = appendIFFChunk(out, iffCMAPID, cmap)
	out = appendIFFChunk(out, iffBODYID, body)

	binary.BigEndian.PutUint32(out[sizePlaceholder:sizePlaceholder+4], uint32(len(out)-sizePlaceholder-4))
	return out, nil
}

// LoadIFFBytesRGBA decodes an IFF/LBM image and expands it directly to an
// RGBA bitmap using its own embedded palette.
func LoadIFFBytesRGBA(data []byte) (*RgbaBitmap, error) {
	indexed, palette, err := LoadIFFBytes(data)
	if err != nil {
		return nil, err
	}
	return palette.ToRGBA(indexed)
}

func appendIFFChunk(out []byte, id string, data []byte) []byte {
	out = append(out, []byte(id)...)
	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(data)))
	out = append(out, size...)
	out = append(out, data...)
	if len(data)%2 == 1 {
		out = append(out, 0)
	}
	return out
}
