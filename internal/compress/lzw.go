package compress

const (
	lzwMinBits       = 2
	lzwMaxBits       = 12
	lzwMaxCodeValue  = 1 << lzwMaxBits
	lzwMaxSubBlock   = 255
)

// LzwBytePacker accumulates variable-width codes into bytes and frames
// them into GIF-style sub-blocks: each written out as a length byte (1 to
// 255) followed by that many data bytes, terminated by a zero-length
// block once Finish is called.
type LzwBytePacker struct {
	bitBuf   uint32
	bitCount int
	current  []byte
	out      []byte
}

// PackCode appends a code of the given bit width.
func (p *LzwBytePacker) PackCode(code uint32, width int) {
	p.bitBuf |= code << uint(p.bitCount)
	p.bitCount += width
	for p.bitCount >= 8 {
		p.current = append(p.current, byte(p.bitBuf&0xFF))
		p.bitBuf >>= 8
		p.bitCount -= 8
		if len(p.current) == lzwMaxSubBlock {
			p.flushBlock()
		}
	}
}

func (p *LzwBytePacker) flushBlock() {
	if len(p.current) == 0 {
		return
	}
	p.out = append(p.out, byte(len(p.current)))
	p.out = append(p.out, p.current...)
	p.current = p.current[:0]
}

// Finish flushes any partial byte and block, then writes the terminating
// zero-length block, returning the complete framed byte stream.
func (p *LzwBytePacker) Finish() []byte {
	if p.bitCount > 0 {
		p.current = append(p.current, byte(p.bitBuf&0xFF))
		p.bitBuf = 0
		p.bitCount = 0
	}
	p.flushBlock()
	p.out = append(p.out, 0x00)
	return p.out
}

// LzwByteUnpacker is the inverse of LzwBytePacker: it consumes a framed,
// sub-blocked byte stream and yields fixed-width codes on demand.
type LzwByteUnpacker struct {
	data     []byte
	pos      int
	blockLen int
	bitBuf   uint32
	bitCount int
	done     bool
}

// NewLzwByteUnpacker wraps data (the sub-blocked stream, not including any
// preceding min-code-size byte) for reading.
func NewLzwByteUnpacker(data []byte) *LzwByteUnpacker {
	return &LzwByteUnpacker{data: data}
}

func (u *LzwByteUnpacker) nextByte() (byte, bool) {
	for u.blockLen == 0 {
		if u.pos >= len(u.data) {
			return 0, false
		}
		u.blockLen = int(u.data[u.pos])
		u.pos++
		if u.blockLen == 0 {
			return 0, false
		}
	}
	if u.pos >= len(u.data) {
		return 0, false
	}
	b := u.data[u.pos]
	u.pos++
	u.blockLen--
	return b, true
}

// UnpackCode reads the next code of the given bit width, returning false
// once the stream is exhausted.
func (u *LzwByteUnpacker) UnpackCode(width int) (uint32, bool) {
	for u.bitCount < width {
		b, ok := u.nextByte()
		if !ok {
			if u.bitCount == 0 {
				return 0, false
			}
			// Pad remaining bits with zero so a final short code still decodes.
			u.bitCount = width
			break
		}
		u.bitBuf |= uint32(b) << uint(u.bitCount)
		u.bitCount += 8
	}
	mask := uint32(1)<<uint(width) - 1
	code := u.bitBuf & mask
	u.bitBuf >>= uint(width)
	u.bitCount -= width
	return code, true
}

func codeWidthFor(minCodeSize int) int {
	if minCodeSize < lzwMinBits {
		return lzwMinBits + 1
	}
	return minCodeSize + 1
}

// LzwEncode compresses data using the GIF-variant LZW scheme keyed on
// minCodeSize (the bit depth of the source alphabet, typically the
// palette's index bit depth), returning the fully framed sub-block
// stream.
func LzwEncode(data []byte, minCodeSize int) []byte {
	if minCodeSize < lzwMinBits {
		minCodeSize = lzwMinBits
	}
	clearCode := uint32(1) << uint(minCodeSize)
	eoiCode := clearCode + 1
	firstFree := eoiCode + 1

	packer := &LzwBytePacker{}
	width := codeWidthFor(minCodeSize)

	resetTable := func() map[string]uint32 {
		return make(map[string]uint32)
	}
	table := resetTable()
	nextCode := firstFree

	packer.PackCode(clearCode, width)

	var current []byte
	for _, b := range data {
		candidate := append(append([]byte(nil), current...), b)
		if _, ok := table[string(candidate)]; ok || len(current) == 0 {
			current = candidate
			continue
		}

		var code uint32
		if len(current) == 1 {
			code = uint32(current[0])
		} else {
			code = table[string(current)]
		}
		packer.PackCode(code, width)

		table[string(candidate)] = nextCode
		nextCode++

		maxForWidth := uint32(1) << uint(width)
		if nextCode > maxForWidth && width < lzwMaxBits {
			width++
		}
		if nextCode == lzwMaxCodeValue {
			packer.PackCode(clearCode, width)
			table = resetTable()
			nextCode = firstFree
			width = codeWidthFor(minCodeSize)
		}

		current = []byte{b}
	}

	if len(current) > 0 {
		var code uint32
		if len(current) == 1 {
			code = uint32(current[0])
		} else {
			code = table[string(current)]
		}
		packer.PackCode(code, width)
	}

	packer.PackCode(eoiCode, width)
	return packer.Finish()
}

// LzwDecode expands a GIF-variant LZW stream (as produced by LzwEncode,
// or read from a GIF file) keyed on the same minCodeSize.
func LzwDecode(data []byte, minCodeSize int) []byte {
	if minCodeSize < lzwMinBits {
		minCodeSize = lzwMinBits
	}
	clearCode := uint32(1) << uint(minCodeSize)
	eoiCode := clearCode + 1
	firstFree := eoiCode + 1

	u := NewLzwByteUnpacker(data)
	width := codeWidthFor(minCodeSize)

	resetTable := func() []([]byte) {
		table := make([][]byte, lzwMaxCodeValue)
		for i := uint32(0); i < clearCode; i++ {
			table[i] = []byte{byte(i)}
		}
		return table
	}
	table := resetTable()
	nextCode := firstFree

	var out []byte
	var prev []byte

	for {
		code, ok := u.UnpackCode(width)
		if !ok {
			break
		}
		if code == clearCode {
			table = resetTable()
			nextCode = firstFree
			width = codeWidthFor(minCodeSize)
			prev = nil
			continue
		}
		if code == eoiCode {
			break
		}

		var entry []byte
		switch {
		case int(code) < len(table) && table[code] != nil:
			entry = table[code]
		case code == nextCode && prev != nil:
			entry = append(append([]byte(nil), prev...), prev[0])
		default:
			break
		}
		if entry == nil {
			break
		}

		out = append(out, entry...)

		if prev != nil && nextCode < lzwMaxCodeValue {
			table[nextCode] = append(append([]byte(nil), prev...), entry[0])
			nextCode++
			maxForWidth := uint32(1) << uint(width)
			if nextCode > maxForWidth-1 && width < lzwMaxBits {
				width++
			}
		}

		prev = entry
	}

	return out
}
