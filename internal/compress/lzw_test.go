package compress

import "testing"

// Fixture data below is ported byte-for-byte from the original LZW/GIF
// test vectors: each entry's packed stream is the min-code-size byte
// followed by the sub-blocked LZW code stream, and unpacked is the
// decompressed byte sequence it represents.
var lzwTestData = []struct {
	minCodeSize int
	packed      []byte
	unpacked    []byte
}{
	{
		minCodeSize: 2,
		packed: []byte{0x02, 0x16, 0x8c, 0x2d, 0x99, 0x87, 0x2a, 0x1c, 0xdc, 0x33, 0xa0, 0x02, 0x75, 0xec, 0x95, 0xfa, 0xa8, 0xde, 0x60, 0x8c, 0x04, 0x91, 0x4c, 0x01, 0x00},
		unpacked: []byte{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 0, 0, 0, 0, 2, 2, 2, 1, 1, 1, 0, 0, 0, 0, 2, 2, 2, 2, 2, 2, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1},
	},
	{
		minCodeSize: 4,
		packed: []byte{0x04, 0x21, 0x70, 0x49, 0x79, 0x6a, 0x9d, 0xcb, 0x39, 0x7b, 0xa6, 0xd6, 0x96, 0xa4, 0x3d, 0x0f, 0xd8, 0x8d, 0x64, 0xb9, 0x1d, 0x28, 0xa9, 0x2d, 0x15, 0xfa, 0xc2, 0xf1, 0x37, 0x71, 0x33, 0xc5, 0x61, 0x4b, 0x04, 0x00},
		unpacked: []byte{11, 11, 11, 11, 11, 7, 7, 7, 7, 7, 11, 11, 11, 11, 14, 14, 7, 7, 7, 7, 11, 11, 11, 14, 14, 14, 14, 7, 7, 7, 11, 11, 14, 14, 15, 15, 14, 14, 7, 7, 11, 14, 14, 15, 15, 15, 15, 14, 14, 7, 7, 14, 14, 15, 15, 15, 15, 14, 14, 11, 7, 7, 14, 14, 15, 15, 14, 14, 11, 11, 7, 7, 7, 14, 14, 14, 14, 11, 11, 11, 7, 7, 7, 7, 14, 14, 11, 11, 11, 11, 7, 7, 7, 7, 7, 11, 11, 11, 11, 11},
	},
	{
		minCodeSize: 8,
		packed:      []byte{0x08, 0x0b, 0x00, 0x51, 0xfc, 0x1b, 0x28, 0x70, 0xa0, 0xc1, 0x83, 0x01, 0x01, 0x00},
		unpacked:    []byte{0x28, 0xff, 0xff, 0xff, 0x28, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	},
}

func TestLzwDecode(t *testing.T) {
	for _, tc := range lzwTestData {
		got := LzwDecode(tc.packed[1:], tc.minCodeSize)
		if !bytesEqual(got, tc.unpacked) {
			t.Errorf("minCodeSize=%d: got %v, want %v", tc.minCodeSize, got, tc.unpacked)
		}
	}
}

func TestLzwEncodeRoundTrip(t *testing.T) {
	for _, tc := range lzwTestData {
		encoded := LzwEncode(tc.unpacked, tc.minCodeSize)
		decoded := LzwDecode(encoded, tc.minCodeSize)
		if !bytesEqual(decoded, tc.unpacked) {
			t.Errorf("minCodeSize=%d: round trip mismatch, got %v, want %v", tc.minCodeSize, decoded, tc.unpacked)
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
