package qr

// A minimal decoder used only by tests: it reads the format information back
// out of a finished matrix, unmasks the data region, walks the zigzag in
// placement order, de-interleaves the blocks and parses the first segment.
// It assumes an undamaged matrix and ignores the error correction codewords.

import (
	"strings"

	"github.com/pkg/errors"
)

func readFormat(m *Matrix) (ECLevel, int, error) {
	at := func(x, y int) uint32 {
		if m.Dark(x, y) {
			return 1
		}
		return 0
	}
	var bits uint32
	for i := 0; i <= 5; i++ {
		bits |= at(8, i) << i
	}
	bits |= at(8, 7) << 6
	bits |= at(8, 8) << 7
	bits |= at(7, 8) << 8
	for i := 9; i < 15; i++ {
		bits |= at(14-i, 8) << i
	}

	data := (bits ^ 0x5412) >> 10
	mask := int(data & 0b111)
	switch data >> 3 {
	case 0b01:
		return Low, mask, nil
	case 0b00:
		return Medium, mask, nil
	case 0b11:
		return Quartile, mask, nil
	case 0b10:
		return High, mask, nil
	}
	return 0, 0, errors.New("unreadable format information")
}

// readDataBits replays the placement zigzag and undoes the mask.
func readDataBits(m *Matrix, mask int) []bool {
	var bits []bool
	upward := true
	for right := m.side - 1; right >= 1; right -= 2 {
		if right == 6 {
			right--
		}
		for step := 0; step < m.side; step++ {
			y := m.side - 1 - step
			if !upward {
				y = step
			}
			for _, x := range [2]int{right, right - 1} {
				if m.Role(x, y) != RoleData {
					continue
				}
				bits = append(bits, m.Dark(x, y) != maskPredicate(mask, x, y))
			}
		}
		upward = !upward
	}
	return bits
}

// deinterleave restores the data codewords to block order and drops the
// error correction codewords.
func deinterleave(codewords []byte, version int, level ECLevel) []byte {
	bs := blocksOf(version, level)

	sizes := make([]int, 0, bs.totalBlocks())
	for i := 0; i < bs.g1Count; i++ {
		sizes = append(sizes, bs.g1Data)
	}
	for i := 0; i < bs.g2Count; i++ {
		sizes = append(sizes, bs.g2Data)
	}
	maxData := bs.g1Data
	if bs.g2Data > maxData {
		maxData = bs.g2Data
	}

	blocks := make([][]byte, len(sizes))
	idx := 0
	for i := 0; i < maxData; i++ {
		for b, size := range sizes {
			if i < size {
				blocks[b] = append(blocks[b], codewords[idx])
				idx++
			}
		}
	}

	out := make([]byte, 0, bs.totalDataCodewords())
	for _, b := range blocks {
		out = append(out, b...)
	}
	return out
}

type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) read(n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v <<= 1
		if r.data[r.pos/8]&(1<<(7-r.pos%8)) != 0 {
			v |= 1
		}
		r.pos++
	}
	return v
}

func parseSegment(data []byte, version int) (string, error) {
	r := &bitReader{data: data}
	var mode encMode
	switch r.read(4) {
	case 0b0001:
		mode = modeNumeric
	case 0b0010:
		mode = modeAlphanumeric
	case 0b0100:
		mode = modeByte
	default:
		return "", errors.New("unsupported mode indicator")
	}
	count := int(r.read(charCountBits(mode, version)))

	var sb strings.Builder
	switch mode {
	case modeNumeric:
		for count >= 3 {
			v := r.read(10)
			sb.WriteByte(byte('0' + v/100))
			sb.WriteByte(byte('0' + v/10%10))
			sb.WriteByte(byte('0' + v%10))
			count -= 3
		}
		if count == 2 {
			v := r.read(7)
			sb.WriteByte(byte('0' + v/10))
			sb.WriteByte(byte('0' + v%10))
		} else if count == 1 {
			sb.WriteByte(byte('0' + r.read(4)))
		}
	case modeAlphanumeric:
		for count >= 2 {
			v := r.read(11)
			sb.WriteByte(alphanumericCharset[v/45])
			sb.WriteByte(alphanumericCharset[v%45])
			count -= 2
		}
		if count == 1 {
			sb.WriteByte(alphanumericCharset[r.read(6)])
		}
	default:
		for i := 0; i < count; i++ {
			sb.WriteByte(byte(r.read(8)))
		}
	}
	return sb.String(), nil
}

// decodeMatrix recovers the encoded text from an undamaged module grid.
func decodeMatrix(m *Matrix, version int) (string, ECLevel, error) {
	level, mask, err := readFormat(m)
	if err != nil {
		return "", 0, err
	}
	bits := readDataBits(m, mask)
	codewords := make([]byte, len(bits)/8)
	for i, b := range bits[:len(codewords)*8] {
		if b {
			codewords[i/8] |= 1 << (7 - i%8)
		}
	}
	text, err := parseSegment(deinterleave(codewords, version, level), version)
	return text, level, err
}
