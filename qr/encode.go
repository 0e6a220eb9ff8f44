package qr

import (
	"strings"

	"github.com/yeqown/reedsolomon"
	"github.com/yeqown/reedsolomon/binary"
)

// encMode is the data encoding mode of a segment. The encoder always picks
// the most compact mode the input class allows: pure digits use numeric,
// the restricted uppercase set uses alphanumeric, everything else (notably
// URLs with lowercase letters) uses byte mode.
type encMode uint8

const (
	modeNumeric encMode = iota
	modeAlphanumeric
	modeByte
)

func (m encMode) indicator() uint32 {
	switch m {
	case modeNumeric:
		return 0b0001
	case modeAlphanumeric:
		return 0b0010
	default:
		return 0b0100
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func analyzeMode(text string) encMode {
	numeric := true
	alnum := true
	for _, r := range text {
		if r < '0' || r > '9' {
			numeric = false
		}
		if r > 127 || !strings.ContainsRune(alphanumericCharset, r) {
			alnum = false
		}
	}
	switch {
	case numeric:
		return modeNumeric
	case alnum:
		return modeAlphanumeric
	default:
		return modeByte
	}
}

// payloadBits is the bit count of the encoded payload, excluding the mode
// indicator and character count field.
func payloadBits(m encMode, n int) int {
	switch m {
	case modeNumeric:
		return 10*(n/3) + [3]int{0, 4, 7}[n%3]
	case modeAlphanumeric:
		return 11*(n/2) + 6*(n%2)
	default:
		return 8 * n
	}
}

// chooseVersion returns the smallest version whose data capacity at the
// given level fits the segment, or 0 when even version 40 cannot.
func chooseVersion(m encMode, byteLen int, level ECLevel) int {
	for v := minVersion; v <= maxVersion; v++ {
		need := 4 + charCountBits(m, v) + payloadBits(m, byteLen)
		if need <= dataBitCapacity(v, level) {
			return v
		}
	}
	return 0
}

// buildBitStream assembles mode indicator, character count, payload,
// terminator and pad codewords into a full data codeword sequence.
func buildBitStream(text string, m encMode, version int, level ECLevel) (*binary.Binary, error) {
	buf := binary.New()
	buf.AppendUint32(m.indicator(), 4)
	count := len(text)
	buf.AppendUint32(uint32(count), charCountBits(m, version))

	switch m {
	case modeNumeric:
		for i := 0; i < count; i += 3 {
			end := i + 3
			if end > count {
				end = count
			}
			group := text[i:end]
			v := uint32(0)
			for _, c := range group {
				v = v*10 + uint32(c-'0')
			}
			buf.AppendUint32(v, [4]int{0, 4, 7, 10}[len(group)])
		}
	case modeAlphanumeric:
		for i := 0; i < count; i += 2 {
			if i+1 < count {
				v := uint32(strings.IndexByte(alphanumericCharset, text[i]))*45 +
					uint32(strings.IndexByte(alphanumericCharset, text[i+1]))
				buf.AppendUint32(v, 11)
			} else {
				v := uint32(strings.IndexByte(alphanumericCharset, text[i]))
				buf.AppendUint32(v, 6)
			}
		}
	default:
		buf.AppendBytes([]byte(text)...)
	}

	capacity := dataBitCapacity(version, level)

	// terminator: up to four zero bits, as many as still fit
	term := capacity - buf.Len()
	if term > 4 {
		term = 4
	}
	if term > 0 {
		buf.AppendUint32(0, term)
	}
	// align to a codeword boundary
	if pad := (8 - buf.Len()%8) % 8; pad > 0 {
		buf.AppendUint32(0, pad)
	}
	// alternating pad codewords fill the remaining capacity
	pads := [2]byte{0xEC, 0x11}
	for i := 0; buf.Len() < capacity; i++ {
		buf.AppendBytes(pads[i%2])
	}
	return buf, nil
}

// bytesOf reads whole codewords back out of a bit buffer.
func bytesOf(buf *binary.Binary, fromBit, n int) []byte {
	out := make([]byte, n)
	for i := 0; i < n*8; i++ {
		if buf.At(fromBit + i) {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

// errorCorrect splits the data codewords into the version's block structure,
// generates Reed-Solomon error correction codewords per block, and
// interleaves data then EC codewords into the final transmission order.
func errorCorrect(data []byte, version int, level ECLevel) ([]byte, error) {
	bs := blocksOf(version, level)

	type block struct {
		data []byte
		ec   []byte
	}
	blocks := make([]block, 0, bs.totalBlocks())

	offset := 0
	appendBlocks := func(count, size int) error {
		for i := 0; i < count; i++ {
			d := data[offset : offset+size]
			offset += size

			bin := binary.New()
			bin.AppendBytes(d...)
			encoded := reedsolomon.Encode(bin, bs.numEC)
			blocks = append(blocks, block{
				data: d,
				ec:   bytesOf(encoded, len(d)*8, bs.numEC),
			})
		}
		return nil
	}
	if err := appendBlocks(bs.g1Count, bs.g1Data); err != nil {
		return nil, err
	}
	if err := appendBlocks(bs.g2Count, bs.g2Data); err != nil {
		return nil, err
	}

	maxData := bs.g1Data
	if bs.g2Data > maxData {
		maxData = bs.g2Data
	}

	out := make([]byte, 0, len(data)+bs.numEC*bs.totalBlocks())
	for i := 0; i < maxData; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				out = append(out, b.data[i])
			}
		}
	}
	for i := 0; i < bs.numEC; i++ {
		for _, b := range blocks {
			out = append(out, b.ec[i])
		}
	}
	return out, nil
}

// codewordBits expands the codeword sequence to module bits, appending the
// version's remainder filler.
func codewordBits(codewords []byte, version int) []bool {
	bits := make([]bool, 0, len(codewords)*8+remainderBits(version))
	for _, cw := range codewords {
		for i := 7; i >= 0; i-- {
			bits = append(bits, cw&(1<<i) != 0)
		}
	}
	for i := 0; i < remainderBits(version); i++ {
		bits = append(bits, false)
	}
	return bits
}

// buildMatrix constructs the module grid for the interleaved codewords and
// selects the mask with the lowest penalty score.
func buildMatrix(codewords []byte, version int, level ECLevel) *Matrix {
	base := newMatrix(sideOf(version))
	base.drawFinders()
	base.drawTiming()
	base.drawAlignments(version)
	base.reserveFormat()
	base.drawVersionInfo(version)
	base.placeData(codewordBits(codewords, version))

	var best *Matrix
	bestScore := -1
	for mask := 0; mask < 8; mask++ {
		cand := base.clone()
		cand.applyMask(mask)
		cand.writeFormat(level, mask)
		if score := penaltyScore(cand); best == nil || score < bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}
