// Package qr encodes text into QR Model 2 symbols: mode analysis, minimal
// version selection, Reed-Solomon error correction, and masked matrix
// construction. Encoding is deterministic; the same input and level always
// produce the same module grid.
package qr

// Symbol is one encoded QR code: an immutable square module grid plus the
// parameters it was built with. Produced by Encode, consumed by renderers.
type Symbol struct {
	mat     *Matrix
	version int
	level   ECLevel
	mode    encMode
}

// Side returns the module side length of the symbol.
func (s *Symbol) Side() int { return s.mat.Side() }

// Version returns the symbol version (1..40).
func (s *Symbol) Version() int { return s.version }

// Level returns the error correction level the symbol was encoded at.
func (s *Symbol) Level() ECLevel { return s.level }

// Matrix exposes the module grid for rendering and inspection.
func (s *Symbol) Matrix() *Matrix { return s.mat }

// Encode builds the smallest symbol that fits text at the requested error
// correction level. It returns an *EncodingError when text is empty or
// exceeds the capacity of a version 40 symbol at that level.
func Encode(text string, level ECLevel) (*Symbol, error) {
	if len(text) == 0 {
		return nil, &EncodingError{Reason: "empty content", Level: level}
	}
	if level < Low || level > High {
		return nil, &EncodingError{Reason: "invalid error correction level", Length: len(text), Level: level}
	}

	mode := analyzeMode(text)
	version := chooseVersion(mode, len(text), level)
	if version == 0 {
		return nil, &EncodingError{Reason: "content exceeds version 40 capacity", Length: len(text), Level: level}
	}

	stream, err := buildBitStream(text, mode, version, level)
	if err != nil {
		return nil, err
	}
	data := bytesOf(stream, 0, dataBitCapacity(version, level)/8)
	codewords, err := errorCorrect(data, version, level)
	if err != nil {
		return nil, err
	}

	return &Symbol{
		mat:     buildMatrix(codewords, version, level),
		version: version,
		level:   level,
		mode:    mode,
	}, nil
}
