package qr

import "fmt"

// EncodingError reports input that cannot be encoded: empty content, or
// content exceeding the capacity of the largest symbol at the requested
// error correction level. Encoding errors are deterministic input problems;
// callers must not retry them.
type EncodingError struct {
	Reason string
	Length int
	Level  ECLevel
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bytes at level %s: %s", e.Length, e.Level, e.Reason)
}
