// Package inject rewrites the region between a literal marker pair inside a
// host document. Injection is idempotent: re-running with the same payload
// never changes the document again, which is what makes repeated CI runs
// safe without any locking.
package inject

import (
	"strings"

	"github.com/pkg/errors"
)

// Default marker pair and protection token used by the gift-list pages.
const (
	MarkerStart = "<!-- QR-PLACEHOLDER-START -->"
	MarkerEnd   = "<!-- QR-PLACEHOLDER-END -->"

	// ManualToken marks the span as hand-edited. When preserveManual is
	// requested and the token is present, the injector refuses to overwrite.
	ManualToken = "<!-- qr:manual -->"
)

// Result classifies the outcome of an injection attempt.
type Result int

const (
	// Replaced means the span was rewritten and the document changed.
	Replaced Result = iota
	// SkippedProtected means the span carried ManualToken and preserveManual
	// was set; nothing was written. A no-op, not a failure.
	SkippedProtected
	// SkippedUnchanged means the span already equals the payload byte for
	// byte; nothing needed writing.
	SkippedUnchanged
)

func (r Result) String() string {
	switch r {
	case Replaced:
		return "replaced"
	case SkippedProtected:
		return "skipped-protected"
	case SkippedUnchanged:
		return "skipped-unchanged"
	}
	return "unknown"
}

// Changed reports whether the outcome altered the document.
func (r Result) Changed() bool { return r == Replaced }

var (
	// ErrMarkersNotFound means the start or end marker is absent.
	ErrMarkersNotFound = errors.New("inject: markers not found")
	// ErrMarkersOrder means the end marker appears before the start marker.
	ErrMarkersOrder = errors.New("inject: end marker precedes start marker")
)

// Inject replaces the span between startMarker and endMarker in document
// with payload, re-indented to match the marker line. The indentation unit
// is one tab when the marker line's leading whitespace contains a tab,
// otherwise four spaces; blank payload lines stay empty. On any error the
// original document is returned unchanged.
func Inject(document, startMarker, endMarker, payload string, preserveManual bool) (string, Result, error) {
	startIdx := strings.Index(document, startMarker)
	if startIdx < 0 {
		return document, SkippedUnchanged, errors.Wrap(ErrMarkersNotFound, "start")
	}
	firstEnd := strings.Index(document, endMarker)
	if firstEnd < 0 {
		return document, SkippedUnchanged, errors.Wrap(ErrMarkersNotFound, "end")
	}
	if firstEnd < startIdx {
		return document, SkippedUnchanged, ErrMarkersOrder
	}
	spanFrom := startIdx + len(startMarker)
	endRel := strings.Index(document[spanFrom:], endMarker)
	if endRel < 0 {
		return document, SkippedUnchanged, errors.Wrap(ErrMarkersNotFound, "end")
	}
	endIdx := spanFrom + endRel

	span := document[spanFrom:endIdx]
	if preserveManual && strings.Contains(span, ManualToken) {
		return document, SkippedProtected, nil
	}

	leading := markerLineIndent(document, startIdx)
	unit := "    "
	if strings.Contains(leading, "\t") {
		unit = "\t"
	}
	indent := leading + unit

	lines := strings.Split(payload, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
		} else {
			lines[i] = indent + line
		}
	}
	// the end marker keeps the start marker's leading whitespace so the
	// pair stays aligned
	replacement := "\n" + strings.Join(lines, "\n") + "\n" + leading

	if span == replacement {
		return document, SkippedUnchanged, nil
	}
	return document[:spanFrom] + replacement + document[endIdx:], Replaced, nil
}

// markerLineIndent returns the leading whitespace of the line the marker
// starts on.
func markerLineIndent(document string, markerIdx int) string {
	lineStart := strings.LastIndexByte(document[:markerIdx], '\n') + 1
	line := document[lineStart:markerIdx]
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return line[:i]
		}
	}
	return line
}
