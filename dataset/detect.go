package dataset

import (
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// Header markers. "Undirected" does not contain "Directed" (case matters),
// so the two never shadow each other.
const (
	commentMarker    = "#"
	directedMarker   = "Directed"
	undirectedMarker = "Undirected"
)

// IsComment reports whether a header line is a comment. Load applies it only
// before the first data line.
func IsComment(line string) bool {
	return strings.Contains(line, commentMarker)
}

// ClassifyLine inspects a single header line. ok is false when the line carries
// no directionality marker (or is not a comment at all).
func ClassifyLine(line string) (kind core.Kind, ok bool) {
	if !IsComment(line) {
		return core.Labeled, false
	}
	switch {
	case strings.Contains(line, directedMarker):
		return core.Directed, true
	case strings.Contains(line, undirectedMarker):
		return core.Undirected, true
	default:
		return core.Labeled, false
	}
}

// DetectKind classifies a header block. The first marker wins; a header
// without markers (or no header at all) means Labeled.
func DetectKind(header []string) core.Kind {
	for _, line := range header {
		if kind, ok := ClassifyLine(line); ok {
			return kind
		}
	}
	return core.Labeled
}
