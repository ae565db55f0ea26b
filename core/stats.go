package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// readingWordsPerMinute is the average prose reading speed used for the
// estimated reading time.
const readingWordsPerMinute = 225

// Stats summarizes a document for the status line.
type Stats struct {
	Lines       int
	Words       int
	Chars       int
	ReadingMins int
}

// DocumentStats counts lines, whitespace-separated words, and visible
// characters (grapheme clusters, so combining marks and emoji count
// once). Reading time rounds up, with a one-minute floor for any
// non-empty document.
func DocumentStats(b *Buffer) Stats {
	s := Stats{Lines: b.LineCount()}
	for _, line := range b.Lines() {
		s.Words += len(strings.Fields(line))
		s.Chars += uniseg.GraphemeClusterCount(line)
	}
	if s.Words > 0 {
		s.ReadingMins = (s.Words + readingWordsPerMinute - 1) / readingWordsPerMinute
	}
	return s
}
