package svlex

import (
	"sort"
	"strconv"
)

// FileHandle is an opaque identifier for a source buffer, handed out by the
// (out of scope) file tracker collaborator. The lexer never resolves it to a
// path; it only stores and echoes it back as part of a Location.
type FileHandle uint32

// Location describes a position in a source buffer.
type Location struct {
	File   FileHandle
	Offset int
	Line   int // 1-based
	Column int // 1-based
}

func (l Location) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// LineTable translates byte offsets into (line, column) pairs. It is built
// once, at lexer construction, from the positions of '\n' bytes in the
// buffer -- this is the construction-time line-offset table called for in
// the lexer's design notes, replacing the (0, 0) placeholder coordinates
// that a bare diagnostic-code-only sink would otherwise report.
type LineTable struct {
	// lineStarts[i] is the offset of the first byte of line i+2 (line 1
	// always starts at offset 0 and is implicit).
	lineStarts []int
}

// NewLineTable scans buf for line endings and returns a table that can
// resolve any offset within buf (up to and including len(buf)).
func NewLineTable(buf []byte) *LineTable {
	lt := &LineTable{}
	for i, b := range buf {
		if b == '\n' {
			lt.lineStarts = append(lt.lineStarts, i+1)
		}
	}
	return lt
}

// Position resolves offset to a 1-based (line, column) pair.
func (lt *LineTable) Position(offset int) (line, column int) {
	// lineStarts[i] is the start of line i+2; find the last start <= offset.
	n := sort.Search(len(lt.lineStarts), func(i int) bool {
		return lt.lineStarts[i] > offset
	})
	line = n + 1
	lineStart := 0
	if n > 0 {
		lineStart = lt.lineStarts[n-1]
	}
	return line, offset - lineStart + 1
}
