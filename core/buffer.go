package core

import (
	"fmt"
	"strings"
)

// Position is a location in the document: 0-based row and rune column.
type Position struct {
	Row int
	Col int
}

// Buffer owns the document as an ordered sequence of text lines. Every
// mutation goes through it, which gives the undo history a single choke
// point. Lines are stored as rune slices so column arithmetic stays
// correct for non-ASCII prose.
//
// Invariant: a buffer always holds at least one line; the empty document
// is exactly one zero-length line.
type Buffer struct {
	lines     [][]rune
	savedText string
}

// NewBuffer creates an empty buffer: one empty line, marked clean.
func NewBuffer() *Buffer {
	b := &Buffer{lines: [][]rune{{}}}
	b.savedText = ""
	return b
}

// NewBufferFromText creates a buffer holding text, marked clean.
func NewBufferFromText(text string) *Buffer {
	b := NewBuffer()
	b.SetText(text)
	b.MarkSaved()
	return b
}

// NewBufferFromLines creates a buffer from an already-split line
// sequence, marked clean. An empty slice yields the empty document.
func NewBufferFromLines(lines []string) *Buffer {
	return NewBufferFromText(strings.Join(lines, "\n"))
}

// SetText replaces the entire document. The saved snapshot is left
// untouched, so replacing content on a dirty buffer keeps it dirty.
func (b *Buffer) SetText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	b.lines = lines
}

// Text returns the whole document joined with newlines.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns the document as a string per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// LineCount returns the number of lines; always >= 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of a line, or "" when row is out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineRunes returns the backing runes of a line; callers must not hold
// the slice across mutations.
func (b *Buffer) LineRunes(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

// LineLen returns the rune length of a line, 0 when out of bounds.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// IsEmpty reports whether the buffer is the empty document.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Dirty reports whether the document differs from its last saved state.
func (b *Buffer) Dirty() bool { return b.Text() != b.savedText }

// MarkSaved records the current content as the saved state.
func (b *Buffer) MarkSaved() { b.savedText = b.Text() }

func (b *Buffer) checkPos(row, col int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%w: row %d out of [0,%d)", ErrInvalidPosition, row, len(b.lines))
	}
	if col < 0 || col > len(b.lines[row]) {
		return fmt.Errorf("%w: col %d out of [0,%d]", ErrInvalidPosition, col, len(b.lines[row]))
	}
	return nil
}

// InsertRune inserts a single rune at (row, col). col == line length
// appends at end of line.
func (b *Buffer) InsertRune(row, col int, r rune) error {
	if err := b.checkPos(row, col); err != nil {
		return err
	}
	line := b.lines[row]
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)
	b.lines[row] = next
	return nil
}

// InsertText inserts text, which may contain newlines, at (row, col) and
// returns the position just past the inserted content.
func (b *Buffer) InsertText(row, col int, text string) (Position, error) {
	if err := b.checkPos(row, col); err != nil {
		return Position{}, err
	}
	if text == "" {
		return Position{Row: row, Col: col}, nil
	}

	parts := strings.Split(text, "\n")
	line := b.lines[row]
	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	if len(parts) == 1 {
		ins := []rune(parts[0])
		b.lines[row] = append(append(head, ins...), tail...)
		return Position{Row: row, Col: col + len(ins)}, nil
	}

	inserted := make([][]rune, len(parts))
	inserted[0] = append(head, []rune(parts[0])...)
	for i := 1; i < len(parts); i++ {
		inserted[i] = []rune(parts[i])
	}
	endCol := len(inserted[len(parts)-1])
	inserted[len(parts)-1] = append(inserted[len(parts)-1], tail...)

	rest := make([][]rune, len(b.lines)-(row+1))
	copy(rest, b.lines[row+1:])

	next := append(b.lines[:row:row], inserted...)
	b.lines = append(next, rest...)

	return Position{Row: row + len(parts) - 1, Col: endCol}, nil
}

// DeleteRune removes the rune at (row, col); a no-op when the cursor
// sits past the last rune of the line.
func (b *Buffer) DeleteRune(row, col int) error {
	if err := b.checkPos(row, col); err != nil {
		return err
	}
	line := b.lines[row]
	if col >= len(line) {
		return nil
	}
	b.lines[row] = append(line[:col:col], line[col+1:]...)
	return nil
}

// DeleteRuneBefore implements backspace semantics: it removes the rune
// left of (row, col) and returns the resulting cursor position. At
// col 0 it merges the line into the previous one; at the start of the
// document it is a no-op.
func (b *Buffer) DeleteRuneBefore(row, col int) (Position, error) {
	if err := b.checkPos(row, col); err != nil {
		return Position{}, err
	}
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1:col-1], line[col:]...)
		return Position{Row: row, Col: col - 1}, nil
	}
	if row == 0 {
		return Position{Row: 0, Col: 0}, nil
	}
	joinCol := len(b.lines[row-1])
	if err := b.JoinLines(row - 1); err != nil {
		return Position{}, err
	}
	return Position{Row: row - 1, Col: joinCol}, nil
}

// SplitLine breaks the line at (row, col) in two: the cursor's line
// keeps [0,col) and a new line below receives the remainder.
func (b *Buffer) SplitLine(row, col int) error {
	if err := b.checkPos(row, col); err != nil {
		return err
	}
	line := b.lines[row]
	left := append([]rune{}, line[:col]...)
	right := append([]rune{}, line[col:]...)

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row] = left
	b.lines[row+1] = right
	return nil
}

// JoinLines appends line row+1 onto line row, removing the former.
func (b *Buffer) JoinLines(row int) error {
	if row < 0 || row+1 >= len(b.lines) {
		return fmt.Errorf("%w: cannot join line %d", ErrInvalidPosition, row)
	}
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return nil
}

// DeleteLine removes the line at row and reports whether the document
// changed. The single-line cases are special:
//   - one empty line: nothing happens (the empty document stays [""])
//   - one non-empty line: the content is cleared, the line remains
//
// The buffer is guaranteed to hold at least one line afterwards.
func (b *Buffer) DeleteLine(row int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	if len(b.lines) == 1 {
		if len(b.lines[0]) == 0 {
			return false
		}
		b.lines[0] = []rune{}
		return true
	}
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return true
}

// ReplaceLine swaps the full text of a line.
func (b *Buffer) ReplaceLine(row int, text string) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("%w: row %d out of [0,%d)", ErrInvalidPosition, row, len(b.lines))
	}
	b.lines[row] = []rune(text)
	return nil
}
