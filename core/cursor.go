package core

import "unicode"

// Cursor tracks the editing position. Preferred remembers the column a
// vertical motion is aiming for, so moving through a short line does not
// permanently lose the column.
//
// Invariant, preserved by every motion: Col <= length of the current
// line. Columns clamp, they never wrap; stepping left at column 0 or
// right at end of line stays put.
type Cursor struct {
	Row       int
	Col       int
	Preferred int
}

// Pos returns the cursor as a Position.
func (c Cursor) Pos() Position { return Position{Row: c.Row, Col: c.Col} }

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// clampCol pins the column into [0, line length].
func (c *Cursor) clampCol(b *Buffer) {
	lineLen := b.LineLen(c.Row)
	if c.Col > lineLen {
		c.Col = lineLen
	}
	if c.Col < 0 {
		c.Col = 0
	}
}

// ClampToBuffer pins the whole cursor into document bounds. Called after
// any mutation that may have shrunk the document under the cursor.
func (c *Cursor) ClampToBuffer(b *Buffer) {
	if c.Row >= b.LineCount() {
		c.Row = b.LineCount() - 1
	}
	if c.Row < 0 {
		c.Row = 0
	}
	c.clampCol(b)
}

// MoveLeft steps one column left; at column 0 it stays (no line wrap).
func (c *Cursor) MoveLeft(b *Buffer) {
	if c.Col > 0 {
		c.Col--
	}
	c.Preferred = c.Col
}

// MoveRight steps one column right, up to one past the last rune.
func (c *Cursor) MoveRight(b *Buffer) {
	if c.Col < b.LineLen(c.Row) {
		c.Col++
	}
	c.Preferred = c.Col
}

// MoveUp steps one row up, landing on the preferred column clamped to
// the new line's length.
func (c *Cursor) MoveUp(b *Buffer) {
	if c.Row > 0 {
		c.Row--
		c.Col = c.Preferred
		c.clampCol(b)
	}
}

// MoveDown steps one row down, landing on the preferred column clamped
// to the new line's length.
func (c *Cursor) MoveDown(b *Buffer) {
	if c.Row < b.LineCount()-1 {
		c.Row++
		c.Col = c.Preferred
		c.clampCol(b)
	}
}

// MoveToLineStart places the cursor at column 0.
func (c *Cursor) MoveToLineStart() {
	c.Col = 0
	c.Preferred = 0
}

// MoveToLineEnd places the cursor one past the last rune of the line.
func (c *Cursor) MoveToLineEnd(b *Buffer) {
	c.Col = b.LineLen(c.Row)
	c.Preferred = c.Col
}

// MoveToFirstNonBlank places the cursor on the first non-whitespace rune
// of the line, or column 0 when the line is blank.
func (c *Cursor) MoveToFirstNonBlank(b *Buffer) {
	col := 0
	for i, r := range b.LineRunes(c.Row) {
		if !unicode.IsSpace(r) {
			col = i
			break
		}
	}
	c.Col = col
	c.Preferred = col
}

// MoveToDocumentStart places the cursor at (0, 0).
func (c *Cursor) MoveToDocumentStart() {
	c.Row = 0
	c.Col = 0
	c.Preferred = 0
}

// MoveToDocumentEnd places the cursor at the end of the last line.
func (c *Cursor) MoveToDocumentEnd(b *Buffer) {
	c.Row = b.LineCount() - 1
	c.MoveToLineEnd(b)
}

// MovePageUp moves the cursor up by one screen height.
func (c *Cursor) MovePageUp(b *Buffer, height int) {
	if height < 1 {
		height = 1
	}
	c.Row -= height
	if c.Row < 0 {
		c.Row = 0
	}
	c.Col = c.Preferred
	c.clampCol(b)
}

// MovePageDown moves the cursor down by one screen height.
func (c *Cursor) MovePageDown(b *Buffer, height int) {
	if height < 1 {
		height = 1
	}
	c.Row += height
	if c.Row > b.LineCount()-1 {
		c.Row = b.LineCount() - 1
	}
	c.Col = c.Preferred
	c.clampCol(b)
}

// MoveWordForward scans forward past any non-word runes and lands just
// past the end of the adjacent word run. A word is a maximal run of
// letters, digits, or underscores. When no further word exists on the
// line the scan continues onto the next line.
func (c *Cursor) MoveWordForward(b *Buffer) {
	row, col := c.Row, c.Col
	for {
		line := b.LineRunes(row)
		// Skip non-word runes on this line.
		for col < len(line) && !isWordRune(line[col]) {
			col++
		}
		if col >= len(line) {
			if row >= b.LineCount()-1 {
				// No word left anywhere; stop at end of document.
				c.Row = row
				c.Col = len(line)
				c.Preferred = c.Col
				return
			}
			row++
			col = 0
			continue
		}
		// On a word run: land just past its end.
		for col < len(line) && isWordRune(line[col]) {
			col++
		}
		c.Row = row
		c.Col = col
		c.Preferred = col
		return
	}
}

// MoveWordBackward scans backward past any non-word runes and lands at
// the start of the adjacent word run, crossing line boundaries when the
// current line is exhausted.
func (c *Cursor) MoveWordBackward(b *Buffer) {
	row, col := c.Row, c.Col
	for {
		line := b.LineRunes(row)
		// Skip non-word runes left of the cursor.
		for col > 0 && !isWordRune(line[col-1]) {
			col--
		}
		if col == 0 {
			if row == 0 {
				c.Row = 0
				c.Col = 0
				c.Preferred = 0
				return
			}
			row--
			col = b.LineLen(row)
			continue
		}
		// Just right of a word run: walk to its start.
		for col > 0 && isWordRune(line[col-1]) {
			col--
		}
		c.Row = row
		c.Col = col
		c.Preferred = col
		return
	}
}
