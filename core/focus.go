package core

// Viewport is the window of the document currently on screen: the first
// visible row and how many rows fit.
type Viewport struct {
	ScrollRow int
	Height    int
}

// FocusLine is one visible line annotated for rendering: InFocus lines
// are drawn normally, the rest are dimmed.
type FocusLine struct {
	Row     int
	Text    string
	InFocus bool
}

// DefaultFocusRadius is how many lines around the cursor stay undimmed.
const DefaultFocusRadius = 0

// ScrollViewport computes the scroll offset for the next frame.
//
// In typewriter mode the cursor line is pinned to the vertical middle
// of the screen, clamped so the first line never scrolls below the top.
// Otherwise scrolling is minimal: the offset moves only as far as
// needed to keep the cursor row visible.
func ScrollViewport(v Viewport, cursorRow int, typewriter bool) int {
	if v.Height <= 0 {
		return 0
	}
	if typewriter {
		offset := cursorRow - v.Height/2
		if offset < 0 {
			offset = 0
		}
		return offset
	}
	offset := v.ScrollRow
	if cursorRow < offset {
		offset = cursorRow
	}
	if cursorRow >= offset+v.Height {
		offset = cursorRow - v.Height + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// VisibleLines returns the slice of the document inside the viewport,
// each line tagged with whether it lies within radius rows of the
// cursor. With typewriter off every line is in focus. Rows past the
// end of the document are simply absent; the caller pads the frame.
func VisibleLines(b *Buffer, v Viewport, cursorRow int, typewriter bool, radius int) []FocusLine {
	if v.Height <= 0 {
		return nil
	}
	if radius < 0 {
		radius = 0
	}
	start := v.ScrollRow
	if start < 0 {
		start = 0
	}
	end := start + v.Height
	if end > b.LineCount() {
		end = b.LineCount()
	}
	if start >= end {
		return nil
	}

	out := make([]FocusLine, 0, end-start)
	for row := start; row < end; row++ {
		dist := row - cursorRow
		if dist < 0 {
			dist = -dist
		}
		out = append(out, FocusLine{
			Row:     row,
			Text:    b.Line(row),
			InFocus: !typewriter || dist <= radius,
		})
	}
	return out
}
