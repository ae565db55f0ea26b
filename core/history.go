package core

// snapshot is an opaque copy of {document, cursor} taken before a
// mutation. The history owns all snapshots exclusively.
type snapshot struct {
	text   string
	cursor Cursor
}

// History is a two-stack undo/redo log: past holds states older than the
// current one, future holds states undone from it. Every mutating
// command pushes before applying; a push invalidates the redo path.
type History struct {
	past   []snapshot
	future []snapshot
	limit  int
}

// DefaultHistoryLimit bounds the number of retained snapshots.
const DefaultHistoryLimit = 100

// NewHistory creates a history keeping at most limit snapshots per
// stack; limit <= 0 falls back to DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// CanUndo reports whether an undo target exists.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo target exists.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Push snapshots the current state onto the past stack and clears the
// future stack. Oldest entries are trimmed beyond the limit.
func (h *History) Push(b *Buffer, c Cursor) {
	h.PushSnapshot(b.Text(), c)
}

// PushSnapshot records an already-captured state. Callers that need to
// verify a mutation actually changed the document capture the state
// first and push it only afterwards.
func (h *History) PushSnapshot(text string, c Cursor) {
	h.past = append(h.past, snapshot{text: text, cursor: c})
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.future = nil
}

// Undo restores the most recent past snapshot, pushing the current
// state onto the future stack. It reports false, leaving everything
// untouched, when there is nothing to undo.
func (h *History) Undo(b *Buffer, c Cursor) (Cursor, bool) {
	if len(h.past) == 0 {
		return c, false
	}
	i := len(h.past) - 1
	prev := h.past[i]
	h.past = h.past[:i]

	h.future = append(h.future, snapshot{text: b.Text(), cursor: c})

	b.SetText(prev.text)
	cur := prev.cursor
	cur.ClampToBuffer(b)
	return cur, true
}

// Redo restores the most recent future snapshot, pushing the current
// state back onto the past stack. It reports false when there is
// nothing to redo.
func (h *History) Redo(b *Buffer, c Cursor) (Cursor, bool) {
	if len(h.future) == 0 {
		return c, false
	}
	i := len(h.future) - 1
	next := h.future[i]
	h.future = h.future[:i]

	h.past = append(h.past, snapshot{text: b.Text(), cursor: c})
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}

	b.SetText(next.text)
	cur := next.cursor
	cur.ClampToBuffer(b)
	return cur, true
}
