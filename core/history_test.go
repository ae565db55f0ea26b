package core

import "testing"

func TestUndoRestoresSnapshot(t *testing.T) {
	b := NewBufferFromText("one")
	h := NewHistory(0)
	c := Cursor{Row: 0, Col: 3, Preferred: 3}

	h.Push(b, c)
	b.SetText("one two")
	c.Col = 7

	cur, ok := h.Undo(b, c)
	if !ok {
		t.Fatal("Undo() = false, want true")
	}
	if got := b.Text(); got != "one" {
		t.Errorf("Text() = %q, want %q", got, "one")
	}
	if cur.Col != 3 {
		t.Errorf("cursor Col = %d, want 3", cur.Col)
	}
}

func TestRedoReappliesUndoneChange(t *testing.T) {
	b := NewBufferFromText("one")
	h := NewHistory(0)
	c := Cursor{Col: 3, Preferred: 3}

	h.Push(b, c)
	b.SetText("one two")
	c.Col = 7

	c, _ = h.Undo(b, c)
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	cur, ok := h.Redo(b, c)
	if !ok {
		t.Fatal("Redo() = false, want true")
	}
	if got := b.Text(); got != "one two" {
		t.Errorf("Text() = %q, want %q", got, "one two")
	}
	if cur.Col != 7 {
		t.Errorf("cursor Col = %d, want 7", cur.Col)
	}
}

func TestUndoRedoOnEmptyStacks(t *testing.T) {
	b := NewBufferFromText("text")
	h := NewHistory(0)
	c := Cursor{}

	if _, ok := h.Undo(b, c); ok {
		t.Error("Undo on empty history = true, want false")
	}
	if _, ok := h.Redo(b, c); ok {
		t.Error("Redo on empty history = true, want false")
	}
	if got := b.Text(); got != "text" {
		t.Errorf("Text() = %q after failed undo/redo, want %q", got, "text")
	}
}

func TestPushClearsRedoStack(t *testing.T) {
	b := NewBufferFromText("a")
	h := NewHistory(0)
	c := Cursor{}

	h.Push(b, c)
	b.SetText("ab")
	c, _ = h.Undo(b, c)

	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	// A fresh edit forks history; the undone branch is gone.
	h.Push(b, c)
	b.SetText("ac")

	if h.CanRedo() {
		t.Error("CanRedo() = true after new push, want false")
	}
	if _, ok := h.Redo(b, c); ok {
		t.Error("Redo succeeded after new push")
	}
	if got := b.Text(); got != "ac" {
		t.Errorf("Text() = %q, want %q", got, "ac")
	}
}

func TestHistoryLimitDropsOldest(t *testing.T) {
	b := NewBuffer()
	h := NewHistory(3)
	c := Cursor{}

	for _, text := range []string{"1", "2", "3", "4", "5"} {
		h.Push(b, c)
		b.SetText(text)
	}

	// Only the three most recent snapshots survive.
	var texts []string
	for {
		cur, ok := h.Undo(b, c)
		if !ok {
			break
		}
		c = cur
		texts = append(texts, b.Text())
	}

	want := []string{"4", "3", "2"}
	if len(texts) != len(want) {
		t.Fatalf("undo chain = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("undo %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestUndoClampsRestoredCursor(t *testing.T) {
	b := NewBufferFromText("long line here")
	h := NewHistory(0)

	// Snapshot taken with the cursor deep into a line that the restored
	// state will not have.
	h.PushSnapshot("ab", Cursor{Row: 0, Col: 10, Preferred: 10})

	cur, ok := h.Undo(b, Cursor{Col: 14, Preferred: 14})
	if !ok {
		t.Fatal("Undo() = false, want true")
	}
	if cur.Col != 2 {
		t.Errorf("restored cursor Col = %d, want 2", cur.Col)
	}
}
