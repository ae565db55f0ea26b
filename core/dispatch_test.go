package core

import "testing"

func kRune(r rune) KeyEvent    { return KeyEvent{Rune: r} }
func kCode(k KeyCode) KeyEvent { return KeyEvent{Key: k} }
func kCtrl(r rune) KeyEvent    { return KeyEvent{Rune: r, Modifiers: ModCtrl} }

func TestNavigationDispatch(t *testing.T) {
	d := NewDispatcher()

	tests := []struct {
		name string
		key  KeyEvent
		want Action
	}{
		{"h moves left", kRune('h'), motion(MotionLeft)},
		{"l moves right", kRune('l'), motion(MotionRight)},
		{"k moves up", kRune('k'), motion(MotionUp)},
		{"j moves down", kRune('j'), motion(MotionDown)},
		{"s moves down", kRune('s'), motion(MotionDown)},
		{"shifted wasd left", kRune('A'), motion(MotionLeft)},
		{"shifted wasd up", kRune('W'), motion(MotionUp)},
		{"shifted wasd down", kRune('S'), motion(MotionDown)},
		{"shifted wasd right", kRune('D'), motion(MotionRight)},
		{"arrow left", kCode(KeyLeft), motion(MotionLeft)},
		{"arrow down", kCode(KeyDown), motion(MotionDown)},
		{"w word forward", kRune('w'), motion(MotionWordForward)},
		{"b word backward", kRune('b'), motion(MotionWordBackward)},
		{"zero line start", kRune('0'), motion(MotionLineStart)},
		{"dollar line end", kRune('$'), motion(MotionLineEnd)},
		{"home", kCode(KeyHome), motion(MotionLineStart)},
		{"end", kCode(KeyEnd), motion(MotionLineEnd)},
		{"g document start", kRune('g'), motion(MotionDocumentStart)},
		{"G document end", kRune('G'), motion(MotionDocumentEnd)},
		{"page up", kCode(KeyPageUp), motion(MotionPageUp)},
		{"page down", kCode(KeyPageDown), motion(MotionPageDown)},
		{"i enters insert", kRune('i'), modeChange(ModeInsert)},
		{"a appends", kRune('a'), Action{Kind: ActionModeChange, Mode: ModeInsert, Motion: MotionRight}},
		{"o opens line below", kRune('o'), mutation(MutationOpenLineBelow)},
		{"x deletes rune", kRune('x'), mutation(MutationDeleteRune)},
		{"delete key deletes rune", kCode(KeyDelete), mutation(MutationDeleteRune)},
		{"p pastes", kRune('p'), mutation(MutationPaste)},
		{"u undoes", kRune('u'), control(ControlUndo)},
		{"U redoes", kRune('U'), control(ControlRedo)},
		{"ctrl+z undoes", kCtrl('z'), control(ControlUndo)},
		{"ctrl+y redoes", kCtrl('y'), control(ControlRedo)},
		{"ctrl+s saves", kCtrl('s'), control(ControlSave)},
		{"ctrl+q quits", kCtrl('q'), control(ControlQuit)},
		{"ctrl+t toggles typewriter", kCtrl('t'), control(ControlToggleTypewriter)},
		{"unmapped rune", kRune('z'), noOp()},
		{"escape is a no-op", kCode(KeyEscape), noOp()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Dispatch(ModeNavigation, tt.key); got != tt.want {
				t.Errorf("Dispatch(Navigation, %v) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestInsertDispatch(t *testing.T) {
	d := NewDispatcher()

	tests := []struct {
		name string
		key  KeyEvent
		want Action
	}{
		{"printable rune inserts", kRune('x'), insertRune('x')},
		{"navigation letters insert too", kRune('h'), insertRune('h')},
		{"d inserts, never chords", kRune('d'), insertRune('d')},
		{"unicode inserts", kRune('é'), insertRune('é')},
		{"escape leaves insert", kCode(KeyEscape), modeChange(ModeNavigation)},
		{"enter splits line", kCode(KeyEnter), mutation(MutationInsertNewline)},
		{"backspace", kCode(KeyBackspace), mutation(MutationBackspace)},
		{"tab", kCode(KeyTab), mutation(MutationInsertTab)},
		{"delete", kCode(KeyDelete), mutation(MutationDeleteRune)},
		{"arrow up", kCode(KeyUp), motion(MotionUp)},
		{"home", kCode(KeyHome), motion(MotionLineStart)},
		{"ctrl+s saves", kCtrl('s'), control(ControlSave)},
		{"ctrl+z undoes", kCtrl('z'), control(ControlUndo)},
		{"ctrl+v pastes", kCtrl('v'), mutation(MutationPaste)},
		{"ctrl+t is a no-op in insert", kCtrl('t'), noOp()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Dispatch(ModeInsert, tt.key); got != tt.want {
				t.Errorf("Dispatch(Insert, %v) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestChordDetection(t *testing.T) {
	d := NewDispatcher()

	got := d.Dispatch(ModeNavigation, kRune('d'))
	if got.Kind != ActionChordPending {
		t.Fatalf("Dispatch(Navigation, d) kind = %v, want ChordPending", got.Kind)
	}

	if d.IsChordStart(ModeInsert, kRune('d')) {
		t.Error("d opens a chord in insert mode")
	}
	if d.IsChordStart(ModeNavigation, kCtrl('d')) {
		t.Error("ctrl+d opens a chord")
	}
}

func TestResolveChord(t *testing.T) {
	d := NewDispatcher()
	first := kRune('d')

	action, ok := d.ResolveChord(first, kRune('d'))
	if !ok {
		t.Fatal("ResolveChord(d, d) = false, want true")
	}
	if action != mutation(MutationDeleteLine) {
		t.Errorf("chord action = %+v, want delete line", action)
	}

	if _, ok := d.ResolveChord(first, kRune('x')); ok {
		t.Error("ResolveChord(d, x) = true, want false")
	}
	if _, ok := d.ResolveChord(first, kCode(KeyLeft)); ok {
		t.Error("ResolveChord(d, Left) = true, want false")
	}
}

func TestChordOpenerDefaultAction(t *testing.T) {
	d := NewDispatcher()

	// A lone d is still a plain motion once the chord window closes.
	got := d.DefaultAction(ModeNavigation, kRune('d'))
	if got != motion(MotionRight) {
		t.Errorf("DefaultAction(Navigation, d) = %+v, want move right", got)
	}
}
