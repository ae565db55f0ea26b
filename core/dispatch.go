package core

// ActionKind classifies the outcome of dispatching one key event.
type ActionKind int

const (
	// ActionNoOp means the key maps to nothing in the current mode.
	ActionNoOp ActionKind = iota
	// ActionMotion moves the cursor; no snapshot is taken.
	ActionMotion
	// ActionMutation edits the buffer; a snapshot is taken first.
	ActionMutation
	// ActionModeChange switches between Navigation and Insert.
	ActionModeChange
	// ActionChordPending buffers the key as the start of a chord.
	ActionChordPending
	// ActionControl runs a session-level command (undo, save, quit...).
	ActionControl
)

// MotionKind enumerates cursor motions.
type MotionKind int

const (
	MotionNone MotionKind = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionLineStart
	MotionLineEnd
	MotionWordForward
	MotionWordBackward
	MotionPageUp
	MotionPageDown
	MotionDocumentStart
	MotionDocumentEnd
)

// MutationKind enumerates buffer edits.
type MutationKind int

const (
	MutationNone MutationKind = iota
	MutationInsertRune
	MutationInsertNewline
	MutationInsertTab
	MutationBackspace
	MutationDeleteRune
	MutationDeleteLine
	MutationOpenLineBelow
	MutationPaste
)

// ControlKind enumerates session-level commands that neither move the
// cursor nor count as snapshotted mutations.
type ControlKind int

const (
	ControlNone ControlKind = iota
	ControlUndo
	ControlRedo
	ControlSave
	ControlQuit
	ControlToggleTypewriter
)

// Action is the explicit result of dispatching a key: exactly one of
// the kinds applies, and the dispatcher itself performs no side
// effects. The session interprets the result.
type Action struct {
	Kind     ActionKind
	Motion   MotionKind
	Mutation MutationKind
	Mode     Mode
	Control  ControlKind
	Rune     rune
}

func noOp() Action                   { return Action{Kind: ActionNoOp} }
func motion(k MotionKind) Action     { return Action{Kind: ActionMotion, Motion: k} }
func mutation(k MutationKind) Action { return Action{Kind: ActionMutation, Mutation: k} }
func insertRune(r rune) Action {
	return Action{Kind: ActionMutation, Mutation: MutationInsertRune, Rune: r}
}
func modeChange(m Mode) Action     { return Action{Kind: ActionModeChange, Mode: m} }
func control(k ControlKind) Action { return Action{Kind: ActionControl, Control: k} }

// chordDef describes a multi-key command: the rune completing it and
// the action it fires.
type chordDef struct {
	next   rune
	action Action
}

// Dispatcher maps (mode, key event) pairs to Actions. Chords are
// detected in Navigation mode only.
type Dispatcher struct {
	chords map[rune]chordDef
}

// NewDispatcher builds the default key tables, including the double-d
// delete-line chord.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		chords: map[rune]chordDef{
			'd': {next: 'd', action: mutation(MutationDeleteLine)},
		},
	}
}

// IsChordStart reports whether the key opens a chord in the given mode.
func (d *Dispatcher) IsChordStart(mode Mode, key KeyEvent) bool {
	if mode != ModeNavigation || !key.IsPrintable() {
		return false
	}
	_, ok := d.chords[key.Rune]
	return ok
}

// ResolveChord reports the chord action when key completes the chord
// opened by first; ok is false when key breaks it instead.
func (d *Dispatcher) ResolveChord(first, key KeyEvent) (Action, bool) {
	def, ok := d.chords[first.Rune]
	if !ok {
		return noOp(), false
	}
	if key.IsPrintable() && key.Rune == def.next {
		return def.action, true
	}
	return noOp(), false
}

// Dispatch resolves a key against the mode table. Chord-opening keys
// return ChordPending; the session owns the pending state and its
// deadline, and calls DefaultAction to replay a broken chord's key.
func (d *Dispatcher) Dispatch(mode Mode, key KeyEvent) Action {
	if d.IsChordStart(mode, key) {
		return Action{Kind: ActionChordPending}
	}
	return d.DefaultAction(mode, key)
}

// DefaultAction resolves a key against the mode table ignoring chords:
// this is the single-key action a lone chord opener falls back to.
func (d *Dispatcher) DefaultAction(mode Mode, key KeyEvent) Action {
	if mode == ModeInsert {
		return d.insertAction(key)
	}
	return d.navigationAction(key)
}

func (d *Dispatcher) navigationAction(key KeyEvent) Action {
	if key.Modifiers&ModCtrl != 0 {
		switch key.Rune {
		case 's':
			return control(ControlSave)
		case 'q':
			return control(ControlQuit)
		case 'z':
			return control(ControlUndo)
		case 'y':
			return control(ControlRedo)
		case 't':
			return control(ControlToggleTypewriter)
		}
		return noOp()
	}

	switch key.Key {
	case KeyLeft:
		return motion(MotionLeft)
	case KeyRight:
		return motion(MotionRight)
	case KeyUp:
		return motion(MotionUp)
	case KeyDown:
		return motion(MotionDown)
	case KeyHome:
		return motion(MotionLineStart)
	case KeyEnd:
		return motion(MotionLineEnd)
	case KeyPageUp:
		return motion(MotionPageUp)
	case KeyPageDown:
		return motion(MotionPageDown)
	case KeyDelete:
		return mutation(MutationDeleteRune)
	}

	switch key.Rune {
	case 'h', 'A':
		return motion(MotionLeft)
	case 'l', 'd', 'D':
		return motion(MotionRight)
	case 'k', 'W':
		return motion(MotionUp)
	case 'j', 's', 'S':
		return motion(MotionDown)
	case 'w':
		return motion(MotionWordForward)
	case 'b':
		return motion(MotionWordBackward)
	case '0':
		return motion(MotionLineStart)
	case '$':
		return motion(MotionLineEnd)
	case 'g':
		return motion(MotionDocumentStart)
	case 'G':
		return motion(MotionDocumentEnd)
	case 'i':
		return modeChange(ModeInsert)
	case 'a':
		// Append: step past the cursor rune, then start typing.
		return Action{Kind: ActionModeChange, Mode: ModeInsert, Motion: MotionRight}
	case 'o':
		return mutation(MutationOpenLineBelow)
	case 'x':
		return mutation(MutationDeleteRune)
	case 'p':
		return mutation(MutationPaste)
	case 'u':
		return control(ControlUndo)
	case 'U':
		return control(ControlRedo)
	}

	return noOp()
}

func (d *Dispatcher) insertAction(key KeyEvent) Action {
	if key.Modifiers&ModCtrl != 0 {
		switch key.Rune {
		case 's':
			return control(ControlSave)
		case 'q':
			return control(ControlQuit)
		case 'z':
			return control(ControlUndo)
		case 'y':
			return control(ControlRedo)
		case 'v':
			return mutation(MutationPaste)
		}
		return noOp()
	}

	switch key.Key {
	case KeyEscape:
		return modeChange(ModeNavigation)
	case KeyEnter:
		return mutation(MutationInsertNewline)
	case KeyBackspace:
		return mutation(MutationBackspace)
	case KeyTab:
		return mutation(MutationInsertTab)
	case KeyDelete:
		return mutation(MutationDeleteRune)
	case KeyLeft:
		return motion(MotionLeft)
	case KeyRight:
		return motion(MotionRight)
	case KeyUp:
		return motion(MotionUp)
	case KeyDown:
		return motion(MotionDown)
	case KeyHome:
		return motion(MotionLineStart)
	case KeyEnd:
		return motion(MotionLineEnd)
	case KeyPageUp:
		return motion(MotionPageUp)
	case KeyPageDown:
		return motion(MotionPageDown)
	}

	if key.IsPrintable() {
		return insertRune(key.Rune)
	}

	return noOp()
}
