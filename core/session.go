package core

import (
	"fmt"
	"time"
)

// Clipboard abstracts the system clipboard so the session stays free of
// platform dependencies. Hosts plug in a real implementation; a nil
// clipboard turns paste into a reported error.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Config carries the tunable parameters of a session. The zero value is
// usable; unset fields fall back to defaults.
type Config struct {
	FileName     string
	Typewriter   bool
	FocusRadius  int
	HistoryLimit int
	ChordTimeout time.Duration
	Clock        Clock
	Clipboard    Clipboard
}

// Session is the editing engine: it owns the buffer, cursor, mode,
// history, and pending chord, and turns key events into Actions. It
// performs no I/O; file and clipboard traffic go through the host via
// signals and the Clipboard interface.
//
// A session is not safe for concurrent use. Drive it from a single
// goroutine, the way a UI event loop does.
type Session struct {
	buffer     *Buffer
	cursor     Cursor
	mode       Mode
	history    *History
	dispatcher *Dispatcher

	chord        *ChordState
	chordTimeout time.Duration
	clock        Clock

	viewport    Viewport
	typewriter  bool
	focusRadius int

	fileName  string
	clipboard Clipboard
	quitArmed bool

	signals chan Signal
}

// NewSession creates a session over the given document text.
func NewSession(text string, cfg Config) *Session {
	if cfg.ChordTimeout <= 0 {
		cfg.ChordTimeout = DefaultChordTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}
	if cfg.FocusRadius < 0 {
		cfg.FocusRadius = DefaultFocusRadius
	}
	return &Session{
		buffer:       NewBufferFromText(text),
		mode:         ModeNavigation,
		history:      NewHistory(cfg.HistoryLimit),
		dispatcher:   NewDispatcher(),
		chordTimeout: cfg.ChordTimeout,
		clock:        cfg.Clock,
		typewriter:   cfg.Typewriter,
		focusRadius:  cfg.FocusRadius,
		fileName:     cfg.FileName,
		clipboard:    cfg.Clipboard,
		signals:      make(chan Signal, 16),
	}
}

// Buffer exposes the document.
func (s *Session) Buffer() *Buffer { return s.buffer }

// Cursor returns the current cursor.
func (s *Session) Cursor() Cursor { return s.cursor }

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// FileName returns the name the session was opened with.
func (s *Session) FileName() string { return s.fileName }

// Typewriter reports whether typewriter scrolling is on.
func (s *Session) Typewriter() bool { return s.typewriter }

// CanUndo reports whether undo has a target.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether redo has a target.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Signals is the event stream toward the host UI.
func (s *Session) Signals() <-chan Signal { return s.signals }

// ChordPending reports whether a chord's first key is buffered.
func (s *Session) ChordPending() bool { return s.chord != nil }

// ChordDeadline returns when the pending chord expires; the zero time
// when none is pending. Hosts use it to schedule an ExpireChord wakeup.
func (s *Session) ChordDeadline() time.Time {
	if s.chord == nil {
		return time.Time{}
	}
	return s.chord.Deadline
}

// SetViewportHeight tells the session how many document rows the host
// can display; scrolling calculations depend on it.
func (s *Session) SetViewportHeight(h int) {
	s.viewport.Height = h
	s.scroll()
}

// Viewport returns the current scroll window.
func (s *Session) Viewport() Viewport { return s.viewport }

// VisibleLines returns the on-screen slice of the document with focus
// annotations for the renderer.
func (s *Session) VisibleLines() []FocusLine {
	return VisibleLines(s.buffer, s.viewport, s.cursor.Row, s.typewriter, s.focusRadius)
}

// HandleKey feeds one key event through the state machine and returns
// the Action that was ultimately applied. A buffered chord is resolved
// first: its second key fires the chord command, any other key replays
// the buffered key's single-key action before the new key is handled.
func (s *Session) HandleKey(key KeyEvent) Action {
	now := s.clock.Now()

	if s.chord != nil {
		pending := *s.chord
		if pending.Expired(now) {
			s.chord = nil
			s.apply(s.dispatcher.DefaultAction(s.mode, pending.Key))
			s.scroll()
		} else if action, ok := s.dispatcher.ResolveChord(pending.Key, key); ok {
			s.chord = nil
			s.apply(action)
			s.scroll()
			return action
		} else {
			// Any other key breaks the chord: the buffered key replays
			// its single-key action before the new key is handled.
			s.chord = nil
			s.apply(s.dispatcher.DefaultAction(s.mode, pending.Key))
			s.scroll()
		}
	}

	action := s.dispatcher.Dispatch(s.mode, key)
	if action.Kind == ActionChordPending {
		s.chord = &ChordState{Key: key, Deadline: now.Add(s.chordTimeout)}
		return action
	}

	s.apply(action)
	s.scroll()
	return action
}

// ExpireChord resolves a pending chord whose window has closed at now:
// the buffered key performs its single-key action. It returns that
// action, or a no-op when nothing expired. Hosts call this from a timer.
func (s *Session) ExpireChord(now time.Time) Action {
	if s.chord == nil || !s.chord.Expired(now) {
		return noOp()
	}
	pending := *s.chord
	s.chord = nil
	action := s.dispatcher.DefaultAction(s.mode, pending.Key)
	s.apply(action)
	s.scroll()
	return action
}

func (s *Session) apply(a Action) {
	switch a.Kind {
	case ActionMotion:
		s.quitArmed = false
		s.applyMotion(a.Motion)
	case ActionMutation:
		s.quitArmed = false
		s.applyMutation(a)
	case ActionModeChange:
		s.quitArmed = false
		if a.Motion != MotionNone {
			s.applyMotion(a.Motion)
		}
		s.mode = a.Mode
	case ActionControl:
		s.applyControl(a.Control)
	}
}

func (s *Session) applyMotion(m MotionKind) {
	switch m {
	case MotionLeft:
		s.cursor.MoveLeft(s.buffer)
	case MotionRight:
		s.cursor.MoveRight(s.buffer)
	case MotionUp:
		s.cursor.MoveUp(s.buffer)
	case MotionDown:
		s.cursor.MoveDown(s.buffer)
	case MotionLineStart:
		s.cursor.MoveToLineStart()
	case MotionLineEnd:
		s.cursor.MoveToLineEnd(s.buffer)
	case MotionWordForward:
		s.cursor.MoveWordForward(s.buffer)
	case MotionWordBackward:
		s.cursor.MoveWordBackward(s.buffer)
	case MotionPageUp:
		s.cursor.MovePageUp(s.buffer, s.viewport.Height)
	case MotionPageDown:
		s.cursor.MovePageDown(s.buffer, s.viewport.Height)
	case MotionDocumentStart:
		s.cursor.MoveToDocumentStart()
	case MotionDocumentEnd:
		s.cursor.MoveToDocumentEnd(s.buffer)
	}
}

// applyMutation runs an edit with push-before-mutate semantics: the
// prior state is captured first and recorded only if the document
// actually changed, so no-op edits never pollute the history.
func (s *Session) applyMutation(a Action) {
	prevText := s.buffer.Text()
	prevCursor := s.cursor

	s.performMutation(a)

	if s.buffer.Text() != prevText {
		s.history.PushSnapshot(prevText, prevCursor)
	}
}

func (s *Session) performMutation(a Action) {
	row, col := s.cursor.Row, s.cursor.Col

	switch a.Mutation {
	case MutationInsertRune:
		if s.buffer.InsertRune(row, col, a.Rune) == nil {
			s.cursor.Col++
			s.cursor.Preferred = s.cursor.Col
		}

	case MutationInsertNewline:
		if s.buffer.SplitLine(row, col) == nil {
			s.cursor.Row++
			s.cursor.Col = 0
			s.cursor.Preferred = 0
		}

	case MutationInsertTab:
		if s.buffer.InsertRune(row, col, '\t') == nil {
			s.cursor.Col++
			s.cursor.Preferred = s.cursor.Col
		}

	case MutationBackspace:
		if pos, err := s.buffer.DeleteRuneBefore(row, col); err == nil {
			s.cursor.Row = pos.Row
			s.cursor.Col = pos.Col
			s.cursor.Preferred = pos.Col
		}

	case MutationDeleteRune:
		_ = s.buffer.DeleteRune(row, col)
		s.cursor.ClampToBuffer(s.buffer)

	case MutationDeleteLine:
		s.buffer.DeleteLine(row)
		s.cursor.ClampToBuffer(s.buffer)
		s.cursor.MoveToLineStart()

	case MutationOpenLineBelow:
		s.cursor.MoveToLineEnd(s.buffer)
		if s.buffer.SplitLine(s.cursor.Row, s.cursor.Col) == nil {
			s.cursor.Row++
			s.cursor.Col = 0
			s.cursor.Preferred = 0
			s.mode = ModeInsert
		}

	case MutationPaste:
		s.paste()
	}
}

func (s *Session) paste() {
	if s.clipboard == nil {
		s.dispatchSignal(ErrorSignal{Id: ErrNoClipboardId, Err: ErrNoClipboard})
		return
	}
	text, err := s.clipboard.ReadText()
	if err != nil {
		s.dispatchSignal(ErrorSignal{
			Id:  ErrPasteFailedId,
			Err: fmt.Errorf("paste: %w", err),
		})
		return
	}
	pos, err := s.buffer.InsertText(s.cursor.Row, s.cursor.Col, text)
	if err != nil {
		s.dispatchSignal(ErrorSignal{Id: ErrPasteFailedId, Err: err})
		return
	}
	s.cursor.Row = pos.Row
	s.cursor.Col = pos.Col
	s.cursor.Preferred = pos.Col
}

func (s *Session) applyControl(c ControlKind) {
	if c != ControlQuit {
		s.quitArmed = false
	}

	switch c {
	case ControlUndo:
		cur, ok := s.history.Undo(s.buffer, s.cursor)
		if !ok {
			s.dispatchSignal(ErrorSignal{Id: ErrNothingToUndoId, Err: ErrNothingToUndo})
			return
		}
		s.cursor = cur

	case ControlRedo:
		cur, ok := s.history.Redo(s.buffer, s.cursor)
		if !ok {
			s.dispatchSignal(ErrorSignal{Id: ErrNothingToRedoId, Err: ErrNothingToRedo})
			return
		}
		s.cursor = cur

	case ControlSave:
		s.dispatchSignal(SaveRequestSignal{text: s.buffer.Text()})

	case ControlQuit:
		if s.buffer.Dirty() && !s.quitArmed {
			s.quitArmed = true
			s.dispatchSignal(MessageSignal{text: "unsaved changes; quit again to discard"})
			return
		}
		s.dispatchSignal(QuitSignal{})

	case ControlToggleTypewriter:
		s.typewriter = !s.typewriter
		if s.typewriter {
			s.dispatchSignal(MessageSignal{text: "typewriter scrolling on"})
		} else {
			s.dispatchSignal(MessageSignal{text: "typewriter scrolling off"})
		}
		s.scroll()
	}
}

func (s *Session) scroll() {
	s.viewport.ScrollRow = ScrollViewport(s.viewport, s.cursor.Row, s.typewriter)
}

// MarkSaved records the current document as persisted. Hosts call it
// after completing a SaveRequestSignal.
func (s *Session) MarkSaved() { s.buffer.MarkSaved() }

// Status renders the status line: mode, file name with a dirty marker,
// 1-based cursor position, and the word count.
func (s *Session) Status() string {
	name := s.fileName
	if name == "" {
		name = "[scratch]"
	}
	dirty := ""
	if s.buffer.Dirty() {
		dirty = " [+]"
	}
	stats := DocumentStats(s.buffer)
	return fmt.Sprintf(" %s | %s%s | %d:%d | %d words ",
		s.mode, name, dirty, s.cursor.Row+1, s.cursor.Col+1, stats.Words)
}
