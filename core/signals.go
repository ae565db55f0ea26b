package core

import "log"

// Signal is an event the session emits toward its host UI. The session
// never performs I/O itself; saving and quitting are requested through
// the signal channel and completed by the host.
type Signal any

// SaveRequestSignal asks the host to persist the current document.
type SaveRequestSignal struct {
	text string
}

func (s SaveRequestSignal) Text() string { return s.text }

// QuitSignal asks the host to shut the editor down.
type QuitSignal struct{}

// MessageSignal carries a transient status message for display.
type MessageSignal struct {
	text string
}

func (m MessageSignal) Text() string { return m.text }

// ErrorSignal carries a non-fatal error for display.
type ErrorSignal EditorError

func (s *Session) dispatchSignal(signal Signal) {
	select {
	case s.signals <- signal:
	default:
		log.Println("core: signal channel full, dropping signal")
	}
}
