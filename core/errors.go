package core

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrNothingToUndo   = errors.New("already at oldest change")
	ErrNothingToRedo   = errors.New("already at newest change")
	ErrNoClipboard     = errors.New("clipboard not available")
)

// ErrorId identifies the class of a dispatched error so consumers can
// style or filter without string matching.
type ErrorId int

const (
	ErrInvalidPositionId ErrorId = iota
	ErrNothingToUndoId
	ErrNothingToRedoId
	ErrNoClipboardId
	ErrSaveFailedId
	ErrPasteFailedId
)

// EditorError pairs an error with its id for the signal channel.
type EditorError struct {
	Id  ErrorId
	Err error
}

func (e EditorError) Error() string { return e.Err.Error() }

func (e EditorError) Unwrap() error { return e.Err }
