// Package adapter_bubbletea hosts the editing engine inside a
// Bubbletea program: it translates key messages into engine key
// events, renders the focus view, and completes save and quit
// requests coming back over the signal channel.
package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/core"
	"inkwell/storage"
)

const messageDisplayDuration = 3 * time.Second

// Options configures a new editor model.
type Options struct {
	FilePath        string
	Typewriter      bool
	FocusRadius     int
	ShowLineNumbers bool
	Theme           *Theme
}

type Model struct {
	session  *core.Session
	viewport viewport.Model
	filePath string

	width  int
	height int

	showLineNumbers    bool
	showTildeIndicator bool
	theme              Theme

	err     error
	message string

	// chordSeq invalidates timeout ticks from chords that were already
	// resolved by a second key.
	chordSeq int
}

// SavedMsg is emitted to the enclosing program after a document has
// been written to disk.
type SavedMsg struct {
	Path string
}

type messageMsg string

type errMsg struct{ err error }

type saveRequestMsg struct{ content string }

type quitMsg struct{}

type clearMsg struct{}

type chordTimeoutMsg struct{ seq int }

// New creates an editor model over the given document content.
func New(content string, opts Options) Model {
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	session := core.NewSession(content, core.Config{
		FileName:    opts.FilePath,
		Typewriter:  opts.Typewriter,
		FocusRadius: opts.FocusRadius,
		Clipboard:   &systemClipboard{},
	})

	m := Model{
		session:            session,
		viewport:           viewport.New(80, 22),
		filePath:           opts.FilePath,
		showLineNumbers:    opts.ShowLineNumbers,
		showTildeIndicator: true,
		theme:              theme,
	}
	m.SetSize(80, 24)

	return m
}

// Session exposes the underlying editing engine.
func (m *Model) Session() *core.Session { return m.session }

// SetSize resizes the editor; two rows are reserved for the status and
// message lines.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
	m.session.SetViewportHeight(m.viewport.Height)
}

// ShowTildeIndicator controls the tilde markers on rows past the end
// of the document.
func (m *Model) ShowTildeIndicator(show bool) {
	m.showTildeIndicator = show
}

func (m Model) Init() tea.Cmd {
	return m.listenForSignals()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		m.session.HandleKey(convertBubbleKey(msg))
		if m.session.ChordPending() {
			cmds = append(cmds, m.scheduleChordTimeout())
		}

	case chordTimeoutMsg:
		// A resolved chord re-arms the sequence; stale ticks fall through.
		if msg.seq == m.chordSeq {
			m.session.ExpireChord(time.Now())
		}

	case saveRequestMsg:
		cmds = append(cmds, m.save(msg.content))

	case quitMsg:
		return m, tea.Quit

	case messageMsg:
		m.message = string(msg)
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case errMsg:
		m.message = ""
		m.err = msg.err
		cmds = append(cmds, m.dispatchClearMsg())

	case SavedMsg:
		m.session.MarkSaved()
		m.message = fmt.Sprintf("saved %s", msg.Path)
		m.err = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case clearMsg:
		m.message = ""
		m.err = nil
	}

	cmds = append(cmds, m.listenForSignals())

	var viewportCmd tea.Cmd
	m.viewport, viewportCmd = m.viewport.Update(msg)
	cmds = append(cmds, viewportCmd)

	m.viewport.SetContent(m.renderContent())
	m.viewport.YOffset = 0

	return m, tea.Batch(cmds...)
}

func (m *Model) scheduleChordTimeout() tea.Cmd {
	m.chordSeq++
	seq := m.chordSeq
	wait := time.Until(m.session.ChordDeadline())
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return chordTimeoutMsg{seq: seq}
	})
}

func (m *Model) save(content string) tea.Cmd {
	path := m.filePath
	return func() tea.Msg {
		if path == "" {
			return errMsg{err: fmt.Errorf("no file name")}
		}
		if err := storage.Save(path, content); err != nil {
			return errMsg{err: err}
		}
		return SavedMsg{Path: path}
	}
}

func (m *Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(messageDisplayDuration, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

func (m *Model) listenForSignals() tea.Cmd {
	return func() tea.Msg {
		signal := <-m.session.Signals()

		switch signal := signal.(type) {
		case core.SaveRequestSignal:
			return saveRequestMsg{content: signal.Text()}

		case core.QuitSignal:
			return quitMsg{}

		case core.MessageSignal:
			return messageMsg(signal.Text())

		case core.ErrorSignal:
			return errMsg{err: signal.Err}
		}

		return nil
	}
}

func (m *Model) gutterWidth() int {
	if !m.showLineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(max(1, m.session.Buffer().LineCount())))
	return min(max(4, digits)+1, 10)
}
