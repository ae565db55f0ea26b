package adapter_bubbletea

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"inkwell/core"
)

const tabStop = 4

func (m Model) View() string {
	content := m.viewport.View()
	statusLine := m.renderStatusLine()
	messageLine := m.renderMessageLine()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		statusLine,
		messageLine,
	)
}

func (m *Model) renderContent() string {
	cursor := m.session.Cursor()
	gutter := m.gutterWidth()
	textWidth := max(1, m.viewport.Width-gutter)

	lines := m.session.VisibleLines()
	rendered := make([]string, 0, m.viewport.Height)

	for _, fl := range lines {
		var sb strings.Builder

		if gutter > 0 {
			numStyle := m.theme.LineNumberStyle
			if fl.Row == cursor.Row {
				numStyle = m.theme.CurrentLineNumberStyle
			}
			sb.WriteString(numStyle.Width(gutter - 1).Render(strconv.Itoa(fl.Row + 1)))
			sb.WriteByte(' ')
		}

		textStyle := m.theme.TextStyle
		if !fl.InFocus {
			textStyle = m.theme.DimmedStyle
		}

		if fl.Row == cursor.Row {
			sb.WriteString(m.renderCursorLine(fl.Text, cursor.Col, textStyle, textWidth))
		} else {
			sb.WriteString(textStyle.Render(clipLine(expandTabs(fl.Text), textWidth)))
		}

		rendered = append(rendered, sb.String())
	}

	for len(rendered) < m.viewport.Height {
		if m.showTildeIndicator {
			rendered = append(rendered, m.theme.TildeStyle.Render("~"))
		} else {
			rendered = append(rendered, "")
		}
	}

	return strings.Join(rendered, "\n")
}

// renderCursorLine draws the cursor as a reversed cell: the rune under
// the cursor, or a blank cell when the cursor rests past end of line.
func (m *Model) renderCursorLine(text string, col int, style lipgloss.Style, width int) string {
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}

	before := expandTabs(string(runes[:col]))

	var under, after string
	if col < len(runes) {
		if runes[col] == '\t' {
			under = " "
			after = expandTabs(string(runes[col:]))[1:]
		} else {
			under = string(runes[col])
			after = expandTabs(string(runes[col+1:]))
		}
	} else {
		under = " "
	}

	// Keep the cursor on screen even when the line overflows the
	// viewport: clip from the left first.
	if w := runewidth.StringWidth(before); w > width-1 {
		before = truncateLeft(before, width-1)
	}
	remaining := width - runewidth.StringWidth(before) - runewidth.StringWidth(under)
	after = clipLine(after, max(0, remaining))

	return style.Render(before) + m.theme.CursorStyle.Render(under) + style.Render(after)
}

func (m *Model) renderStatusLine() string {
	var badge string
	switch m.session.Mode() {
	case core.ModeInsert:
		badge = m.theme.InsertModeStyle.Render(" INSERT ")
	default:
		badge = m.theme.NavigationModeStyle.Render(" NAVIGATION ")
	}

	name := m.session.FileName()
	if name == "" {
		name = "[scratch]"
	}
	if m.session.Buffer().Dirty() {
		name += " [+]"
	}

	cursor := m.session.Cursor()
	stats := core.DocumentStats(m.session.Buffer())
	info := fmt.Sprintf("%d:%d | %d words ", cursor.Row+1, cursor.Col+1, stats.Words)

	left := badge + m.theme.StatusLineStyle.Render(" "+name)
	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(info))

	return left + m.theme.StatusLineStyle.Render(strings.Repeat(" ", gap)+info)
}

func (m *Model) renderMessageLine() string {
	var line string
	switch {
	case m.err != nil:
		line = m.theme.ErrorStyle.
			Background(m.theme.MessageLineStyle.GetBackground()).
			Render(m.err.Error())
	case m.message != "":
		line = m.theme.MessageStyle.
			Background(m.theme.MessageLineStyle.GetBackground()).
			Render(m.message)
	}

	if padding := m.width - lipgloss.Width(line); padding > 0 {
		line += m.theme.MessageLineStyle.Render(strings.Repeat(" ", padding))
	}
	return line
}

func expandTabs(text string) string {
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabStop))
}

func clipLine(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, "…")
}

// truncateLeft keeps the rightmost cells of text up to width.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	for runewidth.StringWidth(string(runes)) > width && len(runes) > 0 {
		runes = runes[1:]
	}
	return string(runes)
}
