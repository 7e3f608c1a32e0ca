package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"
)

type KeyMapSession struct {
	Send        key.Binding
	CheckExpiry key.Binding
	Refresh     key.Binding
	Quit        key.Binding
}

type KeyMapViewport struct {
	ToPreviousMessage key.Binding
	ToNextMessage     key.Binding
	ClearSelection    key.Binding
	ScrollUp          key.Binding
	ScrollDown        key.Binding
	Copy              key.Binding
}

type InputKeyMap struct {
	PreviousHistoryEntry key.Binding
	NextHistoryEntry     key.Binding
}

var keyMapSession = KeyMapSession{
	Send: key.NewBinding(
		key.WithKeys("ctrl+j"),
	),
	CheckExpiry: key.NewBinding(
		key.WithKeys("ctrl+e"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

var keyMapViewport = KeyMapViewport{
	// Message navigation.
	ToPreviousMessage: key.NewBinding(
		key.WithKeys("alt+{"),
	),
	ToNextMessage: key.NewBinding(
		key.WithKeys("alt+}"),
	),
	ClearSelection: key.NewBinding(
		key.WithKeys("esc"),
	),

	// Scrolling.
	ScrollUp: key.NewBinding(
		key.WithKeys("ctrl+p"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("ctrl+n"),
	),

	// Copy.
	Copy: key.NewBinding(
		key.WithKeys("alt+w"),
	),
}

var inputKeyMap = InputKeyMap{
	PreviousHistoryEntry: key.NewBinding(
		key.WithKeys("alt+p"),
	),
	NextHistoryEntry: key.NewBinding(
		key.WithKeys("alt+n"),
	),
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg.(type) {
	case spinner.TickMsg, cursor.BlinkMsg, tea.MouseMsg:
	default:
		log.Debug("update", "msg_type", fmt.Sprintf("%T", msg), "navigation_index", m.navigationMessageIndex)
	}

	switch msg := msg.(type) {
	case tea.FocusMsg:
		m.windowFocused = true
		m.textarea.Focus()
		cmds = append(cmds, textarea.Blink)
		return m, tea.Batch(cmds...)

	case tea.BlurMsg:
		m.windowFocused = false
		m.textarea.Blur()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyMapSession.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keyMapSession.Send):
			// Ignored while a submission is in flight; the input is kept.
			cmds = append(cmds, m.sendMessage())
			m.adjustTextareaHeight()
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapSession.CheckExpiry):
			cmds = append(cmds, m.checkExpiry())
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapSession.Refresh):
			cmds = append(cmds, m.refresh())
			return m, tea.Batch(cmds...)

		case key.Matches(msg, inputKeyMap.PreviousHistoryEntry):
			if entry, ok := m.history.Previous(m.textarea.Value()); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, inputKeyMap.NextHistoryEntry):
			if entry, ok := m.history.Next(); ok {
				m.textarea.SetValue(entry)
				m.historyNavigating = true
				m.adjustTextareaHeight()
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.ToPreviousMessage):
			if m.toPreviousMessage() {
				m.viewport.SetContent(m.renderMessages())
				m.scrollToNavigatedMessage()
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.ToNextMessage):
			if m.toNextMessage() {
				m.viewport.SetContent(m.renderMessages())
				m.scrollToNavigatedMessage()
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.ClearSelection):
			if m.navigationMessageIndex != -1 {
				m.navigationMessageIndex = -1
				m.viewport.SetContent(m.renderMessages())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.ScrollUp):
			m.viewport.LineUp(3)
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.ScrollDown):
			m.viewport.LineDown(3)
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keyMapViewport.Copy):
			if content := m.getSelectedContent(); content != "" {
				if err := clipboard.Init(); err != nil {
					log.Warn("initializing clipboard", "error", err)
					cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.ErrorKey, "Clipboard unavailable"))
					return m, tea.Batch(cmds...)
				}
				clipboard.Write(clipboard.FmtText, []byte(content))
				cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"))
			}
			return m, tea.Batch(cmds...)
		}

		if m.historyNavigating {
			switch msg.Type {
			case tea.KeyEnter, tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
				m.history.Reset()
				m.historyNavigating = false
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalculateLayout()

	case eventsMsg:
		cmds = append(cmds, m.applyEvents(msg.events))
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.adjustTextareaHeight()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "k", "g", "G", "u", "d", "b", "ctrl+u", "ctrl+d", "f", " ":
			// Don't pass vim navigation keys to viewport while typing
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
