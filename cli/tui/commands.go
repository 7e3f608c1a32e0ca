package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/event"
)

// eventsMsg carries the events produced by a command back to the update loop.
type eventsMsg struct {
	events []event.Event
}

// run executes a controller command off the update loop.
func (m *Model) run(command app.Command) tea.Cmd {
	if command == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return eventsMsg{events: command(ctx)}
	}
}

func (m *Model) sendMessage() tea.Cmd {
	input := m.textarea.Value()
	command, ok := m.controller.Submit(input)
	if !ok {
		return nil
	}

	m.history.Add(input)
	m.historyNavigating = false
	m.textarea.Reset()
	m.navigationMessageIndex = -1

	m.sync(true)
	return m.run(command)
}

func (m *Model) checkExpiry() tea.Cmd {
	command := m.controller.CheckExpiry()
	m.navigationMessageIndex = -1
	m.sync(true)
	return m.run(command)
}

func (m *Model) refresh() tea.Cmd {
	return m.run(m.controller.Refresh())
}

// applyEvents feeds events to the controller and runs the commands they request.
func (m *Model) applyEvents(events []event.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		if _, ok := e.(event.RefetchFailed); ok {
			cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.WarnKey, "Could not refresh the grocery list"))
		}
	}
	for _, command := range m.controller.Apply(events...) {
		cmds = append(cmds, m.run(command))
	}
	m.sync(m.viewport.AtBottom())
	return tea.Batch(cmds...)
}

// sync refreshes the state snapshot and the rendered conversation.
func (m *Model) sync(gotoBottom bool) {
	previous := m.state
	m.state = m.controller.State()
	if len(m.state.Messages) < len(previous.Messages) {
		m.renderer.Reset()
	}
	if previous.Loading != m.state.Loading {
		m.recalculateLayout()
	}
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// isErrorMessage returns true for assistant replies describing a failure.
func isErrorMessage(content string) bool {
	return strings.HasPrefix(content, "Error:")
}
