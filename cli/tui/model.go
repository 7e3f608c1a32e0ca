package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/malonaz/pantry/cli/tui/styles"
	"github.com/malonaz/pantry/internal/app"
	"github.com/malonaz/pantry/internal/configuration"
	"github.com/malonaz/pantry/internal/debug"
	"github.com/malonaz/pantry/internal/history"
	"github.com/malonaz/pantry/internal/markdown"
)

var log *slog.Logger

// Model represents the Bubble Tea model for the pantry chat.
type Model struct {
	// Core dependencies
	ctx        context.Context
	config     *configuration.Config
	controller *app.Controller

	// Last snapshot of the controller state.
	state app.State

	// Tracks the line offset of each message in the viewport.
	messageViewportOffsets []int

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer

	// UI state
	width         int
	height        int
	ready         bool
	quitting      bool
	windowFocused bool
	now           func() time.Time

	// Alert notifications.
	alert bubbleup.AlertModel

	// Input history
	history           *history.History
	historyNavigating bool

	// Tracks the index of the message we're currently navigating. (-1 if none is selected).
	navigationMessageIndex int
}

// New creates a new chat model driving the given controller.
func New(ctx context.Context, config *configuration.Config, controller *app.Controller) (*Model, error) {
	log = debug.GetLogger()

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Tell me what you bought... (Ctrl+J to send, Ctrl+E expiring items, Ctrl+R refresh, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(styles.DefaultTextareaWidth)
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	// Create spinner
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	renderer, err := markdown.NewRenderer(styles.DefaultTextareaWidth)
	if err != nil {
		return nil, err
	}

	return &Model{
		ctx:                    ctx,
		config:                 config,
		controller:             controller,
		windowFocused:          true,
		now:                    time.Now,
		textarea:               ta,
		spinner:                sp,
		renderer:               renderer,
		alert:                  *bubbleup.NewAlertModel(30, true, 2),
		history:                history.New(config.Chat.InputHistoryFile, config.Chat.MaxInputHistory),
		navigationMessageIndex: -1,
	}, nil
}

// Init restores the conversation and starts the initial grocery fetch.
func (m *Model) Init() tea.Cmd {
	command := m.controller.Init()
	m.state = m.controller.State()
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.run(command),
	)
}

// getSelectedContent returns the content of the currently selected message.
func (m *Model) getSelectedContent() string {
	if m.navigationMessageIndex < 0 || m.navigationMessageIndex >= len(m.state.Messages) {
		return ""
	}
	return m.state.Messages[m.navigationMessageIndex].Content
}
