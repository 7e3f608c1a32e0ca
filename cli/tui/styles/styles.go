package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight    = 3
	MaxTextareaHeight    = 12
	DefaultTextareaWidth = 80
	TextAreaPaddingLeft  = 1

	// Viewport
	MinViewportHeight = 1

	// Sidebar
	SidebarWidth    = 34
	MinContentWidth = 40

	// Selection indicator in front of the navigated message.
	SelectionIndicatorWidth = 2
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
	SelectedColor  = lipgloss.Color("#10B981")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
		Background(PrimaryColor).
		Foreground(TextColor).
		Bold(true)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(6)

	AssistantMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(SecondaryColor).
				MarginRight(6)

	// Messages starting with "Error:".
	ErrorMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(ErrorColor).
				MarginRight(6)

	ReminderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true).
			PaddingLeft(2)

	SelectionIndicatorStyle = lipgloss.NewStyle().
				Foreground(SelectedColor).
				Bold(true)

	EmptyConversationStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true).
				Padding(1, 2)
)

// Sidebar
var (
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, false, false, true).
			BorderForeground(BorderColor).
			PaddingLeft(1).
			Width(SidebarWidth)

	SidebarTitleStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				MarginBottom(1)

	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	AddedItemStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ExpiryStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			PaddingLeft(2)

	ExpiredStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)
)

// Input area
var (
	TextAreaStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		PaddingLeft(TextAreaPaddingLeft)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)

// Viewport
var (
	ViewportStyle = lipgloss.NewStyle().Margin(0).Padding(0)
)

// MessageHorizontalFrameSize returns the horizontal frame size of assistant messages.
func MessageHorizontalFrameSize() int {
	return AssistantMessageStyle.GetHorizontalFrameSize()
}
