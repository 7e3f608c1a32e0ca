package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/malonaz/pantry/cli/tui/styles"
	"github.com/malonaz/pantry/internal/conversation"
	"github.com/malonaz/pantry/internal/grocery"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	conversationPane := styles.ViewportStyle.Render(m.viewport.View())
	if m.sidebarWidth() > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, conversationPane, m.renderSidebar()))
	} else {
		b.WriteString(conversationPane)
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return m.alert.Render(b.String())
}

func (m *Model) renderTitle() string {
	title := fmt.Sprintf(" 🥫 pantry │ 🌐 %s │ 💬 %d messages │ 🛒 %d items ",
		m.config.BackendURL, len(m.state.Messages), len(m.state.Items))
	return styles.TitleStyle.Width(m.width).Render(title)
}

func (m *Model) renderFooter() string {
	var b strings.Builder
	b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
	b.WriteString("\n")
	if m.state.Loading {
		b.WriteString(fmt.Sprintf("%s %s", m.spinner.View(), styles.HelpStyle.Render("Updating your pantry...")))
	} else {
		b.WriteString(styles.HelpStyle.Render("alt+p/alt+n history │ alt+{/alt+} select message │ alt+w copy │ esc clear selection"))
	}
	return b.String()
}

func (m *Model) renderMessages() string {
	m.messageViewportOffsets = m.messageViewportOffsets[:0]
	if len(m.state.Messages) == 0 {
		return styles.EmptyConversationStyle.Render("Tell me what you bought, e.g. \"I got 2 cartons of milk and a dozen eggs\".")
	}

	var b strings.Builder
	lines := 0
	for i, message := range m.state.Messages {
		if i > 0 {
			b.WriteString("\n\n")
			lines += 2
		}
		m.messageViewportOffsets = append(m.messageViewportOffsets, lines)

		rendered := m.renderMessage(i, message)
		b.WriteString(rendered)
		lines += strings.Count(rendered, "\n")
	}
	return b.String()
}

func (m *Model) renderMessage(index int, message conversation.Message) string {
	rendered := m.renderer.Render(index, message.Content)

	var box string
	switch {
	case message.Role == conversation.RoleUser:
		box = styles.UserMessageStyle.Render(rendered)
	case isErrorMessage(message.Content):
		box = styles.ErrorMessageStyle.Render(rendered)
	default:
		box = styles.AssistantMessageStyle.Render(rendered)
	}
	for _, reminder := range message.Reminders {
		box += "\n" + styles.ReminderStyle.Render("⏰ "+reminder)
	}

	indicator := strings.Repeat(" ", styles.SelectionIndicatorWidth)
	if index == m.navigationMessageIndex {
		indicator = styles.SelectionIndicatorStyle.Render("▌ ")
	}
	height := lipgloss.Height(box)
	column := strings.TrimSuffix(strings.Repeat(indicator+"\n", height), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, column, box)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(styles.SidebarTitleStyle.Render(fmt.Sprintf("🛒 Groceries (%d)", len(m.state.Items))))
	b.WriteString("\n")

	if len(m.state.Items) == 0 {
		b.WriteString(styles.HelpStyle.Render("Nothing in the pantry yet."))
	}

	added := make(map[string]struct{}, len(m.state.Added))
	for _, name := range m.state.Added {
		added[name] = struct{}{}
	}
	now := m.now()
	for _, item := range m.state.Items {
		line := fmt.Sprintf("%s ×%d", item.Name, item.Quantity)
		if _, ok := added[item.Name]; ok {
			b.WriteString(styles.AddedItemStyle.Render("+ " + line))
		} else {
			b.WriteString(styles.ItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
		if expiry := grocery.HumanizeExpiry(item.Expiry, now); expiry != "" {
			style := styles.ExpiryStyle
			if grocery.Expired(item.Expiry, now) {
				style = styles.ExpiredStyle
			}
			b.WriteString(style.Render("expires " + expiry))
			b.WriteString("\n")
		}
	}

	return styles.SidebarStyle.
		Height(m.viewport.Height).
		MaxHeight(m.viewport.Height).
		Render(strings.TrimSuffix(b.String(), "\n"))
}
