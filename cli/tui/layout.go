package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/malonaz/pantry/cli/tui/styles"
)

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	content := m.textarea.Value()
	lineCount := strings.Count(content, "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	oldHeight := m.textarea.Height()
	if oldHeight != newHeight {
		m.textarea.SetHeight(newHeight)

		heightDiff := newHeight - oldHeight

		m.recalculateLayout()

		if heightDiff != 0 && m.ready {
			m.viewport.LineDown(heightDiff)
		}
	}
}

// scrollToNavigatedMessage scrolls the viewport to show the currently navigated message,
// but only if it's not already fully visible.
func (m *Model) scrollToNavigatedMessage() {
	if m.navigationMessageIndex < 0 || m.navigationMessageIndex >= len(m.messageViewportOffsets) {
		return
	}

	startLine := m.messageViewportOffsets[m.navigationMessageIndex]

	// Calculate end line
	var endLine int
	if m.navigationMessageIndex+1 < len(m.messageViewportOffsets) {
		endLine = m.messageViewportOffsets[m.navigationMessageIndex+1] - 1
	} else {
		endLine = m.viewport.TotalLineCount()
	}

	// Check if fully visible
	viewportTop := m.viewport.YOffset
	viewportBottom := viewportTop + m.viewport.Height

	if startLine >= viewportTop && endLine < viewportBottom {
		return // Already fully visible
	}

	m.viewport.SetYOffset(startLine)
}

// sidebarWidth returns the width taken by the grocery sidebar, 0 if the terminal is too narrow for it.
func (m *Model) sidebarWidth() int {
	width := styles.SidebarWidth + styles.SidebarStyle.GetHorizontalBorderSize()
	if m.width-width < styles.MinContentWidth {
		return 0
	}
	return width
}

// recalculateLayout adjusts viewport and textarea dimensions based on current state.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// Compute viewport height.
	viewportHeight := m.height - lineCount(m.renderTitle()) - lineCount(m.renderFooter())
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	viewportWidth := m.width - m.sidebarWidth()
	// Account for message frame size and selection indicator width
	rendererWidth := viewportWidth - styles.MessageHorizontalFrameSize() - styles.SelectionIndicatorWidth
	if err := m.renderer.SetWidth(rendererWidth); err != nil {
		log.Error("resizing markdown renderer", "error", err)
	}

	if !m.ready {
		m.viewport = viewport.New(viewportWidth, viewportHeight)
		m.ready = true
		m.viewport.SetContent(m.renderMessages())
		m.viewport.GotoBottom()
	} else {
		m.viewport.Width = viewportWidth
		m.viewport.Height = viewportHeight
		m.viewport.SetContent(m.renderMessages())
	}

	m.textarea.SetWidth(m.width - styles.TextAreaStyle.GetHorizontalPadding() - styles.TextAreaStyle.GetHorizontalBorderSize())
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
