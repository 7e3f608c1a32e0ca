package tui

// toPreviousMessage navigates to the previous message.
// Returns true if navigation occurred and re-render is needed.
func (m *Model) toPreviousMessage() bool {
	if len(m.state.Messages) == 0 {
		return false
	}

	// Initialize at last message if not navigating
	if m.navigationMessageIndex == -1 {
		m.navigationMessageIndex = len(m.state.Messages) - 1
		return true
	}

	// Already at first message
	if m.navigationMessageIndex == 0 {
		return false
	}

	m.navigationMessageIndex--
	return true
}

// toNextMessage navigates to the next message.
// Returns true if navigation occurred and re-render is needed.
func (m *Model) toNextMessage() bool {
	// Can't go "next" if not navigating yet
	if m.navigationMessageIndex == -1 {
		return false
	}

	// Already at last message
	if m.navigationMessageIndex >= len(m.state.Messages)-1 {
		return false
	}

	m.navigationMessageIndex++
	return true
}
