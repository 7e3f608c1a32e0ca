package conversation

// Role of the author of a message.
type Role string

const (
	// RoleUser is a message typed by the user.
	RoleUser Role = "user"
	// RoleAssistant is a message produced from a backend reply.
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Reminders are optional and only set by flows that produce them.
	Reminders []string `json:"reminders,omitempty"`
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates a new assistant message. No reminders are stored as nil,
// which is also what an empty list decodes to.
func NewAssistantMessage(content string, reminders ...string) Message {
	if len(reminders) == 0 {
		reminders = nil
	}
	return Message{Role: RoleAssistant, Content: content, Reminders: reminders}
}

// clone returns a copy of the message that shares no memory with it.
func (m Message) clone() Message {
	if m.Reminders != nil {
		m.Reminders = append([]string(nil), m.Reminders...)
	}
	return m
}
