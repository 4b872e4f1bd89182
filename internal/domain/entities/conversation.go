package entities

import (
	"time"

	"rosterbot/internal/domain"
)

// Conversation holds a user's wizard step and the data staged so far.
type Conversation struct {
	UserID          int64              `json:"user_id"`
	State           domain.WizardState `json:"state"`
	EventName       string             `json:"event_name,omitempty"`
	EventID         int64              `json:"event_id,omitempty"`
	PromptChatID    int64              `json:"prompt_chat_id,omitempty"`
	PromptMessageID int64              `json:"prompt_message_id,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// HasStagedEvent reports whether an event was selected for editing.
func (c *Conversation) HasStagedEvent() bool {
	return c.EventID != 0
}

// Reset drops the wizard step and all staged data.
func (c *Conversation) Reset() {
	*c = Conversation{UserID: c.UserID}
}
