package chat

import "fmt"

// Kind is the inbound update category. Commands and free text are distinct
// kinds: transports strip the command prefix and never report a command as
// free text.
type Kind int

const (
	KindCommand Kind = iota + 1
	KindMessage
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindMessage:
		return "message"
	case KindCallback:
		return "callback"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Update is a transport-neutral inbound event.
type Update struct {
	Kind   Kind
	UserID int64
	ChatID int64
	// MessageID is the inbound message, or for callbacks the message
	// carrying the pressed button.
	MessageID int64

	Text    string
	HasText bool // false for stickers, photos without caption, etc.

	Command string // without the leading slash

	CallbackID string
	Data       string // action token

	Locale string // platform language code, may be empty
}

func (u Update) describe() string {
	switch u.Kind {
	case KindCommand:
		return "/" + u.Command
	case KindCallback:
		return u.Data
	default:
		if !u.HasText {
			return "<non-text>"
		}
		return fmt.Sprintf("text(%d bytes)", len(u.Text))
	}
}
