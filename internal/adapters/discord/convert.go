package discord

import (
	"html"
	"strings"

	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/adapters/chat"
)

// fromInteraction normalizes slash commands and button presses.
func fromInteraction(i *discordgo.InteractionCreate) (chat.Update, bool) {
	if i == nil || i.Interaction == nil {
		return chat.Update{}, false
	}
	user := interactionUser(i.Interaction)
	if user == nil {
		return chat.Update{}, false
	}
	u := chat.Update{
		UserID: parseSnowflake(user.ID),
		ChatID: parseSnowflake(i.ChannelID),
		Locale: string(i.Locale),
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		u.Kind = chat.KindCommand
		u.Command = strings.ToLower(i.ApplicationCommandData().Name)
		return u, true
	case discordgo.InteractionMessageComponent:
		u.Kind = chat.KindCallback
		u.CallbackID = i.ID
		u.Data = i.MessageComponentData().CustomID
		if i.Message != nil {
			u.MessageID = parseSnowflake(i.Message.ID)
			if i.Message.ChannelID != "" {
				u.ChatID = parseSnowflake(i.Message.ChannelID)
			}
		}
		return u, true
	}
	return chat.Update{}, false
}

// fromMessage normalizes a posted message. Messages of bots, the bot itself
// included, are dropped. A leading slash marks a typed command.
func fromMessage(m *discordgo.MessageCreate, selfID string) (chat.Update, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return chat.Update{}, false
	}
	if m.Author.Bot || m.Author.ID == selfID {
		return chat.Update{}, false
	}
	u := chat.Update{
		UserID:    parseSnowflake(m.Author.ID),
		ChatID:    parseSnowflake(m.ChannelID),
		MessageID: parseSnowflake(m.ID),
	}
	if name, ok := typedCommand(m.Content); ok {
		u.Kind = chat.KindCommand
		u.Command = name
		return u, true
	}
	u.Kind = chat.KindMessage
	u.Text = m.Content
	u.HasText = m.Content != ""
	return u, true
}

func typedCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", false
	}
	return strings.ToLower(fields[0]), true
}

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

var markdown = strings.NewReplacer(
	"<b>", "**", "</b>", "**",
	"<i>", "*", "</i>", "*",
	"<code>", "`", "</code>", "`",
)

// toMarkdown turns the HTML subset used by the lexicon into Discord
// markdown. Escaped user input is unescaped last so it is not read as tags.
func toMarkdown(text string) string {
	return html.UnescapeString(markdown.Replace(text))
}
