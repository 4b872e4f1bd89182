package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterbot/internal/adapters/chat"
	"rosterbot/internal/infrastructure/logger"
	"rosterbot/pkg/keyboard"
)

func TestToMarkdown(t *testing.T) {
	assert.Equal(t, "Event **Birthday** on 31/12/2025", toMarkdown("Event <b>Birthday</b> on 31/12/2025"))
	assert.Equal(t, "**<b>Tom & Jerry</b>**", toMarkdown("<b>&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;</b>"))
}

func TestFromInteraction_Command(t *testing.T) {
	u, ok := fromInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "900",
		Type:      discordgo.InteractionApplicationCommand,
		ChannelID: "200",
		Member:    &discordgo.Member{User: &discordgo.User{ID: "42"}},
		Locale:    discordgo.Russian,
		Data:      discordgo.ApplicationCommandInteractionData{Name: "create_event"},
	}})
	require.True(t, ok)
	assert.Equal(t, chat.KindCommand, u.Kind)
	assert.Equal(t, "create_event", u.Command)
	assert.Equal(t, int64(42), u.UserID)
	assert.Equal(t, int64(200), u.ChatID)
	assert.Equal(t, "ru", u.Locale)
}

func TestFromInteraction_Button(t *testing.T) {
	u, ok := fromInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "901",
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: "200",
		User:      &discordgo.User{ID: "42"},
		Message:   &discordgo.Message{ID: "300", ChannelID: "200"},
		Data:      discordgo.MessageComponentInteractionData{CustomID: "event_edit:5"},
	}})
	require.True(t, ok)
	assert.Equal(t, chat.KindCallback, u.Kind)
	assert.Equal(t, "901", u.CallbackID)
	assert.Equal(t, "event_edit:5", u.Data)
	assert.Equal(t, int64(300), u.MessageID)
}

func TestFromInteraction_Ignored(t *testing.T) {
	_, ok := fromInteraction(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionPing,
		User: &discordgo.User{ID: "42"},
	}})
	assert.False(t, ok)
}

func TestFromMessage(t *testing.T) {
	msg := func(author *discordgo.User, content string) *discordgo.MessageCreate {
		return &discordgo.MessageCreate{Message: &discordgo.Message{ID: "10", ChannelID: "200", Author: author, Content: content}}
	}
	user := &discordgo.User{ID: "42"}

	u, ok := fromMessage(msg(user, "Birthday"), "1")
	require.True(t, ok)
	assert.Equal(t, chat.KindMessage, u.Kind)
	assert.True(t, u.HasText)
	assert.Equal(t, "Birthday", u.Text)

	u, ok = fromMessage(msg(user, "/Cancel now"), "1")
	require.True(t, ok)
	assert.Equal(t, chat.KindCommand, u.Kind)
	assert.Equal(t, "cancel", u.Command)

	u, ok = fromMessage(msg(user, ""), "1")
	require.True(t, ok)
	assert.False(t, u.HasText)

	_, ok = fromMessage(msg(&discordgo.User{ID: "1"}, "echo"), "1")
	assert.False(t, ok)
	_, ok = fromMessage(msg(&discordgo.User{ID: "7", Bot: true}, "hi"), "1")
	assert.False(t, ok)
}

func buttons(n int, prefix string) []keyboard.Button {
	out := make([]keyboard.Button, n)
	for i := range out {
		out[i] = keyboard.Button{Label: prefix, Action: prefix}
	}
	return out
}

func TestToComponents(t *testing.T) {
	assert.Empty(t, toComponents(nil, logger.Discard()))

	m := keyboard.NewBuilder().
		Row(2, buttons(3, "item")...).
		Row(1, keyboard.Button{Label: "Back", Action: "home_back"}).
		Markup()
	rows := toComponents(m, logger.Discard())
	require.Len(t, rows, 3)
	first := rows[0].(discordgo.ActionsRow)
	assert.Len(t, first.Components, 2)
	assert.Equal(t, discordgo.PrimaryButton, first.Components[0].(discordgo.Button).Style)
	last := rows[2].(discordgo.ActionsRow)
	assert.Equal(t, "home_back", last.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, discordgo.SecondaryButton, last.Components[0].(discordgo.Button).Style)
}

func TestToComponents_RepacksLargeGrids(t *testing.T) {
	m := keyboard.NewBuilder().
		Row(2, buttons(23, "item")...).
		Row(1, keyboard.Button{Label: "Back", Action: "home_back"}).
		Markup()
	rows := toComponents(m, logger.Discard())
	require.Len(t, rows, maxRows)
	for _, r := range rows[:maxRows-1] {
		assert.Len(t, r.(discordgo.ActionsRow).Components, buttonsPerRow)
	}
	last := rows[maxRows-1].(discordgo.ActionsRow)
	require.Len(t, last.Components, 1)
	assert.Equal(t, "home_back", last.Components[0].(discordgo.Button).CustomID)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "абв…", truncate("абвгд", 4))
}

func TestSnowflakes(t *testing.T) {
	assert.Equal(t, int64(1234567890123456789), parseSnowflake("1234567890123456789"))
	assert.Equal(t, "1234567890123456789", formatSnowflake(1234567890123456789))
	assert.Zero(t, parseSnowflake("not-a-number"))
}
