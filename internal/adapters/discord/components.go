package discord

import (
	"github.com/bwmarrin/discordgo"

	"rosterbot/internal/infrastructure/logger"
	"rosterbot/pkg/keyboard"
)

// Discord limits per message.
const (
	maxRows        = 5
	buttonsPerRow  = 5
	maxLabelLength = 80
)

// toComponents converts a grid into action rows. Grids beyond Discord's
// limits are repacked at buttonsPerRow with the last row (the controls)
// kept last; buttons that still do not fit are dropped.
func toComponents(m *keyboard.Markup, log *logger.Logger) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{}
	if m.Empty() {
		return components
	}
	rows := fitRows(m.Rows, log)
	for n, r := range rows {
		style := discordgo.PrimaryButton
		if n == len(rows)-1 && len(rows) > 1 {
			style = discordgo.SecondaryButton
		}
		buttons := make([]discordgo.MessageComponent, len(r))
		for i, btn := range r {
			buttons[i] = discordgo.Button{
				Label:    truncate(btn.Label, maxLabelLength),
				Style:    style,
				CustomID: btn.Action,
			}
		}
		components = append(components, discordgo.ActionsRow{Components: buttons})
	}
	return components
}

func fitRows(rows []keyboard.Row, log *logger.Logger) []keyboard.Row {
	nonEmpty := make([]keyboard.Row, 0, len(rows))
	for _, r := range rows {
		if len(r) > 0 {
			nonEmpty = append(nonEmpty, r)
		}
	}
	if fits(nonEmpty) {
		return nonEmpty
	}

	controls := nonEmpty[len(nonEmpty)-1]
	if len(controls) > buttonsPerRow {
		controls = controls[:buttonsPerRow]
	}
	var items []keyboard.Button
	for _, r := range nonEmpty[:len(nonEmpty)-1] {
		items = append(items, r...)
	}

	var out []keyboard.Row
	for i := 0; i < len(items) && len(out) < maxRows-1; i += buttonsPerRow {
		end := min(i+buttonsPerRow, len(items))
		out = append(out, items[i:end])
	}
	if kept := (maxRows - 1) * buttonsPerRow; len(items) > kept && log != nil {
		log.Warnf("DISCORD", "⚠️ %d buttons do not fit in one message, dropped", len(items)-kept)
	}
	return append(out, controls)
}

func fits(rows []keyboard.Row) bool {
	if len(rows) > maxRows {
		return false
	}
	for _, r := range rows {
		if len(r) > buttonsPerRow {
			return false
		}
	}
	return true
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
