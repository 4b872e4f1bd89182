package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"rosterbot/internal/domain"
	"rosterbot/internal/infrastructure/logger"
)

// keys the bot resolves at runtime; every one must exist in every file.
var requiredKeys = []string{
	"start", "help", "cancel", "cancel_participant", "nothing_to_cancel",
	"create_event", "enter_date", "warning_not_event_name", "warning_not_event_date",
	"event_saved", "events_info", "my_events", "no_events", "event_participants",
	"event_selected", "enter_participant_name", "participant_added",
	"delete_events_info", "delete_event_prompt", "delete_participant_prompt",
	"choose_event_for_participant", "event_delete", "participant_deleted",
	"button.edit_events", "button.back", "button.add", "button.delete_event",
	"button.delete_participant", "button.cancel", "button.close", "button.delete_item",
	"commands.start", "commands.help", "commands.create_event", "commands.edit_events",
	"commands.my_events", "commands.cancel", "commands.cancel_participant",
	"errors.generic", "errors.event_not_found", "errors.invalid_date",
	"errors.wizard_busy", "errors.no_event_selected",
	"errors.unexpected_wizard_step",
}

func TestTranslator_AllKeysPresent(t *testing.T) {
	tr := NewTranslator("ru", logger.Discard())
	require.ElementsMatch(t, []language.Tag{language.Russian, language.English}, tr.Languages())

	for _, locale := range []string{"ru", "en"} {
		for _, key := range requiredKeys {
			got := tr.T(locale, key, map[string]any{"Title": "x", "Date": "x", "Name": "x", "Count": 1, "Label": "x"})
			assert.NotEqual(t, key, got, "%s: missing %s", locale, key)
			assert.NotEmpty(t, got)
		}
	}
}

// Domain errors are only shown through their errors.<code> entry.
func TestTranslator_DomainErrorsOnlyUnderErrors(t *testing.T) {
	tr := NewTranslator("ru", logger.Discard())

	for _, err := range []*domain.Error{
		domain.ErrEventNotFound, domain.ErrInvalidDate, domain.ErrWizardBusy,
		domain.ErrNoEventSelected, domain.ErrUnexpectedWizardStep,
	} {
		for _, locale := range []string{"ru", "en"} {
			key := "errors." + err.Code
			assert.NotEqual(t, key, tr.T(locale, key, nil), "%s: missing %s", locale, key)
			assert.Equal(t, err.Code, tr.T(locale, err.Code, nil), "%s: stray top-level %s", locale, err.Code)
		}
	}
}

func TestTranslator_Templates(t *testing.T) {
	tr := NewTranslator("ru", logger.Discard())

	assert.Equal(t, "❌ Birthday", tr.T("en", "button.delete_item", map[string]any{"Label": "Birthday"}))
	assert.Contains(t, tr.T("en", "event_saved", map[string]any{"Title": "Birthday", "Date": "31/12/2025"}), "Birthday")
}

func TestTranslator_Fallbacks(t *testing.T) {
	tr := NewTranslator("ru", logger.Discard())

	assert.Equal(t, tr.T("ru", "cancel", nil), tr.T("de", "cancel", nil))
	assert.Equal(t, tr.T("ru", "cancel", nil), tr.T("", "cancel", nil))
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
	assert.Empty(t, tr.T("en", "", nil))
}

func TestTranslator_BadDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale", logger.Discard())
	assert.Equal(t, tr.T("ru", "help", nil), tr.T("", "help", nil))
}
