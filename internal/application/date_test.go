package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterbot/internal/application"
	"rosterbot/internal/domain"
)

func TestParseEventDate(t *testing.T) {
	got, err := application.ParseEventDate("31/12/2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "31/12/2025", application.FormatEventDate(got))
}

func TestParseEventDate_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"2025-12-31",
		"31-12-2025",
		"31.12.2025",
		"12/31/2025",
		"1/1/2025",
		"31/02/2025",
		" 31/12/2025",
		"31/12/2025 ",
		"tomorrow",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := application.ParseEventDate(in)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}
