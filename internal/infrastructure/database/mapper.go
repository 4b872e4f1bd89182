package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/infrastructure/database/queries"
)

// pgDateToTime returns the calendar date at UTC midnight, or zero time when
// the column is NULL.
func pgDateToTime(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

func eventToDomain(e queries.Event) entities.Event {
	return entities.Event{
		ID:      e.ID,
		Title:   e.Title,
		Date:    pgDateToTime(e.Date),
		OwnerID: e.CreatorID,
	}
}

func participantToDomain(p queries.Participant) entities.Participant {
	return entities.Participant{
		ID:      p.ID,
		EventID: p.EventID,
		Name:    p.Username,
	}
}

func participantsToDomain(rows []queries.Participant) []entities.Participant {
	out := make([]entities.Participant, len(rows))
	for i := range rows {
		out[i] = participantToDomain(rows[i])
	}
	return out
}
