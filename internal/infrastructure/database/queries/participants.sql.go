package queries

import (
	"context"
)

const createParticipant = `-- name: CreateParticipant :one
INSERT INTO participants (event_id, username)
VALUES ($1, $2)
RETURNING id, event_id, username
`

type CreateParticipantParams struct {
	EventID  int64
	Username string
}

func (q *Queries) CreateParticipant(ctx context.Context, arg CreateParticipantParams) (Participant, error) {
	row := q.db.QueryRow(ctx, createParticipant, arg.EventID, arg.Username)
	var i Participant
	err := row.Scan(&i.ID, &i.EventID, &i.Username)
	return i, err
}

const getParticipantsByEventID = `-- name: GetParticipantsByEventID :many
SELECT id, event_id, username FROM participants
WHERE event_id = $1
ORDER BY id
`

func (q *Queries) GetParticipantsByEventID(ctx context.Context, eventID int64) ([]Participant, error) {
	rows, err := q.db.Query(ctx, getParticipantsByEventID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Participant{}
	for rows.Next() {
		var i Participant
		if err := rows.Scan(&i.ID, &i.EventID, &i.Username); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteParticipantFromEvent = `-- name: DeleteParticipantFromEvent :execrows
DELETE FROM participants
WHERE id = $1 AND event_id = $2
`

type DeleteParticipantFromEventParams struct {
	ID      int64
	EventID int64
}

func (q *Queries) DeleteParticipantFromEvent(ctx context.Context, arg DeleteParticipantFromEventParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteParticipantFromEvent, arg.ID, arg.EventID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
