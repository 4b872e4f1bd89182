package queries

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createEvent = `-- name: CreateEvent :one
INSERT INTO events (title, date, creator_id)
VALUES ($1, $2, $3)
RETURNING id, title, date, creator_id
`

type CreateEventParams struct {
	Title     string
	Date      pgtype.Date
	CreatorID int64
}

func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (Event, error) {
	row := q.db.QueryRow(ctx, createEvent, arg.Title, arg.Date, arg.CreatorID)
	var i Event
	err := row.Scan(&i.ID, &i.Title, &i.Date, &i.CreatorID)
	return i, err
}

const getEventByID = `-- name: GetEventByID :one
SELECT id, title, date, creator_id FROM events
WHERE id = $1
`

func (q *Queries) GetEventByID(ctx context.Context, id int64) (Event, error) {
	row := q.db.QueryRow(ctx, getEventByID, id)
	var i Event
	err := row.Scan(&i.ID, &i.Title, &i.Date, &i.CreatorID)
	return i, err
}

const getEventsByCreatorID = `-- name: GetEventsByCreatorID :many
SELECT id, title, date, creator_id FROM events
WHERE creator_id = $1
ORDER BY id
`

func (q *Queries) GetEventsByCreatorID(ctx context.Context, creatorID int64) ([]Event, error) {
	rows, err := q.db.Query(ctx, getEventsByCreatorID, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Event{}
	for rows.Next() {
		var i Event
		if err := rows.Scan(&i.ID, &i.Title, &i.Date, &i.CreatorID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteEventByCreator = `-- name: DeleteEventByCreator :execrows
DELETE FROM events
WHERE id = $1 AND creator_id = $2
`

type DeleteEventByCreatorParams struct {
	ID        int64
	CreatorID int64
}

func (q *Queries) DeleteEventByCreator(ctx context.Context, arg DeleteEventByCreatorParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteEventByCreator, arg.ID, arg.CreatorID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
