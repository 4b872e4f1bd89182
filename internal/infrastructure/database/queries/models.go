package queries

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Event struct {
	ID        int64
	Title     string
	Date      pgtype.Date
	CreatorID int64
}

type Participant struct {
	ID       int64
	EventID  int64
	Username string
}
