package entity

import (
	"time"
)

type Rating struct {
	Id        int64
	Value     int
	NoteId    int64
	UserId    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
