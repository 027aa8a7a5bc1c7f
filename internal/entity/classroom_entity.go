package entity

import (
	"time"

	"github.com/google/uuid"
)

type Classroom struct {
	Id           uuid.UUID
	Name         string
	OwnerId      int64
	ThumbnailUri string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClassroomUser is the membership edge between a classroom and a user.
// The owner's edge exists from classroom creation until classroom deletion.
type ClassroomUser struct {
	Id        int64
	ClassId   uuid.UUID
	UserId    int64
	CreatedAt time.Time
}
