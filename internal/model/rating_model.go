package model

import (
	"time"
)

// No uniqueness constraint on (note_id, user_id): the one-rating-per-user
// rule is enforced by the note service's find-then-update-or-insert flow.
type Rating struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Value     int       `gorm:"not null"`
	NoteId    int64     `gorm:"not null;index"`
	UserId    int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Rating) TableName() string {
	return "ratings"
}
