package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id               int64
	Title            string
	Keywords         []string
	ShortDescription string
	NoteAbstract     string
	FileUri          string
	NoteCDN          string
	TimeLength       int
	BibtextCitation  *string
	ClassId          uuid.UUID
	AuthorId         int64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Loaded alongside the note; needed by ranking and rating upserts.
	Ratings []*Rating
}
