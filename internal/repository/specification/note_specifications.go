package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteInClass struct {
	ClassID uuid.UUID
}

func (s NoteInClass) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_id = ?", s.ClassID)
}

type NoteAuthoredBy struct {
	AuthorID int64
}

func (s NoteAuthoredBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("author_id = ?", s.AuthorID)
}

type ByFileUri struct {
	FileUri string
}

func (s ByFileUri) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("file_uri = ?", s.FileUri)
}
