package specification

import "gorm.io/gorm"

type RatingForNote struct {
	NoteID int64
}

func (s RatingForNote) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_id = ?", s.NoteID)
}

type RatingByUser struct {
	UserID int64
}

func (s RatingByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
