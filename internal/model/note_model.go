package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Note struct {
	Id               int64                       `gorm:"primaryKey;autoIncrement"`
	Title            string                      `gorm:"type:text;not null"`
	Keywords         datatypes.JSONSlice[string] `gorm:"not null"`
	ShortDescription string                      `gorm:"type:text"`
	NoteAbstract     string                      `gorm:"type:text"`
	FileUri          string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	NoteCDN          string                      `gorm:"type:text"`
	TimeLength       int
	BibtextCitation  *string   `gorm:"type:text"`
	ClassId          uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorId         int64     `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`

	Ratings []Rating `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
