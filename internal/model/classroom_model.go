package model

import (
	"time"

	"github.com/google/uuid"
)

type Classroom struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	OwnerId      int64     `gorm:"not null;index"`
	ThumbnailUri string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Notes []Note          `gorm:"foreignKey:ClassId;constraint:OnDelete:CASCADE"`
	Users []ClassroomUser `gorm:"foreignKey:ClassId;constraint:OnDelete:CASCADE"`
}

func (Classroom) TableName() string {
	return "classrooms"
}

type ClassroomUser struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	ClassId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_class_user"`
	UserId    int64     `gorm:"not null;uniqueIndex:idx_class_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ClassroomUser) TableName() string {
	return "classrooms_users"
}
