package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByClassroomID struct {
	ClassroomID uuid.UUID
}

func (s ByClassroomID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ClassroomID)
}

// Membership edge predicates (classrooms_users).

type MemberOfClass struct {
	ClassID uuid.UUID
}

func (s MemberOfClass) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_id = ?", s.ClassID)
}

type MemberUser struct {
	UserID int64
}

func (s MemberUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
