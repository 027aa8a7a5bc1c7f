package specification

import "gorm.io/gorm"

type ByID struct {
	ID int64
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByIDs struct {
	IDs []int64
}

func (s ByIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id IN ?", s.IDs)
}

type OrderByCreatedAtDesc struct{}

func (s OrderByCreatedAtDesc) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
