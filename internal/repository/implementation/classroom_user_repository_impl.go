package implementation

import (
	"context"
	"errors"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/mapper"
	"studysnap-be/internal/model"
	"studysnap-be/internal/repository/contract"
	"studysnap-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ClassroomUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClassroomUserMapper
}

func NewClassroomUserRepository(db *gorm.DB) contract.ClassroomUserRepository {
	return &ClassroomUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewClassroomUserMapper(),
	}
}

func (r *ClassroomUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClassroomUserRepositoryImpl) Create(ctx context.Context, edge *entity.ClassroomUser) error {
	m := r.mapper.ToModel(edge)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*edge = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClassroomUserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.ClassroomUser{}, id).Error
}

func (r *ClassroomUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomUser, error) {
	var m model.ClassroomUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClassroomUserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomUser, error) {
	var models []*model.ClassroomUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClassroomUserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ClassroomUser{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
