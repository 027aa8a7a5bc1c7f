package implementation

import (
	"context"
	"errors"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/mapper"
	"studysnap-be/internal/model"
	"studysnap-be/internal/repository/contract"
	"studysnap-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClassroomMapper
}

func NewClassroomRepository(db *gorm.DB) contract.ClassroomRepository {
	return &ClassroomRepositoryImpl{
		db:     db,
		mapper: mapper.NewClassroomMapper(),
	}
}

func (r *ClassroomRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClassroomRepositoryImpl) Create(ctx context.Context, classroom *entity.Classroom) error {
	m := r.mapper.ToModel(classroom)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*classroom = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClassroomRepositoryImpl) Update(ctx context.Context, classroom *entity.Classroom) error {
	m := r.mapper.ToModel(classroom)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*classroom = *r.mapper.ToEntity(m)
	return nil
}

func (r *ClassroomRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Classroom{}, "id = ?", id).Error
}

func (r *ClassroomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Classroom, error) {
	var m model.Classroom
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClassroomRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Classroom, error) {
	var models []*model.Classroom
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClassroomRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Classroom{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
