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

type RatingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RatingMapper
}

func NewRatingRepository(db *gorm.DB) contract.RatingRepository {
	return &RatingRepositoryImpl{
		db:     db,
		mapper: mapper.NewRatingMapper(),
	}
}

func (r *RatingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RatingRepositoryImpl) Create(ctx context.Context, rating *entity.Rating) error {
	m := r.mapper.ToModel(rating)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rating = *r.mapper.ToEntity(m)
	return nil
}

func (r *RatingRepositoryImpl) Update(ctx context.Context, rating *entity.Rating) error {
	m := r.mapper.ToModel(rating)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*rating = *r.mapper.ToEntity(m)
	return nil
}

func (r *RatingRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Rating{}, id).Error
}

func (r *RatingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rating, error) {
	var m model.Rating
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RatingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	var models []*model.Rating
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RatingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Rating{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
