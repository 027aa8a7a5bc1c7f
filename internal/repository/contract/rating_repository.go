package contract

import (
	"context"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/repository/specification"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rating, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
