package contract

import (
	"context"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/repository/specification"
)

// Users are provisioned by the external registration service; Create exists
// for seeding and tests only.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
