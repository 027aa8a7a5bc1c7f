package contract

import (
	"context"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClassroomRepository interface {
	Create(ctx context.Context, classroom *entity.Classroom) error
	Update(ctx context.Context, classroom *entity.Classroom) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Classroom, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Classroom, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ClassroomUserRepository interface {
	Create(ctx context.Context, edge *entity.ClassroomUser) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomUser, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomUser, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
