package contract

import (
	"context"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/repository/specification"
)

// FindOne and FindAll preload the note's ratings; ranking and rating upserts
// depend on them being present.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
