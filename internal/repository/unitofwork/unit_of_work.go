package unitofwork

import (
	"context"

	"studysnap-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ClassroomRepository() contract.ClassroomRepository
	ClassroomUserRepository() contract.ClassroomUserRepository
	NoteRepository() contract.NoteRepository
	RatingRepository() contract.RatingRepository
}
