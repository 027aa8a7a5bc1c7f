package service

import (
	"context"

	"github.com/google/uuid"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/repository/specification"
	"studysnap-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetUserWithID(ctx context.Context, id int64) (*entity.User, error)
	GetUserClassrooms(ctx context.Context, id int64) ([]*entity.Classroom, error)
	GetUserNotes(ctx context.Context, id int64) ([]*entity.Note, error)
	JoinClassroom(ctx context.Context, userId int64, classId uuid.UUID) error
	LeaveClassroom(ctx context.Context, userId int64, classId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	classrooms IClassroomService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, classrooms IClassroomService) IUserService {
	return &userService{
		uowFactory: uowFactory,
		classrooms: classrooms,
	}
}

func (s *userService) GetUserWithID(ctx context.Context, id int64) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.NewInternal("could not load user %d: %v", id, err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user %d does not exist", id)
	}

	return user, nil
}

func (s *userService) GetUserClassrooms(ctx context.Context, id int64) ([]*entity.Classroom, error) {
	if _, err := s.GetUserWithID(ctx, id); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	edges, err := uow.ClassroomUserRepository().FindAll(ctx, specification.MemberUser{UserID: id})
	if err != nil {
		return nil, apperrors.NewInternal("could not list memberships of user %d: %v", id, err)
	}
	if len(edges) == 0 {
		return nil, apperrors.NewNotFound("user %d is not a member of any classroom", id)
	}

	classrooms := make([]*entity.Classroom, 0, len(edges))
	for _, edge := range edges {
		classroom, err := s.classrooms.GetClassroomWithID(ctx, edge.ClassId)
		if err != nil {
			return nil, err
		}
		classrooms = append(classrooms, classroom)
	}

	return classrooms, nil
}

func (s *userService) GetUserNotes(ctx context.Context, id int64) ([]*entity.Note, error) {
	if _, err := s.GetUserWithID(ctx, id); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.NoteAuthoredBy{AuthorID: id},
		specification.OrderByCreatedAtDesc{},
	)
	if err != nil {
		return nil, apperrors.NewInternal("could not list notes of user %d: %v", id, err)
	}
	if len(notes) == 0 {
		return nil, apperrors.NewNotFound("user %d has not uploaded any notes", id)
	}

	return notes, nil
}

func (s *userService) JoinClassroom(ctx context.Context, userId int64, classId uuid.UUID) error {
	if _, err := s.GetUserWithID(ctx, userId); err != nil {
		return err
	}

	member, err := s.classrooms.UserInClass(ctx, classId, userId)
	if err != nil {
		return err
	}
	if member {
		return apperrors.NewInternal("user %d is already a member of classroom %s", userId, classId)
	}

	edge, err := s.classrooms.AddUserToClassroom(ctx, classId, userId)
	if err != nil {
		return err
	}
	if edge.UserId != userId {
		return apperrors.NewInternal("membership edge was created for the wrong user")
	}

	return nil
}

// LeaveClassroom removes the caller's membership. An owner cannot leave their
// own classroom without dissolving it, so the owner path deletes the
// classroom outright.
func (s *userService) LeaveClassroom(ctx context.Context, userId int64, classId uuid.UUID) error {
	if _, err := s.GetUserWithID(ctx, userId); err != nil {
		return err
	}

	classroom, err := s.classrooms.GetClassroomWithID(ctx, classId)
	if err != nil {
		return err
	}

	if classroom.OwnerId == userId {
		return s.classrooms.DeleteClassroom(ctx, classId, userId)
	}

	return s.classrooms.RemUserFromClassroom(ctx, classId, userId)
}
