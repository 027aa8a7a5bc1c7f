package service

import (
	"context"
	"path"

	"github.com/google/uuid"

	"studysnap-be/internal/dto"
	"studysnap-be/internal/entity"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/logger"
	"studysnap-be/internal/repository/specification"
	"studysnap-be/internal/repository/unitofwork"
)

type IClassroomService interface {
	CreateClassroom(ctx context.Context, name string, ownerId int64, thumbnailUri string) (*entity.Classroom, error)
	GetAvailableClassrooms(ctx context.Context) ([]*entity.Classroom, error)
	GetClassroomWithID(ctx context.Context, classId uuid.UUID) (*entity.Classroom, error)
	UserInClass(ctx context.Context, classId uuid.UUID, userId int64) (bool, error)
	GetClassroomUsers(ctx context.Context, classId uuid.UUID, userId int64) ([]*entity.User, error)
	GetClassroomNotes(ctx context.Context, classId uuid.UUID, userId int64) ([]*entity.Note, error)
	GetTopClassroomNotesByRating(ctx context.Context, userId int64, classId uuid.UUID) ([]*entity.Note, error)
	UpdateClassroom(ctx context.Context, classId uuid.UUID, ownerId int64, data dto.UpdateClassroomData) (*entity.Classroom, error)
	DeleteClassroom(ctx context.Context, classId uuid.UUID, ownerId int64) error
	AddUserToClassroom(ctx context.Context, classId uuid.UUID, userId int64) (*entity.ClassroomUser, error)
	RemUserFromClassroom(ctx context.Context, classId uuid.UUID, userId int64) error
}

type classroomService struct {
	uowFactory   unitofwork.RepositoryFactory
	files        IFilesService
	search       ISearchIndexService
	defaultThumb string
	log          logger.ILogger
}

func NewClassroomService(
	uowFactory unitofwork.RepositoryFactory,
	files IFilesService,
	search ISearchIndexService,
	defaultThumbnailUri string,
	log logger.ILogger,
) IClassroomService {
	return &classroomService{
		uowFactory:   uowFactory,
		files:        files,
		search:       search,
		defaultThumb: defaultThumbnailUri,
		log:          log,
	}
}

// CreateClassroom verifies the thumbnail actually exists in the image space
// before inserting the row, then bootstraps the owner as the first member.
// If the membership insert fails the classroom (and a non-default thumbnail)
// are rolled back so no ownerless classroom survives.
func (s *classroomService) CreateClassroom(ctx context.Context, name string, ownerId int64, thumbnailUri string) (*entity.Classroom, error) {
	if thumbnailUri == "" {
		thumbnailUri = s.defaultThumb
	}

	exists, err := s.files.RemoteFileExists(ctx, SpaceImages, thumbnailUri)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("thumbnail %s was not found in storage", thumbnailUri)
	}
	if !s.files.IsValidFileType(SpaceImages, thumbnailUri) {
		return nil, apperrors.NewBadRequest("thumbnail %s is not an accepted image type", thumbnailUri)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	classroom := &entity.Classroom{
		Id:           uuid.New(),
		Name:         name,
		OwnerId:      ownerId,
		ThumbnailUri: s.files.CDNUrl(SpaceImages, thumbnailUri),
	}
	if err := uow.ClassroomRepository().Create(ctx, classroom); err != nil {
		return nil, apperrors.NewInternal("could not create classroom: %v", err)
	}

	if _, err := s.AddUserToClassroom(ctx, classroom.Id, ownerId); err != nil {
		if delErr := uow.ClassroomRepository().Delete(ctx, classroom.Id); delErr != nil {
			s.log.Warn("classroom-service", "orphaned classroom row after failed owner join", map[string]interface{}{
				"classId": classroom.Id.String(),
				"error":   delErr.Error(),
			})
		}
		s.deleteThumbnail(ctx, classroom.ThumbnailUri)
		return nil, apperrors.NewInternal("could not enroll owner into classroom: %v", err)
	}

	return classroom, nil
}

func (s *classroomService) GetAvailableClassrooms(ctx context.Context) ([]*entity.Classroom, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classrooms, err := uow.ClassroomRepository().FindAll(ctx, specification.OrderByCreatedAtDesc{})
	if err != nil {
		return nil, apperrors.NewInternal("could not list classrooms: %v", err)
	}
	if len(classrooms) == 0 {
		return nil, apperrors.NewNotFound("no classrooms exist yet")
	}

	return classrooms, nil
}

func (s *classroomService) GetClassroomWithID(ctx context.Context, classId uuid.UUID) (*entity.Classroom, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classroom, err := uow.ClassroomRepository().FindOne(ctx, specification.ByClassroomID{ClassroomID: classId})
	if err != nil {
		return nil, apperrors.NewInternal("could not load classroom %s: %v", classId, err)
	}
	if classroom == nil {
		return nil, apperrors.NewNotFound("classroom %s does not exist", classId)
	}

	return classroom, nil
}

// UserInClass reports whether the membership edge exists. A missing classroom
// is an error, not a false.
func (s *classroomService) UserInClass(ctx context.Context, classId uuid.UUID, userId int64) (bool, error) {
	if _, err := s.GetClassroomWithID(ctx, classId); err != nil {
		return false, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.ClassroomUserRepository().Count(ctx,
		specification.MemberOfClass{ClassID: classId},
		specification.MemberUser{UserID: userId},
	)
	if err != nil {
		return false, apperrors.NewInternal("could not check membership: %v", err)
	}

	return count > 0, nil
}

func (s *classroomService) requireMember(ctx context.Context, classId uuid.UUID, userId int64) error {
	member, err := s.UserInClass(ctx, classId, userId)
	if err != nil {
		return err
	}
	if !member {
		return apperrors.NewForbidden("user %d is not a member of classroom %s", userId, classId)
	}
	return nil
}

func (s *classroomService) GetClassroomUsers(ctx context.Context, classId uuid.UUID, userId int64) ([]*entity.User, error) {
	if err := s.requireMember(ctx, classId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	edges, err := uow.ClassroomUserRepository().FindAll(ctx, specification.MemberOfClass{ClassID: classId})
	if err != nil {
		return nil, apperrors.NewInternal("could not list classroom members: %v", err)
	}

	userIds := make([]int64, 0, len(edges))
	for _, edge := range edges {
		userIds = append(userIds, edge.UserId)
	}

	users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIds})
	if err != nil {
		return nil, apperrors.NewInternal("could not load classroom members: %v", err)
	}
	if len(users) == 0 {
		return nil, apperrors.NewNotFound("classroom %s has no members", classId)
	}

	return users, nil
}

func (s *classroomService) GetClassroomNotes(ctx context.Context, classId uuid.UUID, userId int64) ([]*entity.Note, error) {
	if err := s.requireMember(ctx, classId, userId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.NoteInClass{ClassID: classId})
	if err != nil {
		return nil, apperrors.NewInternal("could not list classroom notes: %v", err)
	}
	if len(notes) == 0 {
		return nil, apperrors.NewNotFound("classroom %s has no notes", classId)
	}

	return notes, nil
}

func (s *classroomService) GetTopClassroomNotesByRating(ctx context.Context, userId int64, classId uuid.UUID) ([]*entity.Note, error) {
	notes, err := s.GetClassroomNotes(ctx, classId, userId)
	if err != nil {
		return nil, err
	}

	sortNotesByCombinedFeatures(notes)
	return notes, nil
}

func (s *classroomService) UpdateClassroom(ctx context.Context, classId uuid.UUID, ownerId int64, data dto.UpdateClassroomData) (*entity.Classroom, error) {
	classroom, err := s.GetClassroomWithID(ctx, classId)
	if err != nil {
		return nil, err
	}
	if classroom.OwnerId != ownerId {
		return nil, apperrors.NewForbidden("only the owner may update classroom %s", classId)
	}

	if data.Name != nil {
		classroom.Name = *data.Name
	}
	if data.ThumbnailUri != nil {
		s.deleteThumbnail(ctx, classroom.ThumbnailUri)
		classroom.ThumbnailUri = s.files.CDNUrl(SpaceImages, *data.ThumbnailUri)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ClassroomRepository().Update(ctx, classroom); err != nil {
		return nil, apperrors.NewInternal("could not update classroom %s: %v", classId, err)
	}

	return classroom, nil
}

// DeleteClassroom tears down everything the classroom owns: each note's
// search index entry and stored file, the thumbnail, then the row itself.
// Memberships, notes and ratings go with the row via cascade.
func (s *classroomService) DeleteClassroom(ctx context.Context, classId uuid.UUID, ownerId int64) error {
	classroom, err := s.GetClassroomWithID(ctx, classId)
	if err != nil {
		return err
	}
	if classroom.OwnerId != ownerId {
		return apperrors.NewForbidden("only the owner may delete classroom %s", classId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx, specification.NoteInClass{ClassID: classId})
	if err != nil {
		return apperrors.NewInternal("could not list notes of classroom %s: %v", classId, err)
	}

	for _, note := range notes {
		if err := s.search.DeleteNoteWithID(ctx, note.Id); err != nil {
			return err
		}
		if err := s.files.DeleteFileWithID(ctx, SpaceNotes, note.FileUri); err != nil {
			return err
		}
	}

	s.deleteThumbnail(ctx, classroom.ThumbnailUri)

	if err := uow.ClassroomRepository().Delete(ctx, classId); err != nil {
		return apperrors.NewInternal("could not delete classroom %s: %v", classId, err)
	}

	return nil
}

func (s *classroomService) AddUserToClassroom(ctx context.Context, classId uuid.UUID, userId int64) (*entity.ClassroomUser, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	edge := &entity.ClassroomUser{
		ClassId: classId,
		UserId:  userId,
	}
	if err := uow.ClassroomUserRepository().Create(ctx, edge); err != nil {
		return nil, apperrors.NewInternal("could not add user %d to classroom %s: %v", userId, classId, err)
	}

	return edge, nil
}

func (s *classroomService) RemUserFromClassroom(ctx context.Context, classId uuid.UUID, userId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	edge, err := uow.ClassroomUserRepository().FindOne(ctx,
		specification.MemberOfClass{ClassID: classId},
		specification.MemberUser{UserID: userId},
	)
	if err != nil {
		return apperrors.NewInternal("could not look up membership: %v", err)
	}
	if edge == nil {
		return apperrors.NewInternal("user %d is not a member of classroom %s", userId, classId)
	}

	if err := uow.ClassroomUserRepository().Delete(ctx, edge.Id); err != nil {
		return apperrors.NewInternal("could not remove user %d from classroom %s: %v", userId, classId, err)
	}

	return nil
}

// deleteThumbnail is best-effort cleanup. The stored value is the full CDN
// address, so the object key is its last path segment. The shared default
// thumbnail is never deleted.
func (s *classroomService) deleteThumbnail(ctx context.Context, thumbnailUri string) {
	key := path.Base(thumbnailUri)
	if key == s.defaultThumb || key == "" || key == "." {
		return
	}

	if err := s.files.DeleteFileWithID(ctx, SpaceImages, key); err != nil {
		s.log.Warn("classroom-service", "could not delete classroom thumbnail", map[string]interface{}{
			"thumbnail": key,
			"error":     err.Error(),
		})
	}
}
