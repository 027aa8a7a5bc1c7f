package service

import (
	"context"

	"github.com/google/uuid"

	"studysnap-be/internal/dto"
	"studysnap-be/internal/entity"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/pkg/logger"
	"studysnap-be/internal/repository/specification"
	"studysnap-be/internal/repository/unitofwork"
)

type INotesService interface {
	CreateNoteWithFile(ctx context.Context, req *dto.CreateNoteRequest, authorId int64) (*entity.Note, error)
	GetNoteWithID(ctx context.Context, id, userId int64, classId *uuid.UUID) (*entity.Note, error)
	GetNotesUsingES(ctx context.Context, userId int64, searchType string, query map[string]interface{}, classId uuid.UUID) ([]*entity.Note, error)
	AddOrUpdateRating(ctx context.Context, noteId, userId int64, value int) (*entity.Note, error)
	GetAverageRating(ctx context.Context, noteId, userId int64) (int, error)
	UpdateNoteWithID(ctx context.Context, userId, id int64, data dto.UpdateNoteData) (*entity.Note, error)
	DeleteNoteWithID(ctx context.Context, userId, id int64) error
}

type notesService struct {
	uowFactory unitofwork.RepositoryFactory
	classrooms IClassroomService
	files      IFilesService
	search     ISearchIndexService
	ratings    IRatingsService
	log        logger.ILogger
}

func NewNotesService(
	uowFactory unitofwork.RepositoryFactory,
	classrooms IClassroomService,
	files IFilesService,
	search ISearchIndexService,
	ratings IRatingsService,
	log logger.ILogger,
) INotesService {
	return &notesService{
		uowFactory: uowFactory,
		classrooms: classrooms,
		files:      files,
		search:     search,
		ratings:    ratings,
		log:        log,
	}
}

// CreateNoteWithFile turns an already-uploaded file into a note row. The
// abstract, read time and CDN address are derived here, never supplied by the
// client. Every failure after the upload deletes the stored file again so a
// rejected request leaves nothing behind.
func (s *notesService) CreateNoteWithFile(ctx context.Context, req *dto.CreateNoteRequest, authorId int64) (*entity.Note, error) {
	member, err := s.classrooms.UserInClass(ctx, req.ClassId, authorId)
	if err != nil {
		return nil, err
	}

	exists, err := s.files.RemoteFileExists(ctx, SpaceNotes, req.FileUri)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("file %s was not found in storage", req.FileUri)
	}
	if !s.files.IsValidFileType(SpaceNotes, req.FileUri) {
		return nil, apperrors.NewBadRequest("file %s is not an accepted note document", req.FileUri)
	}
	if !member {
		s.deleteFile(ctx, req.FileUri)
		return nil, apperrors.NewForbidden("user %d is not a member of classroom %s", authorId, req.ClassId)
	}

	body, err := s.files.ExtractBodyFromFile(ctx, req.FileUri)
	if err != nil {
		s.deleteFile(ctx, req.FileUri)
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The file_uri column is unique; catch a double-submit before the insert
	// so the client gets a clean rejection instead of a constraint error.
	taken, err := uow.NoteRepository().FindOne(ctx, specification.ByFileUri{FileUri: req.FileUri})
	if err != nil {
		return nil, apperrors.NewInternal("could not check file %s: %v", req.FileUri, err)
	}
	if taken != nil {
		return nil, apperrors.NewBadRequest("file %s is already attached to a note", req.FileUri)
	}

	note := &entity.Note{
		Title:            req.Title,
		Keywords:         req.Keywords,
		ShortDescription: req.ShortDescription,
		NoteAbstract:     createNoteAbstract(body),
		FileUri:          req.FileUri,
		NoteCDN:          s.files.CDNUrl(SpaceNotes, req.FileUri),
		TimeLength:       calculateReadTimeMinutes(body),
		BibtextCitation:  req.BibtextCitation,
		ClassId:          req.ClassId,
		AuthorId:         authorId,
	}
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		s.deleteFile(ctx, req.FileUri)
		return nil, apperrors.NewInternal("could not create note: %v", err)
	}

	return note, nil
}

// GetNoteWithID loads a note with its ratings and enforces classroom
// membership of the caller. A non-nil classId additionally pins the note to
// that classroom.
func (s *notesService) GetNoteWithID(ctx context.Context, id, userId int64, classId *uuid.UUID) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.ByID{ID: id}}
	if classId != nil {
		specs = append(specs, specification.NoteInClass{ClassID: *classId})
	}

	note, err := uow.NoteRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, apperrors.NewInternal("could not load note %d: %v", id, err)
	}
	if note == nil {
		return nil, apperrors.NewNotFound("note %d does not exist", id)
	}

	member, err := s.classrooms.UserInClass(ctx, note.ClassId, userId)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.NewForbidden("user %d is not a member of classroom %s", userId, note.ClassId)
	}

	return note, nil
}

// GetNotesUsingES resolves a search against the note index into database
// rows, scoped to one classroom. Index hits that no longer resolve to a row
// in that classroom are dropped; the index is eventually consistent with the
// table. The surviving notes are ranked by combined recency and rating
// weight, not by index score.
func (s *notesService) GetNotesUsingES(ctx context.Context, userId int64, searchType string, query map[string]interface{}, classId uuid.UUID) ([]*entity.Note, error) {
	member, err := s.classrooms.UserInClass(ctx, classId, userId)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, apperrors.NewForbidden("user %d is not a member of classroom %s", userId, classId)
	}

	ids, err := s.search.SearchNotesForQuery(ctx, searchType, query)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.NoteRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.NoteInClass{ClassID: classId},
	)
	if err != nil {
		return nil, apperrors.NewInternal("could not load searched notes: %v", err)
	}

	byId := make(map[int64]*entity.Note, len(rows))
	for _, row := range rows {
		byId[row.Id] = row
	}

	notes := make([]*entity.Note, 0, len(ids))
	for _, id := range ids {
		if note, ok := byId[id]; ok {
			notes = append(notes, note)
		}
	}

	if dropped := len(ids) - len(notes); dropped > 0 {
		s.log.Debug("notes-service", "search hits without matching rows were dropped", map[string]interface{}{
			"classId": classId.String(),
			"dropped": dropped,
		})
	}

	if len(notes) == 0 {
		return nil, apperrors.NewNotFound("no notes matched the query in classroom %s", classId)
	}

	sortNotesByCombinedFeatures(notes)
	return notes, nil
}

// AddOrUpdateRating upserts the caller's rating of a note. A user holds at
// most one rating per note; a repeat rating replaces the previous value
// instead of stacking.
func (s *notesService) AddOrUpdateRating(ctx context.Context, noteId, userId int64, value int) (*entity.Note, error) {
	if _, err := s.GetNoteWithID(ctx, noteId, userId, nil); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.RatingRepository().FindOne(ctx,
		specification.RatingForNote{NoteID: noteId},
		specification.RatingByUser{UserID: userId},
	)
	if err != nil {
		return nil, apperrors.NewInternal("could not look up existing rating: %v", err)
	}

	if existing == nil {
		_, err = s.ratings.AddRating(ctx, value, userId, noteId)
	} else {
		_, err = s.ratings.UpdateRating(ctx, existing.Id, value)
	}
	if err != nil {
		return nil, err
	}

	return s.GetNoteWithID(ctx, noteId, userId, nil)
}

// GetAverageRating floors the mean rating value. An unrated note averages to
// zero.
func (s *notesService) GetAverageRating(ctx context.Context, noteId, userId int64) (int, error) {
	note, err := s.GetNoteWithID(ctx, noteId, userId, nil)
	if err != nil {
		return 0, err
	}
	if len(note.Ratings) == 0 {
		return 0, nil
	}

	total := 0
	for _, r := range note.Ratings {
		total += r.Value
	}

	return total / len(note.Ratings), nil
}

// UpdateNoteWithID patches note metadata. Only the author may update.
// Replacing the file deletes the old object and repoints the CDN address;
// the abstract and read time keep describing the original upload.
func (s *notesService) UpdateNoteWithID(ctx context.Context, userId, id int64, data dto.UpdateNoteData) (*entity.Note, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.NewInternal("could not load note %d: %v", id, err)
	}
	if note == nil {
		return nil, apperrors.NewNotFound("note %d does not exist", id)
	}
	if note.AuthorId != userId {
		return nil, apperrors.NewForbidden("only the author may update note %d", id)
	}

	if data.Title != nil {
		note.Title = *data.Title
	}
	if data.Keywords != nil {
		note.Keywords = data.Keywords
	}
	if data.ShortDescription != nil {
		note.ShortDescription = *data.ShortDescription
	}
	if data.BibtextCitation != nil {
		note.BibtextCitation = data.BibtextCitation
	}
	if data.FileUri != nil {
		s.deleteFile(ctx, note.FileUri)
		note.FileUri = *data.FileUri
		note.NoteCDN = s.files.CDNUrl(SpaceNotes, *data.FileUri)
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperrors.NewInternal("could not update note %d: %v", id, err)
	}

	return note, nil
}

// DeleteNoteWithID removes the note everywhere it lives: the search index
// entry first, then the stored file, then the row with its ratings.
func (s *notesService) DeleteNoteWithID(ctx context.Context, userId, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.NewInternal("could not load note %d: %v", id, err)
	}
	if note == nil {
		return apperrors.NewNotFound("note %d does not exist", id)
	}
	if note.AuthorId != userId {
		return apperrors.NewForbidden("only the author may delete note %d", id)
	}

	if err := s.search.DeleteNoteWithID(ctx, id); err != nil {
		return err
	}
	if err := s.files.DeleteFileWithID(ctx, SpaceNotes, note.FileUri); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return apperrors.NewInternal("could not delete note %d: %v", id, err)
	}

	return nil
}

func (s *notesService) deleteFile(ctx context.Context, fileUri string) {
	if err := s.files.DeleteFileWithID(ctx, SpaceNotes, fileUri); err != nil {
		s.log.Warn("notes-service", "could not clean up stored note file", map[string]interface{}{
			"fileUri": fileUri,
			"error":   err.Error(),
		})
	}
}
