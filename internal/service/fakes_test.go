package service

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/repository/contract"
	"studysnap-be/internal/repository/specification"
	"studysnap-be/internal/repository/unitofwork"
)

// memStore is an in-memory stand-in for the database. The fake repositories
// interpret the same specification structs the gorm implementations do, so
// services run unchanged against it.
type memStore struct {
	users      map[int64]*entity.User
	classrooms map[uuid.UUID]*entity.Classroom
	edges      map[int64]*entity.ClassroomUser
	notes      map[int64]*entity.Note
	ratings    map[int64]*entity.Rating
	nextId     int64

	failEdgeCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]*entity.User{},
		classrooms: map[uuid.UUID]*entity.Classroom{},
		edges:      map[int64]*entity.ClassroomUser{},
		notes:      map[int64]*entity.Note{},
		ratings:    map[int64]*entity.Rating{},
	}
}

func (s *memStore) id() int64 {
	s.nextId++
	return s.nextId
}

type memFactory struct {
	store *memStore
}

func newMemFactory(store *memStore) unitofwork.RepositoryFactory {
	return &memFactory{store: store}
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUow{store: f.store}
}

type memUow struct {
	store *memStore
}

func (u *memUow) Begin(ctx context.Context) error { return nil }
func (u *memUow) Commit() error                   { return nil }
func (u *memUow) Rollback() error                 { return nil }

func (u *memUow) UserRepository() contract.UserRepository {
	return &memUserRepo{store: u.store}
}

func (u *memUow) ClassroomRepository() contract.ClassroomRepository {
	return &memClassroomRepo{store: u.store}
}

func (u *memUow) ClassroomUserRepository() contract.ClassroomUserRepository {
	return &memEdgeRepo{store: u.store}
}

func (u *memUow) NoteRepository() contract.NoteRepository {
	return &memNoteRepo{store: u.store}
}

func (u *memUow) RatingRepository() contract.RatingRepository {
	return &memRatingRepo{store: u.store}
}

// Users

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.Id == 0 {
		user.Id = r.store.id()
	}
	r.store.users[user.Id] = user
	return nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsId(s.IDs, u.Id) {
				return false
			}
		}
	}
	return true
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *memUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Classrooms

type memClassroomRepo struct {
	store *memStore
}

func (r *memClassroomRepo) Create(ctx context.Context, classroom *entity.Classroom) error {
	r.store.classrooms[classroom.Id] = classroom
	return nil
}

func (r *memClassroomRepo) Update(ctx context.Context, classroom *entity.Classroom) error {
	r.store.classrooms[classroom.Id] = classroom
	return nil
}

func (r *memClassroomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.classrooms, id)
	for edgeId, edge := range r.store.edges {
		if edge.ClassId == id {
			delete(r.store.edges, edgeId)
		}
	}
	for noteId, note := range r.store.notes {
		if note.ClassId == id {
			delete(r.store.notes, noteId)
			for ratingId, rating := range r.store.ratings {
				if rating.NoteId == noteId {
					delete(r.store.ratings, ratingId)
				}
			}
		}
	}
	return nil
}

func classroomMatches(c *entity.Classroom, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByClassroomID:
			if c.Id != s.ClassroomID {
				return false
			}
		}
	}
	return true
}

func (r *memClassroomRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Classroom, error) {
	for _, c := range r.store.classrooms {
		if classroomMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memClassroomRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Classroom, error) {
	var out []*entity.Classroom
	for _, c := range r.store.classrooms {
		if classroomMatches(c, specs) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memClassroomRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Membership edges

type memEdgeRepo struct {
	store *memStore
}

func (r *memEdgeRepo) Create(ctx context.Context, edge *entity.ClassroomUser) error {
	if r.store.failEdgeCreate {
		return fmt.Errorf("edge insert failed")
	}
	if edge.Id == 0 {
		edge.Id = r.store.id()
	}
	r.store.edges[edge.Id] = edge
	return nil
}

func (r *memEdgeRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.edges, id)
	return nil
}

func edgeMatches(e *entity.ClassroomUser, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		case specification.MemberOfClass:
			if e.ClassId != s.ClassID {
				return false
			}
		case specification.MemberUser:
			if e.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *memEdgeRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ClassroomUser, error) {
	for _, e := range r.store.edges {
		if edgeMatches(e, specs) {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEdgeRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ClassroomUser, error) {
	var out []*entity.ClassroomUser
	for _, e := range r.store.edges {
		if edgeMatches(e, specs) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *memEdgeRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Notes

type memNoteRepo struct {
	store *memStore
}

func (r *memNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	if note.Id == 0 {
		note.Id = r.store.id()
	}
	r.store.notes[note.Id] = note
	return nil
}

func (r *memNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	r.store.notes[note.Id] = note
	return nil
}

func (r *memNoteRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.notes, id)
	for ratingId, rating := range r.store.ratings {
		if rating.NoteId == id {
			delete(r.store.ratings, ratingId)
		}
	}
	return nil
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.ByIDs:
			if !containsId(s.IDs, n.Id) {
				return false
			}
		case specification.NoteInClass:
			if n.ClassId != s.ClassID {
				return false
			}
		case specification.NoteAuthoredBy:
			if n.AuthorId != s.AuthorID {
				return false
			}
		case specification.ByFileUri:
			if n.FileUri != s.FileUri {
				return false
			}
		}
	}
	return true
}

func (r *memNoteRepo) withRatings(n *entity.Note) *entity.Note {
	loaded := *n
	loaded.Ratings = nil
	for _, rating := range r.store.ratings {
		if rating.NoteId == n.Id {
			loaded.Ratings = append(loaded.Ratings, rating)
		}
	}
	sort.Slice(loaded.Ratings, func(i, j int) bool { return loaded.Ratings[i].Id < loaded.Ratings[j].Id })
	return &loaded
}

func (r *memNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			return r.withRatings(n), nil
		}
	}
	return nil, nil
}

func (r *memNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	for _, n := range r.store.notes {
		if noteMatches(n, specs) {
			out = append(out, r.withRatings(n))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *memNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// Ratings

type memRatingRepo struct {
	store *memStore
}

func (r *memRatingRepo) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.Id == 0 {
		rating.Id = r.store.id()
	}
	r.store.ratings[rating.Id] = rating
	return nil
}

func (r *memRatingRepo) Update(ctx context.Context, rating *entity.Rating) error {
	r.store.ratings[rating.Id] = rating
	return nil
}

func (r *memRatingRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.ratings, id)
	return nil
}

func ratingMatches(rt *entity.Rating, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if rt.Id != s.ID {
				return false
			}
		case specification.RatingForNote:
			if rt.NoteId != s.NoteID {
				return false
			}
		case specification.RatingByUser:
			if rt.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

func (r *memRatingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Rating, error) {
	for _, rt := range r.store.ratings {
		if ratingMatches(rt, specs) {
			return rt, nil
		}
	}
	return nil, nil
}

func (r *memRatingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Rating, error) {
	var out []*entity.Rating
	for _, rt := range r.store.ratings {
		if ratingMatches(rt, specs) {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *memRatingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func containsId(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// External collaborator fakes

type fakeFiles struct {
	objects map[string]bool
	deleted []string
	bodies  map[string]string
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{
		objects: map[string]bool{},
		bodies:  map[string]string{},
	}
}

func fileKey(space Space, fileUri string) string {
	return string(space) + "/" + fileUri
}

func (f *fakeFiles) CreateFile(ctx context.Context, space Space, originalName string, content io.Reader, size int64) (string, error) {
	panic("not used in service tests")
}

func (f *fakeFiles) RemoteFileExists(ctx context.Context, space Space, fileUri string) (bool, error) {
	return f.objects[fileKey(space, fileUri)], nil
}

func (f *fakeFiles) GetFileObject(ctx context.Context, space Space, fileUri string) ([]byte, error) {
	return []byte(f.bodies[fileKey(space, fileUri)]), nil
}

func (f *fakeFiles) DeleteFileWithID(ctx context.Context, space Space, fileUri string) error {
	delete(f.objects, fileKey(space, fileUri))
	f.deleted = append(f.deleted, fileKey(space, fileUri))
	return nil
}

func (f *fakeFiles) IsValidFileType(space Space, fileUri string) bool {
	return extensionAllowed(space, fileExtension(fileUri))
}

func (f *fakeFiles) ExtractBodyFromFile(ctx context.Context, fileUri string) (string, error) {
	if fileExtension(fileUri) != "pdf" {
		return extractionPlaceholder, nil
	}
	return f.bodies[fileKey(SpaceNotes, fileUri)], nil
}

func (f *fakeFiles) CDNUrl(space Space, fileUri string) string {
	return "https://cdn.test/" + fileKey(space, fileUri)
}

type fakeSearch struct {
	hits    []int64
	deleted []int64
}

func (f *fakeSearch) SearchNotesForQuery(ctx context.Context, searchType string, query map[string]interface{}) ([]int64, error) {
	return f.hits, nil
}

func (f *fakeSearch) DeleteNoteWithID(ctx context.Context, noteId int64) error {
	f.deleted = append(f.deleted, noteId)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
