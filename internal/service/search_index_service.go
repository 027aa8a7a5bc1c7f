package service

import (
	"context"
	"errors"

	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/pkg/searchindex"
)

// ISearchIndexService queries the note search index. Indexing happens
// out-of-band in the ingestion pipeline; this service only reads and prunes.
type ISearchIndexService interface {
	SearchNotesForQuery(ctx context.Context, searchType string, query map[string]interface{}) ([]int64, error)
	DeleteNoteWithID(ctx context.Context, noteId int64) error
}

type searchIndexService struct {
	index     *searchindex.Client
	noteIndex string
}

func NewSearchIndexService(index *searchindex.Client, noteIndex string) ISearchIndexService {
	return &searchIndexService{
		index:     index,
		noteIndex: noteIndex,
	}
}

// SearchNotesForQuery returns the matching note ids, best match first.
// Zero hits is reported as not found so callers surface a 404 rather than an
// empty list.
func (s *searchIndexService) SearchNotesForQuery(ctx context.Context, searchType string, query map[string]interface{}) ([]int64, error) {
	hits, err := s.index.SearchNotes(ctx, s.noteIndex, searchType, query)
	if err != nil {
		return nil, apperrors.NewInternal("note search failed: %v", err)
	}
	if len(hits) == 0 {
		return nil, apperrors.NewNotFound("no notes matched the query")
	}

	ids := make([]int64, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.Source.Id)
	}
	return ids, nil
}

// DeleteNoteWithID prunes every index entry for the note. A note that never
// made it into the index is not an error; deletes must stay idempotent for
// the compensating cleanup paths.
func (s *searchIndexService) DeleteNoteWithID(ctx context.Context, noteId int64) error {
	err := s.index.DeleteNoteByID(ctx, s.noteIndex, noteId)
	if err != nil && !errors.Is(err, searchindex.ErrNotFound) {
		return apperrors.NewInternal("could not remove note %d from the index: %v", noteId, err)
	}
	return nil
}
