package mapper

import (
	"studysnap-be/internal/entity"
	"studysnap-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct {
	ratingMapper *RatingMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		ratingMapper: NewRatingMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	ratings := make([]*entity.Rating, len(n.Ratings))
	for i := range n.Ratings {
		ratings[i] = m.ratingMapper.ToEntity(&n.Ratings[i])
	}

	return &entity.Note{
		Id:               n.Id,
		Title:            n.Title,
		Keywords:         []string(n.Keywords),
		ShortDescription: n.ShortDescription,
		NoteAbstract:     n.NoteAbstract,
		FileUri:          n.FileUri,
		NoteCDN:          n.NoteCDN,
		TimeLength:       n.TimeLength,
		BibtextCitation:  n.BibtextCitation,
		ClassId:          n.ClassId,
		AuthorId:         n.AuthorId,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
		Ratings:          ratings,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	// Ratings are managed through their own repository; the note model
	// carries them read-only.
	return &model.Note{
		Id:               n.Id,
		Title:            n.Title,
		Keywords:         datatypes.NewJSONSlice(n.Keywords),
		ShortDescription: n.ShortDescription,
		NoteAbstract:     n.NoteAbstract,
		FileUri:          n.FileUri,
		NoteCDN:          n.NoteCDN,
		TimeLength:       n.TimeLength,
		BibtextCitation:  n.BibtextCitation,
		ClassId:          n.ClassId,
		AuthorId:         n.AuthorId,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
