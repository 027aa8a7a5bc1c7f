package mapper

import (
	"studysnap-be/internal/entity"
	"studysnap-be/internal/model"
)

type RatingMapper struct{}

func NewRatingMapper() *RatingMapper {
	return &RatingMapper{}
}

func (m *RatingMapper) ToEntity(r *model.Rating) *entity.Rating {
	if r == nil {
		return nil
	}

	return &entity.Rating{
		Id:        r.Id,
		Value:     r.Value,
		NoteId:    r.NoteId,
		UserId:    r.UserId,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RatingMapper) ToModel(r *entity.Rating) *model.Rating {
	if r == nil {
		return nil
	}

	return &model.Rating{
		Id:        r.Id,
		Value:     r.Value,
		NoteId:    r.NoteId,
		UserId:    r.UserId,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (m *RatingMapper) ToEntities(ratings []*model.Rating) []*entity.Rating {
	entities := make([]*entity.Rating, len(ratings))
	for i, r := range ratings {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
