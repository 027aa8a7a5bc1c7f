package mapper

import (
	"studysnap-be/internal/entity"
	"studysnap-be/internal/model"
)

type ClassroomMapper struct{}

func NewClassroomMapper() *ClassroomMapper {
	return &ClassroomMapper{}
}

func (m *ClassroomMapper) ToEntity(c *model.Classroom) *entity.Classroom {
	if c == nil {
		return nil
	}

	return &entity.Classroom{
		Id:           c.Id,
		Name:         c.Name,
		OwnerId:      c.OwnerId,
		ThumbnailUri: c.ThumbnailUri,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ClassroomMapper) ToModel(c *entity.Classroom) *model.Classroom {
	if c == nil {
		return nil
	}

	return &model.Classroom{
		Id:           c.Id,
		Name:         c.Name,
		OwnerId:      c.OwnerId,
		ThumbnailUri: c.ThumbnailUri,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (m *ClassroomMapper) ToEntities(classrooms []*model.Classroom) []*entity.Classroom {
	entities := make([]*entity.Classroom, len(classrooms))
	for i, c := range classrooms {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type ClassroomUserMapper struct{}

func NewClassroomUserMapper() *ClassroomUserMapper {
	return &ClassroomUserMapper{}
}

func (m *ClassroomUserMapper) ToEntity(cu *model.ClassroomUser) *entity.ClassroomUser {
	if cu == nil {
		return nil
	}

	return &entity.ClassroomUser{
		Id:        cu.Id,
		ClassId:   cu.ClassId,
		UserId:    cu.UserId,
		CreatedAt: cu.CreatedAt,
	}
}

func (m *ClassroomUserMapper) ToModel(cu *entity.ClassroomUser) *model.ClassroomUser {
	if cu == nil {
		return nil
	}

	return &model.ClassroomUser{
		Id:        cu.Id,
		ClassId:   cu.ClassId,
		UserId:    cu.UserId,
		CreatedAt: cu.CreatedAt,
	}
}

func (m *ClassroomUserMapper) ToEntities(edges []*model.ClassroomUser) []*entity.ClassroomUser {
	entities := make([]*entity.ClassroomUser, len(edges))
	for i, cu := range edges {
		entities[i] = m.ToEntity(cu)
	}
	return entities
}
