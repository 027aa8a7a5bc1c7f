package dto

import (
	"time"

	"github.com/google/uuid"

	"studysnap-be/internal/entity"
)

type CreateClassroomRequest struct {
	Name         string `json:"name" validate:"required"`
	ThumbnailUri string `json:"thumbnailUri"`
}

type UpdateClassroomData struct {
	Name         *string `json:"name"`
	ThumbnailUri *string `json:"thumbnailUri"`
}

type UpdateClassroomRequest struct {
	ClassId uuid.UUID           `json:"classId" validate:"required"`
	Data    UpdateClassroomData `json:"data" validate:"required"`
}

type DeleteClassroomRequest struct {
	ClassId uuid.UUID `json:"classId" validate:"required"`
}

type ClassroomResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	OwnerId      int64     `json:"ownerId"`
	ThumbnailUri string    `json:"thumbnailUri"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type StatusMessageResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func NewClassroomResponse(c *entity.Classroom) ClassroomResponse {
	return ClassroomResponse{
		Id:           c.Id,
		Name:         c.Name,
		OwnerId:      c.OwnerId,
		ThumbnailUri: c.ThumbnailUri,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewClassroomResponses(classrooms []*entity.Classroom) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(classrooms))
	for _, c := range classrooms {
		out = append(out, NewClassroomResponse(c))
	}
	return out
}
