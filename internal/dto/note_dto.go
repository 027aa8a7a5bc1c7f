package dto

import (
	"time"

	"github.com/google/uuid"

	"studysnap-be/internal/entity"
)

type CreateNoteRequest struct {
	Title            string    `json:"title" validate:"required"`
	FileUri          string    `json:"fileUri" validate:"required"`
	ShortDescription string    `json:"shortDescription" validate:"required"`
	Keywords         []string  `json:"keywords" validate:"required,min=2"`
	ClassId          uuid.UUID `json:"classId" validate:"required"`
	BibtextCitation  *string   `json:"bibtextCitation"`
}

type UpdateNoteData struct {
	Title            *string  `json:"title"`
	Keywords         []string `json:"keywords"`
	ShortDescription *string  `json:"shortDescription"`
	BibtextCitation  *string  `json:"bibtextCitation"`
	FileUri          *string  `json:"fileUri"`
}

type UpdateNoteRequest struct {
	NoteId int64          `json:"noteId" validate:"required"`
	Data   UpdateNoteData `json:"data" validate:"required"`
}

type DeleteNoteRequest struct {
	NoteId int64 `json:"noteId" validate:"required"`
}

type SearchNotesRequest struct {
	QueryType string                 `json:"queryType" validate:"required"`
	Query     map[string]interface{} `json:"query" validate:"required"`
	ClassId   uuid.UUID              `json:"classId" validate:"required"`
}

type RateNoteRequest struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type AverageRatingResponse struct {
	Value int `json:"value"`
}

type RatingResponse struct {
	Id     int64 `json:"id"`
	Value  int   `json:"value"`
	NoteId int64 `json:"noteId"`
	UserId int64 `json:"userId"`
}

type NoteResponse struct {
	Id               int64            `json:"id"`
	Title            string           `json:"title"`
	Keywords         []string         `json:"keywords"`
	ShortDescription string           `json:"shortDescription"`
	NoteAbstract     string           `json:"noteAbstract"`
	FileUri          string           `json:"fileUri"`
	NoteCDN          string           `json:"noteCDN"`
	TimeLength       int              `json:"timeLength"`
	BibtextCitation  *string          `json:"bibtextCitation"`
	ClassId          uuid.UUID        `json:"classId"`
	AuthorId         int64            `json:"authorId"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	Ratings          []RatingResponse `json:"ratings"`
}

func NewRatingResponse(r *entity.Rating) RatingResponse {
	return RatingResponse{
		Id:     r.Id,
		Value:  r.Value,
		NoteId: r.NoteId,
		UserId: r.UserId,
	}
}

func NewNoteResponse(n *entity.Note) NoteResponse {
	ratings := make([]RatingResponse, 0, len(n.Ratings))
	for _, r := range n.Ratings {
		ratings = append(ratings, NewRatingResponse(r))
	}

	return NoteResponse{
		Id:               n.Id,
		Title:            n.Title,
		Keywords:         n.Keywords,
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

func NewNoteResponses(notes []*entity.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNoteResponse(n))
	}
	return out
}
