package service

import (
	"context"

	"studysnap-be/internal/entity"
	"studysnap-be/internal/pkg/apperrors"
	"studysnap-be/internal/repository/specification"
	"studysnap-be/internal/repository/unitofwork"
)

// IRatingsService owns the ratings table. The one-rating-per-user-per-note
// rule is not a database constraint; NotesService enforces it by routing
// repeat ratings through UpdateRating.
type IRatingsService interface {
	GetRatingWithID(ctx context.Context, id int64) (*entity.Rating, error)
	AddRating(ctx context.Context, value int, userId, noteId int64) (*entity.Rating, error)
	UpdateRating(ctx context.Context, id int64, value int) (*entity.Rating, error)
	RemoveRating(ctx context.Context, id int64) error
}

type ratingsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRatingsService(uowFactory unitofwork.RepositoryFactory) IRatingsService {
	return &ratingsService{
		uowFactory: uowFactory,
	}
}

func (s *ratingsService) GetRatingWithID(ctx context.Context, id int64) (*entity.Rating, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating, err := uow.RatingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.NewInternal("could not load rating %d: %v", id, err)
	}
	if rating == nil {
		return nil, apperrors.NewNotFound("rating %d does not exist", id)
	}

	return rating, nil
}

func (s *ratingsService) AddRating(ctx context.Context, value int, userId, noteId int64) (*entity.Rating, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating := &entity.Rating{
		Value:  value,
		NoteId: noteId,
		UserId: userId,
	}
	if err := uow.RatingRepository().Create(ctx, rating); err != nil {
		return nil, apperrors.NewInternal("could not create rating: %v", err)
	}

	return rating, nil
}

func (s *ratingsService) UpdateRating(ctx context.Context, id int64, value int) (*entity.Rating, error) {
	rating, err := s.GetRatingWithID(ctx, id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rating.Value = value
	if err := uow.RatingRepository().Update(ctx, rating); err != nil {
		return nil, apperrors.NewInternal("could not update rating %d: %v", id, err)
	}

	return rating, nil
}

func (s *ratingsService) RemoveRating(ctx context.Context, id int64) error {
	if _, err := s.GetRatingWithID(ctx, id); err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.RatingRepository().Delete(ctx, id); err != nil {
		return apperrors.NewInternal("could not delete rating %d: %v", id, err)
	}

	return nil
}
