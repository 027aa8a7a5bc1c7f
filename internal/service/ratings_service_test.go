package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studysnap-be/internal/pkg/apperrors"
)

func TestRatingsLifecycle(t *testing.T) {
	store := newMemStore()
	svc := NewRatingsService(newMemFactory(store))
	ctx := context.Background()

	rating, err := svc.AddRating(ctx, 4, 1, 10)
	require.NoError(t, err)
	require.NotZero(t, rating.Id)

	got, err := svc.GetRatingWithID(ctx, rating.Id)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Value)

	updated, err := svc.UpdateRating(ctx, rating.Id, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Value)

	require.NoError(t, svc.RemoveRating(ctx, rating.Id))
	assert.Empty(t, store.ratings)

	_, err = svc.GetRatingWithID(ctx, rating.Id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.RemoveRating(ctx, rating.Id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "repeat remove reports the missing rating")
}
