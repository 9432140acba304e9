package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/store"
)

func TestReviewService_CreateReview(t *testing.T) {
	s := newTestStore(t)
	svc := NewReviewService(s, testLogger())
	ctx := context.Background()

	jack := seedUser(t, s, "jack")
	games := seedCategory(t, s, jack, "Game")
	item := seedItem(t, s, jack, games, "The Witcher 3")

	review, err := svc.CreateReview(ctx, 5, "A masterpiece.", jack.ID, item.ID)
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	require.NotNil(t, review.Rating)
	assert.Equal(t, 5, *review.Rating)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	s := newTestStore(t)
	svc := NewReviewService(s, testLogger())
	ctx := context.Background()

	jack := seedUser(t, s, "jack")
	games := seedCategory(t, s, jack, "Game")
	item := seedItem(t, s, jack, games, "The Witcher 3")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(ctx, rating, "", jack.ID, item.ID)
		require.Error(t, err)
		assert.Equal(t, "Rating must be between 1 and 5", err.Error())
	}

	_, err := svc.CreateReview(ctx, 3, "", 999, item.ID)
	require.Error(t, err)
	assert.Equal(t, "User does not exist", err.Error())

	_, err = svc.CreateReview(ctx, 3, "", jack.ID, 999)
	require.Error(t, err)
	assert.Equal(t, "Item does not exist", err.Error())
}

func TestReviewService_ListItemReviews(t *testing.T) {
	s := newTestStore(t)
	svc := NewReviewService(s, testLogger())
	ctx := context.Background()

	jack := seedUser(t, s, "jack")
	games := seedCategory(t, s, jack, "Game")
	item := seedItem(t, s, jack, games, "The Witcher 3")
	other := seedItem(t, s, jack, games, "Dune")

	_, err := svc.CreateReview(ctx, 5, "great", jack.ID, item.ID)
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, 2, "meh", jack.ID, other.ID)
	require.NoError(t, err)

	reviews, err := svc.ListItemReviews(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, item.ID, reviews[0].ItemID)

	_, err = svc.ListItemReviews(ctx, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
