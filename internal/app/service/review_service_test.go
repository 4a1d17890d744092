package service

import (
	"context"
	"testing"

	"game_catalog/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviews(t *testing.T) (*ReviewService, string) {
	t.Helper()
	gameRepo := newFakeGameRepo()
	gameSvc := NewGameService(gameRepo, testLogger())
	game, err := gameSvc.CreateGame(context.Background(), "alice", GameInput{Title: "Doom", Category: "FPS"})
	require.NoError(t, err)
	return NewReviewService(newFakeReviewRepo(), gameRepo, testLogger()), game.ID
}

func TestCreateReview(t *testing.T) {
	svc, gameID := setupReviews(t)

	review, err := svc.CreateReview(context.Background(), "bob", gameID, ReviewInput{
		Title:   "Rip and tear",
		Rating:  5,
		Content: "Great soundtrack.",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", review.OwnerID)
	assert.Equal(t, gameID, review.GameID)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	svc, gameID := setupReviews(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(ctx, "bob", gameID, ReviewInput{Title: "t", Rating: rating, Content: "c"})
		assert.ErrorIs(t, err, common.ErrValidation, "rating %d must be rejected", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		_, err := svc.CreateReview(ctx, "bob", gameID, ReviewInput{Title: "t", Rating: rating, Content: "c"})
		assert.NoError(t, err, "rating %d must be accepted", rating)
	}
}

func TestCreateReview_GameMustExist(t *testing.T) {
	svc, _ := setupReviews(t)

	_, err := svc.CreateReview(context.Background(), "bob", "missing-game", ReviewInput{Title: "t", Rating: 3, Content: "c"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdateReview_OwnershipEnforced(t *testing.T) {
	svc, gameID := setupReviews(t)
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, "bob", gameID, ReviewInput{Title: "t", Rating: 3, Content: "c"})
	require.NoError(t, err)

	in := ReviewInput{Title: "t2", Rating: 4, Content: "c2"}

	_, err = svc.UpdateReview(ctx, "alice", review.ID, in)
	assert.ErrorIs(t, err, common.ErrForbidden)

	updated, err := svc.UpdateReview(ctx, "bob", review.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestDeleteReview_OwnershipEnforced(t *testing.T) {
	svc, gameID := setupReviews(t)
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, "bob", gameID, ReviewInput{Title: "t", Rating: 3, Content: "c"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteReview(ctx, "alice", review.ID), common.ErrForbidden)
	require.NoError(t, svc.DeleteReview(ctx, "bob", review.ID))

	_, err = svc.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListReviews_FilterByGame(t *testing.T) {
	gameRepo := newFakeGameRepo()
	gameSvc := NewGameService(gameRepo, testLogger())
	ctx := context.Background()

	g1, err := gameSvc.CreateGame(ctx, "alice", GameInput{Title: "Doom", Category: "FPS"})
	require.NoError(t, err)
	g2, err := gameSvc.CreateGame(ctx, "alice", GameInput{Title: "Quake", Category: "FPS"})
	require.NoError(t, err)

	svc := NewReviewService(newFakeReviewRepo(), gameRepo, testLogger())
	_, err = svc.CreateReview(ctx, "bob", g1.ID, ReviewInput{Title: "a", Rating: 5, Content: "x"})
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, "bob", g2.ID, ReviewInput{Title: "b", Rating: 4, Content: "y"})
	require.NoError(t, err)

	reviews, total, err := svc.ListReviews(ctx, g1.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, g1.ID, reviews[0].GameID)

	_, total, err = svc.ListReviews(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	forGame, err := svc.ListReviewsForGame(ctx, g2.ID)
	require.NoError(t, err)
	assert.Len(t, forGame, 1)
}
