package service

import (
	"context"
	"testing"

	"game_catalog/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame_OwnerFromActor(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())

	game, err := svc.CreateGame(context.Background(), "alice", GameInput{
		Title:       "Hollow Knight",
		Category:    "Metroidvania",
		Description: "Bug adventure.",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", game.OwnerID)
	assert.Equal(t, "hollow-knight", game.Slug)
}

func TestCreateGame_Validation(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())

	_, err := svc.CreateGame(context.Background(), "alice", GameInput{Title: " ", Category: "Action"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.CreateGame(context.Background(), "alice", GameInput{Title: "Doom", Category: ""})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUpdateGame_OwnershipEnforced(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, "alice", GameInput{Title: "Doom", Category: "FPS"})
	require.NoError(t, err)

	in := GameInput{Title: "Doom Eternal", Category: "FPS"}

	_, err = svc.UpdateGame(ctx, "bob", game.ID, in)
	assert.ErrorIs(t, err, common.ErrForbidden)

	updated, err := svc.UpdateGame(ctx, "alice", game.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Doom Eternal", updated.Title)
	assert.Equal(t, "doom-eternal", updated.Slug)
}

func TestDeleteGame_OwnershipEnforced(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, "alice", GameInput{Title: "Doom", Category: "FPS"})
	require.NoError(t, err)

	err = svc.DeleteGame(ctx, "bob", game.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	require.NoError(t, svc.DeleteGame(ctx, "alice", game.ID))

	_, err = svc.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMutateGame_UnknownIDIs404(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())
	ctx := context.Background()

	// Nonexistent IDs surface 404 before any ownership check.
	_, err := svc.UpdateGame(ctx, "alice", "7b6ff13e-0000-0000-0000-000000000000", GameInput{Title: "X", Category: "Y"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = svc.DeleteGame(ctx, "alice", "7b6ff13e-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListGames_Filters(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())
	ctx := context.Background()

	_, err := svc.CreateGame(ctx, "alice", GameInput{Title: "Doom", Category: "FPS"})
	require.NoError(t, err)
	_, err = svc.CreateGame(ctx, "alice", GameInput{Title: "Stardew Valley", Category: "Farming"})
	require.NoError(t, err)

	games, total, err := svc.ListGames(ctx, 1, 20, "FPS", "")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Doom", games[0].Title)

	_, total, err = svc.ListGames(ctx, 1, 20, "", "stardew")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestGetGame_BySlug(t *testing.T) {
	svc := NewGameService(newFakeGameRepo(), testLogger())
	ctx := context.Background()

	created, err := svc.CreateGame(ctx, "alice", GameInput{Title: "Hollow Knight", Category: "Metroidvania"})
	require.NoError(t, err)

	bySlug, err := svc.GetGame(ctx, "hollow-knight")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	byID, err := svc.GetGame(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)
}
