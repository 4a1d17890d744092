package service

import (
	"context"
	"fmt"
	"strings"

	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"
	"game_catalog/internal/domain/policy"
	"game_catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
)

type GameService struct {
	gameRepo repository.GameRepository
	log      *logrus.Logger
}

func NewGameService(gameRepo repository.GameRepository, log *logrus.Logger) *GameService {
	return &GameService{gameRepo: gameRepo, log: log}
}

type GameInput struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	CoverURL    *string `json:"cover_url,omitempty"`
}

func (in *GameInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", common.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("category is required: %w", common.ErrValidation)
	}
	return nil
}

// CreateGame sets the owner from the acting user; client input never
// carries ownership.
func (s *GameService) CreateGame(ctx context.Context, actorID string, in GameInput) (*model.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	game := &model.Game{
		ID:          uuid.NewString(),
		Slug:        slug.Make(in.Title),
		OwnerID:     actorID,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		CoverURL:    in.CoverURL,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"game": game.Slug, "owner": actorID}).Info("game created")
	return s.gameRepo.FindByID(ctx, game.ID)
}

func (s *GameService) GetGame(ctx context.Context, idOrSlug string) (*model.Game, error) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return s.gameRepo.FindByID(ctx, idOrSlug)
	}
	return s.gameRepo.FindBySlug(ctx, idOrSlug)
}

func (s *GameService) ListGames(ctx context.Context, page, pageSize int, category, searchTerm string) ([]model.Game, int, error) {
	offset := (page - 1) * pageSize
	return s.gameRepo.List(ctx, pageSize, offset, category, searchTerm)
}

// UpdateGame enforces the ownership policy: 404 for unknown IDs, 403 when the
// actor is not the owner.
func (s *GameService) UpdateGame(ctx context.Context, actorID, gameID string, in GameInput) (*model.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, game) {
		return nil, common.ErrForbidden
	}

	if game.Title != in.Title {
		game.Slug = slug.Make(in.Title)
	}
	game.Title = in.Title
	game.Category = in.Category
	game.Description = in.Description
	game.CoverURL = in.CoverURL

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}
	s.log.WithField("game", game.Slug).Info("game updated")
	return s.gameRepo.FindByID(ctx, game.ID)
}

func (s *GameService) DeleteGame(ctx context.Context, actorID, gameID string) error {
	game, err := s.gameRepo.FindByID(ctx, gameID)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, game) {
		return common.ErrForbidden
	}

	if err := s.gameRepo.SoftDelete(ctx, gameID); err != nil {
		return err
	}
	s.log.WithField("game", game.Slug).Info("game deleted")
	return nil
}
