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
	"github.com/sirupsen/logrus"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
	log        *logrus.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo repository.GameRepository, log *logrus.Logger) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, gameRepo: gameRepo, log: log}
}

type ReviewInput struct {
	Title    string  `json:"title"`
	Rating   int     `json:"rating"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (in *ReviewInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required: %w", common.ErrValidation)
	}
	if in.Rating < model.MinRating || in.Rating > model.MaxRating {
		return fmt.Errorf("rating must be between %d and %d: %w", model.MinRating, model.MaxRating, common.ErrValidation)
	}
	return nil
}

// CreateReview attaches a review to an existing game; the game reference is
// checked before anything is written.
func (s *ReviewService) CreateReview(ctx context.Context, actorID, gameID string, in ReviewInput) (*model.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := s.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, err
	}

	review := &model.Review{
		ID:       uuid.NewString(),
		OwnerID:  actorID,
		GameID:   gameID,
		Title:    in.Title,
		Rating:   in.Rating,
		Content:  in.Content,
		ImageURL: in.ImageURL,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"review": review.ID, "game": gameID}).Info("review created")
	return s.reviewRepo.FindByID(ctx, review.ID)
}

func (s *ReviewService) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return s.reviewRepo.FindByID(ctx, id)
}

func (s *ReviewService) ListReviewsForGame(ctx context.Context, gameID string) ([]model.Review, error) {
	if _, err := s.gameRepo.FindByID(ctx, gameID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByGame(ctx, gameID)
}

func (s *ReviewService) ListReviews(ctx context.Context, gameID string, page, pageSize int) ([]model.Review, int, error) {
	offset := (page - 1) * pageSize
	return s.reviewRepo.List(ctx, gameID, pageSize, offset)
}

func (s *ReviewService) UpdateReview(ctx context.Context, actorID, reviewID string, in ReviewInput) (*model.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, review) {
		return nil, common.ErrForbidden
	}

	review.Title = in.Title
	review.Rating = in.Rating
	review.Content = in.Content
	review.ImageURL = in.ImageURL

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	s.log.WithField("review", review.ID).Info("review updated")
	return s.reviewRepo.FindByID(ctx, review.ID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, actorID, reviewID string) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, review) {
		return common.ErrForbidden
	}

	if err := s.reviewRepo.SoftDelete(ctx, reviewID); err != nil {
		return err
	}
	s.log.WithField("review", reviewID).Info("review deleted")
	return nil
}
