package service

import (
	"context"
	"io"
	"strings"
	"time"

	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	users map[string]*model.User // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return common.ErrConflict
		}
	}
	cp := *user
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListActive(_ context.Context) ([]model.User, error) {
	users := []model.User{}
	for _, u := range r.users {
		if u.IsActive {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	u, ok := r.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.HashedPassword = hashedPassword
	return nil
}

type fakeGameRepo struct {
	games map[string]*model.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: map[string]*model.Game{}}
}

func (r *fakeGameRepo) Create(_ context.Context, game *model.Game) error {
	for _, g := range r.games {
		if g.Slug == game.Slug && !g.IsDeleted {
			return common.ErrConflict
		}
	}
	cp := *game
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.games[game.ID] = &cp
	return nil
}

func (r *fakeGameRepo) Update(_ context.Context, game *model.Game) error {
	g, ok := r.games[game.ID]
	if !ok || g.IsDeleted {
		return common.ErrNotFound
	}
	g.Slug = game.Slug
	g.Title = game.Title
	g.Category = game.Category
	g.Description = game.Description
	g.CoverURL = game.CoverURL
	g.UpdatedAt = time.Now()
	return nil
}

func (r *fakeGameRepo) SoftDelete(_ context.Context, id string) error {
	g, ok := r.games[id]
	if !ok || g.IsDeleted {
		return common.ErrNotFound
	}
	g.IsDeleted = true
	return nil
}

func (r *fakeGameRepo) FindByID(_ context.Context, id string) (*model.Game, error) {
	g, ok := r.games[id]
	if !ok || g.IsDeleted {
		return nil, common.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGameRepo) FindBySlug(_ context.Context, slug string) (*model.Game, error) {
	for _, g := range r.games {
		if g.Slug == slug && !g.IsDeleted {
			cp := *g
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeGameRepo) List(_ context.Context, limit, offset int, category, searchTerm string) ([]model.Game, int, error) {
	matched := []model.Game{}
	for _, g := range r.games {
		if g.IsDeleted {
			continue
		}
		if category != "" && g.Category != category {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(g.Title), strings.ToLower(searchTerm)) {
			continue
		}
		matched = append(matched, *g)
	}
	total := len(matched)
	if offset >= len(matched) {
		return []model.Game{}, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

type fakeReviewRepo struct {
	reviews map[string]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*model.Review{}}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	cp := *review
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.reviews[review.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *model.Review) error {
	rv, ok := r.reviews[review.ID]
	if !ok || rv.IsDeleted {
		return common.ErrNotFound
	}
	rv.Title = review.Title
	rv.Rating = review.Rating
	rv.Content = review.Content
	rv.ImageURL = review.ImageURL
	rv.UpdatedAt = time.Now()
	return nil
}

func (r *fakeReviewRepo) SoftDelete(_ context.Context, id string) error {
	rv, ok := r.reviews[id]
	if !ok || rv.IsDeleted {
		return common.ErrNotFound
	}
	rv.IsDeleted = true
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id string) (*model.Review, error) {
	rv, ok := r.reviews[id]
	if !ok || rv.IsDeleted {
		return nil, common.ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeReviewRepo) ListByGame(_ context.Context, gameID string) ([]model.Review, error) {
	reviews := []model.Review{}
	for _, rv := range r.reviews {
		if !rv.IsDeleted && rv.GameID == gameID {
			reviews = append(reviews, *rv)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) List(_ context.Context, gameID string, limit, offset int) ([]model.Review, int, error) {
	matched := []model.Review{}
	for _, rv := range r.reviews {
		if rv.IsDeleted {
			continue
		}
		if gameID != "" && rv.GameID != gameID {
			continue
		}
		matched = append(matched, *rv)
	}
	total := len(matched)
	if offset >= len(matched) {
		return []model.Review{}, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}
