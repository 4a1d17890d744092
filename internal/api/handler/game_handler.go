package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"game_catalog/internal/api/middleware"
	"game_catalog/internal/app/service"
	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"
	"game_catalog/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type GameHandler struct {
	gameService   *service.GameService
	reviewService *service.ReviewService
	userRepo      repository.UserRepository
}

func NewGameHandler(gs *service.GameService, rs *service.ReviewService, userRepo repository.UserRepository) *GameHandler {
	return &GameHandler{gameService: gs, reviewService: rs, userRepo: userRepo}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	// Reads are public
	r.Get("/", h.listGames)                   // GET /api/v1/games
	r.Get("/{gameID}", h.getGame)             // GET /api/v1/games/{id-or-slug}
	r.Get("/{gameID}/reviews", h.listReviews) // GET /api/v1/games/{id}/reviews

	// Mutations require an authenticated owner
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(h.userRepo))
		protected.Post("/", h.createGame)
		protected.Put("/{gameID}", h.updateGame)
		protected.Delete("/{gameID}", h.deleteGame)
		protected.Post("/{gameID}/reviews", h.createReview)
	})
}

func (h *GameHandler) createGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var in service.GameInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), userID, in)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, game)
}

func (h *GameHandler) listGames(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	category := r.URL.Query().Get("category")
	searchTerm := r.URL.Query().Get("q")

	games, total, err := h.gameService.ListGames(r.Context(), page, pageSize, category, searchTerm)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type PaginatedGamesResponse struct {
		Games    []model.Game `json:"games"`
		Total    int          `json:"total"`
		Page     int          `json:"page"`
		PageSize int          `json:"page_size"`
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedGamesResponse{
		Games:    games,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *GameHandler) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, game)
}

func (h *GameHandler) updateGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var in service.GameInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	game, err := h.gameService.UpdateGame(r.Context(), userID, chi.URLParam(r, "gameID"), in)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, game)
}

func (h *GameHandler) deleteGame(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), userID, chi.URLParam(r, "gameID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondNoContent(w)
}

func (h *GameHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListReviewsForGame(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, reviews)
}

func (h *GameHandler) createReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var in service.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), userID, chi.URLParam(r, "gameID"), in)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, review)
}
