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

type ReviewHandler struct {
	reviewService *service.ReviewService
	userRepo      repository.UserRepository
}

func NewReviewHandler(rs *service.ReviewService, userRepo repository.UserRepository) *ReviewHandler {
	return &ReviewHandler{reviewService: rs, userRepo: userRepo}
}

func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listReviews)
	r.Get("/{reviewID}", h.getReview)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator(h.userRepo))
		protected.Put("/{reviewID}", h.updateReview)
		protected.Delete("/{reviewID}", h.deleteReview)
	})
}

func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	gameID := r.URL.Query().Get("game_id")

	reviews, total, err := h.reviewService.ListReviews(r.Context(), gameID, page, pageSize)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	type PaginatedReviewsResponse struct {
		Reviews  []model.Review `json:"reviews"`
		Total    int            `json:"total"`
		Page     int            `json:"page"`
		PageSize int            `json:"page_size"`
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedReviewsResponse{
		Reviews:  reviews,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ReviewHandler) getReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.GetReview(r.Context(), chi.URLParam(r, "reviewID"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) updateReview(w http.ResponseWriter, r *http.Request) {
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

	review, err := h.reviewService.UpdateReview(r.Context(), userID, chi.URLParam(r, "reviewID"), in)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) deleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), userID, chi.URLParam(r, "reviewID")); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondNoContent(w)
}
