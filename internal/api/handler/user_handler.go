package handler

import (
	"net/http"

	"game_catalog/internal/api/middleware"
	"game_catalog/internal/app/service"
	"game_catalog/internal/common"
	"game_catalog/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.listUsers)
}

func (h *UserHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user.PublicProfile())
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	profiles := make([]model.User, 0, len(users))
	for i := range users {
		profiles = append(profiles, *users[i].PublicProfile())
	}
	common.RespondWithJSON(w, http.StatusOK, profiles)
}
