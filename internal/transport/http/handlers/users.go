package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/transport/http/httperr"
)

type userResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	AccountName string `json:"accountName"`
}

type searchItem struct {
	UserID      string `json:"userId"`
	AccountName string `json:"accountName"`
	Email       string `json:"email"`
}

// SearchUsers — GET /users/search?query=: префиксный поиск по имени
// аккаунта и email. Пустой запрос — пустой список.
func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Service.SearchProfiles(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]searchItem, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, searchItem{
			UserID:      p.UID,
			AccountName: p.AccountName,
			Email:       p.Email,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// UserByUID — GET /users/{uid}.
func (h *Handlers) UserByUID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.ProfileByUID(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(profile))
}

// Ping — GET /ping.
func (h *Handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func profileToResponse(p *models.Profile) userResponse {
	return userResponse{
		UID:         p.UID,
		Email:       p.Email,
		AccountName: p.AccountName,
	}
}
