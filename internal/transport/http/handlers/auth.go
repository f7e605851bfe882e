package handlers

import (
	"net/http"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/transport/http/httperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountName string `json:"accountName"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// sessionResponse — ответ login/refresh.
// refresh_token присутствует только при входе: при обмене токен не ротируется.
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	UID          string `json:"uid"`
	Email        string `json:"email"`
	AccountName  string `json:"accountName,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type registerResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	AccountName string `json:"accountName"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func sessionFromModel(s *models.Session) sessionResponse {
	return sessionResponse{
		AccessToken:  s.AccessToken,
		TokenType:    "bearer",
		UID:          s.UID,
		Email:        s.Email,
		AccountName:  s.AccountName,
		RefreshToken: s.RefreshToken,
	}
}

// Login — POST /login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidJSON)
		return
	}

	session, err := h.Service.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionFromModel(session))
}

// Register — POST /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidJSON)
		return
	}

	profile, err := h.Service.Register(r.Context(), in.Email, in.Password, in.AccountName)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		UID:         profile.UID,
		Email:       profile.Email,
		AccountName: profile.AccountName,
	})
}

// Refresh — POST /refresh: обмен refresh-токена на новый access-токен.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidJSON)
		return
	}

	session, err := h.Service.Redeem(r.Context(), in.RefreshToken)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionFromModel(session))
}

// Logout — POST /auth/logout: отзыв refresh-токена, идемпотентен.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in logoutRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidJSON)
		return
	}

	if err := h.Service.Revoke(r.Context(), in.RefreshToken); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
