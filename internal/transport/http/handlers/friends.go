package handlers

import (
	"net/http"

	"github.com/pribylovaa/points-backend/internal/transport/http/httperr"
	"github.com/pribylovaa/points-backend/internal/transport/http/middleware"
)

type friendRequestRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

type friendRequestResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// CreateFriendRequest — POST /friend_requests (защищён RequireAuth).
// Claims кладёт в контекст шлюз авторизации; senderId обязан совпадать
// с subject проверенного токена.
func (h *Handlers) CreateFriendRequest(w http.ResponseWriter, r *http.Request) {
	var in friendRequestRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrInvalidJSON)
		return
	}

	claims := middleware.ClaimsFrom(r.Context())

	req, err := h.Service.CreateFriendRequest(r.Context(), claims, in.SenderID, in.ReceiverID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, friendRequestResponse{
		Message:   "Friend request sent",
		RequestID: req.ID,
	})
}
