// httperr стандартизирует ответы об ошибках HTTP-слоя.
// На вход принимает ошибку доменного слоя (сигнальные значения пакета
// service), на выход даёт корректный HTTP-статус и краткое безопасное
// message без утечки внутренних деталей.
//
// Классы 401 различимы по стабильному коду (missing_credential,
// malformed_credential, invalid_credential, expired_credential,
// revoked_credential) — это упрощает диагностику на клиенте.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/points-backend/internal/service"
)

// ErrInvalidJSON — тело запроса не разобралось как ожидаемый JSON.
// Локальная ошибка транспортного слоя, 400/invalid_argument.
var ErrInvalidJSON = errors.New("invalid json body")

// APIError — единый формат ошибки для фронта.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
// err == nil — программная ошибка вызова: 500/internal, чтобы не послать
// "200 OK" с телом ошибки.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := mapErr(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров: пишет статус/тело и добавляет
// request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// mapErr — базовый маппинг домен -> HTTP/код/сообщение.
func mapErr(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"

	// 400: некорректный ввод.
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, "invalid_argument", "invalid request body"
	case errors.Is(err, service.ErrMissingRefreshToken):
		return http.StatusBadRequest, "missing_input", "refresh_token is required"
	case errors.Is(err, service.ErrInvalidAccountName):
		return http.StatusBadRequest, "invalid_argument", "accountName must be 3-30 characters"
	case errors.Is(err, service.ErrRegistrationRejected):
		return http.StatusBadRequest, "registration_rejected", "Registration rejected by identity provider"
	case errors.Is(err, service.ErrEmptyParticipant):
		return http.StatusBadRequest, "invalid_argument", "senderId and receiverId are required"
	case errors.Is(err, service.ErrSelfRequest):
		return http.StatusBadRequest, "invalid_argument", "cannot send friend request to yourself"

	// 401: семейство проблем с креденшелами, каждый код различим.
	case errors.Is(err, service.ErrMissingAuthHeader):
		return http.StatusUnauthorized, "missing_credential", "Missing credential"
	case errors.Is(err, service.ErrMalformedAuthHeader):
		return http.StatusUnauthorized, "malformed_credential", "Malformed credential"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "Authentication failed"
	case errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, "revoked_credential", "Refresh token revoked"
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "expired_credential", "Token expired"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_credential", "Invalid token"

	case errors.Is(err, service.ErrSenderMismatch):
		return http.StatusForbidden, "sender_mismatch", "senderId must match the authenticated user"

	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"

	case errors.Is(err, service.ErrDuplicateRequest):
		return http.StatusConflict, "already_exists", "Friend request already pending"

	case errors.Is(err, service.ErrNotConfigured):
		return http.StatusInternalServerError, "not_configured", "Service is not configured"

	// 501: хранилище не сконфигурировано — отличаем от сбоя (500).
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusNotImplemented, "store_unavailable", "Profile store is not configured"

	case errors.Is(err, service.ErrUpstream):
		return http.StatusBadGateway, "upstream_unavailable", "Identity provider unreachable"

	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
