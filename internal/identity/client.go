package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pribylovaa/points-backend/internal/pkg/log"
)

// DefaultBaseURL — боевой адрес Identity Toolkit API.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com"

// Client — REST-клиент Identity Toolkit API (Provider).
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient создаёт клиент провайдера.
// Пустой baseURL заменяется на DefaultBaseURL; nil httpClient — на клиент
// с таймаутом timeout (защита от зависания исходящих вызовов).
func NewClient(apiKey, baseURL string, timeout time.Duration, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// accountsResponse — подмножество ответа accounts:signInWithPassword/signUp.
type accountsResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

// providerError — структура ошибки Identity Toolkit.
type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn вызывает accounts:signInWithPassword.
// Любой не-200 ответ провайдера трактуется как неверные учётные данные.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Account, error) {
	const op = "identity/client/SignIn"

	body, status, err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if status != http.StatusOK {
		log.From(ctx).Info("signin_rejected",
			slog.String("op", op),
			slog.String("reason", providerMessage(body)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	return decodeAccount(op, body)
}

// SignUp вызывает accounts:signUp.
// Не-200 ответ — отказ провайдера (ErrRejected).
func (c *Client) SignUp(ctx context.Context, email, password string) (*Account, error) {
	const op = "identity/client/SignUp"

	body, status, err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if status != http.StatusOK {
		log.From(ctx).Info("signup_rejected",
			slog.String("op", op),
			slog.String("reason", providerMessage(body)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrRejected)
	}

	return decodeAccount(op, body)
}

// DeleteAccount вызывает accounts:delete с токеном провайдера.
func (c *Client) DeleteAccount(ctx context.Context, providerToken string) error {
	const op = "identity/client/DeleteAccount"

	body, status, err := c.post(ctx, "accounts:delete", map[string]any{
		"idToken": providerToken,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if status != http.StatusOK {
		return fmt.Errorf("%s: provider status %d: %s", op, status, providerMessage(body))
	}

	return nil
}

// post выполняет вызов эндпоинта Identity Toolkit.
// Сетевые сбои транслируются в ErrUnavailable, отсутствие ключа — в ErrNotConfigured.
func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) ([]byte, int, error) {
	if c.apiKey == "" {
		return nil, 0, ErrNotConfigured
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	target := fmt.Sprintf("%s/v1/%s?key=%s", c.baseURL, endpoint, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return body, resp.StatusCode, nil
}

// decodeAccount разбирает успешный ответ провайдера в Account.
func decodeAccount(op string, body []byte) (*Account, error) {
	var res accountsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	if res.LocalID == "" || res.Email == "" {
		return nil, fmt.Errorf("%s: provider response misses uid/email", op)
	}

	return &Account{
		UID:           res.LocalID,
		Email:         res.Email,
		AccountName:   res.DisplayName,
		ProviderToken: res.IDToken,
	}, nil
}

// providerMessage достаёт человекочитаемое сообщение из тела ошибки.
func providerMessage(body []byte) string {
	var pe providerError
	if err := json.Unmarshal(body, &pe); err == nil && pe.Error.Message != "" {
		return pe.Error.Message
	}

	return string(body)
}
