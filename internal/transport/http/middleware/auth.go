package middleware

import (
	"context"
	"net/http"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/transport/http/httperr"
)

// Authenticator проверяет bearer-токен из заголовка Authorization.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*models.Claims, error)
}

type ctxKeyClaims struct{}

// RequireAuth — шлюз авторизации для защищённых операций.
//
// Достаёт и проверяет bearer-токен; при успехе кладёт Claims в контекст и
// передаёт управление обработчику, при любой ошибке проверки отвечает
// 401-семейством, не вызывая обработчик. Состояния между запросами нет.
func RequireAuth(a Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := a.Authenticate(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyClaims{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom достаёт проверенную идентичность из контекста.
// nil означает, что запрос не проходил через RequireAuth.
func ClaimsFrom(ctx context.Context) *models.Claims {
	if v := ctx.Value(ctxKeyClaims{}); v != nil {
		if c, ok := v.(*models.Claims); ok {
			return c
		}
	}

	return nil
}
