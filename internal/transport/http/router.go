// Package http собирает REST-поверхность сервиса: chi-роутер,
// цепочку мидлваров и регистрацию маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/points-backend/internal/service"
	"github.com/pribylovaa/points-backend/internal/transport/http/handlers"
	"github.com/pribylovaa/points-backend/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger *slog.Logger
	// Timeout — общий дедлайн запроса; <=0 отключает.
	Timeout time.Duration
	// AllowedOrigins — "*" либо список хостов через запятую.
	AllowedOrigins string
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		corsHandler(opts.AllowedOrigins),
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc)

	registerRoutes(root, h, svc)

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, svc *service.Service) {
	// auth: refresh-токен сам является креденшелом, bearer не нужен.
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Post("/refresh", h.Refresh)
	r.Post("/auth/logout", h.Logout)

	// социальный граф: только через шлюз авторизации.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(svc))
		pr.Post("/friend_requests", h.CreateFriendRequest)
	})

	// профили
	r.Get("/users/search", h.SearchUsers)
	r.Get("/users/{uid}", h.UserByUID)

	r.Get("/ping", h.Ping)
}

// corsHandler строит CORS-мидлвар из строки конфигурации:
// "*" разрешает все источники, иначе список хостов через запятую.
func corsHandler(allowed string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if s := strings.TrimSpace(allowed); s != "" && s != "*" {
		origins = origins[:0]
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
