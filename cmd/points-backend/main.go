package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/points-backend/internal/config"
	"github.com/pribylovaa/points-backend/internal/identity"
	"github.com/pribylovaa/points-backend/internal/service"
	"github.com/pribylovaa/points-backend/internal/storage"
	"github.com/pribylovaa/points-backend/internal/storage/memory"
	"github.com/pribylovaa/points-backend/internal/storage/mongo"
	"github.com/pribylovaa/points-backend/internal/storage/redisstore"
	apihttp "github.com/pribylovaa/points-backend/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting points-backend", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Хранилище refresh-токенов: Redis, если задан, иначе память процесса.
	tokens, err := newTokenStorage(rootCtx, cfg.Store.RedisURL, log)
	if err != nil {
		log.Error("token_storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = tokens.Close() }()

	// Документное хранилище опционально: без него зависящие эндпоинты отвечают 501.
	var social storage.SocialStorage
	if cfg.Store.MongoURL != "" {
		initCtx, initCancel := context.WithTimeout(rootCtx, 10*time.Second)
		m, err := mongo.New(initCtx, cfg.Store.MongoURL)
		initCancel()
		if err != nil {
			log.Error("mongo_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		social = m
		defer func() { _ = m.Close(context.Background()) }()
		log.Info("mongo_connected")
	} else {
		log.Warn("mongo_not_configured")
	}

	idp := identity.NewClient(cfg.Identity.APIKey, cfg.Identity.BaseURL, cfg.Identity.Timeout, nil)
	if cfg.Identity.APIKey == "" {
		log.Warn("identity_api_key_missing")
	}

	srvc := service.New(tokens, social, idp, cfg.Auth)
	log.Info("service_initialized")

	// Фоновая очистка просроченных токенов и устаревших отметок об отзыве.
	startTokenJanitor(rootCtx, tokens, log, cfg.Janitor.Interval)

	apiHandler := apihttp.NewRouter(srvc, apihttp.Options{
		Logger:         log,
		Timeout:        cfg.Timeouts.Service,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("backend_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = httpSrv.Close()
	}

	log.Info("service_stopped")
}

// newTokenStorage выбирает бэкенд хранилища refresh-токенов.
func newTokenStorage(ctx context.Context, redisURL string, log *slog.Logger) (storage.TokenStorage, error) {
	if redisURL == "" {
		log.Info("token_storage_memory")
		return memory.New(), nil
	}

	initCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	st, err := redisstore.New(initCtx, redisURL)
	if err != nil {
		return nil, err
	}

	log.Info("token_storage_redis")
	return st, nil
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// startTokenJanitor запускает фоновую задачу, которая периодически удаляет
// просроченные refresh-токены и отметки об отзыве, пережившие исходный
// срок жизни токена.
func startTokenJanitor(ctx context.Context, tokens storage.TokenStorage, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := tokens.DeleteExpired(ctx, time.Now().UTC()); err != nil {
					log.Error("token_janitor_failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}
