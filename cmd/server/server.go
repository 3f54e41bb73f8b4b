package main

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/safeforhall/internal/auth"
	"github.com/mmynk/safeforhall/internal/config"
	"github.com/mmynk/safeforhall/internal/metrics"
	"github.com/mmynk/safeforhall/internal/middleware"
	"github.com/mmynk/safeforhall/internal/service"
	"github.com/mmynk/safeforhall/internal/storage"
	"github.com/mmynk/safeforhall/pkg/proto/protoconnect"
)

// Store is what the server needs from its storage backend.
type Store interface {
	storage.Store
	auth.UserStorage
}

// newHandler mounts the Connect services and the metrics endpoint. When
// cfg.RequireAuth is set, the person and event services reject calls without a
// valid operator token; the auth service stays open.
func newHandler(cfg config.Config, store Store, reg *prometheus.Registry) http.Handler {
	m := metrics.New(reg)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// Logging and metrics wrap auth so rejected calls are logged and counted.
	interceptors := []connect.Interceptor{middleware.LoggingInterceptor(slog.Default()), middleware.MetricsInterceptor(m)}
	open := connect.WithInterceptors(interceptors...)
	if cfg.RequireAuth {
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager))
	}
	protected := connect.WithInterceptors(interceptors...)

	mux := http.NewServeMux()

	personPath, personHandler := protoconnect.NewPersonServiceHandler(service.NewPersonService(store), protected)
	mux.Handle(personPath, personHandler)

	eventPath, eventHandler := protoconnect.NewEventServiceHandler(service.NewEventService(store, m), protected)
	mux.Handle(eventPath, eventHandler)

	authService := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, slog.Default())
	authPath, authHandler := protoconnect.NewAuthServiceHandler(authService, open)
	mux.Handle(authPath, authHandler)

	mux.Handle(cfg.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return loggingMiddleware(corsMiddleware(mux))
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
