package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/filmgrid/tmdb-client/pkg/logging"
	"github.com/filmgrid/tmdb-client/pkg/metrics"
	"github.com/filmgrid/tmdb-client/pkg/tmdb"
)

func main() {
	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
	})

	// Configuration from environment
	apiKey := os.Getenv("TMDB_API_KEY")
	bearerToken := os.Getenv("TMDB_BEARER_TOKEN")
	language := os.Getenv("TMDB_LANGUAGE")
	redisURL := os.Getenv("REDIS_URL")
	port := getEnv("PORT", "8080")

	ctx := context.Background()

	// Redis is optional; without it the proxy runs uncached.
	var redisClient *redis.Client
	if redisURL != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: redisURL,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", redisURL).Msg("Failed to connect to Redis")
		}
		logger.Info().Str("addr", redisURL).Msg("Connected to Redis")
	}

	tmdbClient, err := tmdb.New(ctx, tmdb.Config{
		APIKey:      apiKey,
		BearerToken: bearerToken,
		Language:    language,
		Redis:       redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create TMDB client")
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/ready", readyHandler(redisClient))
	http.Handle("/metrics", metrics.Handler())
	http.HandleFunc("/tmdb/", tmdbProxyHandler(tmdbClient, logger))

	addr := ":" + port
	logger.Info().Str("addr", addr).Msg("Starting TMDB proxy server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// readyHandler reports readiness. With Redis configured it requires a
// successful ping; without Redis the proxy is always ready.
func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()).Err(); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				fmt.Fprintf(w, "Redis unavailable: %v", err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}
}

// tmdbProxyHandler forwards GET requests to TMDB, re-applying the caller's
// query parameters. Example: /tmdb/movie/603 -> /movie/603.
func tmdbProxyHandler(tmdbClient *tmdb.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoint := strings.TrimPrefix(r.URL.Path, "/tmdb")
		if endpoint == "" || endpoint == "/" {
			http.Error(w, "missing TMDB endpoint", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		body, err := tmdbClient.Get(ctx, endpoint, r.URL.Query())
		if err != nil {
			var apiErr *tmdb.APIError
			if errors.As(err, &apiErr) {
				// Pass TMDB errors through with their original status.
				w.Header().Set("Content-Type", "application/json;charset=utf-8")
				w.WriteHeader(apiErr.StatusCode)
				fmt.Fprintf(w, `{"status_message": %q}`, apiErr.Message)
				return
			}
			http.Error(w, fmt.Sprintf("TMDB request failed: %v", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json;charset=utf-8")
		if _, err := w.Write(body); err != nil {
			logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to write response")
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
