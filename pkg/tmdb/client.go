// Package tmdb provides a typed client for The Movie Database REST API.
//
// The client authenticates every request, maps JSON responses onto the
// typed records in pkg/models, and hands paged list endpoints out as
// pkg/pagination cursors. Transport failures propagate unchanged: there
// are no retries and no rate-limit handling.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/filmgrid/tmdb-client/pkg/cache"
)

// DefaultBaseURL is the TMDB v3 API host.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Prometheus metrics for TMDB client operations.
var (
	tmdbRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tmdb_requests_total",
		Help: "Total TMDB requests by endpoint and status",
	}, []string{"endpoint", "status"})

	tmdbRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tmdb_request_duration_seconds",
		Help:    "TMDB request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})
)

// Client is the TMDB API client.
type Client struct {
	baseURL     string
	apiKey      string
	bearerToken string
	language    string
	httpClient  *http.Client
	cache       *cache.Manager
	genres      *genreCache
	logger      zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// APIKey authenticates via the api_key query parameter (v3 auth).
	APIKey string

	// BearerToken authenticates via the Authorization header (v4 auth).
	// Exactly one of APIKey and BearerToken must be set.
	BearerToken string

	// Language requests localized data (e.g. "en-US"). Optional.
	Language string

	// BaseURL overrides the API host. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the transport. Defaults to a 30s-timeout client.
	HTTPClient *http.Client

	// Redis enables the response cache for single-object endpoints.
	// Optional; without it every request goes to the network.
	Redis *redis.Client

	// CacheTTL is the lifetime of cached responses. Defaults to
	// cache.DefaultTTL when Redis is configured.
	CacheTTL time.Duration
}

// New creates a TMDB client and eagerly loads both genre domains. A genre
// load failure does not fail construction; the domain stays unloaded and
// is refreshed on the first lookup that needs it.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if (cfg.APIKey == "") == (cfg.BearerToken == "") {
		return nil, fmt.Errorf("exactly one of APIKey and BearerToken is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	var manager *cache.Manager
	if cfg.Redis != nil {
		manager = cache.NewManager(cfg.Redis, cfg.CacheTTL)
	}

	c := &Client{
		baseURL:     baseURL,
		apiKey:      cfg.APIKey,
		bearerToken: cfg.BearerToken,
		language:    cfg.Language,
		httpClient:  httpClient,
		cache:       manager,
		genres:      newGenreCache(),
		logger:      log.With().Str("component", "tmdb-client").Logger(),
	}

	c.warmGenres(ctx)

	return c, nil
}

// Get performs a GET against a TMDB endpoint and returns the raw JSON body.
// Most callers want the typed endpoint methods instead; this is the escape
// hatch for endpoints the client does not model.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, endpoint, params)
}

// do executes one GET request with auth and language applied, returning the
// response body. Non-2xx responses become an *APIError.
func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	start := time.Now()
	defer func() {
		tmdbRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	q := cloneValues(params)
	if c.language != "" && q.Get("language") == "" {
		q.Set("language", c.language)
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	reqURL := c.baseURL + endpoint
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("Executing TMDB request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		tmdbRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("tmdb request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tmdbRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	tmdbRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("TMDB request error")
		return nil, newAPIError(endpoint, resp.StatusCode, body)
	}

	return body, nil
}

// doCached is do with the response cache consulted first. Only
// single-object endpoints go through here; list pages always hit the
// network.
func (c *Client) doCached(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.cache == nil {
		return c.do(ctx, endpoint, params)
	}

	// Cache identity covers the content-affecting parameters; credentials
	// never enter the key.
	keyQuery := cloneValues(params)
	if c.language != "" && keyQuery.Get("language") == "" {
		keyQuery.Set("language", c.language)
	}
	key := cache.Key{Endpoint: endpoint, Query: keyQuery}

	entry, err := c.cache.Get(ctx, key)
	if err == nil {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Msg("Response cache hit")
		return entry.Data, nil
	}
	if err != cache.ErrCacheMiss {
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
	}

	body, err := c.do(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, body, http.StatusOK); err != nil {
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Failed to cache response")
	}

	return body, nil
}

// getJSON decodes a GET response into dest, bypassing the response cache.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, dest any) error {
	body, err := c.do(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// cloneValues copies query parameters so shared filter maps are never
// mutated by a request.
func cloneValues(params url.Values) url.Values {
	q := make(url.Values, len(params)+2)
	for key, vals := range params {
		q[key] = append([]string(nil), vals...)
	}
	return q
}
