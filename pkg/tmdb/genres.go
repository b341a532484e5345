package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/filmgrid/tmdb-client/pkg/models"
)

// MediaType tags the two genre domains TMDB maintains.
type MediaType string

const (
	// MediaTypeMovie is the movie genre domain.
	MediaTypeMovie MediaType = "movie"

	// MediaTypeTV is the TV genre domain.
	MediaTypeTV MediaType = "tv"
)

// genreDomains fixes the lookup order. On an ID collision across domains
// the movie genre wins.
var genreDomains = [...]MediaType{MediaTypeMovie, MediaTypeTV}

// genreCache holds the per-domain genre lists. A nil slice means the
// domain has not been loaded yet.
type genreCache struct {
	mu      sync.RWMutex
	domains map[MediaType][]models.Genre
}

func newGenreCache() *genreCache {
	return &genreCache{
		domains: map[MediaType][]models.Genre{
			MediaTypeMovie: nil,
			MediaTypeTV:    nil,
		},
	}
}

func (g *genreCache) get(domain MediaType) ([]models.Genre, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	genres := g.domains[domain]
	return genres, genres != nil
}

func (g *genreCache) store(domain MediaType, genres []models.Genre) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.domains[domain] = genres
}

// warmGenres eagerly populates both genre domains at construction. A
// failed load leaves the domain unloaded for the lazy-refresh path.
func (c *Client) warmGenres(ctx context.Context) {
	for _, domain := range genreDomains {
		if _, err := c.loadGenres(ctx, domain); err != nil {
			c.logger.Warn().
				Err(err).
				Str("domain", string(domain)).
				Msg("Eager genre load failed; will retry on first lookup")
		}
	}
}

// loadGenres fetches one domain's genre list and replaces the cached copy.
func (c *Client) loadGenres(ctx context.Context, domain MediaType) ([]models.Genre, error) {
	endpoint := "/genre/" + string(domain) + "/list"

	body, err := c.doCached(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var res struct {
		Genres []json.RawMessage `json:"genres"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}

	genres := make([]models.Genre, 0, len(res.Genres))
	for _, raw := range res.Genres {
		genre, err := models.Decode[models.Genre](raw)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	c.genres.store(domain, genres)

	c.logger.Debug().
		Str("domain", string(domain)).
		Int("count", len(genres)).
		Msg("Genre domain loaded")

	return genres, nil
}

// MovieGenres returns the movie genre list, refreshing the cached copy.
func (c *Client) MovieGenres(ctx context.Context) ([]models.Genre, error) {
	return c.loadGenres(ctx, MediaTypeMovie)
}

// TVGenres returns the TV genre list, refreshing the cached copy.
func (c *Client) TVGenres(ctx context.Context) ([]models.Genre, error) {
	return c.loadGenres(ctx, MediaTypeTV)
}

// GenreByID looks a genre up by ID across the cached domains, loading any
// domain that is still unloaded. Movie genres are scanned before TV
// genres, so a colliding ID resolves to the movie domain. Fails with
// ErrGenreNotFound when no domain matches.
func (c *Client) GenreByID(ctx context.Context, id int) (models.Genre, error) {
	for _, domain := range genreDomains {
		genres, ok := c.genres.get(domain)
		if !ok {
			var err error
			genres, err = c.loadGenres(ctx, domain)
			if err != nil {
				return models.Genre{}, err
			}
		}
		for _, genre := range genres {
			if genre.ID == id {
				return genre, nil
			}
		}
	}
	return models.Genre{}, fmt.Errorf("%w: id %d", ErrGenreNotFound, id)
}
