package pagination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/filmgrid/tmdb-client/pkg/models"
)

// Prometheus metrics for paginator operations.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmdb_paginator_pages_fetched_total",
		Help: "Total pages materialized by paginators",
	})

	entitiesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmdb_paginator_entities_dropped_total",
		Help: "Total raw entities dropped because they failed record validation",
	})
)

// Errors returned by paginator operations.
var (
	// ErrExhausted is returned by NextPage when the current page is already
	// the last known one.
	ErrExhausted = errors.New("pagination exhausted")

	// ErrInvalidPage is returned by GoToPage for a page outside the valid range.
	ErrInvalidPage = errors.New("invalid page number")
)

// PageResponse is the wire shape every page-fetch function must return.
// Results stays raw so the paginator can validate entities one by one.
type PageResponse struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	Results      []json.RawMessage `json:"results"`
}

// FetchFunc performs the network call for one page. The paginator treats it
// as an opaque blocking operation; cancellation and timeouts are the
// function's own contract via ctx.
type FetchFunc func(ctx context.Context, page int) (*PageResponse, error)

// Paginator is a cursor over one paged list endpoint, generic over the
// record type of its entities. The zero value is not usable; construct
// with New.
type Paginator[T models.Record] struct {
	fetch FetchFunc

	page         int
	totalPages   int // 0 until the first fetch completes
	totalResults int
	loaded       bool
	items        []T
}

// New creates a paginator positioned on page 1, with no fetch performed yet.
func New[T models.Record](fetch FetchFunc) *Paginator[T] {
	return &Paginator[T]{
		fetch: fetch,
		page:  1,
	}
}

// Page returns the current page number.
func (p *Paginator[T]) Page() int {
	return p.page
}

// TotalPages returns the total page count and whether it is known yet.
func (p *Paginator[T]) TotalPages() (int, bool) {
	return p.totalPages, p.totalPages > 0
}

// TotalResults returns the total result count and whether it is known yet.
func (p *Paginator[T]) TotalResults() (int, bool) {
	return p.totalResults, p.totalPages > 0
}

// Items returns the current page's materialized records. The slice is
// replaced wholesale by every successful fetch.
func (p *Paginator[T]) Items() []T {
	return p.items
}

// HasNextPage reports whether another page may exist: true while the total
// is still unknown, or while the current page is before the last one.
func (p *Paginator[T]) HasNextPage() bool {
	return p.totalPages == 0 || p.page < p.totalPages
}

// FetchCurrentPage fetches the paginator's current page and materializes
// its records. Raw entities that fail validation are dropped from the page
// without error; the page can therefore end up shorter than the server
// announced. A fetch failure propagates unchanged and leaves all paginator
// state untouched.
func (p *Paginator[T]) FetchCurrentPage(ctx context.Context) ([]T, error) {
	return p.materialize(ctx, p.page)
}

// NextPage moves to the following page and fetches it. It fails with
// ErrExhausted once the current page is known to be the last; while the
// total is unknown the server stays the source of truth and the fetch is
// always attempted.
func (p *Paginator[T]) NextPage(ctx context.Context) ([]T, error) {
	if p.totalPages > 0 && p.page >= p.totalPages {
		return nil, fmt.Errorf("%w: already on page %d of %d", ErrExhausted, p.page, p.totalPages)
	}
	return p.materialize(ctx, p.page+1)
}

// GoToPage jumps to an arbitrary page and fetches it, re-fetching even when
// asked for the page the paginator is already on. It fails with
// ErrInvalidPage for page < 1, or past the known total.
func (p *Paginator[T]) GoToPage(ctx context.Context, page int) ([]T, error) {
	if page < 1 || (p.totalPages > 0 && page > p.totalPages) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	return p.materialize(ctx, page)
}

// First returns the first record of the current page, fetching only if no
// fetch has completed yet. Once any page is loaded it never re-fetches,
// even when that page is empty; an empty loaded page yields nil, nil.
func (p *Paginator[T]) First(ctx context.Context) (*T, error) {
	if !p.loaded {
		if _, err := p.materialize(ctx, p.page); err != nil {
			return nil, err
		}
	}
	if len(p.items) == 0 {
		return nil, nil
	}
	return &p.items[0], nil
}

// materialize performs the fetch for the requested page and commits the
// response to paginator state. Nothing is mutated before the fetch
// succeeds.
func (p *Paginator[T]) materialize(ctx context.Context, page int) ([]T, error) {
	res, err := p.fetch(ctx, page)
	if err != nil {
		return nil, err
	}

	// The server-reported page number is authoritative.
	if res.Page >= 1 {
		p.page = res.Page
	} else {
		p.page = page
	}

	// Once known, the total page count never decreases.
	if res.TotalPages > p.totalPages {
		p.totalPages = res.TotalPages
	}
	p.totalResults = res.TotalResults

	items := make([]T, 0, len(res.Results))
	dropped := 0
	for _, raw := range res.Results {
		rec, err := models.Decode[T](raw)
		if err != nil {
			dropped++
			log.Debug().
				Err(err).
				Int("page", p.page).
				Msg("Dropping entity that failed validation")
			continue
		}
		items = append(items, rec)
	}

	if dropped > 0 {
		entitiesDroppedTotal.Add(float64(dropped))
		log.Debug().
			Int("page", p.page).
			Int("dropped", dropped).
			Int("materialized", len(items)).
			Msg("Page materialized with dropped entities")
	}

	p.items = items
	p.loaded = true
	pagesFetchedTotal.Inc()

	return p.items, nil
}
