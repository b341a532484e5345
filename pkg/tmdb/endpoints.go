package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/filmgrid/tmdb-client/pkg/models"
	"github.com/filmgrid/tmdb-client/pkg/pagination"
)

// pageFetch binds an endpoint and its fixed filters into a page-fetch
// function for a paginator. The page number is the only parameter the
// paginator controls.
func (c *Client) pageFetch(endpoint string, params url.Values) pagination.FetchFunc {
	return func(ctx context.Context, page int) (*pagination.PageResponse, error) {
		q := cloneValues(params)
		q.Set("page", strconv.Itoa(page))

		var res pagination.PageResponse
		if err := c.getJSON(ctx, endpoint, q, &res); err != nil {
			return nil, err
		}
		return &res, nil
	}
}

// fetchObject retrieves one entity through the response cache and
// validates it into a typed record.
func fetchObject[T models.Record](ctx context.Context, c *Client, endpoint string, params url.Values) (T, error) {
	var zero T
	body, err := c.doCached(ctx, endpoint, params)
	if err != nil {
		return zero, err
	}
	return models.Decode[T](body)
}

// fetchList retrieves a {"results": [...]} wrapper through the response
// cache and validates every entry. Unlike the paginator, an invalid entry
// here fails the whole call.
func fetchList[T models.Record](ctx context.Context, c *Client, endpoint string, params url.Values) ([]T, error) {
	body, err := c.doCached(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var res struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}

	items := make([]T, 0, len(res.Results))
	for _, raw := range res.Results {
		item, err := models.Decode[T](raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// DiscoverMovies returns a paginator over /discover/movie with the given
// filters (e.g. "with_genres", "primary_release_year") held fixed.
func (c *Client) DiscoverMovies(filters url.Values) *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch("/discover/movie", filters))
}

// DiscoverTVSeries returns a paginator over /discover/tv with the given
// filters held fixed.
func (c *Client) DiscoverTVSeries(filters url.Values) *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch("/discover/tv", filters))
}

// PopularMovies returns a paginator over the popular movies list.
func (c *Client) PopularMovies() *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch("/movie/popular", nil))
}

// PopularTVSeries returns a paginator over the popular TV series list.
func (c *Client) PopularTVSeries() *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch("/tv/popular", nil))
}

// TopRatedMovies returns a paginator over the top rated movies list.
func (c *Client) TopRatedMovies() *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch("/movie/top_rated", nil))
}

// TopRatedTVSeries returns a paginator over the top rated TV series list.
func (c *Client) TopRatedTVSeries() *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch("/tv/top_rated", nil))
}

// UpcomingMovies returns a paginator over the upcoming movies list.
func (c *Client) UpcomingMovies() *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch("/movie/upcoming", nil))
}

// NowPlayingMovies returns a paginator over the now playing movies list.
func (c *Client) NowPlayingMovies() *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch("/movie/now_playing", nil))
}

// AiringTodayTVSeries returns a paginator over the airing today list.
func (c *Client) AiringTodayTVSeries() *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch("/tv/airing_today", nil))
}

// OnTheAirTVSeries returns a paginator over the on the air list.
func (c *Client) OnTheAirTVSeries() *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch("/tv/on_the_air", nil))
}

// SimilarMovies returns a paginator over movies similar to the given one.
func (c *Client) SimilarMovies(id int) *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch(fmt.Sprintf("/movie/%d/similar", id), nil))
}

// SimilarTVSeries returns a paginator over series similar to the given one.
func (c *Client) SimilarTVSeries(id int) *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch(fmt.Sprintf("/tv/%d/similar", id), nil))
}

// MovieRecommendations returns a paginator over recommendations for the
// given movie.
func (c *Client) MovieRecommendations(id int) *pagination.Paginator[models.Movie] {
	return pagination.New[models.Movie](c.pageFetch(fmt.Sprintf("/movie/%d/recommendations", id), nil))
}

// TVSeriesRecommendations returns a paginator over recommendations for the
// given series.
func (c *Client) TVSeriesRecommendations(id int) *pagination.Paginator[models.TVSeries] {
	return pagination.New[models.TVSeries](c.pageFetch(fmt.Sprintf("/tv/%d/recommendations", id), nil))
}

// SearchMoviesOptions narrows a movie search.
type SearchMoviesOptions struct {
	// IncludeAdult toggles adult results; nil leaves the server default.
	IncludeAdult *bool

	// Year restricts results to a release year. Zero means unrestricted.
	Year int
}

// SearchMovies returns a paginator over a movie title search.
func (c *Client) SearchMovies(query string, opts SearchMoviesOptions) *pagination.Paginator[models.Movie] {
	params := url.Values{}
	params.Set("query", query)
	if opts.IncludeAdult != nil {
		params.Set("include_adult", strconv.FormatBool(*opts.IncludeAdult))
	}
	if opts.Year != 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	return pagination.New[models.Movie](c.pageFetch("/search/movie", params))
}

// SearchTVSeriesOptions narrows a TV series search.
type SearchTVSeriesOptions struct {
	// IncludeAdult toggles adult results; nil leaves the server default.
	IncludeAdult *bool

	// FirstAirDateYear restricts results to a first air year. Zero means
	// unrestricted.
	FirstAirDateYear int

	// Year restricts results to a year. Zero means unrestricted.
	Year int
}

// SearchTVSeries returns a paginator over a TV series title search.
func (c *Client) SearchTVSeries(query string, opts SearchTVSeriesOptions) *pagination.Paginator[models.TVSeries] {
	params := url.Values{}
	params.Set("query", query)
	if opts.IncludeAdult != nil {
		params.Set("include_adult", strconv.FormatBool(*opts.IncludeAdult))
	}
	if opts.FirstAirDateYear != 0 {
		params.Set("first_air_date_year", strconv.Itoa(opts.FirstAirDateYear))
	}
	if opts.Year != 0 {
		params.Set("year", strconv.Itoa(opts.Year))
	}
	return pagination.New[models.TVSeries](c.pageFetch("/search/tv", params))
}

// SearchMulti searches across movies, TV series and people in one call.
// The mixed result shapes stay raw; callers pick them apart themselves.
func (c *Client) SearchMulti(ctx context.Context, query string, includeAdult *bool, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	if includeAdult != nil {
		params.Set("include_adult", strconv.FormatBool(*includeAdult))
	}
	return c.do(ctx, "/search/multi", params)
}

// MovieDetails returns the full record for one movie.
func (c *Client) MovieDetails(ctx context.Context, id int) (models.MovieDetails, error) {
	return fetchObject[models.MovieDetails](ctx, c, fmt.Sprintf("/movie/%d", id), nil)
}

// TVSeriesDetails returns the full record for one TV series.
func (c *Client) TVSeriesDetails(ctx context.Context, id int) (models.TVSeriesDetails, error) {
	return fetchObject[models.TVSeriesDetails](ctx, c, fmt.Sprintf("/tv/%d", id), nil)
}

// SeasonDetails returns the full record for one season, episodes included.
func (c *Client) SeasonDetails(ctx context.Context, seriesID, seasonNumber int) (models.SeasonDetails, error) {
	endpoint := fmt.Sprintf("/tv/%d/season/%d", seriesID, seasonNumber)
	return fetchObject[models.SeasonDetails](ctx, c, endpoint, nil)
}

// EpisodeDetails returns the full record for one episode.
func (c *Client) EpisodeDetails(ctx context.Context, seriesID, seasonNumber, episodeNumber int) (models.EpisodeDetails, error) {
	endpoint := fmt.Sprintf("/tv/%d/season/%d/episode/%d", seriesID, seasonNumber, episodeNumber)
	return fetchObject[models.EpisodeDetails](ctx, c, endpoint, nil)
}

// imageParams builds the language filter for image endpoints. TMDB tags
// most images with a language, so an explicit one is usually required to
// get results at all.
func imageParams(language string) url.Values {
	if language == "" {
		return nil
	}
	params := url.Values{}
	params.Set("language", language)
	return params
}

// MovieImages returns the image set for a movie, filtered by language.
func (c *Client) MovieImages(ctx context.Context, id int, language string) (models.MovieImages, error) {
	return fetchObject[models.MovieImages](ctx, c, fmt.Sprintf("/movie/%d/images", id), imageParams(language))
}

// TVSeriesImages returns the image set for a TV series, filtered by
// language.
func (c *Client) TVSeriesImages(ctx context.Context, id int, language string) (models.TVSeriesImages, error) {
	return fetchObject[models.TVSeriesImages](ctx, c, fmt.Sprintf("/tv/%d/images", id), imageParams(language))
}

// SeasonImages returns the poster set for a season, filtered by language.
func (c *Client) SeasonImages(ctx context.Context, seriesID, seasonNumber int, language string) (models.SeasonImages, error) {
	endpoint := fmt.Sprintf("/tv/%d/season/%d/images", seriesID, seasonNumber)
	return fetchObject[models.SeasonImages](ctx, c, endpoint, imageParams(language))
}

// EpisodeImages returns the still set for an episode, filtered by language.
func (c *Client) EpisodeImages(ctx context.Context, seriesID, seasonNumber, episodeNumber int, language string) (models.EpisodeImages, error) {
	endpoint := fmt.Sprintf("/tv/%d/season/%d/episode/%d/images", seriesID, seasonNumber, episodeNumber)
	return fetchObject[models.EpisodeImages](ctx, c, endpoint, imageParams(language))
}

// MovieVideos returns the trailers, teasers and clips for a movie.
func (c *Client) MovieVideos(ctx context.Context, id int) ([]models.Video, error) {
	return fetchList[models.Video](ctx, c, fmt.Sprintf("/movie/%d/videos", id), nil)
}

// TVVideos returns the trailers, teasers and clips for a TV series.
func (c *Client) TVVideos(ctx context.Context, id int) ([]models.Video, error) {
	return fetchList[models.Video](ctx, c, fmt.Sprintf("/tv/%d/videos", id), nil)
}

// MovieCredits returns the cast and crew for a movie.
func (c *Client) MovieCredits(ctx context.Context, id int) (models.MovieCredits, error) {
	return fetchObject[models.MovieCredits](ctx, c, fmt.Sprintf("/movie/%d/credits", id), nil)
}

// TVSeriesCredits returns the cast and crew for a TV series.
func (c *Client) TVSeriesCredits(ctx context.Context, id int) (models.TVSeriesCredits, error) {
	return fetchObject[models.TVSeriesCredits](ctx, c, fmt.Sprintf("/tv/%d/credits", id), nil)
}

// MovieCertifications returns the movie certification lists by country.
func (c *Client) MovieCertifications(ctx context.Context) (models.Certifications, error) {
	return fetchObject[models.Certifications](ctx, c, "/certification/movie/list", nil)
}

// TVCertifications returns the TV certification lists by country.
func (c *Client) TVCertifications(ctx context.Context) (models.Certifications, error) {
	return fetchObject[models.Certifications](ctx, c, "/certification/tv/list", nil)
}
