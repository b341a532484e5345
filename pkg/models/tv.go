package models

// TVSeries is the summary record returned by TV list endpoints.
type TVSeries struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Overview         string   `json:"overview"`
	FirstAirDate     Date     `json:"first_air_date"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	PosterPath       string   `json:"poster_path"`
	BackdropPath     string   `json:"backdrop_path"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	OriginalName     string   `json:"original_name"`
	Popularity       float64  `json:"popularity"`
}

// Validate implements Record.
func (s TVSeries) Validate() error {
	if s.ID == 0 {
		return &SchemaError{Entity: "TVSeries", Field: "id"}
	}
	if s.Name == "" {
		return &SchemaError{Entity: "TVSeries", Field: "name"}
	}
	return nil
}

// PosterURL derives the poster URL at original size, empty when the series
// has no poster.
func (s TVSeries) PosterURL() string {
	return ImageURL(s.PosterPath, SizeOriginal)
}

// PosterURLSized derives the poster URL at the given size.
func (s TVSeries) PosterURLSized(size string) string {
	return ImageURL(s.PosterPath, size)
}

// BackdropURL derives the backdrop URL at original size, empty when the
// series has no backdrop.
func (s TVSeries) BackdropURL() string {
	return ImageURL(s.BackdropPath, SizeOriginal)
}

// Season is the condensed season record on series details.
type Season struct {
	ID           int     `json:"id"`
	AirDate      Date    `json:"air_date"`
	EpisodeCount int     `json:"episode_count"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	SeasonNumber int     `json:"season_number"`
	VoteAverage  float64 `json:"vote_average"`
}

// Validate implements Record.
func (s Season) Validate() error {
	if s.ID == 0 {
		return &SchemaError{Entity: "Season", Field: "id"}
	}
	return nil
}

// PosterURL derives the season poster URL, empty when no poster exists.
func (s Season) PosterURL() string {
	return ImageURL(s.PosterPath, SizeOriginal)
}

// Episode is one episode of a TV series.
type Episode struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Overview       string  `json:"overview"`
	VoteAverage    float64 `json:"vote_average"`
	VoteCount      int     `json:"vote_count"`
	AirDate        Date    `json:"air_date"`
	EpisodeNumber  int     `json:"episode_number"`
	ProductionCode string  `json:"production_code"`
	Runtime        int     `json:"runtime"`
	SeasonNumber   int     `json:"season_number"`
	ShowID         int     `json:"show_id"`
	StillPath      string  `json:"still_path"`
}

// Validate implements Record.
func (e Episode) Validate() error {
	if e.ID == 0 {
		return &SchemaError{Entity: "Episode", Field: "id"}
	}
	return nil
}

// StillURL derives the episode still URL, empty when no still exists.
func (e Episode) StillURL() string {
	return ImageURL(e.StillPath, SizeOriginal)
}

// TVSeriesDetails extends the summary shape with the fields of the
// single-series endpoint. As with movies, the bare genre-ID list is
// suppressed in favor of full genre objects.
type TVSeriesDetails struct {
	TVSeries

	// GenreIDs shadows the summary field so detail records never emit a
	// bare genre-ID list alongside Genres.
	GenreIDs            []int      `json:"genre_ids,omitempty"`
	Genres              []Genre    `json:"genres"`
	CreatedBy           []Creator  `json:"created_by"`
	EpisodeRunTime      []int      `json:"episode_run_time"`
	Homepage            string     `json:"homepage"`
	InProduction        bool       `json:"in_production"`
	Languages           []string   `json:"languages"`
	LastAirDate         Date       `json:"last_air_date"`
	LastEpisodeToAir    *Episode   `json:"last_episode_to_air"`
	NextEpisodeToAir    *Episode   `json:"next_episode_to_air"`
	Networks            []Network  `json:"networks"`
	NumberOfEpisodes    int        `json:"number_of_episodes"`
	NumberOfSeasons     int        `json:"number_of_seasons"`
	ProductionCompanies []Network  `json:"production_companies"`
	ProductionCountries []Country  `json:"production_countries"`
	Seasons             []Season   `json:"seasons"`
	SpokenLanguages     []Language `json:"spoken_languages"`
	Status              string     `json:"status"`
	Tagline             string     `json:"tagline"`
	Type                string     `json:"type"`
}

// Validate implements Record.
func (s TVSeriesDetails) Validate() error {
	if err := s.TVSeries.Validate(); err != nil {
		if se, ok := err.(*SchemaError); ok {
			return &SchemaError{Entity: "TVSeriesDetails", Field: se.Field, Err: se.Err}
		}
		return err
	}
	for _, g := range s.Genres {
		if err := g.Validate(); err != nil {
			return &SchemaError{Entity: "TVSeriesDetails", Field: "genres", Err: err}
		}
	}
	return nil
}

// SeasonDetails extends the condensed season shape with its full episode
// list, as returned by the single-season endpoint.
type SeasonDetails struct {
	Season

	Episodes []EpisodeDetails `json:"episodes"`
}

// Validate implements Record.
func (s SeasonDetails) Validate() error {
	if err := s.Season.Validate(); err != nil {
		if se, ok := err.(*SchemaError); ok {
			return &SchemaError{Entity: "SeasonDetails", Field: se.Field, Err: se.Err}
		}
		return err
	}
	if s.Episodes == nil {
		return &SchemaError{Entity: "SeasonDetails", Field: "episodes"}
	}
	return nil
}

// EpisodeDetails extends the episode shape with its crew list.
type EpisodeDetails struct {
	Episode

	Crew []CrewMember `json:"crew"`
}

// Validate implements Record.
func (e EpisodeDetails) Validate() error {
	if err := e.Episode.Validate(); err != nil {
		if se, ok := err.(*SchemaError); ok {
			return &SchemaError{Entity: "EpisodeDetails", Field: se.Field, Err: se.Err}
		}
		return err
	}
	return nil
}

// TVSeriesImages is the image set of one TV series.
type TVSeriesImages struct {
	ID        int          `json:"id"`
	Backdrops []MediaImage `json:"backdrops"`
	Logos     []MediaImage `json:"logos"`
	Posters   []MediaImage `json:"posters"`
}

// Validate implements Record.
func (s TVSeriesImages) Validate() error {
	if s.Backdrops == nil {
		return &SchemaError{Entity: "TVSeriesImages", Field: "backdrops"}
	}
	if s.Posters == nil {
		return &SchemaError{Entity: "TVSeriesImages", Field: "posters"}
	}
	return nil
}

// SeasonImages is the poster set of one season.
type SeasonImages struct {
	ID      int          `json:"id"`
	Posters []MediaImage `json:"posters"`
}

// Validate implements Record.
func (s SeasonImages) Validate() error {
	if s.Posters == nil {
		return &SchemaError{Entity: "SeasonImages", Field: "posters"}
	}
	return nil
}

// EpisodeImages is the still set of one episode.
type EpisodeImages struct {
	ID     int          `json:"id"`
	Stills []MediaImage `json:"stills"`
}

// Validate implements Record.
func (e EpisodeImages) Validate() error {
	if e.Stills == nil {
		return &SchemaError{Entity: "EpisodeImages", Field: "stills"}
	}
	return nil
}

// TVSeriesCredits is the cast and crew of one TV series.
type TVSeriesCredits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Validate implements Record.
func (c TVSeriesCredits) Validate() error {
	if c.ID == 0 {
		return &SchemaError{Entity: "TVSeriesCredits", Field: "id"}
	}
	if c.Cast == nil {
		return &SchemaError{Entity: "TVSeriesCredits", Field: "cast"}
	}
	if c.Crew == nil {
		return &SchemaError{Entity: "TVSeriesCredits", Field: "crew"}
	}
	return nil
}
