package models

// Movie is the summary record returned by list endpoints (discover, search,
// popular and friends).
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      Date    `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Popularity       float64 `json:"popularity"`
	Video            bool    `json:"video"`
}

// Validate implements Record.
func (m Movie) Validate() error {
	if m.ID == 0 {
		return &SchemaError{Entity: "Movie", Field: "id"}
	}
	if m.Title == "" {
		return &SchemaError{Entity: "Movie", Field: "title"}
	}
	return nil
}

// PosterURL derives the poster URL at original size, empty when the movie
// has no poster.
func (m Movie) PosterURL() string {
	return ImageURL(m.PosterPath, SizeOriginal)
}

// PosterURLSized derives the poster URL at the given size.
func (m Movie) PosterURLSized(size string) string {
	return ImageURL(m.PosterPath, size)
}

// BackdropURL derives the backdrop URL at original size, empty when the
// movie has no backdrop.
func (m Movie) BackdropURL() string {
	return ImageURL(m.BackdropPath, SizeOriginal)
}

// MovieDetails extends the summary shape with the fields of the single-movie
// endpoint. Detail responses carry full genre objects, so the summary's bare
// genre-ID list is suppressed here.
type MovieDetails struct {
	Movie

	// GenreIDs shadows the summary field so detail records never emit a
	// bare genre-ID list alongside Genres.
	GenreIDs        []int            `json:"genre_ids,omitempty"`
	Genres          []Genre          `json:"genres"`
	Adult           bool             `json:"adult"`
	Budget          int64            `json:"budget"`
	Homepage        string           `json:"homepage"`
	IMDBID          string           `json:"imdb_id"`
	Revenue         int64            `json:"revenue"`
	Runtime         int              `json:"runtime"`
	Status          string           `json:"status"`
	Tagline         string           `json:"tagline"`
	SpokenLanguages []SpokenLanguage `json:"spoken_languages"`
}

// Validate implements Record.
func (m MovieDetails) Validate() error {
	if err := m.Movie.Validate(); err != nil {
		if se, ok := err.(*SchemaError); ok {
			return &SchemaError{Entity: "MovieDetails", Field: se.Field, Err: se.Err}
		}
		return err
	}
	for _, g := range m.Genres {
		if err := g.Validate(); err != nil {
			return &SchemaError{Entity: "MovieDetails", Field: "genres", Err: err}
		}
	}
	return nil
}

// MovieImages is the image set of one movie.
type MovieImages struct {
	ID        int          `json:"id"`
	Backdrops []MediaImage `json:"backdrops"`
	Logos     []MediaImage `json:"logos"`
	Posters   []MediaImage `json:"posters"`
}

// Validate implements Record.
func (m MovieImages) Validate() error {
	if m.Backdrops == nil {
		return &SchemaError{Entity: "MovieImages", Field: "backdrops"}
	}
	if m.Posters == nil {
		return &SchemaError{Entity: "MovieImages", Field: "posters"}
	}
	return nil
}

// MovieCredits is the cast and crew of one movie.
type MovieCredits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Validate implements Record.
func (m MovieCredits) Validate() error {
	if m.ID == 0 {
		return &SchemaError{Entity: "MovieCredits", Field: "id"}
	}
	if m.Cast == nil {
		return &SchemaError{Entity: "MovieCredits", Field: "cast"}
	}
	if m.Crew == nil {
		return &SchemaError{Entity: "MovieCredits", Field: "crew"}
	}
	return nil
}
