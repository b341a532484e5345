package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTVSeries_Validate(t *testing.T) {
	tests := []struct {
		name    string
		series  TVSeries
		wantErr bool
	}{
		{name: "valid", series: TVSeries{ID: 1396, Name: "Breaking Bad"}},
		{name: "missing_id", series: TVSeries{Name: "Breaking Bad"}, wantErr: true},
		{name: "missing_name", series: TVSeries{ID: 1396}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTVSeriesDetails_Decode(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 1396,
		"name": "Breaking Bad",
		"first_air_date": "2008-01-20",
		"last_air_date": "2013-09-29",
		"number_of_seasons": 5,
		"number_of_episodes": 62,
		"in_production": false,
		"status": "Ended",
		"type": "Scripted",
		"genres": [{"id": 18, "name": "Drama"}],
		"created_by": [{"id": 66633, "credit_id": "abc", "name": "Vince Gilligan"}],
		"networks": [{"id": 174, "name": "AMC", "logo_path": "/amc.png", "origin_country": "US"}],
		"seasons": [
			{"id": 3572, "season_number": 1, "episode_count": 7, "name": "Season 1", "air_date": "2008-01-20"}
		]
	}`)

	details, err := Decode[TVSeriesDetails](raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if details.Name != "Breaking Bad" {
		t.Errorf("Name = %q", details.Name)
	}
	if details.NumberOfSeasons != 5 {
		t.Errorf("NumberOfSeasons = %d, want 5", details.NumberOfSeasons)
	}
	if len(details.CreatedBy) != 1 || details.CreatedBy[0].Name != "Vince Gilligan" {
		t.Errorf("CreatedBy = %v", details.CreatedBy)
	}
	if len(details.Networks) != 1 || details.Networks[0].LogoURL() != "https://image.tmdb.org/t/p/original/amc.png" {
		t.Errorf("Networks = %v", details.Networks)
	}
	if len(details.Seasons) != 1 || details.Seasons[0].SeasonNumber != 1 {
		t.Errorf("Seasons = %v", details.Seasons)
	}
}

func TestTVSeriesDetails_GenreIDSuppression(t *testing.T) {
	details := TVSeriesDetails{
		TVSeries: TVSeries{
			ID:       1396,
			Name:     "Breaking Bad",
			GenreIDs: []int{18},
		},
		Genres: []Genre{{ID: 18, Name: "Drama"}},
	}

	data, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if strings.Contains(string(data), "genre_ids") {
		t.Errorf("Marshaled details contain genre_ids: %s", data)
	}
}

func TestSeasonDetails_Validate(t *testing.T) {
	valid := SeasonDetails{
		Season:   Season{ID: 3572, SeasonNumber: 1},
		Episodes: []EpisodeDetails{},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	// The single-season endpoint always carries an episode list.
	missing := SeasonDetails{Season: Season{ID: 3572}}
	if err := missing.Validate(); err == nil {
		t.Error("Expected validation error for missing episodes")
	}
}

func TestEpisode_StillURL(t *testing.T) {
	ep := Episode{ID: 62085, StillPath: "/still.jpg"}
	if got := ep.StillURL(); got != "https://image.tmdb.org/t/p/original/still.jpg" {
		t.Errorf("StillURL = %q", got)
	}

	if got := (Episode{ID: 1}).StillURL(); got != "" {
		t.Errorf("StillURL = %q, want empty for missing still", got)
	}
}

func TestEpisodeImages_Validate(t *testing.T) {
	if err := (EpisodeImages{ID: 1, Stills: []MediaImage{}}).Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if err := (EpisodeImages{ID: 1}).Validate(); err == nil {
		t.Error("Expected validation error for missing stills")
	}
}
