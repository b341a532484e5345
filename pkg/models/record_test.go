package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecode_ValidMovie(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 603,
		"title": "The Matrix",
		"release_date": "1999-03-30",
		"vote_average": 8.2,
		"genre_ids": [28, 878],
		"poster_path": "/matrix.jpg"
	}`)

	movie, err := Decode[Movie](raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if movie.ID != 603 {
		t.Errorf("ID = %d, want 603", movie.ID)
	}
	if movie.Title != "The Matrix" {
		t.Errorf("Title = %q, want %q", movie.Title, "The Matrix")
	}
	if movie.ReleaseDate.Year() != 1999 {
		t.Errorf("ReleaseDate year = %d, want 1999", movie.ReleaseDate.Year())
	}
	if len(movie.GenreIDs) != 2 {
		t.Errorf("GenreIDs = %v, want two entries", movie.GenreIDs)
	}
}

func TestDecode_ValidationFailure(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantEntity string
		wantField  string
	}{
		{
			name:       "missing_title",
			raw:        `{"id": 603}`,
			wantEntity: "Movie",
			wantField:  "title",
		},
		{
			name:       "missing_id",
			raw:        `{"title": "The Matrix"}`,
			wantEntity: "Movie",
			wantField:  "id",
		},
		{
			name:       "empty_object",
			raw:        `{}`,
			wantEntity: "Movie",
			wantField:  "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[Movie](json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Expected *SchemaError, got %T: %v", err, err)
			}
			if se.Entity != tt.wantEntity {
				t.Errorf("Entity = %q, want %q", se.Entity, tt.wantEntity)
			}
			if se.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", se.Field, tt.wantField)
			}
		})
	}
}

func TestDecode_TypeMismatch(t *testing.T) {
	// id arrives as a string instead of a number
	raw := json.RawMessage(`{"id": "not-a-number", "title": "The Matrix"}`)

	_, err := Decode[Movie](raw)
	if err == nil {
		t.Fatal("Expected decode error, got nil")
	}

	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *SchemaError, got %T: %v", err, err)
	}
	if se.Entity != "Movie" {
		t.Errorf("Entity = %q, want %q", se.Entity, "Movie")
	}
	if se.Field != "id" {
		t.Errorf("Field = %q, want %q", se.Field, "id")
	}
	if se.Unwrap() == nil {
		t.Error("Expected wrapped json error")
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode[Movie](json.RawMessage(`{not json`))
	if err == nil {
		t.Fatal("Expected decode error, got nil")
	}

	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("Expected *SchemaError, got %T: %v", err, err)
	}
}

func TestSchemaError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *SchemaError
		want []string
	}{
		{
			name: "field_only",
			err:  &SchemaError{Entity: "Movie", Field: "title"},
			want: []string{"Movie", "title"},
		},
		{
			name: "field_and_cause",
			err:  &SchemaError{Entity: "Genre", Field: "id", Err: errors.New("boom")},
			want: []string{"Genre", "id", "boom"},
		},
		{
			name: "entity_only",
			err:  &SchemaError{Entity: "Video"},
			want: []string{"Video", "invalid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, fragment := range tt.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("Error() = %q, missing %q", msg, fragment)
				}
			}
		})
	}
}
