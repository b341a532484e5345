package models

// ImageBaseURL is the TMDB image CDN prefix all derived URLs are built on.
const ImageBaseURL = "https://image.tmdb.org/t/p"

// Common image size identifiers accepted by the TMDB CDN.
const (
	SizeOriginal = "original"
	SizeW92      = "w92"
	SizeW154     = "w154"
	SizeW185     = "w185"
	SizeW342     = "w342"
	SizeW500     = "w500"
	SizeW780     = "w780"
	SizeW1280    = "w1280"
)

// ImageURL derives an absolute CDN URL from a relative image path.
// An empty path yields an empty URL; the derived value is never stored.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + "/" + size + path
}

// MediaImage is one image variant of a movie, show, season or episode.
type MediaImage struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	ISO639_1    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// Validate implements Record.
func (i MediaImage) Validate() error {
	if i.FilePath == "" {
		return &SchemaError{Entity: "MediaImage", Field: "file_path"}
	}
	return nil
}

// URL derives the absolute CDN URL for this image at original size.
func (i MediaImage) URL() string {
	return ImageURL(i.FilePath, SizeOriginal)
}

// URLSized derives the absolute CDN URL for this image at the given size.
func (i MediaImage) URLSized(size string) string {
	return ImageURL(i.FilePath, size)
}
