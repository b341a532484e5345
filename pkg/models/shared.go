package models

// Genre is a movie or TV genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Validate implements Record.
func (g Genre) Validate() error {
	if g.ID == 0 {
		return &SchemaError{Entity: "Genre", Field: "id"}
	}
	if g.Name == "" {
		return &SchemaError{Entity: "Genre", Field: "name"}
	}
	return nil
}

// SpokenLanguage is a language entry on movie details.
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// Language is a language entry on TV series details.
type Language struct {
	EnglishName string `json:"english_name"`
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// Country is a production country.
type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// Network is a TV network or production company.
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// LogoURL derives the network logo URL, empty when no logo exists.
func (n Network) LogoURL() string {
	return ImageURL(n.LogoPath, SizeOriginal)
}

// Video is a trailer, teaser, clip or featurette attached to a title.
type Video struct {
	ID          string `json:"id"`
	ISO639_1    string `json:"iso_639_1"`
	ISO3166_1   string `json:"iso_3166_1"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

// Validate implements Record.
func (v Video) Validate() error {
	if v.ID == "" {
		return &SchemaError{Entity: "Video", Field: "id"}
	}
	if v.Key == "" {
		return &SchemaError{Entity: "Video", Field: "key"}
	}
	return nil
}

// Certification is one age rating within a country's certification list.
type Certification struct {
	Certification string `json:"certification"`
	Meaning       string `json:"meaning"`
	Order         int    `json:"order"`
}

// Certifications maps a country code to its ordered certification list.
type Certifications struct {
	Certifications map[string][]Certification `json:"certifications"`
}

// Validate implements Record.
func (c Certifications) Validate() error {
	if c.Certifications == nil {
		return &SchemaError{Entity: "Certifications", Field: "certifications"}
	}
	return nil
}
