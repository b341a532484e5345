package models

// CrewMember is one crew credit on a title or episode.
type CrewMember struct {
	ID                 int     `json:"id"`
	CreditID           string  `json:"credit_id"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ProfilePath        string  `json:"profile_path"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// Validate implements Record.
func (c CrewMember) Validate() error {
	if c.ID == 0 {
		return &SchemaError{Entity: "CrewMember", Field: "id"}
	}
	if c.Name == "" {
		return &SchemaError{Entity: "CrewMember", Field: "name"}
	}
	return nil
}

// ProfileURL derives the profile image URL, empty when no image exists.
func (c CrewMember) ProfileURL() string {
	return ImageURL(c.ProfilePath, SizeOriginal)
}

// CastMember extends a crew credit with the played character.
type CastMember struct {
	CrewMember
	Character string `json:"character"`
}

// Creator is the condensed person record on "created_by" lists.
type Creator struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// Validate implements Record.
func (c Creator) Validate() error {
	if c.ID == 0 {
		return &SchemaError{Entity: "Creator", Field: "id"}
	}
	return nil
}

// ProfileURL derives the profile image URL, empty when no image exists.
func (c Creator) ProfileURL() string {
	return ImageURL(c.ProfilePath, SizeOriginal)
}
