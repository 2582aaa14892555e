package fields

import "encoding/json"

// Cast is a single cast member owned by a movie. The movie id is kept only
// as a denormalized column for persistence, the movie itself owns the list.
type Cast struct {
	ID      int    `json:"-"`
	MovieID int    `json:"-"`
	Name    string `json:"name"`
}

// CastList keeps casts in insertion order and serializes as a plain
// array of names, matching the public movie representation.
type CastList []Cast

func (c CastList) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Names())
}

func (c CastList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cast := range c {
		names = append(names, cast.Name)
	}
	return names
}

func NewCastList(names []string) CastList {
	casts := make(CastList, 0, len(names))
	for _, name := range names {
		casts = append(casts, Cast{Name: name})
	}
	return casts
}
