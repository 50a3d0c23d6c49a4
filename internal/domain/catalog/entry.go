package catalog

import "context"

// Entry is one rentable vehicle as published by the catalog owner.
// DailyPrice is a display string such as "$35.000".
type Entry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	DailyPrice string `json:"price"`
	Available  bool   `json:"available"`
}

// Reader returns the catalog in display order. Implementations never mutate it.
type Reader interface {
	List(ctx context.Context) ([]Entry, error)
}

// FindByName is an exact, case-sensitive match.
func FindByName(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
