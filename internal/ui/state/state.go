package state

import (
	"postview/internal/domain"
	"postview/internal/location"
	"postview/internal/ui/logic"
)

// DisplayMode is the one block eligible to render below the input
type DisplayMode int

const (
	DisplayLoader DisplayMode = iota
	DisplayError
	DisplayCards
)

func (d DisplayMode) String() string {
	switch d {
	case DisplayLoader:
		return "loader"
	case DisplayError:
		return "error"
	default:
		return "cards"
	}
}

// AppState contains all the view state. The search term is not stored
// separately; it is always read from the current location.
type AppState struct {
	Load    domain.LoadState
	History *location.History

	// UI state
	StatusMessage string
}

// NewAppState creates a pending state positioned at initial
func NewAppState(initial location.Location) *AppState {
	return &AppState{
		Load:    domain.PendingState(),
		History: location.NewHistory(initial),
	}
}

// Location returns the current location
func (s *AppState) Location() location.Location {
	return s.History.Current()
}

// SearchTerm returns the search field of the current location
func (s *AppState) SearchTerm() string {
	return s.History.Current().Search()
}

// SetSearchTerm pushes a location carrying term. It returns false when the
// term is unchanged.
func (s *AppState) SetSearchTerm(term string) bool {
	if term == s.SearchTerm() {
		return false
	}
	return s.History.Push(s.History.Current().WithSearch(term))
}

// ReplaceSearchTerm rewrites the search term of the current entry in place.
// It returns false when the term is unchanged.
func (s *AppState) ReplaceSearchTerm(term string) bool {
	if term == s.SearchTerm() {
		return false
	}
	s.History.Replace(s.History.Current().WithSearch(term))
	return true
}

// ApplyLoad moves the load state forward. Terminal states are kept.
func (s *AppState) ApplyLoad(next domain.LoadState) bool {
	updated, ok := s.Load.Transition(next)
	s.Load = updated
	return ok
}

// Display picks what renders, in priority order: loader, error, cards
func (s *AppState) Display() DisplayMode {
	switch s.Load.Status {
	case domain.StatusPending:
		return DisplayLoader
	case domain.StatusFailed:
		return DisplayError
	default:
		return DisplayCards
	}
}

// VisiblePosts is the filtered list when loaded, nil otherwise
func (s *AppState) VisiblePosts() []domain.Post {
	if s.Load.Status != domain.StatusLoaded {
		return nil
	}
	return logic.FilterPosts(s.Load.Posts, s.SearchTerm())
}
