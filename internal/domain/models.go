package domain

// Post represents one fetched record
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// LoadStatus is the lifecycle of the single posts fetch
type LoadStatus int

const (
	StatusPending LoadStatus = iota
	StatusLoaded
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadState holds the outcome of the fetch. Posts is only set when Loaded,
// Message only when Failed.
type LoadState struct {
	Status  LoadStatus
	Posts   []Post
	Message string
}

// PendingState is the state before the fetch completes
func PendingState() LoadState {
	return LoadState{Status: StatusPending}
}

// LoadedState wraps a successfully fetched sequence of posts
func LoadedState(posts []Post) LoadState {
	if posts == nil {
		posts = []Post{}
	}
	return LoadState{Status: StatusLoaded, Posts: posts}
}

// FailedState wraps a human-readable failure message
func FailedState(message string) LoadState {
	return LoadState{Status: StatusFailed, Message: message}
}

// IsTerminal reports whether no further transition is possible
func (s LoadState) IsTerminal() bool {
	return s.Status == StatusLoaded || s.Status == StatusFailed
}

// Transition moves from Pending to next. Once Loaded or Failed the state is
// kept and ok is false.
func (s LoadState) Transition(next LoadState) (LoadState, bool) {
	if s.IsTerminal() || next.Status == StatusPending {
		return s, false
	}
	return next, true
}

// StateFromEvent maps a loader outcome event to the state it produces
func StateFromEvent(event DomainEvent) (LoadState, bool) {
	switch e := event.(type) {
	case PostsLoadedEvent:
		return LoadedState(e.Posts), true
	case PostsFailedEvent:
		return FailedState(e.Message), true
	default:
		return LoadState{}, false
	}
}
