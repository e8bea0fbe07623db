package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPostsRequested EventType = "PostsRequested"
	EventPostsLoaded    EventType = "PostsLoaded"
	EventPostsFailed    EventType = "PostsFailed"
	EventSearchChanged  EventType = "SearchChanged"
	EventNavigated      EventType = "Navigated"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PostsRequestedEvent is emitted when the loader issues its request
type PostsRequestedEvent struct {
	Endpoint string
}

func (e PostsRequestedEvent) Type() EventType { return EventPostsRequested }

// PostsLoadedEvent is emitted when the posts were fetched and decoded
type PostsLoadedEvent struct {
	Posts []Post
}

func (e PostsLoadedEvent) Type() EventType { return EventPostsLoaded }

// PostsFailedEvent is emitted when the fetch failed for any reason
type PostsFailedEvent struct {
	Message string
	Err     error
}

func (e PostsFailedEvent) Type() EventType { return EventPostsFailed }

// SearchChangedEvent is emitted when the input changes the search term
type SearchChangedEvent struct {
	Term     string
	Location string
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// NavigatedEvent is emitted when back/forward moves through the history
type NavigatedEvent struct {
	Location string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
