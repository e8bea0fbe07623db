package posts

import (
	"context"
	"log"
	"sync"
	"time"

	"postview/internal/domain"
	"postview/internal/eventbus"
	"postview/internal/metrics"
)

// Fetcher is the outbound read the loader performs.
type Fetcher interface {
	FetchPosts(ctx context.Context) ([]domain.Post, error)
}

// Recorder receives the outcome of the fetch. *metrics.Collector implements it.
type Recorder interface {
	ObserveFetch(outcome string, took time.Duration)
}

// Loader runs the single posts fetch of one view. Load may be called any
// number of times; only the first call reaches the network and every call
// returns the same outcome event.
type Loader struct {
	fetcher  Fetcher
	bus      eventbus.EventBus
	recorder Recorder
	endpoint string

	once   sync.Once
	result domain.DomainEvent
}

// NewLoader creates a loader. bus and recorder may be nil.
func NewLoader(fetcher Fetcher, bus eventbus.EventBus, recorder Recorder) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		bus:      bus,
		recorder: recorder,
	}
	if c, ok := fetcher.(*Client); ok {
		l.endpoint = c.Endpoint()
	}
	return l
}

// Load performs the fetch and returns either a PostsLoadedEvent or a
// PostsFailedEvent.
func (l *Loader) Load(ctx context.Context) domain.DomainEvent {
	l.once.Do(func() {
		l.result = l.load(ctx)
	})
	return l.result
}

func (l *Loader) load(ctx context.Context) domain.DomainEvent {
	l.publish(eventbus.PostsRequestedEvent{Endpoint: l.endpoint})
	log.Printf("Loading posts from %s", l.endpoint)

	start := time.Now()
	posts, err := l.fetcher.FetchPosts(ctx)
	took := time.Since(start)

	var event domain.DomainEvent
	if err != nil {
		log.Printf("Loading posts failed after %s: %v", took, err)
		l.observe(metrics.OutcomeFailed, took)
		event = eventbus.PostsFailedEvent{Message: err.Error(), Err: err}
	} else {
		if posts == nil {
			posts = []domain.Post{}
		}
		log.Printf("Loaded %d posts in %s", len(posts), took)
		l.observe(metrics.OutcomeLoaded, took)
		event = eventbus.PostsLoadedEvent{Posts: posts}
	}

	l.publish(event)
	return event
}

func (l *Loader) publish(event domain.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(event)
	}
}

func (l *Loader) observe(outcome string, took time.Duration) {
	if l.recorder != nil {
		l.recorder.ObserveFetch(outcome, took)
	}
}
