// Package event carries what an attack lets the world observe: messages
// for the player's log and noise for nearby monsters.
package event

import (
	"context"
	"sync"

	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"

	"github.com/google/uuid"
)

// Kind distinguishes observable events.
type Kind uint8

const (
	KindMessage Kind = iota
	KindNoise
)

func (k Kind) String() string {
	if k == KindNoise {
		return "noise"
	}
	return "message"
}

// Event is one observation produced while resolving an attack.
type Event struct {
	Kind     Kind
	AttackID uuid.UUID
	Actor    ecs.EntityID
	Text     string
	Origin   gamemap.Point // noise source
	Loudness int
	Extra    map[string]any
}

// Message builds a KindMessage event.
func Message(id uuid.UUID, actor ecs.EntityID, text string) Event {
	return Event{Kind: KindMessage, AttackID: id, Actor: actor, Text: text}
}

// Noise builds a KindNoise event. text is what an observer who cannot
// see the source hears, and may be empty.
func Noise(id uuid.UUID, actor ecs.EntityID, origin gamemap.Point, loudness int, text string) Event {
	return Event{Kind: KindNoise, AttackID: id, Actor: actor, Origin: origin, Loudness: loudness, Text: text}
}

type Publisher interface {
	Publish(ctx context.Context, e Event)
}

type PublisherFunc func(ctx context.Context, e Event)

func (f PublisherFunc) Publish(ctx context.Context, e Event) {
	if f == nil {
		return
	}
	f(ctx, e)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) {}

// NopPublisher drops every event. Tracer passes publish into one.
func NopPublisher() Publisher {
	return nopPublisher{}
}

type fieldPublisher struct {
	next   Publisher
	fields map[string]any
}

func (p *fieldPublisher) Publish(ctx context.Context, e Event) {
	if len(p.fields) > 0 {
		extra := make(map[string]any, len(e.Extra)+len(p.fields))
		for k, v := range e.Extra {
			extra[k] = v
		}
		for k, v := range p.fields {
			if _, exists := extra[k]; !exists {
				extra[k] = v
			}
		}
		e.Extra = extra
	}
	p.next.Publish(ctx, e)
}

// WithFields decorates p so every event carries fields in Extra. Fields
// already set on an event win.
func WithFields(p Publisher, fields map[string]any) Publisher {
	if p == nil {
		return NopPublisher()
	}
	if len(fields) == 0 {
		return p
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &fieldPublisher{next: p, fields: copied}
}

// Fanout publishes to each publisher in order.
func Fanout(ps ...Publisher) Publisher {
	return PublisherFunc(func(ctx context.Context, e Event) {
		for _, p := range ps {
			if p != nil {
				p.Publish(ctx, e)
			}
		}
	})
}

// Recorder keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the text of every KindMessage event.
func (r *Recorder) Messages() []string {
	var out []string
	for _, e := range r.Events() {
		if e.Kind == KindMessage {
			out = append(out, e.Text)
		}
	}
	return out
}

// Reset forgets recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
