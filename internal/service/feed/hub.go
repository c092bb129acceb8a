package feed

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zhouzirui/persons/backend/internal/model/person"
)

// Event types emitted after a successful mutation.
const (
	PersonCreated = "person.created"
	PersonUpdated = "person.updated"
	PersonDeleted = "person.deleted"
)

const subscriberBuffer = 32

// Event describes one committed change to the person store.
type Event struct {
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Person person.Person `json:"person"`
	Time   time.Time     `json:"time"`
}

// Publisher is what request handlers need from the hub.
type Publisher interface {
	Publish(kind string, p person.Person) Event
}

// Hub fans out events to every live subscriber.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan Event
	nextID uint64
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan Event)}
}

// Publish stamps and delivers an event. Subscribers whose buffer is full miss it.
func (h *Hub) Publish(kind string, p person.Person) Event {
	evt := Event{
		ID:     uuid.NewString(),
		Type:   kind,
		Person: p,
		Time:   time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	return evt
}

// Subscribe registers a new listener. The returned cancel func closes the channel and is idempotent.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers reports how many listeners are attached.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
