// Package realtime fans out "something changed" events to connected viewers
// and coalesces the refreshes those events trigger.
package realtime

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
)

type Channel string

const (
	ChannelResults       Channel = "results"
	ChannelAssignments   Channel = "assignments"
	ChannelRegistrations Channel = "registrations"
	ChannelStudents      Channel = "students"
	ChannelScoreboard    Channel = "scoreboard"
	ChannelReplacements  Channel = "replacements"
)

type Kind string

const (
	KindSubmitted Kind = "submitted"
	KindApproved  Kind = "approved"
	KindRejected  Kind = "rejected"
	KindCreated   Kind = "created"
	KindUpdated   Kind = "updated"
	KindDeleted   Kind = "deleted"
)

var channelKinds = map[Channel][]Kind{
	ChannelResults:       {KindSubmitted, KindApproved, KindRejected, KindUpdated, KindDeleted},
	ChannelAssignments:   {KindCreated, KindDeleted},
	ChannelRegistrations: {KindCreated, KindDeleted},
	ChannelStudents:      {KindCreated, KindUpdated, KindDeleted},
	ChannelScoreboard:    {KindUpdated},
	ChannelReplacements:  {KindCreated, KindApproved, KindRejected},
}

var (
	ErrUnknownChannel = errors.New("unknown realtime channel")
	ErrUnknownEvent   = errors.New("event kind not allowed on channel")
)

// Channels lists every channel in a stable order.
func Channels() []Channel {
	return []Channel{
		ChannelResults, ChannelAssignments, ChannelRegistrations,
		ChannelStudents, ChannelScoreboard, ChannelReplacements,
	}
}

func ValidChannel(c Channel) bool {
	_, ok := channelKinds[c]
	return ok
}

func validate(c Channel, k Kind) error {
	kinds, ok := channelKinds[c]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChannel, c)
	}
	for _, allowed := range kinds {
		if allowed == k {
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", ErrUnknownEvent, c, k)
}

// Event carries no payload beyond its identity; consumers re-fetch state.
type Event struct {
	Seq     uint64    `json:"seq"`
	Channel Channel   `json:"channel"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
}

func (e Event) Name() string { return string(e.Channel) + "." + string(e.Kind) }

// Publisher is what lifecycle services depend on.
type Publisher interface {
	Publish(channel Channel, kind Kind) error
}

type Subscription struct {
	C <-chan Event

	hub      *Hub
	id       uint64
	channels map[Channel]struct{}
	ch       chan Event
	once     sync.Once
}

// Close unsubscribes and closes C. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

// Hub delivers each event to every subscriber of its channel in publish
// order. Delivery never blocks the publisher: a subscriber whose buffer is
// full misses the event, which is harmless because every event only means
// "re-fetch".
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscription
	nextID  uint64
	seq     uint64
	buffer  int
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewHub(buffer int, m *metrics.Metrics) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:    make(map[uint64]*Subscription),
		buffer:  buffer,
		metrics: m,
		now:     time.Now,
	}
}

func (h *Hub) Subscribe(channels ...Channel) (*Subscription, error) {
	if len(channels) == 0 {
		channels = Channels()
	}
	set := make(map[Channel]struct{}, len(channels))
	for _, c := range channels {
		if !ValidChannel(c) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, c)
		}
		set[c] = struct{}{}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	ch := make(chan Event, h.buffer)
	sub := &Subscription{C: ch, hub: h, id: h.nextID, channels: set, ch: ch}
	h.subs[sub.id] = sub
	h.metrics.SubscriberAdded()
	logging.Log.Debugf("REALTIME: subscriber %d joined %d channels", sub.id, len(set))
	return sub, nil
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[s.id]; !ok {
		return
	}
	delete(h.subs, s.id)
	close(s.ch)
	h.metrics.SubscriberRemoved()
	logging.Log.Debugf("REALTIME: subscriber %d left", s.id)
}

// Publish must only be called after the change it announces is committed.
func (h *Hub) Publish(channel Channel, kind Kind) error {
	if err := validate(channel, kind); err != nil {
		return err
	}

	// The write lock serialises sequence numbers with delivery so that every
	// subscriber sees one channel's events in publish order.
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	ev := Event{Seq: h.seq, Channel: channel, Kind: kind, At: h.now().UTC()}

	for _, sub := range h.subs {
		if _, ok := sub.channels[channel]; !ok {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			h.metrics.EventDropped(string(channel))
			logging.Log.Debugf("REALTIME: subscriber %d buffer full, dropped %s", sub.id, ev.Name())
		}
	}
	h.metrics.EventPublished(string(channel), string(kind))
	return nil
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
