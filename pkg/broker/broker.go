// Package broker implements minikv's pub/sub channel registry
// (spec.md §4.5): a lazily-created, lazily-destroyed map from channel
// name to a set of subscribers. Only PUBLISH is exposed over the wire
// (spec.md's Non-goals exclude subscriber-side SUBSCRIBE), but the
// registry itself carries full subscribe/unsubscribe plumbing so a
// future subscriber-side command has somewhere to attach — mirroring
// the teacher's miniplumber.Plumber, whose Pipe registry separates
// "a named channel exists" from "something is reading it" the same
// way (see DESIGN.md).
package broker

import "sync"

// Broker owns the channel registry. It holds its own guard,
// independent of the Store's (spec.md §5: "The Broker holds its own
// guard over the channel registry").
type Broker struct {
	mu       sync.Mutex
	channels map[string]*channel
	nextID   int64
}

type channel struct {
	subs map[int64]chan<- []byte
}

func New() *Broker {
	return &Broker{channels: make(map[string]*channel)}
}

// Publish delivers message to every current subscriber of name and
// returns the count that accepted it. A channel with no subscribers
// returns 0 without allocating an entry (spec.md §4.5).
func (b *Broker) Publish(name string, message []byte) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[name]
	if !ok {
		return 0
	}

	var delivered int64
	for _, sub := range ch.subs {
		select {
		case sub <- message:
			delivered++
		default:
			// Slow subscriber: drop rather than block PUBLISH (spec.md
			// §4.5's "PUBLISH is O(subscribers)", not O(slowest reader)).
		}
	}
	return delivered
}

// Subscribe registers a new subscriber on name, creating the channel
// entry lazily, and returns a receive-only feed plus a cancel func
// that unsubscribes and lazily removes the entry once empty.
func (b *Broker) Subscribe(name string) (feed <-chan []byte, cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[name]
	if !ok {
		ch = &channel{subs: make(map[int64]chan<- []byte)}
		b.channels[name] = ch
	}

	id := b.nextID
	b.nextID++
	c := make(chan []byte, 64)
	ch.subs[id] = c

	return c, func() { b.unsubscribe(name, id) }
}

func (b *Broker) unsubscribe(name string, id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[name]
	if !ok {
		return
	}
	delete(ch.subs, id)
	if len(ch.subs) == 0 {
		delete(b.channels, name)
	}
}

// SubscriberCount reports how many subscribers name currently has, 0
// for a channel with no entry.
func (b *Broker) SubscriberCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[name]
	if !ok {
		return 0
	}
	return len(ch.subs)
}

// ChannelNames returns the names of every channel with at least one
// subscriber, for introspection (PUBSUB CHANNELS-style tooling).
func (b *Broker) ChannelNames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.channels))
	for name := range b.channels {
		names = append(names, name)
	}
	return names
}
