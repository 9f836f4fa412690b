package events

import (
	"sync"

	"github.com/bnema/gamectl/internal/ports"
)

// Bus is the push-event side of the in-process bridge. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string]map[uint64]ports.EventHandler
	order    map[string][]uint64
}

var _ ports.EventSource = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{
		handlers: map[string]map[uint64]ports.EventHandler{},
		order:    map[string][]uint64{},
	}
}

func (b *Bus) Subscribe(event string, handler ports.EventHandler) func() {
	if handler == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.handlers[event] == nil {
		b.handlers[event] = map[uint64]ports.EventHandler{}
	}
	b.handlers[event][id] = handler
	b.order[event] = append(b.order[event], id)
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(event, id) })
	}
}

func (b *Bus) Publish(event string, payload any) {
	b.mu.RLock()
	ids := append([]uint64(nil), b.order[event]...)
	handlers := make([]ports.EventHandler, 0, len(ids))
	for _, id := range ids {
		if handler, ok := b.handlers[event][id]; ok {
			handlers = append(handlers, handler)
		}
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(payload)
	}
}

func (b *Bus) Subscribers(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[event])
}

func (b *Bus) remove(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers[event], id)
	ids := b.order[event]
	for i, candidate := range ids {
		if candidate == id {
			b.order[event] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(b.handlers[event]) == 0 {
		delete(b.handlers, event)
		delete(b.order, event)
	}
}
