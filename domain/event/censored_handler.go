package event

import (
	"sync"
)

// CensoredHandler counts how many messages were censored and which words hit.
type CensoredHandler struct {
	mu      sync.Mutex
	counter uint64
	hit     map[string]uint64
}

func NewCensoredHandler() *CensoredHandler {
	return &CensoredHandler{
		counter: 0,
		hit:     make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(e DomainEvent) {
	payload, ok := e.(MessageCensored)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counter++
	for _, word := range payload.Words {
		h.hit[word]++
	}
}

func (h *CensoredHandler) Count() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counter
}

// Hits returns a copy of the per-word counters.
func (h *CensoredHandler) Hits() map[string]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make(map[string]uint64, len(h.hit))
	for k, v := range h.hit {
		res[k] = v
	}
	return res
}
