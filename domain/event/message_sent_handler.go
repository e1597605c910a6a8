package event

import (
	"sync"
)

// DeliveryStats aggregates MessageSent events.
type DeliveryStats struct {
	Messages   uint64
	Delivered  uint64
	Suppressed uint64
}

// MessageSentHandler handles events when a message is sent.
// Useful for logging or a status page without scraping metrics.
type MessageSentHandler struct {
	mu    sync.Mutex
	stats DeliveryStats
}

func NewMessageSentHandler() *MessageSentHandler {
	return &MessageSentHandler{}
}

func (p *MessageSentHandler) Handle(e DomainEvent) {
	evt, ok := e.(MessageSent)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats.Messages++
	p.stats.Delivered += uint64(evt.Delivered)
	p.stats.Suppressed += uint64(evt.Suppressed)
}

func (p *MessageSentHandler) Stats() DeliveryStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
