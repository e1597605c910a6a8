package sink

import (
	"chatroom/contract"
	"chatroom/domain/event"
	"context"
	"log/slog"
)

var _ contract.EventSink = (*StatsSink)(nil)

// StatsSink feeds in-memory handlers and logs what they saw.
type StatsSink struct {
	log       *slog.Logger
	censored  *event.CensoredHandler
	delivered *event.MessageSentHandler
}

func NewStatsSink(log *slog.Logger) *StatsSink {
	return &StatsSink{
		log:       log,
		censored:  event.NewCensoredHandler(),
		delivered: event.NewMessageSentHandler(),
	}
}

func (s *StatsSink) Consume(_ context.Context, e event.DomainEvent) error {
	for _, h := range []event.Handler{s.censored, s.delivered} {
		h.Handle(e)
	}
	if evt, ok := e.(event.MessageCensored); ok {
		s.log.Info("Message censored", "sender", evt.Sender, "words", evt.Words, "lang", evt.Lang)
	}
	return nil
}

// Summary is logged on shutdown.
func (s *StatsSink) Summary() map[string]any {
	stats := s.delivered.Stats()
	return map[string]any{
		"messages":   stats.Messages,
		"delivered":  stats.Delivered,
		"suppressed": stats.Suppressed,
		"censored":   s.censored.Count(),
		"hits":       s.censored.Hits(),
	}
}
