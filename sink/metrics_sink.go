package sink

import (
	"chatroom/contract"
	"chatroom/domain/event"
	"chatroom/observability"
	"context"
)

var _ contract.EventSink = MetricsSink{}

// MetricsSink turns domain events into Prometheus samples.
type MetricsSink struct{}

func NewMetricsSink() MetricsSink {
	return MetricsSink{}
}

func (MetricsSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ParticipantJoined:
		observability.ParticipantsTotal.Inc()
	case event.ParticipantLeft:
		observability.ParticipantsTotal.Dec()
	case event.ParticipantKicked:
		observability.ParticipantsTotal.Dec()
		observability.ModerationTotal.WithLabelValues("kick").Inc()
	case event.ParticipantMuted:
		observability.ModerationTotal.WithLabelValues("mute").Inc()
	case event.ParticipantUnmuted:
		observability.ModerationTotal.WithLabelValues("unmute").Inc()
	case event.MessageSent:
		observability.MessagesTotal.WithLabelValues("sent").Inc()
		if evt.Censored {
			observability.MessagesTotal.WithLabelValues("censored").Inc()
		}
		observability.DeliveriesTotal.WithLabelValues("delivered").Add(float64(evt.Delivered))
		observability.DeliveriesTotal.WithLabelValues("suppressed").Add(float64(evt.Suppressed))
		observability.SendLatency.Observe(evt.Latency.Seconds())
	}
	return nil
}
