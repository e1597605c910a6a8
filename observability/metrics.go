// Package observability exposes Prometheus instrumentation for the chatroom.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ParticipantsTotal tracks the current number of participants in the room.
	ParticipantsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatroom_participants_total",
		Help: "Current number of participants in the room",
	})

	// MessagesTotal counts sends, labeled by outcome: "sent" or "censored".
	MessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatroom_messages_total",
		Help: "Total number of messages sent",
	}, []string{"type"})

	// DeliveriesTotal counts per-recipient outcomes: "delivered" or "suppressed".
	DeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatroom_deliveries_total",
		Help: "Total number of per-recipient deliveries",
	}, []string{"outcome"})

	// ModerationTotal counts applied moderation actions by kind.
	ModerationTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chatroom_moderation_total",
		Help: "Total number of moderation actions applied",
	}, []string{"action"})

	// SendLatency records the time spent filtering and fanning out one message.
	SendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatroom_send_latency_seconds",
		Help:    "Send latency in seconds",
		Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	// ChannelUsage reports the fill level of internal channels.
	ChannelUsage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "chatroom_channel_usage",
		Help: "Buffered items in internal channels",
	}, []string{"channel"})

	// ProcessRSS and ProcessCPU are sampled from the OS.
	ProcessRSS = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatroom_process_rss_bytes",
		Help: "Resident memory of the server process",
	})
	ProcessCPU = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chatroom_process_cpu_percent",
		Help: "CPU usage of the server process",
	})
)

func init() {
	prometheus.MustRegister(
		ParticipantsTotal,
		MessagesTotal,
		DeliveriesTotal,
		ModerationTotal,
		SendLatency,
		ChannelUsage,
		ProcessRSS,
		ProcessCPU,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
