// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable once filtered.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one send request.
type Message struct {
	ID        uuid.UUID // unique identifier
	Sender    Handle
	Raw       string
	Filtered  *string // nil until the profanity filter ran
	CreatedAt time.Time
}

// Text returns what recipients see.
func (m Message) Text() string {
	if m.Filtered != nil {
		return *m.Filtered
	}
	return m.Raw
}

func (m Message) Censored() bool {
	return m.Filtered != nil && *m.Filtered != m.Raw
}

// FilterResult is the output of a profanity check.
type FilterResult struct {
	Clean       bool
	Transformed string
	Words       []string
}

type DeliveryOutcome int

const (
	Delivered DeliveryOutcome = iota
	SuppressedMuted
	SuppressedMissing
)

func (o DeliveryOutcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case SuppressedMuted:
		return "suppressed_muted"
	case SuppressedMissing:
		return "suppressed_missing"
	default:
		return "unknown"
	}
}

type Delivery struct {
	Recipient Handle
	Outcome   DeliveryOutcome
	Err       error
}

// DeliveryReport lists one outcome per recipient of the snapshot used for the fan-out.
type DeliveryReport struct {
	Message    Message
	Revision   uint64
	Deliveries []Delivery
}

func (r DeliveryReport) Outcome(recipient Handle) (DeliveryOutcome, bool) {
	for _, d := range r.Deliveries {
		if d.Recipient == recipient {
			return d.Outcome, true
		}
	}
	return 0, false
}

func (r DeliveryReport) Count(outcome DeliveryOutcome) int {
	n := 0
	for _, d := range r.Deliveries {
		if d.Outcome == outcome {
			n++
		}
	}
	return n
}

type FrameKind int

const (
	FrameMessage FrameKind = iota
	FrameNotice
	FrameError
	FrameRoster
)

func (k FrameKind) String() string {
	switch k {
	case FrameMessage:
		return "message"
	case FrameNotice:
		return "notice"
	case FrameError:
		return "error"
	case FrameRoster:
		return "roster"
	default:
		return "unknown"
	}
}

// Frame is what an outbound sink receives.
type Frame struct {
	Kind      FrameKind
	MessageID uuid.UUID
	From      Handle
	Text      string
	At        time.Time
	Roster    []Participant
}

func MessageFrame(m Message) Frame {
	return Frame{
		Kind:      FrameMessage,
		MessageID: m.ID,
		From:      m.Sender,
		Text:      m.Text(),
		At:        m.CreatedAt,
	}
}

func NoticeFrame(text string, at time.Time) Frame {
	return Frame{Kind: FrameNotice, Text: text, At: at}
}

func ErrorFrame(err error, at time.Time) Frame {
	return Frame{Kind: FrameError, Text: err.Error(), At: at}
}

// Inbound is one frame read from a participant's transport.
// Exactly one of Text, Command or Roster is meaningful.
type Inbound struct {
	Text    string
	Command *ModerationIntent
	Roster  bool
}
