package event

import (
	"chatroom/domain"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is published by the chatroom after a state change or a send.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

type ParticipantJoined struct {
	Handle domain.Handle
	Role   domain.Role
	At     time.Time
}

type ParticipantLeft struct {
	Handle domain.Handle
	At     time.Time
}

type ParticipantMuted struct {
	Handle   domain.Handle
	Issuer   domain.Issuer
	Duration time.Duration
	At       time.Time
}

type ParticipantUnmuted struct {
	Handle domain.Handle
	Issuer domain.Issuer
	At     time.Time
}

type ParticipantKicked struct {
	Handle domain.Handle
	Issuer domain.Issuer
	Reason string
	At     time.Time
}

type MessageSent struct {
	ID         uuid.UUID
	Sender     domain.Handle
	Recipients int
	Delivered  int
	Suppressed int
	Censored   bool
	Latency    time.Duration
	At         time.Time
}

type MessageCensored struct {
	ID     uuid.UUID
	Sender domain.Handle
	Words  []string
	Lang   string
	At     time.Time
}

func (ParticipantJoined) EventName() string  { return "participant_joined" }
func (ParticipantLeft) EventName() string    { return "participant_left" }
func (ParticipantMuted) EventName() string   { return "participant_muted" }
func (ParticipantUnmuted) EventName() string { return "participant_unmuted" }
func (ParticipantKicked) EventName() string  { return "participant_kicked" }
func (MessageSent) EventName() string        { return "message_sent" }
func (MessageCensored) EventName() string    { return "message_censored" }

func (e ParticipantJoined) OccurredAt() time.Time  { return e.At }
func (e ParticipantLeft) OccurredAt() time.Time    { return e.At }
func (e ParticipantMuted) OccurredAt() time.Time   { return e.At }
func (e ParticipantUnmuted) OccurredAt() time.Time { return e.At }
func (e ParticipantKicked) OccurredAt() time.Time  { return e.At }
func (e MessageSent) OccurredAt() time.Time        { return e.At }
func (e MessageCensored) OccurredAt() time.Time    { return e.At }
