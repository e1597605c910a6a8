package sink

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/domain/event"
	"chatroom/repositories"
	"context"
	"time"

	"github.com/google/uuid"
)

var _ contract.EventSink = AuditSink{}

// AuditSink keeps the moderation history in the repository.
type AuditSink struct {
	repository repositories.IModerationRepository
}

func NewAuditSink(repository repositories.IModerationRepository) AuditSink {
	return AuditSink{repository: repository}
}

func (a AuditSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.ParticipantMuted:
		return a.repository.StoreRecord(toRecord(domain.ActionMute, evt.Handle, evt.Issuer, "", evt.Duration, evt.At))
	case event.ParticipantUnmuted:
		return a.repository.StoreRecord(toRecord(domain.ActionUnmute, evt.Handle, evt.Issuer, "", 0, evt.At))
	case event.ParticipantKicked:
		return a.repository.StoreRecord(toRecord(domain.ActionKick, evt.Handle, evt.Issuer, evt.Reason, 0, evt.At))
	default:
		return nil
	}
}

func toRecord(action domain.ActionKind, target domain.Handle, issuer domain.Issuer,
	reason string, duration time.Duration, at time.Time) repositories.ModerationRecord {
	return repositories.ModerationRecord{
		ID:       uuid.New(),
		Action:   string(action),
		Target:   string(target),
		Issuer:   string(issuer.Handle),
		Reason:   reason,
		Duration: duration,
		At:       at,
	}
}
