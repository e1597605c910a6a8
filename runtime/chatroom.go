package runtime

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/domain/event"
	"chatroom/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// EchoToSender decides whether a sender receives its own broadcast. It doesn't.
const EchoToSender = false

var _ contract.IChatroom = (*Chatroom)(nil)

// Chatroom applies the profanity filter and the moderation state to every send,
// then fans the message out to a registry snapshot.
//
// The registry lock is only held to read or mutate membership. Deliveries run
// outside of it, each bounded by deliveryTimeout, so a stuck sink delays nothing
// but its own outcome.
//
// A kick racing with a send that already took its snapshot may still be pushed to
// the kicked sink. The sink is closed by then, so that push ends as SuppressedMissing.
type Chatroom struct {
	log             *slog.Logger
	registry        *Registry
	filter          contract.ProfanityChecker
	deliveryTimeout time.Duration
	events          chan event.DomainEvent
	now             func() time.Time
}

// NewChatroom refuses to build a room without a working filter.
// events may be nil when nobody listens to domain events.
func NewChatroom(log *slog.Logger, registry *Registry, filter contract.ProfanityChecker,
	deliveryTimeout time.Duration, events chan event.DomainEvent) (*Chatroom, error) {
	if filter == nil {
		return nil, errors.ErrFilterUnavailable
	}
	if _, err := filter.Check("ping"); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFilterUnavailable, err)
	}
	return &Chatroom{
		log:             log,
		registry:        registry,
		filter:          filter,
		deliveryTimeout: deliveryTimeout,
		events:          events,
		now:             func() time.Time { return time.Now().UTC() },
	}, nil
}

func (c *Chatroom) Join(handle domain.Handle, role domain.Role, sink contract.OutboundSink) (domain.Participant, error) {
	p, err := c.registry.Join(handle, role, sink)
	if err != nil {
		return domain.Participant{}, err
	}
	c.log.Debug("Participant joined", "handle", handle, "role", role)
	c.publish(event.ParticipantJoined{Handle: handle, Role: role, At: p.JoinedAt})
	return p, nil
}

// Leave is idempotent. It only removes handle while it is still attached to sink,
// a nil sink removes it whatever its sink.
func (c *Chatroom) Leave(handle domain.Handle, sink contract.OutboundSink) {
	m, ok := c.registry.Leave(handle, sink)
	if !ok {
		return
	}
	if err := m.Sink.Close(); err != nil {
		c.log.Debug("Closing sink failed", "handle", handle, "error", err)
	}
	c.log.Debug("Participant left", "handle", handle)
	c.publish(event.ParticipantLeft{Handle: handle, At: c.now()})
}

// Close tells every participant the room is closing, closes their sinks
// and refuses later joins. Transports watching their sink end their stream.
func (c *Chatroom) Close(ctx context.Context) {
	at := c.now()
	members := c.registry.Close()
	c.fanout(ctx, members, domain.NoticeFrame("the room is closing", at))
	for _, m := range members {
		if err := m.Sink.Close(); err != nil {
			c.log.Debug("Closing sink failed", "handle", m.Handle, "error", err)
		}
		c.publish(event.ParticipantLeft{Handle: m.Handle, At: at})
	}
	c.log.Info("Room closed", "evicted", len(members))
}

func (c *Chatroom) Participants() []domain.Participant {
	return c.registry.Snapshot().Participants()
}

// Send filters the text and delivers it to every other member of the current snapshot.
// Two sends from the same handle never overlap, so recipients see them in issue order.
func (c *Chatroom) Send(ctx context.Context, sender domain.Handle, text string) (domain.DeliveryReport, error) {
	start := time.Now()
	member, err := c.registry.Get(sender)
	if err != nil {
		return domain.DeliveryReport{}, fmt.Errorf("%w: %q", errors.ErrSenderUnknown, sender)
	}

	member.order.Lock()
	defer member.order.Unlock()

	// The state may have changed while waiting for the previous send of this handle.
	member, err = c.registry.Get(sender)
	if err != nil {
		return domain.DeliveryReport{}, fmt.Errorf("%w: %q", errors.ErrSenderUnknown, sender)
	}
	if !member.CanSend() {
		return domain.DeliveryReport{}, fmt.Errorf("%w: %q", errors.ErrSenderMuted, sender)
	}

	result, err := c.filter.Check(text)
	if err != nil {
		return domain.DeliveryReport{}, fmt.Errorf("%w: %w", errors.ErrFilterUnavailable, err)
	}
	msg := domain.Message{
		ID:        uuid.New(),
		Sender:    sender,
		Raw:       text,
		Filtered:  lo.ToPtr(result.Transformed),
		CreatedAt: c.now(),
	}

	snapshot := c.registry.Snapshot()
	recipients := lo.Filter(snapshot.Members, func(m Member, _ int) bool {
		return EchoToSender || m.Handle != sender
	})

	report := domain.DeliveryReport{
		Message:    msg,
		Revision:   snapshot.Revision,
		Deliveries: c.fanout(ctx, recipients, domain.MessageFrame(msg)),
	}

	suppressed := report.Count(domain.SuppressedMissing) + report.Count(domain.SuppressedMuted)
	c.publish(event.MessageSent{
		ID:         msg.ID,
		Sender:     sender,
		Recipients: len(recipients),
		Delivered:  report.Count(domain.Delivered),
		Suppressed: suppressed,
		Censored:   !result.Clean,
		Latency:    time.Since(start),
		At:         msg.CreatedAt,
	})
	if !result.Clean {
		c.publish(event.MessageCensored{
			ID:     msg.ID,
			Sender: sender,
			Words:  result.Words,
			Lang:   whatlanggo.Detect(text).Lang.Iso6391(),
			At:     msg.CreatedAt,
		})
	}
	return report, nil
}

// fanout pushes the frame to every recipient concurrently.
// One failing or slow recipient never affects the outcome of another.
func (c *Chatroom) fanout(ctx context.Context, recipients []Member, frame domain.Frame) []domain.Delivery {
	deliveries := make([]domain.Delivery, len(recipients))
	var wg sync.WaitGroup
	for i, m := range recipients {
		wg.Add(1)
		go func(i int, m Member) {
			defer wg.Done()
			deliveries[i] = c.deliver(ctx, m, frame)
		}(i, m)
	}
	wg.Wait()
	return deliveries
}

func (c *Chatroom) deliver(ctx context.Context, m Member, frame domain.Frame) domain.Delivery {
	err := c.push(ctx, m.Sink, frame)
	if err != nil {
		c.log.Debug("Delivery suppressed", "recipient", m.Handle, "error", err)
		return domain.Delivery{Recipient: m.Handle, Outcome: domain.SuppressedMissing, Err: err}
	}
	return domain.Delivery{Recipient: m.Handle, Outcome: domain.Delivered}
}

// push bounds a single sink call by deliveryTimeout, even if the sink ignores its context.
func (c *Chatroom) push(ctx context.Context, sink contract.OutboundSink, frame domain.Frame) error {
	pushCtx, cancel := context.WithTimeout(ctx, c.deliveryTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sink.Push(pushCtx, frame)
	}()

	return awaitPush(pushCtx, done)
}

// awaitPush returns the push result, or the context error once it expires.
// A push that finished by the time the deadline is seen still counts as delivered.
func awaitPush(ctx context.Context, done <-chan error) error {
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		select {
		case err := <-done:
			return err
		default:
			return ctx.Err()
		}
	}
}

// ApplyModeration runs a moderation action on behalf of issuer.
// Only admins and the system may moderate.
func (c *Chatroom) ApplyModeration(ctx context.Context, action domain.ModerationAction, issuer domain.Issuer) error {
	if err := c.authorize(issuer); err != nil {
		return err
	}

	target := action.Target()
	at := c.now()
	switch a := action.(type) {
	case domain.Mute:
		if _, err := c.registry.SetState(target, domain.StateMuted); err != nil {
			return err
		}
		c.notify(ctx, target, muteNotice(a), at)
		c.publish(event.ParticipantMuted{Handle: target, Issuer: issuer, Duration: a.Duration, At: at})
	case domain.Unmute:
		if _, err := c.registry.SetState(target, domain.StateActive); err != nil {
			return err
		}
		c.notify(ctx, target, "you can talk again", at)
		c.publish(event.ParticipantUnmuted{Handle: target, Issuer: issuer, At: at})
	case domain.Kick:
		m, ok := c.registry.Leave(target, nil)
		if !ok {
			return fmt.Errorf("%w: %q", errors.ErrUnknownParticipant, target)
		}
		if err := c.push(ctx, m.Sink, domain.NoticeFrame(kickNotice(a), at)); err != nil {
			c.log.Debug("Kick notice lost", "handle", target, "error", err)
		}
		if err := m.Sink.Close(); err != nil {
			c.log.Debug("Closing sink failed", "handle", target, "error", err)
		}
		c.publish(event.ParticipantKicked{Handle: target, Issuer: issuer, Reason: a.Reason, At: at})
	default:
		return fmt.Errorf("%w: %T", errors.ErrInvalidCommand, action)
	}

	c.log.Info("Moderation applied", "action", action.Kind(), "target", target, "issuer", issuer.Handle)
	return nil
}

func (c *Chatroom) authorize(issuer domain.Issuer) error {
	if issuer.IsSystem() {
		return nil
	}
	m, err := c.registry.Get(issuer.Handle)
	if err != nil || !m.IsAdmin() {
		return fmt.Errorf("%w: %q", errors.ErrNotAuthorized, issuer.Handle)
	}
	return nil
}

// notify sends a best-effort notice to one participant.
func (c *Chatroom) notify(ctx context.Context, handle domain.Handle, text string, at time.Time) {
	m, err := c.registry.Get(handle)
	if err != nil {
		return
	}
	if err := c.push(ctx, m.Sink, domain.NoticeFrame(text, at)); err != nil {
		c.log.Debug("Notice lost", "handle", handle, "error", err)
	}
}

// publish never blocks the caller. Events are dropped when nobody keeps up.
func (c *Chatroom) publish(evt event.DomainEvent) {
	if c.events == nil {
		return
	}
	select {
	case c.events <- evt:
	default:
		c.log.Warn("Event channel full, dropping event", "event", evt.EventName())
	}
}

func muteNotice(m domain.Mute) string {
	if m.Duration > 0 {
		return fmt.Sprintf("you have been muted for %s", m.Duration)
	}
	return "you have been muted"
}

func kickNotice(k domain.Kick) string {
	if k.Reason != "" {
		return "you have been kicked: " + k.Reason
	}
	return "you have been kicked"
}
