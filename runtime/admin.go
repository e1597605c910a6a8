package runtime

import (
	"chatroom/contract"
	"chatroom/domain"
	"context"
	"log/slog"
	"sync"
	"time"
)

var _ contract.IModerationController = (*ModerationController)(nil)

type moderator interface {
	ApplyModeration(ctx context.Context, action domain.ModerationAction, issuer domain.Issuer) error
}

// ModerationController turns moderation intents into actions and owns the timed mutes.
// A timed mute schedules an Unmute issued by the system; a manual unmute, a kick or a
// new mute of the same handle cancels it.
type ModerationController struct {
	log      *slog.Logger
	room     moderator
	muteUnit time.Duration

	mu      sync.Mutex
	pending map[domain.Handle]*ScheduledTask
}

// NewModerationController creates a controller. muteUnit is the length of one
// DurationSeconds unit, a second in production.
func NewModerationController(log *slog.Logger, room moderator, muteUnit time.Duration) *ModerationController {
	return &ModerationController{
		log:      log,
		room:     room,
		muteUnit: muteUnit,
		pending:  make(map[domain.Handle]*ScheduledTask),
	}
}

// Execute validates an intent coming from a participant and applies it.
func (c *ModerationController) Execute(ctx context.Context, issuer domain.Handle, intent domain.ModerationIntent) error {
	action, err := intent.ToAction(c.muteUnit)
	if err != nil {
		return err
	}
	return c.Apply(ctx, action, domain.UserIssuer(issuer))
}

func (c *ModerationController) Apply(ctx context.Context, action domain.ModerationAction, issuer domain.Issuer) error {
	if err := c.room.ApplyModeration(ctx, action, issuer); err != nil {
		return err
	}

	switch a := action.(type) {
	case domain.Mute:
		c.cancel(a.Handle)
		if a.Duration > 0 {
			c.schedule(a.Handle, a.Duration)
		}
	case domain.Unmute, domain.Kick:
		c.cancel(a.Target())
	}
	return nil
}

// Pending returns when a timed mute of handle expires.
func (c *ModerationController) Pending(handle domain.Handle) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	task, ok := c.pending[handle]
	if !ok {
		return time.Time{}, false
	}
	return task.Deadline, true
}

// Stop cancels every timed mute.
func (c *ModerationController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for handle, task := range c.pending {
		task.Cancel()
		delete(c.pending, handle)
	}
}

func (c *ModerationController) schedule(handle domain.Handle, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	self := make(chan *ScheduledTask, 1)
	task := Schedule(d, func() { c.expire(handle, <-self) })
	self <- task
	c.pending[handle] = task
}

func (c *ModerationController) cancel(handle domain.Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if task, ok := c.pending[handle]; ok {
		task.Cancel()
		delete(c.pending, handle)
	}
}

// expire runs when a timed mute ends. A task replaced in the meantime does nothing.
func (c *ModerationController) expire(handle domain.Handle, task *ScheduledTask) {
	c.mu.Lock()
	if c.pending[handle] != task {
		c.mu.Unlock()
		return
	}
	delete(c.pending, handle)
	c.mu.Unlock()

	err := c.room.ApplyModeration(context.Background(), domain.Unmute{Handle: handle}, domain.SystemIssuer())
	if err != nil {
		c.log.Debug("Automatic unmute skipped", "handle", handle, "error", err)
		return
	}
	c.log.Info("Timed mute expired", "handle", handle)
}
