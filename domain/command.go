package domain

import (
	"chatroom/errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ActionKind string

const (
	ActionMute   ActionKind = "mute"
	ActionUnmute ActionKind = "unmute"
	ActionKick   ActionKind = "kick"
)

// ModerationAction is a closed set: Mute, Unmute and Kick.
type ModerationAction interface {
	Kind() ActionKind
	Target() Handle
	isModerationAction()
}

// Mute with a zero Duration lasts until an explicit Unmute.
type Mute struct {
	Handle   Handle
	Duration time.Duration
}

type Unmute struct {
	Handle Handle
}

type Kick struct {
	Handle Handle
	Reason string
}

func (Mute) Kind() ActionKind   { return ActionMute }
func (Unmute) Kind() ActionKind { return ActionUnmute }
func (Kick) Kind() ActionKind   { return ActionKick }

func (m Mute) Target() Handle   { return m.Handle }
func (u Unmute) Target() Handle { return u.Handle }
func (k Kick) Target() Handle   { return k.Handle }

func (Mute) isModerationAction()   {}
func (Unmute) isModerationAction() {}
func (Kick) isModerationAction()   {}

// MaxMuteSeconds caps a timed mute to one year.
const MaxMuteSeconds = 365 * 24 * 60 * 60

// ModerationIntent is the structured command coming from a terminal or the wire.
type ModerationIntent struct {
	Action          string `validate:"required,oneof=mute unmute kick"`
	Target          string `validate:"required,max=64"`
	DurationSeconds *int   `validate:"omitempty,gte=1,lte=31536000"`
	Reason          string `validate:"max=256"`
}

func (i ModerationIntent) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidCommand, err.Error())
	}
	return nil
}

// ToAction validates the intent and converts it. unit scales DurationSeconds.
func (i ModerationIntent) ToAction(unit time.Duration) (ModerationAction, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	target := Handle(i.Target)
	switch ActionKind(i.Action) {
	case ActionMute:
		var d time.Duration
		if i.DurationSeconds != nil {
			n := int64(*i.DurationSeconds)
			if unit > 0 && n > math.MaxInt64/int64(unit) {
				return nil, fmt.Errorf("%w: duration of %d overflows", errors.ErrInvalidCommand, n)
			}
			d = time.Duration(n) * unit
		}
		return Mute{Handle: target, Duration: d}, nil
	case ActionUnmute:
		return Unmute{Handle: target}, nil
	default:
		return Kick{Handle: target, Reason: i.Reason}, nil
	}
}
