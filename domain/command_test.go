package domain

import (
	"chatroom/errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestModerationIntent_ToAction(t *testing.T) {
	req := require.New(t)

	action, err := ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(30)}.ToAction(time.Second)
	req.NoError(err)
	req.Equal(Mute{Handle: "bob", Duration: 30 * time.Second}, action)

	action, err = ModerationIntent{Action: "mute", Target: "bob"}.ToAction(time.Second)
	req.NoError(err)
	req.Zero(action.(Mute).Duration)

	action, err = ModerationIntent{Action: "kick", Target: "bob", Reason: "spam"}.ToAction(time.Second)
	req.NoError(err)
	req.Equal(Kick{Handle: "bob", Reason: "spam"}, action)
}

func TestModerationIntent_Mute_Duration_Bounds(t *testing.T) {
	req := require.New(t)

	// A year is the longest timed mute
	action, err := ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(MaxMuteSeconds)}.ToAction(time.Second)
	req.NoError(err)
	req.Equal(time.Duration(MaxMuteSeconds)*time.Second, action.(Mute).Duration)

	for _, seconds := range []int{0, -5, MaxMuteSeconds + 1, 10_000_000_000} {
		_, err := ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(seconds)}.ToAction(time.Second)
		req.ErrorIs(err, errors.ErrInvalidCommand, "%d seconds", seconds)
	}

	// A coarse unit cannot wrap a valid count into a negative duration
	_, err = ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(MaxMuteSeconds)}.ToAction(24 * time.Hour)
	req.ErrorIs(err, errors.ErrInvalidCommand)
}
