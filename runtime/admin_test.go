package runtime

import (
	"chatroom/domain"
	"chatroom/errors"
	"chatroom/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T, unit time.Duration) (*ModerationController, *Chatroom, *Registry) {
	t.Helper()
	room, registry, _ := newTestRoom(t, time.Second)
	controller := NewModerationController(logs.GetLoggerFromLevel(slog.LevelDebug), room, unit)
	t.Cleanup(controller.Stop)
	return controller, room, registry
}

func stateOf(t *testing.T, registry *Registry, handle domain.Handle) domain.State {
	t.Helper()
	m, err := registry.Get(handle)
	require.NoError(t, err)
	return m.State
}

func TestModerationController_Timed_Mute_Expires(t *testing.T) {
	req := require.New(t)
	controller, room, registry := newTestController(t, 10*time.Millisecond)
	join(t, room, "admin", domain.RoleAdmin)
	bob := join(t, room, "bob", domain.RoleMember)

	// Given bob is muted for 3 units
	err := controller.Execute(context.Background(), "admin", domain.ModerationIntent{
		Action:          "mute",
		Target:          "bob",
		DurationSeconds: lo.ToPtr(3),
	})
	req.NoError(err)
	req.Equal(domain.StateMuted, stateOf(t, registry, "bob"))
	_, pending := controller.Pending("bob")
	req.True(pending)

	// Then the system unmutes him once the duration elapsed
	req.Eventually(func() bool {
		m, err := registry.Get("bob")
		return err == nil && m.State == domain.StateActive
	}, time.Second, 5*time.Millisecond)
	_, pending = controller.Pending("bob")
	req.False(pending)

	// And he was told both times
	req.Eventually(func() bool { return len(bob.Frames()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestModerationController_Manual_Unmute_Cancels_Timer(t *testing.T) {
	req := require.New(t)
	controller, room, registry := newTestController(t, 20*time.Millisecond)
	join(t, room, "admin", domain.RoleAdmin)
	join(t, room, "bob", domain.RoleMember)
	ctx := context.Background()

	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(5)}))
	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "unmute", Target: "bob"}))
	_, pending := controller.Pending("bob")
	req.False(pending)

	// A permanent mute right after must not be lifted by the cancelled timer
	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "mute", Target: "bob"}))
	time.Sleep(200 * time.Millisecond)
	req.Equal(domain.StateMuted, stateOf(t, registry, "bob"))
}

func TestModerationController_Remute_Replaces_Timer(t *testing.T) {
	req := require.New(t)
	controller, room, registry := newTestController(t, 10*time.Millisecond)
	join(t, room, "admin", domain.RoleAdmin)
	join(t, room, "bob", domain.RoleMember)
	ctx := context.Background()

	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(2)}))
	first, _ := controller.Pending("bob")
	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(50)}))
	second, _ := controller.Pending("bob")
	req.True(second.After(first))

	// The first deadline passes without effect
	time.Sleep(100 * time.Millisecond)
	req.Equal(domain.StateMuted, stateOf(t, registry, "bob"))
}

func TestModerationController_Kick_Cancels_Timer(t *testing.T) {
	req := require.New(t)
	controller, room, _ := newTestController(t, 10*time.Millisecond)
	join(t, room, "admin", domain.RoleAdmin)
	join(t, room, "bob", domain.RoleMember)
	ctx := context.Background()

	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(5)}))
	req.NoError(controller.Execute(ctx, "admin", domain.ModerationIntent{Action: "kick", Target: "bob", Reason: "enough"}))

	_, pending := controller.Pending("bob")
	req.False(pending)
	req.Empty(lo.Filter(room.Participants(), func(p domain.Participant, _ int) bool { return p.Handle == "bob" }))
}

func TestModerationController_Rejects_Invalid_Intents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := mocks.NewMockIChatroom(ctrl)
	controller := NewModerationController(logs.GetLoggerFromLevel(slog.LevelDebug), room, time.Second)

	// The room is never reached
	room.EXPECT().ApplyModeration(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	intents := []domain.ModerationIntent{
		{Action: "ban", Target: "bob"},
		{Action: "mute", Target: ""},
		{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(0)},
		{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(-5)},
	}
	for _, intent := range intents {
		req.ErrorIs(controller.Execute(context.Background(), "admin", intent), errors.ErrInvalidCommand)
	}
}

func TestModerationController_Does_Not_Schedule_Refused_Mutes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := mocks.NewMockIChatroom(ctrl)
	controller := NewModerationController(logs.GetLoggerFromLevel(slog.LevelDebug), room, time.Second)

	room.EXPECT().
		ApplyModeration(gomock.Any(), domain.Mute{Handle: "bob", Duration: 30 * time.Second}, domain.UserIssuer("alice")).
		Return(errors.ErrNotAuthorized)

	err := controller.Execute(context.Background(), "alice", domain.ModerationIntent{Action: "mute", Target: "bob", DurationSeconds: lo.ToPtr(30)})
	req.ErrorIs(err, errors.ErrNotAuthorized)
	_, pending := controller.Pending("bob")
	req.False(pending)
}

func TestScheduledTask(t *testing.T) {
	req := require.New(t)

	fired := make(chan struct{})
	task := Schedule(10*time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(time.Second):
		req.Fail("task never ran")
	}
	req.False(task.Cancel())

	cancelled := Schedule(20*time.Millisecond, func() { req.Fail("cancelled task ran") })
	req.True(cancelled.Cancel())
	req.False(cancelled.Cancel())
	time.Sleep(50 * time.Millisecond)
}
