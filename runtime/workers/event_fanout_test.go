package workers

import (
	"chatroom/domain/event"
	"chatroom/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink1 := mocks.NewMockEventSink(ctrl)
	sink2 := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, nil, time.Second, sink1, sink2)
	evt := event.ParticipantJoined{Handle: "alice", At: time.Now()}

	// Given both sinks consume the event once
	sink1.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	sink2.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	// When the event is fanned out, Fanout returns once both sinks are done
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	slow := mocks.NewMockEventSink(ctrl)
	fast := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, nil, 20*time.Millisecond, slow, fast)

	// Given one sink waiting for its deadline
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	fast.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Then the fan-out is bounded by the sink timeout
	start := time.Now()
	fanout.Fanout(context.Background(), event.ParticipantLeft{Handle: "bob"})
	req.Less(time.Since(start), 500*time.Millisecond)
}

func TestEventFanout_Run(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := make(chan event.DomainEvent, 2)
	sink := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, events, time.Second, sink)

	received := make(chan event.DomainEvent, 2)
	sink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, evt event.DomainEvent) { received <- evt }).
		Return(nil).
		Times(2)

	events <- event.ParticipantJoined{Handle: "alice"}
	events <- event.ParticipantLeft{Handle: "alice"}
	close(events)

	// The worker stops when the channel is closed
	req.NoError(fanout.Run(context.Background()))
	req.IsType(event.ParticipantJoined{}, <-received)
	req.IsType(event.ParticipantLeft{}, <-received)
}
