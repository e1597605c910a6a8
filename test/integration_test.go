package test

import (
	"chatroom/domain"
	"chatroom/domain/event"
	grpc2 "chatroom/grpc"
	"chatroom/moderation"
	"chatroom/repositories"
	"chatroom/runtime"
	"chatroom/runtime/workers"
	"chatroom/sink"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type server struct {
	conn       *grpc.ClientConn
	grpc       *grpc.Server
	room       *runtime.Chatroom
	repository repositories.ModerationRepository
}

// startServer wires the whole room behind an in-memory gRPC listener.
func startServer(t *testing.T, muteUnit time.Duration) *server {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	filter, err := moderation.NewModerator([]string{"damn", "shit"}, '*', false)
	req.NoError(err)

	events := make(chan event.DomainEvent, 1024)
	room, err := runtime.NewChatroom(log, runtime.NewRegistry(), filter, 200*time.Millisecond, events)
	req.NoError(err)
	controller := runtime.NewModerationController(log, room, muteUnit)
	t.Cleanup(controller.Stop)

	repository := repositories.NewModerationRepository(db, log)
	ctx, cancel := context.WithCancel(context.Background())
	supervisor := workers.NewSupervisor(log, 100*time.Millisecond)
	supervisor.Add(workers.NewEventFanout(log, events, time.Second, sink.NewAuditSink(repository)))
	supervisorDone := make(chan struct{})
	go func() {
		supervisor.Run(ctx)
		close(supervisorDone)
	}()

	listener := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	grpc2.RegisterChatroomServer(s, grpc2.NewChatServer(log, room, controller, []string{"admin"}, 16))
	go func() { _ = s.Serve(listener) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	req.NoError(err)

	t.Cleanup(func() {
		_ = conn.Close()
		s.Stop()
		cancel()
		<-supervisorDone
	})
	return &server{conn: conn, grpc: s, room: room, repository: repository}
}

type participant struct {
	t      *testing.T
	client *grpc2.Client
	frames chan domain.Frame
	ended  chan error
}

// connect opens a stream and waits until the participant is in the room.
func (s *server) connect(t *testing.T, handle domain.Handle) *participant {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	client, err := grpc2.Dial(ctx, s.conn, handle)
	require.NoError(t, err)

	p := &participant{t: t, client: client, frames: make(chan domain.Frame, 64), ended: make(chan error, 1)}
	go func() {
		for {
			f, err := client.Recv()
			if err != nil {
				p.ended <- err
				return
			}
			p.frames <- f
		}
	}()

	// The roster answer proves the join happened
	require.NoError(t, client.RequestRoster())
	roster := p.next(domain.FrameRoster)
	require.True(t, lo.ContainsBy(roster.Roster, func(m domain.Participant) bool { return m.Handle == handle }))
	return p
}

func (p *participant) next(kind domain.FrameKind) domain.Frame {
	p.t.Helper()
	select {
	case f := <-p.frames:
		require.Equal(p.t, kind, f.Kind, "unexpected frame %+v", f)
		return f
	case err := <-p.ended:
		require.FailNow(p.t, "stream ended", "%v", err)
	case <-time.After(2 * time.Second):
		require.FailNow(p.t, "no frame received")
	}
	return domain.Frame{}
}

func (p *participant) silent() {
	p.t.Helper()
	select {
	case f := <-p.frames:
		require.FailNow(p.t, "unexpected frame", "%+v", f)
	case <-time.After(100 * time.Millisecond):
	}
}

func (p *participant) end() error {
	p.t.Helper()
	select {
	case err := <-p.ended:
		return err
	case <-time.After(2 * time.Second):
		require.FailNow(p.t, "stream still open")
	}
	return nil
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, 100*time.Millisecond)

	admin := srv.connect(t, "admin")
	alice := srv.connect(t, "alice")
	carol := srv.connect(t, "carol")

	// 1. Messages reach everybody but the sender, censored
	req.NoError(alice.client.SendText("what a damn day"))
	for _, p := range []*participant{admin, carol} {
		f := p.next(domain.FrameMessage)
		req.Equal(domain.Handle("alice"), f.From)
		req.Equal("what a **** day", f.Text)
	}
	alice.silent()

	// 2. A member cannot moderate
	req.NoError(alice.client.SendCommand(domain.ModerationIntent{Action: "kick", Target: "carol"}))
	req.Contains(alice.next(domain.FrameError).Text, "not authorized")

	// 3. A timed mute silences carol, then lifts by itself
	req.NoError(admin.client.SendCommand(domain.ModerationIntent{Action: "mute", Target: "carol", DurationSeconds: lo.ToPtr(2)}))
	carol.next(domain.FrameNotice)
	req.NoError(carol.client.SendText("hello?"))
	req.Contains(carol.next(domain.FrameError).Text, "muted")
	carol.next(domain.FrameNotice)
	req.NoError(carol.client.SendText("I'm back"))
	req.Equal("I'm back", alice.next(domain.FrameMessage).Text)
	req.Equal("I'm back", admin.next(domain.FrameMessage).Text)

	// 4. A kick ends carol's stream after she got told why
	req.NoError(admin.client.SendCommand(domain.ModerationIntent{Action: "kick", Target: "carol", Reason: "flood"}))
	req.Contains(carol.next(domain.FrameNotice).Text, "flood")
	req.True(errors.Is(carol.end(), io.EOF))

	// 5. She is gone for the others
	req.NoError(alice.client.RequestRoster())
	roster := alice.next(domain.FrameRoster).Roster
	req.Equal([]domain.Handle{"admin", "alice"}, lo.Map(roster, func(p domain.Participant, _ int) domain.Handle { return p.Handle }))

	// 6. The audit log has every moderation action, newest first
	req.Eventually(func() bool {
		records, err := srv.repository.ListRecords(0)
		return err == nil && len(records) == 3
	}, 2*time.Second, 10*time.Millisecond)
	records, err := srv.repository.ListRecords(0)
	req.NoError(err)
	req.Equal([]string{"kick", "unmute", "mute"}, lo.Map(records, func(r repositories.ModerationRecord, _ int) string { return r.Action }))
	req.Equal("system", records[1].Issuer)
}

func Test_Duplicate_Handle_Is_Refused(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, time.Second)
	srv.connect(t, "alice")

	client, err := grpc2.Dial(context.Background(), srv.conn, "alice")
	req.NoError(err)
	_, err = client.Recv()
	req.Equal(codes.AlreadyExists, status.Code(err))
}

func Test_Missing_Handle_Is_Refused(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, time.Second)

	client, err := grpc2.Dial(context.Background(), srv.conn, "  ")
	req.NoError(err)
	_, err = client.Recv()
	req.Equal(codes.InvalidArgument, status.Code(err))
}

func Test_Leaving_Frees_The_Handle(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, time.Second)
	bob := srv.connect(t, "bob")
	alice := srv.connect(t, "alice")

	// When alice closes her side the server ends the stream
	req.NoError(alice.client.CloseSend())
	req.True(errors.Is(alice.end(), io.EOF))

	// Then bob is alone, and alice may come back
	req.NoError(bob.client.RequestRoster())
	req.Len(bob.next(domain.FrameRoster).Roster, 1)
	srv.connect(t, "alice")
}

func Test_Shutdown_Ends_Idle_Streams(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, time.Second)
	alice := srv.connect(t, "alice")

	// When the room closes while alice says nothing
	srv.room.Close(context.Background())
	stopped := make(chan struct{})
	go func() {
		srv.grpc.GracefulStop()
		close(stopped)
	}()

	// Then she is told, her stream ends and the server stops
	req.Contains(alice.next(domain.FrameNotice).Text, "closing")
	req.True(errors.Is(alice.end(), io.EOF))
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		req.FailNow("graceful stop still waiting on open streams")
	}
}

func Test_Joining_A_Closed_Room_Is_Refused(t *testing.T) {
	req := require.New(t)
	srv := startServer(t, time.Second)
	srv.room.Close(context.Background())

	client, err := grpc2.Dial(context.Background(), srv.conn, "late")
	req.NoError(err)
	_, err = client.Recv()
	req.Equal(codes.Unavailable, status.Code(err))
}
