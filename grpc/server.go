package grpc

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"chatroom/runtime/workers"
	stderrors "errors"
	"log/slog"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ ChatroomServer = (*ChatServer)(nil)

type ChatServer struct {
	log                  *slog.Logger
	room                 contract.IChatroom
	controller           contract.IModerationController
	admins               map[domain.Handle]struct{}
	connectionBufferSize int
}

func NewChatServer(log *slog.Logger, room contract.IChatroom, controller contract.IModerationController,
	admins []string, connectionBufferSize int) *ChatServer {
	return &ChatServer{
		log:        log,
		room:       room,
		controller: controller,
		admins: lo.SliceToMap(admins, func(h string) (domain.Handle, struct{}) {
			return domain.Handle(h), struct{}{}
		}),
		connectionBufferSize: connectionBufferSize,
	}
}

// Connect attaches one participant for the lifetime of the stream.
// Inbound frames are handled by a Session in its own goroutine while this
// goroutine writes the participant's outbound frames to the stream.
// The stream ends when the client closes it, when the participant is kicked,
// or when a write fails.
func (s *ChatServer) Connect(stream grpc.ServerStream) error {
	ctx := stream.Context()
	handle, ok := handleFromContext(ctx)
	if !ok {
		return status.Errorf(codes.InvalidArgument, "missing or invalid %s metadata", HandleMetadataKey)
	}

	sink := NewSink(s.connectionBufferSize)
	defer sink.Close()
	session := workers.NewSession(s.log, handle, s.roleOf(handle), NewStreamSource(stream), sink, s.room, s.controller)

	sessionErr := make(chan error, 1)
	go func() {
		sessionErr <- session.Run(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Client disconnected", "handle", handle)
			return nil
		case frame := <-sink.Frames():
			if err := send(stream, frame); err != nil {
				s.log.Error("failed to push frame to stream", "handle", handle, "error", err)
				return err
			}
		case <-sink.Done():
			// Kicked or left: what was queued before closing still goes out
			return s.flush(stream, sink)
		case err := <-sessionErr:
			if flushErr := s.flush(stream, sink); flushErr != nil {
				return flushErr
			}
			return toStatus(err)
		}
	}
}

func (s *ChatServer) roleOf(handle domain.Handle) domain.Role {
	if _, ok := s.admins[handle]; ok {
		return domain.RoleAdmin
	}
	return domain.RoleMember
}

func (s *ChatServer) flush(stream grpc.ServerStream, sink *Sink) error {
	for {
		select {
		case frame := <-sink.Frames():
			if err := send(stream, frame); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func send(stream grpc.ServerStream, frame domain.Frame) error {
	msg, err := EncodeFrame(frame)
	if err != nil {
		return err
	}
	return stream.SendMsg(msg)
}

func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, errors.ErrDuplicateHandle):
		return status.Error(codes.AlreadyExists, err.Error())
	case stderrors.Is(err, errors.ErrInvalidHandle):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, errors.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case stderrors.Is(err, errors.ErrRoomClosed):
		return status.Error(codes.Unavailable, err.Error())
	case stderrors.Is(err, errors.ErrSenderMuted):
		return status.Error(codes.FailedPrecondition, err.Error())
	case stderrors.Is(err, errors.ErrUnknownParticipant), stderrors.Is(err, errors.ErrSenderUnknown):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
