package workers

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"strings"
	"time"
)

var _ contract.Worker = (*Session)(nil)

// Session bridges one participant's transport to the room.
// It joins with the outbound sink, then reads inbound frames until the stream ends,
// sending messages, running moderation commands and answering roster requests.
// Rejections go back to the participant as error frames.
type Session struct {
	log        *slog.Logger
	handle     domain.Handle
	role       domain.Role
	source     contract.InboundSource
	sink       contract.OutboundSink
	room       contract.IChatroom
	controller contract.IModerationController
}

func NewSession(log *slog.Logger, handle domain.Handle, role domain.Role,
	source contract.InboundSource, sink contract.OutboundSink,
	room contract.IChatroom, controller contract.IModerationController) *Session {
	return &Session{
		log:        log.With("handle", handle),
		handle:     handle,
		role:       role,
		source:     source,
		sink:       sink,
		room:       room,
		controller: controller,
	}
}

// Run returns nil when the stream ends or the participant gets kicked.
func (s *Session) Run(ctx context.Context) error {
	if _, err := s.room.Join(s.handle, s.role, s.sink); err != nil {
		return err
	}
	defer s.room.Leave(s.handle, s.sink)

	for {
		in, err := s.source.Next(ctx)
		if err != nil {
			if stderrors.Is(err, errors.ErrInvalidCommand) {
				s.reject(ctx, err)
				continue
			}
			if stderrors.Is(err, io.EOF) || stderrors.Is(err, errors.ErrTransportClosed) {
				s.log.Debug("Inbound stream ended")
				return nil
			}
			if ctx.Err() != nil {
				s.log.Debug("Stopping session")
				return nil
			}
			return err
		}

		if err := s.dispatch(ctx, in); err != nil {
			if stderrors.Is(err, errors.ErrSenderUnknown) {
				// Kicked: the handle may already belong to a new connection
				s.log.Debug("Participant is no longer in the room")
				return nil
			}
			s.reject(ctx, err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, in domain.Inbound) error {
	switch {
	case in.Command != nil:
		return s.controller.Execute(ctx, s.handle, *in.Command)
	case in.Roster:
		return s.sink.Push(ctx, domain.Frame{
			Kind:   domain.FrameRoster,
			Roster: s.room.Participants(),
			At:     time.Now().UTC(),
		})
	case strings.TrimSpace(in.Text) == "":
		return nil
	default:
		_, err := s.room.Send(ctx, s.handle, in.Text)
		return err
	}
}

func (s *Session) reject(ctx context.Context, err error) {
	s.log.Debug("Inbound frame rejected", "error", err)
	if pushErr := s.sink.Push(ctx, domain.ErrorFrame(err, time.Now().UTC())); pushErr != nil {
		s.log.Debug("Error frame lost", "error", pushErr)
	}
}
