package grpc

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"context"
	"sync"
)

var _ contract.OutboundSink = (*Sink)(nil)

// Sink buffers frames for one connected participant.
// The gRPC handler owning the stream drains Frames and writes them out.
type Sink struct {
	frames chan domain.Frame
	done   chan struct{}
	once   sync.Once
}

func NewSink(bufferSize int) *Sink {
	return &Sink{
		frames: make(chan domain.Frame, bufferSize),
		done:   make(chan struct{}),
	}
}

// Push is called by the chatroom fan-out.
// A full buffer waits until ctx expires, which the chatroom reports as a suppressed delivery.
func (s *Sink) Push(ctx context.Context, f domain.Frame) error {
	select {
	case <-s.done:
		return errors.ErrTransportClosed
	default:
	}
	select {
	case s.frames <- f:
		return nil
	case <-s.done:
		return errors.ErrTransportClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close is idempotent. Frames already buffered can still be drained.
func (s *Sink) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *Sink) Frames() <-chan domain.Frame {
	return s.frames
}

func (s *Sink) Done() <-chan struct{} {
	return s.done
}
