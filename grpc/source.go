package grpc

import (
	"chatroom/contract"
	"chatroom/domain"
	"chatroom/errors"
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/structpb"
)

var _ contract.InboundSource = (*StreamSource)(nil)

type receiver interface {
	RecvMsg(m any) error
}

// StreamSource reads inbound frames from the server side of a Connect stream.
type StreamSource struct {
	stream receiver
}

func NewStreamSource(stream receiver) *StreamSource {
	return &StreamSource{stream: stream}
}

// Next blocks on the stream. Its lifetime is bound to the stream context, not ctx.
func (s *StreamSource) Next(_ context.Context) (domain.Inbound, error) {
	var msg structpb.Struct
	if err := s.stream.RecvMsg(&msg); err != nil {
		if stderrors.Is(err, io.EOF) {
			return domain.Inbound{}, io.EOF
		}
		return domain.Inbound{}, fmt.Errorf("%w: %w", errors.ErrTransportClosed, err)
	}
	return DecodeInbound(&msg)
}
