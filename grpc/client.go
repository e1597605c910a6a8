package grpc

import (
	"chatroom/domain"
	"context"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is one participant's end of a Connect stream.
type Client struct {
	stream grpc.ClientStream
}

// Dial opens the Connect stream for handle over an existing connection.
func Dial(ctx context.Context, cc grpc.ClientConnInterface, handle domain.Handle) (*Client, error) {
	stream, err := OpenStream(ctx, cc, handle)
	if err != nil {
		return nil, err
	}
	return &Client{stream: stream}, nil
}

func (c *Client) SendText(text string) error {
	return c.send(domain.Inbound{Text: text})
}

func (c *Client) SendCommand(intent domain.ModerationIntent) error {
	return c.send(domain.Inbound{Command: lo.ToPtr(intent)})
}

func (c *Client) RequestRoster() error {
	return c.send(domain.Inbound{Roster: true})
}

// Recv blocks until the next frame. io.EOF means the server ended the stream normally.
func (c *Client) Recv() (domain.Frame, error) {
	var msg structpb.Struct
	if err := c.stream.RecvMsg(&msg); err != nil {
		return domain.Frame{}, err
	}
	return DecodeFrame(&msg)
}

func (c *Client) CloseSend() error {
	return c.stream.CloseSend()
}

func (c *Client) send(in domain.Inbound) error {
	msg, err := EncodeInbound(in)
	if err != nil {
		return err
	}
	return c.stream.SendMsg(msg)
}
