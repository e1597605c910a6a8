package grpc

import (
	"chatroom/domain"
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	ServiceName       = "chatroom.v1.Chatroom"
	HandleMetadataKey = "x-chat-handle"

	connectMethod = "/" + ServiceName + "/Connect"
)

// ChatroomServer is implemented by ChatServer.
// Frames are carried as google.protobuf.Struct messages in both directions.
type ChatroomServer interface {
	Connect(stream grpc.ServerStream) error
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ChatroomServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "Connect",
			Handler: func(srv any, stream grpc.ServerStream) error {
				return srv.(ChatroomServer).Connect(stream)
			},
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "chatroom/v1/chatroom.proto",
}

func RegisterChatroomServer(s grpc.ServiceRegistrar, srv ChatroomServer) {
	s.RegisterService(&serviceDesc, srv)
}

// OpenStream starts the Connect stream for handle.
func OpenStream(ctx context.Context, cc grpc.ClientConnInterface, handle domain.Handle, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, HandleMetadataKey, string(handle))
	return cc.NewStream(ctx, &serviceDesc.Streams[0], connectMethod, opts...)
}

func handleFromContext(ctx context.Context) (domain.Handle, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get(HandleMetadataKey)
	if len(values) != 1 {
		return "", false
	}
	h := domain.Handle(values[0])
	return h, h.Valid()
}
