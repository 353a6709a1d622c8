package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "brainmon.api.v1alpha1.BrainmonService"

// Method names
const (
	MethodStartEncounter   = "StartEncounter"
	MethodGetBattleState   = "GetBattleState"
	MethodCheckAnswer      = "CheckAnswer"
	MethodCaptureMonster   = "CaptureMonster"
	MethodAbandonEncounter = "AbandonEncounter"
	MethodListMonsters     = "ListMonsters"
	MethodGetMonster       = "GetMonster"
	MethodRenameMonster    = "RenameMonster"
	MethodDeleteMonster    = "DeleteMonster"
	MethodGetWorldMap      = "GetWorldMap"
	MethodGetTrainerStats  = "GetTrainerStats"
	MethodWatchMonsters    = "WatchMonsters"
	MethodWatchBattle      = "WatchBattle"
	MethodWatchWorldMap    = "WatchWorldMap"
)

// FullMethod returns the "/service/method" path used on the wire
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// StructStream is the server side of a server-streaming method
type StructStream = grpc.ServerStreamingServer[structpb.Struct]

// BrainmonServiceServer is the server API for BrainmonService. Every message
// is a google.protobuf.Struct.
type BrainmonServiceServer interface {
	StartEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBattleState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CheckAnswer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CaptureMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AbandonEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMonsters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenameMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetWorldMap(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTrainerStats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	WatchMonsters(*structpb.Struct, StructStream) error
	WatchBattle(*structpb.Struct, StructStream) error
	WatchWorldMap(*structpb.Struct, StructStream) error
}

type unaryFunc func(BrainmonServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

type streamFunc func(BrainmonServiceServer, *structpb.Struct, StructStream) error

func unaryMethod(name string, call unaryFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(BrainmonServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			})
		},
	}
}

func streamMethod(name string, call streamFunc) grpc.StreamDesc {
	return grpc.StreamDesc{
		StreamName:    name,
		ServerStreams: true,
		Handler: func(srv any, stream grpc.ServerStream) error {
			in := new(structpb.Struct)
			if err := stream.RecvMsg(in); err != nil {
				return err
			}
			return call(srv.(BrainmonServiceServer), in, &grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
		},
	}
}

// ServiceDesc describes BrainmonService for grpc.ServiceRegistrar
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BrainmonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodStartEncounter, BrainmonServiceServer.StartEncounter),
		unaryMethod(MethodGetBattleState, BrainmonServiceServer.GetBattleState),
		unaryMethod(MethodCheckAnswer, BrainmonServiceServer.CheckAnswer),
		unaryMethod(MethodCaptureMonster, BrainmonServiceServer.CaptureMonster),
		unaryMethod(MethodAbandonEncounter, BrainmonServiceServer.AbandonEncounter),
		unaryMethod(MethodListMonsters, BrainmonServiceServer.ListMonsters),
		unaryMethod(MethodGetMonster, BrainmonServiceServer.GetMonster),
		unaryMethod(MethodRenameMonster, BrainmonServiceServer.RenameMonster),
		unaryMethod(MethodDeleteMonster, BrainmonServiceServer.DeleteMonster),
		unaryMethod(MethodGetWorldMap, BrainmonServiceServer.GetWorldMap),
		unaryMethod(MethodGetTrainerStats, BrainmonServiceServer.GetTrainerStats),
	},
	Streams: []grpc.StreamDesc{
		streamMethod(MethodWatchMonsters, BrainmonServiceServer.WatchMonsters),
		streamMethod(MethodWatchBattle, BrainmonServiceServer.WatchBattle),
		streamMethod(MethodWatchWorldMap, BrainmonServiceServer.WatchWorldMap),
	},
	Metadata: "brainmon/api/v1alpha1/brainmon.proto",
}

// RegisterBrainmonServiceServer registers srv with s
func RegisterBrainmonServiceServer(s grpc.ServiceRegistrar, srv BrainmonServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls BrainmonService over a client connection
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes a unary method. A nil req is sent as an empty struct.
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Watch opens a server-streaming method
func (c *Client) Watch(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	var desc *grpc.StreamDesc
	for i := range ServiceDesc.Streams {
		if ServiceDesc.Streams[i].StreamName == method {
			desc = &ServiceDesc.Streams[i]
			break
		}
	}
	if desc == nil {
		return nil, status.Errorf(codes.Unimplemented, "unknown stream %s", method)
	}
	if req == nil {
		req = &structpb.Struct{}
	}

	stream, err := c.cc.NewStream(ctx, desc, FullMethod(method), opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}
	if err := x.SendMsg(req); err != nil {
		return nil, err
	}
	if err := x.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
