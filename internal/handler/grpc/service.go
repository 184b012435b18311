package grpc

import (
	"context"

	"github.com/MKhiriev/go-replisync/models"
	"google.golang.org/grpc"
)

const (
	// ServiceName is the fully qualified name of the Sync service.
	ServiceName = "replisync.v1.Sync"
	// PullFullMethod is the method path clients invoke.
	PullFullMethod = "/" + ServiceName + "/Pull"
)

// SyncServer is what a Sync service implementation provides.
type SyncServer interface {
	Pull(ctx context.Context, req *models.PullRequest) (*models.PullResponse, error)
}

// SyncServiceDesc describes the Sync service for grpc.Server.RegisterService.
// Messages are models types encoded by the json codec, so there is no
// generated stub.
var SyncServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Pull",
			Handler:    pullHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "replisync/v1/sync",
}

func pullHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.PullRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServer).Pull(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PullFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(SyncServer).Pull(ctx, req.(*models.PullRequest))
	}
	return interceptor(ctx, in, info, handler)
}
