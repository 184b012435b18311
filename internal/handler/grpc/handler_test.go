package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	servicemock "github.com/MKhiriev/go-replisync/internal/service/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

type testServices struct {
	pull *servicemock.MockPullService
	auth *servicemock.MockAuthService
}

// startTestServer serves a Handler over mocked services on an in-memory
// listener and returns a client connection using the json codec.
func startTestServer(t *testing.T, withAuth bool) (*grpc.ClientConn, *testServices) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &testServices{
		pull: servicemock.NewMockPullService(ctrl),
		auth: servicemock.NewMockAuthService(ctrl),
	}
	services := &service.Services{PullService: mocks.pull}
	if withAuth {
		services.AuthService = mocks.auth
	}

	h := NewHandler(services, logger.Nop())
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, mocks
}
