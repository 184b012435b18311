package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-replisync/internal/cvr"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func invokePull(ctx context.Context, conn *grpc.ClientConn, req models.PullRequest, opts ...grpc.CallOption) (models.PullResponse, error) {
	var resp models.PullResponse
	err := conn.Invoke(ctx, PullFullMethod, &req, &resp, opts...)
	return resp, err
}

func TestPull_Success(t *testing.T) {
	conn, mocks := startTestServer(t, false)

	cookie := int64(3)
	mocks.pull.EXPECT().
		Pull(gomock.Any(), models.PullRequest{PullVersion: 1, ClientGroupID: "cg1", Cookie: &cookie}).
		Return(models.PullResponse{
			Cookie:                4,
			LastMutationIDChanges: map[string]int64{"c1": 2},
			Patch: []models.PatchOperation{
				models.DelOp("todo/t1"),
				models.PutOp("list/l1", map[string]any{"name": "groceries"}),
			},
		}, nil)

	var header metadata.MD
	resp, err := invokePull(context.Background(), conn,
		models.PullRequest{PullVersion: 1, ClientGroupID: "cg1", Cookie: &cookie},
		grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Cookie)
	assert.Equal(t, map[string]int64{"c1": 2}, resp.LastMutationIDChanges)
	require.Len(t, resp.Patch, 2)
	assert.Equal(t, models.DelOp("todo/t1"), resp.Patch[0])
	assert.Equal(t, models.OpPut, resp.Patch[1].Op)
	assert.Equal(t, map[string]any{"name": "groceries"}, resp.Patch[1].Value)
	assert.NotEmpty(t, header.Get(traceIDKey))
}

func TestPull_KeepsCallerTraceID(t *testing.T) {
	conn, mocks := startTestServer(t, false)
	mocks.pull.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{Cookie: 1}, nil)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-42")
	var header metadata.MD
	_, err := invokePull(ctx, conn, models.PullRequest{ClientGroupID: "cg1"}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"trace-42"}, header.Get(traceIDKey))
}

func TestPull_ErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{name: "unsupported version", err: service.ErrUnsupportedPullVersion, code: codes.InvalidArgument},
		{name: "no client group", err: service.ErrValidationNoClientGroupID, code: codes.InvalidArgument},
		{name: "invalid cookie", err: service.ErrValidationInvalidCookie, code: codes.InvalidArgument},
		{name: "client group of another user", err: store.ErrClientGroupForbidden, code: codes.PermissionDenied},
		{name: "retryable", err: fmt.Errorf("commit: %w", store.ErrRetryableTransaction), code: codes.Unavailable},
		{name: "duplicate id", err: cvr.ErrDuplicateID, code: codes.Internal},
		{name: "payload mismatch", err: service.ErrPayloadMismatch, code: codes.Internal},
		{name: "unknown", err: errors.New("boom"), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mocks := startTestServer(t, false)
			mocks.pull.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, tt.err)

			_, err := invokePull(context.Background(), conn, models.PullRequest{ClientGroupID: "cg1"})

			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestPull_InternalErrorHidesMessage(t *testing.T) {
	conn, mocks := startTestServer(t, false)
	mocks.pull.EXPECT().Pull(gomock.Any(), gomock.Any()).
		Return(models.PullResponse{}, errors.New("pq: relation todo is on fire"))

	_, err := invokePull(context.Background(), conn, models.PullRequest{ClientGroupID: "cg1"})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.NotContains(t, st.Message(), "on fire")
}

func TestPull_Auth(t *testing.T) {
	t.Run("missing metadata", func(t *testing.T) {
		conn, _ := startTestServer(t, true)

		_, err := invokePull(context.Background(), conn, models.PullRequest{ClientGroupID: "cg1"})

		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("malformed header", func(t *testing.T) {
		conn, _ := startTestServer(t, true)

		ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationKey, "Basic abc")
		_, err := invokePull(ctx, conn, models.PullRequest{ClientGroupID: "cg1"})

		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("rejected token", func(t *testing.T) {
		conn, mocks := startTestServer(t, true)
		mocks.auth.EXPECT().ParseToken(gomock.Any(), "bad").Return(models.Token{}, service.ErrTokenIsExpired)

		ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationKey, "Bearer bad")
		_, err := invokePull(ctx, conn, models.PullRequest{ClientGroupID: "cg1"})

		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("subject becomes user id", func(t *testing.T) {
		conn, mocks := startTestServer(t, true)
		mocks.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: "u1"}, nil)
		mocks.pull.EXPECT().
			Pull(gomock.Any(), models.PullRequest{ClientGroupID: "cg1", UserID: "u1"}).
			Return(models.PullResponse{Cookie: 1}, nil)

		ctx := metadata.AppendToOutgoingContext(context.Background(), authorizationKey, "Bearer good")
		resp, err := invokePull(ctx, conn, models.PullRequest{ClientGroupID: "cg1"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Cookie)
	})
}

func TestPull_NilRequest(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	resp, err := h.Pull(context.Background(), nil)

	assert.Nil(t, resp)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
