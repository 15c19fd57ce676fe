package gateway

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"

	"github.com/vtgate-go/vtgate-go-sdk/internal/gateway/config"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xtest"
	"github.com/vtgate-go/vtgate-go-sdk/proto/querypb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgatepb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgateservicepb"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

func streamItem(rowsAffected uint64) *vtgatepb.StreamExecuteResponse {
	return &vtgatepb.StreamExecuteResponse{
		Result: &querypb.QueryResult{RowsAffected: rowsAffected},
	}
}

func expectStreamExecute(
	service *MockVitessClient, stream vtgateservicepb.Vitess_StreamExecuteClient, ctxOut *context.Context,
) {
	service.EXPECT().StreamExecute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(
			ctx context.Context, _ *vtgatepb.StreamExecuteRequest, _ ...grpc.CallOption,
		) (vtgateservicepb.Vitess_StreamExecuteClient, error) {
			if ctxOut != nil {
				*ctxOut = ctx
			}

			return stream, nil
		},
	)
}

func TestStream(t *testing.T) {
	t.Run("Items", func(t *testing.T) {
		snapshot := xtest.GoroutinesSnapshot()
		defer xtest.CheckGoroutinesLeak(t, snapshot)

		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		stream.EXPECT().Recv().Return(streamItem(2), nil)
		stream.EXPECT().Recv().Return(nil, io.EOF)
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		require.Equal(t, 1, s.Received())
		{
			item, err := s.Next(ctx)
			require.NoError(t, err)
			require.EqualValues(t, 1, item.GetResult().GetRowsAffected())
		}
		{
			item, err := s.Next(ctx)
			require.NoError(t, err)
			require.EqualValues(t, 2, item.GetResult().GetRowsAffected())
		}
		for range 3 {
			item, err := s.Next(ctx)
			require.ErrorIs(t, err, io.EOF)
			require.Nil(t, item)
		}
		require.Equal(t, 2, s.Received())
		require.ErrorIs(t, streamCtx.Err(), context.Canceled)
		require.NoError(t, s.Close())
		{
			_, err := s.Next(ctx)
			require.ErrorIs(t, err, io.EOF)
		}
	})
	t.Run("EmptySuccess", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		expectStreamExecute(service, stream, nil)
		stream.EXPECT().Recv().Return(nil, io.EOF)
		var empty bool
		c := newTestClient(t, service, config.WithTrace(trace.Gateway{
			OnNewStream: func(trace.GatewayNewStreamStartInfo) func(trace.GatewayNewStreamDoneInfo) {
				return func(info trace.GatewayNewStreamDoneInfo) {
					empty = info.Empty
				}
			},
		}))

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		require.NotNil(t, s)
		require.True(t, empty)
		_, err = s.Next(ctx)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, 0, s.Received())
	})
	t.Run("FailOnConstruct", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(nil, grpcStatus.Error(grpcCodes.InvalidArgument, "syntax error"))
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.Nil(t, s)
		require.True(t, xerrors.IsKind(err, xerrors.KindBadInput))
		require.Contains(t, err.Error(), "syntax error")
		require.ErrorIs(t, streamCtx.Err(), context.Canceled)
	})
	t.Run("FailOnOpen", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		service.EXPECT().StreamExecute(gomock.Any(), gomock.Any()).
			Return(nil, grpcStatus.Error(grpcCodes.Unavailable, "no connection"))
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.Nil(t, s)
		require.True(t, xerrors.IsKind(err, xerrors.KindTransient))
	})
	t.Run("FailAfterItems", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		expectStreamExecute(service, stream, nil)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		stream.EXPECT().Recv().Return(nil, grpcStatus.Error(grpcCodes.DeadlineExceeded, "query timeout")).Times(1)
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		item, err := s.Next(ctx)
		require.NoError(t, err)
		require.NotNil(t, item)
		_, err = s.Next(ctx)
		require.True(t, xerrors.IsKind(err, xerrors.KindDeadlineExceeded))
		_, again := s.Next(ctx)
		require.Equal(t, err, again)
		require.NoError(t, s.Close())
		_, again = s.Next(ctx)
		require.Equal(t, err, again)
	})
}

func TestStreamClose(t *testing.T) {
	t.Run("BeforeEnd", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		var received []int
		c := newTestClient(t, service, config.WithTrace(trace.Gateway{
			OnStreamClose: func(trace.GatewayStreamCloseStartInfo) func(trace.GatewayStreamCloseDoneInfo) {
				return func(info trace.GatewayStreamCloseDoneInfo) {
					received = append(received, info.Received)
				}
			},
		}))

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
		require.ErrorIs(t, streamCtx.Err(), context.Canceled)
		require.Equal(t, []int{1}, received)
		for range 2 {
			_, err = s.Next(ctx)
			require.ErrorIs(t, err, ErrStreamClosed)
		}
	})
	t.Run("DuringNext", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		recvStarted := make(chan struct{})
		stream.EXPECT().Recv().DoAndReturn(func() (*vtgatepb.StreamExecuteResponse, error) {
			close(recvStarted)
			<-streamCtx.Done()

			return nil, grpcStatus.FromContextError(streamCtx.Err()).Err()
		})
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		_, err = s.Next(ctx)
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-recvStarted
			_ = s.Close()
		}()
		_, err = s.Next(ctx)
		wg.Wait()
		require.ErrorIs(t, err, ErrStreamClosed)
	})
	t.Run("ContextCancelled", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		nextCtx, cancel := context.WithCancel(ctx)
		stream.EXPECT().Recv().DoAndReturn(func() (*vtgatepb.StreamExecuteResponse, error) {
			cancel()
			<-streamCtx.Done()

			return nil, grpcStatus.FromContextError(streamCtx.Err()).Err()
		})
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		_, err = s.Next(nextCtx)
		require.NoError(t, err)
		_, err = s.Next(nextCtx)
		require.True(t, xerrors.IsTransportError(err, grpcCodes.Canceled))
		_, err = s.Next(ctx)
		require.True(t, xerrors.IsTransportError(err, grpcCodes.Canceled))
	})
	t.Run("DoneContext", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		expectStreamExecute(service, stream, nil)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		stream.EXPECT().Recv().Return(nil, io.EOF)
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		doneCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = s.Next(doneCtx)
		require.NoError(t, err, "buffered item is returned without transport")
		_, err = s.Next(doneCtx)
		require.ErrorIs(t, err, context.Canceled)
		_, err = s.Next(ctx)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestStreamAll(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		expectStreamExecute(service, stream, nil)
		for i := range 3 {
			stream.EXPECT().Recv().Return(streamItem(uint64(i)), nil)
		}
		stream.EXPECT().Recv().Return(nil, io.EOF)
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		var rows []uint64
		for item, err := range s.All(ctx) {
			require.NoError(t, err)
			rows = append(rows, item.GetResult().GetRowsAffected())
		}
		require.Equal(t, []uint64{0, 1, 2}, rows)
	})
	t.Run("Error", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		expectStreamExecute(service, stream, nil)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		stream.EXPECT().Recv().Return(nil, grpcStatus.Error(grpcCodes.AlreadyExists, "duplicate key"))
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		var (
			items   int
			lastErr error
		)
		for _, err := range s.All(ctx) {
			if err != nil {
				lastErr = err

				continue
			}
			items++
		}
		require.Equal(t, 1, items)
		require.True(t, xerrors.IsKind(lastErr, xerrors.KindIntegrity))
	})
	t.Run("Break", func(t *testing.T) {
		ctx := xtest.Context(t)
		ctrl := gomock.NewController(t)
		service := NewMockVitessClient(ctrl)
		stream := NewMockVitess_StreamExecuteClient(ctrl)
		var streamCtx context.Context
		expectStreamExecute(service, stream, &streamCtx)
		stream.EXPECT().Recv().Return(streamItem(1), nil)
		c := newTestClient(t, service)

		s, err := c.StreamExecute(ctx, &vtgatepb.StreamExecuteRequest{})
		require.NoError(t, err)
		for range s.All(ctx) {
			break
		}
		require.ErrorIs(t, streamCtx.Err(), context.Canceled)
		_, err = s.Next(ctx)
		require.ErrorIs(t, err, ErrStreamClosed)
	})
}

func TestStreamVariants(t *testing.T) {
	ctx := xtest.Context(t)
	ctrl := gomock.NewController(t)
	service := NewMockVitessClient(ctrl)
	c := newTestClient(t, service)

	t.Run("StreamExecuteShards", func(t *testing.T) {
		stream := NewMockVitess_StreamExecuteShardsClient(ctrl)
		request := &vtgatepb.StreamExecuteShardsRequest{Keyspace: "ks", Shards: []string{"0"}}
		service.EXPECT().StreamExecuteShards(gomock.Any(), request).Return(stream, nil)
		stream.EXPECT().Recv().Return(&vtgatepb.StreamExecuteShardsResponse{}, nil)
		stream.EXPECT().Recv().Return(nil, io.EOF)

		s, err := c.StreamExecuteShards(ctx, request)
		require.NoError(t, err)
		_, err = s.Next(ctx)
		require.NoError(t, err)
		_, err = s.Next(ctx)
		require.ErrorIs(t, err, io.EOF)
	})
	t.Run("StreamExecuteKeyspaceIds", func(t *testing.T) {
		stream := NewMockVitess_StreamExecuteKeyspaceIdsClient(ctrl)
		request := &vtgatepb.StreamExecuteKeyspaceIdsRequest{Keyspace: "ks"}
		service.EXPECT().StreamExecuteKeyspaceIds(gomock.Any(), request).Return(stream, nil)
		stream.EXPECT().Recv().Return(nil, grpcStatus.Error(grpcCodes.Unauthenticated, "who are you"))

		s, err := c.StreamExecuteKeyspaceIds(ctx, request)
		require.Nil(t, s)
		require.True(t, xerrors.IsKind(err, xerrors.KindUnauthenticated))
		require.Contains(t, err.Error(), "/vtgateservice.Vitess/StreamExecuteKeyspaceIds")
	})
	t.Run("StreamExecuteKeyRanges", func(t *testing.T) {
		stream := NewMockVitess_StreamExecuteKeyRangesClient(ctrl)
		request := &vtgatepb.StreamExecuteKeyRangesRequest{Keyspace: "ks"}
		service.EXPECT().StreamExecuteKeyRanges(gomock.Any(), request).Return(stream, nil)
		stream.EXPECT().Recv().Return(nil, io.EOF)

		s, err := c.StreamExecuteKeyRanges(ctx, request)
		require.NoError(t, err)
		_, err = s.Next(ctx)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestStreamErrorIsNotEOF(t *testing.T) {
	err := (&Client{config: config.New()}).wrapError(errors.New("broken pipe"), "/vtgateservice.Vitess/StreamExecute")
	require.NotErrorIs(t, err, io.EOF)
	require.True(t, xerrors.IsKind(err, xerrors.KindGeneric))
}
