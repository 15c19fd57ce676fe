package xtest

import (
	"fmt"
	"net"
	"reflect"
	"time"

	"github.com/rekby/fixenv"
	"github.com/rekby/fixenv/sf"
	"google.golang.org/grpc"

	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgateservicepb"
)

// GrpcMockVtgateAddr starts in-process grpc server with vitessServiceImpl
// registered as vtgateservice.Vitess and returns its host:port.
// Server is shared for same impl within the fixture env and stopped on cleanup.
func GrpcMockVtgateAddr(e fixenv.Env, vitessServiceImpl vtgateservicepb.VitessServer) string {
	v := reflect.ValueOf(vitessServiceImpl)
	addr := v.Pointer()

	var f fixenv.GenericFixtureFunction[string] = func() (*fixenv.GenericResult[string], error) {
		listener := sf.LocalTCPListenerNamed(e, fmt.Sprintf("vtgate-grpc-mock-%v", addr))

		mock, err := newGrpcMock(listener, vitessServiceImpl)
		if err != nil {
			return nil, fmt.Errorf("failed to create grpc mock: %w", err)
		}

		clean := func() {
			_ = mock.Close()
		}

		return fixenv.NewGenericResultWithCleanup(listener.Addr().String(), clean), nil
	}

	return fixenv.CacheResult(e, f, fixenv.CacheOptions{CacheKey: addr})
}

type grpcMock struct {
	listener   net.Listener
	grpcServer *grpc.Server
	stopChan   chan error
}

func (m *grpcMock) Close() error {
	m.grpcServer.Stop()

	return m.listener.Close()
}

func newGrpcMock(listener net.Listener, vitessServiceImpl vtgateservicepb.VitessServer) (*grpcMock, error) {
	res := &grpcMock{
		listener:   listener,
		grpcServer: grpc.NewServer(),
		stopChan:   make(chan error, 1),
	}

	vtgateservicepb.RegisterVitessServer(res.grpcServer, vitessServiceImpl)

	go func() {
		res.stopChan <- res.grpcServer.Serve(res.listener)
	}()

	select {
	case err := <-res.stopChan:
		return nil, err
	case <-time.After(time.Millisecond):
		return res, nil
	}
}
