package vtgate

import (
	"context"
	"os"
	"sync"
	"time"

	"google.golang.org/grpc"
	grpcCodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/connectivity"
	grpcStatus "google.golang.org/grpc/status"

	"github.com/vtgate-go/vtgate-go-sdk/config"
	"github.com/vtgate-go/vtgate-go-sdk/internal/gateway"
	gatewayConfig "github.com/vtgate-go/vtgate-go-sdk/internal/gateway/config"
	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/log"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

var _ Connection = (*Driver)(nil)

// Connection is an interface of vtgate driver
type Connection interface {
	// Endpoint returns vtgate address
	Endpoint() string

	// Gateway returns client of vtgateservice.Vitess
	Gateway() *gateway.Client

	// Close closes connection and releases resources
	Close(ctx context.Context) error
}

// Driver is a connection to vtgate
type Driver struct {
	config  *config.Config
	options []config.Option

	logger        log.Logger
	loggerDetails trace.Detailer

	cc      *grpc.ClientConn
	gateway *gateway.Client

	closeOnce sync.Once
	closeErr  error
}

func (d *Driver) Endpoint() string {
	return d.config.Endpoint()
}

// Gateway returns vtgate client
func (d *Driver) Gateway() *gateway.Client {
	return d.gateway
}

// Close closes the grpc connection. Later calls return the first result.
func (d *Driver) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.closeErr = d.gateway.Close(ctx)
	})

	return d.closeErr
}

// Open connects to vtgate at endpoint
//
// Example of endpoint: "localhost:15991"
// Non-empty endpoint wins over endpoint from options and environment.
func Open(ctx context.Context, endpoint string, opts ...Option) (_ *Driver, err error) {
	if endpoint != "" {
		opts = append(opts, WithEndpoint(endpoint))
	}
	d, err := newConnectionFromOptions(ctx, opts...)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	onDone := trace.GatewayOnDial(d.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk.Open"),
		d.config.Endpoint(),
	)
	defer func() {
		onDone(err)
	}()

	if err = d.connect(ctx); err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return d, nil
}

// MustOpen connects to vtgate and panics on error
func MustOpen(ctx context.Context, endpoint string, opts ...Option) *Driver {
	d, err := Open(ctx, endpoint, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

func newConnectionFromOptions(ctx context.Context, opts ...Option) (_ *Driver, err error) {
	d := &Driver{}
	logEnv, err := config.ParseLogEnv()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if l := log.FromString(logEnv.Level); l < log.QUIET {
		opts = append([]Option{
			WithLogger(
				log.Default(os.Stderr,
					log.WithMinLevel(l),
					log.WithColoring(),
				),
				trace.MatchDetails(logEnv.Details, trace.WithDefaultDetails(trace.DetailsAll)),
			),
		}, opts...)
	}
	for _, opt := range opts {
		if opt != nil {
			if err = opt(ctx, d); err != nil {
				return nil, xerrors.WithStackTrace(err)
			}
		}
	}
	if d.logger != nil {
		d.options = append(d.options,
			config.WithTrace(log.Gateway(d.logger, d.loggerDetails)),
		)
	}
	d.config = config.New(d.options...)

	return d, nil
}

func (d *Driver) connect(ctx context.Context) (err error) {
	if d.config.Endpoint() == "" {
		return xerrors.WithStackTrace(errEmptyEndpoint)
	}

	d.cc, err = grpc.NewClient(d.config.Endpoint(), d.config.GrpcDialOptions()...)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}

	if timeout := d.config.DialTimeout(); timeout > 0 {
		if err = waitReady(ctx, d.cc, timeout); err != nil {
			_ = d.cc.Close()

			return xerrors.WithStackTrace(err)
		}
	}

	d.gateway = gateway.New(d.cc, gatewayConfig.New(
		gatewayConfig.WithEndpoint(d.config.Endpoint()),
		gatewayConfig.WithTrace(*d.config.Trace()),
		gatewayConfig.WithCallOptions(d.config.CallOptions()...),
	))

	return nil
}

// waitReady blocks until connection becomes ready, failure is reported as unavailable vtgate
func waitReady(ctx context.Context, cc *grpc.ClientConn, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cc.Connect()
	for {
		state := cc.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return xerrors.WithStackTrace(errConnectionShutdown)
		}
		if !cc.WaitForStateChange(ctx, state) {
			return xerrors.WithStackTrace(xerrors.FromGRPCError(
				grpcStatus.Errorf(grpcCodes.Unavailable, "connection not ready in %v (last state %s): %v",
					timeout, state, ctx.Err(),
				),
				xerrors.WithAddress(cc.Target()),
			))
		}
	}
}
