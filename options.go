package vtgate

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/vtgate-go/vtgate-go-sdk/config"
	"github.com/vtgate-go/vtgate-go-sdk/credentials"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/log"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

// Option contains configuration values for Driver
type Option func(ctx context.Context, d *Driver) error

// WithEndpoint defines vtgate address in form "host:port"
func WithEndpoint(endpoint string) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithEndpoint(endpoint))

		return nil
	}
}

// WithSecure enables TLS to vtgate with system certificates
func WithSecure() Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithSecure(true))

		return nil
	}
}

// WithInsecure disables TLS. It is the default
func WithInsecure() Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithSecure(false))

		return nil
	}
}

// WithCredentials sets per-call credentials
func WithCredentials(c credentials.Credentials) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithCredentials(c))

		return nil
	}
}

// WithStaticCredentials sets vtgate static auth user and password
func WithStaticCredentials(user, password string) Option {
	return WithCredentials(credentials.NewStaticCredentials(user, password,
		credentials.WithSourceInfo("vtgate.WithStaticCredentials(user,password)"),
	))
}

// WithAccessTokenCredentials sets bearer token for every call
func WithAccessTokenCredentials(accessToken string) Option {
	return WithCredentials(credentials.NewAccessTokenCredentials(accessToken,
		credentials.WithSourceInfo("vtgate.WithAccessTokenCredentials(accessToken)"),
	))
}

// WithAnonymousCredentials force to make requests without authentication.
func WithAnonymousCredentials() Option {
	return WithCredentials(credentials.NewAnonymousCredentials(
		credentials.WithSourceInfo("vtgate.WithAnonymousCredentials()"),
	))
}

// WithDialTimeout sets timeout for establishing connection in Open.
// Zero timeout makes Open lazy: connection is established on first call.
func WithDialTimeout(timeout time.Duration) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithDialTimeout(timeout))

		return nil
	}
}

// WithGrpcDialOptions appends custom grpc dial options
func WithGrpcDialOptions(opts ...grpc.DialOption) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithGrpcOptions(opts...))

		return nil
	}
}

// WithGrpcCallOptions appends grpc call options used on every gateway call
func WithGrpcCallOptions(opts ...grpc.CallOption) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithCallOptions(opts...))

		return nil
	}
}

// WithOpenTelemetry instruments grpc connection with opentelemetry traces and metrics.
// Global tracer and meter providers are used unless otelgrpc options say otherwise.
func WithOpenTelemetry(opts ...otelgrpc.Option) Option {
	return WithGrpcDialOptions(grpc.WithStatsHandler(otelgrpc.NewClientHandler(opts...)))
}

// WithTraceGateway appends gateway trace to early defined traces
func WithTraceGateway(t trace.Gateway, opts ...trace.GatewayComposeOption) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, config.WithTrace(t, opts...))

		return nil
	}
}

// WithLogger add enables logging for selected tracing events.
//
// See trace package documentation for details.
func WithLogger(l log.Logger, details trace.Detailer) Option {
	if details == nil {
		details = trace.DetailsAll
	}

	return func(ctx context.Context, d *Driver) error {
		d.logger = l
		d.loggerDetails = details

		return nil
	}
}

// With appends raw config options
func With(opts ...config.Option) Option {
	return func(ctx context.Context, d *Driver) error {
		d.options = append(d.options, opts...)

		return nil
	}
}

// WithConfigFromEnv applies VTGATE_* environment variables.
// Options passed after it take precedence.
func WithConfigFromEnv() Option {
	return func(ctx context.Context, d *Driver) error {
		opts, err := config.FromEnv()
		if err != nil {
			return xerrors.WithStackTrace(err)
		}
		d.options = append(d.options, opts...)

		return nil
	}
}
