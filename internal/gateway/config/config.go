package config

import (
	"google.golang.org/grpc"

	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

// Config is a configuration of vtgate gateway client
type Config struct {
	endpoint    string
	trace       *trace.Gateway
	callOptions []grpc.CallOption
}

// Trace returns trace over gateway client calls
func (c *Config) Trace() *trace.Gateway {
	return c.trace
}

// Endpoint returns address of vtgate, used for error annotation
func (c *Config) Endpoint() string {
	return c.endpoint
}

// CallOptions returns grpc call options appended to every call
func (c *Config) CallOptions() []grpc.CallOption {
	return c.callOptions
}

type Option func(c *Config)

// WithTrace appends gateway trace to early defined traces
func WithTrace(trace trace.Gateway, opts ...trace.GatewayComposeOption) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(&trace, opts...)
	}
}

// WithEndpoint applies vtgate address
func WithEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.endpoint = endpoint
	}
}

// WithCallOptions appends grpc call options
func WithCallOptions(opts ...grpc.CallOption) Option {
	return func(c *Config) {
		c.callOptions = append(c.callOptions, opts...)
	}
}

func New(opts ...Option) *Config {
	c := &Config{
		trace: &trace.Gateway{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}
