// Package config holds vtgate connection settings.
package config

import (
	"crypto/tls"
	"crypto/x509"
	"time"

	"google.golang.org/grpc"
	grpcCredentials "google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/vtgate-go/vtgate-go-sdk/credentials"
	"github.com/vtgate-go/vtgate-go-sdk/internal/version"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

// Config contains driver configuration options.
type Config struct {
	endpoint    string
	secure      bool
	tlsConfig   *tls.Config
	dialTimeout time.Duration
	keepalive   keepalive.ClientParameters
	maxMsgSize  int
	credentials credentials.Credentials
	grpcOptions []grpc.DialOption
	callOptions []grpc.CallOption
	trace       *trace.Gateway
}

// Endpoint is a required vtgate address in host:port form
func (c *Config) Endpoint() string {
	return c.endpoint
}

// Secure is a flag for TLS connection
func (c *Config) Secure() bool {
	return c.secure
}

func (c *Config) TLSConfig() *tls.Config {
	return c.tlsConfig
}

// DialTimeout is the maximum amount of time Open waits for connection to become ready.
// If DialTimeout is zero then Open does not wait and connection is established lazily.
func (c *Config) DialTimeout() time.Duration {
	return c.dialTimeout
}

// Credentials attached to every call, nil means anonymous access
func (c *Config) Credentials() credentials.Credentials {
	return c.credentials
}

// Trace contains gateway tracing options.
func (c *Config) Trace() *trace.Gateway {
	return c.trace
}

// CallOptions are appended to every call to vtgate
func (c *Config) CallOptions() []grpc.CallOption {
	return c.callOptions
}

// GrpcDialOptions returns grpc dial options made from config, custom options go last
func (c *Config) GrpcDialOptions() []grpc.DialOption {
	opts := make([]grpc.DialOption, 0, len(c.grpcOptions)+5)
	opts = append(opts,
		grpc.WithUserAgent(version.FullVersion),
		grpc.WithKeepaliveParams(c.keepalive),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(c.maxMsgSize),
			grpc.MaxCallSendMsgSize(c.maxMsgSize),
		),
	)
	if c.secure {
		opts = append(opts, grpc.WithTransportCredentials(grpcCredentials.NewTLS(c.tlsConfig)))
	} else {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	if c.credentials != nil {
		opts = append(opts, grpc.WithPerRPCCredentials(c.credentials))
	}

	return append(opts, c.grpcOptions...)
}

type Option func(c *Config)

func WithEndpoint(endpoint string) Option {
	return func(c *Config) {
		c.endpoint = endpoint
	}
}

func WithSecure(secure bool) Option {
	return func(c *Config) {
		c.secure = secure
	}
}

// WithCertificate appends certificate to TLS root pool and enables TLS
func WithCertificate(certificate *x509.Certificate) Option {
	return func(c *Config) {
		c.secure = true
		c.tlsConfig.RootCAs.AddCert(certificate)
	}
}

func WithMinTLSVersion(minVersion uint16) Option {
	return func(c *Config) {
		c.tlsConfig.MinVersion = minVersion
	}
}

// WithTLSSInsecureSkipVerify disables server certificate check, use for tests only
func WithTLSSInsecureSkipVerify() Option {
	return func(c *Config) {
		c.tlsConfig.InsecureSkipVerify = true
	}
}

func WithDialTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.dialTimeout = timeout
	}
}

func WithKeepalive(params keepalive.ClientParameters) Option {
	return func(c *Config) {
		c.keepalive = params
	}
}

// WithMaxMessageSize limits size of sent and received messages
func WithMaxMessageSize(size int) Option {
	return func(c *Config) {
		c.maxMsgSize = size
	}
}

func WithCredentials(credentials credentials.Credentials) Option {
	return func(c *Config) {
		c.credentials = credentials
	}
}

// WithTrace appends gateway trace to early defined traces
func WithTrace(t trace.Gateway, opts ...trace.GatewayComposeOption) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(&t, opts...)
	}
}

// WithGrpcOptions appends custom grpc dial options
func WithGrpcOptions(option ...grpc.DialOption) Option {
	return func(c *Config) {
		c.grpcOptions = append(c.grpcOptions, option...)
	}
}

// WithCallOptions appends grpc call options used on every call
func WithCallOptions(option ...grpc.CallOption) Option {
	return func(c *Config) {
		c.callOptions = append(c.callOptions, option...)
	}
}

func New(opts ...Option) *Config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func certPool() (certPool *x509.CertPool) {
	defer func() {
		// on darwin system panic raced on checking system security
		if e := recover(); e != nil {
			certPool = x509.NewCertPool()
		}
	}()
	var err error
	certPool, err = x509.SystemCertPool()
	if err != nil {
		certPool = x509.NewCertPool()
	}

	return certPool
}

func defaultConfig() *Config {
	return &Config{
		secure: false,
		tlsConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    certPool(),
		},
		dialTimeout: DefaultDialTimeout,
		keepalive:   DefaultKeepalive,
		maxMsgSize:  DefaultGRPCMsgSize,
		trace:       &trace.Gateway{},
	}
}
