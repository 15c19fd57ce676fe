package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vtgate-go/vtgate-go-sdk/credentials"
)

// Env is the set of VTGATE_* environment variables understood by FromEnv
type Env struct {
	Endpoint           string        `env:"VTGATE_ENDPOINT"`
	Secure             bool          `env:"VTGATE_SECURE" envDefault:"false"`
	InsecureSkipVerify bool          `env:"VTGATE_TLS_INSECURE_SKIP_VERIFY"`
	DialTimeout        time.Duration `env:"VTGATE_DIAL_TIMEOUT" envDefault:"5s"`
	MaxMessageSize     int           `env:"VTGATE_MAX_MESSAGE_SIZE"`
	User               string        `env:"VTGATE_USER"`
	Password           string        `env:"VTGATE_PASSWORD"`
	AccessToken        string        `env:"VTGATE_ACCESS_TOKEN"`
	Log                LogEnv
}

// LogEnv selects the level and trace details of the default stderr logger
type LogEnv struct {
	Level   string `env:"VTGATE_LOG_LEVEL" envDefault:"quiet"`
	Details string `env:"VTGATE_LOG_DETAILS"`
}

// ParseEnv loads VTGATE_* variables from environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// ParseLogEnv loads only VTGATE_LOG_* variables, so a malformed connection
// variable does not affect logger setup.
func ParseLogEnv() (LogEnv, error) {
	e, err := env.ParseAs[LogEnv]()
	if err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}

	return e, nil
}

// Options converts environment settings into config options.
// Static user credentials win over access token when both are set.
func (e Env) Options() []Option {
	opts := []Option{
		WithSecure(e.Secure),
		WithDialTimeout(e.DialTimeout),
	}
	if e.Endpoint != "" {
		opts = append(opts, WithEndpoint(e.Endpoint))
	}
	if e.InsecureSkipVerify {
		opts = append(opts, WithTLSSInsecureSkipVerify())
	}
	if e.MaxMessageSize > 0 {
		opts = append(opts, WithMaxMessageSize(e.MaxMessageSize))
	}
	switch {
	case e.User != "":
		opts = append(opts, WithCredentials(credentials.NewStaticCredentials(e.User, e.Password,
			credentials.WithSourceInfo("env:VTGATE_USER"),
		)))
	case e.AccessToken != "":
		opts = append(opts, WithCredentials(credentials.NewAccessTokenCredentials(e.AccessToken,
			credentials.WithSourceInfo("env:VTGATE_ACCESS_TOKEN"),
		)))
	}

	return opts
}

// FromEnv returns config options from VTGATE_* environment variables
func FromEnv() ([]Option, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}

	return e.Options(), nil
}
