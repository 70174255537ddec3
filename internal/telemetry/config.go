package telemetry

import (
	"time"

	"codeberg.org/mutker/co2mon/internal/errors"
)

const (
	defaultBrokerPort     = 1883
	defaultKeepAlive      = 30 * time.Second
	defaultTokenTimeout   = 10 * time.Second
	defaultReconnectDelay = 5 * time.Second
	defaultPublishRetries = 3
	defaultPublishDelay   = time.Second
)

type Config struct {
	BrokerHost     string
	BrokerPort     int
	ClientID       string
	Username       string
	Password       string
	Topic          string
	TokenTimeout   time.Duration
	ReconnectDelay time.Duration
	PublishRetries int
	PublishDelay   time.Duration
}

func DefaultConfig() Config {
	return Config{
		BrokerPort:     defaultBrokerPort,
		TokenTimeout:   defaultTokenTimeout,
		ReconnectDelay: defaultReconnectDelay,
		PublishRetries: defaultPublishRetries,
		PublishDelay:   defaultPublishDelay,
	}
}

func (c Config) Validate() error {
	errFactory := errors.NewFactory()

	if c.BrokerHost == "" {
		return errFactory.New(ErrInvalidConfig).WithMessage("broker host is required")
	}
	if c.BrokerPort <= 0 || c.BrokerPort > 65535 {
		return errFactory.WithData(ErrInvalidConfig, c.BrokerPort)
	}
	if c.Topic == "" {
		return errFactory.New(ErrInvalidConfig).WithMessage("publish topic is required")
	}
	if c.PublishRetries < 1 {
		return errFactory.WithData(ErrInvalidConfig, c.PublishRetries)
	}

	return nil
}
