package notify

import (
	"time"

	"codeberg.org/mutker/co2mon/internal/errors"
)

const (
	defaultPort    = 587
	defaultTimeout = 15 * time.Second
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Sender     string
	SenderName string
	Recipients []string
	Timeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		Port:       defaultPort,
		SenderName: "CO2 Monitor",
		Timeout:    defaultTimeout,
	}
}

func (c Config) Validate() error {
	errFactory := errors.NewFactory()

	if c.Host == "" {
		return errFactory.New(ErrInvalidConfig).WithMessage("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errFactory.WithData(ErrInvalidConfig, c.Port)
	}
	if c.Sender == "" {
		return errFactory.New(ErrInvalidConfig).WithMessage("sender address is required")
	}
	if len(c.Recipients) == 0 {
		return errFactory.New(ErrInvalidConfig).WithMessage("at least one recipient is required")
	}

	return nil
}
