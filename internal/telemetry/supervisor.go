package telemetry

import (
	"context"
	"time"

	"codeberg.org/mutker/co2mon/internal/logger"
)

// Supervisor keeps the broker session alive. It has no retry ceiling:
// connectivity is a prerequisite for every cycle, so it blocks until
// connected or the context is cancelled.
type Supervisor struct {
	broker Broker
	delay  time.Duration
	sleep  func(time.Duration)
}

func NewSupervisor(broker Broker, reconnectDelay time.Duration) *Supervisor {
	return &Supervisor{
		broker: broker,
		delay:  reconnectDelay,
		sleep:  time.Sleep,
	}
}

// WithSleep replaces the reconnect pause, for tests.
func (s *Supervisor) WithSleep(sleep func(time.Duration)) *Supervisor {
	s.sleep = sleep
	return s
}

// EnsureConnected returns immediately when the session is alive. Otherwise
// it loops: attempt, wait, attempt. The only exit besides success is
// context cancellation.
func (s *Supervisor) EnsureConnected(ctx context.Context) error {
	if s.broker.IsConnected() {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger.Info().Msg("Connecting to MQTT broker...")

		err := s.broker.Connect()
		if err == nil {
			logger.Info().Msg("MQTT connected")
			return nil
		}

		logger.Warn().Err(err).Dur("retry_in", s.delay).Msg("MQTT connect failed")
		s.sleep(s.delay)
	}
}
