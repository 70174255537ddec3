package telemetry

import (
	"time"

	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/logger"
	"codeberg.org/mutker/co2mon/internal/retry"
	"codeberg.org/mutker/co2mon/internal/sensor"
)

// Publisher sends readings to the configured topic under a bounded retry
// policy. Publishing is best-effort: exhaustion is reported to the caller
// and the reading is dropped, never queued.
type Publisher struct {
	broker Broker
	topic  string
	policy retry.Policy
}

func NewPublisher(broker Broker, cfg Config) *Publisher {
	return &Publisher{
		broker: broker,
		topic:  cfg.Topic,
		policy: retry.NewPolicy(cfg.PublishRetries, cfg.PublishDelay),
	}
}

// WithSleep replaces the retry pause, for tests.
func (p *Publisher) WithSleep(sleep func(time.Duration)) *Publisher {
	p.policy = p.policy.WithSleep(sleep)
	return p
}

// Publish encodes the reading and sends it retained, retrying per policy.
// On exhaustion it returns ErrPublishExhausted.
func (p *Publisher) Publish(reading sensor.Reading) error {
	payload := EncodePayload(reading)

	outcome := p.policy.Do(func() error {
		return p.broker.Publish(p.topic, payload, true)
	})

	if !outcome.Success {
		logger.Warn().
			Int("attempts", outcome.AttemptsUsed).
			Str("topic", p.topic).
			AnErr("last_error", outcome.Err).
			Msg("Publish exhausted retries")

		return errors.Wrap(ErrPublishExhausted, outcome.Err)
	}

	logger.Debug().
		Str("topic", p.topic).
		Str("payload", payload).
		Int("attempts", outcome.AttemptsUsed).
		Msg("Published reading")

	return nil
}
