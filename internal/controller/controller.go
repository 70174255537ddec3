// Package controller sequences one monitoring cycle: connection check,
// sensor read, alert evaluation, telemetry publish, display update. Steps
// run strictly one at a time; there is no concurrency inside a cycle.
package controller

import (
	"context"
	"time"

	"codeberg.org/mutker/co2mon/internal/alert"
	"codeberg.org/mutker/co2mon/internal/display"
	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/journal"
	"codeberg.org/mutker/co2mon/internal/logger"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"codeberg.org/mutker/co2mon/internal/telemetry"
)

// Notifier is the alert delivery collaborator.
type Notifier interface {
	Notify(ctx context.Context, n alert.Notification) error
}

// Reader is the sensor acquisition collaborator.
type Reader interface {
	Read() (sensor.Reading, error)
}

// Publisher is the telemetry publish collaborator.
type Publisher interface {
	Publish(reading sensor.Reading) error
}

type Config struct {
	Interval         time.Duration
	DisplayThreshold float64 // cosmetic indicator cutoff, distinct from the alert threshold
}

type Controller struct {
	cfg        Config
	supervisor *telemetry.Supervisor
	broker     telemetry.Broker
	reader     Reader
	machine    *alert.Machine
	publisher  Publisher
	notifier   Notifier
	recorder   journal.Recorder // nil when journaling is disabled
	disp       display.Display
	indicator  display.Indicator
	now        func() time.Time
}

func New(
	cfg Config,
	supervisor *telemetry.Supervisor,
	broker telemetry.Broker,
	reader Reader,
	machine *alert.Machine,
	publisher Publisher,
	notifier Notifier,
	recorder journal.Recorder,
	disp display.Display,
	indicator display.Indicator,
) (*Controller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New(errors.ErrInvalidInterval).WithData(cfg.Interval)
	}

	return &Controller{
		cfg:        cfg,
		supervisor: supervisor,
		broker:     broker,
		reader:     reader,
		machine:    machine,
		publisher:  publisher,
		notifier:   notifier,
		recorder:   recorder,
		disp:       disp,
		indicator:  indicator,
		now:        time.Now,
	}, nil
}

// WithClock replaces the time source, for tests.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Run executes cycles on a fixed interval until the context is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := c.Cycle(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
		}
	}
}

// Cycle runs the per-iteration sequence once. Sensor and publish failures
// are degraded locally and never abort the loop; the only error returned
// is context cancellation surfaced by the connection supervisor.
func (c *Controller) Cycle(ctx context.Context) error {
	if err := c.supervisor.EnsureConnected(ctx); err != nil {
		return err
	}

	c.broker.Service()

	reading, err := c.reader.Read()
	if err != nil {
		display.ShowStatus(c.disp, "Sensor Error!")
		return nil
	}

	if n := c.machine.Evaluate(reading, c.now()); n != nil {
		c.dispatch(ctx, *n)
	}

	if err := c.publisher.Publish(reading); err != nil {
		display.ShowStatus(c.disp, "Publish Failed!")
	}

	display.ShowReading(c.disp, reading)

	if reading.CO2 > c.cfg.DisplayThreshold {
		c.indicator.On()
	} else {
		c.indicator.Off()
	}

	return nil
}

// dispatch delivers a notification and journals the outcome. The alert
// state already transitioned in Evaluate: a failed send is not retried
// here, the cooldown window is the next opportunity.
func (c *Controller) dispatch(ctx context.Context, n alert.Notification) {
	display.ShowStatus(c.disp, "Sending Alert...")
	c.disp.Backlight(255, 0, 0)

	err := c.notifier.Notify(ctx, n)
	if err != nil {
		logger.Warn().Err(err).Msg("Alert notification failed")
		display.ShowStatus(c.disp, "Email Failed!")
	} else {
		display.ShowStatus(c.disp, "Alert Sent!")
	}

	c.disp.Backlight(255, 255, 255)

	if c.recorder != nil {
		entry := &journal.Entry{
			FiredAt:     n.FiredAt,
			CO2:         n.Reading.CO2,
			Temperature: n.Reading.Temperature,
			Humidity:    n.Reading.Humidity,
			Threshold:   n.Threshold,
			Delivered:   err == nil,
		}
		if recordErr := c.recorder.Record(ctx, entry); recordErr != nil {
			logger.Warn().Err(recordErr).Msg("Failed to journal notification")
		}
	}
}
