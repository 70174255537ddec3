// Package notify dispatches alert emails over SMTP. A send is attempted
// once per notification: a failed send is reported but not retried here,
// the alert cooldown window provides the next opportunity.
package notify

import (
	"context"
	"fmt"

	"codeberg.org/mutker/co2mon/internal/alert"
	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/logger"
	mail "github.com/wneessen/go-mail"
)

const subject = "ALERT: elevated CO2 level detected"

// Dispatcher sends alert notifications. probe reports network liveness;
// when it returns false the dispatcher fails fast without dialing.
type Dispatcher struct {
	cfg   Config
	probe func() bool
}

func NewDispatcher(cfg Config, probe func() bool) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Dispatcher{
		cfg:   cfg,
		probe: probe,
	}, nil
}

// Notify delivers the alert email. The caller owns the alert state: it
// transitions whether or not delivery succeeds.
func (d *Dispatcher) Notify(ctx context.Context, n alert.Notification) error {
	if d.probe != nil && !d.probe() {
		logger.Warn().Msg("Network down, skipping alert email")
		return errors.New(ErrNotConnected)
	}

	msg, err := d.buildMessage(n)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(d.cfg.Host,
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(d.cfg.Timeout),
	)
	if err != nil {
		return errors.Wrap(ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(ErrSendFailed, err)
	}

	logger.Info().
		Float64("co2_ppm", n.Reading.CO2).
		Strs("recipients", d.cfg.Recipients).
		Msg("Alert email sent")

	return nil
}

func (d *Dispatcher) buildMessage(n alert.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(d.cfg.SenderName, d.cfg.Sender); err != nil {
		return nil, errors.Wrap(ErrBuildMessage, err)
	}
	if err := msg.To(d.cfg.Recipients...); err != nil {
		return nil, errors.Wrap(ErrBuildMessage, err)
	}

	msg.Subject(subject)
	msg.SetImportance(mail.ImportanceHigh)
	msg.SetBodyString(mail.TypeTextPlain, Body(n))

	return msg, nil
}

// Body renders the fixed-template message carrying the reading and the
// threshold that was crossed.
func Body(n alert.Notification) string {
	return fmt.Sprintf(`ALERT - degraded air quality

The CO2 level has exceeded the alert threshold.

Current readings:
- CO2: %.1f ppm
- Temperature: %.1f °C
- Humidity: %.1f %%

Alert threshold: %.0f ppm

Please ventilate the room immediately.
`, n.Reading.CO2, n.Reading.Temperature, n.Reading.Humidity, n.Threshold)
}
