// Package telemetry maintains the MQTT session and publishes readings to
// the remote channel. Reconnection is supervised here: the control loop
// cannot make progress without connectivity, so EnsureConnected blocks
// until the session is alive or the context is cancelled.
package telemetry

import (
	"fmt"

	"codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/logger"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Broker is the MQTT session collaborator. Service must be invoked once
// per cycle regardless of outcome; the paho implementation drives its own
// keepalive, so its Service is a no-op kept for the cycle contract.
type Broker interface {
	Connect() error
	IsConnected() bool
	Publish(topic, payload string, retain bool) error
	Service()
	Close()
}

type pahoBroker struct {
	client mqtt.Client
	cfg    Config
}

// NewBroker creates a paho-backed Broker. Automatic reconnection is
// disabled: the Supervisor owns the reconnect loop so its pacing stays
// deterministic.
func NewBroker(cfg Config) (Broker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.BrokerHost, cfg.BrokerPort))
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectRetry(false)
	opts.SetKeepAlive(defaultKeepAlive)

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn().Err(err).Msg("MQTT connection lost")
	})

	return &pahoBroker{
		client: mqtt.NewClient(opts),
		cfg:    cfg,
	}, nil
}

func (b *pahoBroker) Connect() error {
	token := b.client.Connect()
	if !token.WaitTimeout(b.cfg.TokenTimeout) {
		return errors.New(ErrConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return errors.Wrap(ErrConnectFailed, err)
	}

	return nil
}

func (b *pahoBroker) IsConnected() bool {
	return b.client.IsConnected()
}

func (b *pahoBroker) Publish(topic, payload string, retain bool) error {
	token := b.client.Publish(topic, 0, retain, payload)
	if !token.WaitTimeout(b.cfg.TokenTimeout) {
		return errors.New(ErrPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return errors.Wrap(ErrPublishFailed, err)
	}

	return nil
}

// Service is a no-op: paho services keepalive and inbound traffic on its
// own goroutines.
func (b *pahoBroker) Service() {}

func (b *pahoBroker) Close() {
	b.client.Disconnect(250) // quiesce window in milliseconds
}
