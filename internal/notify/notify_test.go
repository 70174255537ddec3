package notify_test

import (
	"context"
	"testing"
	"time"

	"codeberg.org/mutker/co2mon/internal/alert"
	apperrors "codeberg.org/mutker/co2mon/internal/errors"
	"codeberg.org/mutker/co2mon/internal/notify"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() notify.Config {
	cfg := notify.DefaultConfig()
	cfg.Host = "smtp.example.net"
	cfg.Sender = "monitor@example.net"
	cfg.Recipients = []string{"ops@example.net", "facilities@example.net"}
	return cfg
}

func testNotification() alert.Notification {
	return alert.Notification{
		Reading:   sensor.Reading{CO2: 1250.4, Temperature: 23.5, Humidity: 48.2},
		Threshold: 1000,
		FiredAt:   time.Unix(1700000000, 0),
	}
}

func TestNotifyFailsFastWhenDisconnected(t *testing.T) {
	d, err := notify.NewDispatcher(testConfig(), func() bool { return false })
	require.NoError(t, err)

	err = d.Notify(context.Background(), testNotification())

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, notify.ErrNotConnected))
}

func TestBodyEmbedsReadingAndThreshold(t *testing.T) {
	body := notify.Body(testNotification())

	assert.Contains(t, body, "CO2: 1250.4 ppm")
	assert.Contains(t, body, "Temperature: 23.5 °C")
	assert.Contains(t, body, "Humidity: 48.2 %")
	assert.Contains(t, body, "Alert threshold: 1000 ppm")
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testConfig().Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := testConfig()
		cfg.Host = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing sender", func(t *testing.T) {
		cfg := testConfig()
		cfg.Sender = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("no recipients", func(t *testing.T) {
		cfg := testConfig()
		cfg.Recipients = nil
		assert.Error(t, cfg.Validate())
	})
}
