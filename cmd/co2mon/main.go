package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/co2mon/internal/alert"
	"codeberg.org/mutker/co2mon/internal/config"
	"codeberg.org/mutker/co2mon/internal/controller"
	"codeberg.org/mutker/co2mon/internal/display"
	"codeberg.org/mutker/co2mon/internal/journal"
	"codeberg.org/mutker/co2mon/internal/logger"
	"codeberg.org/mutker/co2mon/internal/notify"
	"codeberg.org/mutker/co2mon/internal/pid"
	"codeberg.org/mutker/co2mon/internal/sensor"
	"codeberg.org/mutker/co2mon/internal/telemetry"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove PID file")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if err := run(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}

	logger.Info().Msg("Exiting...")
}

func run(ctx context.Context) error {
	source, err := sensor.New(cfg.Sensor.Driver)
	if err != nil {
		return err
	}
	acquisition := sensor.NewAcquisition(source, cfg.Sensor.Retries, cfg.Sensor.RetryDelay)

	broker, err := telemetry.NewBroker(mqttConfig())
	if err != nil {
		return err
	}
	defer broker.Close()

	supervisor := telemetry.NewSupervisor(broker, cfg.MQTT.ReconnectDelay)
	publisher := telemetry.NewPublisher(broker, mqttConfig())

	machine := alert.NewMachine(alert.Config{
		Threshold:  cfg.Alert.Threshold,
		Hysteresis: cfg.Alert.Hysteresis,
		Cooldown:   cfg.Alert.Cooldown,
	})

	dispatcher, err := notify.NewDispatcher(smtpConfig(), broker.IsConnected)
	if err != nil {
		return err
	}

	var recorder journal.Recorder
	if cfg.Journal.Enabled {
		recorder, err = journal.NewRecorder(journal.Config{DBPath: cfg.Journal.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close alert journal")
			}
		}()
	}

	disp := display.NewConsole()
	indicator := display.NewConsoleIndicator()

	ctrl, err := controller.New(
		controller.Config{
			Interval:         cfg.Interval,
			DisplayThreshold: cfg.Alert.DisplayThreshold,
		},
		supervisor, broker, acquisition, machine, publisher, dispatcher,
		recorder, disp, indicator,
	)
	if err != nil {
		return err
	}

	// Bounded startup connect: log and continue on timeout, the per-cycle
	// supervisor takes over from here.
	connectCtx, connectCancel := context.WithTimeout(ctx, cfg.MQTT.ConnectTimeout)
	if err := supervisor.EnsureConnected(connectCtx); err != nil {
		logger.Warn().Err(err).Msg("Initial connect did not complete, continuing")
	}
	connectCancel()

	display.ShowStatus(disp, "Monitor ready")

	return ctrl.Run(ctx)
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func mqttConfig() telemetry.Config {
	mqttCfg := telemetry.DefaultConfig()
	mqttCfg.BrokerHost = cfg.MQTT.Broker
	mqttCfg.BrokerPort = cfg.MQTT.Port
	mqttCfg.ClientID = cfg.MQTT.ClientID
	mqttCfg.Username = cfg.MQTT.Username
	mqttCfg.Password = cfg.MQTT.Password
	mqttCfg.Topic = cfg.MQTT.Topic
	mqttCfg.ReconnectDelay = cfg.MQTT.ReconnectDelay
	mqttCfg.PublishRetries = cfg.MQTT.PublishRetries
	mqttCfg.PublishDelay = cfg.MQTT.PublishDelay
	return mqttCfg
}

func smtpConfig() notify.Config {
	smtpCfg := notify.DefaultConfig()
	smtpCfg.Host = cfg.SMTP.Host
	smtpCfg.Port = cfg.SMTP.Port
	smtpCfg.Username = cfg.SMTP.Username
	smtpCfg.Password = cfg.SMTP.Password
	smtpCfg.Sender = cfg.SMTP.Sender
	if cfg.SMTP.SenderName != "" {
		smtpCfg.SenderName = cfg.SMTP.SenderName
	}
	smtpCfg.Recipients = cfg.SMTP.Recipients
	smtpCfg.Timeout = cfg.SMTP.Timeout
	return smtpCfg
}
