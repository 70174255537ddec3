package config

import (
	"os"
	"strings"
	"time"

	"codeberg.org/mutker/co2mon/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultLogLevel = "info"

type Config struct {
	Interval time.Duration `mapstructure:"interval"`
	LogLevel string        `mapstructure:"log_level"`
	Debug    bool          `mapstructure:"debug"`
	Verbose  bool          `mapstructure:"verbose"`

	Sensor  SensorConfig  `mapstructure:"sensor"`
	Alert   AlertConfig   `mapstructure:"alert"`
	MQTT    MQTTConfig    `mapstructure:"mqtt"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
	Journal JournalConfig `mapstructure:"journal"`
}

type SensorConfig struct {
	Driver     string        `mapstructure:"driver"`
	Retries    int           `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type AlertConfig struct {
	Threshold        float64       `mapstructure:"threshold"`
	Hysteresis       float64       `mapstructure:"hysteresis"`
	Cooldown         time.Duration `mapstructure:"cooldown"`
	DisplayThreshold float64       `mapstructure:"display_threshold"`
}

type MQTTConfig struct {
	Broker         string        `mapstructure:"broker"`
	Port           int           `mapstructure:"port"`
	ClientID       string        `mapstructure:"client_id"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	Topic          string        `mapstructure:"topic"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	PublishRetries int           `mapstructure:"publish_retries"`
	PublishDelay   time.Duration `mapstructure:"publish_delay"`
}

type SMTPConfig struct {
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	Sender     string        `mapstructure:"sender"`
	SenderName string        `mapstructure:"sender_name"`
	Recipients []string      `mapstructure:"recipients"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type JournalConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Database string `mapstructure:"database"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", 2*time.Second)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetDefault("sensor.driver", "sim")
	v.SetDefault("sensor.retries", 3)
	v.SetDefault("sensor.retry_delay", 500*time.Millisecond)

	v.SetDefault("alert.threshold", 1000.0)
	v.SetDefault("alert.hysteresis", 100.0)
	v.SetDefault("alert.cooldown", 60*time.Second)
	v.SetDefault("alert.display_threshold", 1000.0)

	v.SetDefault("mqtt.port", 1883)
	v.SetDefault("mqtt.reconnect_delay", 5*time.Second)
	v.SetDefault("mqtt.connect_timeout", 10*time.Second)
	v.SetDefault("mqtt.publish_retries", 3)
	v.SetDefault("mqtt.publish_delay", time.Second)

	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.sender_name", "CO2 Monitor")
	v.SetDefault("smtp.timeout", 15*time.Second)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.database", "/var/lib/co2mon/journal.db")
}

// Load reads configuration from flags, the CO2MON_CONFIG file (or
// co2mon.toml in /etc and the working directory) and CO2MON_* environment
// variables. Flags take precedence over the file, the file over defaults.
func Load() (*Config, error) {
	errFactory := errors.NewFactory()

	v := viper.New()
	setDefaults(v)

	flags := pflag.NewFlagSet("co2mon", pflag.ContinueOnError)
	configFile := flags.String("config", "", "Path to configuration file")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	flags.String("log-level", "", "Log level (debug, info, warning, error)")
	flags.Duration("interval", 0, "Interval between cycles")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v.SetEnvPrefix("CO2MON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if *configFile == "" {
		*configFile = os.Getenv("CO2MON_CONFIG")
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	} else {
		v.SetConfigName("co2mon")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	// Flags override file values
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		v.Set("debug", debug)
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		v.Set("verbose", verbose)
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		v.Set("log_level", level)
	}
	if flags.Changed("interval") {
		interval, _ := flags.GetDuration("interval")
		v.Set("interval", interval)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	errFactory := errors.NewFactory()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if !isValidLogLevel(c.LogLevel) {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	if c.Sensor.Retries < 1 {
		return errFactory.New(errors.ErrInvalidConfig).WithMessage("sensor retries must be at least 1")
	}
	if c.Alert.Threshold <= 0 {
		return errFactory.New(errors.ErrInvalidConfig).WithMessage("alert threshold must be positive")
	}
	if c.Alert.Hysteresis < 0 || c.Alert.Hysteresis >= c.Alert.Threshold {
		return errFactory.New(errors.ErrInvalidConfig).WithMessage("alert hysteresis must be within [0, threshold)")
	}
	if c.Alert.Cooldown <= 0 {
		return errFactory.New(errors.ErrInvalidConfig).WithMessage("alert cooldown must be positive")
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warning", "error":
		return true
	default:
		return false
	}
}
