package config

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Budgea     BudgeaConfig
	Database   DatabaseConfig
	Encryption EncryptionConfig
	Scheduler  SchedulerConfig
	Telemetry  TelemetryConfig
	Log        LogConfig
}

type BudgeaConfig struct {
	BaseURL        string        `env:"BUDGEA_BASE_URL" env-default:"https://demo.biapi.pro/2.0"`
	Token          string        `env:"BUDGEA_TOKEN"`
	// ClientID and ClientSecret are sent when exchanging a temporary code.
	ClientID       string        `env:"BUDGEA_CLIENT_ID"`
	ClientSecret   string        `env:"BUDGEA_CLIENT_SECRET"`
	Timeout        time.Duration `env:"BUDGEA_TIMEOUT" env-default:"180s"`
	MaxConcurrency int64         `env:"BUDGEA_MAX_CONCURRENCY" env-default:"8"`
	// SyncStartDate bounds the first transaction import of a newly linked user.
	SyncStartDate  string        `env:"BUDGEA_SYNC_START_DATE" env-default:"2023-01-01"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"budgea"`
	Password string `env:"DB_PASSWORD"`
	DBName   string `env:"DB_NAME" env-default:"budgea"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

type EncryptionConfig struct {
	Key string `env:"ENCRYPTION_KEY"`
}

type SchedulerConfig struct {
	Enabled       bool          `env:"SCHEDULER_ENABLED" env-default:"true"`
	ScheduleTimes []string      `env:"SCHEDULER_TIMES" env-default:"05:00,10:00,14:00,20:00" env-separator:","`
	WorkerCount   int           `env:"SCHEDULER_WORKERS" env-default:"5"`
	JobDelay      time.Duration `env:"SCHEDULER_JOB_DELAY" env-default:"1s"`
	QueueSize     int           `env:"SCHEDULER_QUEUE_SIZE" env-default:"100"`
	RunOnStartup  bool          `env:"SCHEDULER_RUN_ON_STARTUP" env-default:"false"`
}

type TelemetryConfig struct {
	Enabled      bool   `env:"OTEL_ENABLED" env-default:"false"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" env-default:"budgea-mirror"`
	Environment  string `env:"ENVIRONMENT" env-default:"development"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4317"`
	MetricsPort  string `env:"METRICS_PORT" env-default:"9464"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Budgea.BaseURL == "" {
		return fmt.Errorf("BUDGEA_BASE_URL is required")
	}
	if c.Budgea.MaxConcurrency <= 0 {
		return fmt.Errorf("BUDGEA_MAX_CONCURRENCY must be positive")
	}
	if _, err := c.Budgea.SyncStart(); err != nil {
		return err
	}
	if (c.Budgea.ClientID == "") != (c.Budgea.ClientSecret == "") {
		return fmt.Errorf("BUDGEA_CLIENT_ID and BUDGEA_CLIENT_SECRET must be set together")
	}

	if c.Encryption.Key != "" && len(c.Encryption.Key) != 32 {
		return fmt.Errorf("ENCRYPTION_KEY must be exactly 32 bytes for AES-256")
	}

	if c.Scheduler.WorkerCount <= 0 {
		return fmt.Errorf("SCHEDULER_WORKERS must be positive")
	}
	if c.Scheduler.QueueSize <= 0 {
		return fmt.Errorf("SCHEDULER_QUEUE_SIZE must be positive")
	}
	for _, t := range c.Scheduler.ScheduleTimes {
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("invalid SCHEDULER_TIMES entry %q: %w", t, err)
		}
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format)
	}
	return nil
}

// RequireStorage checks the settings needed by commands that touch the mirror database.
func (c *Config) RequireStorage() error {
	if c.Encryption.Key == "" {
		return fmt.Errorf("ENCRYPTION_KEY is required")
	}
	return nil
}

// SyncStart parses SyncStartDate.
func (c *BudgeaConfig) SyncStart() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.SyncStartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid BUDGEA_SYNC_START_DATE: %w", err)
	}
	return t, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL returns the database address as a postgres:// URL.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + strconv.Itoa(c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
