package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	BotToken    string `env:"BOT_TOKEN"`
	BotUsername string `env:"BOT_USERNAME" envDefault:"ZhivayaVodaa_bot"`

	// Storage
	DBFile   string `env:"DB_FILE" envDefault:"bot.db"`
	MediaDir string `env:"MEDIA_DIR" envDefault:"media"`

	// Repeated presses of the same menu button inside this window are ignored.
	CallbackSpamIntervalMS int64 `env:"CALLBACK_SPAM_INTERVAL_MS" envDefault:"2000"`

	// Maintenance
	MaintenanceSchedule      string `env:"MAINTENANCE_SCHEDULE" envDefault:"0 4 * * *"`
	CallbackLogRetentionDays int    `env:"CALLBACK_LOG_RETENTION_DAYS" envDefault:"0"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) SpamWindow() time.Duration {
	return time.Duration(c.CallbackSpamIntervalMS) * time.Millisecond
}

// CallbackLogRetention returns the retention period for callback_log rows.
// Zero means rows are kept forever.
func (c *Config) CallbackLogRetention() time.Duration {
	return time.Duration(c.CallbackLogRetentionDays) * 24 * time.Hour
}
