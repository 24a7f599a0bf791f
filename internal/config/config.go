// Package config loads the bot's settings from the environment and its
// optional rules and word files.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting read from the environment
type Config struct {
	DiscordToken      string   `env:"DISCORD_TOKEN,required,notEmpty"`
	ApplicationID     string   `env:"APPLICATION_ID"`
	GuildID           string   `env:"GUILD_ID"`
	HomeChannelID     string   `env:"HOME_CHANNEL_ID"`
	ReportRecipientID string   `env:"REPORT_RECIPIENT_ID"`
	PrivilegedUserIDs []string `env:"PRIVILEGED_USER_IDS" envSeparator:","`

	ReportTime string `env:"REPORT_TIME" envDefault:"23:55"`
	Timezone   string `env:"TIMEZONE" envDefault:"UTC"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string `env:"KEY_PREFIX" envDefault:"croc"`

	WordsFile string `env:"WORDS_FILE" envDefault:"words.txt"`
	RulesFile string `env:"RULES_FILE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	MaxHints           int    `env:"MAX_HINTS" envDefault:"4"`
	AutoHintStep       int    `env:"AUTO_HINT_STEP" envDefault:"6"`
	AttemptsNotifyStep int    `env:"ATTEMPTS_NOTIFY_STEP" envDefault:"5"`
	MatchPolicy        string `env:"MATCH_POLICY" envDefault:"contains"`
	LeakPrefixLength   int    `env:"LEAK_PREFIX_LENGTH" envDefault:"4"`
	LeakMinTokenLength int    `env:"LEAK_MIN_TOKEN_LENGTH" envDefault:"4"`
	MinWordLength      int    `env:"MIN_WORD_LENGTH" envDefault:"3"`

	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT" envDefault:"3h"`
	InactivityPoll    time.Duration `env:"INACTIVITY_POLL" envDefault:"1m"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the parser cannot
func (c *Config) Validate() error {
	var errs []error

	if _, err := time.Parse("15:04", c.ReportTime); err != nil {
		errs = append(errs, fmt.Errorf("REPORT_TIME must be HH:MM, got %q", c.ReportTime))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}

	switch c.MatchPolicy {
	case "contains", "exact":
	default:
		errs = append(errs, fmt.Errorf("MATCH_POLICY must be contains or exact, got %q", c.MatchPolicy))
	}

	positive := map[string]int{
		"MAX_HINTS":             c.MaxHints,
		"AUTO_HINT_STEP":        c.AutoHintStep,
		"ATTEMPTS_NOTIFY_STEP":  c.AttemptsNotifyStep,
		"LEAK_PREFIX_LENGTH":    c.LeakPrefixLength,
		"LEAK_MIN_TOKEN_LENGTH": c.LeakMinTokenLength,
		"MIN_WORD_LENGTH":       c.MinWordLength,
	}
	for name, value := range positive {
		if value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, value))
		}
	}

	if c.InactivityTimeout <= 0 || c.InactivityPoll <= 0 {
		errs = append(errs, errors.New("INACTIVITY_TIMEOUT and INACTIVITY_POLL must be positive"))
	}

	return errors.Join(errs...)
}

// Location returns the configured time zone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
