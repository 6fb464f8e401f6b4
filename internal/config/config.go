package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port     string
	MySQLDSN string

	// PartsNumber receives the authorized parts notice. Raw value; the
	// notification use case normalizes it.
	PartsNumber   string
	AdvisorNumber string

	SessionDBPath     string
	WALogLevel        string
	SendTimeout       time.Duration
	SendRatePerSecond float64
	SendAttempts      int

	InboundHandlerTimeout time.Duration
	PendingTTL            time.Duration
	SweepInterval         time.Duration

	MessageLogEnabled bool
	EnsureSchema      bool
}

func Load() (*Config, error) {
	c := &Config{
		Port:          getEnv("PORT", "8080"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		PartsNumber:   os.Getenv("PARTS_WHATSAPP_NUMBER"),
		AdvisorNumber: os.Getenv("ADVISOR_WHATSAPP_NUMBER"),
		SessionDBPath: getEnv("WA_SESSION_DB", "data/whatsapp-session.db"),
		WALogLevel:    getEnv("WA_LOG_LEVEL", "INFO"),
	}
	if c.AdvisorNumber == "" {
		c.AdvisorNumber = c.PartsNumber
	}

	var err error
	if c.SendTimeout, err = getDuration("WA_SEND_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if c.SendRatePerSecond, err = getFloat("WA_SEND_RATE_PER_SECOND", 1); err != nil {
		return nil, err
	}
	if c.SendAttempts, err = getInt("WA_SEND_ATTEMPTS", 3); err != nil {
		return nil, err
	}
	if c.InboundHandlerTimeout, err = getDuration("INBOUND_HANDLER_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if c.PendingTTL, err = getDuration("PENDING_AUTH_TTL", 0); err != nil {
		return nil, err
	}
	if c.SweepInterval, err = getDuration("PENDING_AUTH_SWEEP_INTERVAL", 10*time.Minute); err != nil {
		return nil, err
	}
	if c.MessageLogEnabled, err = getBool("MESSAGE_LOG_ENABLED", false); err != nil {
		return nil, err
	}
	if c.EnsureSchema, err = getBool("DB_ENSURE_SCHEMA", true); err != nil {
		return nil, err
	}

	if c.MySQLDSN == "" {
		return nil, fmt.Errorf("MYSQL_DSN is required")
	}
	if c.SendRatePerSecond <= 0 {
		return nil, fmt.Errorf("WA_SEND_RATE_PER_SECOND must be positive")
	}
	// The sweeper has nothing to do without a TTL.
	if c.PendingTTL <= 0 {
		c.SweepInterval = 0
	}
	return c, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
