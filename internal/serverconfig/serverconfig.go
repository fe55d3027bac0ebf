// Package serverconfig loads restcored's runtime configuration from
// flags, environment variables (RESTCORE_ prefixed) and defaults, in
// that order of precedence, using viper.
package serverconfig

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved configuration for the demo server.
type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// Load builds a viper instance seeded with defaults, reads
// RESTCORE_-prefixed environment variables, and returns the resolved
// Config. Flag values are placed into v by the caller with v.Set before
// Load runs; values set that way take precedence over env.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("RESTCORE")
	v.AutomaticEnv()

	v.SetDefault("host", "localhost")
	v.SetDefault("port", 8080)
	v.SetDefault("read_timeout", 10*time.Second)
	v.SetDefault("write_timeout", 10*time.Second)
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("log_level", "info")

	return Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
	}, nil
}
