package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultEnvFile = ".env"
	envPrefix      = "HOSTSCAN"
)

// Config holds the ambient settings of a scan. None of them change what is
// collected, only where files land and how the run is logged.
type Config struct {
	OutputDir string
	LogLevel  string
	LogColor  bool
}

// Load reads envFile when present, then HOSTSCAN_* variables. An unreadable
// envFile is logged and ignored.
func Load(envFile string) *Config {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring env file", slog.String("path", envFile), slog.Any("error", err))
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_color", true)

	return &Config{
		OutputDir: v.GetString("output_dir"),
		LogLevel:  v.GetString("log_level"),
		LogColor:  v.GetBool("log_color"),
	}
}
