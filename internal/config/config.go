// Package config provides configuration types and defaults for voyage.
package config

import (
	"fmt"
	"time"

	"github.com/npratt/voyage/internal/carousel"
)

// Config holds all configuration for voyage.
type Config struct {
	Hero        CarouselConfig    `yaml:"hero" mapstructure:"hero"`
	Homepage    CarouselConfig    `yaml:"homepage" mapstructure:"homepage"`
	Trips       TripsConfig       `yaml:"trips" mapstructure:"trips"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// CarouselConfig holds the timing of one carousel.
type CarouselConfig struct {
	Interval    time.Duration `yaml:"interval" mapstructure:"interval"`         // Autoplay period
	ResumeDelay time.Duration `yaml:"resume_delay" mapstructure:"resume_delay"` // Quiet period after user input before autoplay resumes
	Autoplay    bool          `yaml:"autoplay" mapstructure:"autoplay"`
}

// TripsConfig holds settings for the featured trips widget.
type TripsConfig struct {
	APIURL       string        `yaml:"api_url" mapstructure:"api_url"`
	AssetBaseURL string        `yaml:"asset_base_url" mapstructure:"asset_base_url"` // Base for relative image refs (default: api_url)
	Category     string        `yaml:"category" mapstructure:"category"`             // Optional category filter
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ServerConfig holds settings for the trip catalog backend.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	DBPath          string        `yaml:"db_path" mapstructure:"db_path"`
	SeedFile        string        `yaml:"seed_file" mapstructure:"seed_file"` // YAML seed loaded at startup (empty: built-in catalog on first run)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// PathsConfig holds file paths.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"` // Debug log written while the TUI owns the terminal
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Preset turns the carousel settings into a carousel.Preset with the given name.
func (c CarouselConfig) Preset(name string) carousel.Preset {
	return carousel.Preset{Name: name, Interval: c.Interval, ResumeDelay: c.ResumeDelay}
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Hero: CarouselConfig{
			Interval:    carousel.Hero.Interval,
			ResumeDelay: carousel.Hero.ResumeDelay,
			Autoplay:    true,
		},
		Homepage: CarouselConfig{
			Interval:    carousel.Homepage.Interval,
			ResumeDelay: carousel.Homepage.ResumeDelay,
			Autoplay:    true,
		},
		Trips: TripsConfig{
			APIURL:  "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			DBPath:          ".voyage/trips.db",
			ShutdownTimeout: 10 * time.Second,
		},
		Paths: PathsConfig{
			Log: ".voyage/voyage.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports settings the rest of the program cannot work with.
// Checks run in a fixed order so the first problem reported is stable.
func (c *Config) Validate() error {
	carousels := []struct {
		name string
		cfg  CarouselConfig
	}{
		{"hero", c.Hero},
		{"homepage", c.Homepage},
	}
	for _, cc := range carousels {
		if cc.cfg.Interval <= 0 {
			return fmt.Errorf("%s.interval must be positive, got %s", cc.name, cc.cfg.Interval)
		}
		if cc.cfg.ResumeDelay <= 0 {
			return fmt.Errorf("%s.resume_delay must be positive, got %s", cc.name, cc.cfg.ResumeDelay)
		}
	}
	if c.Trips.APIURL == "" {
		return fmt.Errorf("trips.api_url is required")
	}
	if c.Trips.Timeout <= 0 {
		return fmt.Errorf("trips.timeout must be positive, got %s", c.Trips.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}
