// Package config provides configuration management for the graphadmin CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	HistoryFile  string `koanf:"history_file"`
	LogLevel     string `koanf:"log_level"`
}

// Default configuration values.
const (
	DefaultOutput      = "table"
	DefaultHistoryFile = ".graphadmin/history"
	DefaultLogLevel    = "warn"
)
