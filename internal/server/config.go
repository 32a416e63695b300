package server

import (
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel = "IMAGE_GRID_LOG_LEVEL"
	EnvFont     = "IMAGE_GRID_FONT"
)

// Config holds process-wide server settings.
type Config struct {
	// Debug enables per-request logging to stderr.
	Debug bool

	// DefaultFont is the font file used when a tool call names none. Empty
	// selects the embedded font.
	DefaultFont string

	// Version is reported in the initialize response. Empty reports "dev".
	Version string
}

// ConfigFromEnv builds a Config from IMAGE_GRID_LOG_LEVEL ("debug" enables
// debug logging) and IMAGE_GRID_FONT.
func ConfigFromEnv() Config {
	return Config{
		Debug:       strings.EqualFold(os.Getenv(EnvLogLevel), "debug"),
		DefaultFont: os.Getenv(EnvFont),
	}
}
