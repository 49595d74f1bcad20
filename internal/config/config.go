package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultAPIURL is the local development endpoint used when
	// TASKDECK_API_URL is not set
	DefaultAPIURL = "http://localhost:6000"
)

// Config holds the runtime configuration
type Config struct {
	// APIURL is the base address of the remote task API
	APIURL string

	// DataDir is where the session store keeps its entries
	DataDir string
}

// FromEnv loads configuration from environment variables, falling back to
// defaults when variables are not set
func FromEnv() Config {
	cfg := Config{
		APIURL: DefaultAPIURL,
	}

	if url := os.Getenv("TASKDECK_API_URL"); url != "" {
		cfg.APIURL = url
	}

	if dir := os.Getenv("TASKDECK_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	} else {
		cfg.DataDir = defaultDataDir()
	}

	return cfg
}

// defaultDataDir returns ~/.taskdeck, or a relative .taskdeck if the home
// directory cannot be resolved
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskdeck"
	}
	return filepath.Join(home, ".taskdeck")
}
