package service

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"time"
)

const (
	// DefaultPoolSize is the number of VM clones used to run scripts
	// concurrently when not specified otherwise.
	DefaultPoolSize = 8
	// DefaultMaxDuration is the default maximum execution time of a script.
	DefaultMaxDuration = 10 * time.Second
)

// Config holds the runtime configuration of the service.
type Config struct {
	Address   string `json:"address,omitempty"`
	CredsPath string `json:"creds_path,omitempty"`
	// name of the compute backend, empty to keep the default one
	Backend  string `json:"backend,omitempty"`
	PoolSize int    `json:"pool_size,omitempty"`
	// in milliseconds, zero for DefaultMaxDuration, negative for no limit
	MaxDurationMs int64 `json:"max_duration_ms,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		PoolSize:      DefaultPoolSize,
		MaxDurationMs: int64(DefaultMaxDuration / time.Millisecond),
	}
}

// LoadConfig reads a JSON configuration file, missing fields keep
// their default values. An empty path returns DefaultConfig.
func LoadConfig(configFile string) (Config, error) {
	cfg := DefaultConfig()
	if configFile == "" {
		return cfg, nil
	}

	if data, err := ioutil.ReadFile(configFile); err != nil {
		return cfg, err
	} else if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error while parsing %s: %v", configFile, err)
	} else if cfg.PoolSize < 0 {
		return cfg, fmt.Errorf("invalid pool size %d", cfg.PoolSize)
	}

	return cfg, nil
}

// MaxDuration returns the maximum execution time of a script, or
// zero if scripts are not time limited.
func (c Config) MaxDuration() time.Duration {
	if c.MaxDurationMs < 0 {
		return 0
	} else if c.MaxDurationMs == 0 {
		return DefaultMaxDuration
	}
	return time.Duration(c.MaxDurationMs) * time.Millisecond
}
