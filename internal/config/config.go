// Package config loads the CLI's client configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds client settings. Anything not set in the file keeps its
// default; flags and environment variables override at the command layer.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	LoginRedirect  string
	CacheDir       string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         "https://api.recipehub.dev",
		RequestTimeout: 30 * time.Second,
		LoginRedirect:  "/auth",
	}
}

// Load reads the config file at path, or ~/.recipehub/config.yaml when
// path is empty. A missing file yields the defaults; a file that exists
// but does not parse is an error, since it is user-authored.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, ".recipehub", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid request_timeout %q: %w", fc.RequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if fc.LoginRedirect != "" {
		cfg.LoginRedirect = fc.LoginRedirect
	}
	if fc.CacheDir != "" {
		cfg.CacheDir = fc.CacheDir
	}

	return cfg, nil
}

// fileConfig is the on-disk shape; durations are written in
// time.ParseDuration syntax ("30s", "1m").
type fileConfig struct {
	APIURL         string `yaml:"api_url"`
	RequestTimeout string `yaml:"request_timeout"`
	LoginRedirect  string `yaml:"login_redirect"`
	CacheDir       string `yaml:"cache_dir"`
}
