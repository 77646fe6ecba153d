// Package config loads runtime configuration for the hook bridge.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultListenAddr     = "0.0.0.0:8790"
	defaultDataDir        = "./data"
	defaultEdgeSide       = "none"
	defaultEdgeMarginPx   = 0
	defaultEventQueueSize = 256
	defaultIgnoreInjected = true
	defaultWebRTCEnabled  = true
	defaultSTUNURL        = "stun:stun.l.google.com:19302"

	// FileName is the optional YAML file read from the data directory.
	FileName = "hookbridge.yaml"
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	UIPassword     string
	DataDir        string
	EdgeSide       string
	EdgeMarginPx   int
	EventQueueSize int
	IgnoreInjected bool
	WebRTCEnabled  bool
	STUNURLs       []string
	Debug          bool
}

// fileConfig mirrors hookbridge.yaml. Pointer fields distinguish "unset" from zero.
type fileConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	UIPassword string `yaml:"ui_password"`
	Edge       struct {
		Side     string `yaml:"side"`
		MarginPx *int   `yaml:"margin_px"`
	} `yaml:"edge"`
	EventQueueSize *int  `yaml:"event_queue_size"`
	IgnoreInjected *bool `yaml:"ignore_injected"`
	WebRTC         struct {
		Enabled  *bool    `yaml:"enabled"`
		STUNURLs []string `yaml:"stun_urls"`
	} `yaml:"webrtc"`
	Debug *bool `yaml:"debug"`
}

// Load reads configuration from DATA_DIR/hookbridge.yaml, DATA_DIR/.env and environment variables,
// later sources overriding earlier ones.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        envString("DATA_DIR", defaultDataDir),
		EdgeSide:       defaultEdgeSide,
		EdgeMarginPx:   defaultEdgeMarginPx,
		EventQueueSize: defaultEventQueueSize,
		IgnoreInjected: defaultIgnoreInjected,
		WebRTCEnabled:  defaultWebRTCEnabled,
		STUNURLs:       []string{defaultSTUNURL},
	}

	if err := applyFile(&cfg, filepath.Join(cfg.DataDir, FileName)); err != nil {
		return Config{}, err
	}
	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.UIPassword = envString("UI_PASSWORD", cfg.UIPassword)
	cfg.EdgeSide = envString("EDGE_SIDE", cfg.EdgeSide)
	cfg.IgnoreInjected = envBool("IGNORE_INJECTED", cfg.IgnoreInjected)
	cfg.WebRTCEnabled = envBool("WEBRTC_ENABLED", cfg.WebRTCEnabled)
	cfg.Debug = envBool("DEBUG", cfg.Debug)
	if raw := strings.TrimSpace(os.Getenv("STUN_URLS")); raw != "" {
		cfg.STUNURLs = splitList(raw)
	}

	margin, err := envInt("EDGE_MARGIN_PX", cfg.EdgeMarginPx)
	if err != nil {
		return Config{}, err
	}
	cfg.EdgeMarginPx = margin

	queue, err := envInt("EVENT_QUEUE_SIZE", cfg.EventQueueSize)
	if err != nil {
		return Config{}, err
	}
	cfg.EventQueueSize = queue

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks value ranges after all sources are merged.
func (c *Config) validate() error {
	side, err := normalizeEdgeSide(c.EdgeSide)
	if err != nil {
		return err
	}
	c.EdgeSide = side
	if c.EdgeMarginPx < 0 {
		return fmt.Errorf("EDGE_MARGIN_PX must be >= 0")
	}
	if c.EventQueueSize <= 0 {
		return fmt.Errorf("EVENT_QUEUE_SIZE must be > 0")
	}
	if c.UIPassword == "" {
		return errors.New("UI_PASSWORD is required")
	}
	return nil
}

// applyFile merges hookbridge.yaml into cfg. A missing file is not an error.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.UIPassword != "" {
		cfg.UIPassword = fc.UIPassword
	}
	if fc.Edge.Side != "" {
		cfg.EdgeSide = fc.Edge.Side
	}
	if fc.Edge.MarginPx != nil {
		cfg.EdgeMarginPx = *fc.Edge.MarginPx
	}
	if fc.EventQueueSize != nil {
		cfg.EventQueueSize = *fc.EventQueueSize
	}
	if fc.IgnoreInjected != nil {
		cfg.IgnoreInjected = *fc.IgnoreInjected
	}
	if fc.WebRTC.Enabled != nil {
		cfg.WebRTCEnabled = *fc.WebRTC.Enabled
	}
	if len(fc.WebRTC.STUNURLs) > 0 {
		cfg.STUNURLs = fc.WebRTC.STUNURLs
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	return nil
}

// normalizeEdgeSide lowercases and checks the edge side.
func normalizeEdgeSide(value string) (string, error) {
	side := strings.ToLower(strings.TrimSpace(value))
	switch side {
	case "":
		return defaultEdgeSide, nil
	case "none", "left", "right", "top", "bottom":
		return side, nil
	default:
		return "", fmt.Errorf("EDGE_SIDE must be one of none, left, right, top, bottom")
	}
}

// splitList splits a comma separated value, dropping empty items.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the real environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
