package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points DATA_DIR at an empty temp dir and clears every key Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, key := range []string{"LISTEN_ADDR", "UI_PASSWORD", "EDGE_SIDE", "EDGE_MARGIN_PX",
		"EVENT_QUEUE_SIZE", "IGNORE_INJECTED", "WEBRTC_ENABLED", "STUN_URLS", "DEBUG"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATA_DIR", dir)
	return dir
}

// TestLoad_Defaults verifies defaults apply when only the password is set.
func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("UI_PASSWORD", "pw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr || cfg.EdgeSide != "none" || cfg.EventQueueSize != defaultEventQueueSize {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IgnoreInjected || !cfg.WebRTCEnabled || len(cfg.STUNURLs) != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoad_RequiresPassword verifies a missing password is rejected.
func TestLoad_RequiresPassword(t *testing.T) {
	isolate(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing UI_PASSWORD error")
	}
}

// TestLoad_YAMLThenEnv verifies env values override the YAML file.
func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := isolate(t)
	yamlBody := `
ui_password: fromfile
edge:
  side: Right
  margin_px: 4
event_queue_size: 32
webrtc:
  enabled: false
  stun_urls: ["stun:a.example:3478"]
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yamlBody), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("EDGE_MARGIN_PX", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UIPassword != "fromfile" || cfg.EdgeSide != "right" || cfg.EdgeMarginPx != 9 {
		t.Fatalf("unexpected merge: %+v", cfg)
	}
	if cfg.EventQueueSize != 32 || cfg.WebRTCEnabled || cfg.STUNURLs[0] != "stun:a.example:3478" {
		t.Fatalf("unexpected merge: %+v", cfg)
	}
}

// TestLoad_EnvFile verifies .env values fill unset keys.
func TestLoad_EnvFile(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("UI_PASSWORD")
	os.Unsetenv("STUN_URLS")
	body := "# comment\nexport UI_PASSWORD=\"dotenv\"\nSTUN_URLS=stun:x:1, stun:y:2\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(body), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("UI_PASSWORD")
		os.Unsetenv("STUN_URLS")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.UIPassword != "dotenv" || len(cfg.STUNURLs) != 2 || cfg.STUNURLs[1] != "stun:y:2" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

// TestLoad_InvalidValues verifies range and format errors.
func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"EDGE_SIDE":        "diagonal",
		"EDGE_MARGIN_PX":   "-1",
		"EVENT_QUEUE_SIZE": "0",
	}
	for key, value := range cases {
		isolate(t)
		t.Setenv("UI_PASSWORD", "pw")
		t.Setenv(key, value)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for %s=%s", key, value)
		}
	}
}

// TestParseEnvLine verifies comments, export prefixes and quotes.
func TestParseEnvLine(t *testing.T) {
	if _, _, ok := parseEnvLine("# nope"); ok {
		t.Fatalf("expected comment to be skipped")
	}
	key, value, ok := parseEnvLine(`export A = 'b=c'`)
	if !ok || key != "A" || value != "b=c" {
		t.Fatalf("unexpected parse: %q %q %v", key, value, ok)
	}
}
