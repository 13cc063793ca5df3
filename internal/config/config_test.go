// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	envVars := []string{
		"VOXLAB_SAMPLE_RATE", "VOXLAB_CHANNELS",
		"VOXLAB_MIN_DURATION_MS", "VOXLAB_MAX_DURATION_MS",
		"VOXLAB_REMOTE_URL", "VOXLAB_REMOTE_API_KEY", "VOXLAB_REMOTE_TIMEOUT",
		"VOXLAB_FPS", "VOXLAB_BINS", "VOXLAB_LOG_LEVEL",
	}
	for _, k := range envVars {
		os.Unsetenv(k)
	}

	cfg := Load()

	if cfg.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", cfg.SampleRate)
	}
	if cfg.Channels != 1 {
		t.Errorf("Channels = %d, want 1", cfg.Channels)
	}
	if cfg.MinDurationMS != 0 {
		t.Errorf("MinDurationMS = %v, want 0", cfg.MinDurationMS)
	}
	if cfg.MaxDurationMS != 0 {
		t.Errorf("MaxDurationMS = %v, want 0", cfg.MaxDurationMS)
	}
	if cfg.RemoteURL != "http://localhost:8080" {
		t.Errorf("RemoteURL = %q, want default", cfg.RemoteURL)
	}
	if cfg.RemoteAPIKey != "" {
		t.Errorf("RemoteAPIKey = %q, want empty default", cfg.RemoteAPIKey)
	}
	if cfg.RemoteTimeout != 30*time.Second {
		t.Errorf("RemoteTimeout = %v, want 30s", cfg.RemoteTimeout)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FPS)
	}
	if cfg.Bins != 48 {
		t.Errorf("Bins = %d, want 48", cfg.Bins)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want 'info'", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VOXLAB_SAMPLE_RATE", "16000")
	t.Setenv("VOXLAB_CHANNELS", "2")
	t.Setenv("VOXLAB_MIN_DURATION_MS", "1500")
	t.Setenv("VOXLAB_MAX_DURATION_MS", "60000")
	t.Setenv("VOXLAB_REMOTE_URL", "https://voice.example.com")
	t.Setenv("VOXLAB_REMOTE_API_KEY", "test-key-123")
	t.Setenv("VOXLAB_REMOTE_TIMEOUT", "5")
	t.Setenv("VOXLAB_FPS", "60")
	t.Setenv("VOXLAB_BINS", "32")
	t.Setenv("VOXLAB_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want env override", cfg.SampleRate)
	}
	if cfg.Channels != 2 {
		t.Errorf("Channels = %d, want env override", cfg.Channels)
	}
	if cfg.MinDurationMS != 1500*time.Millisecond {
		t.Errorf("MinDurationMS = %v, want 1.5s", cfg.MinDurationMS)
	}
	if cfg.MaxDurationMS != time.Minute {
		t.Errorf("MaxDurationMS = %v, want 1m", cfg.MaxDurationMS)
	}
	if cfg.RemoteURL != "https://voice.example.com" {
		t.Errorf("RemoteURL = %q, want env override", cfg.RemoteURL)
	}
	if cfg.RemoteAPIKey != "test-key-123" {
		t.Errorf("RemoteAPIKey = %q, want env override", cfg.RemoteAPIKey)
	}
	if cfg.RemoteTimeout != 5*time.Second {
		t.Errorf("RemoteTimeout = %v, want 5s", cfg.RemoteTimeout)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.Bins != 32 {
		t.Errorf("Bins = %d, want 32", cfg.Bins)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want 'debug'", cfg.LogLevel)
	}
}

func TestEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("VOXLAB_SAMPLE_RATE", "not-a-number")
	cfg := Load()
	if cfg.SampleRate != 48000 {
		t.Errorf("invalid int env should fall back: got %d, want 48000", cfg.SampleRate)
	}
}
