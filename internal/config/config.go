// SPDX-License-Identifier: EPL-2.0

// Package config loads runtime configuration from VOXLAB_* environment
// variables with documented defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration, loaded from environment
// variables.
type Config struct {
	// Capture
	SampleRate    int           // capture rate in Hz
	Channels      int           // capture channel count
	MinDurationMS time.Duration // reject takes shorter than this; 0 disables
	MaxDurationMS time.Duration // auto-stop takes at this length; 0 disables

	// Remote voice service
	RemoteURL     string
	RemoteAPIKey  string
	RemoteTimeout time.Duration

	// Rendering
	FPS  int // frame loop rate
	Bins int // spectral bin count

	// Logging
	LogLevel string // logrus level name
}

// Load reads configuration from environment variables with sane
// defaults.
func Load() Config {
	return Config{
		SampleRate:    envInt("VOXLAB_SAMPLE_RATE", 48000),
		Channels:      envInt("VOXLAB_CHANNELS", 1),
		MinDurationMS: time.Duration(envInt("VOXLAB_MIN_DURATION_MS", 0)) * time.Millisecond,
		MaxDurationMS: time.Duration(envInt("VOXLAB_MAX_DURATION_MS", 0)) * time.Millisecond,

		RemoteURL:     envStr("VOXLAB_REMOTE_URL", "http://localhost:8080"),
		RemoteAPIKey:  envStr("VOXLAB_REMOTE_API_KEY", ""),
		RemoteTimeout: time.Duration(envInt("VOXLAB_REMOTE_TIMEOUT", 30)) * time.Second,

		FPS:  envInt("VOXLAB_FPS", 30),
		Bins: envInt("VOXLAB_BINS", 48),

		LogLevel: envStr("VOXLAB_LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
