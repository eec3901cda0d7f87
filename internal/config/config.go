// Package config loads environment configuration for SwipeDeck.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr        = "0.0.0.0:8788"
	defaultDataDir           = "./data"
	defaultFrameRate         = 60
	defaultScreenW           = 1080.0
	defaultScreenH           = 1920.0
	defaultVelocityThreshold = 200.0
	defaultThresholdPct      = 0.5
	defaultRTCEnabled        = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr        string
	UIPassword        string
	DataDir           string
	TuningPath        string
	FrameRate         int
	DefaultScreenW    float64
	DefaultScreenH    float64
	VelocityThreshold float64
	SwipeThresholdPct float64
	RTCEnabled        bool
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:        defaultListenAddr,
		DataDir:           defaultDataDir,
		TuningPath:        filepath.Join(defaultDataDir, "tuning.yaml"),
		FrameRate:         defaultFrameRate,
		DefaultScreenW:    defaultScreenW,
		DefaultScreenH:    defaultScreenH,
		VelocityThreshold: defaultVelocityThreshold,
		SwipeThresholdPct: defaultThresholdPct,
		RTCEnabled:        defaultRTCEnabled,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.TuningPath = envString("TUNING_PATH", filepath.Join(cfg.DataDir, "tuning.yaml"))
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))
	cfg.RTCEnabled = envBool("RTC_ENABLED", cfg.RTCEnabled)

	frameRate, err := envInt("FRAME_RATE", cfg.FrameRate)
	if err != nil {
		return Config{}, err
	}
	if frameRate <= 0 || frameRate > 240 {
		return Config{}, fmt.Errorf("FRAME_RATE must be 1-240")
	}
	cfg.FrameRate = frameRate

	screenW, err := envFloat("DEFAULT_SCREEN_W", cfg.DefaultScreenW)
	if err != nil {
		return Config{}, err
	}
	if screenW <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_SCREEN_W must be > 0")
	}
	cfg.DefaultScreenW = screenW

	screenH, err := envFloat("DEFAULT_SCREEN_H", cfg.DefaultScreenH)
	if err != nil {
		return Config{}, err
	}
	if screenH <= 0 {
		return Config{}, fmt.Errorf("DEFAULT_SCREEN_H must be > 0")
	}
	cfg.DefaultScreenH = screenH

	velocityThreshold, err := envFloat("VELOCITY_THRESHOLD", cfg.VelocityThreshold)
	if err != nil {
		return Config{}, err
	}
	if velocityThreshold <= 0 {
		return Config{}, fmt.Errorf("VELOCITY_THRESHOLD must be > 0")
	}
	cfg.VelocityThreshold = velocityThreshold

	thresholdPct, err := envFloat("SWIPE_THRESHOLD_PCT", cfg.SwipeThresholdPct)
	if err != nil {
		return Config{}, err
	}
	if thresholdPct <= 0 || thresholdPct > 1 {
		return Config{}, fmt.Errorf("SWIPE_THRESHOLD_PCT must be within (0..1]")
	}
	cfg.SwipeThresholdPct = thresholdPct

	if cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
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

// envFloat returns a float env override when present, otherwise a default.
func envFloat(key string, def float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
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

// loadEnvFile loads KEY=VALUE pairs from a .env file.
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
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
