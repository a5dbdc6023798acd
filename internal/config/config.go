package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds everything padlink reads from config.toml.
type Config struct {
	RelayAddr string
	RelayPath string
	Mode      string
	FrameRate int
	LogDir    string
	LogLevel  string
}

const (
	defaultConfigPath = "~/.config/padlink/config.toml"
	defaultLogDir     = "~/.local/share/padlink/logs"
	defaultRelayAddr  = "127.0.0.1:8765"
	defaultRelayPath  = "/"
	defaultMode       = "all"
	defaultFrameRate  = 60
	defaultLogLevel   = "info"

	maxFrameRate = 240
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		RelayAddr: defaultRelayAddr,
		RelayPath: defaultRelayPath,
		Mode:      defaultMode,
		FrameRate: defaultFrameRate,
		LogDir:    mustExpand(defaultLogDir),
		LogLevel:  defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RelayAddr string `toml:"relay_addr"`
		RelayPath string `toml:"relay_path"`
		Mode      string `toml:"mode"`
		FrameRate int    `toml:"frame_rate"`
		LogDir    string `toml:"log_dir"`
		LogLevel  string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.RelayAddr); v != "" {
		cfg.RelayAddr = v
	}
	if v := strings.TrimSpace(raw.RelayPath); v != "" {
		cfg.RelayPath = v
	}
	if v := strings.ToLower(strings.TrimSpace(raw.Mode)); v != "" {
		cfg.Mode = v
	}
	if raw.FrameRate != 0 {
		cfg.FrameRate = clampFrameRate(raw.FrameRate)
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// LogPath returns the path of the overlay's log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/padlink.log")
	}
	return filepath.Join(c.LogDir, "padlink.log")
}

// FrameInterval returns the time between ticks for the configured rate.
func (c Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}
	return time.Second / time.Duration(clampFrameRate(rate))
}

func clampFrameRate(rate int) int {
	switch {
	case rate < 1:
		return 1
	case rate > maxFrameRate:
		return maxFrameRate
	default:
		return rate
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
