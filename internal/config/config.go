package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/2112121/accounting-book-sub002/internal/consts"
)

const appName = "calcpad"

// Environment variables overriding the file values.
const (
	EnvLogLevel = "CALCPAD_LOG_LEVEL"
	EnvLogPath  = "CALCPAD_LOG_PATH"
)

// Config represents application configuration
type Config struct {
	LogLevel      string `json:"log_level" yaml:"log_level"` // debug, info, warn, error, none
	LogPath       string `json:"log_path,omitempty" yaml:"log_path,omitempty"`
	SettleDelayMS int    `json:"settle_delay_ms" yaml:"settle_delay_ms"`
	ShakeMS       int    `json:"shake_ms" yaml:"shake_ms"`
	CopyConfirmMS int    `json:"copy_confirm_ms" yaml:"copy_confirm_ms"`
	// CopyOnly hides the use-result action in the keypad.
	CopyOnly bool `json:"copy_only" yaml:"copy_only"`
}

func defaultConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, appName)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", appName)
}

// DefaultLogPath is where the log goes when logging is enabled without a path.
func DefaultLogPath() string {
	if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
		return filepath.Join(stateHome, appName, appName+".log")
	}
	if runtime.GOOS == "windows" {
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, appName, appName+".log")
		}
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", appName, appName+".log")
}

// DefaultConfig returns default configuration. Logging is off by default
// because the keypad owns the terminal.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "none",
		SettleDelayMS: int(consts.SettleDelay / time.Millisecond),
		ShakeMS:       int(consts.ShakeDuration / time.Millisecond),
		CopyConfirmMS: int(consts.CopyConfirmDuration / time.Millisecond),
	}
}

// Load reads the configuration file at path over the defaults. JSON is the
// default format; .yaml and .yml files are decoded as YAML. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv lets CALCPAD_LOG_LEVEL and CALCPAD_LOG_PATH override the file.
func (c *Config) ApplyEnv() {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.LogLevel = level
	}
	if path := strings.TrimSpace(os.Getenv(EnvLogPath)); path != "" {
		c.LogPath = path
	}
}

// Validate rejects negative durations.
func (c *Config) Validate() error {
	for name, v := range map[string]int{
		"settle_delay_ms": c.SettleDelayMS,
		"shake_ms":        c.ShakeMS,
		"copy_confirm_ms": c.CopyConfirmMS,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	return nil
}

// ResolvedLogPath returns LogPath, falling back to DefaultLogPath when a
// level is set but no path.
func (c *Config) ResolvedLogPath() string {
	if c.LogPath != "" {
		return c.LogPath
	}
	if strings.EqualFold(strings.TrimSpace(c.LogLevel), "none") || c.LogLevel == "" {
		return ""
	}
	return DefaultLogPath()
}

func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

func (c *Config) ShakeDuration() time.Duration {
	return time.Duration(c.ShakeMS) * time.Millisecond
}

func (c *Config) CopyConfirmDuration() time.Duration {
	return time.Duration(c.CopyConfirmMS) * time.Millisecond
}

// Save writes the configuration as JSON, or YAML for .yaml/.yml paths.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
