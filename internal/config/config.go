package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"batchcal/internal/calendar"

	"gopkg.in/yaml.v3"
)

const (
	defaultBatchStart = "2026-01-04"
	defaultBatchEnd   = "2026-02-20"
	defaultView       = "month"
)

// Config holds the unified application configuration
type Config struct {
	BatchStart  calendar.Date
	BatchEnd    calendar.Date
	DefaultView calendar.ViewMode
	LogDir      string
}

// Settings represents the config file structure
type Settings struct {
	BatchStart  string `yaml:"batch_start,omitempty"`
	BatchEnd    string `yaml:"batch_end,omitempty"`
	DefaultView string `yaml:"default_view,omitempty"`
	LogDir      string `yaml:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags; empty fields are left to lower priorities
type CLIFlags struct {
	BatchStart string
	BatchEnd   string
	View       string
	ConfigPath string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	raw := Settings{
		BatchStart:  defaultBatchStart,
		BatchEnd:    defaultBatchEnd,
		DefaultView: defaultView,
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		if p, err := getConfigPath(); err == nil {
			configPath = p
		}
	}
	if configPath != "" {
		fileSettings, err := loadConfigFile(configPath)
		switch {
		case err == nil:
			raw.merge(*fileSettings)
		case !os.IsNotExist(err) || flags.ConfigPath != "":
			// Only the default location may be absent
			return nil, fmt.Errorf("reading %s: %w", configPath, err)
		}
	}

	// Priority 2: Environment variables override config file
	raw.merge(Settings{
		BatchStart:  os.Getenv("BATCHCAL_BATCH_START"),
		BatchEnd:    os.Getenv("BATCHCAL_BATCH_END"),
		DefaultView: os.Getenv("BATCHCAL_VIEW"),
		LogDir:      os.Getenv("BATCHCAL_LOG_DIR"),
	})

	// Priority 1: CLI flags override everything
	raw.merge(Settings{
		BatchStart:  flags.BatchStart,
		BatchEnd:    flags.BatchEnd,
		DefaultView: flags.View,
	})

	return raw.resolve()
}

// Batch returns the configured batch window. Load has already checked its order.
func (c *Config) Batch() calendar.BatchWindow {
	return calendar.BatchWindow{Start: c.BatchStart, End: c.BatchEnd}
}

func (s *Settings) merge(o Settings) {
	if o.BatchStart != "" {
		s.BatchStart = o.BatchStart
	}
	if o.BatchEnd != "" {
		s.BatchEnd = o.BatchEnd
	}
	if o.DefaultView != "" {
		s.DefaultView = o.DefaultView
	}
	if o.LogDir != "" {
		s.LogDir = expandPath(o.LogDir)
	}
}

func (s Settings) resolve() (*Config, error) {
	start, err := calendar.ParseDate(strings.TrimSpace(s.BatchStart))
	if err != nil {
		return nil, fmt.Errorf("batch_start: %w", err)
	}
	end, err := calendar.ParseDate(strings.TrimSpace(s.BatchEnd))
	if err != nil {
		return nil, fmt.Errorf("batch_end: %w", err)
	}
	if _, err := calendar.NewBatchWindow(start, end); err != nil {
		return nil, err
	}
	view, err := calendar.ParseViewMode(s.DefaultView)
	if err != nil {
		return nil, fmt.Errorf("default_view: %w", err)
	}

	return &Config{
		BatchStart:  start,
		BatchEnd:    end,
		DefaultView: view,
		LogDir:      s.LogDir,
	}, nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "batchcal", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return writeDefaults(configPath)
}

func writeDefaults(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		BatchStart:  defaultBatchStart,
		BatchEnd:    defaultBatchEnd,
		DefaultView: defaultView,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
