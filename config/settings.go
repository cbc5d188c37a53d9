package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings tunes the derived metrics. Loaded from the YAML file named by GROWTH_CONFIG.
type Settings struct {
	MoodWindow      int    `yaml:"mood_window"`
	MoodSeriesLimit int    `yaml:"mood_series_limit"`
	RecentSessions  int    `yaml:"recent_sessions"`
	WheelFallback   int    `yaml:"wheel_fallback"`
	Timezone        string `yaml:"timezone"`
}

func DefaultSettings() Settings {
	return Settings{
		MoodWindow:      30,
		MoodSeriesLimit: 30,
		RecentSessions:  5,
		WheelFallback:   5,
		Timezone:        "Local",
	}
}

// LoadSettings reads path over the defaults. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

func (s Settings) Validate() error {
	if s.MoodWindow < 1 {
		return fmt.Errorf("mood_window must be positive, got %d", s.MoodWindow)
	}
	if s.MoodSeriesLimit < 1 {
		return fmt.Errorf("mood_series_limit must be positive, got %d", s.MoodSeriesLimit)
	}
	if s.RecentSessions < 1 {
		return fmt.Errorf("recent_sessions must be positive, got %d", s.RecentSessions)
	}
	if s.WheelFallback < MinScore || s.WheelFallback > MaxScore {
		return fmt.Errorf("wheel_fallback must be within [%d,%d], got %d", MinScore, MaxScore, s.WheelFallback)
	}
	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the timezone used to bucket sessions into calendar days.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}
