package config

import (
	"github.com/threebell/threebell/internal/models"
)

// LoadSettings loads the global settings from ~/.threebell/settings.yaml.
// If the file doesn't exist, returns default settings. Loaded values are normalized.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads and normalizes settings from a specific file.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	s.Normalize()
	return s, nil
}

// SaveSettings saves the global settings to ~/.threebell/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
