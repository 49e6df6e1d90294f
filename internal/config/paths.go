// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global threebell directory.
	GlobalDirName = ".threebell"

	// HomeEnv overrides the global directory location.
	HomeEnv = "THREEBELL_HOME"

	// SessionsDirName is the name of the session history directory.
	SessionsDirName = "sessions"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "3bt.log"
	DesktopFileName  = "3bt.desktop"
)

// GlobalDir returns the path to the global directory (~/.threebell/ or $THREEBELL_HOME).
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalLogFile returns the path to the application log file.
func GlobalLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// GlobalSessionsDir returns the path to the session history directory.
func GlobalSessionsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SessionsDirName), nil
}

// SessionFile returns the path to a session record.
func SessionFile(id string) (string, error) {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, id+".yaml"), nil
}

// EnsureGlobalDir creates the global directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalSessionsDir creates the session history directory if it doesn't exist.
func EnsureGlobalSessionsDir() error {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
