// Package profile locates the Google Chrome profile directory for the
// current operating system.
package profile

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrUnsupportedPlatform is returned for operating systems without a
	// known default Chrome profile location.
	ErrUnsupportedPlatform = errors.New("no known Chrome profile location for this platform")
	// ErrNoHome is returned when the environment lacks the variables needed
	// to construct the default profile path.
	ErrNoHome = errors.New("required environment variable not set")
)

// Dir returns the default Chrome profile directory for the given GOOS value,
// resolving environment variables through getenv. It is a pure function of
// its inputs and does not check that the directory exists; callers decide how
// to handle a path that isn't there.
func Dir(goos string, getenv func(string) string) (string, error) {
	switch goos {
	case "darwin":
		home := getenv("HOME")
		if home == "" {
			return "", fmt.Errorf("%w: HOME", ErrNoHome)
		}
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default"), nil
	case "windows":
		localAppData := getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", fmt.Errorf("%w: LOCALAPPDATA", ErrNoHome)
		}
		return filepath.Join(localAppData, "Google", "Chrome", "User Data", "Default"), nil
	case "linux":
		if configHome := getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "google-chrome", "Default"), nil
		}
		home := getenv("HOME")
		if home == "" {
			return "", fmt.Errorf("%w: HOME", ErrNoHome)
		}
		return filepath.Join(home, ".config", "google-chrome", "Default"), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
