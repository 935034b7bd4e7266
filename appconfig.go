package desktopapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is looked up in the directory of the application
// executable.
const ConfigFileName = "desktop-app.json"

type fileConfig struct {
	OrgName string              `json:"org_name"`
	Apps    map[string]appEntry `json:"apps"`
}

type appEntry struct {
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	WinIcon     string `json:"winicon"`
}

// App describes one application to the shell.
type App struct {
	// ExecutablePath is the absolute path of the application binary.
	ExecutablePath string

	// Slug is the executable base name without any .exe suffix. It
	// keys the app's entry in desktop-app.json and doubles as its
	// identifier on Linux.
	Slug string

	// OrgName optionally namespaces the app, appearing in the
	// AppUserModelID and as a Start menu subfolder.
	OrgName string

	// DisplayName is the human-readable shortcut name.
	DisplayName string

	// Icon is the icon path used in .desktop entries.
	Icon string

	// WinIcon is the .ico path used in Windows shortcuts.
	WinIcon string
}

// ResolveApp loads the description of the application at exePath,
// merging desktop-app.json from the executable's directory over
// defaults derived from the executable name.
func ResolveApp(exePath string) (App, error) {
	absPath, err := filepath.Abs(exePath)
	if err != nil {
		return App{}, fmt.Errorf("resolve executable path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	if _, err := os.Stat(absPath); err != nil {
		return App{}, fmt.Errorf("stat executable: %w", err)
	}

	dir := filepath.Dir(absPath)
	slug := strings.TrimSuffix(filepath.Base(absPath), ".exe")

	cfg, err := readConfig(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return App{}, err
	}

	entry := cfg.Apps[slug]

	app := App{
		ExecutablePath: absPath,
		Slug:           slug,
		OrgName:        cfg.OrgName,
		DisplayName:    entry.DisplayName,
	}
	if app.DisplayName == "" {
		app.DisplayName = slug
	}

	if entry.WinIcon != "" {
		app.WinIcon = filepath.Join(dir, entry.WinIcon)
	} else {
		app.WinIcon = filepath.Join(dir, slug+".ico")
	}

	if entry.Icon != "" {
		app.Icon = filepath.Join(dir, entry.Icon)
	} else {
		app.Icon = filepath.Join(dir, slug+".svg")
		if _, err := os.Stat(app.Icon); err != nil {
			app.Icon = filepath.Join(dir, slug+".png")
		}
	}

	return app, nil
}

func readConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var cfg fileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	return cfg, nil
}
