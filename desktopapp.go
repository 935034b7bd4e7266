// Package desktopapp gives Go desktop applications a proper identity
// on the host OS: a stable AppUserModelID and Start menu shortcut on
// Windows, a .desktop launcher on Linux.
//
// An application describes itself with an optional desktop-app.json
// next to its executable (org name, display name, icons); everything
// falls back to defaults derived from the executable name. Install
// creates the launcher entry, SetProcessAppID associates the running
// process with it, and the wineventhook subpackage keeps individual
// windows tagged with the same identity on Windows.
package desktopapp

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ErrUnsupportedPlatform is returned by Install and Uninstall on
// platforms without a supported shortcut mechanism.
var ErrUnsupportedPlatform = errors.New("desktopapp: unsupported platform")

// Options control where shortcuts are created or removed.
type Options struct {
	// Dir overrides the platform default shortcut directory (the user
	// Start menu Programs folder on Windows, the XDG applications
	// directory on Linux).
	Dir string
}

// SetProcessAppID associates the current process with the identity its
// installed shortcut carries. On Windows this sets the process
// AppUserModelID so the taskbar groups windows under the shortcut's
// icon; on Linux identity flows from the executable name matching the
// .desktop entry and there is nothing to register.
func SetProcessAppID() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	app, err := ResolveApp(exePath)
	if err != nil {
		return err
	}

	return setProcessAppID(app)
}

// Install creates the launcher shortcut for the application at exePath
// and returns the paths of the files it created. An existing shortcut
// is overwritten.
func Install(exePath string, opts Options) ([]string, error) {
	app, err := ResolveApp(exePath)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir, err = defaultShortcutDir(app)
		if err != nil {
			return nil, err
		}
	}

	path := filepath.Join(dir, shortcutFileName(app))
	if _, err := os.Stat(path); err == nil {
		log.Printf("desktopapp: overwriting existing file %s", path)
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("remove existing shortcut: %w", err)
		}
	}

	if err := createShortcut(app, path); err != nil {
		return nil, err
	}

	return []string{path}, nil
}

// Uninstall removes the launcher shortcut for the application at
// exePath and returns the paths of the files it deleted. A missing
// shortcut is logged, not an error.
func Uninstall(exePath string, opts Options) ([]string, error) {
	app, err := ResolveApp(exePath)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir, err = defaultShortcutDir(app)
		if err != nil {
			return nil, err
		}
	}

	path := filepath.Join(dir, shortcutFileName(app))

	var removed []string
	switch err := os.Remove(path); {
	case err == nil:
		removed = append(removed, path)
	case errors.Is(err, os.ErrNotExist):
		log.Printf("desktopapp: no such file %s", path)
	default:
		return nil, fmt.Errorf("remove shortcut: %w", err)
	}

	refreshShellCache()

	return removed, nil
}
