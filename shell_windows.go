//go:build windows

package desktopapp

import (
	"os"
	"path/filepath"

	"github.com/chrisjbillington/desktop-app/internal/shortcut"
)

func defaultShortcutDir(app App) (string, error) {
	dir, err := shortcut.StartMenuProgramsDir()
	if err != nil {
		return "", err
	}
	if app.OrgName != "" {
		dir = filepath.Join(dir, app.OrgName)
	}
	return dir, nil
}

func shortcutFileName(app App) string {
	return app.DisplayName + ".lnk"
}

func createShortcut(app App, path string) error {
	workingDir, err := os.UserHomeDir()
	if err != nil {
		workingDir = filepath.Dir(app.ExecutablePath)
	}

	err = shortcut.Create(path, shortcut.Link{
		Target:           app.ExecutablePath,
		WorkingDirectory: workingDir,
		IconPath:         app.WinIcon,
		Description:      app.DisplayName,
		AppID:            app.AppID(),
	})
	if err != nil {
		return err
	}

	shortcut.RefreshShellCache()
	return nil
}

func refreshShellCache() {
	shortcut.RefreshShellCache()
}
