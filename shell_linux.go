//go:build linux

package desktopapp

import (
	"github.com/chrisjbillington/desktop-app/internal/shortcut"
)

func defaultShortcutDir(App) (string, error) {
	return shortcut.UserApplicationsDir()
}

func shortcutFileName(app App) string {
	return app.AppID() + ".desktop"
}

func createShortcut(app App, path string) error {
	return shortcut.WriteDesktopFile(path, shortcut.DesktopEntry{
		Name: app.DisplayName,
		Exec: app.ExecutablePath,
		Icon: app.Icon,
	})
}

func refreshShellCache() {}
