//go:build !windows && !linux

package desktopapp

func defaultShortcutDir(App) (string, error) {
	return "", ErrUnsupportedPlatform
}

func shortcutFileName(app App) string {
	return app.DisplayName
}

func createShortcut(App, string) error {
	return ErrUnsupportedPlatform
}

func refreshShellCache() {}
