package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DesktopEntry describes a Linux .desktop launcher.
type DesktopEntry struct {
	Name string
	Exec string
	Icon string
}

// Render produces the .desktop file contents.
func (e DesktopEntry) Render() string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Exec=%s\n", desktopEscape(e.Exec))
	fmt.Fprintf(&b, "Icon=%s\n", desktopEscape(e.Icon))
	b.WriteString("Type=Application\n")

	return b.String()
}

var desktopEscaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\s`,
	"\n", `\n`,
	"\t", `\t`,
)

// desktopEscape escapes a filepath for use in a .desktop file value.
func desktopEscape(s string) string {
	return desktopEscaper.Replace(s)
}

// WriteDesktopFile writes the entry to path, creating parent
// directories as needed.
func WriteDesktopFile(path string, entry DesktopEntry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(entry.Render()), 0o644); err != nil {
		return fmt.Errorf("write desktop file: %w", err)
	}

	return nil
}

// UserApplicationsDir returns where user-scoped .desktop files live,
// honouring XDG_DATA_HOME.
func UserApplicationsDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "applications"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}

	return filepath.Join(home, ".local", "share", "applications"), nil
}
