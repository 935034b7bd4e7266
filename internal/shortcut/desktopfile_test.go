package shortcut

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderDesktopEntry(t *testing.T) {
	t.Parallel()

	entry := DesktopEntry{
		Name: "Cool App",
		Exec: "/opt/cool app/coolapp",
		Icon: "/opt/cool app/coolapp.svg",
	}

	want := "[Desktop Entry]\n" +
		"Name=Cool App\n" +
		`Exec=/opt/cool\sapp/coolapp` + "\n" +
		`Icon=/opt/cool\sapp/coolapp.svg` + "\n" +
		"Type=Application\n"

	if got := entry.Render(); got != want {
		t.Fatalf("rendered entry mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestDesktopEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with space", `with\sspace`},
		{"tab\there", `tab\there`},
		{"line\nbreak", `line\nbreak`},
		{`back\slash`, `back\\slash`},
		{`mix \ and space`, `mix\s\\\sand\sspace`},
	}

	for _, tc := range cases {
		if got := desktopEscape(tc.in); got != tc.want {
			t.Fatalf("desktopEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteDesktopFileCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "applications", "coolapp.desktop")
	entry := DesktopEntry{Name: "Cool App", Exec: "/usr/bin/coolapp"}

	if err := WriteDesktopFile(path, entry); err != nil {
		t.Fatalf("write desktop file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back desktop file: %v", err)
	}
	if string(data) != entry.Render() {
		t.Fatalf("file contents do not match rendered entry")
	}
}

func TestUserApplicationsDirHonoursXDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	dir, err := UserApplicationsDir()
	if err != nil {
		t.Fatalf("user applications dir: %v", err)
	}
	if dir != filepath.Join(dataHome, "applications") {
		t.Fatalf("expected XDG_DATA_HOME to win, got %s", dir)
	}
}

func TestUserApplicationsDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	dir, err := UserApplicationsDir()
	if err != nil {
		t.Fatalf("user applications dir: %v", err)
	}
	if dir != filepath.Join(home, ".local", "share", "applications") {
		t.Fatalf("unexpected fallback dir %s", dir)
	}
}
