package desktopapp

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExecutableForTest(t *testing.T, dir string, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}

	return path
}

func TestResolveAppDefaultsWithoutConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp")

	app, err := ResolveApp(exePath)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}

	if app.Slug != "coolapp" {
		t.Fatalf("expected slug coolapp, got %q", app.Slug)
	}
	if app.DisplayName != "coolapp" {
		t.Fatalf("expected display name to default to slug, got %q", app.DisplayName)
	}
	if app.OrgName != "" {
		t.Fatalf("expected no org name, got %q", app.OrgName)
	}
	if app.WinIcon != filepath.Join(dir, "coolapp.ico") {
		t.Fatalf("unexpected default winicon %q", app.WinIcon)
	}
	// No .svg next to the executable, so the default falls back to .png.
	if app.Icon != filepath.Join(dir, "coolapp.png") {
		t.Fatalf("unexpected default icon %q", app.Icon)
	}
}

func TestResolveAppStripsExeSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp.exe")

	app, err := ResolveApp(exePath)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}
	if app.Slug != "coolapp" {
		t.Fatalf("expected slug coolapp, got %q", app.Slug)
	}
}

func TestResolveAppPrefersSVGIconWhenPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp")
	svgPath := filepath.Join(dir, "coolapp.svg")
	if err := os.WriteFile(svgPath, []byte("<svg/>"), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}

	app, err := ResolveApp(exePath)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}
	if app.Icon != svgPath {
		t.Fatalf("expected svg icon, got %q", app.Icon)
	}
}

func TestResolveAppReadsConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp")

	config := `{
		"org_name": "Cool Org",
		"apps": {
			"coolapp": {
				"display_name": "Cool App",
				"icon": "icons/coolapp.png",
				"winicon": "icons/coolapp.ico"
			}
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app, err := ResolveApp(exePath)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}

	if app.OrgName != "Cool Org" {
		t.Fatalf("expected org name from config, got %q", app.OrgName)
	}
	if app.DisplayName != "Cool App" {
		t.Fatalf("expected display name from config, got %q", app.DisplayName)
	}
	if app.Icon != filepath.Join(dir, "icons", "coolapp.png") {
		t.Fatalf("expected icon relative to executable dir, got %q", app.Icon)
	}
	if app.WinIcon != filepath.Join(dir, "icons", "coolapp.ico") {
		t.Fatalf("expected winicon relative to executable dir, got %q", app.WinIcon)
	}
}

func TestResolveAppIgnoresOtherAppEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp")

	config := `{"apps": {"otherapp": {"display_name": "Other"}}}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	app, err := ResolveApp(exePath)
	if err != nil {
		t.Fatalf("resolve app: %v", err)
	}
	if app.DisplayName != "coolapp" {
		t.Fatalf("expected defaults for unlisted app, got %q", app.DisplayName)
	}
}

func TestResolveAppMissingExecutable(t *testing.T) {
	t.Parallel()

	if _, err := ResolveApp(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected an error for a missing executable")
	}
}

func TestResolveAppRejectsMalformedConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exePath := writeExecutableForTest(t, dir, "coolapp")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := ResolveApp(exePath); err == nil {
		t.Fatalf("expected an error for malformed config")
	}
}
