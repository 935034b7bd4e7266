//go:build !windows

package desktopapp

// GUI toolkits derive WM_CLASS and the Wayland app_id from the
// executable name, which Install keeps aligned with the .desktop entry,
// so there is no per-process registration to perform.
func setProcessAppID(App) error {
	return nil
}
