//go:build windows

package desktopapp

import (
	"fmt"

	"github.com/zzl/go-win32api/v2/win32"
)

func setProcessAppID(app App) error {
	hr := win32.SetCurrentProcessExplicitAppUserModelID(win32.StrToPwstr(app.AppID()))
	if win32.FAILED(hr) {
		return fmt.Errorf("set process AppUserModelID: %s", win32.HRESULT_ToString(hr))
	}

	return nil
}
