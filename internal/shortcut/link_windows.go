//go:build windows

package shortcut

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"unsafe"

	"github.com/zzl/go-win32api/v2/win32"
)

var (
	// CLSID_ShellLink
	clsidShellLink = syscall.GUID{
		Data1: 0x00021401,
		Data2: 0x0000,
		Data3: 0x0000,
		Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
	}

	// PKEY_AppUserModel_ID from propkey.h:
	// {9F4C2855-9F79-4B39-A8D0-E1D42DE1D5F3}, 5
	pkeyAppUserModelID = win32.PROPERTYKEY{
		Fmtid: syscall.GUID{
			Data1: 0x9F4C2855,
			Data2: 0x9F79,
			Data3: 0x4B39,
			Data4: [8]byte{0xA8, 0xD0, 0xE1, 0xD4, 0x2D, 0xE1, 0xD5, 0xF3},
		},
		Pid: 5,
	}

	// FOLDERID_Programs (the per-user Start menu Programs folder)
	folderidPrograms = syscall.GUID{
		Data1: 0xA77F5D77,
		Data2: 0x2E2B,
		Data3: 0x44C3,
		Data4: [8]byte{0xA6, 0xA2, 0xAB, 0xA6, 0x01, 0x05, 0x4A, 0x51},
	}
)

// Link describes a Windows .lnk shortcut.
type Link struct {
	Target           string
	Args             []string
	WorkingDirectory string
	IconPath         string
	Description      string
	AppID            string
}

// Create writes the shortcut to path. When AppID is set it is stamped
// on the shortcut's property store, which is what ties the Start menu
// entry, the taskbar button and the running app into one identity.
func Create(path string, link Link) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create shortcut dir: %w", err)
	}

	hr := win32.CoInitializeEx(nil, win32.COINIT_APARTMENTTHREADED)
	if !win32.FAILED(hr) {
		defer win32.CoUninitialize()
	}

	var shellLink *win32.IShellLinkW
	hr = win32.CoCreateInstance(
		&clsidShellLink,
		nil,
		win32.CLSCTX_INPROC_SERVER,
		&win32.IID_IShellLinkW,
		unsafe.Pointer(&shellLink),
	)
	if win32.FAILED(hr) {
		return fmt.Errorf("create IShellLink: %s", win32.HRESULT_ToString(hr))
	}
	if shellLink == nil {
		return errors.New("create IShellLink: returned nil")
	}
	defer shellLink.Release()

	shellLink.SetPath(win32.StrToPwstr(link.Target))
	if len(link.Args) > 0 {
		shellLink.SetArguments(win32.StrToPwstr(commandLine(link.Args)))
	}
	if link.WorkingDirectory != "" {
		shellLink.SetWorkingDirectory(win32.StrToPwstr(link.WorkingDirectory))
	}
	if link.IconPath != "" {
		shellLink.SetIconLocation(win32.StrToPwstr(link.IconPath), 0)
	}
	if link.Description != "" {
		shellLink.SetDescription(win32.StrToPwstr(link.Description))
	}

	if link.AppID != "" {
		if err := stampAppID(shellLink, link.AppID); err != nil {
			return err
		}
	}

	var persist *win32.IPersistFile
	hr = shellLink.QueryInterface(&win32.IID_IPersistFile, unsafe.Pointer(&persist))
	if win32.FAILED(hr) {
		return fmt.Errorf("query IPersistFile: %s", win32.HRESULT_ToString(hr))
	}
	if persist == nil {
		return errors.New("query IPersistFile: returned nil")
	}
	defer persist.Release()

	hr = persist.Save(win32.StrToPwstr(path), win32.TRUE)
	if win32.FAILED(hr) {
		return fmt.Errorf("save shortcut: %s", win32.HRESULT_ToString(hr))
	}

	return nil
}

func stampAppID(shellLink *win32.IShellLinkW, appID string) error {
	var store *win32.IPropertyStore
	hr := shellLink.QueryInterface(&win32.IID_IPropertyStore, unsafe.Pointer(&store))
	if win32.FAILED(hr) {
		return fmt.Errorf("query shortcut property store: %s", win32.HRESULT_ToString(hr))
	}
	if store == nil {
		return errors.New("query shortcut property store: returned nil")
	}
	defer store.Release()

	var pv win32.PROPVARIANT
	hr = win32.InitPropVariantFromString(win32.StrToPwstr(appID), &pv)
	if win32.FAILED(hr) {
		return fmt.Errorf("init AppUserModelID value: %s", win32.HRESULT_ToString(hr))
	}
	defer win32.PropVariantClear(&pv)

	hr = store.SetValue(&pkeyAppUserModelID, &pv)
	if win32.FAILED(hr) {
		return fmt.Errorf("set shortcut AppUserModelID: %s", win32.HRESULT_ToString(hr))
	}

	hr = store.Commit()
	if win32.FAILED(hr) {
		return fmt.Errorf("commit shortcut properties: %s", win32.HRESULT_ToString(hr))
	}

	return nil
}

// StartMenuProgramsDir returns the per-user Start menu Programs folder.
func StartMenuProgramsDir() (string, error) {
	var p win32.PWSTR
	hr := win32.SHGetKnownFolderPath(&folderidPrograms, 0, 0, &p)
	if win32.FAILED(hr) {
		return "", fmt.Errorf("resolve Start menu folder: %s", win32.HRESULT_ToString(hr))
	}
	defer win32.CoTaskMemFree(unsafe.Pointer(p))

	return pwstrToString(p), nil
}

// RefreshShellCache nudges the shell to re-read shortcut associations
// so new icons show up without a logoff.
func RefreshShellCache() {
	win32.SHChangeNotify(win32.SHCNE_ASSOCCHANGED, win32.SHCNF_IDLIST|win32.SHCNF_FLUSH, nil, nil)
}

func pwstrToString(p win32.PWSTR) string {
	if p == nil {
		return ""
	}

	length := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Pointer(uintptr(ptr) + 2) {
		length++
	}

	return syscall.UTF16ToString(unsafe.Slice((*uint16)(unsafe.Pointer(p)), length))
}
