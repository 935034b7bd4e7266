//go:build windows

package wineventhook

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"github.com/zzl/go-win32api/v2/win32"
)

// Supported reports whether the window-event hook facility exists on
// this platform.
const Supported = true

// PKEY_AppUserModel_ID from propkey.h:
// {9F4C2855-9F79-4B39-A8D0-E1D42DE1D5F3}, 5
var pkeyAppUserModelID = win32.PROPERTYKEY{
	Fmtid: syscall.GUID{
		Data1: 0x9F4C2855,
		Data2: 0x9F79,
		Data3: 0x4B39,
		Data4: [8]byte{0xA8, 0xD0, 0xE1, 0xD4, 0x2D, 0xE1, 0xD5, 0xF3},
	},
	Pid: 5,
}

var winEventCallback = win32.WINEVENTPROC(syscall.NewCallback(winEventProc))

func winEventProc(
	hook win32.HWINEVENTHOOK,
	event uint32,
	hwnd win32.HWND,
	idObject int32,
	idChild int32,
	idEventThread uint32,
	eventTimeMS uint32,
) uintptr {
	handleEvent(comWriter{}, event, uintptr(hwnd), idObject)
	return 0
}

// Session owns the pair of installed hooks, one for window creation
// and one for destruction, and can remove them again.
type Session struct {
	mu          sync.Mutex
	createHook  win32.HWINEVENTHOOK
	destroyHook win32.HWINEVENTHOOK
}

// Install stores appID as the identifier for windows created from now
// on and registers the observer for window create and destroy events
// in the current process. Delivery is in-context: the callback runs
// synchronously on whichever thread owns the affected window, so it
// does nothing blocking.
//
// Install may be called again to change the identifier; windows
// created afterwards receive the new value exclusively. Each call
// installs a fresh pair of hooks, so close the session from any
// earlier call first.
func Install(appID string) (*Session, error) {
	currentAppID.set(appID)

	hmod, _ := win32.GetModuleHandle(nil)
	pid := win32.GetCurrentProcessId()

	createHook := win32.SetWinEventHook(
		eventObjectCreate,
		eventObjectCreate,
		hmod,
		winEventCallback,
		pid,
		0,
		win32.WINEVENT_INCONTEXT,
	)
	if createHook == 0 {
		return nil, errors.New("install window create hook")
	}

	destroyHook := win32.SetWinEventHook(
		eventObjectDestroy,
		eventObjectDestroy,
		hmod,
		winEventCallback,
		pid,
		0,
		win32.WINEVENT_INCONTEXT,
	)
	if destroyHook == 0 {
		win32.UnhookWinEvent(createHook)
		return nil, errors.New("install window destroy hook")
	}

	return &Session{createHook: createHook, destroyHook: destroyHook}, nil
}

// Close uninstalls both hooks. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var failed bool
	if s.createHook != 0 {
		if win32.UnhookWinEvent(s.createHook) == 0 {
			failed = true
		}
		s.createHook = 0
	}
	if s.destroyHook != 0 {
		if win32.UnhookWinEvent(s.destroyHook) == 0 {
			failed = true
		}
		s.destroyHook = 0
	}

	if failed {
		return errors.New("unhook window event hook")
	}
	return nil
}

// comWriter is the real property writer, backed by the shell's
// per-window property store.
type comWriter struct{}

func (comWriter) apply(hwnd uintptr, appID string) error {
	store, err := windowPropertyStore(hwnd)
	if err != nil {
		return err
	}
	defer store.Release()

	var pv win32.PROPVARIANT
	hr := win32.InitPropVariantFromString(win32.StrToPwstr(appID), &pv)
	if win32.FAILED(hr) {
		return fmt.Errorf("init AppUserModelID value: %s", win32.HRESULT_ToString(hr))
	}
	defer win32.PropVariantClear(&pv)

	hr = store.SetValue(&pkeyAppUserModelID, &pv)
	if win32.FAILED(hr) {
		return fmt.Errorf("set AppUserModelID: %s", win32.HRESULT_ToString(hr))
	}

	return nil
}

func (comWriter) clear(hwnd uintptr) error {
	store, err := windowPropertyStore(hwnd)
	if err != nil {
		return err
	}
	defer store.Release()

	// A zero PROPVARIANT is VT_EMPTY, which removes the property.
	var pv win32.PROPVARIANT
	hr := store.SetValue(&pkeyAppUserModelID, &pv)
	if win32.FAILED(hr) {
		return fmt.Errorf("clear AppUserModelID: %s", win32.HRESULT_ToString(hr))
	}

	return nil
}

func windowPropertyStore(hwnd uintptr) (*win32.IPropertyStore, error) {
	var store *win32.IPropertyStore
	hr := win32.SHGetPropertyStoreForWindow(
		win32.HWND(hwnd),
		&win32.IID_IPropertyStore,
		unsafe.Pointer(&store),
	)
	if win32.FAILED(hr) {
		return nil, fmt.Errorf("window property store: %s", win32.HRESULT_ToString(hr))
	}
	if store == nil {
		return nil, errors.New("window property store: returned nil")
	}

	return store, nil
}
