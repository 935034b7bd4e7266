// Package wineventhook stamps an AppUserModelID onto top-level windows
// of the current process as they are created.
//
// Windows derives taskbar grouping, jump-list association and icon
// identity from a window's AppUserModelID property. Most GUI toolkits
// never set it, so the shell falls back to guessing an identity from
// the executable. Installing the hook registers an observer with the
// OS window-event facility; every window the process creates is given
// the configured identifier, and the property is cleared again when a
// window is destroyed, since window handles can be reused.
//
// The facility only exists on Windows. On other platforms this package
// exposes Supported == false and nothing else, so code that calls
// Install has to sit behind a windows build tag; there is no silent
// no-op fallback.
package wineventhook

import (
	"log"
	"sync"
	"unicode/utf16"
)

// Event and object ids delivered by the hook, from WinUser.h.
const (
	eventObjectCreate  uint32 = 0x8000
	eventObjectDestroy uint32 = 0x8001
	objidWindow        int32  = 0
)

const (
	// DefaultAppID is applied to new windows when Install has never
	// been called.
	DefaultAppID = "<no-appid-set>"

	// appIDCapacity bounds the stored identifier in UTF-16 code
	// units, terminator included. Longer identifiers are truncated.
	appIDCapacity = 1024
)

// identifierStore holds the process-wide identifier as a NUL-terminated
// UTF-16 buffer of fixed capacity. The hook callback reads it on
// whichever thread owns the affected window, so access is guarded.
type identifierStore struct {
	mu  sync.RWMutex
	buf [appIDCapacity]uint16
	n   int
}

func newIdentifierStore() *identifierStore {
	s := &identifierStore{}
	s.set(DefaultAppID)
	return s
}

func (s *identifierStore) set(appID string) {
	encoded := utf16.Encode([]rune(appID))
	if len(encoded) > appIDCapacity-1 {
		encoded = encoded[:appIDCapacity-1]
	}

	s.mu.Lock()
	n := copy(s.buf[:], encoded)
	s.buf[n] = 0
	s.n = n
	s.mu.Unlock()
}

func (s *identifierStore) get() string {
	s.mu.RLock()
	decoded := utf16.Decode(s.buf[:s.n])
	s.mu.RUnlock()

	return string(decoded)
}

var currentAppID = newIdentifierStore()

// propertyWriter applies or clears the AppUserModelID property of one
// window. hwnd is opaque at this level; only the Windows implementation
// interprets it.
type propertyWriter interface {
	apply(hwnd uintptr, appID string) error
	clear(hwnd uintptr) error
}

var logf = log.Printf

// SetLogf replaces the logger used when a property update fails. A nil
// fn silences failures entirely. The update is dropped either way: the
// event facility has no error channel, and window lifecycle processing
// must never stall on a failed property write.
func SetLogf(fn func(format string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	logf = fn
}

// handleEvent reacts to a single hook notification. Notifications for
// anything other than a whole window (captions, controls and other
// sub-objects) are ignored.
func handleEvent(w propertyWriter, event uint32, hwnd uintptr, idObject int32) {
	if idObject != objidWindow {
		return
	}

	switch event {
	case eventObjectCreate:
		if err := w.apply(hwnd, currentAppID.get()); err != nil {
			logf("wineventhook: set window AppUserModelID: %v", err)
		}
	case eventObjectDestroy:
		if err := w.clear(hwnd); err != nil {
			logf("wineventhook: clear window AppUserModelID: %v", err)
		}
	}
}
