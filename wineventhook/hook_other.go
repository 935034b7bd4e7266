//go:build !windows

package wineventhook

// Supported reports whether the window-event hook facility exists on
// this platform. Install and Session are only defined where it does,
// so referencing them from portable code is a compile error rather
// than a silent no-op.
const Supported = false
