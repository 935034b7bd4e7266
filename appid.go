package desktopapp

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
	"strings"
	"unicode"
)

// AppID returns the identifier the shell uses to tie the app's windows,
// shortcut and taskbar entry together.
//
// On Windows the format is <OrgName>.<Slug>.Go-<hexdigits>: the named
// parts title-cased with spaces and underscores removed and periods
// turned into hyphens, plus a hash of the case-normalized executable
// path so two installs of the same app keep separate taskbar
// identities. OrgName is omitted when not configured.
//
// Elsewhere the slug is used as-is. It names the .desktop entry, which
// desktop environments match against the process executable name to
// identify windows, so it stays in executable-name form.
func (a App) AppID() string {
	return appIDFor(runtime.GOOS, a)
}

func appIDFor(goos string, a App) string {
	if goos != "windows" {
		return a.Slug
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{a.OrgName, a.Slug} {
		if part == "" {
			continue
		}
		parts = append(parts, identifierPart(part))
	}

	digest := sha256.Sum256([]byte(strings.ToLower(a.ExecutablePath)))
	parts = append(parts, "Go-"+hex.EncodeToString(digest[:])[:16])

	return strings.Join(parts, ".")
}

// identifierPart title-cases a name and strips the characters that read
// poorly inside an AppUserModelID.
func identifierPart(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '_':
			prevLetter = false
		case r == '.':
			b.WriteRune('-')
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
			prevLetter = unicode.IsLetter(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = unicode.IsLetter(r)
		}
	}

	return b.String()
}
