// Package winpath normalizes and compares Windows filesystem paths and
// registry keys without touching the host. Comparisons are case-insensitive
// and separator-normalized; environment expansion uses a fixed machine
// table so results are identical on every host and during tests.
package winpath

import (
	"regexp"
	"strings"
)

var envPattern = regexp.MustCompile(`%[^%\\/]+%`)

// machineEnv holds the expansions for machine-scoped environment
// variables. User-scoped variables (APPDATA, LOCALAPPDATA, USERPROFILE)
// stay unexpanded; per-user paths are matched through MatchEnvSuffix
// instead.
var machineEnv = map[string]string{
	"PROGRAMFILES":            `C:\Program Files`,
	"PROGRAMFILES(X86)":       `C:\Program Files (x86)`,
	"PROGRAMW6432":            `C:\Program Files`,
	"PROGRAMDATA":             `C:\ProgramData`,
	"ALLUSERSPROFILE":         `C:\ProgramData`,
	"COMMONPROGRAMFILES":      `C:\Program Files\Common Files`,
	"COMMONPROGRAMFILES(X86)": `C:\Program Files (x86)\Common Files`,
	"SYSTEMROOT":              `C:\Windows`,
	"WINDIR":                  `C:\Windows`,
	"SYSTEMDRIVE":             `C:`,
	"PUBLIC":                  `C:\Users\Public`,
}

// Expand substitutes machine-scoped %VAR% references using the fixed
// table. Unknown variables are left in place so callers can still match
// them literally or by suffix.
func Expand(path string) string {
	return envPattern.ReplaceAllStringFunc(path, func(token string) string {
		name := strings.ToUpper(strings.Trim(token, "%"))
		if value, ok := machineEnv[name]; ok {
			return value
		}
		return token
	})
}

// Normalize upper-cases a path, converts forward slashes, collapses
// duplicate separators, and trims any trailing separator.
func Normalize(path string) string {
	p := strings.ToUpper(strings.TrimSpace(path))
	p = strings.ReplaceAll(p, "/", `\`)
	for strings.Contains(p, `\\`) {
		p = strings.ReplaceAll(p, `\\`, `\`)
	}
	return strings.TrimRight(p, `\`)
}

// HasPrefix reports whether path sits at or under prefix, comparing whole
// path components after normalization.
func HasPrefix(path, prefix string) bool {
	p := Normalize(path)
	pre := Normalize(prefix)
	if pre == "" {
		return false
	}
	if p == pre {
		return true
	}
	return strings.HasPrefix(p, pre+`\`)
}

// MatchEnvSuffix reports whether a normalized path contains the supplied
// profile-relative suffix (e.g. `\APPDATA\ROAMING\MICROSOFT\TEMPLATES`).
// When requireUsers is set the path must also live under a \Users\
// profile root, which keeps machine paths from matching user suffixes.
func MatchEnvSuffix(path, suffix string, requireUsers bool) bool {
	p := Normalize(path)
	s := Normalize(suffix)
	if s == "" {
		return false
	}
	if !strings.HasPrefix(s, `\`) {
		s = `\` + s
	}
	idx := strings.Index(p, s)
	if idx < 0 {
		return false
	}
	rest := p[idx+len(s):]
	if rest != "" && !strings.HasPrefix(rest, `\`) {
		return false
	}
	if requireUsers && !strings.Contains(p, `\USERS\`) {
		return false
	}
	return true
}

// NormalizeKey canonicalizes a registry key for prefix comparison.
func NormalizeKey(key string) string {
	k := Normalize(key)
	k = strings.TrimPrefix(k, `\`)
	switch {
	case strings.HasPrefix(k, `HKEY_LOCAL_MACHINE\`):
		k = `HKLM\` + k[len(`HKEY_LOCAL_MACHINE\`):]
	case strings.HasPrefix(k, `HKEY_CURRENT_USER\`):
		k = `HKCU\` + k[len(`HKEY_CURRENT_USER\`):]
	case strings.HasPrefix(k, `HKEY_CLASSES_ROOT\`):
		k = `HKCR\` + k[len(`HKEY_CLASSES_ROOT\`):]
	case strings.HasPrefix(k, `HKEY_USERS\`):
		k = `HKU\` + k[len(`HKEY_USERS\`):]
	}
	return k
}

// KeyHasPrefix reports whether key falls at or under the hive-qualified
// prefix.
func KeyHasPrefix(key, prefix string) bool {
	k := NormalizeKey(key)
	pre := NormalizeKey(prefix)
	if pre == "" {
		return false
	}
	if k == pre {
		return true
	}
	return strings.HasPrefix(k, pre+`\`)
}

// userSuffixes rewrites a whitelist-style entry rooted at a user-scoped
// variable into the profile-relative suffixes MatchEnvSuffix understands.
func userSuffixes(entry string) []string {
	n := Normalize(entry)
	switch {
	case strings.HasPrefix(n, `%APPDATA%\`):
		return []string{`\APPDATA\ROAMING` + n[len(`%APPDATA%`):]}
	case strings.HasPrefix(n, `%LOCALAPPDATA%\`):
		return []string{`\APPDATA\LOCAL` + n[len(`%LOCALAPPDATA%`):]}
	case strings.HasPrefix(n, `%USERPROFILE%\`):
		return []string{n[len(`%USERPROFILE%`):]}
	}
	return nil
}

// MatchesEntry reports whether path matches one whitelist/blacklist entry.
// Machine entries match by expanded prefix; user-scoped entries match
// either literally (still carrying the %VAR%) or as a profile-relative
// suffix under \Users\.
func MatchesEntry(path, entry string) bool {
	if HasPrefix(path, entry) {
		return true
	}
	if expanded := Expand(entry); expanded != entry && HasPrefix(path, expanded) {
		return true
	}
	for _, suffix := range userSuffixes(entry) {
		if MatchEnvSuffix(path, suffix, true) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether path matches any entry in the list.
func MatchesAny(path string, entries []string) bool {
	for _, entry := range entries {
		if MatchesEntry(path, entry) {
			return true
		}
	}
	return false
}
