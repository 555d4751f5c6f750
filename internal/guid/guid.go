// Package guid implements the GUID transforms Windows Installer uses to
// store product and component identifiers in the registry: the standard
// braced form, the 32-character compressed form used as registry key
// segments, and the 20-character squished form seen in component paths.
// The algorithms mirror the legacy OffScrub VBS helpers
// (GetCompressedGuid/GetExpandedGuid and GetSquishGuid/GetDecodeSquishGuid).
package guid

import (
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalid is wrapped by every codec failure. Callers test with
// errors.Is(err, guid.ErrInvalid).
var ErrInvalid = errors.New("invalid GUID")

var (
	guidPattern = regexp.MustCompile(
		`^\{?([0-9A-Fa-f]{8})-?([0-9A-Fa-f]{4})-?([0-9A-Fa-f]{4})-?` +
			`([0-9A-Fa-f]{4})-?([0-9A-Fa-f]{12})\}?$`)
	compressedPattern = regexp.MustCompile(`^[0-9A-Fa-f]{32}$`)
	embeddedPattern   = regexp.MustCompile(`[0-9A-Fa-f]{32}`)
)

// squishAlphabet is the custom base-85-style character set used by the
// squished encoding. Index order matters; it is not standard ascii85.
const squishAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+,-./:;<=>?@[]^_`{|}~"

// IsValid reports whether text is a standard GUID, braced or unbraced,
// case-insensitive.
func IsValid(text string) bool {
	return guidPattern.MatchString(text)
}

// IsCompressed reports whether text is a 32-hex-character compressed GUID.
func IsCompressed(text string) bool {
	return compressedPattern.MatchString(text)
}

func segments(text string) ([5]string, error) {
	var out [5]string
	m := guidPattern.FindStringSubmatch(text)
	if m == nil {
		return out, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	copy(out[:], m[1:])
	return out, nil
}

// reversePairs swaps the two characters of every 2-character chunk:
// "ABCD" becomes "BADC". This is the Windows Installer registry-key
// transform applied to each GUID segment, the 12-digit tail included.
func reversePairs(s string) string {
	b := []byte(s)
	for i := 0; i+1 < len(b); i += 2 {
		b[i], b[i+1] = b[i+1], b[i]
	}
	return string(b)
}

// Normalize reformats any valid GUID (standard or compressed) to the
// canonical braced uppercase form.
func Normalize(text string) (string, error) {
	if IsCompressed(text) {
		return Expand(text)
	}
	seg, err := segments(text)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(fmt.Sprintf("{%s-%s-%s-%s-%s}", seg[0], seg[1], seg[2], seg[3], seg[4])), nil
}

// StripBraces removes the braces from a GUID and upper-cases it.
func StripBraces(text string) string {
	return strings.ToUpper(strings.Trim(text, "{}"))
}

// Compress converts a standard GUID to the 32-character Windows Installer
// compressed form.
func Compress(text string) (string, error) {
	seg, err := segments(text)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range seg {
		b.WriteString(reversePairs(s))
	}
	return strings.ToUpper(b.String()), nil
}

// Expand converts a compressed GUID back to the braced standard form. It
// is the exact inverse of Compress.
func Expand(compressed string) (string, error) {
	if !IsCompressed(compressed) {
		return "", fmt.Errorf("%w: compressed form must be 32 hex characters, got %q", ErrInvalid, compressed)
	}
	c := strings.ToUpper(compressed)
	return fmt.Sprintf("{%s-%s-%s-%s-%s}",
		reversePairs(c[0:8]),
		reversePairs(c[8:12]),
		reversePairs(c[12:16]),
		reversePairs(c[16:20]),
		reversePairs(c[20:32]),
	), nil
}

// Squish encodes the 128-bit GUID value as a 20-character string: four
// 32-bit words, each written as five base-85 digits, least significant
// digit first.
func Squish(text string) (string, error) {
	norm, err := Normalize(text)
	if err != nil {
		return "", err
	}
	u, err := uuid.Parse(norm)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalid, text)
	}
	var b strings.Builder
	for word := 0; word < 4; word++ {
		value := binary.BigEndian.Uint32(u[word*4 : word*4+4])
		for digit := 0; digit < 5; digit++ {
			b.WriteByte(squishAlphabet[value%85])
			value /= 85
		}
	}
	return b.String(), nil
}

// Unsquish decodes a 20-character squished GUID back to the braced
// standard form.
func Unsquish(text string) (string, error) {
	if len(text) != 20 {
		return "", fmt.Errorf("%w: squished form must be 20 characters, got %d", ErrInvalid, len(text))
	}
	var raw [16]byte
	for word := 0; word < 4; word++ {
		chunk := text[word*5 : word*5+5]
		var value uint64
		multiplier := uint64(1)
		for _, ch := range []byte(chunk) {
			idx := strings.IndexByte(squishAlphabet, ch)
			if idx < 0 {
				return "", fmt.Errorf("%w: character %q is outside the squished alphabet", ErrInvalid, string(ch))
			}
			value += uint64(idx) * multiplier
			multiplier *= 85
		}
		if value > 0xFFFFFFFF {
			return "", fmt.Errorf("%w: squished word overflows 32 bits", ErrInvalid)
		}
		binary.BigEndian.PutUint32(raw[word*4:word*4+4], uint32(value))
	}
	u, err := uuid.FromBytes(raw[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return "{" + strings.ToUpper(u.String()) + "}", nil
}

// RegistryPath appends the compressed form of guidText to a Windows
// Installer metadata root, e.g. SOFTWARE\Classes\Installer\Products.
func RegistryPath(guidText, basePath string) (string, error) {
	compressed, err := Compress(guidText)
	if err != nil {
		return "", err
	}
	return basePath + `\` + compressed, nil
}

// ExtractFromRegistryPath scans a registry path for an embedded
// 32-character compressed token and expands it. The second return is
// false when no GUID is present; malformed paths are not an error.
func ExtractFromRegistryPath(path string) (string, bool) {
	token := embeddedPattern.FindString(path)
	if token == "" {
		return "", false
	}
	expanded, err := Expand(token)
	if err != nil {
		return "", false
	}
	return expanded, true
}
