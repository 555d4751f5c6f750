// Package legacy translates the historical OffScrub VBS command lines into
// native invocation records and execution directives. The alias tables
// reproduce the flag semantics of OffScrub03/07/10, OffScrub_O15msi,
// OffScrub_O16msi and OffScrubC2R so existing automation keeps working.
package legacy

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/guid"
)

var guidTokenPattern = regexp.MustCompile(
	`^\{?[0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12}\}?$`)

// FlagSet captures every legacy switch the translator recognizes. One
// field per switch; unknown switches never land here.
type FlagSet struct {
	All                   bool
	OSE                   bool
	Offline               bool
	Quiet                 bool
	NoReboot              bool
	DetectOnly            bool
	TestRerun             bool
	NoElevate             bool
	KeepLicense           bool
	ReturnErrorOrSuccess  bool
	SkipShortcutDetection bool
	Bypass                bool
	DeleteUserSettings    bool
	KeepUserSettings      bool
	ClearAddinRegistry    bool
	RemoveVBA             bool
	Force                 bool
	FastRemove            bool
	ScanComponents        bool
	VersionGroup          string
}

// Invocation is a parsed legacy OffScrub command line.
type Invocation struct {
	ScriptPath   string
	VersionGroup string
	ProductCodes []string
	ReleaseIDs   []string
	Flags        FlagSet
	Unknown      []string
	LogDir       string
}

// scriptVersionHints maps known legacy script filenames to the version
// group they were written for.
var scriptVersionHints = map[string]string{
	"offscrub03.vbs":      "2003",
	"offscrub07.vbs":      "2007",
	"offscrub10.vbs":      "2010",
	"offscrub_o15msi.vbs": "2013",
	"offscrub_o16msi.vbs": "2016",
	"offscrubc2r.vbs":     "c2r",
}

// msiMajorVersionGroups maps the bare /11../16 switches to version groups.
var msiMajorVersionGroups = map[string]string{
	"11": "2003",
	"12": "2007",
	"14": "2010",
	"15": "2013",
	"16": "2016",
}

// InferVersionGroup maps a legacy script filename to its version group;
// unknown filenames fall back to def.
func InferVersionGroup(scriptPath, def string) string {
	if scriptPath == "" {
		return def
	}
	name := strings.ToLower(filepath.Base(scriptPath))
	if group, ok := scriptVersionHints[name]; ok {
		return group
	}
	return def
}

// NormalizeGUIDToken brings a GUID-shaped token into braced uppercase form
// when possible and returns other tokens unchanged.
func NormalizeGUIDToken(token string) string {
	cleaned := strings.TrimSpace(token)
	if cleaned == "" {
		return ""
	}
	if norm, err := guid.Normalize(cleaned); err == nil {
		return norm
	}
	return cleaned
}

// ParseArguments tokenizes a legacy argument list. Unrecognized switches
// are preserved in Unknown so callers can warn without failing; free-text
// tokens become Click-to-Run release identifiers when command is "c2r"
// and product codes otherwise.
func ParseArguments(command string, argv []string) Invocation {
	inv := Invocation{}
	tokens := make([]string, 0, len(argv))
	for _, raw := range argv {
		if t := strings.TrimSpace(raw); t != "" {
			tokens = append(tokens, t)
		}
	}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		upper := strings.ToUpper(token)

		if inv.ScriptPath == "" && strings.HasSuffix(upper, ".VBS") {
			inv.ScriptPath = token
			continue
		}

		if strings.HasPrefix(token, "/") {
			name := strings.ToUpper(strings.TrimLeft(token, "/-"))
			if group, ok := msiMajorVersionGroups[name]; ok {
				inv.Flags.All = true
				inv.Flags.VersionGroup = group
				continue
			}
			switch name {
			case "ALL":
				inv.Flags.All = true
			case "OSE", "O":
				inv.Flags.OSE = true
			case "OFFLINE", "FORCEOFFLINE", "OFF", "OFFLINEONLY":
				inv.Flags.Offline = true
			case "QUIET", "PASSIVE", "Q":
				inv.Flags.Quiet = true
			case "NOREBOOT", "NORESTART":
				inv.Flags.NoReboot = true
			case "PREVIEW", "DETECTONLY":
				inv.Flags.DetectOnly = true
			case "TR", "TESTRERUN":
				inv.Flags.TestRerun = true
			case "NOELEVATE", "NE":
				inv.Flags.NoElevate = true
			case "KL", "KEEPLICENSE":
				inv.Flags.KeepLicense = true
			case "RETERRORSUCCESS", "RETURNERRORORSUCCESS", "REOS":
				inv.Flags.ReturnErrorOrSuccess = true
			case "SKIPSD", "S", "SKIPSHORTCUTDETECTION":
				inv.Flags.SkipShortcutDetection = true
			case "BYPASS", "B":
				inv.Flags.Bypass = true
			case "LOG", "L":
				if i+1 < len(tokens) {
					inv.LogDir = strings.Trim(tokens[i+1], `"`)
					i++
				} else {
					inv.Unknown = append(inv.Unknown, token)
				}
			case "DELETEUSERSETTINGS", "DUS":
				inv.Flags.DeleteUserSettings = true
			case "KEEPUSERSETTINGS", "KUS":
				inv.Flags.KeepUserSettings = true
			case "CLEARADDINREG", "CAR":
				inv.Flags.ClearAddinRegistry = true
			case "REMOVEVBA":
				inv.Flags.RemoveVBA = true
			case "FORCE", "F":
				inv.Flags.Force = true
			case "FASTREMOVE", "FR":
				inv.Flags.FastRemove = true
			case "SCANCOMPONENTS", "SC":
				inv.Flags.ScanComponents = true
			default:
				inv.Unknown = append(inv.Unknown, token)
			}
			continue
		}

		if guidTokenPattern.MatchString(token) {
			inv.ProductCodes = append(inv.ProductCodes, NormalizeGUIDToken(token))
			continue
		}

		if upper == "ALL" {
			inv.Flags.All = true
			continue
		}

		if command == "c2r" {
			inv.ReleaseIDs = append(inv.ReleaseIDs, token)
		} else {
			inv.ProductCodes = append(inv.ProductCodes, NormalizeGUIDToken(token))
		}
	}

	def := ""
	if command == "c2r" {
		def = "c2r"
	}
	inv.VersionGroup = InferVersionGroup(inv.ScriptPath, def)
	if inv.VersionGroup == "" && inv.Flags.VersionGroup != "" {
		inv.VersionGroup = inv.Flags.VersionGroup
	}
	return inv
}
