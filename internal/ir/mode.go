package ir

import "strings"

// ModeKind enumerates the planning modes. The set is closed; the safety
// validator matches it exhaustively.
type ModeKind int

const (
	ModeInteractive ModeKind = iota
	ModeDiagnose
	ModeCleanupOnly
	ModeAutoAll
	ModeTarget
)

// Mode is the resolved planning mode. Target carries the version payload
// for ModeTarget ("2016" or "2016,2019").
type Mode struct {
	Kind   ModeKind
	Target string
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeDiagnose:
		return "diagnose"
	case ModeCleanupOnly:
		return "cleanup-only"
	case ModeAutoAll:
		return "auto-all"
	case ModeTarget:
		return "target:" + m.Target
	case ModeInteractive:
		return "interactive"
	}
	return "interactive"
}

// ParseMode maps a mode string back to its Mode value. Unrecognized text
// resolves to interactive; mode strings only ever originate from
// Mode.String so anything else is caller error, not data.
func ParseMode(s string) Mode {
	text := strings.ToLower(strings.TrimSpace(s))
	switch {
	case text == "diagnose":
		return Mode{Kind: ModeDiagnose}
	case text == "cleanup-only":
		return Mode{Kind: ModeCleanupOnly}
	case text == "auto-all":
		return Mode{Kind: ModeAutoAll}
	case strings.HasPrefix(text, "target:") && len(text) > len("target:"):
		return Mode{Kind: ModeTarget, Target: strings.SplitN(s, ":", 2)[1]}
	}
	return Mode{Kind: ModeInteractive}
}
