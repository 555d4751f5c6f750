package safety

import (
	"fmt"
	"strings"
)

// Minimum Windows release for destructive runs (Windows 7 / Server 2008 R2).
var minimumWindowsRelease = [2]int{6, 1}

// RuntimeFacts captures host conditions the caller measured before asking
// for a destructive run. The guards themselves never touch the OS.
type RuntimeFacts struct {
	IsAdmin                 bool
	OSSystem                string
	OSRelease               string
	BlockingProcesses       []string
	DryRun                  bool
	RequireRestorePoint     bool
	RestorePointAvailable   bool
	Force                   bool
	AllowUnsupportedWindows bool
}

// GuardError is an advisory runtime guard failure. Force bypasses the
// guards that produce it, never the admin requirement.
type GuardError struct {
	Guard  string
	Detail string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("runtime guard %s: %s", e.Guard, e.Detail)
}

func (e *GuardError) Unwrap() error { return ErrPlanRejected }

// EvaluateRuntime validates host prerequisites before destructive
// execution. It is pure so callers can run it during planning and again
// right before the scrub loop. Force skips the advisory guards only;
// missing elevation always fails a non-dry run.
func EvaluateRuntime(facts RuntimeFacts) error {
	if !facts.DryRun && !facts.IsAdmin {
		return &GuardError{Guard: "admin", Detail: "administrative rights are required for destructive operations"}
	}

	system := strings.ToLower(strings.TrimSpace(facts.OSSystem))
	if system != "" && system != "windows" {
		return &GuardError{Guard: "os", Detail: fmt.Sprintf("unsupported operating system %q, Windows is required", facts.OSSystem)}
	}
	if release := parseWindowsRelease(facts.OSRelease); releaseBefore(release, minimumWindowsRelease) {
		if !facts.Force && !facts.AllowUnsupportedWindows {
			return &GuardError{Guard: "os", Detail: "Windows 7 / Server 2008 R2 or newer is required for destructive operations"}
		}
	}

	if !facts.DryRun && !facts.Force {
		var active []string
		for _, proc := range facts.BlockingProcesses {
			if trimmed := strings.TrimSpace(proc); trimmed != "" {
				active = append(active, trimmed)
			}
		}
		if len(active) > 0 {
			return &GuardError{Guard: "processes", Detail: "Office processes must be closed before continuing: " + strings.Join(active, ", ")}
		}
	}

	if !facts.DryRun && facts.RequireRestorePoint && !facts.RestorePointAvailable && !facts.Force {
		return &GuardError{Guard: "restore-point", Detail: "system restore points are unavailable, rerun with force or disable the restore point requirement"}
	}

	return nil
}

// GuardDestructive blocks an irreversible action while the run is in
// dry-run mode, unless force was supplied. Executors call it immediately
// before deleting files, keys, or products.
func GuardDestructive(action string, dryRun, force bool) error {
	if !dryRun || force {
		return nil
	}
	if action == "" {
		action = "destructive operation"
	}
	return &GuardError{Guard: "dry-run", Detail: action + " is blocked while running in dry-run mode"}
}

func parseWindowsRelease(release string) [2]int {
	var out [2]int
	idx := 0
	for _, token := range strings.Split(release, ".") {
		if idx >= 2 {
			break
		}
		var digits strings.Builder
		for _, ch := range token {
			if ch >= '0' && ch <= '9' {
				digits.WriteRune(ch)
			}
		}
		if digits.Len() == 0 {
			continue
		}
		n := 0
		for _, ch := range digits.String() {
			n = n*10 + int(ch-'0')
		}
		out[idx] = n
		idx++
	}
	return out
}

func releaseBefore(a, min [2]int) bool {
	if a[0] != min[0] {
		return a[0] < min[0]
	}
	return a[1] < min[1]
}
