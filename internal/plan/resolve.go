// Package plan turns a detection inventory plus user intent into an
// ordered, deterministic sequence of plan steps. The package is pure: it
// performs no I/O, reads no clocks, and never mutates its inputs, so
// identical inputs always produce identical plans.
package plan

import (
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// ResolveMode picks the planning mode from options. Precedence is a hard
// contract: explicit diagnose beats cleanup-only beats auto-all beats the
// target option beats the free-text mode string; everything else is
// interactive.
func ResolveMode(opts ir.Options) ir.Mode {
	explicit := strings.ToLower(strings.TrimSpace(opts.Mode))

	if opts.Diagnose || explicit == "diagnose" {
		return ir.Mode{Kind: ir.ModeDiagnose}
	}
	if opts.CleanupOnly || explicit == "cleanup-only" {
		return ir.Mode{Kind: ir.ModeCleanupOnly}
	}
	if opts.AutoAll || explicit == "auto-all" {
		return ir.Mode{Kind: ir.ModeAutoAll}
	}
	if target := strings.TrimSpace(opts.Target); target != "" {
		return ir.Mode{Kind: ir.ModeTarget, Target: target}
	}
	if strings.HasPrefix(explicit, "target:") && len(explicit) > len("target:") {
		_, payload, _ := strings.Cut(strings.TrimSpace(opts.Mode), ":")
		return ir.Mode{Kind: ir.ModeTarget, Target: payload}
	}
	return ir.Mode{Kind: ir.ModeInteractive}
}

// ResolveTargets merges targets embedded in the mode with the explicit
// target options, preserving first-seen order and deduplicating. Targets
// outside the supported set are reported, never silently dropped.
func ResolveTargets(mode ir.Mode, opts ir.Options) (valid, unsupported []string) {
	var raw []string
	if mode.Kind == ir.ModeTarget && mode.Target != "" {
		raw = append(raw, splitCSV(mode.Target)...)
	}
	if target := strings.TrimSpace(opts.Target); target != "" {
		raw = append(raw, splitCSV(target)...)
	}
	for _, entry := range opts.Targets {
		raw = append(raw, splitCSV(entry)...)
	}

	seen := make(map[string]bool, len(raw))
	for _, candidate := range raw {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		if catalog.SupportedVersionSet[candidate] {
			valid = append(valid, candidate)
		} else {
			unsupported = append(unsupported, candidate)
		}
	}
	return valid, unsupported
}

// ResolveComponents resolves optional-component spellings against the
// alias table, case-insensitively. Unknown names are reported verbatim.
func ResolveComponents(include []string) (resolved, unsupported []string) {
	seen := make(map[string]bool)
	for _, entry := range include {
		for _, candidate := range splitCSV(entry) {
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			lower := strings.ToLower(candidate)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			if canonical, ok := catalog.ComponentAliases[lower]; ok {
				if !contains(resolved, canonical) {
					resolved = append(resolved, canonical)
				}
			} else {
				unsupported = append(unsupported, candidate)
			}
		}
	}
	return resolved, unsupported
}

func splitCSV(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
