// Package safety validates plans against irreversible-action guardrails
// before any executor is allowed to see them.
package safety

import (
	"errors"
	"fmt"
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/winpath"
)

// ErrPlanRejected is wrapped by every violation so callers can gate on a
// single sentinel.
var ErrPlanRejected = errors.New("plan rejected by preflight checks")

// ViolationError names the step and check that failed preflight.
type ViolationError struct {
	StepID string
	Check  string
	Detail string
}

func (e *ViolationError) Error() string {
	if e.StepID == "" {
		return fmt.Sprintf("preflight %s: %s", e.Check, e.Detail)
	}
	return fmt.Sprintf("preflight %s (step %s): %s", e.Check, e.StepID, e.Detail)
}

func (e *ViolationError) Unwrap() error { return ErrPlanRejected }

func violation(stepID, check, format string, args ...any) error {
	return &ViolationError{StepID: stepID, Check: check, Detail: fmt.Sprintf(format, args...)}
}

// PerformPreflightChecks walks the plan once, in order, and returns the
// first violation found. A nil return approves the plan for execution.
func PerformPreflightChecks(p ir.Plan) error {
	ctx, ok := p.Context()
	if !ok {
		return violation("", "context", "plan has no context step")
	}

	if unsupported := ctx.Metadata.Strings("unsupported_targets"); len(unsupported) > 0 {
		return violation(ctx.ID, "targets", "unsupported target versions: %s", strings.Join(unsupported, ", "))
	}

	mode := ir.ParseMode(ctx.Metadata.String("mode"))
	dryRun := ctx.Metadata.Bool("dry_run")
	force := ctx.Metadata.Bool("force")
	targets := ctx.Metadata.Strings("target_versions")

	uninstallSteps := 0
	for _, step := range p.Steps {
		if step.Category == ir.CategoryContext {
			continue
		}
		if !step.Category.Known() {
			return violation(step.ID, "category", "unknown step category %q", step.Category)
		}

		if mode.Kind == ir.ModeDiagnose && step.Category.Actionable() {
			return violation(step.ID, "mode", "diagnose plan contains actionable step %q", step.Category)
		}
		if mode.Kind == ir.ModeCleanupOnly && step.Category.Uninstall() {
			return violation(step.ID, "mode", "cleanup-only plan contains uninstall step %q", step.Category)
		}

		if step.Metadata.Has("dry_run") && step.Metadata.Bool("dry_run") != dryRun {
			return violation(step.ID, "dry-run", "step dry_run disagrees with plan dry_run=%v", dryRun)
		}

		if step.Category.Uninstall() {
			uninstallSteps++
			if len(targets) > 0 {
				version := step.Metadata.String("version")
				if version != "" && !containsVersion(targets, version) {
					return violation(step.ID, "target-scope", "version %q outside target set %s", version, strings.Join(targets, ", "))
				}
			}
		}

		switch step.Category {
		case ir.CategoryFilesystemCleanup:
			if err := checkFilesystemStep(step, force); err != nil {
				return err
			}
		case ir.CategoryRegistryCleanup:
			if err := checkRegistryStep(step); err != nil {
				return err
			}
		}
	}

	if mode.Kind == ir.ModeTarget && uninstallSteps == 0 {
		return violation(ctx.ID, "mode", "target mode %q matched no installations", mode.String())
	}

	return nil
}

func checkFilesystemStep(step ir.PlanStep, force bool) error {
	paths := step.Metadata.Strings("paths")
	for _, path := range paths {
		if !winpath.MatchesAny(path, catalog.FilesystemWhitelist) {
			return violation(step.ID, "fs-whitelist", "path %q is outside the removal whitelist", path)
		}
		// Blacklist is checked on its own so a whitelist entry that
		// overlaps a protected tree still cannot authorize deletion.
		if winpath.MatchesAny(path, catalog.FilesystemBlacklist) {
			return violation(step.ID, "fs-blacklist", "path %q falls under a protected location", path)
		}
	}

	touchesTemplates := false
	for _, path := range paths {
		if winpath.MatchesAny(path, catalog.UserTemplatePaths) {
			touchesTemplates = true
			break
		}
	}
	if !touchesTemplates {
		return nil
	}
	if step.Metadata.Bool("preserve_templates") {
		return violation(step.ID, "template-guard", "step preserves templates but schedules template paths for removal")
	}
	if !step.Metadata.Bool("purge_templates") && !force {
		return violation(step.ID, "template-guard", "template paths scheduled without purge acknowledgment")
	}
	return nil
}

func checkRegistryStep(step ir.PlanStep) error {
	for _, key := range step.Metadata.Strings("keys") {
		normalized := winpath.NormalizeKey(key)
		if !keyMatchesAny(normalized, catalog.RegistryWhitelist) {
			return violation(step.ID, "reg-whitelist", "key %q is outside the removal whitelist", key)
		}
		if keyMatchesAny(normalized, catalog.RegistryBlacklist) {
			return violation(step.ID, "reg-blacklist", "key %q falls under a protected hive", key)
		}
	}
	return nil
}

func keyMatchesAny(normalized string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if winpath.KeyHasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

func containsVersion(versions []string, version string) bool {
	for _, v := range versions {
		if strings.EqualFold(v, version) {
			return true
		}
	}
	return false
}
