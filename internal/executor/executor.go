// Package executor turns an approved plan into process invocations. It
// trusts each step's dry_run flag and never re-derives policy on its own.
package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/guid"
	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/legacy"
	"github.com/officejanitor-io/officejanitor/internal/logging"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

// Command is one external invocation scheduled for a step.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// CommandRunner executes a single command. Production wiring shells out;
// tests substitute a recorder.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) error
}

// RunnerFunc adapts a function to the CommandRunner interface.
type RunnerFunc func(ctx context.Context, cmd Command) error

func (f RunnerFunc) Run(ctx context.Context, cmd Command) error { return f(ctx, cmd) }

// StepResult records what happened to one plan step.
type StepResult struct {
	StepID   string
	Category ir.StepCategory
	Commands []Command
	Skipped  bool
	Err      error
}

// Executor walks plans in order against a CommandRunner.
type Executor struct {
	runner CommandRunner
	force  bool
}

func New(runner CommandRunner) *Executor {
	return &Executor{runner: runner}
}

// WithForce lets destructive commands through even in dry-run mode.
func (e *Executor) WithForce(force bool) *Executor {
	e.force = force
	return e
}

// Execute processes steps strictly in plan order and stops at the first
// command failure. Informational steps and dry-run destructive steps are
// logged and skipped.
func (e *Executor) Execute(ctx context.Context, p ir.Plan) ([]StepResult, error) {
	log := logging.Component("executor")
	var results []StepResult
	for _, step := range p.Steps {
		result := StepResult{StepID: step.ID, Category: step.Category}
		if !step.Category.Actionable() {
			result.Skipped = true
			results = append(results, result)
			continue
		}

		result.Commands = StepCommands(step)
		dryRun := step.Metadata.Bool("dry_run")
		if err := safety.GuardDestructive(step.Description, dryRun, e.force); err != nil {
			for _, cmd := range result.Commands {
				log.Info("dry-run, skipping command", "step", step.ID, "command", cmd.String())
			}
			result.Skipped = true
			results = append(results, result)
			continue
		}

		for _, cmd := range result.Commands {
			log.Info("running command", "step", step.ID, "command", cmd.String())
			if err := e.runner.Run(ctx, cmd); err != nil {
				result.Err = fmt.Errorf("step %s: %w", step.ID, err)
				results = append(results, result)
				return results, result.Err
			}
		}
		results = append(results, result)
	}
	return results, nil
}

// StepCommands shapes the external invocations for one step. Unsupported
// categories yield no commands.
func StepCommands(step ir.PlanStep) []Command {
	switch step.Category {
	case ir.CategoryMSIUninstall:
		return msiCommands(step)
	case ir.CategoryC2RUninstall:
		return c2rCommands(step)
	case ir.CategoryLicensingCleanup:
		return []Command{{Name: "cscript.exe", Args: []string{"//NoLogo", "ospp.vbs", "/rearm"}}}
	case ir.CategoryTaskCleanup:
		var cmds []Command
		for _, task := range step.Metadata.Strings("tasks") {
			cmds = append(cmds, Command{Name: "schtasks.exe", Args: []string{"/Delete", "/TN", task, "/F"}})
		}
		return cmds
	case ir.CategoryServiceCleanup:
		var cmds []Command
		for _, service := range step.Metadata.Strings("services") {
			cmds = append(cmds, Command{Name: "sc.exe", Args: []string{"delete", service}})
		}
		return cmds
	case ir.CategoryFilesystemCleanup:
		var cmds []Command
		for _, path := range step.Metadata.Strings("paths") {
			cmds = append(cmds, Command{Name: "cmd.exe", Args: []string{"/c", "rd", "/s", "/q", path}})
		}
		return cmds
	case ir.CategoryRegistryCleanup:
		var cmds []Command
		for _, key := range step.Metadata.Strings("keys") {
			cmds = append(cmds, Command{Name: "reg.exe", Args: []string{"delete", key, "/f"}})
		}
		return cmds
	}
	return nil
}

// DirectiveCommands expands the cleanup work a legacy cleanup set implies
// into the same command shapes Execute emits for filesystem and registry
// steps, in cleanup-set field order.
func DirectiveCommands(set legacy.CleanupSet) []Command {
	var cmds []Command
	for _, paths := range [][]string{set.ShortcutPaths, set.UserSettingsPaths, set.VBAPaths} {
		for _, path := range paths {
			cmds = append(cmds, Command{Name: "cmd.exe", Args: []string{"/c", "rd", "/s", "/q", path}})
		}
	}
	for _, keys := range [][]string{set.AddinRegistryKeys, set.VBARegistryKeys} {
		for _, key := range keys {
			cmds = append(cmds, Command{Name: "reg.exe", Args: []string{"delete", key, "/f"}})
		}
	}
	return cmds
}

func msiCommands(step ir.PlanStep) []Command {
	code := productCode(step)
	if code == "" {
		return nil
	}
	args := []string{"/x", code, "/qb!", "/norestart"}
	return []Command{{Name: "msiexec.exe", Args: args}}
}

func c2rCommands(step ir.PlanStep) []Command {
	args := []string{"//NoLogo", "OffScrubC2R.vbs", "ALL", "/Quiet", "/NoCancel"}
	if releases := releaseIDs(step); len(releases) > 0 {
		args = []string{"//NoLogo", "OffScrubC2R.vbs", "/Quiet", "/NoCancel",
			"/PRODUCTS=" + strings.Join(releases, ";")}
	}
	return []Command{{Name: "cscript.exe", Args: args}}
}

func productCode(step ir.PlanStep) string {
	record, ok := step.Metadata["product"].(ir.InventoryRecord)
	if !ok {
		return ""
	}
	normalized, err := guid.Normalize(record.ProductCode)
	if err != nil {
		return ""
	}
	return normalized
}

func releaseIDs(step ir.PlanStep) []string {
	record, ok := step.Metadata["installation"].(ir.InventoryRecord)
	if !ok {
		return nil
	}
	return record.ReleaseIDs
}
