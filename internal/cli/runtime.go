package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

// guardRuntime measures host conditions and runs the runtime guards before
// a destructive pass. Dry runs skip it entirely so plans stay inspectable
// on any platform.
func guardRuntime(ctx context.Context, p ir.Plan, opts ir.Options) error {
	if opts.DryRun {
		return nil
	}
	if err := safety.EvaluateRuntime(measureRuntimeFacts(ctx, p, opts)); err != nil {
		return fmt.Errorf("runtime checks failed: %w", err)
	}
	return nil
}

// measureRuntimeFacts gathers what the guards validate. The process names
// to check come from the plan's detect step.
func measureRuntimeFacts(ctx context.Context, p ir.Plan, opts ir.Options) safety.RuntimeFacts {
	facts := safety.RuntimeFacts{
		IsAdmin:   processIsElevated(),
		OSSystem:  runtime.GOOS,
		OSRelease: windowsRelease(ctx),
		DryRun:    opts.DryRun,
		Force:     opts.Force,
	}
	for i := range p.Steps {
		if p.Steps[i].Category == ir.CategoryDetect {
			facts.BlockingProcesses = runningProcesses(ctx, p.Steps[i].Metadata.Strings("blocking_processes"))
			break
		}
	}
	return facts
}

// processIsElevated reports whether the process can perform machine-wide
// changes. On Windows only elevated processes may open a raw volume
// handle; elsewhere root is the bar.
func processIsElevated() bool {
	if runtime.GOOS != "windows" {
		return os.Geteuid() == 0
	}
	f, err := os.Open(`\\.\PHYSICALDRIVE0`)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// windowsRelease returns the kernel version string reported by cmd's VER,
// or "" off Windows and when VER fails. The guards treat "" as current.
func windowsRelease(ctx context.Context) string {
	if runtime.GOOS != "windows" {
		return ""
	}
	out, err := exec.CommandContext(ctx, "cmd.exe", "/c", "ver").Output()
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(out))
	if open := strings.LastIndex(text, "["); open >= 0 {
		text = strings.Trim(text[open+1:], "[]")
		text = strings.TrimPrefix(text, "Version ")
	}
	return text
}

// runningProcesses filters the candidate names down to those present in
// the tasklist output. Off Windows nothing can be blocking.
func runningProcesses(ctx context.Context, candidates []string) []string {
	if runtime.GOOS != "windows" || len(candidates) == 0 {
		return nil
	}
	out, err := exec.CommandContext(ctx, "tasklist.exe", "/FO", "CSV", "/NH").Output()
	if err != nil {
		return nil
	}
	listing := strings.ToLower(string(out))
	var active []string
	for _, name := range candidates {
		if name != "" && strings.Contains(listing, strings.ToLower(name)) {
			active = append(active, name)
		}
	}
	return active
}
