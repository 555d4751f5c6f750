package cli

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/safety"
)

func TestGuardRuntime_DryRunSkipsHostChecks(t *testing.T) {
	opts := ir.Options{DryRun: true}
	assert.NoError(t, guardRuntime(context.Background(), ir.Plan{}, opts))
}

func TestGuardRuntime_DestructiveRunIsGuarded(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("host may legitimately satisfy the guards")
	}
	err := guardRuntime(context.Background(), ir.Plan{}, ir.Options{})
	require.Error(t, err)
	var guard *safety.GuardError
	assert.True(t, errors.As(err, &guard))
	assert.ErrorIs(t, err, safety.ErrPlanRejected)
}

func TestMeasureRuntimeFacts_PropagatesOptions(t *testing.T) {
	p := ir.Plan{Steps: []ir.PlanStep{
		{ID: "context", Category: ir.CategoryContext, Metadata: ir.Metadata{}},
		{ID: "detect-1-0", Category: ir.CategoryDetect, Metadata: ir.Metadata{
			"blocking_processes": []string{"winword.exe"},
		}},
	}}
	opts := ir.Options{DryRun: true, Force: true}

	facts := measureRuntimeFacts(context.Background(), p, opts)
	assert.True(t, facts.DryRun)
	assert.True(t, facts.Force)
	assert.Equal(t, runtime.GOOS, facts.OSSystem)
}

func TestRunningProcesses_NothingBlocksOffWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("reads the live process table on windows")
	}
	assert.Empty(t, runningProcesses(context.Background(), []string{"winword.exe"}))
}
