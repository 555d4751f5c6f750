package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officejanitor-io/officejanitor/internal/ir"
	"github.com/officejanitor-io/officejanitor/internal/legacy"
)

type recordingRunner struct {
	commands []Command
	fail     map[string]error
}

func (r *recordingRunner) Run(ctx context.Context, cmd Command) error {
	r.commands = append(r.commands, cmd)
	if err, ok := r.fail[cmd.Name]; ok {
		return err
	}
	return nil
}

func msiStep(id string, dryRun bool) ir.PlanStep {
	return ir.PlanStep{
		ID:       id,
		Category: ir.CategoryMSIUninstall,
		Metadata: ir.Metadata{
			"dry_run": dryRun,
			"product": ir.InventoryRecord{
				ProductCode: "{90160000-0011-0000-0000-0000000FF1CE}",
				Kind:        ir.InstallMSI,
			},
		},
	}
}

func TestExecute_RunsStepsInOrder(t *testing.T) {
	runner := &recordingRunner{}
	p := ir.Plan{Steps: []ir.PlanStep{
		{ID: "context", Category: ir.CategoryContext, Metadata: ir.Metadata{}},
		msiStep("msi-1-0", false),
		{ID: "services-1-0", Category: ir.CategoryServiceCleanup, Metadata: ir.Metadata{
			"dry_run":  false,
			"services": []string{"ClickToRunSvc"},
		}},
	}}

	results, err := New(runner).Execute(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Skipped, "context step is informational")
	require.Len(t, runner.commands, 2)
	assert.Equal(t, "msiexec.exe", runner.commands[0].Name)
	assert.Equal(t, []string{"/x", "{90160000-0011-0000-0000-0000000FF1CE}", "/qb!", "/norestart"}, runner.commands[0].Args)
	assert.Equal(t, "sc.exe", runner.commands[1].Name)
}

func TestExecute_DryRunSkipsDestructiveSteps(t *testing.T) {
	runner := &recordingRunner{}
	p := ir.Plan{Steps: []ir.PlanStep{msiStep("msi-1-0", true)}}

	results, err := New(runner).Execute(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
	assert.Empty(t, runner.commands)
}

func TestExecute_ForceOverridesDryRun(t *testing.T) {
	runner := &recordingRunner{}
	p := ir.Plan{Steps: []ir.PlanStep{msiStep("msi-1-0", true)}}

	_, err := New(runner).WithForce(true).Execute(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, runner.commands, 1)
}

func TestExecute_StopsOnFirstFailure(t *testing.T) {
	boom := errors.New("exit status 1603")
	runner := &recordingRunner{fail: map[string]error{"msiexec.exe": boom}}
	p := ir.Plan{Steps: []ir.PlanStep{
		msiStep("msi-1-0", false),
		{ID: "registry-1-0", Category: ir.CategoryRegistryCleanup, Metadata: ir.Metadata{
			"dry_run": false,
			"keys":    []string{`HKLM\SOFTWARE\Microsoft\Office`},
		}},
	}}

	results, err := New(runner).Execute(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, results, 1)
	assert.Len(t, runner.commands, 1, "registry step must not run after a failed uninstall")
}

func TestStepCommands_C2RUsesReleaseIDs(t *testing.T) {
	step := ir.PlanStep{
		ID:       "c2r-1-0",
		Category: ir.CategoryC2RUninstall,
		Metadata: ir.Metadata{
			"installation": ir.InventoryRecord{
				ReleaseIDs: []string{"O365ProPlusRetail", "VisioProRetail"},
				Kind:       ir.InstallC2R,
			},
		},
	}

	cmds := StepCommands(step)
	require.Len(t, cmds, 1)
	assert.Equal(t, "cscript.exe", cmds[0].Name)
	assert.Contains(t, cmds[0].Args, "/PRODUCTS=O365ProPlusRetail;VisioProRetail")
}

func TestStepCommands_FilesystemAndRegistry(t *testing.T) {
	fs := StepCommands(ir.PlanStep{
		Category: ir.CategoryFilesystemCleanup,
		Metadata: ir.Metadata{"paths": []string{`C:\ProgramData\Microsoft\ClickToRun`}},
	})
	require.Len(t, fs, 1)
	assert.Equal(t, "cmd.exe", fs[0].Name)

	reg := StepCommands(ir.PlanStep{
		Category: ir.CategoryRegistryCleanup,
		Metadata: ir.Metadata{"keys": []string{`HKLM\SOFTWARE\Microsoft\Office`}},
	})
	require.Len(t, reg, 1)
	assert.Equal(t, []string{"delete", `HKLM\SOFTWARE\Microsoft\Office`, "/f"}, reg[0].Args)
}

func TestStepCommands_MalformedProductYieldsNothing(t *testing.T) {
	step := ir.PlanStep{
		Category: ir.CategoryMSIUninstall,
		Metadata: ir.Metadata{"product": ir.InventoryRecord{ProductCode: "junk"}},
	}
	assert.Empty(t, StepCommands(step))
}

func TestDirectiveCommands_ExpandsCleanupSet(t *testing.T) {
	set := legacy.CleanupSet{
		ShortcutPaths:     []string{`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office`},
		VBAPaths:          []string{`%APPDATA%\Microsoft\VBA`},
		AddinRegistryKeys: []string{`HKCU\Software\Microsoft\Office\16.0\Addins`},
	}

	cmds := DirectiveCommands(set)
	require.Len(t, cmds, 3)
	assert.Equal(t, Command{Name: "cmd.exe", Args: []string{"/c", "rd", "/s", "/q",
		`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office`}}, cmds[0])
	assert.Equal(t, Command{Name: "cmd.exe", Args: []string{"/c", "rd", "/s", "/q",
		`%APPDATA%\Microsoft\VBA`}}, cmds[1])
	assert.Equal(t, Command{Name: "reg.exe", Args: []string{"delete",
		`HKCU\Software\Microsoft\Office\16.0\Addins`, "/f"}}, cmds[2])
}

func TestDirectiveCommands_EmptySetYieldsNothing(t *testing.T) {
	assert.Empty(t, DirectiveCommands(legacy.CleanupSet{}))
}
