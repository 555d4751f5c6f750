package plan

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officejanitor-io/officejanitor/internal/ir"
)

func sampleInventory() ir.Inventory {
	return ir.Inventory{
		MSI: []ir.InventoryRecord{
			{ProductCode: "{90160000-0011-0000-0000-0000000FF1CE}", DisplayName: "Office Professional Plus 2016", Kind: ir.InstallMSI, TargetVersion: "2016"},
			{ProductCode: "{90140000-0011-0000-0000-0000000FF1CE}", DisplayName: "Office Professional Plus 2010", Kind: ir.InstallMSI, TargetVersion: "2010"},
		},
		C2R: []ir.InventoryRecord{
			{ReleaseIDs: []string{"O365ProPlusRetail"}, Kind: ir.InstallC2R},
		},
		Filesystem: []ir.ArtifactRecord{
			{Path: `C:\Program Files\Microsoft Office\root`},
		},
		Registry: []ir.ArtifactRecord{
			{Key: `HKLM\SOFTWARE\Microsoft\Office\16.0`},
		},
		Tasks:    []ir.ArtifactRecord{{Name: `\Microsoft\Office\Office Automatic Updates 2.0`}},
		Services: []ir.ArtifactRecord{{Name: "ClickToRunSvc"}},
	}
}

func stepCategories(p ir.Plan) []ir.StepCategory {
	out := make([]ir.StepCategory, 0, len(p.Steps))
	for _, step := range p.Steps {
		out = append(out, step.Category)
	}
	return out
}

func TestBuild_ContextIsAlwaysFirst(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true})

	require.NotEmpty(t, p.Steps)
	assert.Equal(t, "context", p.Steps[0].ID)
	assert.Equal(t, ir.CategoryContext, p.Steps[0].Category)
	assert.Equal(t, "auto-all", p.Steps[0].Metadata.String("mode"))
}

func TestBuild_DiagnoseYieldsOnlyContext(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{Diagnose: true})

	require.Len(t, p.Steps, 1)
	assert.Equal(t, ir.CategoryContext, p.Steps[0].Category)
	assert.NotEmpty(t, p.Steps[0].Metadata.Strings("discovered_versions"))
}

func TestBuild_CleanupOnlySkipsUninstalls(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{CleanupOnly: true})

	for _, step := range p.Steps {
		assert.False(t, step.Category.Uninstall(), "unexpected uninstall step %s", step.ID)
	}
	assert.Contains(t, stepCategories(p), ir.CategoryFilesystemCleanup)
	assert.Contains(t, stepCategories(p), ir.CategoryRegistryCleanup)
}

func TestBuild_UninstallOrderFollowsPriority(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true})

	var uninstallIDs []string
	for _, step := range p.Steps {
		if step.Category.Uninstall() {
			uninstallIDs = append(uninstallIDs, step.ID)
		}
	}
	require.NotEmpty(t, uninstallIDs)

	// C2R steps are scheduled first; MSI steps are ordered oldest first.
	assert.Equal(t, "c2r-1-0", uninstallIDs[0])
	msi0, msi1 := -1, -1
	for i, step := range p.Steps {
		switch step.Description {
		case "Office Professional Plus 2010":
			msi0 = i
		case "Office Professional Plus 2016":
			msi1 = i
		}
	}
	require.GreaterOrEqual(t, msi0, 0)
	require.GreaterOrEqual(t, msi1, 0)
	assert.Less(t, msi0, msi1, "2010 must be removed before 2016")
}

func TestBuild_TargetModeFiltersInventory(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{Target: "2010"})

	for _, step := range p.Steps {
		if step.Category.Uninstall() {
			assert.Equal(t, "2010", step.Metadata.String("version"))
		}
	}
	ctx, ok := p.Context()
	require.True(t, ok)
	assert.Equal(t, []string{"2010"}, ctx.Metadata.Strings("target_versions"))
}

func TestBuild_NoLicenseSkipsLicensingStep(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true, NoLicense: true})
	assert.NotContains(t, stepCategories(p), ir.CategoryLicensingCleanup)

	p = Build(sampleInventory(), ir.Options{AutoAll: true})
	assert.Contains(t, stepCategories(p), ir.CategoryLicensingCleanup)
}

func TestBuild_TemplateFlagsOnFilesystemStep(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true, Force: true})
	for _, step := range p.Steps {
		if step.Category == ir.CategoryFilesystemCleanup {
			assert.True(t, step.Metadata.Bool("purge_templates"))
			assert.False(t, step.Metadata.Bool("preserve_templates"))
		}
	}

	p = Build(sampleInventory(), ir.Options{AutoAll: true, KeepTemplates: true})
	for _, step := range p.Steps {
		if step.Category == ir.CategoryFilesystemCleanup {
			assert.True(t, step.Metadata.Bool("preserve_templates"))
			assert.False(t, step.Metadata.Bool("purge_templates"))
		}
	}
}

func TestBuild_DryRunPropagatesToEverySteps(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true, DryRun: true})
	for _, step := range p.Steps {
		if step.Metadata.Has("dry_run") {
			assert.True(t, step.Metadata.Bool("dry_run"), "step %s", step.ID)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	inv := sampleInventory()
	opts := ir.Options{AutoAll: true, Include: []string{"visio"}}

	first := Build(inv, opts)
	second := Build(inv, opts)
	assert.True(t, reflect.DeepEqual(first, second), "identical inputs must produce identical plans")
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	inv := sampleInventory()
	before := len(inv.C2R)

	Build(inv, ir.Options{AutoAll: true})
	assert.Len(t, inv.C2R, before)
}

func TestBuildPass_StepIDsCarryPassIndex(t *testing.T) {
	p := BuildPass(sampleInventory(), ir.Options{AutoAll: true}, 3)

	seen := false
	for _, step := range p.Steps {
		if step.Category == ir.CategoryDetect {
			assert.Equal(t, "detect-3-0", step.ID)
			seen = true
		}
	}
	assert.True(t, seen)
	ctx, _ := p.Context()
	assert.Equal(t, 3, ctx.Metadata["pass_index"])
}

func TestBuild_SummaryFoldedIntoContext(t *testing.T) {
	p := Build(sampleInventory(), ir.Options{AutoAll: true})

	ctx, ok := p.Context()
	require.True(t, ok)
	summary, ok := ctx.Metadata["summary"].(Summary)
	require.True(t, ok)
	assert.Equal(t, len(p.Steps), summary.TotalSteps)
	assert.Greater(t, summary.UninstallSteps, 0)
}
