package plan

import (
	"fmt"
	"sort"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// Build produces the ordered plan for one pass over the inventory.
func Build(inv ir.Inventory, opts ir.Options) ir.Plan {
	return BuildPass(inv, opts, 1)
}

// BuildPass is Build with an explicit pass index. The scrub loop reruns
// planning between passes; the index keeps step identifiers distinct per
// iteration while cleanup steps remain present in every plan.
func BuildPass(inv ir.Inventory, opts ir.Options, passIndex int) ir.Plan {
	mode := ResolveMode(opts)
	targets, unsupportedTargets := ResolveTargets(mode, opts)
	components, unsupportedComponents := ResolveComponents(opts.Include)

	selected := inv.Clone()
	if mode.Kind == ir.ModeAutoAll {
		selected = AugmentAutoAllInventory(selected, components)
	}

	discovered := DiscoverVersions(selected)
	if len(targets) == 0 {
		targets = discovered
	}

	contextStep := ir.PlanStep{
		ID:          "context",
		Category:    ir.CategoryContext,
		Description: "Planning context and CLI options.",
		DependsOn:   []string{},
		Metadata: ir.Metadata{
			"mode":                   mode.String(),
			"dry_run":                opts.DryRun,
			"force":                  opts.Force,
			"target_versions":        targets,
			"unsupported_targets":    unsupportedTargets,
			"discovered_versions":    discovered,
			"options":                opts,
			"inventory_counts":       selected.Counts(),
			"requested_components":   components,
			"unsupported_components": unsupportedComponents,
			"pass_index":             passIndex,
		},
	}

	steps := []ir.PlanStep{contextStep}

	// Diagnose plans carry nothing but the context snapshot; detection
	// output is reported by the caller, not scheduled as work.
	if mode.Kind == ir.ModeDiagnose {
		p := ir.Plan{Steps: steps}
		foldSummary(&p)
		return p
	}

	detectID := fmt.Sprintf("detect-%d-0", passIndex)
	steps = append(steps, ir.PlanStep{
		ID:          detectID,
		Category:    ir.CategoryDetect,
		Description: "Record detection snapshot for downstream steps.",
		DependsOn:   []string{"context"},
		Metadata: ir.Metadata{
			"summary": ir.Metadata{
				"counts":              selected.Counts(),
				"total_entries":       selected.TotalEntries(),
				"discovered_versions": discovered,
			},
			"blocking_processes": catalog.DefaultOfficeProcesses,
			"dry_run":            opts.DryRun,
		},
	})

	prerequisites := []string{detectID}
	var uninstallIDs []string

	if mode.Kind != ir.ModeCleanupOnly {
		for index, record := range orderC2RRecords(FilterByTarget(selected.C2R, targets)) {
			id := fmt.Sprintf("c2r-%d-%d", passIndex, index)
			description := record.Description
			if description == "" {
				description = "Uninstall Click-to-Run packages"
			}
			steps = append(steps, ir.PlanStep{
				ID:          id,
				Category:    ir.CategoryC2RUninstall,
				Description: description,
				DependsOn:   prerequisites,
				Metadata: ir.Metadata{
					"installation": record,
					"version":      InferVersion(record),
					"dry_run":      opts.DryRun,
				},
			})
			uninstallIDs = append(uninstallIDs, id)
		}

		for index, record := range orderMSIRecords(FilterByTarget(selected.MSI, targets)) {
			id := fmt.Sprintf("msi-%d-%d", passIndex, index)
			description := record.DisplayName
			if description == "" {
				description = fmt.Sprintf("Uninstall MSI product %s", record.ProductCode)
			}
			steps = append(steps, ir.PlanStep{
				ID:          id,
				Category:    ir.CategoryMSIUninstall,
				Description: description,
				DependsOn:   prerequisites,
				Metadata: ir.Metadata{
					"product": record,
					"version": InferVersion(record),
					"dry_run": opts.DryRun,
				},
			})
			uninstallIDs = append(uninstallIDs, id)
		}
	}

	cleanupDeps := uninstallIDs
	if len(cleanupDeps) == 0 {
		cleanupDeps = []string{detectID}
	}

	if !opts.NoLicense {
		id := fmt.Sprintf("licensing-%d-0", passIndex)
		steps = append(steps, ir.PlanStep{
			ID:          id,
			Category:    ir.CategoryLicensingCleanup,
			Description: "Remove Office licensing and activation tokens.",
			DependsOn:   cleanupDeps,
			Metadata: ir.Metadata{
				"dry_run": opts.DryRun,
				"mode":    mode.String(),
			},
		})
		cleanupDeps = []string{id}
	}

	if tasks := collectNames(selected.Tasks); len(tasks) > 0 {
		id := fmt.Sprintf("tasks-%d-0", passIndex)
		steps = append(steps, ir.PlanStep{
			ID:          id,
			Category:    ir.CategoryTaskCleanup,
			Description: "Remove Office-related scheduled tasks.",
			DependsOn:   cleanupDeps,
			Metadata: ir.Metadata{
				"tasks":   tasks,
				"dry_run": opts.DryRun,
			},
		})
		cleanupDeps = []string{id}
	}

	if services := collectNames(selected.Services); len(services) > 0 {
		id := fmt.Sprintf("services-%d-0", passIndex)
		steps = append(steps, ir.PlanStep{
			ID:          id,
			Category:    ir.CategoryServiceCleanup,
			Description: "Delete Office background services.",
			DependsOn:   cleanupDeps,
			Metadata: ir.Metadata{
				"services": services,
				"dry_run":  opts.DryRun,
			},
		})
		cleanupDeps = []string{id}
	}

	if paths := collectPaths(selected.Filesystem); len(paths) > 0 {
		steps = append(steps, ir.PlanStep{
			ID:          fmt.Sprintf("filesystem-%d-0", passIndex),
			Category:    ir.CategoryFilesystemCleanup,
			Description: "Remove residual Office filesystem artifacts.",
			DependsOn:   cleanupDeps,
			Metadata: ir.Metadata{
				"paths":              paths,
				"preserve_templates": opts.KeepTemplates,
				"purge_templates":    opts.Force && !opts.KeepTemplates,
				"dry_run":            opts.DryRun,
			},
		})
	}

	if keys := collectKeys(selected.Registry); len(keys) > 0 {
		steps = append(steps, ir.PlanStep{
			ID:          fmt.Sprintf("registry-%d-0", passIndex),
			Category:    ir.CategoryRegistryCleanup,
			Description: "Purge Office registry hives and COM registrations.",
			DependsOn:   cleanupDeps,
			Metadata: ir.Metadata{
				"keys":    keys,
				"dry_run": opts.DryRun,
			},
		})
	}

	p := ir.Plan{Steps: steps}
	foldSummary(&p)
	return p
}

// orderC2RRecords sorts by removal priority, keeping detection order for
// equal priorities.
func orderC2RRecords(records []ir.InventoryRecord) []ir.InventoryRecord {
	out := append([]ir.InventoryRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return C2RUninstallPriority(InferVersion(out[i])) < C2RUninstallPriority(InferVersion(out[j]))
	})
	return out
}

func orderMSIRecords(records []ir.InventoryRecord) []ir.InventoryRecord {
	out := append([]ir.InventoryRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return MSIUninstallPriority(out[i]) < MSIUninstallPriority(out[j])
	})
	return out
}

func collectPaths(entries []ir.ArtifactRecord) []string {
	var paths []string
	for _, entry := range entries {
		if entry.Path != "" {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

func collectKeys(entries []ir.ArtifactRecord) []string {
	var keys []string
	for _, entry := range entries {
		switch {
		case entry.Key != "":
			keys = append(keys, entry.Key)
		case entry.Path != "":
			keys = append(keys, entry.Path)
		}
	}
	return keys
}

func collectNames(entries []ir.ArtifactRecord) []string {
	var names []string
	for _, entry := range entries {
		if entry.Name != "" {
			names = append(names, entry.Name)
		}
	}
	return names
}

func foldSummary(p *ir.Plan) {
	if ctx, ok := p.Context(); ok {
		ctx.Metadata["summary"] = Summarize(*p)
	}
}
