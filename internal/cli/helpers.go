package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/officejanitor-io/officejanitor/internal/inventory"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// optionFlags holds the planning options shared by the plan-producing
// commands. Each command registers the subset it supports.
type optionFlags struct {
	inventoryPath string
	target        string
	include       []string
	dryRun        bool
	force         bool
	keepTemplates bool
	noLicense     bool
}

func (f *optionFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.inventoryPath, "inventory", "i", "", "Inventory snapshot file (YAML or JSON)")
	flags.StringVarP(&f.target, "target", "t", "", "Target Office versions (comma separated)")
	flags.StringSliceVar(&f.include, "include", nil, "Optional component families to include (project, visio, onenote)")
	flags.BoolVar(&f.dryRun, "dry-run", false, "Plan and log actions without executing them")
	flags.BoolVar(&f.force, "force", false, "Bypass advisory guards and template acknowledgments")
	flags.BoolVar(&f.keepTemplates, "keep-templates", false, "Preserve user template files")
	flags.BoolVar(&f.noLicense, "no-license", false, "Skip licensing cleanup")
}

func (f *optionFlags) options() ir.Options {
	return ir.Options{
		Target:        f.target,
		Include:       append([]string(nil), f.include...),
		DryRun:        f.dryRun,
		Force:         f.force,
		KeepTemplates: f.keepTemplates,
		NoLicense:     f.noLicense,
	}
}

func (f *optionFlags) loadInventory() (ir.Inventory, error) {
	return loadInventoryFile(f.inventoryPath)
}

func loadInventoryFile(path string) (ir.Inventory, error) {
	if path == "" {
		return ir.Inventory{}, fmt.Errorf("an inventory snapshot is required, pass --inventory")
	}
	return inventory.Load(path)
}

func renderPlan(w io.Writer, p ir.Plan) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(p)
}

func printPlanOutline(w io.Writer, p ir.Plan) {
	actionable := 0
	for _, step := range p.Steps {
		marker := " "
		if step.Category.Actionable() {
			marker = "*"
			actionable++
		}
		fmt.Fprintf(w, "%s %-20s %s\n", marker, step.ID, step.Description)
	}
	fmt.Fprintf(w, "%d steps, %d actionable (marked *)\n", len(p.Steps), actionable)
}
