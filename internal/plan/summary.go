package plan

import "github.com/officejanitor-io/officejanitor/internal/ir"

// Summary is a human-facing digest of a plan. The executor and CLI render
// it; nothing decision-making reads it back.
type Summary struct {
	TotalSteps        int            `json:"total_steps" yaml:"total_steps"`
	ActionableSteps   int            `json:"actionable_steps" yaml:"actionable_steps"`
	UninstallSteps    int            `json:"uninstall_steps" yaml:"uninstall_steps"`
	UninstallVersions []string       `json:"uninstall_versions,omitempty" yaml:"uninstall_versions,omitempty"`
	CleanupCategories []string       `json:"cleanup_categories,omitempty" yaml:"cleanup_categories,omitempty"`
	ByCategory        map[string]int `json:"by_category" yaml:"by_category"`
	DryRun            bool           `json:"dry_run" yaml:"dry_run"`
}

// Summarize tallies a plan by category. Uninstall versions come back in
// canonical removal order; cleanup categories keep plan order.
func Summarize(p ir.Plan) Summary {
	s := Summary{ByCategory: map[string]int{}}
	seenVersions := map[string]bool{}
	seenCleanup := map[string]bool{}
	for _, step := range p.Steps {
		s.TotalSteps++
		s.ByCategory[string(step.Category)]++
		if step.Category.Actionable() {
			s.ActionableSteps++
			if !step.Category.Uninstall() && !seenCleanup[string(step.Category)] {
				seenCleanup[string(step.Category)] = true
				s.CleanupCategories = append(s.CleanupCategories, string(step.Category))
			}
		}
		if step.Category.Uninstall() {
			s.UninstallSteps++
			if version := step.Metadata.String("version"); version != "" && !seenVersions[version] {
				seenVersions[version] = true
				s.UninstallVersions = append(s.UninstallVersions, version)
			}
		}
		if step.Metadata.Bool("dry_run") {
			s.DryRun = true
		}
	}
	s.UninstallVersions = SortVersions(s.UninstallVersions)
	return s
}
