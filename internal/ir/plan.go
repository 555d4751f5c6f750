package ir

// StepCategory classifies a plan step. The set is closed; consumers switch
// over it exhaustively and treat anything else as a malformed plan.
type StepCategory string

const (
	CategoryContext           StepCategory = "context"
	CategoryDetect            StepCategory = "detect"
	CategoryMSIUninstall      StepCategory = "msi-uninstall"
	CategoryC2RUninstall      StepCategory = "c2r-uninstall"
	CategoryLicensingCleanup  StepCategory = "licensing-cleanup"
	CategoryTaskCleanup       StepCategory = "task-cleanup"
	CategoryServiceCleanup    StepCategory = "service-cleanup"
	CategoryFilesystemCleanup StepCategory = "filesystem-cleanup"
	CategoryRegistryCleanup   StepCategory = "registry-cleanup"
)

// Known reports whether the category belongs to the closed set.
func (c StepCategory) Known() bool {
	switch c {
	case CategoryContext, CategoryDetect,
		CategoryMSIUninstall, CategoryC2RUninstall,
		CategoryLicensingCleanup, CategoryTaskCleanup, CategoryServiceCleanup,
		CategoryFilesystemCleanup, CategoryRegistryCleanup:
		return true
	}
	return false
}

// Actionable reports whether steps of this category mutate the host.
// Context and detect steps are informational.
func (c StepCategory) Actionable() bool {
	switch c {
	case CategoryContext, CategoryDetect:
		return false
	case CategoryMSIUninstall, CategoryC2RUninstall,
		CategoryLicensingCleanup, CategoryTaskCleanup, CategoryServiceCleanup,
		CategoryFilesystemCleanup, CategoryRegistryCleanup:
		return true
	}
	return false
}

// Uninstall reports whether the category removes an installed product.
func (c StepCategory) Uninstall() bool {
	return c == CategoryMSIUninstall || c == CategoryC2RUninstall
}

// Metadata is the free-form metadata mapping attached to a plan step.
type Metadata map[string]any

// Bool reads a boolean metadata value; absent keys read as false.
func (m Metadata) Bool(key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}

// Has reports whether the key is present at all.
func (m Metadata) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// String reads a string metadata value; absent keys read as "".
func (m Metadata) String(key string) string {
	v, _ := m[key].(string)
	return v
}

// Strings reads a string-slice metadata value, tolerating []any payloads
// that arrive from decoded plan files.
func (m Metadata) Strings(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// PlanStep is one identified, categorized unit of work. Step order within
// a Plan encodes execution order.
type PlanStep struct {
	ID          string       `json:"id" yaml:"id"`
	Category    StepCategory `json:"category" yaml:"category"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	DependsOn   []string     `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Metadata    Metadata     `json:"metadata" yaml:"metadata"`
}

// Plan is an ordered sequence of steps. The first step is always the
// context step carrying plan-wide metadata.
type Plan struct {
	Steps []PlanStep `json:"steps" yaml:"steps"`
}

// Context returns the plan's context step, if present.
func (p Plan) Context() (*PlanStep, bool) {
	for i := range p.Steps {
		if p.Steps[i].Category == CategoryContext {
			return &p.Steps[i], true
		}
	}
	return nil, false
}
