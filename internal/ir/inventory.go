package ir

// InstallKind identifies how an Office deployment was installed.
type InstallKind string

const (
	InstallMSI  InstallKind = "msi"
	InstallC2R  InstallKind = "c2r"
	InstallAppx InstallKind = "appx"
)

// InventoryRecord is one detected (or synthesized) Office installation.
// Records are produced by the detection layer and are read-only to the
// planning core.
type InventoryRecord struct {
	ProductCode       string      `json:"product_code,omitempty" yaml:"product_code,omitempty"`
	ReleaseIDs        []string    `json:"release_ids,omitempty" yaml:"release_ids,omitempty"`
	DisplayName       string      `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Description       string      `json:"description,omitempty" yaml:"description,omitempty"`
	Kind              InstallKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Version           string      `json:"version,omitempty" yaml:"version,omitempty"`
	TargetVersion     string      `json:"target_version,omitempty" yaml:"target_version,omitempty"`
	MajorVersion      string      `json:"major_version,omitempty" yaml:"major_version,omitempty"`
	ProductVersion    string      `json:"product_version,omitempty" yaml:"product_version,omitempty"`
	SupportedVersions []string    `json:"supported_versions,omitempty" yaml:"supported_versions,omitempty"`
	Architecture      string      `json:"architecture,omitempty" yaml:"architecture,omitempty"`
	Culture           string      `json:"culture,omitempty" yaml:"culture,omitempty"`
	Channel           string      `json:"channel,omitempty" yaml:"channel,omitempty"`
	InstallPaths      []string    `json:"install_paths,omitempty" yaml:"install_paths,omitempty"`
	RegistryKeys      []string    `json:"registry_keys,omitempty" yaml:"registry_keys,omitempty"`
	Tags              []string    `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Synthesized marks records that were seeded by the planner or the
	// legacy translator rather than detected on the host. Executors must
	// not assume a synthesized record has an install path.
	Synthesized bool `json:"synthesized,omitempty" yaml:"synthesized,omitempty"`
}

// ArtifactRecord describes a residual filesystem path, registry key,
// scheduled task, or service reported by detection.
type ArtifactRecord struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Inventory is the detection snapshot consumed by one planning pass. The
// core treats it as immutable and derives new structures instead of
// mutating it.
type Inventory struct {
	MSI        []InventoryRecord `json:"msi,omitempty" yaml:"msi,omitempty"`
	C2R        []InventoryRecord `json:"c2r,omitempty" yaml:"c2r,omitempty"`
	Filesystem []ArtifactRecord  `json:"filesystem,omitempty" yaml:"filesystem,omitempty"`
	Registry   []ArtifactRecord  `json:"registry,omitempty" yaml:"registry,omitempty"`
	Tasks      []ArtifactRecord  `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Services   []ArtifactRecord  `json:"services,omitempty" yaml:"services,omitempty"`
}

// Counts returns the per-category record counts in a stable category order.
func (inv Inventory) Counts() map[string]int {
	return map[string]int{
		"msi":        len(inv.MSI),
		"c2r":        len(inv.C2R),
		"filesystem": len(inv.Filesystem),
		"registry":   len(inv.Registry),
		"tasks":      len(inv.Tasks),
		"services":   len(inv.Services),
	}
}

// TotalEntries returns the number of records across all categories.
func (inv Inventory) TotalEntries() int {
	total := 0
	for _, n := range inv.Counts() {
		total += n
	}
	return total
}

// Clone returns a deep enough copy for the planner to augment without
// touching the caller's snapshot.
func (inv Inventory) Clone() Inventory {
	out := inv
	out.MSI = append([]InventoryRecord(nil), inv.MSI...)
	out.C2R = append([]InventoryRecord(nil), inv.C2R...)
	out.Filesystem = append([]ArtifactRecord(nil), inv.Filesystem...)
	out.Registry = append([]ArtifactRecord(nil), inv.Registry...)
	out.Tasks = append([]ArtifactRecord(nil), inv.Tasks...)
	out.Services = append([]ArtifactRecord(nil), inv.Services...)
	return out
}
