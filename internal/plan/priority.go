package plan

import (
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// MSIUninstallPriority maps an MSI record to its removal-order sort key.
// Older Office generations sort before newer ones and every MSI group
// sorts before Click-to-Run, mirroring the legacy OffScrub sequence.
// Records whose version group is not in the priority table get the
// lowest-priority sentinel so the ordering stays total.
func MSIUninstallPriority(record ir.InventoryRecord) int {
	group := resolveMSIPriorityGroup(record)
	if group == "" {
		version := InferVersion(record)
		if mapped, ok := catalog.MSIVersionGroups[version]; ok {
			group = mapped
		} else {
			group = version
		}
	}
	if priority, ok := catalog.OffScrubPriority[group]; ok {
		return priority
	}
	return catalog.DefaultPriority
}

// C2RUninstallPriority maps a Click-to-Run version to its removal-order
// sort key. All C2R versions share one group at the end of the table.
func C2RUninstallPriority(version string) int {
	group, ok := catalog.C2RVersionGroups[version]
	if !ok {
		group = "c2r"
	}
	return catalog.OffScrubPriority[group]
}

func resolveMSIPriorityGroup(record ir.InventoryRecord) string {
	candidates := collectVersionCandidates(record)
	for _, candidate := range candidates {
		if group, ok := catalog.MSIVersionGroups[candidate]; ok {
			return group
		}
	}
	for _, candidate := range candidates {
		major, _, _ := strings.Cut(candidate, ".")
		alias, ok := catalog.MSIMajorVersionHints[major]
		if !ok {
			continue
		}
		group := alias
		if mapped, ok := catalog.MSIVersionGroups[alias]; ok {
			group = mapped
		}
		if _, ok := catalog.OffScrubPriority[group]; ok {
			return group
		}
	}
	return ""
}

func collectVersionCandidates(record ir.InventoryRecord) []string {
	var candidates []string
	add := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" || contains(candidates, value) {
			return
		}
		candidates = append(candidates, value)
	}
	add(InferVersion(record))
	add(record.TargetVersion)
	add(record.Version)
	add(record.MajorVersion)
	add(record.ProductVersion)
	for _, supported := range record.SupportedVersions {
		add(supported)
	}
	return candidates
}
