package plan

import (
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// AugmentAutoAllInventory seeds Click-to-Run entries for catalog releases
// that were not detected, so a "remove everything" run also clears
// installations whose registry traces detection missed. Optional families
// (Project, Visio, OneNote) stay out unless explicitly included. The
// input is not modified; the augmented copy is returned.
func AugmentAutoAllInventory(inv ir.Inventory, includeComponents []string) ir.Inventory {
	out := inv.Clone()

	include := make(map[string]bool, len(includeComponents))
	for _, component := range includeComponents {
		include[strings.ToLower(component)] = true
	}

	existing := make(map[string]bool)
	for _, record := range out.C2R {
		for _, rid := range record.ReleaseIDs {
			if text := strings.ToLower(strings.TrimSpace(rid)); text != "" {
				existing[text] = true
			}
		}
	}

	for _, releaseID := range catalog.DefaultAutoAllC2RReleases {
		release, ok := catalog.C2RProductReleases[releaseID]
		if !ok {
			continue
		}
		if catalog.OptionalFamilies[release.Family] && !include[release.Family] {
			continue
		}
		if existing[strings.ToLower(releaseID)] {
			continue
		}
		out.C2R = append(out.C2R, seedC2RRecord(releaseID, release))
		existing[strings.ToLower(releaseID)] = true
	}

	// Known scheduler and service residue is cleaned even when detection
	// reported nothing, matching the legacy scripts.
	if len(out.Tasks) == 0 {
		for _, task := range catalog.KnownScheduledTasks {
			out.Tasks = append(out.Tasks, ir.ArtifactRecord{Name: task})
		}
	}
	if len(out.Services) == 0 {
		for _, service := range catalog.KnownServices {
			out.Services = append(out.Services, ir.ArtifactRecord{Name: service})
		}
	}
	return out
}

// seedC2RRecord builds a synthesized inventory record with enough
// metadata (release id, default version, architecture) for safety
// validation and execution to treat it like a detected one.
func seedC2RRecord(releaseID string, release catalog.C2RRelease) ir.InventoryRecord {
	architecture := "x64"
	if len(release.Architectures) > 0 {
		architecture = release.Architectures[0]
	}
	version := release.DefaultVersion
	if version == "" && len(release.SupportedVersions) > 0 {
		version = release.SupportedVersions[len(release.SupportedVersions)-1]
	}
	tags := []string{}
	if version != "" {
		tags = append(tags, version)
	}
	return ir.InventoryRecord{
		ReleaseIDs:        []string{releaseID},
		DisplayName:       release.Product,
		Description:       "Uninstall " + release.Product,
		Kind:              ir.InstallC2R,
		Version:           version,
		SupportedVersions: append([]string(nil), release.SupportedVersions...),
		Architecture:      architecture,
		Channel:           release.Channel,
		Tags:              tags,
		Synthesized:       true,
	}
}
