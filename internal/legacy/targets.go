package legacy

import (
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// SelectMSITargets filters MSI inventory records by the invocation's
// product codes and version group. When explicitly requested codes match
// nothing, minimal synthesized records keep the intent visible to
// downstream steps instead of silently dropping it.
func SelectMSITargets(inv Invocation, inventory ir.Inventory) []ir.InventoryRecord {
	desired := make(map[string]bool, len(inv.ProductCodes))
	for _, code := range inv.ProductCodes {
		desired[strings.ToUpper(code)] = true
	}

	var selected []ir.InventoryRecord
	for _, record := range inventory.MSI {
		code := strings.ToUpper(record.ProductCode)
		if len(desired) > 0 && !desired[code] {
			continue
		}
		if inv.VersionGroup != "" && len(record.SupportedVersions) > 0 &&
			!containsFold(record.SupportedVersions, inv.VersionGroup) {
			continue
		}
		selected = append(selected, record)
	}

	if len(selected) == 0 && len(desired) > 0 {
		for _, code := range inv.ProductCodes {
			record := ir.InventoryRecord{
				ProductCode: strings.ToUpper(code),
				Kind:        ir.InstallMSI,
				Synthesized: true,
			}
			if sku, ok := catalog.MSIProductMap[record.ProductCode]; ok {
				record.DisplayName = sku.Product
				record.Version = sku.Version
				record.SupportedVersions = append([]string(nil), sku.SupportedVersions...)
				record.Architecture = sku.Architecture
			}
			selected = append(selected, record)
		}
	}
	return selected
}

// SelectC2RTargets filters Click-to-Run inventory records by the
// invocation's release identifiers and version group. Requested but
// undetected releases synthesize placeholder records, same as MSI.
func SelectC2RTargets(inv Invocation, inventory ir.Inventory) []ir.InventoryRecord {
	desired := make(map[string]bool, len(inv.ReleaseIDs))
	for _, rid := range inv.ReleaseIDs {
		if rid != "" {
			desired[strings.ToLower(rid)] = true
		}
	}
	allowAll := inv.Flags.All || len(desired) > 0

	var selected []ir.InventoryRecord
	for _, record := range inventory.C2R {
		if len(desired) > 0 && !matchesRelease(record.ReleaseIDs, desired) {
			continue
		}
		group := inferC2RGroup(record)
		if inv.VersionGroup != "" && inv.VersionGroup != "c2r" && group != "" && group != inv.VersionGroup {
			continue
		}
		if !allowAll && inv.VersionGroup == "" {
			continue
		}
		selected = append(selected, record)
	}

	if len(selected) == 0 && len(desired) > 0 {
		selected = append(selected, ir.InventoryRecord{
			ReleaseIDs:  append([]string(nil), inv.ReleaseIDs...),
			Kind:        ir.InstallC2R,
			Synthesized: true,
		})
	}
	return selected
}

func matchesRelease(releaseIDs []string, desired map[string]bool) bool {
	for _, rid := range releaseIDs {
		if desired[strings.ToLower(strings.TrimSpace(rid))] {
			return true
		}
	}
	return false
}

// inferC2RGroup derives the version group of a Click-to-Run record from
// its supported versions or installer major version.
func inferC2RGroup(record ir.InventoryRecord) string {
	for _, candidate := range record.SupportedVersions {
		if text := strings.ToLower(strings.TrimSpace(candidate)); text != "" {
			return text
		}
	}
	if record.Version != "" {
		major, _, _ := strings.Cut(strings.TrimSpace(record.Version), ".")
		if group, ok := catalog.MSIMajorVersionHints[major]; ok {
			return group
		}
	}
	return ""
}

func containsFold(items []string, want string) bool {
	for _, item := range items {
		if strings.EqualFold(strings.TrimSpace(item), want) {
			return true
		}
	}
	return false
}
