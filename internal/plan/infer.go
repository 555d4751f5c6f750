package plan

import (
	"sort"
	"strings"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// InferVersion derives the Office version of a record through an ordered
// rule chain. Direct version fields always outrank heuristic hints: exact
// supported-version match first, then the major component, then tags,
// then release-identifier substrings, then channel substrings, and
// finally the first raw direct value as a fallback.
func InferVersion(record ir.InventoryRecord) string {
	fallback := ""
	for _, value := range []string{
		record.TargetVersion, record.Version, record.MajorVersion, record.ProductVersion,
	} {
		if value == "" {
			continue
		}
		if catalog.SupportedVersionSet[value] {
			return value
		}
		major, _, _ := strings.Cut(value, ".")
		if catalog.SupportedVersionSet[major] {
			return major
		}
		if fallback == "" {
			fallback = value
		}
	}

	for _, tag := range record.Tags {
		if catalog.SupportedVersionSet[tag] {
			return tag
		}
	}

	for _, release := range record.ReleaseIDs {
		lower := strings.ToLower(release)
		for _, hint := range catalog.C2RReleaseHints {
			if strings.Contains(lower, hint.Hint) {
				return hint.Version
			}
		}
	}

	if record.Channel != "" {
		lower := strings.ToLower(record.Channel)
		for _, hint := range catalog.C2RReleaseHints {
			if strings.Contains(lower, hint.Hint) {
				return hint.Version
			}
		}
	}

	return fallback
}

// DiscoverVersions collects the inferred versions present in the MSI and
// C2R inventory, sorted canonically.
func DiscoverVersions(inv ir.Inventory) []string {
	seen := make(map[string]bool)
	var versions []string
	for _, records := range [][]ir.InventoryRecord{inv.MSI, inv.C2R} {
		for _, record := range records {
			if v := InferVersion(record); v != "" && !seen[v] {
				seen[v] = true
				versions = append(versions, v)
			}
		}
	}
	return SortVersions(versions)
}

// FilterByTarget keeps the records whose inferred version is in targets.
// An empty target list keeps everything.
func FilterByTarget(records []ir.InventoryRecord, targets []string) []ir.InventoryRecord {
	if len(targets) == 0 {
		return append([]ir.InventoryRecord(nil), records...)
	}
	allowed := make(map[string]bool, len(targets))
	for _, t := range targets {
		allowed[t] = true
	}
	var filtered []ir.InventoryRecord
	for _, record := range records {
		if v := InferVersion(record); v != "" && allowed[v] {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SortVersions orders version strings by their position in the supported
// list, with unknown values last in lexical order.
func SortVersions(versions []string) []string {
	order := make(map[string]int, len(catalog.SupportedVersions))
	for i, v := range catalog.SupportedVersions {
		order[v] = i
	}
	out := append([]string(nil), versions...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := order[out[i]]
		rj, jKnown := order[out[j]]
		if !iKnown {
			ri = len(order)
		}
		if !jKnown {
			rj = len(order)
		}
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}
