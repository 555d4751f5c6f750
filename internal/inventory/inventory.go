// Package inventory loads detection snapshots from disk so plans can be
// built and replayed without a live detection pass.
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/officejanitor-io/officejanitor/internal/guid"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// Load reads a snapshot file, choosing the decoder by extension. Files
// ending in .json decode as JSON; everything else decodes as YAML, which
// also accepts JSON input.
func Load(path string) (ir.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ir.Inventory{}, fmt.Errorf("reading inventory snapshot: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return Parse(data, json.Unmarshal)
	}
	return Parse(data, yaml.Unmarshal)
}

// Parse decodes a snapshot with the supplied unmarshal function and
// normalizes it. Unknown keys in the snapshot are ignored.
func Parse(data []byte, unmarshal func([]byte, any) error) (ir.Inventory, error) {
	var inv ir.Inventory
	if err := unmarshal(data, &inv); err != nil {
		return ir.Inventory{}, fmt.Errorf("decoding inventory snapshot: %w", err)
	}
	return Normalize(inv)
}

// Normalize canonicalizes product codes and release identifiers on a
// decoded inventory. Records with malformed product codes are rejected so
// a corrupt snapshot cannot slip past GUID validation downstream.
func Normalize(inv ir.Inventory) (ir.Inventory, error) {
	out := inv.Clone()
	for i := range out.MSI {
		record := &out.MSI[i]
		if record.Kind == "" {
			record.Kind = ir.InstallMSI
		}
		if record.ProductCode == "" {
			continue
		}
		normalized, err := guid.Normalize(record.ProductCode)
		if err != nil {
			return ir.Inventory{}, fmt.Errorf("msi record %d: product code %q: %w", i, record.ProductCode, err)
		}
		record.ProductCode = normalized
	}
	for i := range out.C2R {
		record := &out.C2R[i]
		if record.Kind == "" {
			record.Kind = ir.InstallC2R
		}
		releases := make([]string, len(record.ReleaseIDs))
		for j, release := range record.ReleaseIDs {
			releases[j] = strings.ToLower(strings.TrimSpace(release))
		}
		record.ReleaseIDs = releases
	}
	return out, nil
}
