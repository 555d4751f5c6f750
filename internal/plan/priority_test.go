package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/officejanitor-io/officejanitor/internal/catalog"
	"github.com/officejanitor-io/officejanitor/internal/ir"
)

func TestMSIUninstallPriority_LegacyOrder(t *testing.T) {
	older := MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2003"})
	newer := MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2016"})
	assert.Less(t, older, newer)
}

func TestMSIUninstallPriority_AllMSIGroupsBeforeC2R(t *testing.T) {
	for _, version := range []string{"2003", "2007", "2010", "2013", "2016", "2019", "2021", "2024"} {
		msi := MSIUninstallPriority(ir.InventoryRecord{TargetVersion: version})
		for _, c2rVersion := range []string{"2016", "2019", "365"} {
			assert.Less(t, msi, C2RUninstallPriority(c2rVersion),
				"msi %s should remove before c2r %s", version, c2rVersion)
		}
	}
}

func TestMSIUninstallPriority_ModernPerpetualUsesOffice16Group(t *testing.T) {
	base := MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2016"})
	assert.Equal(t, base, MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2019"}))
	assert.Equal(t, base, MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2021"}))
	assert.Equal(t, base, MSIUninstallPriority(ir.InventoryRecord{TargetVersion: "2024"}))
}

func TestMSIUninstallPriority_MajorVersionFallback(t *testing.T) {
	record := ir.InventoryRecord{Version: "14.0.7015.1000"}
	assert.Equal(t, catalog.OffScrubPriority["2010"], MSIUninstallPriority(record))
}

func TestMSIUninstallPriority_UnknownGetsSentinel(t *testing.T) {
	assert.Equal(t, catalog.DefaultPriority, MSIUninstallPriority(ir.InventoryRecord{}))
}

func TestC2RUninstallPriority_SharedGroup(t *testing.T) {
	assert.Equal(t, C2RUninstallPriority("365"), C2RUninstallPriority("2024"))
	assert.Equal(t, catalog.OffScrubPriority["c2r"], C2RUninstallPriority("unknown"))
}
