package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArguments_CommonMSILine(t *testing.T) {
	inv := ParseArguments("msi", []string{
		"OffScrub10.vbs", "ALL", "/Quiet", "/NoReboot", "/Log", `C:\Logs`, "/OSE",
	})

	assert.Equal(t, "OffScrub10.vbs", inv.ScriptPath)
	assert.Equal(t, "2010", inv.VersionGroup)
	assert.True(t, inv.Flags.All)
	assert.True(t, inv.Flags.Quiet)
	assert.True(t, inv.Flags.NoReboot)
	assert.True(t, inv.Flags.OSE)
	assert.Equal(t, `C:\Logs`, inv.LogDir)
	assert.Empty(t, inv.Unknown)
}

func TestParseArguments_Aliases(t *testing.T) {
	inv := ParseArguments("msi", []string{
		"OffScrub_O16msi.vbs", "/Q", "/NORESTART", "/DETECTONLY", "/KL", "/REOS",
		"/S", "/B", "/DUS", "/KUS", "/CAR", "/FR", "/SC", "/NE", "/TR",
	})

	assert.Equal(t, "2016", inv.VersionGroup)
	assert.True(t, inv.Flags.Quiet)
	assert.True(t, inv.Flags.NoReboot)
	assert.True(t, inv.Flags.DetectOnly)
	assert.True(t, inv.Flags.KeepLicense)
	assert.True(t, inv.Flags.ReturnErrorOrSuccess)
	assert.True(t, inv.Flags.SkipShortcutDetection)
	assert.True(t, inv.Flags.Bypass)
	assert.True(t, inv.Flags.DeleteUserSettings)
	assert.True(t, inv.Flags.KeepUserSettings)
	assert.True(t, inv.Flags.ClearAddinRegistry)
	assert.True(t, inv.Flags.FastRemove)
	assert.True(t, inv.Flags.ScanComponents)
	assert.True(t, inv.Flags.NoElevate)
	assert.True(t, inv.Flags.TestRerun)
}

func TestParseArguments_GUIDTokensNormalized(t *testing.T) {
	inv := ParseArguments("msi", []string{
		"OffScrub10.vbs", "90140000-0011-0000-0000-0000000ff1ce",
	})

	require.Len(t, inv.ProductCodes, 1)
	assert.Equal(t, "{90140000-0011-0000-0000-0000000FF1CE}", inv.ProductCodes[0])
}

func TestParseArguments_MajorVersionSwitch(t *testing.T) {
	inv := ParseArguments("msi", []string{"/14"})

	assert.True(t, inv.Flags.All)
	assert.Equal(t, "2010", inv.VersionGroup)
}

func TestParseArguments_UnknownSwitchesCollected(t *testing.T) {
	inv := ParseArguments("msi", []string{"OffScrub07.vbs", "/FROBNICATE", "/ALL"})

	assert.True(t, inv.Flags.All)
	assert.Equal(t, []string{"/FROBNICATE"}, inv.Unknown)
}

func TestParseArguments_C2RFreeTextBecomesReleaseIDs(t *testing.T) {
	inv := ParseArguments("c2r", []string{
		"OffScrubC2R.vbs", "O365ProPlusRetail", "VisioProRetail", "/Quiet",
	})

	assert.Equal(t, "c2r", inv.VersionGroup)
	assert.Equal(t, []string{"O365ProPlusRetail", "VisioProRetail"}, inv.ReleaseIDs)
	assert.True(t, inv.Flags.Quiet)
}

func TestParseArguments_LogWithoutDirIsUnknown(t *testing.T) {
	inv := ParseArguments("msi", []string{"/Log"})

	assert.Empty(t, inv.LogDir)
	assert.Equal(t, []string{"/Log"}, inv.Unknown)
}

func TestInferVersionGroup(t *testing.T) {
	assert.Equal(t, "2003", InferVersionGroup(`C:\tools\OffScrub03.vbs`, ""))
	assert.Equal(t, "c2r", InferVersionGroup("offscrubc2r.vbs", ""))
	assert.Equal(t, "fallback", InferVersionGroup("unrelated.vbs", "fallback"))
	assert.Equal(t, "", InferVersionGroup("", ""))
}
