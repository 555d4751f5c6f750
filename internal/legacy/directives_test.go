package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDirectives_Defaults(t *testing.T) {
	d := DeriveDirectives(Invocation{}, false)

	assert.Equal(t, 1, d.Reruns)
	assert.False(t, d.DryRun)
	assert.False(t, d.DeleteUserSettings)
}

func TestDeriveDirectives_TestRerunImpliesSecondPass(t *testing.T) {
	inv := Invocation{Flags: FlagSet{TestRerun: true}}
	d := DeriveDirectives(inv, true)

	assert.Equal(t, 2, d.Reruns)
	assert.True(t, d.DryRun)
}

func TestDeriveDirectives_KeepUserSettingsWins(t *testing.T) {
	inv := Invocation{Flags: FlagSet{DeleteUserSettings: true, KeepUserSettings: true}}
	d := DeriveDirectives(inv, false)

	assert.False(t, d.DeleteUserSettings)
	assert.True(t, d.KeepUserSettings)
}

func TestCleanupOperations_ShortcutsOnByDefault(t *testing.T) {
	set := CleanupOperations(DeriveDirectives(Invocation{}, false))

	assert.NotEmpty(t, set.ShortcutPaths)
	assert.Empty(t, set.UserSettingsPaths)
	assert.Empty(t, set.AddinRegistryKeys)
	assert.Empty(t, set.VBAPaths)
}

func TestCleanupOperations_SkipShortcutDetection(t *testing.T) {
	inv := Invocation{Flags: FlagSet{SkipShortcutDetection: true}}
	set := CleanupOperations(DeriveDirectives(inv, false))

	assert.Empty(t, set.ShortcutPaths)
}

func TestCleanupOperations_AddinAndVBAKeysPerVersion(t *testing.T) {
	inv := Invocation{Flags: FlagSet{ClearAddinRegistry: true, RemoveVBA: true}}
	set := CleanupOperations(DeriveDirectives(inv, false))

	// Three hives per tracked Office version.
	assert.Len(t, set.AddinRegistryKeys, 3*5)
	assert.Len(t, set.VBARegistryKeys, 3*5)
	assert.Contains(t, set.AddinRegistryKeys, `HKCU\Software\Microsoft\Office\16.0\Addins`)
	assert.NotEmpty(t, set.VBAPaths)
}

func TestCleanupOperations_DeleteUserSettings(t *testing.T) {
	inv := Invocation{Flags: FlagSet{DeleteUserSettings: true}}
	set := CleanupOperations(DeriveDirectives(inv, false))

	assert.Contains(t, set.UserSettingsPaths, `%APPDATA%\Microsoft\Office`)
}
