package legacy

import (
	"fmt"

	"github.com/officejanitor-io/officejanitor/internal/ir"
)

// addinVersionKeys are the per-version Office registry roots holding
// add-in and VBA registrations.
var addinVersionKeys = []string{"11.0", "12.0", "14.0", "15.0", "16.0"}

var shortcutPaths = []string{
	`%PROGRAMDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office`,
	`%PROGRAMDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office Tools`,
	`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office`,
	`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office Tools`,
	`%APPDATA%\Microsoft\Internet Explorer\Quick Launch\User Pinned\TaskBar`,
	`%APPDATA%\Microsoft\Internet Explorer\Quick Launch\User Pinned\StartMenu`,
}

var userSettingsPaths = []string{
	`%APPDATA%\Microsoft\Office`,
	`%LOCALAPPDATA%\Microsoft\Office`,
	`%APPDATA%\Microsoft\Templates`,
	`%LOCALAPPDATA%\Microsoft\Office\Templates`,
}

var vbaPaths = []string{
	`%APPDATA%\Microsoft\VBA`,
	`%LOCALAPPDATA%\Microsoft\VBA`,
}

// DeriveDirectives maps recognized legacy flags onto normalized execution
// directives. TESTRERUN implies a second pass; everything else defaults to
// a single quiet-off run. KeepUserSettings always wins over
// DeleteUserSettings when both were supplied.
func DeriveDirectives(inv Invocation, dryRun bool) ir.ExecutionDirectives {
	reruns := 1
	if inv.Flags.TestRerun {
		reruns = 2
	}
	return ir.ExecutionDirectives{
		Reruns:                reruns,
		DryRun:                dryRun,
		KeepLicense:           inv.Flags.KeepLicense,
		SkipShortcutDetection: inv.Flags.SkipShortcutDetection,
		Offline:               inv.Flags.Offline,
		Quiet:                 inv.Flags.Quiet,
		NoReboot:              inv.Flags.NoReboot,
		DeleteUserSettings:    inv.Flags.DeleteUserSettings && !inv.Flags.KeepUserSettings,
		KeepUserSettings:      inv.Flags.KeepUserSettings,
		ClearAddinRegistry:    inv.Flags.ClearAddinRegistry,
		RemoveVBA:             inv.Flags.RemoveVBA,
		ReturnErrorOrSuccess:  inv.Flags.ReturnErrorOrSuccess,
	}
}

// CleanupSet is the optional cleanup work implied by legacy flags,
// expressed as data for the executor rather than performed here.
type CleanupSet struct {
	ShortcutPaths     []string
	UserSettingsPaths []string
	VBAPaths          []string
	AddinRegistryKeys []string
	VBARegistryKeys   []string
}

// CleanupOperations expands execution directives into the concrete path
// and registry-key lists the legacy scripts would have cleaned.
func CleanupOperations(d ir.ExecutionDirectives) CleanupSet {
	set := CleanupSet{}
	if !d.SkipShortcutDetection {
		set.ShortcutPaths = append(set.ShortcutPaths, shortcutPaths...)
	}
	if d.DeleteUserSettings && !d.KeepUserSettings {
		set.UserSettingsPaths = append(set.UserSettingsPaths, userSettingsPaths...)
	}
	if d.ClearAddinRegistry {
		for _, version := range addinVersionKeys {
			set.AddinRegistryKeys = append(set.AddinRegistryKeys,
				fmt.Sprintf(`HKCU\Software\Microsoft\Office\%s\Addins`, version),
				fmt.Sprintf(`HKLM\SOFTWARE\Microsoft\Office\%s\Addins`, version),
				fmt.Sprintf(`HKLM\SOFTWARE\WOW6432Node\Microsoft\Office\%s\Addins`, version),
			)
		}
	}
	if d.RemoveVBA {
		for _, version := range addinVersionKeys {
			set.VBARegistryKeys = append(set.VBARegistryKeys,
				fmt.Sprintf(`HKCU\Software\Microsoft\Office\%s\VBA`, version),
				fmt.Sprintf(`HKLM\SOFTWARE\Microsoft\Office\%s\VBA`, version),
				fmt.Sprintf(`HKLM\SOFTWARE\WOW6432Node\Microsoft\Office\%s\VBA`, version),
			)
		}
		set.VBAPaths = append(set.VBAPaths, vbaPaths...)
	}
	return set
}
