// Package catalog is the single source of truth for static Office product
// data: supported versions, removal-order priorities, Click-to-Run release
// metadata, and the safety whitelists. Planning and validation read from
// here so the tables stay versioned in one place.
package catalog

// SupportedVersions lists the Office version targets the planner accepts,
// oldest first. The order doubles as the canonical sort order for version
// lists in summaries.
var SupportedVersions = []string{
	"2003", "2007", "2010", "2013", "2016", "2019", "2021", "2024", "365",
}

// SupportedVersionSet is SupportedVersions as a membership set.
var SupportedVersionSet = toSet(SupportedVersions)

// ComponentAliases resolves optional-component spellings (case-insensitive)
// to their canonical family name.
var ComponentAliases = map[string]string{
	"project":       "project",
	"msi-project":   "project",
	"projectpro":    "project",
	"projectstd":    "project",
	"visio":         "visio",
	"msi-visio":     "visio",
	"visiopro":      "visio",
	"visiostd":      "visio",
	"onenote":       "onenote",
	"msi-onenote":   "onenote",
	"onenotefree":   "onenote",
	"onenoteretail": "onenote",
}

// OptionalFamilies are the component families auto-all skips unless they
// were explicitly included.
var OptionalFamilies = map[string]bool{
	"project": true,
	"visio":   true,
	"onenote": true,
}

// OffScrubPriority is the legacy removal order inherited from the OffScrub
// scripts: older MSI generations first, Click-to-Run last. Lower sorts
// earlier.
var OffScrubPriority = map[string]int{
	"2003": 1,
	"2007": 2,
	"2010": 3,
	"2013": 4,
	"2016": 5,
	"c2r":  6,
}

// DefaultPriority is the sentinel for version groups absent from
// OffScrubPriority, one past the table's maximum so unknown groups always
// sort after known ones without colliding.
var DefaultPriority = len(OffScrubPriority) + 1

// MSIVersionGroups maps a detected Office version to its OffScrub priority
// group. Perpetual releases newer than 2016 uninstall through the 2016-era
// machinery.
var MSIVersionGroups = map[string]string{
	"2003": "2003",
	"2007": "2007",
	"2010": "2010",
	"2013": "2013",
	"2016": "2016",
	"2019": "2016",
	"2021": "2016",
	"2024": "2016",
}

// C2RVersionGroups maps Click-to-Run versions to the shared "c2r" priority
// group.
var C2RVersionGroups = map[string]string{
	"2013": "c2r",
	"2016": "c2r",
	"2019": "c2r",
	"2021": "c2r",
	"2024": "c2r",
	"365":  "c2r",
}

// MSIMajorVersionHints maps installer major version components to Office
// marketing years.
var MSIMajorVersionHints = map[string]string{
	"11": "2003",
	"12": "2007",
	"14": "2010",
	"15": "2013",
	"16": "2016",
}

// C2RReleaseHints maps substrings of Click-to-Run release identifiers and
// channel names to versions, checked in this order.
var C2RReleaseHints = []struct{ Hint, Version string }{
	{"o365", "365"},
	{"365", "365"},
	{"2024", "2024"},
	{"2021", "2021"},
	{"2019", "2019"},
	{"2016", "2016"},
}

// DefaultOfficeProcesses are the processes that block destructive runs.
var DefaultOfficeProcesses = []string{
	"winword.exe", "excel.exe", "outlook.exe", "onenote.exe", "visio.exe", "powerpnt.exe",
}

// KnownScheduledTasks are Office scheduler entries removed during cleanup.
var KnownScheduledTasks = []string{
	`Microsoft\Office\OfficeTelemetryAgentFallBack`,
	`Microsoft\Office\OfficeTelemetryAgentLogOn`,
	`Microsoft\Office\OfficeBackgroundTaskHandlerLogon`,
	`Microsoft\Office\OfficeBackgroundTaskHandlerRegistration`,
}

// KnownServices are Office background services removed during cleanup.
var KnownServices = []string{"ClickToRunSvc", "OfficeSvc", "ose", "ose64"}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
