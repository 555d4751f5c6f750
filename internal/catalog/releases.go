package catalog

// C2RRelease describes one Click-to-Run product release identifier.
type C2RRelease struct {
	Product           string
	Family            string // "office", "project", "visio", "onenote"
	SupportedVersions []string
	DefaultVersion    string
	Architectures     []string
	Channel           string
}

// C2RProductReleases is the known Click-to-Run release catalog, keyed by
// release identifier as it appears under ProductReleaseIDs in the registry.
var C2RProductReleases = map[string]C2RRelease{
	"O365ProPlusRetail": {
		Product:           "Microsoft 365 Apps for enterprise",
		Family:            "office",
		SupportedVersions: []string{"2016", "2019", "2021", "2024", "365"},
		DefaultVersion:    "365",
		Architectures:     []string{"x86", "x64", "ARM64"},
		Channel:           "Current Channel",
	},
	"O365ProPlusVolume": {
		Product:           "Microsoft 365 Apps for enterprise (Volume)",
		Family:            "office",
		SupportedVersions: []string{"2016", "2019", "2021", "2024", "365"},
		DefaultVersion:    "365",
		Architectures:     []string{"x86", "x64", "ARM64"},
		Channel:           "Current Channel",
	},
	"O365BusinessRetail": {
		Product:           "Microsoft 365 Apps for business",
		Family:            "office",
		SupportedVersions: []string{"2016", "2019", "2021", "2024", "365"},
		DefaultVersion:    "365",
		Architectures:     []string{"x86", "x64", "ARM64"},
		Channel:           "Current Channel",
	},
	"ProPlus2019Retail": {
		Product:           "Office Professional Plus 2019 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2019"},
		DefaultVersion:    "2019",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"Standard2019Retail": {
		Product:           "Office Standard 2019 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2019"},
		DefaultVersion:    "2019",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"ProPlus2021Retail": {
		Product:           "Office Professional Plus 2021 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2021"},
		DefaultVersion:    "2021",
		Architectures:     []string{"x86", "x64", "ARM64"},
		Channel:           "Perpetual",
	},
	"Standard2021Retail": {
		Product:           "Office Standard 2021 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2021"},
		DefaultVersion:    "2021",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"ProPlus2024Retail": {
		Product:           "Office Professional Plus 2024 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2024"},
		DefaultVersion:    "2024",
		Architectures:     []string{"x86", "x64", "ARM64"},
		Channel:           "Perpetual",
	},
	"Standard2024Retail": {
		Product:           "Office Standard 2024 (C2R)",
		Family:            "office",
		SupportedVersions: []string{"2024"},
		DefaultVersion:    "2024",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"ProjectProRetail": {
		Product:           "Microsoft Project Professional (C2R)",
		Family:            "project",
		SupportedVersions: []string{"2016", "2019", "2021", "2024"},
		DefaultVersion:    "2024",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"VisioProRetail": {
		Product:           "Microsoft Visio Professional (C2R)",
		Family:            "visio",
		SupportedVersions: []string{"2016", "2019", "2021", "2024"},
		DefaultVersion:    "2024",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
	"OneNoteFreeRetail": {
		Product:           "Microsoft OneNote (C2R)",
		Family:            "onenote",
		SupportedVersions: []string{"2016", "365"},
		DefaultVersion:    "365",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Current Channel",
	},
	"MondoRetail": {
		Product:           "Office Mondo (Microsoft Internal)",
		Family:            "office",
		SupportedVersions: []string{"2013", "2016", "2019"},
		DefaultVersion:    "2019",
		Architectures:     []string{"x86", "x64"},
		Channel:           "Perpetual",
	},
}

// DefaultAutoAllC2RReleases lists the release identifiers auto-all seeds
// into the inventory when they were not detected, in seeding order.
// Optional families stay out unless the run includes them.
var DefaultAutoAllC2RReleases = []string{
	"O365ProPlusRetail",
	"O365BusinessRetail",
	"ProPlus2019Retail",
	"ProPlus2021Retail",
	"ProPlus2024Retail",
	"ProjectProRetail",
	"VisioProRetail",
	"OneNoteFreeRetail",
}

// MSIProduct describes a known MSI-based Office SKU.
type MSIProduct struct {
	Product           string
	Edition           string
	Version           string
	SupportedVersions []string
	Architecture      string
}

// MSIProductMap keys known Office MSI product codes to their SKU metadata.
var MSIProductMap = map[string]MSIProduct{
	"{90140000-0011-0000-0000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2010", Edition: "Professional Plus",
		Version: "2010", SupportedVersions: []string{"2010"}, Architecture: "x86",
	},
	"{90140000-0011-0000-1000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2010", Edition: "Professional Plus",
		Version: "2010", SupportedVersions: []string{"2010"}, Architecture: "x64",
	},
	"{90150000-0011-0000-0000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2013", Edition: "Professional Plus",
		Version: "2013", SupportedVersions: []string{"2013"}, Architecture: "x86",
	},
	"{90150000-0011-0000-1000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2013", Edition: "Professional Plus",
		Version: "2013", SupportedVersions: []string{"2013"}, Architecture: "x64",
	},
	"{90160000-0011-0000-0000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2016", Edition: "Professional Plus",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x86",
	},
	"{90160000-0011-0000-1000-0000000FF1CE}": {
		Product: "Microsoft Office Professional Plus 2016", Edition: "Professional Plus",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x64",
	},
	"{90160000-0051-0000-0000-0000000FF1CE}": {
		Product: "Microsoft Visio Professional 2016", Edition: "Visio Professional",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x86",
	},
	"{90160000-0051-0000-1000-0000000FF1CE}": {
		Product: "Microsoft Visio Professional 2016", Edition: "Visio Professional",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x64",
	},
	"{90160000-003B-0000-0000-0000000FF1CE}": {
		Product: "Microsoft Project Professional 2016", Edition: "Project Professional",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x86",
	},
	"{90160000-003B-0000-1000-0000000FF1CE}": {
		Product: "Microsoft Project Professional 2016", Edition: "Project Professional",
		Version: "2016", SupportedVersions: []string{"2016", "2019", "2021", "2024"}, Architecture: "x64",
	},
}
