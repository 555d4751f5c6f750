package ir

// Options is the user/CLI intent snapshot for one planning pass. Every
// recognized option is an explicit field; surrounding layers drop unknown
// keys before constructing it. The core never mutates an Options value it
// was handed, it copies first.
type Options struct {
	// Mode is the free-text mode string ("diagnose", "cleanup-only",
	// "auto-all", "target:2016", "interactive"). Boolean selectors below
	// take precedence over it.
	Mode        string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Diagnose    bool   `json:"diagnose,omitempty" yaml:"diagnose,omitempty"`
	CleanupOnly bool   `json:"cleanup_only,omitempty" yaml:"cleanup_only,omitempty"`
	AutoAll     bool   `json:"auto_all,omitempty" yaml:"auto_all,omitempty"`

	// Target is a single explicit target version; Targets carries
	// additional versions (entries may themselves be comma-separated).
	Target  string   `json:"target,omitempty" yaml:"target,omitempty"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`

	// Include lists optional component families ("project", "visio",
	// "onenote") to pull into auto-all runs.
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`

	DryRun        bool `json:"dry_run" yaml:"dry_run"`
	Force         bool `json:"force,omitempty" yaml:"force,omitempty"`
	KeepTemplates bool `json:"keep_templates,omitempty" yaml:"keep_templates,omitempty"`
	NoLicense     bool `json:"no_license,omitempty" yaml:"no_license,omitempty"`
}

// ExecutionDirectives are the normalized behavior flags derived from a
// legacy OffScrub invocation. Created once per invocation, immutable after.
type ExecutionDirectives struct {
	Reruns                int  `json:"reruns" yaml:"reruns"`
	DryRun                bool `json:"dry_run" yaml:"dry_run"`
	KeepLicense           bool `json:"keep_license" yaml:"keep_license"`
	SkipShortcutDetection bool `json:"skip_shortcut_detection" yaml:"skip_shortcut_detection"`
	Offline               bool `json:"offline" yaml:"offline"`
	Quiet                 bool `json:"quiet" yaml:"quiet"`
	NoReboot              bool `json:"no_reboot" yaml:"no_reboot"`
	DeleteUserSettings    bool `json:"delete_user_settings" yaml:"delete_user_settings"`
	KeepUserSettings      bool `json:"keep_user_settings" yaml:"keep_user_settings"`
	ClearAddinRegistry    bool `json:"clear_addin_registry" yaml:"clear_addin_registry"`
	RemoveVBA             bool `json:"remove_vba" yaml:"remove_vba"`
	ReturnErrorOrSuccess  bool `json:"return_error_or_success" yaml:"return_error_or_success"`
}
