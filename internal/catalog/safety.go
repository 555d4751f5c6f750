package catalog

// FilesystemWhitelist are the only roots filesystem-cleanup steps may touch.
// Entries containing %APPDATA%/%LOCALAPPDATA% match per-user profile paths
// via suffix matching; the rest are machine paths matched by prefix after
// environment expansion.
var FilesystemWhitelist = []string{
	`C:\Program Files\Microsoft Office`,
	`C:\Program Files (x86)\Microsoft Office`,
	`C:\Program Files\Common Files\Microsoft Shared`,
	`C:\Program Files (x86)\Common Files\Microsoft Shared`,
	`C:\ProgramData\Microsoft\Office`,
	`C:\ProgramData\Microsoft\ClickToRun`,
	`C:\ProgramData\Microsoft\Windows\Start Menu\Programs\Microsoft Office`,
	`C:\ProgramData\Microsoft\Windows\Start Menu\Programs\Microsoft Office Tools`,
	`%APPDATA%\Microsoft\Office`,
	`%APPDATA%\Microsoft\Templates`,
	`%APPDATA%\Microsoft\Document Building Blocks`,
	`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office`,
	`%APPDATA%\Microsoft\Windows\Start Menu\Programs\Microsoft Office Tools`,
	`%LOCALAPPDATA%\Microsoft\Office`,
	`%LOCALAPPDATA%\Microsoft\OneNote`,
	`%APPDATA%\Microsoft\VBA`,
	`%LOCALAPPDATA%\Microsoft\VBA`,
}

// FilesystemBlacklist marks roots no cleanup step may ever touch. Checked
// independently of the whitelist; a blacklist hit always wins.
var FilesystemBlacklist = []string{
	`C:\Windows`,
	`C:\Program Files\WindowsApps`,
	`C:\ProgramData\Microsoft\Windows Defender`,
	`C:\Recovery`,
	`C:\System Volume Information`,
}

// RegistryWhitelist are the hive-prefixed key prefixes registry-cleanup
// steps may delete under, compared case-insensitively.
var RegistryWhitelist = []string{
	`HKLM\SOFTWARE\MICROSOFT\OFFICE`,
	`HKLM\SOFTWARE\WOW6432NODE\MICROSOFT\OFFICE`,
	`HKLM\SOFTWARE\POLICIES\MICROSOFT\OFFICE`,
	`HKLM\SOFTWARE\WOW6432NODE\POLICIES\MICROSOFT\OFFICE`,
	`HKLM\SOFTWARE\POLICIES\MICROSOFT\CLOUD\OFFICE`,
	`HKLM\SOFTWARE\WOW6432NODE\POLICIES\MICROSOFT\CLOUD\OFFICE`,
	`HKLM\SOFTWARE\MICROSOFT\CLICKTORUN`,
	`HKLM\SOFTWARE\MICROSOFT\OFFICESOFTWAREPROTECTIONPLATFORM`,
	`HKLM\SOFTWARE\MICROSOFT\WINDOWS NT\CURRENTVERSION\SOFTWAREPROTECTIONPLATFORM`,
	`HKCU\SOFTWARE\MICROSOFT\OFFICE`,
	`HKCU\SOFTWARE\POLICIES\MICROSOFT\OFFICE`,
	`HKCU\SOFTWARE\POLICIES\MICROSOFT\CLOUD\OFFICE`,
	`HKU\S-1-5-20\SOFTWARE\MICROSOFT\OFFICESOFTWAREPROTECTIONPLATFORM`,
	`HKU\S-1-5-20\SOFTWARE\MICROSOFT\WINDOWS NT\CURRENTVERSION\SOFTWAREPROTECTIONPLATFORM`,
}

// RegistryBlacklist blocks key prefixes regardless of the whitelist.
var RegistryBlacklist = []string{
	`HKLM\SOFTWARE\MICROSOFT\WINDOWS`,
	`HKCU\SOFTWARE\MICROSOFT\WINDOWS`,
}

// UserTemplatePaths are the locations holding user-authored templates
// (Normal.dotm and friends). Filesystem cleanup must not touch them
// without an explicit purge acknowledgment.
var UserTemplatePaths = []string{
	`%APPDATA%\Microsoft\Templates`,
	`%APPDATA%\Microsoft\Document Building Blocks`,
	`%LOCALAPPDATA%\Microsoft\Office\Templates`,
}
