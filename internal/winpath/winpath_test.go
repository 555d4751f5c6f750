package winpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	assert.Equal(t, `C:\Program Files\Microsoft Office`, Expand(`%ProgramFiles%\Microsoft Office`))
	assert.Equal(t, `C:\ProgramData\Microsoft`, Expand(`%ProgramData%\Microsoft`))
	// User-scoped variables stay literal.
	assert.Equal(t, `%APPDATA%\Microsoft\Templates`, Expand(`%APPDATA%\Microsoft\Templates`))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, `C:\PROGRAM FILES\MICROSOFT OFFICE`, Normalize(`c:/Program Files//Microsoft Office\`))
	assert.Equal(t, `C:\WINDOWS`, Normalize(` C:\Windows\ `))
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix(`C:\Program Files\Microsoft Office\root`, `C:\Program Files\Microsoft Office`))
	assert.True(t, HasPrefix(`c:\program files\microsoft office`, `C:\Program Files\Microsoft Office`))
	// Component-aware: "Microsoft Office 16" is not under "Microsoft Office".
	assert.False(t, HasPrefix(`C:\Program Files\Microsoft Office 16`, `C:\Program Files\Microsoft Office`))
	assert.False(t, HasPrefix(`C:\Program Files`, `C:\Program Files\Microsoft Office`))
}

func TestMatchEnvSuffix(t *testing.T) {
	path := `C:\Users\jdoe\AppData\Roaming\Microsoft\Templates\Normal.dotm`
	assert.True(t, MatchEnvSuffix(path, `\APPDATA\ROAMING\MICROSOFT\TEMPLATES`, true))
	assert.False(t, MatchEnvSuffix(`C:\AppData\Roaming\Microsoft\Templates`, `\APPDATA\ROAMING\MICROSOFT\TEMPLATES`, true))
	assert.False(t, MatchEnvSuffix(`C:\Users\jdoe\AppData\RoamingX\Microsoft\Templates`, `\APPDATA\ROAMING`, true))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, `HKLM\SOFTWARE\MICROSOFT\OFFICE`, NormalizeKey(`HKEY_LOCAL_MACHINE\Software\Microsoft\Office`))
	assert.Equal(t, `HKCU\SOFTWARE\MICROSOFT\OFFICE`, NormalizeKey(`hkcu\Software\Microsoft\Office\`))
}

func TestKeyHasPrefix(t *testing.T) {
	assert.True(t, KeyHasPrefix(`HKEY_LOCAL_MACHINE\Software\Microsoft\Office\16.0`, `HKLM\SOFTWARE\MICROSOFT\OFFICE`))
	assert.False(t, KeyHasPrefix(`HKLM\Software\Microsoft\OfficeScan`, `HKLM\SOFTWARE\MICROSOFT\OFFICE`))
	assert.False(t, KeyHasPrefix(`HKCU\Software\Microsoft\Office`, `HKLM\SOFTWARE\MICROSOFT\OFFICE`))
}

func TestMatchesEntry(t *testing.T) {
	// Machine entry with env var: matches both literal and expanded forms.
	entry := `%ProgramFiles%\Microsoft Office`
	assert.True(t, MatchesEntry(`C:\Program Files\Microsoft Office\root\Office16`, entry))
	assert.True(t, MatchesEntry(`%ProgramFiles%\Microsoft Office\root`, entry))

	// User entry: literal form or per-user expansion under \Users\.
	tmpl := `%APPDATA%\Microsoft\Templates`
	assert.True(t, MatchesEntry(`%APPDATA%\Microsoft\Templates\Normal.dotm`, tmpl))
	assert.True(t, MatchesEntry(`C:\Users\jdoe\AppData\Roaming\Microsoft\Templates`, tmpl))
	assert.False(t, MatchesEntry(`C:\Temp\Microsoft\Templates`, tmpl))
}

func TestMatchesAny(t *testing.T) {
	entries := []string{`C:\Program Files\Microsoft Office`, `%APPDATA%\Microsoft\Templates`}
	assert.True(t, MatchesAny(`C:\Program Files\Microsoft Office`, entries))
	assert.False(t, MatchesAny(`C:\Windows\System32`, entries))
}
