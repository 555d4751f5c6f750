package guid

import (
	"fmt"
	"strings"
)

// productTypeCodes maps the 4-hex-digit type code embedded in an Office
// product GUID (the second segment) to the product family. Sourced from
// the GetProductType tables in the OffScrub scripts.
var productTypeCodes = map[string]string{
	"0000": "Unknown/Other",
	"000F": "Professional Plus (Volume)",
	"0011": "Professional Plus (Retail)",
	"0012": "Standard",
	"0013": "Home and Business",
	"0014": "Home and Student",
	"0015": "Access",
	"0016": "Excel",
	"0017": "SharePoint Designer",
	"0018": "PowerPoint",
	"0019": "Publisher",
	"001A": "Outlook",
	"001B": "Word",
	"001C": "Access Runtime",
	"001F": "Proofing Tools",
	"002E": "Ultimate",
	"002F": "Home and Student (Retail)",
	"003A": "Project Standard",
	"003B": "Project Professional",
	"0044": "InfoPath",
	"0051": "Visio Professional",
	"0052": "Visio Premium",
	"0053": "Visio Standard",
	"0057": "Visio",
	"00A1": "OneNote",
	"00A3": "OneNote (Retail)",
	"00A7": "Calendar Printing Assistant",
	"00A9": "InterConnect",
	"00AF": "PowerPoint Viewer",
	"00B0": "Save as PDF",
	"00B1": "Save as XPS",
	"00B2": "Save as PDF/XPS",
	"00BA": "Groove",
	"00CA": "Small Business Basics",
	"00E0": "Outlook Connector",
	"00FD": "Lync Basic",
	"012B": "Lync",
	"012C": "Lync (Retail)",
	"0131": "Lync Trial",
	"0135": "Lync Basic",
}

// officeMajorVersions holds the installer major versions embedded in the
// head segment of an Office product code (9XYY0000, YY is the version:
// 90140000 is Office 2010, 90160000 is 2016 and later).
var officeMajorVersions = map[string]bool{
	"11": true, // Office 2003
	"12": true, // Office 2007
	"14": true, // Office 2010
	"15": true, // Office 2013
	"16": true, // Office 2016+
}

// TypeCode extracts the 4-hex-digit product type code from an Office
// product GUID. The second return is false for malformed input.
func TypeCode(productCode string) (string, bool) {
	seg, err := segments(productCode)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(seg[1]), true
}

// Classify names the Office product family a product code belongs to.
// Unknown codes yield an explicit "Unknown" label, never an error.
func Classify(productCode string) string {
	code, ok := TypeCode(productCode)
	if !ok {
		return "Unknown"
	}
	if name, ok := productTypeCodes[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (%s)", code)
}

// IsOfficeProductCode reports whether the trailing signature segment
// carries Microsoft's reserved Office vendor signature (...0FF1CE or the
// transposed F1CE0 variant seen on some SKUs).
func IsOfficeProductCode(productCode string) bool {
	seg, err := segments(productCode)
	if err != nil {
		return false
	}
	tail := strings.ToUpper(seg[4])
	return strings.HasSuffix(tail, "FF1CE") || strings.HasSuffix(tail, "F1CE0")
}

// OfficeMajorVersion extracts the installer major version ("11".."16")
// from an Office product code. The second return is false when the code
// is not an Office product or the version is unrecognized.
func OfficeMajorVersion(productCode string) (string, bool) {
	if !IsOfficeProductCode(productCode) {
		return "", false
	}
	seg, err := segments(productCode)
	if err != nil {
		return "", false
	}
	head := strings.ToUpper(seg[0])
	major := head[2:4]
	if officeMajorVersions[major] {
		return major, true
	}
	return "", false
}
