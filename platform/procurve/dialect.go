package procurve

import (
	"regexp"
	"strings"
)

const dialectName = "procurve"

var (
	headerRegex   = regexp.MustCompile(`(?i)^;\s*(?:J\d{4}[A-Z]?|[A-Z]{1,2}\d{3,4}[A-Z]?)\s+Configuration Editor`)
	vlanLineRegex = regexp.MustCompile(`^vlan\s+\d+\s*$`)
	vendorHints   = []string{"procurve", "aruba", "hp switch", "hpe switch"}
)

// Dialect describes HP ProCurve / Aruba AOS-S configuration dumps.
type Dialect struct{}

// New creates a new ProCurve dialect instance.
func New() *Dialect {
	return &Dialect{}
}

// Name returns the canonical dialect identifier.
func (d *Dialect) Name() string {
	return dialectName
}

// Terminator closes every vlan and interface context.
func (d *Dialect) Terminator() string {
	return "exit"
}

// NoisePrefixes returns prefixes of lines removing membership, which the report ignores.
func (d *Dialect) NoisePrefixes() []string {
	return []string{"no untagged"}
}

// Detect looks for the configuration editor header, a vendor hint in the
// leading comments, or vlan contexts closed by exit.
func (d *Dialect) Detect(lines []string) bool {
	sawVLAN := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ";") {
			if headerRegex.MatchString(trimmed) || hasVendorHint(trimmed) {
				return true
			}
			continue
		}
		if vlanLineRegex.MatchString(trimmed) {
			sawVLAN = true
			continue
		}
		if sawVLAN && trimmed == d.Terminator() {
			return true
		}
	}
	return false
}

func hasVendorHint(comment string) bool {
	lower := strings.ToLower(comment)
	for _, hint := range vendorHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
