package entities

// ReportRow is one line of the port report
type ReportRow struct {
	Port  string `yaml:"port" json:"port"`
	VLANs string `yaml:"vlans" json:"vlans"`
}

// FaultKind classifies why a block did not contribute to the report
type FaultKind string

const (
	FaultMissingVLAN  FaultKind = "missing-vlan"
	FaultBadPortRange FaultKind = "bad-port-range"
)

// Fault describes a skipped block with enough context to fix the source config
type Fault struct {
	Kind  FaultKind
	Block RawBlock
	Err   error
}
