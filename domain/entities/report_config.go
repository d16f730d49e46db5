package entities

import (
	"strconv"

	"github.com/juju/collections/set"
)

// SourceConfig describes where the switch configuration dump is read from
type SourceConfig struct {
	Type                  string `yaml:"type"`
	Path                  string `yaml:"path"`
	Host                  string `yaml:"host"`
	Port                  int    `yaml:"port"`
	Username              string `yaml:"username"`
	Password              string `yaml:"password"`
	PrivateKey            string `yaml:"private_key"`
	KnownHosts            string `yaml:"known_hosts"`
	InsecureIgnoreHostKey bool   `yaml:"insecure_ignore_host_key"`
}

// ReportConfig defines the settings for one report run
type ReportConfig struct {
	Dialect        string       `yaml:"dialect"`
	Terminator     string       `yaml:"terminator"`
	NoisePrefixes  []string     `yaml:"noise_prefixes"`
	Format         string       `yaml:"format"`
	Output         string       `yaml:"output"`
	OnlyVlans      []string     `yaml:"only_vlans"`
	Strict         bool         `yaml:"strict"`
	MetricsFile    string       `yaml:"metrics_file"`
	Baseline       string       `yaml:"baseline"`
	Source         SourceConfig `yaml:"source"`
	VerbosityLevel int          `yaml:"-"`
}

// IsDebugEnabled returns true if debug logs are enabled
func (rc ReportConfig) IsDebugEnabled() bool {
	return rc.VerbosityLevel == 1 || rc.VerbosityLevel == 3
}

// IsRawOutputEnabled returns true if raw block output is enabled
func (rc ReportConfig) IsRawOutputEnabled() bool {
	return rc.VerbosityLevel == 2 || rc.VerbosityLevel == 3
}

// VLANFilter returns the only_vlans entries as a set; an empty set means no filtering.
// Entries are expected to be validated already.
func (rc ReportConfig) VLANFilter() set.Ints {
	filter := set.NewInts()
	for _, vlan := range rc.OnlyVlans {
		if n, err := strconv.Atoi(vlan); err == nil {
			filter.Add(n)
		}
	}
	return filter
}
