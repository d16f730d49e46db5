package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v3"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
	"github.com/carlosrabelo/vlanaudit/platform"
)

var logger = loggo.GetLogger("vlanaudit.config")

// Formats lists the accepted report formats
var Formats = []string{"csv", "padded-csv", "table", "yaml", "json"}

// Overrides carries command-line values; non-zero fields take precedence over the file
type Overrides struct {
	Input          string
	Output         string
	Format         string
	Dialect        string
	MetricsFile    string
	Baseline       string
	Strict         bool
	VerbosityLevel int
}

func validateDialect(dialect string) error {
	for _, name := range platform.Names() {
		if dialect == name {
			return nil
		}
	}
	return errors.Errorf("dialect %s is invalid, must be one of %s", dialect, strings.Join(platform.Names(), ", "))
}

func validateFormat(format string) error {
	for _, name := range Formats {
		if format == name {
			return nil
		}
	}
	return errors.Errorf("format %s is invalid, must be one of %s", format, strings.Join(Formats, ", "))
}

func validateVLAN(vlan string, context string) error {
	vlanNum, err := strconv.Atoi(vlan)
	if err != nil {
		return errors.Errorf("invalid VLAN number in %s: %s must be a number", context, vlan)
	}
	if vlanNum < 1 || vlanNum > 4094 {
		return errors.Errorf("invalid VLAN number in %s: %s must be between 1 and 4094", context, vlan)
	}
	return nil
}

// Load reads the YAML file (when yamlFile is not empty), applies the
// overrides and validates the result.
func Load(yamlFile string, overrides Overrides) (*entities.ReportConfig, error) {
	var cfg entities.ReportConfig
	if yamlFile != "" {
		data, err := os.ReadFile(yamlFile)
		if err != nil {
			return nil, errors.Annotatef(err, "failed to read YAML file %s", yamlFile)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
			return nil, errors.Annotate(err, "failed to parse YAML")
		}
	}

	applyOverrides(&cfg, overrides)
	if err := finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyOverrides(cfg *entities.ReportConfig, overrides Overrides) {
	if overrides.Input != "" {
		cfg.Source = entities.SourceConfig{Type: "file", Path: overrides.Input}
	}
	if overrides.Output != "" {
		cfg.Output = overrides.Output
	}
	if overrides.Format != "" {
		cfg.Format = overrides.Format
	}
	if overrides.Dialect != "" {
		cfg.Dialect = overrides.Dialect
	}
	if overrides.MetricsFile != "" {
		cfg.MetricsFile = overrides.MetricsFile
	}
	if overrides.Baseline != "" {
		cfg.Baseline = overrides.Baseline
	}
	if overrides.Strict {
		cfg.Strict = true
	}
	cfg.VerbosityLevel = overrides.VerbosityLevel
}

func finalize(cfg *entities.ReportConfig) error {
	cfg.Dialect = strings.ToLower(strings.TrimSpace(cfg.Dialect))
	if cfg.Dialect == "" {
		cfg.Dialect = platform.AutoDialect
	}
	if err := validateDialect(cfg.Dialect); err != nil {
		return err
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if cfg.Format == "" {
		cfg.Format = "csv"
	}
	if err := validateFormat(cfg.Format); err != nil {
		return err
	}

	cfg.Terminator = strings.TrimSpace(cfg.Terminator)
	if len(cfg.NoisePrefixes) > 0 {
		prefixes := make([]string, 0, len(cfg.NoisePrefixes))
		for _, prefix := range cfg.NoisePrefixes {
			if trimmed := strings.TrimSpace(prefix); trimmed != "" {
				prefixes = append(prefixes, trimmed)
			}
		}
		cfg.NoisePrefixes = prefixes
	}

	seen := make(map[string]bool)
	onlyVlans := make([]string, 0, len(cfg.OnlyVlans))
	for i, vlan := range cfg.OnlyVlans {
		if err := validateVLAN(vlan, "only_vlans["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
		if !seen[vlan] {
			seen[vlan] = true
			onlyVlans = append(onlyVlans, vlan)
		}
	}
	cfg.OnlyVlans = onlyVlans

	if err := finalizeSource(&cfg.Source); err != nil {
		return err
	}

	logger.Debugf("final configuration: Dialect=%s, Format=%s, Source=%s, OnlyVlans=%v, Strict=%v, VerbosityLevel=%d",
		cfg.Dialect, cfg.Format, cfg.Source.Type, cfg.OnlyVlans, cfg.Strict, cfg.VerbosityLevel)
	return nil
}

func finalizeSource(src *entities.SourceConfig) error {
	src.Type = strings.ToLower(strings.TrimSpace(src.Type))
	if src.Type == "" {
		src.Type = "file"
	}
	src.Path = strings.TrimSpace(src.Path)
	if src.Path == "" {
		return errors.New("source path is required (set source.path or pass --input)")
	}

	switch src.Type {
	case "file":
		return nil
	case "ssh":
	default:
		return errors.Errorf("source type %s is invalid, must be 'file' or 'ssh'", src.Type)
	}

	if src.Host == "" {
		return errors.New("source host is required for ssh sources")
	}
	if src.Username == "" {
		return errors.New("source username is required for ssh sources")
	}
	if src.Password == "" && src.PrivateKey == "" {
		return errors.New("source password or private_key is required for ssh sources")
	}
	if src.Port == 0 {
		src.Port = 22
		logger.Debugf("no port defined for source host %s, using 22", src.Host)
	} else if src.Port < 1 || src.Port > 65535 {
		return errors.Errorf("source port %d is invalid, must be between 1 and 65535", src.Port)
	}
	if src.KnownHosts == "" && !src.InsecureIgnoreHostKey {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Annotate(err, "cannot locate known_hosts")
		}
		src.KnownHosts = filepath.Join(home, ".ssh", "known_hosts")
	}
	return nil
}
