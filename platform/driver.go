package platform

import (
	"fmt"
	"strings"

	"github.com/carlosrabelo/vlanaudit/platform/procurve"
)

// Dialect defines how a switch family lays out VLAN contexts in its configuration dump.
type Dialect interface {
	Name() string
	Detect(lines []string) bool

	// Terminator is the line that closes a VLAN context
	Terminator() string
	// NoisePrefixes lists line prefixes that never carry membership
	NoisePrefixes() []string
}

// AutoDialect selects a dialect by inspecting the dump
const AutoDialect = "auto"

var registry = []Dialect{
	procurve.New(),
}

// Get returns a dialect by normalized name.
func Get(name string) (Dialect, error) {
	normalized := normalizeName(name)
	for _, dialect := range registry {
		if dialect.Name() == normalized {
			return dialect, nil
		}
	}
	return nil, fmt.Errorf("unknown config dialect: %s", name)
}

// Available returns all registered dialects.
func Available() []Dialect {
	out := make([]Dialect, len(registry))
	copy(out, registry)
	return out
}

// Detect tries all registered dialects until one matches.
func Detect(lines []string) (Dialect, error) {
	for _, dialect := range registry {
		if dialect.Detect(lines) {
			return dialect, nil
		}
	}
	return nil, fmt.Errorf("unable to detect config dialect")
}

// Resolve returns the named dialect, running detection for "auto" and falling
// back to the first registered dialect when nothing matches.
func Resolve(name string, lines []string) Dialect {
	if normalizeName(name) != AutoDialect {
		if dialect, err := Get(name); err == nil {
			return dialect
		}
	}
	if dialect, err := Detect(lines); err == nil {
		return dialect
	}
	return registry[0]
}

// Names returns the registered dialect names plus "auto".
func Names() []string {
	names := make([]string, 0, len(registry)+1)
	for _, dialect := range registry {
		names = append(names, dialect.Name())
	}
	return append(names, AutoDialect)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
