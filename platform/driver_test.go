package platform

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "procurve lowercase", input: "procurve", expected: "procurve"},
		{name: "procurve uppercase", input: "PROCURVE", expected: "procurve"},
		{name: "procurve mixed case", input: "ProCurve", expected: "procurve"},
		{name: "auto mixed case", input: "AuTo", expected: "auto"},
		{name: "with spaces", input: "  procurve  ", expected: "procurve"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeName(tt.input)
			if result != tt.expected {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		expectError bool
		expectName  string
	}{
		{name: "procurve dialect", dialect: "procurve", expectName: "procurve"},
		{name: "uppercase dialect", dialect: "PROCURVE", expectName: "procurve"},
		{name: "invalid dialect", dialect: "invalid", expectError: true},
		{name: "auto is not a dialect", dialect: "auto", expectError: true},
		{name: "empty dialect", dialect: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, err := Get(tt.dialect)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for dialect %s", tt.dialect)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error for dialect %s: %v", tt.dialect, err)
				return
			}

			if dialect.Name() != tt.expectName {
				t.Errorf("Expected dialect name %s, got %s", tt.expectName, dialect.Name())
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	dialects := Available()

	if len(dialects) == 0 {
		t.Fatal("Available() should return at least one dialect")
	}
	if dialects[0].Name() != "procurve" {
		t.Errorf("Expected procurve as first dialect, got %s", dialects[0].Name())
	}

	dialects[0] = nil
	if Available()[0] == nil {
		t.Error("Available() must return a copy of the registry")
	}
}

func TestDetect(t *testing.T) {
	dialect, err := Detect([]string{"vlan 10", "untagged A1", "exit"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dialect.Name() != "procurve" {
		t.Errorf("Expected procurve, got %s", dialect.Name())
	}

	dialect, err = Detect([]string{"interface Gi1/0/1", " switchport access vlan 10"})
	if err == nil {
		t.Error("Expected error when no dialect matches")
	}
	if dialect != nil {
		t.Error("Expected nil dialect when detection fails")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		dialect  string
		lines    []string
		expected string
	}{
		{name: "explicit", dialect: "procurve", expected: "procurve"},
		{name: "auto detected", dialect: "auto", lines: []string{"vlan 1", "exit"}, expected: "procurve"},
		{name: "auto fallback", dialect: "auto", lines: []string{"nothing here"}, expected: "procurve"},
		{name: "unknown falls back", dialect: "bogus", expected: "procurve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Resolve(tt.dialect, tt.lines).Name(); result != tt.expected {
				t.Errorf("Resolve(%q) = %s, want %s", tt.dialect, result, tt.expected)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if names[len(names)-1] != "auto" {
		t.Errorf("Expected auto as last name, got %v", names)
	}
}
