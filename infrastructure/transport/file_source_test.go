package transport

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFileSource_Lines(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "switch.cfg")
	content := "vlan 10\n   tagged A1-A2\nexit\r\n\n"
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	source := NewFileSource(tmpFile)
	lines, err := source.Lines()
	if err != nil {
		t.Fatalf("Lines() failed: %v", err)
	}

	expected := []string{"vlan 10", "   tagged A1-A2", "exit\r", ""}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Lines() = %q, want %q", lines, expected)
	}
	if source.Describe() != tmpFile {
		t.Errorf("Describe() = %s, want %s", source.Describe(), tmpFile)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "empty.cfg")
	if err := os.WriteFile(tmpFile, nil, 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	lines, err := NewFileSource(tmpFile).Lines()
	if err != nil {
		t.Fatalf("Lines() failed: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", lines)
	}
}

func TestFileSource_Stdin(t *testing.T) {
	source := NewFileSource(StdinPath)
	source.stdin = strings.NewReader("vlan 20\nexit\n")

	lines, err := source.Lines()
	if err != nil {
		t.Fatalf("Lines() failed: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"vlan 20", "exit"}) {
		t.Errorf("Unexpected lines %q", lines)
	}
	if source.Describe() != "standard input" {
		t.Errorf("Unexpected description %s", source.Describe())
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.cfg")
	_, err := NewFileSource(missing).Lines()
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to open") {
		t.Errorf("Unexpected error: %v", err)
	}
}
