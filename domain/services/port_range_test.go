package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPorts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "range", input: "A3-A5", expected: []string{"A3", "A4", "A5"}},
		{name: "single port", input: "A7", expected: []string{"A7"}},
		{name: "degenerate range", input: "A5-A3", expected: []string{}},
		{name: "mixed tokens", input: "A1,B2-B3", expected: []string{"A1", "B2", "B3"}},
		{name: "end without prefix", input: "A3-5", expected: []string{"A3", "A4", "A5"}},
		{name: "trunk range", input: "Trk1-Trk2", expected: []string{"Trk1", "Trk2"}},
		{name: "single kept verbatim", input: "A01", expected: []string{"A01"}},
		{name: "range drops leading zeros", input: "A08-A10", expected: []string{"A8", "A9", "A10"}},
		{name: "empty tokens skipped", input: "A1,,A2,", expected: []string{"A1", "A2"}},
		{name: "empty list", input: "", expected: []string{}},
		{name: "order preserved", input: "B1,A2-A3,A1", expected: []string{"B1", "A2", "A3", "A1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, err := ExpandPorts(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ports)
		})
	}
}

func TestExpandPorts_BadRanges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
	}{
		{name: "no prefix", input: "1-4", token: "1-4"},
		{name: "three endpoints", input: "A1-A2-A3", token: "A1-A2-A3"},
		{name: "prefix mismatch", input: "A1,A3-B5", token: "A3-B5"},
		{name: "letters only", input: "A-B", token: "A-B"},
		{name: "open range", input: "A1-", token: "A1-"},
		{name: "end at max int", input: "A0-A9223372036854775807", token: "A0-A9223372036854775807"},
		{name: "end past port bound", input: "A1-70000", token: "A1-70000"},
		{name: "span too wide", input: "A1-A5000", token: "A1-A5000"},
		{name: "end overflows int", input: "A1-A99999999999999999999", token: "A1-A99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, err := ExpandPorts(tt.input)
			require.Error(t, err)
			assert.Nil(t, ports)
			assert.True(t, errors.Is(err, ErrBadPortRange), "expected ErrBadPortRange, got %v", err)

			var rangeErr *PortRangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.token, rangeErr.Token)
		})
	}
}
