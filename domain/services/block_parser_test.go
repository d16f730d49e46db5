package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

func TestParseBlock(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected entities.VLANBlock
	}{
		{
			name:     "tagged and untagged",
			text:     `vlan 10 name "USERS" untagged A1-A4 tagged Trk1,B2`,
			expected: entities.VLANBlock{VLAN: 10, Tagged: "Trk1,B2", Untagged: "A1-A4"},
		},
		{
			name:     "tagged only",
			text:     "vlan 20 tagged A1,A3-A5",
			expected: entities.VLANBlock{VLAN: 20, Tagged: "A1,A3-A5"},
		},
		{
			name:     "untagged only is not read as tagged",
			text:     "vlan 30 untagged A2",
			expected: entities.VLANBlock{VLAN: 30, Untagged: "A2"},
		},
		{
			name:     "untagged before tagged",
			text:     "vlan 40 untagged A2 tagged A3",
			expected: entities.VLANBlock{VLAN: 40, Tagged: "A3", Untagged: "A2"},
		},
		{
			name:     "no port lists",
			text:     `vlan 50 name "EMPTY" ip address dhcp-bootp`,
			expected: entities.VLANBlock{VLAN: 50},
		},
		{
			name:     "first declaration wins",
			text:     "vlan 60 tagged A1 vlan 70 tagged A2",
			expected: entities.VLANBlock{VLAN: 60, Tagged: "A1"},
		},
		{
			name:     "interface context keyword is not a port list",
			text:     "interface A1 untagged vlan 10",
			expected: entities.VLANBlock{VLAN: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := entities.RawBlock{Text: tt.text, FirstLine: 1, LastLine: 3}
			block, ok := ParseBlock(raw)

			assert.True(t, ok)
			tt.expected.Source = raw
			assert.Equal(t, tt.expected, block)
		})
	}
}

func TestParseBlock_MissingVLAN(t *testing.T) {
	tests := []string{
		"",
		`hostname "core-sw1" module 1 type j9729a`,
		"interface A1 name uplink",
		"vlan tagged A1",
		"vlan 99999999999999999999 tagged A1",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, ok := ParseBlock(entities.RawBlock{Text: text})
			assert.False(t, ok)
		})
	}
}
