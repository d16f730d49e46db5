package services

import (
	"testing"

	"github.com/juju/collections/set"
	"github.com/stretchr/testify/assert"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

func membership(tagged, untagged []int) *entities.Membership {
	m := entities.NewMembership()
	for _, vlan := range untagged {
		m.AddUntagged(vlan)
	}
	for _, vlan := range tagged {
		m.AddTagged(vlan)
	}
	return m
}

func TestFormatRows_SortOrder(t *testing.T) {
	ports := map[string]*entities.Membership{
		"A10":  membership([]int{10}, nil),
		"B1":   membership([]int{10}, nil),
		"A2":   membership([]int{10}, nil),
		"Trk1": membership([]int{10}, nil),
		"A9":   membership([]int{10}, nil),
	}

	rows := FormatRows(ports, nil)

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Port)
	}
	assert.Equal(t, []string{"A2", "A9", "A10", "B1", "Trk1"}, names)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		record   *entities.Membership
		expected string
	}{
		{name: "tagged only", record: membership([]int{20, 10, 100}, nil), expected: "T: 10, 20, 100"},
		{name: "untagged only", record: membership(nil, []int{5}), expected: "U: 5"},
		{name: "both", record: membership([]int{30, 20}, []int{10}), expected: "T: 20, 30 U: 10"},
		{name: "neither", record: entities.NewMembership(), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summary(tt.record, nil))
		})
	}
}

func TestFormatRows_EmptySummaryKept(t *testing.T) {
	rows := FormatRows(map[string]*entities.Membership{"A1": entities.NewMembership()}, nil)

	assert.Equal(t, []entities.ReportRow{{Port: "A1", VLANs: ""}}, rows)
}

func TestFormatRows_VLANFilter(t *testing.T) {
	ports := map[string]*entities.Membership{
		"A1": membership([]int{10, 20}, []int{30}),
		"A2": membership([]int{40}, nil),
		"A3": membership(nil, []int{20}),
	}

	rows := FormatRows(ports, set.NewInts(20, 30))

	assert.Equal(t, []entities.ReportRow{
		{Port: "A1", VLANs: "T: 20 U: 30"},
		{Port: "A3", VLANs: "U: 20"},
	}, rows)
}
