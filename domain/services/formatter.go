package services

import (
	"strconv"
	"strings"

	"github.com/juju/collections/set"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// FormatRows renders the port map as rows sorted by port prefix, then port number.
// A non-empty filter keeps only the listed VLANs and drops ports left without any.
func FormatRows(ports map[string]*entities.Membership, filter set.Ints) []entities.ReportRow {
	names := make([]string, 0, len(ports))
	for name := range ports {
		names = append(names, name)
	}
	entities.SortPorts(names)

	rows := make([]entities.ReportRow, 0, len(names))
	for _, name := range names {
		summary := Summary(ports[name], filter)
		if summary == "" && !filter.IsEmpty() {
			continue
		}
		rows = append(rows, entities.ReportRow{Port: name, VLANs: summary})
	}
	return rows
}

// Summary composes "T: <vlans>" and "U: <vlans>" for one port, tagged first
func Summary(m *entities.Membership, filter set.Ints) string {
	segments := make([]string, 0, 2)
	if tagged := filtered(m.Tagged, filter); len(tagged) > 0 {
		segments = append(segments, "T: "+joinVLANs(tagged))
	}
	if untagged := filtered(m.Untagged, filter); len(untagged) > 0 {
		segments = append(segments, "U: "+joinVLANs(untagged))
	}
	return strings.Join(segments, " ")
}

func filtered(vlans set.Ints, filter set.Ints) []int {
	if filter.IsEmpty() {
		return vlans.SortedValues()
	}
	return vlans.Intersection(filter).SortedValues()
}

func joinVLANs(vlans []int) string {
	parts := make([]string, len(vlans))
	for i, vlan := range vlans {
		parts[i] = strconv.Itoa(vlan)
	}
	return strings.Join(parts, ", ")
}
