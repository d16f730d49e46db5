package entities

import (
	"regexp"
	"sort"
	"strconv"
)

var portIDRegex = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)

// PortKey is the presentation sort key of a port identifier
type PortKey struct {
	Prefix string
	Number int
}

// KeyOf derives the sort key of a port identifier such as "A12" or "Trk3".
// Identifiers that are not <letters><digits> use the whole string as prefix
// and -1 as number.
func KeyOf(port string) PortKey {
	match := portIDRegex.FindStringSubmatch(port)
	if match == nil {
		return PortKey{Prefix: port, Number: -1}
	}
	number, err := strconv.Atoi(match[2])
	if err != nil {
		return PortKey{Prefix: port, Number: -1}
	}
	return PortKey{Prefix: match[1], Number: number}
}

// Less orders by prefix lexicographically, then by numeric suffix
func (k PortKey) Less(other PortKey) bool {
	if k.Prefix != other.Prefix {
		return k.Prefix < other.Prefix
	}
	return k.Number < other.Number
}

// CanonicalPort returns the identifier with leading zeros dropped from its
// numeric suffix, so "A01" and "A1" name the same port.
func CanonicalPort(port string) string {
	key := KeyOf(port)
	if key.Number < 0 {
		return port
	}
	return key.Prefix + strconv.Itoa(key.Number)
}

// SortPorts orders port identifiers by prefix, then number, falling back to
// plain string order for ids with the same key.
func SortPorts(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ki, kj := KeyOf(names[i]), KeyOf(names[j])
		if ki == kj {
			return names[i] < names[j]
		}
		return ki.Less(kj)
	})
}
