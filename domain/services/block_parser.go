package services

import (
	"regexp"
	"strconv"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// portListPattern matches comma separated tokens such as A1, Trk2 or A3-A5.
const portListPattern = `[A-Za-z]*\d+(?:[,-][A-Za-z]*\d+)*`

var (
	vlanDeclRegex      = regexp.MustCompile(`\bvlan\s+(\d+)\b`)
	taggedPortsRegex   = regexp.MustCompile(`(?:^|\s)tagged\s+(` + portListPattern + `)`)
	untaggedPortsRegex = regexp.MustCompile(`(?:^|\s)untagged\s+(` + portListPattern + `)`)
)

// ParseBlock extracts the VLAN id and the tagged and untagged port lists from
// one block. It returns false when the block declares no VLAN id.
func ParseBlock(raw entities.RawBlock) (entities.VLANBlock, bool) {
	match := vlanDeclRegex.FindStringSubmatch(raw.Text)
	if match == nil {
		return entities.VLANBlock{}, false
	}
	vlan, err := strconv.Atoi(match[1])
	if err != nil {
		return entities.VLANBlock{}, false
	}

	block := entities.VLANBlock{VLAN: vlan, Source: raw}
	if tagged := taggedPortsRegex.FindStringSubmatch(raw.Text); tagged != nil {
		block.Tagged = tagged[1]
	}
	if untagged := untaggedPortsRegex.FindStringSubmatch(raw.Text); untagged != nil {
		block.Untagged = untagged[1]
	}
	return block, true
}
