package entities

// RawBlock is one VLAN context as emitted by the segmenter: the non-noise
// lines found between two terminators, joined with single spaces.
type RawBlock struct {
	Text      string
	FirstLine int
	LastLine  int
}

// VLANBlock is a parsed VLAN context. An empty Tagged or Untagged means the
// corresponding port list was absent from the block.
type VLANBlock struct {
	VLAN     int
	Tagged   string
	Untagged string
	Source   RawBlock
}
