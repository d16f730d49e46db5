package entities

import "github.com/juju/collections/set"

// Membership records the VLANs carried by one port.
// A VLAN is never present in Tagged and Untagged at the same time.
type Membership struct {
	Tagged   set.Ints
	Untagged set.Ints
}

// NewMembership returns a record with both sets empty
func NewMembership() *Membership {
	return &Membership{
		Tagged:   set.NewInts(),
		Untagged: set.NewInts(),
	}
}

// AddUntagged makes vlan an untagged member, dropping any tagged claim for it
func (m *Membership) AddUntagged(vlan int) {
	m.Tagged.Remove(vlan)
	m.Untagged.Add(vlan)
}

// AddTagged makes vlan a tagged member unless it is already untagged.
// It reports whether the claim was recorded.
func (m *Membership) AddTagged(vlan int) bool {
	if m.Untagged.Contains(vlan) {
		return false
	}
	m.Tagged.Add(vlan)
	return true
}

// IsEmpty returns true when the port carries no VLAN at all
func (m *Membership) IsEmpty() bool {
	return m.Tagged.IsEmpty() && m.Untagged.IsEmpty()
}
