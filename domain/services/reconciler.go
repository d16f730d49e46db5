package services

import (
	"fmt"

	"github.com/carlosrabelo/vlanaudit/domain/entities"
)

// Reconciler folds parsed VLAN blocks into one membership record per port.
// Untagged membership always wins over a tagged claim for the same port and
// VLAN, whichever block declared it first.
type Reconciler struct {
	ports map[string]*entities.Membership
}

// NewReconciler creates an empty reconciler
func NewReconciler() *Reconciler {
	return &Reconciler{
		ports: make(map[string]*entities.Membership),
	}
}

// Apply folds one block into the port map. Both port lists are expanded
// before any record changes, so a bad range leaves the map untouched.
func (r *Reconciler) Apply(block entities.VLANBlock) error {
	tagged, err := ExpandPorts(block.Tagged)
	if err != nil {
		return fmt.Errorf("tagged ports of VLAN %d: %w", block.VLAN, err)
	}
	untagged, err := ExpandPorts(block.Untagged)
	if err != nil {
		return fmt.Errorf("untagged ports of VLAN %d: %w", block.VLAN, err)
	}

	for _, port := range untagged {
		r.membership(port).AddUntagged(block.VLAN)
	}
	for _, port := range tagged {
		if !r.membership(port).AddTagged(block.VLAN) {
			logger.Debugf("port %s already untagged in VLAN %d, ignoring tagged claim", port, block.VLAN)
		}
	}
	return nil
}

// Ports returns the accumulated port map. The reconciler must not be used afterwards.
func (r *Reconciler) Ports() map[string]*entities.Membership {
	ports := r.ports
	r.ports = nil
	return ports
}

func (r *Reconciler) membership(port string) *entities.Membership {
	key := entities.CanonicalPort(port)
	record, exists := r.ports[key]
	if !exists {
		record = entities.NewMembership()
		r.ports[key] = record
	}
	return record
}
