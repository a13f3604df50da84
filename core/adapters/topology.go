package adapters

import (
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func TopologyToWire(t models.Topology) out.Topology {
	members := make([]out.NodeAddress, 0, t.Size())
	for _, member := range t.Ordered() {
		members = append(members, out.NodeAddress{
			ID:   member.ID,
			Host: member.Host,
		})
	}
	return out.Topology{
		Source:  string(t.Source),
		Members: members,
	}
}
