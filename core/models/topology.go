package models

import "sort"

// TopologySource records where a topology came from. Kept for
// diagnostics and audit logging only, never used in decisions.
type TopologySource string

const (
	SourceDefault  TopologySource = "default"
	SourceOverride TopologySource = "override"
)

// NodeAddress is one cluster member: a 1-based numeric id and the
// IPv4 address the other members reach it on.
type NodeAddress struct {
	ID   int    `json:"id"`
	Host string `json:"host"`
}

// Topology is the full cluster membership. Immutable after
// construction; only read by the artifact generator and the
// preflight checker.
type Topology struct {
	Members map[int]NodeAddress `json:"members"`
	Source  TopologySource      `json:"source"`
}

func (t Topology) Size() int {
	return len(t.Members)
}

// Lookup returns the member with the given id, if present.
func (t Topology) Lookup(id int) (NodeAddress, bool) {
	member, exists := t.Members[id]
	return member, exists
}

// Ordered returns the members sorted by ascending id. Config files
// generated on different nodes for the same topology must be
// byte-identical, so every consumer iterates through this.
func (t Topology) Ordered() []NodeAddress {
	members := make([]NodeAddress, 0, len(t.Members))
	for _, member := range t.Members {
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})
	return members
}

// HasGaps reports whether the ids are not dense in 1..Size().
// Gaps are tolerated and only warned about.
func (t Topology) HasGaps() bool {
	for id := 1; id <= len(t.Members); id++ {
		if _, exists := t.Members[id]; !exists {
			return true
		}
	}
	return false
}
