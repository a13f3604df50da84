// Package topology resolves and validates cluster membership from an
// operator-supplied override string or the compiled-in defaults.
package topology

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// DefaultMinimumMembers is the replication quorum this system is
// sized for. Smaller staging topologies are possible via the
// resolver's MinimumMembers knob, never silently.
const DefaultMinimumMembers = 3

// entryPattern matches one id:host entry. Octet range is checked
// numerically afterwards; the regexp only pins the shape.
var entryPattern = regexp.MustCompile(`^([1-9][0-9]*):([0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3})$`)

type Resolver struct {
	MinimumMembers int
}

func NewResolver() *Resolver {
	return &Resolver{MinimumMembers: DefaultMinimumMembers}
}

// Defaults returns the compiled-in three-node topology used when no
// override is supplied. Pre-validated, never re-checked at runtime.
func Defaults() models.Topology {
	return models.Topology{
		Source: models.SourceDefault,
		Members: map[int]models.NodeAddress{
			1: {ID: 1, Host: "172.20.2.113"},
			2: {ID: 2, Host: "172.20.2.114"},
			3: {ID: 3, Host: "172.20.2.115"},
		},
	}
}

// Resolve produces a validated topology from the override string, or
// returns defaults unchanged when the override is absent. The
// override grammar is entry(,entry)* with entry = id:ipv4.
//
// Exact id:host repeats are tolerated (first occurrence kept) so that
// idempotent re-invocations with a concatenated environment do not
// fail; the same id mapped to two different hosts is rejected.
func (r *Resolver) Resolve(override string, defaults models.Topology) (models.Topology, error) {
	if strings.TrimSpace(override) == "" {
		return defaults, nil
	}

	members := make(map[int]models.NodeAddress)

	for _, rawEntry := range strings.Split(override, ",") {
		entry := strings.TrimSpace(rawEntry)

		matches := entryPattern.FindStringSubmatch(entry)
		if matches == nil {
			return models.Topology{}, &models.MalformedEntryError{Entry: entry}
		}

		id, err := strconv.Atoi(matches[1])
		if err != nil {
			return models.Topology{}, &models.MalformedEntryError{Entry: entry}
		}

		host := matches[2]
		if !validIPv4(host) {
			return models.Topology{}, &models.MalformedEntryError{Entry: entry}
		}

		if existing, exists := members[id]; exists {
			if existing.Host == host {
				continue
			}
			return models.Topology{}, &models.DuplicateIDError{
				ID:          id,
				Existing:    existing.Host,
				Conflicting: host,
			}
		}

		members[id] = models.NodeAddress{ID: id, Host: host}
	}

	if len(members) < r.MinimumMembers {
		return models.Topology{}, &models.InsufficientMembersError{
			Count:   len(members),
			Minimum: r.MinimumMembers,
		}
	}

	resolved := models.Topology{Members: members, Source: models.SourceOverride}

	if resolved.HasGaps() {
		log.Printf("[TopologyResolver] Warning: node ids are not dense in 1..%d, proceeding anyway", resolved.Size())
	}

	return resolved, nil
}

// validIPv4 checks each dotted-quad group numerically. The regexp
// already guarantees four groups of 1-3 digits.
func validIPv4(host string) bool {
	for _, octet := range strings.Split(host, ".") {
		value, err := strconv.Atoi(octet)
		if err != nil || value > 255 {
			return false
		}
	}
	return true
}

// ConnectionString renders host1:port,host2:port,... ordered by
// ascending id, so the same topology yields byte-identical output on
// every node.
func ConnectionString(t models.Topology, port int) string {
	endpoints := make([]string, 0, t.Size())
	for _, member := range t.Ordered() {
		endpoints = append(endpoints, fmt.Sprintf("%s:%d", member.Host, port))
	}
	return strings.Join(endpoints, ",")
}
