// Package diag cross-checks a provisioned cluster against its
// resolved topology: every member must show up in the live broker
// metadata, and no broker outside the topology may be present.
package diag

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// BrokerInfo is one broker as reported by the cluster's metadata.
type BrokerInfo struct {
	ID   int    `json:"id"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Report is the outcome of one cross-check. Healthy is true iff the
// live broker set and the topology agree exactly.
type Report struct {
	ExpectedMembers   int      `json:"expected_members"`
	LiveBrokers       int      `json:"live_brokers"`
	MissingMembers    []string `json:"missing_members"`
	UnexpectedBrokers []string `json:"unexpected_brokers"`
	Healthy           bool     `json:"healthy"`
}

// CrossCheck fetches live broker metadata and compares the broker
// hosts against the topology members. Comparison is by host only:
// the metadata advertises the listener port, not the id scheme the
// installer assigned.
func CrossCheck(ctx context.Context, client MetadataClient, t models.Topology) (Report, error) {
	brokers, err := client.Brokers(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to fetch broker metadata: %w", err)
	}

	liveHosts := make(map[string]bool, len(brokers))
	for _, broker := range brokers {
		liveHosts[broker.Host] = true
	}

	expectedHosts := make(map[string]bool, t.Size())
	var missing []string
	for _, member := range t.Ordered() {
		expectedHosts[member.Host] = true
		if !liveHosts[member.Host] {
			missing = append(missing, fmt.Sprintf("node %d (%s)", member.ID, member.Host))
		}
	}

	var unexpected []string
	for _, broker := range brokers {
		if !expectedHosts[broker.Host] {
			unexpected = append(unexpected, fmt.Sprintf("broker %d (%s:%d)", broker.ID, broker.Host, broker.Port))
		}
	}
	sort.Strings(unexpected)

	report := Report{
		ExpectedMembers:   t.Size(),
		LiveBrokers:       len(brokers),
		MissingMembers:    missing,
		UnexpectedBrokers: unexpected,
		Healthy:           len(missing) == 0 && len(unexpected) == 0,
	}

	log.Printf("[Diag] Cross-check: %d expected, %d live, %d missing, %d unexpected",
		report.ExpectedMembers, report.LiveBrokers, len(missing), len(unexpected))

	return report, nil
}
