// Package artifact renders broker and coordination configuration
// payloads from a resolved topology. Rendering is pure: no file I/O,
// byte-identical output for identical input.
package artifact

import (
	"fmt"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/topology"
)

// Defaults applied when an option is left zero. They match the fixed
// ports the install scripts provisioned.
const (
	DefaultDataDir          = "/data/kafka"
	DefaultListenPort       = 9092
	DefaultCoordinationPort = 2181
	DefaultClientPort       = 2181
	DefaultPeerPort         = 2888
	DefaultElectionPort     = 3888
)

type BrokerOptions struct {
	DataDir    string
	ListenPort int
	// CoordinationPort is the client port of the coordination service,
	// used to build the zookeeper.connect endpoint list.
	CoordinationPort int
	// AdvertisedHost overrides the resolved host in
	// advertised.listeners. Empty means the topology host is used.
	AdvertisedHost string
	// ExtraProperties are appended verbatim after the generated lines.
	ExtraProperties []string
}

type CoordinationOptions struct {
	DataDir      string
	ClientPort   int
	PeerPort     int
	ElectionPort int
}

// RenderBrokerConfig renders the broker properties for localID.
// Replication factor is min(3, members) and min.insync.replicas is
// one below it (floor 1), so a reduced staging topology degrades
// instead of demanding replicas that cannot exist.
func RenderBrokerConfig(t models.Topology, localID int, opts BrokerOptions) (models.GeneratedArtifact, error) {
	local, exists := t.Lookup(localID)
	if !exists {
		return models.GeneratedArtifact{}, &models.UnknownLocalIDError{LocalID: localID}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	listenPort := opts.ListenPort
	if listenPort == 0 {
		listenPort = DefaultListenPort
	}
	coordinationPort := opts.CoordinationPort
	if coordinationPort == 0 {
		coordinationPort = DefaultCoordinationPort
	}
	advertisedHost := opts.AdvertisedHost
	if advertisedHost == "" {
		advertisedHost = local.Host
	}

	replicationFactor := replicationFactorFor(t)
	minInSync := replicationFactor - 1
	if minInSync < 1 {
		minInSync = 1
	}

	body := []string{
		fmt.Sprintf("broker.id=%d", localID),
		fmt.Sprintf("listeners=PLAINTEXT://0.0.0.0:%d", listenPort),
		fmt.Sprintf("advertised.listeners=PLAINTEXT://%s:%d", advertisedHost, listenPort),
		fmt.Sprintf("zookeeper.connect=%s", topology.ConnectionString(t, coordinationPort)),
		fmt.Sprintf("log.dirs=%s", dataDir),
		fmt.Sprintf("default.replication.factor=%d", replicationFactor),
		fmt.Sprintf("min.insync.replicas=%d", minInSync),
	}
	body = append(body, opts.ExtraProperties...)

	return models.GeneratedArtifact{
		Kind:    models.BrokerConfig,
		LocalID: localID,
		Body:    body,
	}, nil
}

// RenderCoordinationConfig renders the coordination-service config
// for localID: local data dir and client port, then one
// server.N=host:peerPort:electionPort line per member, ascending,
// including the local node itself.
func RenderCoordinationConfig(t models.Topology, localID int, opts CoordinationOptions) (models.GeneratedArtifact, error) {
	if _, exists := t.Lookup(localID); !exists {
		return models.GeneratedArtifact{}, &models.UnknownLocalIDError{LocalID: localID}
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	clientPort := opts.ClientPort
	if clientPort == 0 {
		clientPort = DefaultClientPort
	}
	peerPort := opts.PeerPort
	if peerPort == 0 {
		peerPort = DefaultPeerPort
	}
	electionPort := opts.ElectionPort
	if electionPort == 0 {
		electionPort = DefaultElectionPort
	}

	body := []string{
		fmt.Sprintf("dataDir=%s", dataDir),
		fmt.Sprintf("clientPort=%d", clientPort),
	}
	for _, member := range t.Ordered() {
		body = append(body, fmt.Sprintf("server.%d=%s:%d:%d", member.ID, member.Host, peerPort, electionPort))
	}

	return models.GeneratedArtifact{
		Kind:    models.CoordinationConfig,
		LocalID: localID,
		Body:    body,
	}, nil
}

func replicationFactorFor(t models.Topology) int {
	if t.Size() < 3 {
		return t.Size()
	}
	return 3
}
