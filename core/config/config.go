package config

import (
	"os"
	"strconv"
)

type ClusterConfig struct {
	// NodesOverride carries the raw id:host list from ACM_CLUSTER_NODES.
	// Empty means the compiled-in default topology is used.
	NodesOverride  string
	LocalNodeID    int
	MinimumMembers int

	DataDir      string
	ListenPort   int
	ClientPort   int
	PeerPort     int
	ElectionPort int

	RepoURL string
}

type AuditConfig struct {
	DBPath string
}

type HttpServerConfig struct {
	Port string
	Host string
}

type Config struct {
	Server  HttpServerConfig
	Cluster ClusterConfig
	Audit   AuditConfig
}

func getStringEnvOr(key, fallback string) string {
	if envVar, exists := os.LookupEnv(key); exists {
		return envVar
	}
	return fallback
}

func getIntEnvOr(key string, fallback int) int {
	if envVar, exists := os.LookupEnv(key); exists {
		if intVar, err := strconv.Atoi(envVar); err == nil {
			return intVar
		}
	}
	return fallback
}

func Load() *Config {
	port := getStringEnvOr("ACM_SERVER_PORT", "8080")
	host := getStringEnvOr("ACM_SERVER_HOST", "0.0.0.0")

	return &Config{
		Server: HttpServerConfig{
			Port: port,
			Host: host,
		},
		Cluster: ClusterConfig{
			NodesOverride:  getStringEnvOr("ACM_CLUSTER_NODES", ""),
			LocalNodeID:    getIntEnvOr("ACM_NODE_ID", 1),
			MinimumMembers: getIntEnvOr("ACM_MIN_MEMBERS", 3),
			DataDir:        getStringEnvOr("ACM_DATA_DIR", "/data/kafka"),
			ListenPort:     getIntEnvOr("ACM_LISTEN_PORT", 9092),
			ClientPort:     getIntEnvOr("ACM_CLIENT_PORT", 2181),
			PeerPort:       getIntEnvOr("ACM_PEER_PORT", 2888),
			ElectionPort:   getIntEnvOr("ACM_ELECTION_PORT", 3888),
			RepoURL:        getStringEnvOr("ACM_REPO_URL", ""),
		},
		Audit: AuditConfig{
			DBPath: getStringEnvOr("ACM_AUDIT_DB", "acm-audit.db"),
		},
	}
}
