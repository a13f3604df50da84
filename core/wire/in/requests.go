package in

// TopologyRequest previews a topology resolution. An empty override
// falls back to the server's configured override, then to defaults.
type TopologyRequest struct {
	Override string `json:"override,omitempty"`
}

type BrokerArtifactRequest struct {
	Override         string   `json:"override,omitempty"`
	LocalID          int      `json:"local_id"`
	DataDir          string   `json:"data_dir,omitempty"`
	ListenPort       int      `json:"listen_port,omitempty"`
	CoordinationPort int      `json:"coordination_port,omitempty"`
	AdvertisedHost   string   `json:"advertised_host,omitempty"`
	ExtraProperties  []string `json:"extra_properties,omitempty"`
}

type CoordinationArtifactRequest struct {
	Override     string `json:"override,omitempty"`
	LocalID      int    `json:"local_id"`
	DataDir      string `json:"data_dir,omitempty"`
	ClientPort   int    `json:"client_port,omitempty"`
	PeerPort     int    `json:"peer_port,omitempty"`
	ElectionPort int    `json:"election_port,omitempty"`
}

type PreflightRequest struct {
	Override     string `json:"override,omitempty"`
	Privileged   bool   `json:"privileged"`
	DataDir      string `json:"data_dir,omitempty"`
	MinimumBytes uint64 `json:"minimum_bytes,omitempty"`
	RepoURL      string `json:"repo_url,omitempty"`
	BrokerPort   int    `json:"broker_port,omitempty"`
	TimeoutMs    int    `json:"timeout_ms,omitempty"`
}
