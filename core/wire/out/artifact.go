package out

type Artifact struct {
	Kind    string   `json:"kind"`
	LocalID int      `json:"local_id"`
	Lines   []string `json:"lines"`
	// Rendered is the serialized properties-file text; Checksum is its
	// SHA-256, recorded in the audit trail for drift comparison.
	Rendered string `json:"rendered"`
	Checksum string `json:"checksum"`
}
