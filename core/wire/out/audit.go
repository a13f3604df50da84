package out

import "time"

type AuditRecord struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	NodeID    int       `json:"node_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

type Paginated struct {
	Total int         `json:"total"`
	Items interface{} `json:"items"`
}
