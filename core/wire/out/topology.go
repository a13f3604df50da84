package out

type NodeAddress struct {
	ID   int    `json:"id"`
	Host string `json:"host"`
}

type Topology struct {
	Source  string        `json:"source"`
	Members []NodeAddress `json:"members"`
}
