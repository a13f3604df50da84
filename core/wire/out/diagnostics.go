package out

type DiagnosticsReport struct {
	ExpectedMembers   int      `json:"expected_members"`
	LiveBrokers       int      `json:"live_brokers"`
	MissingMembers    []string `json:"missing_members"`
	UnexpectedBrokers []string `json:"unexpected_brokers"`
	Healthy           bool     `json:"healthy"`
}
