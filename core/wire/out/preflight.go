package out

type CheckResult struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type PreflightReport struct {
	Results   []CheckResult `json:"results"`
	OverallGo bool          `json:"overall_go"`
}
