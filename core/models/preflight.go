package models

// CheckStatus is the outcome class of one preflight check.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusWarn CheckStatus = "warn"
	StatusFail CheckStatus = "fail"
)

// CheckResult is the outcome of a single named preflight check.
type CheckResult struct {
	Name   string      `json:"name"`
	Status CheckStatus `json:"status"`
	Detail string      `json:"detail"`
}

// PreflightReport aggregates check results in execution order.
// OverallGo is true iff no result failed; warnings never block.
type PreflightReport struct {
	Results   []CheckResult `json:"results"`
	OverallGo bool          `json:"overall_go"`
}
