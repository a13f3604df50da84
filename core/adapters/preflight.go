package adapters

import (
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func PreflightReportToWire(report models.PreflightReport) out.PreflightReport {
	results := make([]out.CheckResult, 0, len(report.Results))
	for _, result := range report.Results {
		results = append(results, out.CheckResult{
			Name:   result.Name,
			Status: string(result.Status),
			Detail: result.Detail,
		})
	}
	return out.PreflightReport{
		Results:   results,
		OverallGo: report.OverallGo,
	}
}
