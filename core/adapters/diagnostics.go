package adapters

import (
	"github.com/PhilCANDIDO/ACM-repo/core/diag"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func DiagnosticsReportToWire(report diag.Report) out.DiagnosticsReport {
	return out.DiagnosticsReport{
		ExpectedMembers:   report.ExpectedMembers,
		LiveBrokers:       report.LiveBrokers,
		MissingMembers:    report.MissingMembers,
		UnexpectedBrokers: report.UnexpectedBrokers,
		Healthy:           report.Healthy,
	}
}
