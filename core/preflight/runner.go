// Package preflight runs the ordered battery of host checks that
// gates an installation step. The runner never aborts: every probe
// failure, including a panic, becomes a CheckResult so the operator
// gets the full picture in one pass.
package preflight

import (
	"context"
	"fmt"
	"log"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
)

// Env carries the host and topology facts the checks probe, plus the
// injected capability providers.
type Env struct {
	// Privileged is supplied by the caller instead of probed live so
	// the check stays testable.
	Privileged bool
	Topology   models.Topology

	FS     FilesystemInfo
	HTTP   HeadClient
	Dialer BrokerDialer
}

// NamedCheck pairs a stable check name with its probe. Names appear
// in reports and audit records; execution order is the slice order.
type NamedCheck struct {
	Name string
	Fn   func(ctx context.Context, env *Env) models.CheckResult
}

type Runner struct{}

func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the checks strictly in order and aggregates their
// results. A panicking probe is converted to a fail result and the
// remaining checks still run.
func (r *Runner) Run(ctx context.Context, checks []NamedCheck, env *Env) models.PreflightReport {
	results := make([]models.CheckResult, 0, len(checks))
	overallGo := true

	for _, check := range checks {
		result := r.runOne(ctx, check, env)

		log.Printf("[Preflight] %s: %s (%s)", result.Name, result.Status, result.Detail)

		if result.Status == models.StatusFail {
			overallGo = false
		}
		results = append(results, result)
	}

	return models.PreflightReport{Results: results, OverallGo: overallGo}
}

func (r *Runner) runOne(ctx context.Context, check NamedCheck, env *Env) (result models.CheckResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = models.CheckResult{
				Name:   check.Name,
				Status: models.StatusFail,
				Detail: fmt.Sprintf("check panicked: %v", recovered),
			}
		}
	}()

	result = check.Fn(ctx, env)
	result.Name = check.Name
	return result
}
