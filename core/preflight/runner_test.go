package preflight

import (
	"context"
	"testing"

	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/topology"
)

func testEnv() *Env {
	return &Env{
		Privileged: true,
		Topology:   topology.Defaults(),
		FS:         NewMockFilesystemInfo(),
		HTTP:       &MockHeadClient{Status: 200},
		Dialer:     NewMockBrokerDialer(),
	}
}

func passCheck(name string) NamedCheck {
	return NamedCheck{
		Name: name,
		Fn: func(ctx context.Context, env *Env) models.CheckResult {
			return models.CheckResult{Status: models.StatusPass, Detail: "ok"}
		},
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	runner := NewRunner()

	checks := []NamedCheck{passCheck("first"), passCheck("second"), passCheck("third")}
	report := runner.Run(context.Background(), checks, testEnv())

	if len(report.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(report.Results))
	}
	for i, name := range []string{"first", "second", "third"} {
		if report.Results[i].Name != name {
			t.Errorf("Expected result %d to be %q, got %q", i, name, report.Results[i].Name)
		}
	}
	if !report.OverallGo {
		t.Error("Expected overall go with all checks passing")
	}
}

func TestRun_FailBlocksGo(t *testing.T) {
	runner := NewRunner()

	checks := []NamedCheck{
		passCheck("ok"),
		{
			Name: "broken",
			Fn: func(ctx context.Context, env *Env) models.CheckResult {
				return models.CheckResult{Status: models.StatusFail, Detail: "nope"}
			},
		},
		passCheck("still-runs"),
	}

	report := runner.Run(context.Background(), checks, testEnv())

	if report.OverallGo {
		t.Error("Expected overall no-go with a failing check")
	}
	if len(report.Results) != 3 {
		t.Fatalf("Expected all 3 checks to run, got %d results", len(report.Results))
	}
	if report.Results[2].Status != models.StatusPass {
		t.Errorf("Expected check after failure to still pass, got %s", report.Results[2].Status)
	}
}

func TestRun_WarnNeverBlocksGo(t *testing.T) {
	runner := NewRunner()

	checks := []NamedCheck{
		{
			Name: "advisory",
			Fn: func(ctx context.Context, env *Env) models.CheckResult {
				return models.CheckResult{Status: models.StatusWarn, Detail: "heads up"}
			},
		},
	}

	report := runner.Run(context.Background(), checks, testEnv())

	if !report.OverallGo {
		t.Error("Expected warning not to block overall go")
	}
	if report.Results[0].Status != models.StatusWarn {
		t.Errorf("Expected warning to be surfaced, got %s", report.Results[0].Status)
	}
}

func TestRun_PanickingCheckIsContained(t *testing.T) {
	runner := NewRunner()

	checks := []NamedCheck{
		{
			Name: "explosive",
			Fn: func(ctx context.Context, env *Env) models.CheckResult {
				panic("probe blew up")
			},
		},
		passCheck("survivor"),
	}

	report := runner.Run(context.Background(), checks, testEnv())

	if len(report.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(report.Results))
	}
	if report.Results[0].Status != models.StatusFail {
		t.Errorf("Expected panicking check to fail, got %s", report.Results[0].Status)
	}
	if report.Results[0].Name != "explosive" {
		t.Errorf("Expected failed result to keep its name, got %q", report.Results[0].Name)
	}
	if report.Results[1].Status != models.StatusPass {
		t.Errorf("Expected check after panic to run and pass, got %s", report.Results[1].Status)
	}
	if report.OverallGo {
		t.Error("Expected overall no-go after a contained panic")
	}
}

func TestRun_EmptyBattery(t *testing.T) {
	runner := NewRunner()

	report := runner.Run(context.Background(), nil, testEnv())

	if len(report.Results) != 0 {
		t.Errorf("Expected no results, got %d", len(report.Results))
	}
	if !report.OverallGo {
		t.Error("Expected overall go for an empty battery")
	}
}
