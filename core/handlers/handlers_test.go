package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PhilCANDIDO/ACM-repo/core/config"
	"github.com/PhilCANDIDO/ACM-repo/core/diag"
	"github.com/PhilCANDIDO/ACM-repo/core/models"
	"github.com/PhilCANDIDO/ACM-repo/core/preflight"
	"github.com/PhilCANDIDO/ACM-repo/core/store"
	"github.com/PhilCANDIDO/ACM-repo/core/topology"
	"github.com/PhilCANDIDO/ACM-repo/core/wire/out"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.HttpServerConfig{Host: "127.0.0.1", Port: "8080"},
		Cluster: config.ClusterConfig{
			LocalNodeID:    2,
			MinimumMembers: 3,
			DataDir:        "/data/kafka",
			ListenPort:     9092,
			ClientPort:     2181,
			PeerPort:       2888,
			ElectionPort:   3888,
		},
		Audit: config.AuditConfig{DBPath: ":memory:"},
	}
}

// newTestHandler wires a handler against mocks: in-memory audit
// store, mock preflight providers, mock metadata client.
func newTestHandler(t *testing.T) (*Handler, *store.MockAuditStore, *diag.MockMetadataClient) {
	t.Helper()

	auditStore := store.NewMockAuditStore()
	metadataClient := &diag.MockMetadataClient{
		LiveBrokers: []diag.BrokerInfo{
			{ID: 1, Host: "172.20.2.113", Port: 9092},
			{ID: 2, Host: "172.20.2.114", Port: 9092},
			{ID: 3, Host: "172.20.2.115", Port: 9092},
		},
	}

	handler := NewHandler(testConfig(), topology.NewResolver(), auditStore)
	handler.newMetadataClient = func(ctx context.Context, bootstrapAddr string, timeout time.Duration) (diag.MetadataClient, error) {
		return metadataClient, nil
	}
	handler.newPreflightEnv = func(privileged bool, tp models.Topology, timeout time.Duration) *preflight.Env {
		fs := preflight.NewMockFilesystemInfo()
		fs.Available["/data/kafka"] = 100 * 1024 * 1024 * 1024
		fs.Mounts["/data/kafka"] = true
		return &preflight.Env{
			Privileged: privileged,
			Topology:   tp,
			FS:         fs,
			HTTP:       &preflight.MockHeadClient{Status: 200},
			Dialer:     preflight.NewMockBrokerDialer(),
		}
	}

	return handler, auditStore, metadataClient
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal request payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	recorder := httptest.NewRecorder()
	handlerFn(recorder, req)
	return recorder
}

func TestResolveTopology_Defaults(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	recorder := postJSON(t, handler.ResolveTopology, "/api/v0/topology/resolve", map[string]string{})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.Topology
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Source != "default" {
		t.Errorf("Expected source default, got %s", response.Source)
	}
	if len(response.Members) != 3 {
		t.Errorf("Expected 3 members, got %d", len(response.Members))
	}
	if auditStore.AppendCalls != 1 {
		t.Errorf("Expected 1 audit append, got %d", auditStore.AppendCalls)
	}
}

func TestResolveTopology_Override(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	recorder := postJSON(t, handler.ResolveTopology, "/api/v0/topology/resolve",
		map[string]string{"override": "1:10.0.0.1,2:10.0.0.2,3:10.0.0.3"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.Topology
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Source != "override" {
		t.Errorf("Expected source override, got %s", response.Source)
	}
	if response.Members[1].Host != "10.0.0.2" {
		t.Errorf("Expected member 2 host 10.0.0.2, got %s", response.Members[1].Host)
	}
}

func TestResolveTopology_InvalidOverride(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	recorder := postJSON(t, handler.ResolveTopology, "/api/v0/topology/resolve",
		map[string]string{"override": "1:10.0.0.1,bogus"})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", recorder.Code)
	}
	if auditStore.AppendCalls != 0 {
		t.Errorf("Expected no audit record for a failed resolve, got %d", auditStore.AppendCalls)
	}
}

func TestRenderBrokerArtifact(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	recorder := postJSON(t, handler.RenderBrokerArtifact, "/api/v0/artifacts/broker",
		map[string]interface{}{"local_id": 2})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.Artifact
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Kind != "broker" {
		t.Errorf("Expected kind broker, got %s", response.Kind)
	}
	if response.Lines[0] != "broker.id=2" {
		t.Errorf("Expected first line broker.id=2, got %s", response.Lines[0])
	}
	if response.Checksum == "" {
		t.Error("Expected a checksum")
	}
	if auditStore.AppendCalls != 1 {
		t.Errorf("Expected 1 audit append, got %d", auditStore.AppendCalls)
	}
}

func TestRenderBrokerArtifact_UnknownLocalID(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	recorder := postJSON(t, handler.RenderBrokerArtifact, "/api/v0/artifacts/broker",
		map[string]interface{}{"local_id": 42})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", recorder.Code)
	}
}

func TestRenderCoordinationArtifact(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	recorder := postJSON(t, handler.RenderCoordinationArtifact, "/api/v0/artifacts/coordination",
		map[string]interface{}{"local_id": 2})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.Artifact
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Kind != "coordination" {
		t.Errorf("Expected kind coordination, got %s", response.Kind)
	}

	found := false
	for _, line := range response.Lines {
		if line == "server.1=172.20.2.113:2888:3888" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected peer line for node 1, got %v", response.Lines)
	}
}

func TestRunPreflight_Go(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	recorder := postJSON(t, handler.RunPreflight, "/api/v0/preflight",
		map[string]interface{}{"privileged": true})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.PreflightReport
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.OverallGo {
		t.Errorf("Expected overall go, results: %+v", response.Results)
	}
	if auditStore.AppendCalls != 1 {
		t.Errorf("Expected 1 audit append, got %d", auditStore.AppendCalls)
	}
}

func TestRunPreflight_NoGoWithoutPrivilege(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	recorder := postJSON(t, handler.RunPreflight, "/api/v0/preflight",
		map[string]interface{}{"privileged": false})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var response out.PreflightReport
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.OverallGo {
		t.Error("Expected no-go without privileges")
	}
	if response.Results[0].Name != "privilege-level" || response.Results[0].Status != "fail" {
		t.Errorf("Expected privilege-level failure first, got %+v", response.Results[0])
	}
}

func TestGetDiagnostics_Healthy(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/diagnostics", nil)
	recorder := httptest.NewRecorder()
	handler.GetDiagnostics(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response out.DiagnosticsReport
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !response.Healthy {
		t.Errorf("Expected healthy report, got %+v", response)
	}
	if auditStore.AppendCalls != 1 {
		t.Errorf("Expected 1 audit append, got %d", auditStore.AppendCalls)
	}
}

func TestGetDiagnostics_MissingMember(t *testing.T) {
	handler, _, metadataClient := newTestHandler(t)
	metadataClient.LiveBrokers = metadataClient.LiveBrokers[:2]

	req := httptest.NewRequest(http.MethodGet, "/api/v0/diagnostics", nil)
	recorder := httptest.NewRecorder()
	handler.GetDiagnostics(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var response out.DiagnosticsReport
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Healthy {
		t.Error("Expected unhealthy report with a missing member")
	}
	if len(response.MissingMembers) != 1 {
		t.Errorf("Expected 1 missing member, got %d", len(response.MissingMembers))
	}
}

func TestListAuditRecords(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)

	for i := 0; i < 3; i++ {
		record := &models.AuditRecord{Kind: models.AuditKindRender, NodeID: i + 1, Detail: "d"}
		if err := auditStore.Append(context.Background(), record); err != nil {
			t.Fatalf("Failed to seed audit record: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v0/audit/records?limit=2", nil)
	recorder := httptest.NewRecorder()
	handler.ListAuditRecords(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	var response out.Paginated
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Total != 2 {
		t.Errorf("Expected 2 records, got %d", response.Total)
	}
}

func TestListAuditRecords_InvalidLimit(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/audit/records?limit=zero", nil)
	recorder := httptest.NewRecorder()
	handler.ListAuditRecords(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", recorder.Code)
	}
}

func TestAuditFailureBlocksSuccess(t *testing.T) {
	handler, auditStore, _ := newTestHandler(t)
	auditStore.AppendError = models.ErrAuditDetailRequired

	recorder := postJSON(t, handler.ResolveTopology, "/api/v0/topology/resolve", map[string]string{})

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 when the audit write fails, got %d", recorder.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/ops/health", nil)
	recorder := httptest.NewRecorder()
	handler.HealthCheck(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}
}
