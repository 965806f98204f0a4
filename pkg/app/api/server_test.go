package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/nft-mint-action/pkg/action"
	"github.com/chainsafe/nft-mint-action/pkg/config"
	"github.com/chainsafe/nft-mint-action/pkg/nft/service/mocks"
)

func testConfig() *config.APIServerConfig {
	return &config.APIServerConfig{
		Server: config.ServerConfig{
			MaxUploadBytes: 1 << 20,
			RateLimit:      config.RateLimitConfig{Burst: 5},
		},
		Pinning: config.PinningConfig{BaseURL: "https://api.pinata.cloud"},
		Chain: config.ChainConfig{
			Name:            "fuji",
			ContractAddress: "0x45804FA4dDfBC8D6BB5aeABB3EE5765740661e8a",
		},
		Action: config.ActionConfig{
			URL:      "https://sherry.social",
			Icon:     "https://avatars.githubusercontent.com/u/117962315",
			MintedBy: "SherryLinks API",
		},
		Certificate: config.CertificateConfig{Issuer: "SherryLinks", Format: "svg"},
		Metrics:     config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestRouter_HealthAndCORS(t *testing.T) {
	s := NewServer(testConfig())
	r := s.setupRouter(mocks.NewService(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("expected body %q, got %q", "OK", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected allow-origin %q, got %q", "*", got)
	}
}

func TestRouter_Metrics(t *testing.T) {
	s := NewServer(testConfig())
	r := s.setupRouter(mocks.NewService(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatal("expected prometheus exposition output")
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	r := NewServer(cfg).setupRouter(mocks.NewService(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestRouter_ActionRoutesCarryCORS(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		NFTMetadata(mock.Anything, "http://example.com").
		Return(&action.Metadata{Title: "t"}, nil).
		Once()

	r := NewServer(testConfig()).setupRouter(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/nft", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected allow-origin %q, got %q", "*", got)
	}
}

func TestRouter_PreflightNotRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}

	svc := mocks.NewService(t)
	svc.EXPECT().
		NFTMetadata(mock.Anything, "http://example.com").
		Return(&action.Metadata{Title: "t"}, nil).
		Once()

	r := NewServer(cfg).setupRouter(svc, zap.NewNop())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/nft", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("preflight %d: expected status %d, got %d", i, http.StatusNoContent, rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Fatalf("preflight %d: missing Access-Control-Allow-Methods", i)
		}
	}

	// The bucket still holds its single token for the first real request.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nft", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nft", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/certificate", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected preflight status %d after exhaustion, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestRouter_UnknownRouteAndMethod(t *testing.T) {
	r := NewServer(testConfig()).setupRouter(mocks.NewService(t), zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON error body, got content type %q", ct)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/nft", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "method DELETE not allowed") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected allow-origin %q, got %q", "*", got)
	}
}

func TestNewMintService(t *testing.T) {
	s := NewServer(testConfig())
	if _, err := s.newMintService(zap.NewNop()); err != nil {
		t.Fatalf("newMintService() failed: %v", err)
	}

	cfg := testConfig()
	cfg.Chain.Name = "solana"
	if _, err := NewServer(cfg).newMintService(zap.NewNop()); err == nil {
		t.Fatal("expected error for unsupported chain")
	}
}

func TestRun_NilConfig(t *testing.T) {
	if err := NewServer(nil).Run(); err == nil {
		t.Fatal("expected error for nil config")
	}
}
