package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"holdem-resolver/internal/app/results"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := results.NewService(nil, 50)
	srv := httptest.NewServer(newRouter(svc, nil))
	t.Cleanup(srv.Close)
	return srv
}

func postResolve(t *testing.T, srv *httptest.Server, req results.ResolveRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+"/api/resolve", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func TestResolveEndpointShowdown(t *testing.T) {
	srv := newTestServer(t)

	resp := postResolve(t, srv, results.ResolveRequest{
		HandID:     "h1",
		HeroID:     "hero",
		IsShowdown: true,
		Community:  []string{"2h", "7d", "9s", "Jc", "Ah"},
		Players: []results.PlayerPayload{
			{ID: "hero", Name: "Hero", TotalBet: 100, HoleCards: []string{"As", "Kd"}},
			{ID: "villain", Name: "Villain", TotalBet: 100, HoleCards: []string{"Qc", "8c"}},
		},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out results.ResolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.WinnerID != "hero" || out.HeroOutcome != "win" || out.TotalPot != 200 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestResolveEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	resp := postResolve(t, srv, results.ResolveRequest{
		IsShowdown: true,
		Community:  []string{"2h", "7d", "9s"},
		Players: []results.PlayerPayload{
			{ID: "a", TotalBet: 10, HoleCards: []string{"As", "Kd"}},
			{ID: "b", TotalBet: 10, HoleCards: []string{"Qc", "8c"}},
		},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["error"] != "invalid_request" {
		t.Fatalf("error code = %v, want invalid_request", out["error"])
	}
}

func TestResolveEndpointRejectsBadJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/resolve", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestResultsEndpointsWithoutArchive(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/results")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("list status = %d, want 503", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/api/results/abc")
	if err != nil {
		t.Fatalf("get one: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("detail status = %d, want 503", resp2.StatusCode)
	}
}

func TestHealthzWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
