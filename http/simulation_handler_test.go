package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-sim/domain"
	"rental-sim/logger"
	"rental-sim/repository"
	"rental-sim/service"
)

func newTestHandler() *SimulationHandler {
	log := logger.Discard()
	repo := repository.NewSimulationRepositoryMemory()
	service := service.NewSimulationService(repo, repository.NewMockCache(), log)
	return NewSimulationHandler(service, log, 30)
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRunSimulationHandler_OK(t *testing.T) {

	handler := newTestHandler()

	req := postJSON("/simulation/run", `{
		"scenario": {"market_value": 500000, "price_to_rent": [18, 24], "downpayment": 0.2},
		"years": 10
	}`)
	w := httptest.NewRecorder()

	handler.RunSimulation(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var run domain.SimulationRun
	if err := json.NewDecoder(w.Body).Decode(&run); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if run.Years != 10 || len(run.Table) != 120 {
		t.Errorf("expected 10 years and 120 rows, got %d and %d", run.Years, len(run.Table))
	}
	if run.Scenario.PriceToRent != domain.LinearPath(18, 24) {
		t.Errorf("expected linear path, got %s", run.Scenario.PriceToRent)
	}
	if run.Scenario.InitialCapitalInvested != 100000 {
		t.Errorf("expected capital 100000, got %.2f", run.Scenario.InitialCapitalInvested)
	}
}

func TestRunSimulationHandler_DefaultYears(t *testing.T) {

	handler := newTestHandler()
	w := httptest.NewRecorder()

	handler.RunSimulation(w, postJSON("/simulation/run", `{"scenario": {"price_to_rent": 20}}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var run domain.SimulationRun
	json.NewDecoder(w.Body).Decode(&run)
	if run.Years != 30 {
		t.Errorf("expected default of 30 years, got %d", run.Years)
	}
}

func TestRunSimulationHandler_Errors(t *testing.T) {

	tests := []struct {
		name   string
		method string
		ctype  string
		body   string
		status int
	}{
		{"method not allowed", http.MethodGet, "application/json", "", http.StatusMethodNotAllowed},
		{"wrong content type", http.MethodPost, "text/plain", `{}`, http.StatusUnsupportedMediaType},
		{"invalid json", http.MethodPost, "application/json", `{invalid-json}`, http.StatusBadRequest},
		{"bad price to rent shape", http.MethodPost, "application/json", `{"scenario": {"price_to_rent": [1, 2, 3]}}`, http.StatusBadRequest},
		{"no inputs", http.MethodPost, "application/json", `{"scenario": {}, "years": 10}`, http.StatusBadRequest},
		{"zero mortgage rate", http.MethodPost, "application/json", `{"scenario": {"price_to_rent": 20, "mortgage_annual_rate": 0}, "years": 10}`, http.StatusUnprocessableEntity},
		{"negative years", http.MethodPost, "application/json", `{"scenario": {"price_to_rent": 20}, "years": -3}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler()
			req := httptest.NewRequest(tt.method, "/simulation/run", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", tt.ctype)
			w := httptest.NewRecorder()

			handler.RunSimulation(w, req)

			if w.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestGetTableHandler(t *testing.T) {

	handler := newTestHandler()
	w := httptest.NewRecorder()
	handler.RunSimulation(w, postJSON("/simulation/run", `{"scenario": {"price_to_rent": 20, "downpayment": 0.9}, "years": 2}`))
	var run domain.SimulationRun
	if err := json.NewDecoder(w.Body).Decode(&run); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	w = httptest.NewRecorder()
	handler.GetTable(w, httptest.NewRequest(http.MethodGet, "/simulation/table?id="+run.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var table []domain.MonthRecord
	if err := json.NewDecoder(w.Body).Decode(&table); err != nil {
		t.Fatalf("invalid table body: %v", err)
	}
	if len(table) != 24 {
		t.Errorf("expected 24 rows, got %d", len(table))
	}

	w = httptest.NewRecorder()
	handler.GetTable(w, httptest.NewRequest(http.MethodGet, "/simulation/table?format=csv&id="+run.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if len(lines) != 25 {
		t.Errorf("expected header plus 24 rows, got %d lines", len(lines))
	}

	w = httptest.NewRecorder()
	handler.GetTable(w, httptest.NewRequest(http.MethodGet, "/simulation/table?id=unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.GetTable(w, httptest.NewRequest(http.MethodGet, "/simulation/table", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScenarioReportHandler(t *testing.T) {

	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.ScenarioReport(w, postJSON("/scenario/report", `{"market_value": 360000, "monthly_rent": 1500}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "| market value | 360000.00 |") {
		t.Errorf("expected market value row, got:\n%s", w.Body.String())
	}

	w = httptest.NewRecorder()
	handler.ScenarioReport(w, postJSON("/scenario/report?format=html", `{"price_to_rent": 20}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<table>") {
		t.Errorf("expected an HTML table, got:\n%s", w.Body.String())
	}

	w = httptest.NewRecorder()
	handler.ScenarioReport(w, postJSON("/scenario/report", `{}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
