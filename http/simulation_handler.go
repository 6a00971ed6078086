package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"rental-sim/domain"
	"rental-sim/logger"
	"rental-sim/report"
	"rental-sim/service"
)

type SimulationHandler struct {
	service      *service.SimulationService
	log          *logger.Logger
	defaultYears int
}

func NewSimulationHandler(service *service.SimulationService, log *logger.Logger, defaultYears int) *SimulationHandler {
	return &SimulationHandler{service: service, log: log, defaultYears: defaultYears}
}

// RunSimulation handles POST /simulation/run.
func (h *SimulationHandler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !isJSON(r) {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Error decoding simulation request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Years == 0 {
		req.Years = h.defaultYears
	}

	run, err := h.service.RunSimulation(req)
	if err != nil {
		h.log.Warn("Simulation rejected: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, h.log, run)
}

// GetTable handles GET /simulation/table?id=...&format=json|csv.
func (h *SimulationHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	run, ok := h.service.GetRun(id)
	if !ok {
		http.Error(w, "simulation not found", http.StatusNotFound)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, h.log, run.Table)
	case "csv":
		var buf bytes.Buffer
		if err := report.WriteTableCSV(&buf, run.Table); err != nil {
			h.log.Error("Error encoding table %s: %v", id, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.csv"`)
		if _, err := buf.WriteTo(w); err != nil {
			h.log.Error("Error writing response: %v", err)
		}
	default:
		http.Error(w, "format must be json or csv", http.StatusBadRequest)
	}
}

// ScenarioReport handles POST /scenario/report?format=markdown|html.
func (h *SimulationHandler) ScenarioReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !isJSON(r) {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := service.ResolveScenario(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	md := report.ScenarioReport(scenario)

	switch r.URL.Query().Get("format") {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(md))
	case "html":
		html, err := report.ToHTML(md)
		if err != nil {
			h.log.Error("Error rendering report: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	default:
		http.Error(w, "format must be markdown or html", http.StatusBadRequest)
	}
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, v interface{}) {
	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Error("Error writing response: %v", err)
	}
}

// writeServiceError maps configuration errors to 400 and numeric domain
// errors to 422.
func writeServiceError(w http.ResponseWriter, err error) {
	var cfgErr *domain.ConfigurationError
	var domErr *domain.DomainError
	switch {
	case errors.As(err, &cfgErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &domErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func isJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
