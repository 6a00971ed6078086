package http

import (
	"encoding/json"
	"net/http"

	"rental-sim/domain"
	"rental-sim/logger"
	"rental-sim/service"
)

type HorizonComparisonHandler struct {
	service      *service.HorizonComparisonService
	log          *logger.Logger
	defaultYears int
}

func NewHorizonComparisonHandler(service *service.HorizonComparisonService, log *logger.Logger, defaultYears int) *HorizonComparisonHandler {
	return &HorizonComparisonHandler{service: service, log: log, defaultYears: defaultYears}
}

// CompareHorizons handles POST /simulation/compare.
func (h *HorizonComparisonHandler) CompareHorizons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !isJSON(r) {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.HorizonComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Warn("Error decoding comparison request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// Sin rango explícito se compara de 1 año al horizonte por defecto
	if input.MinYears == 0 && input.MaxYears == 0 {
		input.MinYears, input.MaxYears = service.DefaultHorizonRange(h.defaultYears)
	}

	result, err := h.service.CompareHorizons(input)
	if err != nil {
		h.log.Warn("Comparison rejected: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, h.log, result)
}

