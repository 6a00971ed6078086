package service

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"rental-sim/domain"
	"rental-sim/logger"
	"rental-sim/repository"
)

const runCacheKeyPrefix = "simulation:run:"

// Simulate runs the four stages for a resolved scenario. It has no side
// effects: the same scenario and years always give the same output.
func Simulate(
	s domain.Scenario,
	years int,
) (domain.SimulationResult, []domain.MonthRecord, []domain.ProjectedMonth, error) {

	projection, err := ProjectTimeline(s, years)
	if err != nil {
		return domain.SimulationResult{}, nil, nil, err
	}

	payment, err := MonthlyMortgagePayment(s.MortgagePrincipal(), s.MortgageAnnualRate, years*MonthsPerYear)
	if err != nil {
		return domain.SimulationResult{}, nil, nil, err
	}

	records := AccrueCashFlows(s, projection, payment)

	result, err := AggregateReturns(s, years, records)
	if err != nil {
		return domain.SimulationResult{}, nil, nil, err
	}
	return result, records, projection, nil
}

type SimulationService struct {
	repo  repository.SimulationRepository
	cache repository.CacheRepository
	log   *logger.Logger
}

// NewSimulationService creates a new SimulationService with the given repository and cache.
func NewSimulationService(repo repository.SimulationRepository,
	cache repository.CacheRepository,
	log *logger.Logger,
) *SimulationService {
	return &SimulationService{repo: repo, cache: cache, log: log}
}

// RunSimulation resolves the scenario, runs it and stores the run for later inspection.
func (s *SimulationService) RunSimulation(
	req domain.SimulationRequest,
) (domain.SimulationRun, error) {

	// Validar horizonte
	if req.Years < MinHoldingYears {
		return domain.SimulationRun{}, domain.NewDomainError(domain.ErrInvalidHorizon, "years=%d", req.Years)
	}
	if req.Years > MaxHoldingYears {
		return domain.SimulationRun{}, domain.NewDomainError(domain.ErrInvalidHorizon, "years=%d exceeds the maximum of %d", req.Years, MaxHoldingYears)
	}

	scenario, err := ResolveScenario(req.Scenario)
	if err != nil {
		return domain.SimulationRun{}, err
	}

	result, table, projection, err := Simulate(scenario, req.Years)
	if err != nil {
		return domain.SimulationRun{}, err
	}

	run := domain.SimulationRun{
		ID:         uuid.New().String(),
		Years:      req.Years,
		Scenario:   scenario,
		Result:     result,
		Projection: projection,
		Table:      table,
		CreatedAt:  time.Now().UTC(),
	}

	s.log.Info("Simulation %s: %d years, total return %.4f, appreciation %.4f",
		run.ID, run.Years, result.AnnualizedTotalReturn, result.AnnualizedAppreciation)

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(run); err != nil {
		s.log.Warn("failed to save simulation %s: %v", run.ID, err)
	}
	s.mirror(run)

	return run, nil
}

// GetRun looks a stored run up, cache first.
func (s *SimulationService) GetRun(id string) (domain.SimulationRun, bool) {
	if raw, ok := s.cache.Get(runCacheKeyPrefix + id); ok {
		var run domain.SimulationRun
		err := json.Unmarshal([]byte(raw), &run)
		if err == nil {
			return run, true
		}
		s.log.Warn("discarding unreadable cached simulation %s: %v", id, err)
		if err := s.cache.Delete(runCacheKeyPrefix + id); err != nil {
			s.log.Warn("failed to evict cached simulation %s: %v", id, err)
		}
	}
	return s.repo.Get(id)
}

func (s *SimulationService) mirror(run domain.SimulationRun) {
	payload, err := json.Marshal(run)
	if err != nil {
		s.log.Warn("failed to encode simulation %s for cache: %v", run.ID, err)
		return
	}
	if err := s.cache.Set(runCacheKeyPrefix+run.ID, string(payload)); err != nil {
		s.log.Warn("failed to cache simulation %s: %v", run.ID, err)
	}
}
