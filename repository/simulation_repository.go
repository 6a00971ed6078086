package repository

import "rental-sim/domain"

type SimulationRepository interface {
	Save(run domain.SimulationRun) error
	Get(id string) (domain.SimulationRun, bool)
}
