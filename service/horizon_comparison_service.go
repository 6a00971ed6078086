package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"rental-sim/domain"
	"rental-sim/logger"
)

type HorizonComparisonService struct {
	log *logger.Logger
}

func NewHorizonComparisonService(log *logger.Logger) *HorizonComparisonService {
	return &HorizonComparisonService{log: log}
}

// CompareHorizons simulates the scenario once per holding period in
// [MinYears, MaxYears] and ranks the periods by preference.
func (s *HorizonComparisonService) CompareHorizons(
	input domain.HorizonComparisonInput,
) (domain.HorizonComparisonResult, error) {

	// Validaciones
	if input.MinYears < MinHoldingYears || input.MaxYears < MinHoldingYears {
		return domain.HorizonComparisonResult{}, &domain.ConfigurationError{Field: "min_years", Reason: "holding periods must be at least one year"}
	}
	if input.MinYears > input.MaxYears {
		return domain.HorizonComparisonResult{}, &domain.ConfigurationError{Field: "min_years", Reason: "minimum greater than maximum"}
	}
	if input.MaxYears > MaxHoldingYears {
		return domain.HorizonComparisonResult{}, &domain.ConfigurationError{Field: "max_years", Reason: fmt.Sprintf("exceeds the limit of %d years", MaxHoldingYears)}
	}
	if input.MaxYears-input.MinYears > MaxHorizonRangeYears {
		return domain.HorizonComparisonResult{}, &domain.ConfigurationError{Field: "max_years", Reason: fmt.Sprintf("range exceeds %d years", MaxHorizonRangeYears)}
	}

	preference := input.Preference
	if preference == "" {
		preference = domain.PreferBalanced
	}
	weights, ok := preferenceWeights[preference]
	if !ok {
		return domain.HorizonComparisonResult{}, &domain.ConfigurationError{Field: "preference", Reason: fmt.Sprintf("unknown preference %q", input.Preference)}
	}

	scenario, err := ResolveScenario(input.Scenario)
	if err != nil {
		return domain.HorizonComparisonResult{}, err
	}

	options := []domain.HorizonOption{}
	skipped := []int{}

	// Simular cada horizonte
	for years := input.MinYears; years <= input.MaxYears; years++ {
		result, table, _, err := Simulate(scenario, years)
		if err != nil {
			// un horizonte sin retorno definido no invalida la comparación
			var domErr *domain.DomainError
			if !errors.As(err, &domErr) {
				return domain.HorizonComparisonResult{}, err
			}
			s.log.Debug("skipping %d-year horizon: %v", years, err)
			skipped = append(skipped, years)
			continue
		}

		options = append(options, domain.HorizonOption{
			Years:                  years,
			AnnualizedTotalReturn:  result.AnnualizedTotalReturn,
			AnnualizedAppreciation: result.AnnualizedAppreciation,
			AverageAnnualIncome:    averageIncome(result.AnnualIncomeByYear),
			MonthlyMortgagePayment: table[0].MonthlyMortgagePayment,
		})
	}

	if len(options) == 0 {
		return domain.HorizonComparisonResult{}, domain.NewDomainError(domain.ErrNoViableHorizon, "years %d-%d", input.MinYears, input.MaxYears)
	}

	scoreOptions(options, weights)
	for i := range options {
		options[i].Reason = reasonFor(preference)
	}

	// Ordenar por score descendente, el horizonte más corto gana los empates
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	s.log.Info("Compared %d horizons (%d skipped), recommended %d years for %s",
		len(options), len(skipped), options[0].Years, preference)

	return domain.HorizonComparisonResult{
		RecommendedYears: options[0].Years,
		Preference:       preference,
		Options:          options,
		SkippedYears:     skipped,
	}, nil
}

// DefaultHorizonRange spans 1..defaultYears, clamped to the widest range
// CompareHorizons accepts.
func DefaultHorizonRange(defaultYears int) (int, int) {
	maxYears := defaultYears
	if limit := MinHoldingYears + MaxHorizonRangeYears; maxYears > limit {
		maxYears = limit
	}
	if maxYears < MinHoldingYears {
		maxYears = MinHoldingYears
	}
	return MinHoldingYears, maxYears
}

type scoreWeights struct {
	totalReturn float64
	income      float64
}

var preferenceWeights = map[string]scoreWeights{
	domain.PreferTotalReturn: {totalReturn: 0.8, income: 0.2},
	domain.PreferIncome:      {totalReturn: 0.2, income: 0.8},
	domain.PreferBalanced:    {totalReturn: 0.5, income: 0.5},
}

// scoreOptions normalises return and income to 0-10 across the options.
func scoreOptions(options []domain.HorizonOption, w scoreWeights) {
	minReturn, maxReturn := math.Inf(1), math.Inf(-1)
	minIncome, maxIncome := math.Inf(1), math.Inf(-1)
	for _, o := range options {
		minReturn = math.Min(minReturn, o.AnnualizedTotalReturn)
		maxReturn = math.Max(maxReturn, o.AnnualizedTotalReturn)
		minIncome = math.Min(minIncome, o.AverageAnnualIncome)
		maxIncome = math.Max(maxIncome, o.AverageAnnualIncome)
	}

	for i := range options {
		returnScore := normalise(options[i].AnnualizedTotalReturn, minReturn, maxReturn)
		incomeScore := normalise(options[i].AverageAnnualIncome, minIncome, maxIncome)
		score := w.totalReturn*returnScore + w.income*incomeScore
		options[i].Score = decimal.NewFromFloat(score).Round(2).InexactFloat64()
	}
}

func normalise(v, lo, hi float64) float64 {
	if hi-lo <= 0 {
		return 10.0
	}
	return 10.0 * (v - lo) / (hi - lo)
}

func averageIncome(byYear []domain.YearValue) float64 {
	if len(byYear) == 0 {
		return 0
	}
	var total float64
	for _, y := range byYear {
		total += y.Value
	}
	return total / float64(len(byYear))
}

func reasonFor(preference string) string {
	switch preference {
	case domain.PreferTotalReturn:
		return "ranked mainly by annualized total return"
	case domain.PreferIncome:
		return "ranked mainly by average annual net income"
	}
	return "balance between annualized total return and annual net income"
}
