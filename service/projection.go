package service

import (
	"math"

	"rental-sim/domain"
)

// ProjectTimeline builds the monthly market value, price-to-rent and rent
// series for a holding period of the given number of years.
func ProjectTimeline(s domain.Scenario, years int) ([]domain.ProjectedMonth, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if years < MinHoldingYears {
		return nil, domain.NewDomainError(domain.ErrInvalidHorizon, "years=%d", years)
	}

	n := years * MonthsPerYear
	monthlyGrowth := MonthlyGrowthRate(s.AnnualGrowthRate)

	months := make([]domain.ProjectedMonth, n)
	for i := 0; i < n; i++ {
		// crecimiento acumulado desde el inicio (mes 1 = un periodo)
		growth := math.Pow(1+monthlyGrowth, float64(i+1))
		marketValue := s.InitialMarketValue * growth
		ratio := interpolatePriceToRent(s.PriceToRent, i, n)
		if ratio <= 0 {
			return nil, domain.NewDomainError(domain.ErrNonPositivePriceToRent, "month %d ratio %.4f", i+1, ratio)
		}

		months[i] = domain.ProjectedMonth{
			Month:                  i%MonthsPerYear + 1,
			Year:                   i/MonthsPerYear + 1,
			CumulativeGrowthFactor: growth,
			MarketValue:            marketValue,
			PriceToRentRatio:       ratio,
			MonthlyRent:            marketValue / ratio / MonthsPerYear,
		}
	}

	return months, nil
}

// MonthlyGrowthRate is the monthly rate that compounds to the annual rate.
func MonthlyGrowthRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/MonthsPerYear) - 1
}

// interpolatePriceToRent returns the ratio at index i of n months: index 0
// is the start value and index n-1 the end value.
func interpolatePriceToRent(p domain.PriceToRent, i, n int) float64 {
	if n <= 1 {
		return p.Start
	}
	return p.Start + (p.End-p.Start)/float64(n-1)*float64(i)
}
