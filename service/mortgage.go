package service

import (
	"math"

	"rental-sim/domain"
)

// MonthlyMortgagePayment calculates the fixed payment of a fully amortizing
// loan: P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate.
func MonthlyMortgagePayment(principal, annualRate float64, payments int) (float64, error) {
	if payments < 1 {
		return 0, domain.NewDomainError(domain.ErrInvalidHorizon, "payments=%d", payments)
	}

	tasaMensual := annualRate / MonthsPerYear
	factor := math.Pow(1+tasaMensual, float64(payments))
	denominator := factor - 1
	if denominator == 0 {
		return 0, domain.NewDomainError(domain.ErrZeroMortgageRate, "annual rate %.4f", annualRate)
	}

	return principal * tasaMensual * factor / denominator, nil
}
