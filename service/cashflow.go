package service

import (
	"rental-sim/domain"
)

// AccrueCashFlows adds mortgage, operating expenses and net income to each
// projected month. The projection slice is left untouched.
func AccrueCashFlows(
	s domain.Scenario,
	projection []domain.ProjectedMonth,
	mortgagePayment float64,
) []domain.MonthRecord {

	records := make([]domain.MonthRecord, len(projection))
	for i, pm := range projection {
		managementFee := s.ManagementFeeRate * pm.MonthlyRent
		rentalTax := s.RentalTaxAndDepreciationRate * (pm.MonthlyRent - mortgagePayment)
		propertyTax := propertyTaxFor(pm.Month, pm.MarketValue, s.AnnualPropertyTaxRate)
		expense := managementFee + rentalTax + propertyTax

		records[i] = domain.MonthRecord{
			ProjectedMonth:          pm,
			MonthlyMortgagePayment:  mortgagePayment,
			ManagementFee:           managementFee,
			RentalTax:               rentalTax,
			PropertyTax:             propertyTax,
			MonthlyOperatingExpense: expense,
			NetIncome:               pm.MonthlyRent - mortgagePayment - expense,
		}
	}
	return records
}

// propertyTaxFor charges the annual property tax as a lump sum in December.
func propertyTaxFor(month int, marketValue, annualRate float64) float64 {
	if month != PropertyTaxMonth {
		return 0
	}
	return annualRate * marketValue
}
