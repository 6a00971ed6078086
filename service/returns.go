package service

import (
	"math"

	"rental-sim/domain"
)

// AggregateReturns discounts the net income stream and the terminal sale
// proceeds and derives the annualized metrics. DiscountFactor and
// DiscountedNetIncome are filled in on records.
func AggregateReturns(
	s domain.Scenario,
	years int,
	records []domain.MonthRecord,
) (domain.SimulationResult, error) {

	if years < MinHoldingYears || len(records) != years*MonthsPerYear {
		return domain.SimulationResult{}, domain.NewDomainError(domain.ErrInvalidHorizon, "years=%d records=%d", years, len(records))
	}
	if s.InitialCapitalInvested <= 0 {
		return domain.SimulationResult{}, domain.NewDomainError(domain.ErrZeroCapital, "downpayment %.4f", s.DownpaymentFraction)
	}

	r := 1 + s.DiscountAnnualRate/MonthsPerYear
	pvIncome := 0.0
	for k := range records {
		records[k].DiscountFactor = math.Pow(r, float64(k+1))
		records[k].DiscountedNetIncome = records[k].NetIncome / records[k].DiscountFactor
		pvIncome += records[k].DiscountedNetIncome
	}

	last := records[len(records)-1]
	capitalGain := (last.MarketValue*(1-s.TransactionFeeRate) - s.InitialCapitalInvested) * (1 - s.CapitalGainTaxRate)
	discountedCapitalGain := capitalGain / last.DiscountFactor

	multiple := (pvIncome + discountedCapitalGain + s.InitialCapitalInvested) / s.InitialCapitalInvested
	totalReturn, err := annualize(multiple, years)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	appreciation, err := annualize(discountedCapitalGain/s.InitialCapitalInvested, years)
	if err != nil {
		return domain.SimulationResult{}, err
	}

	return domain.SimulationResult{
		AnnualizedTotalReturn:    totalReturn,
		AnnualizedAppreciation:   appreciation,
		AnnualRentalReturnByYear: annualRentalReturn(records, years),
		AnnualIncomeByYear:       annualIncome(records, years),
		PresentValueOfIncome:     pvIncome,
		DiscountedCapitalGain:    discountedCapitalGain,
		TotalReturnMultiple:      multiple,
	}, nil
}

// annualize returns multiple^(1/years) - 1. Over more than one year a
// negative multiple has no real root and is reported instead of producing NaN.
func annualize(multiple float64, years int) (float64, error) {
	if math.IsNaN(multiple) || math.IsInf(multiple, 0) || (multiple < 0 && years > 1) {
		return 0, domain.NewDomainError(domain.ErrUndefinedReturn, "multiple %.6f over %d years", multiple, years)
	}
	return math.Pow(multiple, 1.0/float64(years)) - 1, nil
}

// annualRentalReturn approximates each year's rental return as the year's
// net income over the year's mean market value. It is not an IRR.
func annualRentalReturn(records []domain.MonthRecord, years int) []domain.YearValue {
	income := make([]float64, years)
	value := make([]float64, years)
	count := make([]int, years)
	for _, rec := range records {
		income[rec.Year-1] += rec.NetIncome
		value[rec.Year-1] += rec.MarketValue
		count[rec.Year-1]++
	}

	out := make([]domain.YearValue, years)
	for y := 0; y < years; y++ {
		mean := value[y] / float64(count[y])
		out[y] = domain.YearValue{Year: y + 1, Value: income[y] / mean}
	}
	return out
}

// annualIncome sums undiscounted net income per year.
func annualIncome(records []domain.MonthRecord, years int) []domain.YearValue {
	out := make([]domain.YearValue, years)
	for y := range out {
		out[y].Year = y + 1
	}
	for _, rec := range records {
		out[rec.Year-1].Value += rec.NetIncome
	}
	return out
}
