package service

import (
	"rental-sim/domain"
)

// ResolveScenario builds a resolved Scenario from the supplied inputs.
//
// Market value plus monthly rent wins and defines a flat price-to-rent
// ratio. Otherwise an explicit price-to-rent (constant or linear path) is
// used, with the market value defaulting to DefaultMarketValue.
func ResolveScenario(input domain.ScenarioInput) (domain.Scenario, error) {
	s := domain.Scenario{
		AnnualGrowthRate:             valueOr(input.AnnualGrowth, DefaultAnnualGrowth),
		RentalTaxAndDepreciationRate: valueOr(input.RentalTaxAndDepreciation, DefaultRentalTaxAndDepreciation),
		CapitalGainTaxRate:           valueOr(input.CapitalGainTax, DefaultCapitalGainTax),
		TransactionFeeRate:           valueOr(input.TransactionFee, DefaultTransactionFee),
		AnnualPropertyTaxRate:        valueOr(input.AnnualPropertyTax, DefaultAnnualPropertyTax),
		ManagementFeeRate:            valueOr(input.ManagementFee, DefaultManagementFee),
		DownpaymentFraction:          valueOr(input.Downpayment, DefaultDownpayment),
		MortgageOriginationFeeRate:   valueOr(input.MortgageOriginationFee, DefaultMortgageOriginationFee),
		MortgageAnnualRate:           valueOr(input.MortgageAnnualRate, DefaultMortgageAnnualRate),
		DiscountAnnualRate:           valueOr(input.DiscountAnnualRate, DefaultDiscountAnnualRate),
	}

	if err := s.ValidateRates(); err != nil {
		return domain.Scenario{}, err
	}

	switch {
	case input.MarketValue != nil && input.MonthlyRent != nil:
		if *input.MarketValue <= 0 {
			return domain.Scenario{}, &domain.ConfigurationError{Field: "market_value", Reason: "must be positive"}
		}
		if *input.MonthlyRent <= 0 {
			return domain.Scenario{}, &domain.ConfigurationError{Field: "monthly_rent", Reason: "must be positive"}
		}
		s.InitialMarketValue = *input.MarketValue
		s.InitialMonthlyRent = *input.MonthlyRent
		s.PriceToRent = domain.Constant(s.InitialMarketValue / (MonthsPerYear * s.InitialMonthlyRent))

	default:
		ptr, err := resolvePriceToRent(input.PriceToRent)
		if err != nil {
			return domain.Scenario{}, err
		}
		s.PriceToRent = ptr
		s.InitialMarketValue = valueOr(input.MarketValue, DefaultMarketValue)
		if s.InitialMarketValue <= 0 {
			return domain.Scenario{}, &domain.ConfigurationError{Field: "market_value", Reason: "must be positive"}
		}
	}

	s.InitialCapitalInvested = s.InitialMarketValue * s.DownpaymentFraction
	if err := s.Validate(); err != nil {
		return domain.Scenario{}, err
	}
	return s, nil
}

func resolvePriceToRent(p domain.PriceToRent) (domain.PriceToRent, error) {
	switch p.Kind {
	case domain.PriceToRentConstant:
		if p.Start <= 0 {
			return domain.PriceToRent{}, domain.NewDomainError(domain.ErrNonPositivePriceToRent, "constant ratio %.4f", p.Start)
		}
		return domain.Constant(p.Start), nil
	case domain.PriceToRentLinear:
		if p.Start <= 0 || p.End <= 0 {
			return domain.PriceToRent{}, domain.NewDomainError(domain.ErrNonPositivePriceToRent, "path %.4f -> %.4f", p.Start, p.End)
		}
		return domain.LinearPath(p.Start, p.End), nil
	default:
		return domain.PriceToRent{}, &domain.ConfigurationError{
			Reason: "no values provided: either provide (market_value, monthly_rent) or price_to_rent",
		}
	}
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
