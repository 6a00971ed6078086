package domain

import (
	"fmt"
	"math"
)

// ScenarioInput holds the caller-supplied construction parameters.
// A nil rate falls back to its default; a nil market value, rent or an
// unresolved price-to-rent counts as absent.
type ScenarioInput struct {
	MarketValue  *float64    `json:"market_value,omitempty" yaml:"market_value"`
	MonthlyRent  *float64    `json:"monthly_rent,omitempty" yaml:"monthly_rent"`
	PriceToRent  PriceToRent `json:"price_to_rent" yaml:"price_to_rent"`
	AnnualGrowth *float64    `json:"annual_growth,omitempty" yaml:"annual_growth"`

	RentalTaxAndDepreciation *float64 `json:"rental_tax_and_depreciation,omitempty" yaml:"rental_tax_and_depreciation"`
	CapitalGainTax           *float64 `json:"capital_gain_tax,omitempty" yaml:"capital_gain_tax"`
	TransactionFee           *float64 `json:"transaction_fee,omitempty" yaml:"transaction_fee"`
	AnnualPropertyTax        *float64 `json:"annual_property_tax,omitempty" yaml:"annual_property_tax"`
	ManagementFee            *float64 `json:"management_fee,omitempty" yaml:"management_fee"`
	Downpayment              *float64 `json:"downpayment,omitempty" yaml:"downpayment"`
	MortgageOriginationFee   *float64 `json:"mortgage_origination_fee,omitempty" yaml:"mortgage_origination_fee"`
	MortgageAnnualRate       *float64 `json:"mortgage_annual_rate,omitempty" yaml:"mortgage_annual_rate"`
	DiscountAnnualRate       *float64 `json:"discount_annual_rate,omitempty" yaml:"discount_annual_rate"`
}

// Scenario is a fully resolved investment configuration. It is produced
// once by the resolver and passed by value afterwards.
type Scenario struct {
	InitialMarketValue float64     `json:"initial_market_value"`
	InitialMonthlyRent float64     `json:"initial_monthly_rent,omitempty"`
	AnnualGrowthRate   float64     `json:"annual_growth_rate"`
	PriceToRent        PriceToRent `json:"price_to_rent"`

	RentalTaxAndDepreciationRate float64 `json:"rental_tax_and_depreciation_rate"`
	CapitalGainTaxRate           float64 `json:"capital_gain_tax_rate"`
	TransactionFeeRate           float64 `json:"transaction_fee_rate"`
	AnnualPropertyTaxRate        float64 `json:"annual_property_tax_rate"`
	ManagementFeeRate            float64 `json:"management_fee_rate"`
	DownpaymentFraction          float64 `json:"downpayment_fraction"`
	MortgageOriginationFeeRate   float64 `json:"mortgage_origination_fee_rate"`
	MortgageAnnualRate           float64 `json:"mortgage_annual_rate"`
	DiscountAnnualRate           float64 `json:"discount_annual_rate"`

	InitialCapitalInvested float64 `json:"initial_capital_invested"`
}

// Validate rejects scenarios that break the resolved-state invariants,
// including the zero value and literals built outside the resolver.
func (s Scenario) Validate() error {
	if !s.PriceToRent.IsResolved() {
		return &ConfigurationError{Field: "price_to_rent", Reason: "scenario has no resolved price-to-rent trajectory"}
	}
	if !(s.InitialMarketValue > 0) || math.IsInf(s.InitialMarketValue, 0) {
		return &ConfigurationError{Field: "market_value", Reason: "scenario has no positive market value"}
	}
	if err := s.ValidateRates(); err != nil {
		return err
	}

	// el capital invertido se deriva, nunca se recibe
	capital := s.InitialMarketValue * s.DownpaymentFraction
	if math.Abs(s.InitialCapitalInvested-capital) > 1e-9*math.Max(1, capital) {
		return &ConfigurationError{
			Field:  "initial_capital_invested",
			Reason: fmt.Sprintf("%.2f does not match market value times downpayment (%.2f)", s.InitialCapitalInvested, capital),
		}
	}
	return nil
}

// ValidateRates checks the [0,1] fractions and the non-negative annual rates.
// NaN fails every check.
func (s Scenario) ValidateRates() error {
	fractions := []struct {
		field string
		value float64
	}{
		{"rental_tax_and_depreciation", s.RentalTaxAndDepreciationRate},
		{"capital_gain_tax", s.CapitalGainTaxRate},
		{"transaction_fee", s.TransactionFeeRate},
		{"annual_property_tax", s.AnnualPropertyTaxRate},
		{"management_fee", s.ManagementFeeRate},
		{"downpayment", s.DownpaymentFraction},
		{"mortgage_origination_fee", s.MortgageOriginationFeeRate},
	}
	for _, f := range fractions {
		if !(f.value >= 0 && f.value <= 1) {
			return &ConfigurationError{Field: f.field, Reason: "must be between 0 and 1"}
		}
	}

	if !(s.MortgageAnnualRate >= 0) || math.IsInf(s.MortgageAnnualRate, 0) {
		return &ConfigurationError{Field: "mortgage_annual_rate", Reason: "must not be negative"}
	}
	if !(s.DiscountAnnualRate >= 0) || math.IsInf(s.DiscountAnnualRate, 0) {
		return &ConfigurationError{Field: "discount_annual_rate", Reason: "must not be negative"}
	}
	if !(s.AnnualGrowthRate > -1) || math.IsInf(s.AnnualGrowthRate, 0) {
		return &ConfigurationError{Field: "annual_growth", Reason: "must be greater than -100%"}
	}
	return nil
}

// MortgagePrincipal is the financed amount, origination fee included.
func (s Scenario) MortgagePrincipal() float64 {
	return s.InitialMarketValue * (1 - s.DownpaymentFraction) * (1 + s.MortgageOriginationFeeRate)
}
