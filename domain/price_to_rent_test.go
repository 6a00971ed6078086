package domain

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestPriceToRent_UnmarshalJSON(t *testing.T) {

	tests := []struct {
		name    string
		body    string
		want    PriceToRent
		wantErr bool
	}{
		{"scalar", `{"price_to_rent": 20}`, Constant(20), false},
		{"pair", `{"price_to_rent": [15, 25.5]}`, LinearPath(15, 25.5), false},
		{"null", `{"price_to_rent": null}`, Unresolved(), false},
		{"absent", `{}`, Unresolved(), false},
		{"three values", `{"price_to_rent": [1, 2, 3]}`, PriceToRent{}, true},
		{"string", `{"price_to_rent": "20"}`, PriceToRent{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input ScenarioInput
			err := json.Unmarshal([]byte(tt.body), &input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if input.PriceToRent != tt.want {
				t.Errorf("expected %s, got %s", tt.want, input.PriceToRent)
			}
		})
	}
}

func TestPriceToRent_MarshalJSON(t *testing.T) {

	tests := []struct {
		in   PriceToRent
		want string
	}{
		{Constant(20), `20`},
		{LinearPath(15, 25), `[15,25]`},
		{Unresolved(), `null`},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.in.Kind, tt.want, got)
		}
	}
}

func TestPriceToRent_UnmarshalYAML(t *testing.T) {

	var constant, path, absent ScenarioInput
	if err := yaml.Unmarshal([]byte("price_to_rent: 18\n"), &constant); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := yaml.Unmarshal([]byte("price_to_rent: [12, 20]\n"), &path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := yaml.Unmarshal([]byte("market_value: 100000\n"), &absent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if constant.PriceToRent != Constant(18) {
		t.Errorf("expected constant 18, got %s", constant.PriceToRent)
	}
	if path.PriceToRent != LinearPath(12, 20) {
		t.Errorf("expected path 12 -> 20, got %s", path.PriceToRent)
	}
	if absent.PriceToRent.IsResolved() {
		t.Errorf("expected unresolved, got %s", absent.PriceToRent)
	}

	var bad ScenarioInput
	if err := yaml.Unmarshal([]byte("price_to_rent: [1]\n"), &bad); err == nil {
		t.Errorf("expected error for a single-element pair")
	}
}

func TestScenario_ValidateZeroValue(t *testing.T) {

	if err := (Scenario{}).Validate(); err == nil {
		t.Errorf("zero scenario must not be usable")
	}
}

func validScenario() Scenario {
	return Scenario{
		InitialMarketValue:     500000,
		PriceToRent:            Constant(20),
		AnnualGrowthRate:       0.05,
		CapitalGainTaxRate:     0.2,
		ManagementFeeRate:      0.08,
		DownpaymentFraction:    0.03,
		MortgageAnnualRate:     0.04,
		DiscountAnnualRate:     0.015,
		InitialCapitalInvested: 15000,
	}
}

func TestScenario_ValidateLiterals(t *testing.T) {

	if err := validScenario().Validate(); err != nil {
		t.Fatalf("expected a consistent literal to pass, got %v", err)
	}

	tests := []struct {
		name  string
		edit  func(*Scenario)
		field string
	}{
		{"negative capital gain tax", func(s *Scenario) { s.CapitalGainTaxRate = -1 }, "capital_gain_tax"},
		{"downpayment above one", func(s *Scenario) { s.DownpaymentFraction = 1.5; s.InitialCapitalInvested = 750000 }, "downpayment"},
		{"nan management fee", func(s *Scenario) { s.ManagementFeeRate = math.NaN() }, "management_fee"},
		{"negative mortgage rate", func(s *Scenario) { s.MortgageAnnualRate = -0.01 }, "mortgage_annual_rate"},
		{"growth of minus one", func(s *Scenario) { s.AnnualGrowthRate = -1 }, "annual_growth"},
		{"capital not derived", func(s *Scenario) { s.InitialCapitalInvested = 20000 }, "initial_capital_invested"},
		{"nan market value", func(s *Scenario) { s.InitialMarketValue = math.NaN() }, "market_value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScenario()
			tt.edit(&s)

			var cfgErr *ConfigurationError
			if err := s.Validate(); !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}
