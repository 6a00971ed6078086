package service

import (
	"math"
	"testing"

	"rental-sim/domain"
)

func projectedFor(t *testing.T, s domain.Scenario, years int) []domain.ProjectedMonth {
	t.Helper()
	months, err := ProjectTimeline(s, years)
	if err != nil {
		t.Fatalf("unexpected error projecting: %v", err)
	}
	return months
}

func TestAccrueCashFlows_PropertyTaxOnlyInDecember(t *testing.T) {

	s := mustResolve(t, domain.ScenarioInput{PriceToRent: domain.Constant(20)})
	records := AccrueCashFlows(s, projectedFor(t, s, 4), 2000)

	for _, r := range records {
		if r.Month == 12 {
			want := s.AnnualPropertyTaxRate * r.MarketValue
			if r.PropertyTax == 0 || math.Abs(r.PropertyTax-want) > tolerance {
				t.Errorf("year %d: expected December property tax %.2f, got %.2f", r.Year, want, r.PropertyTax)
			}
			continue
		}
		if r.PropertyTax != 0 {
			t.Errorf("%d-%02d: expected no property tax, got %.2f", r.Year, r.Month, r.PropertyTax)
		}
	}
}

func TestAccrueCashFlows_ExpenseAndNetIncome(t *testing.T) {

	s := mustResolve(t, domain.ScenarioInput{
		MarketValue: f64(240000),
		MonthlyRent: f64(1000),
	})
	payment := 1100.0
	records := AccrueCashFlows(s, projectedFor(t, s, 2), payment)

	for _, r := range records {
		if r.MonthlyMortgagePayment != payment {
			t.Fatalf("%d-%02d: mortgage payment changed to %.2f", r.Year, r.Month, r.MonthlyMortgagePayment)
		}

		expense := s.ManagementFeeRate*r.MonthlyRent +
			s.RentalTaxAndDepreciationRate*(r.MonthlyRent-payment) +
			r.PropertyTax
		if math.Abs(r.MonthlyOperatingExpense-expense) > tolerance {
			t.Errorf("%d-%02d: expected expense %.6f, got %.6f", r.Year, r.Month, expense, r.MonthlyOperatingExpense)
		}

		net := r.MonthlyRent - payment - r.MonthlyOperatingExpense
		if r.NetIncome != net {
			t.Errorf("%d-%02d: expected net income %.6f, got %.6f", r.Year, r.Month, net, r.NetIncome)
		}
	}

	// la renta inicial (~1004) es menor que la hipoteca: flujo negativo es válido
	if records[0].NetIncome >= 0 {
		t.Errorf("expected negative cash flow in the first month, got %.2f", records[0].NetIncome)
	}
}

func TestAccrueCashFlows_LeavesProjectionUntouched(t *testing.T) {

	s := mustResolve(t, domain.ScenarioInput{PriceToRent: domain.Constant(20)})
	projection := projectedFor(t, s, 1)
	before := make([]domain.ProjectedMonth, len(projection))
	copy(before, projection)

	records := AccrueCashFlows(s, projection, 1500)

	for i := range projection {
		if projection[i] != before[i] {
			t.Fatalf("projection row %d was modified", i)
		}
		if records[i].ProjectedMonth != projection[i] {
			t.Errorf("record %d does not carry the projected month", i)
		}
	}
}
