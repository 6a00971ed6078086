package domain

import "time"

// ProjectedMonth is one month of the pre-financing projection.
type ProjectedMonth struct {
	Month                  int     `json:"month"`
	Year                   int     `json:"year"`
	CumulativeGrowthFactor float64 `json:"cumulative_growth_factor"`
	MarketValue            float64 `json:"market_value"`
	PriceToRentRatio       float64 `json:"price_to_rent_ratio"`
	MonthlyRent            float64 `json:"monthly_rent"`
}

// MonthRecord is one row of the full simulation table.
type MonthRecord struct {
	ProjectedMonth

	MonthlyMortgagePayment  float64 `json:"monthly_mortgage_payment"`
	ManagementFee           float64 `json:"management_fee"`
	RentalTax               float64 `json:"rental_tax"`
	PropertyTax             float64 `json:"property_tax"`
	MonthlyOperatingExpense float64 `json:"monthly_operating_expense"`
	NetIncome               float64 `json:"net_income"`
	DiscountFactor          float64 `json:"discount_factor"`
	DiscountedNetIncome     float64 `json:"discounted_net_income"`
}

type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type SimulationResult struct {
	AnnualizedTotalReturn    float64     `json:"annualized_total_return"`
	AnnualizedAppreciation   float64     `json:"annualized_appreciation"`
	AnnualRentalReturnByYear []YearValue `json:"annual_rental_return_by_year"`
	AnnualIncomeByYear       []YearValue `json:"annual_income_by_year"`

	PresentValueOfIncome  float64 `json:"present_value_of_income"`
	DiscountedCapitalGain float64 `json:"discounted_capital_gain"`
	TotalReturnMultiple   float64 `json:"total_return_multiple"`
}

// SimulationRun is the stored audit artifact of one run.
type SimulationRun struct {
	ID         string           `json:"id"`
	Years      int              `json:"years"`
	Scenario   Scenario         `json:"scenario"`
	Result     SimulationResult `json:"result"`
	Projection []ProjectedMonth `json:"projection,omitempty"`
	Table      []MonthRecord    `json:"table"`
	CreatedAt  time.Time        `json:"created_at"`
}

type SimulationRequest struct {
	Scenario ScenarioInput `json:"scenario"`
	Years    int           `json:"years"`
}
