package domain

// Horizon comparison preferences.
const (
	PreferTotalReturn = "total_return"
	PreferIncome      = "income"
	PreferBalanced    = "balanced"
)

type HorizonComparisonInput struct {
	Scenario   ScenarioInput `json:"scenario"`
	MinYears   int           `json:"min_years"`
	MaxYears   int           `json:"max_years"`
	Preference string        `json:"preference"` // "total_return", "income", "balanced"
}

type HorizonOption struct {
	Years                  int     `json:"years"`
	AnnualizedTotalReturn  float64 `json:"annualized_total_return"`
	AnnualizedAppreciation float64 `json:"annualized_appreciation"`
	AverageAnnualIncome    float64 `json:"average_annual_income"`
	MonthlyMortgagePayment float64 `json:"monthly_mortgage_payment"`
	Score                  float64 `json:"score"`
	Reason                 string  `json:"reason"`
}

type HorizonComparisonResult struct {
	RecommendedYears int             `json:"recommended_years"`
	Preference       string          `json:"preference"`
	Options          []HorizonOption `json:"options"`
	SkippedYears     []int           `json:"skipped_years,omitempty"`
}
