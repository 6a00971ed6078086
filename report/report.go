package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"rental-sim/domain"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// ScenarioReport renders the resolved scenario as a Markdown table.
func ScenarioReport(s domain.Scenario) string {
	rows := [][2]string{
		{"market value", money(s.InitialMarketValue)},
		{"monthly rent", optionalMoney(s.InitialMonthlyRent)},
		{"price to rent", s.PriceToRent.String()},
		{"annual growth", percent(s.AnnualGrowthRate)},
		{"rental tax and depreciation", percent(s.RentalTaxAndDepreciationRate)},
		{"capital gain tax", percent(s.CapitalGainTaxRate)},
		{"transaction fee", percent(s.TransactionFeeRate)},
		{"annual property tax", percent(s.AnnualPropertyTaxRate)},
		{"management fee", percent(s.ManagementFeeRate)},
		{"downpayment", percent(s.DownpaymentFraction)},
		{"mortgage origination fee", percent(s.MortgageOriginationFeeRate)},
		{"mortgage rate", percent(s.MortgageAnnualRate)},
		{"discount rate", percent(s.DiscountAnnualRate)},
		{"mortgage principal", money(s.MortgagePrincipal())},
		{"capital invested", money(s.InitialCapitalInvested)},
	}

	var b strings.Builder
	b.WriteString("## Args provided\n\n")
	b.WriteString("| parameter | value |\n")
	b.WriteString("|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}
	return b.String()
}

// ResultReport renders the summary metrics and the per-year figures of a run.
func ResultReport(run domain.SimulationRun) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Simulation %s (%d years)\n\n", run.ID, run.Years)

	b.WriteString("| metric | value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| annualized total return | %s |\n", percent(run.Result.AnnualizedTotalReturn))
	fmt.Fprintf(&b, "| annualized appreciation | %s |\n", percent(run.Result.AnnualizedAppreciation))
	fmt.Fprintf(&b, "| total return multiple | %s |\n", decimal.NewFromFloat(run.Result.TotalReturnMultiple).StringFixed(4))
	fmt.Fprintf(&b, "| present value of income | %s |\n", money(run.Result.PresentValueOfIncome))
	fmt.Fprintf(&b, "| discounted capital gain | %s |\n", money(run.Result.DiscountedCapitalGain))
	if len(run.Table) > 0 {
		fmt.Fprintf(&b, "| monthly mortgage payment | %s |\n", money(run.Table[0].MonthlyMortgagePayment))
	}

	// rental return is sum(net income) / mean(market value), an approximation
	b.WriteString("\n### Per year\n\n")
	b.WriteString("| year | income | rental return (approx.) |\n")
	b.WriteString("|---|---|---|\n")
	for i, income := range run.Result.AnnualIncomeByYear {
		rental := ""
		if i < len(run.Result.AnnualRentalReturnByYear) {
			rental = percent(run.Result.AnnualRentalReturnByYear[i].Value)
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", income.Year, money(income.Value), rental)
	}
	return b.String()
}

// ToHTML converts a Markdown report to HTML.
func ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func optionalMoney(v float64) string {
	if v == 0 {
		return "-"
	}
	return money(v)
}

func percent(v float64) string {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
