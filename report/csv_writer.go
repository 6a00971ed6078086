package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"rental-sim/domain"
	"rental-sim/logger"
)

var tableHeader = []string{
	"year", "month", "cumulative_growth_factor", "market_value", "price_to_rent_ratio",
	"monthly_rent", "monthly_mortgage_payment", "management_fee", "rental_tax", "property_tax",
	"monthly_operating_expense", "net_income", "discount_factor", "discounted_net_income",
}

// WriteTableCSV writes the month table with full float precision.
func WriteTableCSV(out io.Writer, table []domain.MonthRecord) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(tableHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range table {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			formatFloat(r.CumulativeGrowthFactor),
			formatFloat(r.MarketValue),
			formatFloat(r.PriceToRentRatio),
			formatFloat(r.MonthlyRent),
			formatFloat(r.MonthlyMortgagePayment),
			formatFloat(r.ManagementFee),
			formatFloat(r.RentalTax),
			formatFloat(r.PropertyTax),
			formatFloat(r.MonthlyOperatingExpense),
			formatFloat(r.NetIncome),
			formatFloat(r.DiscountFactor),
			formatFloat(r.DiscountedNetIncome),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %d-%02d: %w", r.Year, r.Month, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CSVWriter exports month tables to files
type CSVWriter struct {
	dir    string
	logger *logger.Logger
}

// NewCSVWriter creates a new CSVWriter rooted at dir
func NewCSVWriter(dir string, log *logger.Logger) *CSVWriter {
	return &CSVWriter{dir: dir, logger: log}
}

// Write stores the run's table as <dir>/<run id>.csv, or at path when given.
func (w *CSVWriter) Write(run domain.SimulationRun, path string) (string, error) {
	if path == "" {
		path = filepath.Join(w.dir, run.ID+".csv")
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := writeAndClose(file, run.Table); err != nil {
		return "", err
	}

	w.logger.Info("Month table written to: %s (%d rows)", path, len(run.Table))
	return path, nil
}

// writeAndClose reports the close error too, since a failed flush only
// surfaces there.
func writeAndClose(file io.WriteCloser, table []domain.MonthRecord) error {
	if err := WriteTableCSV(file, table); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}
