package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/alejandrodnm/campsim/internal/domain"
)

// csvHeader es el esquema fijo del archivo de resultados.
var csvHeader = []string{"Scenario", "Budget", "Days", "Views", "Clicks", "Conversions", "Revenue", "Profit", "ROI"}

// CSVFile implementa ports.Reporter escribiendo los resultados a un
// archivo CSV plano, una fila por escenario.
type CSVFile struct {
	path string
}

// NewCSVFile crea un reporter CSV. El archivo se crea (o trunca) al
// momento de reportar, no antes.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{path: path}
}

// Report escribe el CSV completo. Los floats van con precisión
// completa para que el archivo se pueda re-leer sin pérdida.
func (c *CSVFile) Report(_ context.Context, results []domain.ScenarioResult) error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("report.CSVFile: create %q: %w", c.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("report.CSVFile: write header: %w", err)
	}

	for _, r := range results {
		s := r.Scenario
		row := []string{
			s.Name,
			formatFloat(s.Budget),
			strconv.Itoa(s.Days),
			formatFloat(r.Views),
			formatFloat(r.Clicks),
			formatFloat(r.Conversions),
			formatFloat(r.Revenue),
			formatFloat(r.Profit),
			formatFloat(r.ROI),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("report.CSVFile: write row %q: %w", s.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("report.CSVFile: flush: %w", err)
	}

	slog.Info("results saved", "path", c.path, "rows", len(results))
	return nil
}

// ReadResults carga un CSV generado por CSVFile.Report.
// Las tasas de entrada (cpv, ctr, conv_rate) no viajan en el archivo;
// solo vuelven la identidad del escenario y sus métricas derivadas.
func ReadResults(path string) ([]domain.ScenarioResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report.ReadResults: open %q: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("report.ReadResults: parse %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report.ReadResults: %q is empty", path)
	}
	if !slices.Equal(rows[0], csvHeader) {
		return nil, fmt.Errorf("report.ReadResults: unexpected header %v", rows[0])
	}

	results := make([]domain.ScenarioResult, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2 // 1-based, tras el header
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("report.ReadResults: line %d has %d columns, want %d", line, len(row), len(csvHeader))
		}

		days, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("report.ReadResults: line %d: parse Days: %w", line, err)
		}

		vals := make([]float64, len(csvHeader))
		for _, col := range []int{1, 3, 4, 5, 6, 7, 8} {
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("report.ReadResults: line %d: parse %s: %w", line, csvHeader[col], err)
			}
			vals[col] = v
		}

		results = append(results, domain.ScenarioResult{
			Scenario: domain.Scenario{
				Name:   row[0],
				Budget: vals[1],
				Days:   days,
			},
			Views:       vals[3],
			Clicks:      vals[4],
			Conversions: vals[5],
			Revenue:     vals[6],
			Profit:      vals[7],
			ROI:         vals[8],
		})
	}

	return results, nil
}

// formatFloat serializa sin perder precisión para el round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
