package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/campsim/internal/domain"
	"github.com/olekukonko/tablewriter"
)

// Console implementa ports.Reporter sobre un io.Writer.
type Console struct {
	out      io.Writer
	validate bool
}

// NewConsole crea un reporter que escribe a stdout.
func NewConsole(validate bool) *Console {
	return &Console{out: os.Stdout, validate: validate}
}

// NewConsoleWriter crea un reporter para tests.
func NewConsoleWriter(w io.Writer, validate bool) *Console {
	return &Console{out: w, validate: validate}
}

// Report imprime la tabla de resultados y, si está activo el modo
// validate, el desglose paso a paso de cada escenario.
func (c *Console) Report(_ context.Context, results []domain.ScenarioResult) error {
	if len(results) == 0 {
		fmt.Fprintln(c.out, "no scenarios to report")
		return nil
	}

	c.printTable(results)

	if c.validate {
		c.printValidation(results)
	}

	return nil
}

// printTable imprime la tabla principal de métricas del funnel.
func (c *Console) printTable(results []domain.ScenarioResult) {
	var totalBudget, totalProfit float64
	for _, r := range results {
		totalBudget += r.Scenario.Budget
		totalProfit += r.Profit
	}

	fmt.Fprintf(c.out, "\nSimulation Results: %d scenarios, $%.2f total spend\n",
		len(results), totalBudget)

	table := tablewriter.NewWriter(c.out)
	table.Header("Scenario", "Budget", "Days", "Views", "Clicks", "Conversions", "Revenue", "Profit", "ROI")

	for _, r := range results {
		s := r.Scenario
		table.Append(
			s.Name,
			fmt.Sprintf("$%.2f", s.Budget),
			fmt.Sprintf("%d", s.Days),
			fmt.Sprintf("%.1f", r.Views),
			fmt.Sprintf("%.1f", r.Clicks),
			fmt.Sprintf("%.1f", r.Conversions),
			fmt.Sprintf("$%.2f", r.Revenue),
			fmt.Sprintf("$%.2f", r.Profit),
			fmt.Sprintf("%.2fx", r.ROI),
		)
	}

	table.Render()

	fmt.Fprintf(c.out, "  ROI = revenue / budget (gross multiple) | total profit: $%.2f\n", totalProfit)
}

// printValidation imprime el cálculo detallado de cada escenario.
func (c *Console) printValidation(results []domain.ScenarioResult) {
	fmt.Fprintln(c.out, "\n=== VALIDATION: funnel step-by-step ===")

	for i, r := range results {
		s := r.Scenario

		fmt.Fprintf(c.out, "\n--- #%d: %s ($%.0f over %d days, $%.2f/day) ---\n",
			i+1, s.Name, s.Budget, s.Days, s.DailyBudget())

		fmt.Fprintf(c.out, "  1. REACH:\n")
		fmt.Fprintf(c.out, "     views = budget / cpv = %.2f / %.4f = %.2f\n",
			s.Budget, s.CPV, r.Views)

		fmt.Fprintf(c.out, "  2. TRAFFIC:\n")
		fmt.Fprintf(c.out, "     clicks = views × ctr = %.2f × %.4f = %.2f\n",
			r.Views, s.CTR, r.Clicks)

		fmt.Fprintf(c.out, "  3. SALES:\n")
		fmt.Fprintf(c.out, "     conversions = clicks × conv_rate = %.2f × %.4f = %.2f\n",
			r.Clicks, s.ConvRate, r.Conversions)

		fmt.Fprintf(c.out, "  4. ECONOMICS:\n")
		fmt.Fprintf(c.out, "     revenue = %.2f × $%.2f = $%.2f\n",
			r.Conversions, s.RevenuePerSale, r.Revenue)
		fmt.Fprintf(c.out, "     profit  = %.2f × $%.2f = $%.2f\n",
			r.Conversions, s.ProfitPerSale, r.Profit)
		fmt.Fprintf(c.out, "     net after spend: $%.2f\n", r.NetProfit())
		fmt.Fprintf(c.out, "     >>> ROI: %.2fx\n", r.ROI)

		be := domain.BreakEvenSales(s.Budget, s.ProfitPerSale)
		fmt.Fprintf(c.out, "     break-even: %.1f sales to cover budget (projected: %.1f)\n",
			be, r.Conversions)
	}

	fmt.Fprintln(c.out)
}
