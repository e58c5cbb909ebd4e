package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alejandrodnm/campsim/internal/domain"
	charts "github.com/vicanso/go-charts/v2"
)

// Chart implementa ports.Reporter generando un gráfico de barras PNG
// con dos ejes Y: profit en dólares a la izquierda y ROI en porcentaje
// a la derecha.
type Chart struct {
	path   string
	width  int
	height int
}

// NewChart crea un reporter de gráfico con el tamaño estándar.
func NewChart(path string) *Chart {
	return &Chart{path: path, width: 1000, height: 600}
}

// Report renderiza el gráfico y lo escribe a disco.
func (c *Chart) Report(_ context.Context, results []domain.ScenarioResult) error {
	if len(results) == 0 {
		return fmt.Errorf("report.Chart: no results to plot")
	}

	names := make([]string, len(results))
	profits := make([]float64, len(results))
	roiPcts := make([]float64, len(results))
	for i, r := range results {
		names[i] = r.Scenario.Name
		profits[i] = r.Profit
		roiPcts[i] = r.ROIPercent()
	}

	p, err := charts.BarRender(
		[][]float64{profits, roiPcts},
		charts.XAxisDataOptionFunc(names),
		charts.TitleTextOptionFunc("Simulation Results: Profit and ROI"),
		charts.LegendLabelsOptionFunc([]string{"Profit ($)", "ROI (%)"}, charts.PositionLeft),
		charts.WidthOptionFunc(c.width),
		charts.HeightOptionFunc(c.height),
		charts.PNGTypeOption(),
		func(opt *charts.ChartOption) {
			// la serie de ROI va contra el eje Y secundario
			if len(opt.SeriesList) == 2 {
				opt.SeriesList[1].AxisIndex = 1
			}
		},
	)
	if err != nil {
		return fmt.Errorf("report.Chart: render: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return fmt.Errorf("report.Chart: encode png: %w", err)
	}
	if err := os.WriteFile(c.path, buf, 0o644); err != nil {
		return fmt.Errorf("report.Chart: write %q: %w", c.path, err)
	}

	slog.Info("chart saved", "path", c.path, "scenarios", len(results))
	return nil
}
