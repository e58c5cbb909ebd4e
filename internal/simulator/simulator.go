package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/campsim/internal/domain"
	"github.com/alejandrodnm/campsim/internal/ports"
	"github.com/google/uuid"
)

// Simulator orquesta una corrida: valida la tabla de escenarios,
// ejecuta el funnel y reparte los resultados entre los reporters.
type Simulator struct {
	scenarios []domain.Scenario
	reporters []ports.Reporter
}

// New crea un Simulator con los reporters inyectados. Los reporters se
// ejecutan en el orden en que se pasan.
func New(scenarios []domain.Scenario, reporters ...ports.Reporter) *Simulator {
	return &Simulator{scenarios: scenarios, reporters: reporters}
}

// Run ejecuta la corrida completa y devuelve los resultados calculados.
// El primer error de un reporter aborta la corrida: un archivo a medias
// es un fallo, no un warning.
func (s *Simulator) Run(ctx context.Context) ([]domain.ScenarioResult, error) {
	runID := uuid.New().String()
	start := time.Now()

	slog.Info("simulation starting", "run_id", runID, "scenarios", len(s.scenarios))

	if len(s.scenarios) == 0 {
		return nil, fmt.Errorf("simulator.Run: no scenarios configured")
	}
	for _, sc := range s.scenarios {
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("simulator.Run: invalid scenario: %w", err)
		}
	}

	results := domain.SimulateAll(s.scenarios)

	for _, r := range s.reporters {
		if err := r.Report(ctx, results); err != nil {
			return nil, fmt.Errorf("simulator.Run: report: %w", err)
		}
	}

	slog.Info("simulation complete",
		"run_id", runID,
		"scenarios", len(results),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return results, nil
}
