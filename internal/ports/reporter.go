package ports

import (
	"context"

	"github.com/alejandrodnm/campsim/internal/domain"
)

// Reporter presenta los resultados de una simulación al usuario.
type Reporter interface {
	// Report emite los resultados en el medio del adapter.
	// La implementación de consola imprime una tabla formateada;
	// las de archivo escriben el CSV o el gráfico PNG.
	Report(ctx context.Context, results []domain.ScenarioResult) error
}
