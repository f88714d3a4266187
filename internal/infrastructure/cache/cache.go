// Package cache contiene las implementaciones del caché de reportes: Redis
// cuando hay servidor configurado y un Noop para correr sin él.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ports"
)

var _ ports.ReportCache = Noop{}

// Noop caché nulo: nunca acierta y descarta las escrituras. Permite construir
// los casos de uso sin ramas "¿hay caché?" cuando Redis no está configurado.
type Noop struct{}

func (Noop) GetSummary(_ context.Context, _ string) (*dto.SummaryDTO, bool, error) {
	return nil, false, nil
}

func (Noop) SetSummary(_ context.Context, _ string, _ *dto.SummaryDTO, _ time.Duration) error {
	return nil
}
