package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
)

// ReportCache cachea resúmenes del período ya calculados.
// El caché vive fuera del motor: el motor siempre recalcula completo; el
// caché solo evita repetir el fetch+cálculo dentro del TTL.
type ReportCache interface {
	// GetSummary devuelve el resumen cacheado y true si hubo hit.
	GetSummary(ctx context.Context, key string) (*dto.SummaryDTO, bool, error)
	// SetSummary guarda el resumen con el TTL indicado.
	SetSummary(ctx context.Context, key string, v *dto.SummaryDTO, ttl time.Duration) error
}
