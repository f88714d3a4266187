package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SalesRepository define el puerto de solo lectura sobre la fuente de
// registros crudos de venta. Las implementaciones devuelven secuencias planas
// sin orden garantizado; agrupar, derivar y ordenar es trabajo del motor de
// reportes, no de la fuente.
//
// El context permite cancelar un fetch superado (ej. re-navegación rápida)
// para que no pise el resultado de un fetch posterior.
type SalesRepository interface {
	// ListSaleLines devuelve todas las líneas de venta con sus joins
	// artículo→categoría. Un join ausente produce punteros nil, nunca error:
	// la fila sigue siendo agregable bajo un grupo centinela.
	ListSaleLines(ctx context.Context) ([]entity.SaleItem, error)

	// ListSales devuelve todas las cabeceras de venta (granularidad para el
	// rollup del período y la vista diaria).
	ListSales(ctx context.Context) ([]entity.Sale, error)
}
