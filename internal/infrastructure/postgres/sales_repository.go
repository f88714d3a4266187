package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementación del puerto SalesRepository sobre PostgreSQL.
//
// Los reportes trabajan sobre fetch masivo: cada listado trae todas las filas
// del período de una vez y la agregación ocurre en memoria, no en SQL.
type SalesRepo struct {
	pool *pgxpool.Pool
}

// NewSalesRepository construye el adaptador de lectura de ventas.
func NewSalesRepository(pool *pgxpool.Pool) *SalesRepo {
	return &SalesRepo{pool: pool}
}

// ListSaleLines devuelve todas las líneas de venta con su artículo y categoría
// embebidos. Los JOIN son LEFT a propósito: una línea con artículo borrado o
// un artículo sin categoría sigue contando en los agregados (los grupos
// centinela se resuelven aguas arriba, no aquí).
func (r *SalesRepo) ListSaleLines(ctx context.Context) ([]entity.SaleItem, error) {
	query := `
		SELECT si.id, si.sale_id,
		       COALESCE(si.quantity, 0),
		       COALESCE(si.unit_price, 0),
		       COALESCE(si.total_price, 0),
		       i.id, i.name, COALESCE(i.cost_price, 0),
		       c.id, c.name
		FROM sale_items si
		LEFT JOIN items i      ON i.id = si.item_id
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY si.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.SaleItem
	for rows.Next() {
		var (
			line             entity.SaleItem
			itemID, itemName *string
			costPrice        decimal.Decimal
			catID, catName   *string
		)
		if err := rows.Scan(
			&line.ID, &line.SaleID,
			&line.Quantity, &line.UnitPrice, &line.TotalPrice,
			&itemID, &itemName, &costPrice,
			&catID, &catName,
		); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		if itemID != nil {
			item := &entity.Item{ID: *itemID, CostPrice: costPrice}
			if itemName != nil {
				item.Name = *itemName
			}
			if catID != nil {
				item.Category = &entity.Category{ID: *catID}
				if catName != nil {
					item.Category.Name = *catName
				}
			}
			line.Item = item
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale lines: %w", err)
	}
	return lines, nil
}

// ListSales devuelve todas las cabeceras de venta, más recientes primero.
func (r *SalesRepo) ListSales(ctx context.Context) ([]entity.Sale, error) {
	query := `
		SELECT id, created_at,
		       COALESCE(total_amount, 0),
		       COALESCE(discount_amount, 0),
		       COALESCE(gross_profit, 0),
		       COALESCE(tax_amount, 0)
		FROM sales
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.CreatedAt,
			&s.TotalAmount, &s.DiscountAmount, &s.GrossProfit, &s.TaxAmount,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	return sales, nil
}
