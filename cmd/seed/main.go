// seed puebla la base con datos de demostración: un usuario admin, un catálogo
// pequeño de artículos con categoría y un mes de ventas con líneas aleatorias.
//
// Uso: go run ./cmd/seed
// Idempotente a nivel de usuario (email único); las ventas se insertan siempre.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedItem struct {
	name     string
	category string // vacío = artículo sin categoría
	price    decimal.Decimal
	cost     decimal.Decimal
}

var catalogue = []seedItem{
	{"Café Americano", "Bebidas", decimal.NewFromFloat(3.50), decimal.NewFromFloat(0.80)},
	{"Café Latte", "Bebidas", decimal.NewFromFloat(4.50), decimal.NewFromFloat(1.20)},
	{"Jugo de Naranja", "Bebidas", decimal.NewFromFloat(4.00), decimal.NewFromFloat(1.50)},
	{"Croissant", "Panadería", decimal.NewFromFloat(2.80), decimal.NewFromFloat(0.90)},
	{"Pan Integral", "Panadería", decimal.NewFromFloat(3.20), decimal.NewFromFloat(1.10)},
	{"Sándwich de Pollo", "Comidas", decimal.NewFromFloat(7.50), decimal.NewFromFloat(3.20)},
	{"Ensalada César", "Comidas", decimal.NewFromFloat(8.90), decimal.NewFromFloat(3.80)},
	{"Galletas", "Snacks", decimal.NewFromFloat(1.90), decimal.NewFromFloat(0.60)},
	{"Brownie", "Snacks", decimal.NewFromFloat(2.50), decimal.NewFromFloat(0.85)},
	{"Agua Mineral", "", decimal.NewFromFloat(1.50), decimal.NewFromFloat(0.40)},
}

const (
	seedDays         = 30
	salesPerDayMin   = 3
	salesPerDayMax   = 10
	linesPerSaleMax  = 4
	taxRate          = 0.19
	adminEmail       = "admin@ventas.local"
	adminPassword    = "cambiar-al-entrar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("cargar configuración", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatal("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	if err := seedAdmin(ctx, pool); err != nil {
		fatal("crear usuario admin", err)
	}

	categoryIDs, err := seedCategories(ctx, pool)
	if err != nil {
		fatal("crear categorías", err)
	}
	itemIDs, err := seedItems(ctx, pool, categoryIDs)
	if err != nil {
		fatal("crear artículos", err)
	}
	total, err := seedSales(ctx, pool, itemIDs)
	if err != nil {
		fatal("crear ventas", err)
	}
	fmt.Printf("Listo: %d ventas generadas sobre %d días (%d artículos)\n", total, seedDays, len(catalogue))
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, status, created_at)
		VALUES ($1, $2, $3, 'Administrador', 'admin', 'active', now())
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), adminEmail, string(hash),
	)
	return err
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	ids := make(map[string]string)
	for _, it := range catalogue {
		if it.category == "" {
			continue
		}
		if _, ok := ids[it.category]; ok {
			continue
		}
		id := uuid.NewString()
		if _, err := pool.Exec(ctx, `
			INSERT INTO categories (id, name) VALUES ($1, $2)`,
			id, it.category,
		); err != nil {
			return nil, fmt.Errorf("categoría %q: %w", it.category, err)
		}
		ids[it.category] = id
	}
	return ids, nil
}

func seedItems(ctx context.Context, pool *pgxpool.Pool, categoryIDs map[string]string) ([]string, error) {
	ids := make([]string, 0, len(catalogue))
	for _, it := range catalogue {
		id := uuid.NewString()
		var catID *string
		if it.category != "" {
			c := categoryIDs[it.category]
			catID = &c
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO items (id, name, cost_price, category_id)
			VALUES ($1, $2, $3, $4)`,
			id, it.name, it.cost, catID,
		); err != nil {
			return nil, fmt.Errorf("artículo %q: %w", it.name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedSales(ctx context.Context, pool *pgxpool.Pool, itemIDs []string) (int, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	tax := decimal.NewFromFloat(taxRate)
	total := 0

	for day := 0; day < seedDays; day++ {
		date := time.Now().AddDate(0, 0, -day)
		nSales := salesPerDayMin + rng.Intn(salesPerDayMax-salesPerDayMin+1)
		for s := 0; s < nSales; s++ {
			saleID := uuid.NewString()
			createdAt := time.Date(date.Year(), date.Month(), date.Day(),
				8+rng.Intn(12), rng.Intn(60), 0, 0, time.Local)

			var amount, cost decimal.Decimal
			nLines := 1 + rng.Intn(linesPerSaleMax)
			type line struct {
				itemID     string
				qty        int64
				unitPrice  decimal.Decimal
				totalPrice decimal.Decimal
			}
			lines := make([]line, 0, nLines)
			for l := 0; l < nLines; l++ {
				idx := rng.Intn(len(catalogue))
				qty := int64(1 + rng.Intn(3))
				it := catalogue[idx]
				lineTotal := it.price.Mul(decimal.NewFromInt(qty))
				amount = amount.Add(lineTotal)
				cost = cost.Add(it.cost.Mul(decimal.NewFromInt(qty)))
				lines = append(lines, line{itemIDs[idx], qty, it.price, lineTotal})
			}

			// un descuento ocasional sobre el total de la venta
			discount := decimal.Zero
			if rng.Intn(5) == 0 {
				discount = amount.Mul(decimal.NewFromFloat(0.10)).Round(2)
			}
			net := amount.Sub(discount)
			profit := net.Sub(cost)
			taxAmount := net.Mul(tax).Round(2)

			if _, err := pool.Exec(ctx, `
				INSERT INTO sales (id, created_at, total_amount, discount_amount, gross_profit, tax_amount)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				saleID, createdAt, net, discount, profit, taxAmount,
			); err != nil {
				return total, fmt.Errorf("venta: %w", err)
			}
			for _, ln := range lines {
				if _, err := pool.Exec(ctx, `
					INSERT INTO sale_items (id, sale_id, item_id, quantity, unit_price, total_price)
					VALUES ($1, $2, $3, $4, $5, $6)`,
					uuid.NewString(), saleID, ln.itemID, ln.qty, ln.unitPrice, ln.totalPrice,
				); err != nil {
					return total, fmt.Errorf("línea de venta: %w", err)
				}
			}
			total++
		}
	}
	return total, nil
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
