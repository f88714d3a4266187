package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirection dirección del orden activo.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortConfig clave y dirección activas. El valor cero significa "sin orden":
// los grupos conservan su orden de primera aparición.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// Request devuelve la configuración resultante de pedir orden por key:
// pedir la clave activa ascendente la invierte a descendente; cualquier otra
// petición (clave nueva, o la activa descendente) queda ascendente.
func (c SortConfig) Request(key string) SortConfig {
	if c.Key == key && c.Direction == SortAsc {
		return SortConfig{Key: key, Direction: SortDesc}
	}
	return SortConfig{Key: key, Direction: SortAsc}
}

// Claves de orden expuestas por las vistas (coinciden con los campos JSON).
const (
	KeyItemName     = "item_name"
	KeyCategoryName = "category_name"
	KeyQuantity     = "quantity"
	KeyGrossSales   = "brutas"
	KeyDiscounts    = "descuentos"
	KeyNetSales     = "netas"
	KeyCost         = "costo"
	KeyProfit       = "beneficio"
	KeyMargin       = "margen"
	KeyName         = "name"
	KeyTotalSales   = "ventas"
	KeyItemCount    = "articulos"
	KeyDate         = "fecha"
	KeyTax          = "impuestos"
)

// newCollator crea el colador es para comparar strings; los coladores de
// x/text no son seguros para uso concurrente, así que se crea uno por orden.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// itemComparator devuelve el comparador del campo pedido; nil si la clave no
// existe (en ese caso no se ordena).
func itemComparator(key string, col *collate.Collator) func(a, b ItemSummary) int {
	switch key {
	case KeyItemName:
		return func(a, b ItemSummary) int { return col.CompareString(a.ItemName, b.ItemName) }
	case KeyCategoryName:
		return func(a, b ItemSummary) int { return col.CompareString(a.CategoryName, b.CategoryName) }
	case KeyQuantity:
		return func(a, b ItemSummary) int { return cmpInt(a.Quantity, b.Quantity) }
	case KeyGrossSales:
		return func(a, b ItemSummary) int { return a.GrossSales.Cmp(b.GrossSales) }
	case KeyDiscounts:
		return func(a, b ItemSummary) int { return a.Discounts.Cmp(b.Discounts) }
	case KeyNetSales:
		return func(a, b ItemSummary) int { return a.NetSales.Cmp(b.NetSales) }
	case KeyCost:
		return func(a, b ItemSummary) int { return a.Cost.Cmp(b.Cost) }
	case KeyProfit:
		return func(a, b ItemSummary) int { return a.Profit.Cmp(b.Profit) }
	case KeyMargin:
		// compara el margen sin redondear, no su representación "NN.NN%"
		return func(a, b ItemSummary) int { return a.MarginPct.Cmp(b.MarginPct) }
	}
	return nil
}

func categoryComparator(key string, col *collate.Collator) func(a, b CategorySummary) int {
	switch key {
	case KeyName:
		return func(a, b CategorySummary) int { return col.CompareString(a.Name, b.Name) }
	case KeyTotalSales:
		return func(a, b CategorySummary) int { return a.TotalSales.Cmp(b.TotalSales) }
	case KeyItemCount:
		return func(a, b CategorySummary) int { return cmpInt(int64(a.ItemCount), int64(b.ItemCount)) }
	}
	return nil
}

func dailyComparator(key string) func(a, b DailySummary) int {
	switch key {
	case KeyDate:
		return func(a, b DailySummary) int {
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			}
			return 0
		}
	case KeyGrossSales:
		return func(a, b DailySummary) int { return a.GrossSales.Cmp(b.GrossSales) }
	case KeyDiscounts:
		return func(a, b DailySummary) int { return a.Discounts.Cmp(b.Discounts) }
	case KeyNetSales:
		return func(a, b DailySummary) int { return a.NetSales.Cmp(b.NetSales) }
	case KeyCost:
		return func(a, b DailySummary) int { return a.Cost.Cmp(b.Cost) }
	case KeyProfit:
		return func(a, b DailySummary) int { return a.Profit.Cmp(b.Profit) }
	case KeyMargin:
		return func(a, b DailySummary) int { return a.MarginPct.Cmp(b.MarginPct) }
	case KeyTax:
		return func(a, b DailySummary) int { return a.Tax.Cmp(b.Tax) }
	}
	return nil
}

func directed(c int, dir SortDirection) bool {
	if dir == SortDesc {
		return c > 0
	}
	return c < 0
}

// SortItems devuelve una copia de items ordenada de forma estable según cfg.
// Clave desconocida o vacía: copia en el orden de entrada.
func SortItems(items []ItemSummary, cfg SortConfig) []ItemSummary {
	out := append([]ItemSummary(nil), items...)
	cmp := itemComparator(cfg.Key, newCollator())
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return directed(cmp(out[i], out[j]), cfg.Direction) })
	return out
}

// SortCategories devuelve una copia de cats ordenada de forma estable según cfg.
func SortCategories(cats []CategorySummary, cfg SortConfig) []CategorySummary {
	out := append([]CategorySummary(nil), cats...)
	cmp := categoryComparator(cfg.Key, newCollator())
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return directed(cmp(out[i], out[j]), cfg.Direction) })
	return out
}

// SortDaily devuelve una copia de days ordenada de forma estable según cfg.
func SortDaily(days []DailySummary, cfg SortConfig) []DailySummary {
	out := append([]DailySummary(nil), days...)
	cmp := dailyComparator(cfg.Key)
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return directed(cmp(out[i], out[j]), cfg.Direction) })
	return out
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// FilterItems devuelve los items cuyo nombre de artículo O de categoría
// contienen term (sin distinguir mayúsculas). Término vacío: todos, en el
// mismo orden. Nunca muta la entrada.
func FilterItems(items []ItemSummary, term string) []ItemSummary {
	if term == "" {
		return append([]ItemSummary(nil), items...)
	}
	out := make([]ItemSummary, 0, len(items))
	for _, it := range items {
		if containsFold(it.ItemName, term) || containsFold(it.CategoryName, term) {
			out = append(out, it)
		}
	}
	return out
}

// FilterCategories devuelve las categorías cuyo nombre contiene term.
func FilterCategories(cats []CategorySummary, term string) []CategorySummary {
	if term == "" {
		return append([]CategorySummary(nil), cats...)
	}
	out := make([]CategorySummary, 0, len(cats))
	for _, c := range cats {
		if containsFold(c.Name, term) {
			out = append(out, c)
		}
	}
	return out
}

// ApplyItems recalcula orden y filtro desde el conjunto agregado completo:
// primero ordena, después filtra (mismo orden de derivación que la vista).
func ApplyItems(items []ItemSummary, cfg SortConfig, term string) []ItemSummary {
	return FilterItems(SortItems(items, cfg), term)
}
