// Package analytics contiene las vistas derivadas de solo lectura sobre
// el inventario: valor total, stock bajo, resúmenes por categoría y
// proveedor, distribución de niveles, ranking por valor y sugerencias de
// reposición.
//
// Ninguna vista se cachea: cada llamada recalcula desde el estado actual
// del almacén, así los resultados siempre reflejan la última mutación.
// A la escala declarada (decenas a pocos miles de registros) el rescan
// lineal es suficiente.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// RecordSource es la vista de lectura que el agregador necesita del
// almacén de inventario.
type RecordSource interface {
	Items() []entity.Product
}

// Aggregator vistas derivadas sobre un RecordSource.
type Aggregator struct {
	source RecordSource
}

// NewAggregator construye el agregador.
func NewAggregator(source RecordSource) *Aggregator {
	return &Aggregator{source: source}
}

// TotalValue suma quantity × unit_price de todos los registros.
func (a *Aggregator) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.source.Items() {
		total = total.Add(p.Value())
	}
	return total
}

// LowStockItems registros en o por debajo de su punto de reorden
// (umbral inclusivo), en orden del almacén.
func (a *Aggregator) LowStockItems() []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range a.source.Items() {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// CategorySummary resumen por categoría: una entrada por categoría
// presente, ninguna para categorías sin registros.
func (a *Aggregator) CategorySummary() map[string]dto.CategorySummary {
	summary := make(map[string]dto.CategorySummary)
	for _, p := range a.source.Items() {
		s := summary[p.Category]
		s.Count++
		s.TotalQuantity += p.Quantity
		s.TotalValue = s.TotalValue.Add(p.Value())
		summary[p.Category] = s
	}
	return summary
}

// CategoryAnalysis filas del resumen por categoría ordenadas por valor
// descendente, con participación porcentual sobre el valor total.
func (a *Aggregator) CategoryAnalysis() []dto.CategorySummaryRow {
	summary := a.CategorySummary()
	total := a.TotalValue()
	hundred := decimal.NewFromInt(100)

	rows := make([]dto.CategorySummaryRow, 0, len(summary))
	for category, s := range summary {
		row := dto.CategorySummaryRow{Category: category, Summary: s}
		if total.IsPositive() {
			row.SharePct = s.TotalValue.Div(total).Mul(hundred).Round(1)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Summary.TotalValue.Equal(rows[j].Summary.TotalValue) {
			return rows[i].Summary.TotalValue.GreaterThan(rows[j].Summary.TotalValue)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}

// SupplierSummary desempeño por proveedor; low_stock_items usa el mismo
// umbral inclusivo que LowStockItems.
func (a *Aggregator) SupplierSummary() map[string]dto.SupplierSummary {
	summary := make(map[string]dto.SupplierSummary)
	for _, p := range a.source.Items() {
		s := summary[p.Supplier]
		s.Products++
		s.TotalQuantity += p.Quantity
		s.TotalValue = s.TotalValue.Add(p.Value())
		if p.IsLowStock() {
			s.LowStockItems++
		}
		summary[p.Supplier] = s
	}
	return summary
}

// SupplierPerformance filas del resumen por proveedor ordenadas por
// valor total descendente.
func (a *Aggregator) SupplierPerformance() []dto.SupplierSummaryRow {
	summary := a.SupplierSummary()
	rows := make([]dto.SupplierSummaryRow, 0, len(summary))
	for supplier, s := range summary {
		rows = append(rows, dto.SupplierSummaryRow{Supplier: supplier, Summary: s})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Summary.TotalValue.Equal(rows[j].Summary.TotalValue) {
			return rows[i].Summary.TotalValue.GreaterThan(rows[j].Summary.TotalValue)
		}
		return rows[i].Supplier < rows[j].Supplier
	})
	return rows
}

// StockDistribution clasifica cada registro en exactamente una cubeta.
// Con reorder == 0: qty == 0 cae en critical y cualquier qty > 0 en high
// (2×0 = 0, así que qty > 0 supera el doble del reorden).
func (a *Aggregator) StockDistribution() dto.StockDistribution {
	var d dto.StockDistribution
	for _, p := range a.source.Items() {
		switch Classify(p) {
		case dto.StockCritical:
			d.Critical = append(d.Critical, p)
		case dto.StockLow:
			d.Low = append(d.Low, p)
		case dto.StockNormal:
			d.Normal = append(d.Normal, p)
		default:
			d.High = append(d.High, p)
		}
	}
	return d
}

// Classify devuelve el nivel de stock de un registro. Los umbrales se
// evalúan en aritmética entera (4×qty <= reorder equivale a
// qty <= 0.25×reorder) para no introducir redondeo flotante en los bordes.
func Classify(p entity.Product) dto.StockLevel {
	switch {
	case p.Quantity == 0 || 4*p.Quantity <= p.ReorderLevel:
		return dto.StockCritical
	case p.Quantity <= p.ReorderLevel:
		return dto.StockLow
	case p.Quantity <= 2*p.ReorderLevel:
		return dto.StockNormal
	default:
		return dto.StockHigh
	}
}

// TopByValue los n registros de mayor valor de inventario, descendente.
// Orden estable: a igual valor gana el que entró primero al almacén, y
// TopByValue(n) es siempre prefijo de TopByValue(n+1).
func (a *Aggregator) TopByValue(n int) []dto.ProductValue {
	items := a.source.Items()
	ranked := make([]dto.ProductValue, 0, len(items))
	for _, p := range items {
		ranked = append(ranked, dto.ProductValue{Product: p, Value: p.Value()})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// ReorderRecommendations sugerencias de pedido para los registros bajo
// el punto de reorden, agrupadas por proveedor y con los proveedores
// ordenados por nombre. Meta de reposición: 2× reorder_level, así que la
// cantidad sugerida es 2×reorder_level − quantity (≥ 0 por construcción:
// un registro con reorder 0 solo es stock bajo con qty 0).
func (a *Aggregator) ReorderRecommendations() []dto.SupplierReorder {
	bySupplier := make(map[string][]dto.ReorderSuggestion)
	for _, p := range a.LowStockItems() {
		bySupplier[p.Supplier] = append(bySupplier[p.Supplier], dto.ReorderSuggestion{
			Product:      p,
			SuggestedQty: 2*p.ReorderLevel - p.Quantity,
		})
	}

	suppliers := make([]string, 0, len(bySupplier))
	for s := range bySupplier {
		suppliers = append(suppliers, s)
	}
	sort.Strings(suppliers)

	out := make([]dto.SupplierReorder, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.SupplierReorder{Supplier: s, Items: bySupplier[s]})
	}
	return out
}

// Summary vista general del inventario: conteos, valor total y el
// desglose por categoría ordenado.
func (a *Aggregator) Summary() dto.InventorySummary {
	return dto.InventorySummary{
		TotalProducts: len(a.source.Items()),
		TotalValue:    a.TotalValue(),
		LowStockCount: len(a.LowStockItems()),
		Categories:    a.CategoryAnalysis(),
	}
}
