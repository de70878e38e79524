package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// ── Resúmenes por atributo ────────────────────────────────────────────────────

// CategorySummary estadísticas de una categoría presente en el inventario.
type CategorySummary struct {
	Count         int             `json:"count"`          // productos en la categoría
	TotalQuantity int             `json:"total_quantity"` // unidades acumuladas
	TotalValue    decimal.Decimal `json:"total_value"`    // Σ quantity × unit_price
}

// CategorySummaryRow fila ordenada del análisis por categoría.
type CategorySummaryRow struct {
	Category string          `json:"category"`
	Summary  CategorySummary `json:"summary"`
	SharePct decimal.Decimal `json:"share_pct"` // participación % sobre el valor total
}

// SupplierSummary desempeño de un proveedor.
type SupplierSummary struct {
	Products      int             `json:"products"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockItems int             `json:"low_stock_items"` // umbral inclusivo qty <= reorder
}

// SupplierSummaryRow fila ordenada del reporte de proveedores.
type SupplierSummaryRow struct {
	Supplier string          `json:"supplier"`
	Summary  SupplierSummary `json:"summary"`
}

// ── Distribución de niveles de stock ──────────────────────────────────────────

// StockLevel clasificación del nivel de stock de un registro respecto a
// su punto de reorden.
type StockLevel string

const (
	StockCritical StockLevel = "critical" // qty == 0 o qty <= 25% del reorden
	StockLow      StockLevel = "low"      // 25% del reorden < qty <= reorden
	StockNormal   StockLevel = "normal"   // reorden < qty <= 2× reorden
	StockHigh     StockLevel = "high"     // qty > 2× reorden
)

// StockDistribution partición exacta del inventario en los cuatro
// niveles: ningún registro en dos cubetas, ninguno omitido.
type StockDistribution struct {
	Critical []entity.Product `json:"critical"`
	Low      []entity.Product `json:"low"`
	Normal   []entity.Product `json:"normal"`
	High     []entity.Product `json:"high"`
}

// Total devuelve cuántos registros cubre la distribución.
func (d StockDistribution) Total() int {
	return len(d.Critical) + len(d.Low) + len(d.Normal) + len(d.High)
}

// ── Ranking y reposición ──────────────────────────────────────────────────────

// ProductValue registro con su valor de inventario, para el ranking top-N.
type ProductValue struct {
	Product entity.Product  `json:"product"`
	Value   decimal.Decimal `json:"value"`
}

// ReorderSuggestion cantidad sugerida de pedido para un registro bajo el
// punto de reorden. Meta de reposición: 2× reorder_level.
type ReorderSuggestion struct {
	Product      entity.Product `json:"product"`
	SuggestedQty int            `json:"suggested_qty"` // 2×reorder_level − quantity
}

// SupplierReorder grupo de sugerencias de un proveedor. Los grupos se
// devuelven ordenados por nombre de proveedor.
type SupplierReorder struct {
	Supplier string              `json:"supplier"`
	Items    []ReorderSuggestion `json:"items"`
}

// ── Resumen general ───────────────────────────────────────────────────────────

// InventorySummary vista general del inventario para el menú y reportes.
type InventorySummary struct {
	TotalProducts int                  `json:"total_products"`
	TotalValue    decimal.Decimal      `json:"total_value"`
	LowStockCount int                  `json:"low_stock_count"`
	Categories    []CategorySummaryRow `json:"categories"` // ordenadas por valor desc
}
