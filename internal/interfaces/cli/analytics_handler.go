package cli

import (
	"fmt"
	"strings"
)

// runAnalyticsMenu submenú de analítica: cada opción recalcula su vista
// desde el estado actual del almacén.
func (m *Menu) runAnalyticsMenu() {
	for {
		fmt.Fprintln(m.out, "\n"+divider)
		fmt.Fprintln(m.out, "ANALÍTICA Y REPORTES")
		fmt.Fprintln(m.out, divider)
		fmt.Fprintln(m.out, "1. Distribución de niveles de stock")
		fmt.Fprintln(m.out, "2. Top de productos por valor")
		fmt.Fprintln(m.out, "3. Análisis por categoría")
		fmt.Fprintln(m.out, "4. Desempeño por proveedor")
		fmt.Fprintln(m.out, "5. Sugerencias de reposición")
		fmt.Fprintln(m.out, "0. Volver al menú principal")
		fmt.Fprintln(m.out, divider)

		choice, ok := m.prompt("Seleccione una opción")
		if !ok {
			return
		}
		switch choice {
		case "0":
			return
		case "1":
			m.showStockDistribution()
		case "2":
			m.showTopByValue()
		case "3":
			m.showCategoryAnalysis()
		case "4":
			m.showSupplierPerformance()
		case "5":
			m.showReorderRecommendations()
		default:
			fmt.Fprintln(m.out, "✗ Opción inválida. Intente de nuevo.")
		}
	}
}

func (m *Menu) showStockDistribution() {
	d := m.agg.StockDistribution()
	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "DISTRIBUCIÓN DE NIVELES DE STOCK")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "Crítico (≤25%% del reorden):   %d productos\n", len(d.Critical))
	fmt.Fprintf(m.out, "Bajo (25-100%% del reorden):   %d productos\n", len(d.Low))
	fmt.Fprintf(m.out, "Normal (100-200%% del reorden): %d productos\n", len(d.Normal))
	fmt.Fprintf(m.out, "Alto (>200%% del reorden):      %d productos\n", len(d.High))

	if len(d.Critical) > 0 {
		fmt.Fprintln(m.out, "\n⚠ PRODUCTOS EN ESTADO CRÍTICO:")
		for _, p := range d.Critical {
			fmt.Fprintf(m.out, "  - %s: %s (Qty: %d, Reorden: %d)\n",
				p.ProductID, p.Name, p.Quantity, p.ReorderLevel)
		}
	}
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) showTopByValue() {
	const defaultTopN = 10
	top := m.agg.TopByValue(defaultTopN)

	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintf(m.out, "TOP %d PRODUCTOS POR VALOR DE INVENTARIO\n", defaultTopN)
	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "\n%-6s %-10s %-30s %-10s %-15s\n", "Puesto", "ID", "Nombre", "Cantidad", "Valor")
	fmt.Fprintln(m.out, strings.Repeat("-", 75))
	for i, pv := range top {
		fmt.Fprintf(m.out, "%-6d %-10s %-30s %-10d $%13s\n",
			i+1, pv.Product.ProductID, truncate(pv.Product.Name, 30),
			pv.Product.Quantity, pv.Value.StringFixed(2))
	}
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) showCategoryAnalysis() {
	rows := m.agg.CategoryAnalysis()
	total := m.agg.TotalValue()

	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "ANÁLISIS POR CATEGORÍA")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "\n%-20s %-10s %-12s %-15s %-12s\n", "Categoría", "Productos", "Cantidad", "Valor", "% del total")
	fmt.Fprintln(m.out, strings.Repeat("-", 75))

	totalCount, totalQty := 0, 0
	for _, r := range rows {
		fmt.Fprintf(m.out, "%-20s %-10d %-12d $%13s %10s%%\n",
			truncate(r.Category, 20), r.Summary.Count, r.Summary.TotalQuantity,
			r.Summary.TotalValue.StringFixed(2), r.SharePct.StringFixed(1))
		totalCount += r.Summary.Count
		totalQty += r.Summary.TotalQuantity
	}

	fmt.Fprintln(m.out, strings.Repeat("-", 75))
	fmt.Fprintf(m.out, "%-20s %-10d %-12d $%13s %10s%%\n",
		"TOTAL", totalCount, totalQty, total.StringFixed(2), "100.0")
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) showSupplierPerformance() {
	rows := m.agg.SupplierPerformance()

	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "DESEMPEÑO POR PROVEEDOR")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "\n%-25s %-10s %-12s %-15s %-12s\n", "Proveedor", "Productos", "Cantidad", "Valor", "Stock bajo")
	fmt.Fprintln(m.out, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(m.out, "%-25s %-10d %-12d $%13s %-12d\n",
			truncate(r.Supplier, 25), r.Summary.Products, r.Summary.TotalQuantity,
			r.Summary.TotalValue.StringFixed(2), r.Summary.LowStockItems)
	}
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) showReorderRecommendations() {
	grupos := m.agg.ReorderRecommendations()

	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "SUGERENCIAS DE REPOSICIÓN")
	fmt.Fprintln(m.out, divider)

	if len(grupos) == 0 {
		fmt.Fprintln(m.out, "\n✓ Todos los productos están adecuadamente abastecidos.")
		fmt.Fprintln(m.out, divider)
		return
	}

	n := 0
	for _, g := range grupos {
		n += len(g.Items)
	}
	fmt.Fprintf(m.out, "\n%d productos necesitan reposición:\n", n)

	for _, g := range grupos {
		fmt.Fprintf(m.out, "\n📦 %s:\n", g.Supplier)
		fmt.Fprintln(m.out, strings.Repeat("-", 60))
		for _, item := range g.Items {
			p := item.Product
			fmt.Fprintf(m.out, "  %s: %s\n", p.ProductID, p.Name)
			fmt.Fprintf(m.out, "    Actual: %d | Reorden: %d | Pedido sugerido: %d unidades\n",
				p.Quantity, p.ReorderLevel, item.SuggestedQty)
		}
	}
	fmt.Fprintln(m.out, "\n"+divider)
}
