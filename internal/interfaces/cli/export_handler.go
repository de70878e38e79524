package cli

import "fmt"

// runExportMenu submenú de exportación. Los fallos de exportación se
// muestran y se sigue operando, nunca tumban el menú.
func (m *Menu) runExportMenu() {
	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "EXPORTAR REPORTES")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintln(m.out, "1. Inventario completo (CSV)")
	fmt.Fprintln(m.out, "2. Reporte de stock bajo (JSON)")
	fmt.Fprintln(m.out, "3. Resumen por categoría (JSON)")
	fmt.Fprintln(m.out, "4. Informe de estado (PDF)")
	fmt.Fprintln(m.out, "0. Cancelar")
	fmt.Fprintln(m.out, divider)

	choice, ok := m.prompt("Seleccione una opción de exportación")
	if !ok {
		return
	}

	switch choice {
	case "1":
		name := m.promptFilename("inventory_export.csv")
		path, err := m.exp.InventoryCSV(name, m.store.Items())
		m.reportExport(path, err)
	case "2":
		name := m.promptFilename("low_stock_report.json")
		path, err := m.exp.LowStockJSON(name, m.agg.LowStockItems())
		m.reportExport(path, err)
	case "3":
		name := m.promptFilename("category_summary.json")
		path, err := m.exp.CategorySummaryJSON(name, m.agg.CategoryAnalysis())
		m.reportExport(path, err)
	case "4":
		name := m.promptFilename("inventory_status.pdf")
		data, err := m.pdf.GenerateStatusReport(
			"Bodega principal",
			m.agg.Summary(),
			m.agg.StockDistribution(),
			m.agg.LowStockItems(),
		)
		if err != nil {
			m.reportExport("", err)
			return
		}
		path, err := m.exp.WriteBytes(name, data)
		m.reportExport(path, err)
	case "0":
		return
	default:
		fmt.Fprintln(m.out, "✗ Opción inválida.")
	}
}

func (m *Menu) promptFilename(def string) string {
	name, ok := m.prompt(fmt.Sprintf("Nombre de archivo (default: %s)", def))
	if !ok || name == "" {
		return def
	}
	return name
}

func (m *Menu) reportExport(path string, err error) {
	if err != nil {
		fmt.Fprintf(m.out, "✗ Error al exportar: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✓ Reporte exportado en %q\n", path)
}
