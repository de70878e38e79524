package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// renderTable imprime una tabla de productos con columnas fijas, en el
// orden en que llegan.
func renderTable(w io.Writer, items []entity.Product) {
	if len(items) == 0 {
		fmt.Fprintln(w, "\nNo se encontraron productos.")
		return
	}

	sep := strings.Repeat("-", 120)
	fmt.Fprintln(w, "\n"+sep)
	fmt.Fprintf(w, "%-8s %-26s %-15s %-6s %-11s %-8s %-10s %-20s\n",
		"ID", "Nombre", "Categoría", "Qty", "Precio", "Reorden", "Ubicación", "Proveedor")
	fmt.Fprintln(w, sep)

	for _, p := range items {
		fmt.Fprintf(w, "%-8s %-26s %-15s %-6d $%-10s %-8d %-10s %-20s\n",
			p.ProductID,
			truncate(p.Name, 26),
			truncate(p.Category, 15),
			p.Quantity,
			p.UnitPrice.StringFixed(2),
			p.ReorderLevel,
			truncate(p.Location, 10),
			truncate(p.Supplier, 20),
		)
	}

	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Total: %d productos\n", len(items))
}

// renderDetail imprime todos los campos de un registro.
func renderDetail(w io.Writer, p entity.Product) {
	fmt.Fprintln(w, "\n"+divider)
	fmt.Fprintf(w, "ID:             %s\n", p.ProductID)
	fmt.Fprintf(w, "Nombre:         %s\n", p.Name)
	fmt.Fprintf(w, "Categoría:      %s\n", p.Category)
	fmt.Fprintf(w, "Cantidad:       %d\n", p.Quantity)
	fmt.Fprintf(w, "Precio unit.:   $%s\n", p.UnitPrice.StringFixed(2))
	fmt.Fprintf(w, "Reorden:        %d\n", p.ReorderLevel)
	fmt.Fprintf(w, "Proveedor:      %s\n", p.Supplier)
	fmt.Fprintf(w, "Ubicación:      %s\n", p.Location)
	fmt.Fprintf(w, "Actualizado:    %s\n", p.LastUpdated.Format(entity.DateLayout))
	fmt.Fprintln(w, divider)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
