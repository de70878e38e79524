package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// ── Vistas ────────────────────────────────────────────────────────────────────

func (m *Menu) handleViewAll() {
	renderTable(m.out, m.store.Items())
}

func (m *Menu) handleSearch() {
	keyword, ok := m.prompt("Palabra clave")
	if !ok || keyword == "" {
		return
	}
	results := m.store.Search(keyword)
	fmt.Fprintf(m.out, "\nSe encontraron %d productos para %q:\n", len(results), keyword)
	renderTable(m.out, results)
}

func (m *Menu) handleViewDetails() {
	id, ok := m.prompt("ID del producto")
	if !ok {
		return
	}
	p, found := m.store.Get(id)
	if !found {
		fmt.Fprintf(m.out, "✗ Producto %q no encontrado.\n", id)
		return
	}
	renderDetail(m.out, p)
}

func (m *Menu) handleLowStock() {
	low := m.agg.LowStockItems()
	fmt.Fprintf(m.out, "\n⚠ Productos con stock bajo (en o por debajo del reorden): %d\n", len(low))
	renderTable(m.out, low)
}

func (m *Menu) handleSummary() {
	s := m.agg.Summary()
	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "RESUMEN DEL INVENTARIO")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintf(m.out, "Total de productos:  %d\n", s.TotalProducts)
	fmt.Fprintf(m.out, "Valor total:         $%s\n", s.TotalValue.StringFixed(2))
	fmt.Fprintf(m.out, "Stock bajo:          %d\n", s.LowStockCount)
	fmt.Fprintln(m.out, "\nDesglose por categoría:")
	for _, row := range s.Categories {
		fmt.Fprintf(m.out, "  %s:\n", row.Category)
		fmt.Fprintf(m.out, "    - Productos: %d\n", row.Summary.Count)
		fmt.Fprintf(m.out, "    - Cantidad total: %d\n", row.Summary.TotalQuantity)
		fmt.Fprintf(m.out, "    - Valor total: $%s\n", row.Summary.TotalValue.StringFixed(2))
	}
	fmt.Fprintln(m.out, divider)
}

func (m *Menu) handleViewByCategory() {
	fmt.Fprintln(m.out, "\nCategorías disponibles:")
	for _, c := range m.store.Categories() {
		fmt.Fprintf(m.out, "  - %s\n", c)
	}
	category, ok := m.prompt("Nombre de la categoría")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "\nProductos en la categoría %q:\n", category)
	renderTable(m.out, m.store.FilterByCategory(category))
}

func (m *Menu) handleViewBySupplier() {
	fmt.Fprintln(m.out, "\nProveedores disponibles:")
	for _, s := range m.store.Suppliers() {
		fmt.Fprintf(m.out, "  - %s\n", s)
	}
	supplier, ok := m.prompt("Nombre del proveedor")
	if !ok {
		return
	}
	fmt.Fprintf(m.out, "\nProductos del proveedor %q:\n", supplier)
	renderTable(m.out, m.store.FilterBySupplier(supplier))
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

func (m *Menu) handleAdd(ctx context.Context) {
	fmt.Fprintln(m.out, "\nAgregar producto")
	fmt.Fprintln(m.out, "------------------------------------------------------------")

	p := entity.Product{}
	var ok bool
	if p.ProductID, ok = m.prompt("ID del producto"); !ok {
		return
	}
	if p.Name, ok = m.prompt("Nombre"); !ok {
		return
	}
	if p.Category, ok = m.prompt("Categoría"); !ok {
		return
	}
	if p.Quantity, ok = m.promptInt("Cantidad"); !ok {
		return
	}
	if p.UnitPrice, ok = m.promptDecimal("Precio unitario"); !ok {
		return
	}
	if p.ReorderLevel, ok = m.promptInt("Nivel de reorden"); !ok {
		return
	}
	if p.Supplier, ok = m.prompt("Proveedor"); !ok {
		return
	}
	if p.Location, ok = m.prompt("Ubicación en bodega"); !ok {
		return
	}

	if err := m.store.Add(ctx, p); err != nil {
		fmt.Fprintf(m.out, "✗ Error al agregar: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✓ Producto agregado: %s\n", p.Name)
}

func (m *Menu) handleUpdate(ctx context.Context) {
	id, ok := m.prompt("ID del producto a actualizar")
	if !ok {
		return
	}
	current, found := m.store.Get(id)
	if !found {
		fmt.Fprintf(m.out, "✗ Producto %q no encontrado.\n", id)
		return
	}
	renderDetail(m.out, current)
	fmt.Fprintln(m.out, "\nIngrese los valores nuevos (Enter para conservar el actual):")

	var req dto.UpdateProductRequest
	if v, ok := m.promptOptional("Nombre", current.Name); !ok {
		return
	} else if v != nil {
		req.Name = v
	}
	if v, ok := m.promptOptional("Categoría", current.Category); !ok {
		return
	} else if v != nil {
		req.Category = v
	}
	if v, ok := m.promptOptionalInt("Cantidad", current.Quantity); !ok {
		return
	} else if v != nil {
		req.Quantity = v
	}
	if v, ok := m.promptOptionalDecimal("Precio unitario", current.UnitPrice); !ok {
		return
	} else if v != nil {
		req.UnitPrice = v
	}
	if v, ok := m.promptOptionalInt("Nivel de reorden", current.ReorderLevel); !ok {
		return
	} else if v != nil {
		req.ReorderLevel = v
	}
	if v, ok := m.promptOptional("Proveedor", current.Supplier); !ok {
		return
	} else if v != nil {
		req.Supplier = v
	}
	if v, ok := m.promptOptional("Ubicación en bodega", current.Location); !ok {
		return
	} else if v != nil {
		req.Location = v
	}

	if req.IsEmpty() {
		fmt.Fprintln(m.out, "Sin cambios.")
		return
	}
	if err := m.store.Update(ctx, id, req); err != nil {
		fmt.Fprintf(m.out, "✗ Error al actualizar: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✓ Producto actualizado: %s\n", id)
}

func (m *Menu) handleDelete(ctx context.Context) {
	id, ok := m.prompt("ID del producto a eliminar")
	if !ok {
		return
	}
	p, found := m.store.Get(id)
	if !found {
		fmt.Fprintf(m.out, "✗ Producto %q no encontrado.\n", id)
		return
	}
	renderDetail(m.out, p)

	confirm, ok := m.prompt("¿Seguro que desea eliminar este producto? (si/no)")
	if !ok || confirm != "si" {
		fmt.Fprintln(m.out, "Eliminación cancelada.")
		return
	}
	if err := m.store.Delete(ctx, id); err != nil {
		fmt.Fprintf(m.out, "✗ Error al eliminar: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✓ Producto eliminado: %s\n", id)
}

func (m *Menu) handleAdjustQuantity(ctx context.Context) {
	id, ok := m.prompt("ID del producto")
	if !ok {
		return
	}
	p, found := m.store.Get(id)
	if !found {
		fmt.Fprintf(m.out, "✗ Producto %q no encontrado.\n", id)
		return
	}

	fmt.Fprintf(m.out, "\nCantidad actual: %d\n", p.Quantity)
	delta, ok := m.promptInt("Cambio de cantidad (positivo agrega, negativo retira)")
	if !ok {
		return
	}
	nueva, err := m.store.AdjustQuantity(ctx, id, delta)
	if err != nil {
		fmt.Fprintf(m.out, "✗ Error al ajustar: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✓ Cantidad actualizada: %d → %d\n", p.Quantity, nueva)
}

// ── Recolección de campos ─────────────────────────────────────────────────────

func (m *Menu) promptInt(label string) (int, bool) {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "✗ Ingrese un número entero válido.")
			continue
		}
		return n, true
	}
}

func (m *Menu) promptDecimal(label string) (decimal.Decimal, bool) {
	for {
		raw, ok := m.prompt(label)
		if !ok {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(m.out, "✗ Ingrese un valor decimal válido (ej. 249.99).")
			continue
		}
		return d, true
	}
}

// promptOptional variante Enter-para-conservar: devuelve nil si el
// usuario no escribió nada.
func (m *Menu) promptOptional(label, current string) (*string, bool) {
	raw, ok := m.prompt(fmt.Sprintf("%s [%s]", label, current))
	if !ok {
		return nil, false
	}
	if raw == "" {
		return nil, true
	}
	return &raw, true
}

func (m *Menu) promptOptionalInt(label string, current int) (*int, bool) {
	for {
		raw, ok := m.prompt(fmt.Sprintf("%s [%d]", label, current))
		if !ok {
			return nil, false
		}
		if raw == "" {
			return nil, true
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(m.out, "✗ Ingrese un número entero válido.")
			continue
		}
		return &n, true
	}
}

func (m *Menu) promptOptionalDecimal(label string, current decimal.Decimal) (*decimal.Decimal, bool) {
	for {
		raw, ok := m.prompt(fmt.Sprintf("%s [%s]", label, current.StringFixed(2)))
		if !ok {
			return nil, false
		}
		if raw == "" {
			return nil, true
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(m.out, "✗ Ingrese un valor decimal válido (ej. 249.99).")
			continue
		}
		return &d, true
	}
}
