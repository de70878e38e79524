// Package cli implementa la superficie interactiva: un menú numerado
// cuyas opciones mapean 1:1 con las operaciones del almacén y del
// agregador. Valida y recolecta la entrada de campos ANTES de llamar al
// núcleo; el núcleo nunca ve texto crudo del usuario.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-almacen/internal/application/analytics"
	"github.com/jhoicas/inventario-almacen/internal/application/inventory"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/export"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

const divider = "============================================================"

// Menu superficie interactiva del sistema.
type Menu struct {
	store *inventory.Store
	agg   *analytics.Aggregator
	exp   *export.Exporter
	pdf   *pdf.ReportGenerator
	log   *logger.Logger
	in    *bufio.Scanner
	out   io.Writer
}

// NewMenu construye el menú. in y out se inyectan para poder guiar la
// interacción desde tests.
func NewMenu(
	store *inventory.Store,
	agg *analytics.Aggregator,
	exp *export.Exporter,
	pdfGen *pdf.ReportGenerator,
	log *logger.Logger,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		store: store,
		agg:   agg,
		exp:   exp,
		pdf:   pdfGen,
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run ejecuta el ciclo principal hasta que el usuario elige salir o la
// entrada se agota.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.printMainMenu()
		choice, ok := m.prompt("Seleccione una opción")
		if !ok {
			return
		}
		switch choice {
		case "0":
			fmt.Fprintln(m.out, "\nGracias por usar el sistema de inventario de bodega.")
			return
		case "1":
			m.handleViewAll()
		case "2":
			m.handleSearch()
		case "3":
			m.handleViewDetails()
		case "4":
			m.handleAdd(ctx)
		case "5":
			m.handleUpdate(ctx)
		case "6":
			m.handleDelete(ctx)
		case "7":
			m.handleAdjustQuantity(ctx)
		case "8":
			m.handleLowStock()
		case "9":
			m.handleSummary()
		case "10":
			m.handleViewByCategory()
		case "11":
			m.handleViewBySupplier()
		case "12":
			m.runAnalyticsMenu()
		case "13":
			m.runExportMenu()
		default:
			fmt.Fprintln(m.out, "✗ Opción inválida. Intente de nuevo.")
		}
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.out, "\n"+divider)
	fmt.Fprintln(m.out, "SISTEMA DE INVENTARIO DE BODEGA")
	fmt.Fprintln(m.out, divider)
	fmt.Fprintln(m.out, "1.  Ver todos los productos")
	fmt.Fprintln(m.out, "2.  Buscar producto")
	fmt.Fprintln(m.out, "3.  Ver detalle de producto")
	fmt.Fprintln(m.out, "4.  Agregar producto")
	fmt.Fprintln(m.out, "5.  Actualizar producto")
	fmt.Fprintln(m.out, "6.  Eliminar producto")
	fmt.Fprintln(m.out, "7.  Ajustar cantidad de stock")
	fmt.Fprintln(m.out, "8.  Ver productos con stock bajo")
	fmt.Fprintln(m.out, "9.  Ver resumen del inventario")
	fmt.Fprintln(m.out, "10. Ver por categoría")
	fmt.Fprintln(m.out, "11. Ver por proveedor")
	fmt.Fprintln(m.out, "12. Analítica y reportes")
	fmt.Fprintln(m.out, "13. Exportar reportes")
	fmt.Fprintln(m.out, "0.  Salir")
	fmt.Fprintln(m.out, divider)
}

// prompt pide una línea y la devuelve recortada. ok es false cuando la
// entrada se agotó (EOF).
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprintf(m.out, "\n%s: ", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
