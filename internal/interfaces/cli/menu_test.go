package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-almacen/internal/application/analytics"
	"github.com/jhoicas/inventario-almacen/internal/application/inventory"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/export"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-almacen/internal/interfaces/cli"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// runMenu ejecuta el menú contra un guion de entradas y devuelve todo lo
// impreso. El almacén usa un CSV en directorio temporal.
func runMenu(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	backend := csvstore.New(filepath.Join(dir, "inv.csv"), logger.Nop())
	store := inventory.NewStore(context.Background(), backend, logger.Nop())
	agg := analytics.NewAggregator(store)

	var out bytes.Buffer
	menu := cli.NewMenu(store, agg, export.New(dir, logger.Nop()), pdf.NewReportGenerator(),
		logger.Nop(), strings.NewReader(script), &out)
	menu.Run(context.Background())
	return out.String()
}

func TestMenu_AgregarYListar(t *testing.T) {
	script := strings.Join([]string{
		"4",           // agregar producto
		"P001",        // id
		"Laptop",      // nombre
		"Electronics", // categoría
		"10",          // cantidad
		"999.99",      // precio
		"5",           // reorden
		"TechCorp",    // proveedor
		"A1-01",       // ubicación
		"1",           // ver todos
		"0",           // salir
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "✓ Producto agregado: Laptop")
	assert.Contains(t, out, "P001")
	assert.Contains(t, out, "Total: 1 productos")
}

func TestMenu_EntradaNoNumericaSeReintenta(t *testing.T) {
	script := strings.Join([]string{
		"4", "P001", "Laptop", "Electronics",
		"muchos", // cantidad inválida: se vuelve a pedir
		"10",
		"999.99", "5", "TechCorp", "A1-01",
		"0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "✗ Ingrese un número entero válido.")
	assert.Contains(t, out, "✓ Producto agregado: Laptop")
}

func TestMenu_OpcionInvalida(t *testing.T) {
	out := runMenu(t, "99\n0\n")
	assert.Contains(t, out, "✗ Opción inválida. Intente de nuevo.")
}

func TestMenu_EliminarPideConfirmacion(t *testing.T) {
	script := strings.Join([]string{
		"4", "P001", "Laptop", "Electronics", "10", "999.99", "5", "TechCorp", "A1-01",
		"6", "P001", "no", // eliminar pero cancelar
		"6", "P001", "si", // eliminar confirmando
		"0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "Eliminación cancelada.")
	assert.Contains(t, out, "✓ Producto eliminado: P001")
}

func TestMenu_FinDeEntradaTermina(t *testing.T) {
	// Sin opción de salida: el EOF del guion debe cerrar el ciclo sin colgarse.
	out := runMenu(t, "1\n")
	require.NotEmpty(t, out)
	assert.Contains(t, out, "No se encontraron productos.")
}
