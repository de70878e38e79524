// demo recorre las capacidades del sistema con el inventario de ejemplo:
// resumen, distribución de stock, ranking por valor, análisis por
// categoría y proveedor, búsqueda, ajustes de cantidad y exportación.
//
// Uso: go run ./cmd/demo
// Respeta DATA_FILE y EXPORT_DIR; con el archivo ausente arranca vacío.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/inventario-almacen/internal/application/analytics"
	"github.com/jhoicas/inventario-almacen/internal/application/inventory"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/export"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-almacen/pkg/config"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func header(n int, title string) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Printf("  %d. %s\n", n, title)
	fmt.Println(strings.Repeat("=", 70))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})
	ctx := context.Background()

	header(1, "INICIALIZACIÓN")
	backend := csvstore.New(cfg.Store.DataFile, log)
	store := inventory.NewStore(ctx, backend, log)
	agg := analytics.NewAggregator(store)
	fmt.Printf("Inventario cargado: %d productos desde %s\n", store.Len(), cfg.Store.DataFile)
	if store.Len() == 0 {
		fmt.Println("Inventario vacío. Ejecute antes: go run ./cmd/seed")
		os.Exit(1)
	}

	header(2, "RESUMEN GENERAL")
	s := agg.Summary()
	fmt.Printf("Productos: %d | Valor total: $%s | Stock bajo: %d\n",
		s.TotalProducts, s.TotalValue.StringFixed(2), s.LowStockCount)
	for _, row := range s.Categories {
		fmt.Printf("  %-20s %2d productos  $%12s (%s%%)\n",
			row.Category, row.Summary.Count, row.Summary.TotalValue.StringFixed(2),
			row.SharePct.StringFixed(1))
	}

	header(3, "DISTRIBUCIÓN DE NIVELES DE STOCK")
	d := agg.StockDistribution()
	fmt.Printf("Crítico: %d | Bajo: %d | Normal: %d | Alto: %d (total %d)\n",
		len(d.Critical), len(d.Low), len(d.Normal), len(d.High), d.Total())

	header(4, "TOP 5 PRODUCTOS POR VALOR")
	for i, pv := range agg.TopByValue(5) {
		fmt.Printf("  %d. %-26s $%12s\n", i+1, pv.Product.Name, pv.Value.StringFixed(2))
	}

	header(5, "DESEMPEÑO POR PROVEEDOR")
	for _, r := range agg.SupplierPerformance() {
		fmt.Printf("  %-20s %2d productos  $%12s  stock bajo: %d\n",
			r.Supplier, r.Summary.Products, r.Summary.TotalValue.StringFixed(2),
			r.Summary.LowStockItems)
	}

	header(6, "BÚSQUEDA DE PRODUCTOS")
	fmt.Println("Buscando \"laptop\"...")
	for _, p := range store.Search("laptop") {
		fmt.Printf("  Encontrado: %s (%s) | Qty: %d, Precio: $%s\n",
			p.Name, p.ProductID, p.Quantity, p.UnitPrice.StringFixed(2))
	}

	header(7, "AJUSTE DE CANTIDAD")
	fmt.Println("Simulando venta: retirando 5 unidades de P001...")
	antes, _ := store.Get("P001")
	nueva, err := store.AdjustQuantity(ctx, "P001", -5)
	if err != nil {
		fmt.Printf("  ✗ %v\n", err)
	} else {
		fmt.Printf("  Cantidad: %d → %d\n", antes.Quantity, nueva)
		fmt.Println("Restaurando la cantidad original...")
		if _, err := store.AdjustQuantity(ctx, "P001", 5); err != nil {
			fmt.Printf("  ✗ %v\n", err)
		}
	}

	header(8, "SUGERENCIAS DE REPOSICIÓN")
	grupos := agg.ReorderRecommendations()
	if len(grupos) == 0 {
		fmt.Println("✓ Todos los productos están adecuadamente abastecidos.")
	}
	for _, g := range grupos {
		fmt.Printf("📦 %s:\n", g.Supplier)
		for _, item := range g.Items {
			fmt.Printf("  %s: actual %d, reorden %d → pedir %d unidades\n",
				item.Product.ProductID, item.Product.Quantity,
				item.Product.ReorderLevel, item.SuggestedQty)
		}
	}

	header(9, "EXPORTACIÓN DE REPORTES")
	exporter := export.New(cfg.Export.Dir, log)
	if path, err := exporter.InventoryCSV("demo_inventory.csv", store.Items()); err == nil {
		fmt.Println("  ✓", path)
	}
	if path, err := exporter.LowStockJSON("demo_low_stock.json", agg.LowStockItems()); err == nil {
		fmt.Println("  ✓", path)
	}
	if path, err := exporter.CategorySummaryJSON("demo_categories.json", agg.CategoryAnalysis()); err == nil {
		fmt.Println("  ✓", path)
	}
	if data, err := pdf.NewReportGenerator().GenerateStatusReport("Bodega principal", agg.Summary(), d, agg.LowStockItems()); err == nil {
		if path, err := exporter.WriteBytes("demo_status.pdf", data); err == nil {
			fmt.Println("  ✓", path)
		}
	}

	header(10, "DEMO COMPLETO")
	fmt.Println("Para uso interactivo: go run ./cmd/inventory")
}
