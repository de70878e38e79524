// Package export produce los archivos de reporte: inventario completo en
// CSV, reportes estructurados en JSON y el informe de estado en PDF. Los
// fallos de exportación se reportan al llamador pero nunca tumban el
// sistema.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// Exporter escribe reportes en el directorio configurado.
type Exporter struct {
	dir string
	log *logger.Logger
}

// New construye el exportador. dir vacío exporta al directorio actual.
func New(dir string, log *logger.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, log: log}
}

// ── Reportes JSON ─────────────────────────────────────────────────────────────

// productJSON forma de un registro en los reportes JSON.
type productJSON struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"product_name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	UnitPrice    string `json:"unit_price"`
	ReorderLevel int    `json:"reorder_level"`
	Supplier     string `json:"supplier"`
	Location     string `json:"warehouse_location"`
	LastUpdated  string `json:"last_updated"`
}

func toProductJSON(p entity.Product) productJSON {
	return productJSON{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Category:     p.Category,
		Quantity:     p.Quantity,
		UnitPrice:    p.UnitPrice.String(),
		ReorderLevel: p.ReorderLevel,
		Supplier:     p.Supplier,
		Location:     p.Location,
		LastUpdated:  p.LastUpdated.Format(entity.DateLayout),
	}
}

// lowStockReport reporte de stock bajo.
type lowStockReport struct {
	ReportID    string        `json:"report_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	TotalItems  int           `json:"total_low_stock_items"`
	Items       []productJSON `json:"items"`
}

// categoryReport resumen por categoría.
type categoryReport struct {
	ReportID        string                   `json:"report_id"`
	GeneratedAt     time.Time                `json:"generated_at"`
	TotalCategories int                      `json:"total_categories"`
	Categories      []dto.CategorySummaryRow `json:"categories"`
}

// LowStockJSON exporta los registros bajo el punto de reorden.
// Devuelve la ruta escrita.
func (e *Exporter) LowStockJSON(filename string, items []entity.Product) (string, error) {
	report := lowStockReport{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now(),
		TotalItems:  len(items),
		Items:       make([]productJSON, 0, len(items)),
	}
	for _, p := range items {
		report.Items = append(report.Items, toProductJSON(p))
	}
	return e.writeJSON(filename, report)
}

// CategorySummaryJSON exporta el resumen por categoría ordenado.
func (e *Exporter) CategorySummaryJSON(filename string, rows []dto.CategorySummaryRow) (string, error) {
	report := categoryReport{
		ReportID:        uuid.New().String(),
		GeneratedAt:     time.Now(),
		TotalCategories: len(rows),
		Categories:      rows,
	}
	return e.writeJSON(filename, report)
}

// ── Inventario completo en CSV ────────────────────────────────────────────────

// InventoryCSV exporta la secuencia completa de registros, en orden del
// almacén, con el mismo formato de columnas que el respaldo.
func (e *Exporter) InventoryCSV(filename string, items []entity.Product) (string, error) {
	path := filepath.Join(e.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	head := []string{
		"product_id", "product_name", "category", "quantity",
		"unit_price", "reorder_level", "supplier", "warehouse_location",
		"last_updated",
	}
	if err := w.Write(head); err != nil {
		return "", err
	}
	for _, p := range items {
		row := []string{
			p.ProductID, p.Name, p.Category, strconv.Itoa(p.Quantity),
			p.UnitPrice.String(), strconv.Itoa(p.ReorderLevel),
			p.Supplier, p.Location, p.LastUpdated.Format(entity.DateLayout),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}

	e.log.Info().Str("ruta", path).Int("productos", len(items)).Msg("inventario exportado a CSV")
	return path, nil
}

// WriteBytes guarda un reporte ya renderizado (p. ej. el PDF de estado).
func (e *Exporter) WriteBytes(filename string, data []byte) (string, error) {
	path := filepath.Join(e.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	e.log.Info().Str("ruta", path).Msg("reporte exportado")
	return path, nil
}

func (e *Exporter) writeJSON(filename string, v any) (string, error) {
	path := filepath.Join(e.dir, filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar reporte: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	e.log.Info().Str("ruta", path).Msg("reporte exportado a JSON")
	return path, nil
}
