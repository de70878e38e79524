package export_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/export"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func muestras() []entity.Product {
	return []entity.Product{
		{
			ProductID: "P001", Name: "Laptop", Category: "Electronics",
			Quantity: 10, UnitPrice: decimal.RequireFromString("999.99"),
			ReorderLevel: 5, Supplier: "TechCorp", Location: "A1-01",
			LastUpdated: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ProductID: "P002", Name: "Mouse", Category: "Electronics",
			Quantity: 2, UnitPrice: decimal.RequireFromString("25.00"),
			ReorderLevel: 5, Supplier: "TechCorp", Location: "A1-02",
			LastUpdated: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestInventoryCSV_ColumnasYOrden(t *testing.T) {
	e := export.New(t.TempDir(), logger.Nop())

	path, err := e.InventoryCSV("inventario.csv", muestras())
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "cabecera + dos registros")
	assert.Equal(t, "product_id", rows[0][0])
	assert.Equal(t, []string{"P001", "Laptop", "Electronics", "10", "999.99", "5", "TechCorp", "A1-01", "2026-08-20"}, rows[1])
	assert.Equal(t, "P002", rows[2][0], "el orden del almacén se mantiene en el export")
}

func TestLowStockJSON_EstructuraDelReporte(t *testing.T) {
	e := export.New(t.TempDir(), logger.Nop())

	path, err := e.LowStockJSON("stock_bajo.json", muestras()[1:])
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		ReportID    string    `json:"report_id"`
		GeneratedAt time.Time `json:"generated_at"`
		TotalItems  int       `json:"total_low_stock_items"`
		Items       []struct {
			ProductID string `json:"product_id"`
			UnitPrice string `json:"unit_price"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))

	_, err = uuid.Parse(report.ReportID)
	assert.NoError(t, err, "report_id debe ser un UUID válido")
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 1, report.TotalItems)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "P002", report.Items[0].ProductID)
	assert.Equal(t, "25.00", report.Items[0].UnitPrice)
}

func TestCategorySummaryJSON_Filas(t *testing.T) {
	e := export.New(t.TempDir(), logger.Nop())
	rows := []dto.CategorySummaryRow{
		{
			Category: "Electronics",
			Summary: dto.CategorySummary{
				Count: 2, TotalQuantity: 12,
				TotalValue: decimal.RequireFromString("10049.90"),
			},
			SharePct: decimal.NewFromInt(100),
		},
	}

	path, err := e.CategorySummaryJSON("categorias.json", rows)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report struct {
		TotalCategories int `json:"total_categories"`
		Categories      []struct {
			Category string `json:"category"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, 1, report.TotalCategories)
	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Electronics", report.Categories[0].Category)
}
