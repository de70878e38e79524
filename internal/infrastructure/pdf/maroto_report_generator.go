// Package pdf genera el informe de estado de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de bodega  │  Fecha + ID de reporte         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos / valor total / stock bajo              │
//	│  DISTRIBUCIÓN: critical | low | normal | high               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK BAJO: ID | Producto | Qty | Reorden | Proveedor │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator renderiza el informe de estado usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateStatusReport genera el PDF y devuelve sus bytes.
func (g *ReportGenerator) GenerateStatusReport(
	title string,
	summary dto.InventorySummary,
	distribution dto.StockDistribution,
	lowStock []entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Estado de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(distributionRow(distribution))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lowStockHeaderRow(len(lowStock)))
	if len(lowStock) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Todos los productos están adecuadamente abastecidos.", props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(lowStockTableHeader())
		for _, r := range lowStockRows(lowStock) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq), fecha e id de reporte (der).
func headerRow(title string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Informe de Estado de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Reporte: "+uuid.New().String()[:8], props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales generales.
func summaryRow(s dto.InventorySummary) core.Row {
	metric := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6, Color: c,
			}),
		)
	}
	return row.New(16).Add(
		metric("Productos", fmt.Sprintf("%d", s.TotalProducts), colorPrimary),
		metric("Valor total", "$"+s.TotalValue.StringFixed(2), colorPrimary),
		metric("Stock bajo", fmt.Sprintf("%d", s.LowStockCount), colorAlert),
	)
}

// distributionRow: conteo por nivel de stock.
func distributionRow(d dto.StockDistribution) core.Row {
	bucket := func(label string, n int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 6, Color: c,
			}),
		)
	}
	return row.New(15).Add(
		bucket("Crítico (≤25% reorden)", len(d.Critical), colorAlert),
		bucket("Bajo (≤ reorden)", len(d.Low), colorAlert),
		bucket("Normal (≤ 2× reorden)", len(d.Normal), colorPrimary),
		bucket("Alto (> 2× reorden)", len(d.High), colorPrimary),
	)
}

// lowStockHeaderRow: título de la sección de stock bajo.
func lowStockHeaderRow(n int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("PRODUCTOS EN O BAJO PUNTO DE REORDEN (%d)", n), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// lowStockTableHeader: cabecera de la tabla.
func lowStockTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("ID", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Reorden", 1, align.Center),
		h("Sugerido", 1, align.Center),
		h("Proveedor", 3, align.Left),
	)
}

// lowStockRows: una fila por registro bajo el reorden, con la cantidad
// sugerida de pedido (meta 2× reorden).
func lowStockRows(items []entity.Product) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, p := range items {
		suggested := 2*p.ReorderLevel - p.Quantity
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.ProductID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorAlert,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.ReorderLevel), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", suggested), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(3).Add(text.New(p.Supplier, props.Text{Size: 8, Top: 1, Left: 1})),
		))
	}
	return result
}
