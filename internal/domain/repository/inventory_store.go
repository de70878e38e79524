// Package repository define los puertos de persistencia del dominio.
// Las implementaciones viven en internal/infrastructure.
package repository

import (
	"context"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
)

// InventoryStore es el puerto de persistencia del inventario completo.
// El contrato es de conjunto entero: Save escribe TODOS los registros en
// cada llamada (sin escrituras parciales ni bitácora de transacciones).
//
// Load sobre una fuente inexistente devuelve un inventario vacío sin
// error: la construcción del sistema nunca falla por falta del archivo
// de respaldo. Los valores numéricos viajan como texto en el medio de
// respaldo; interpretarlos es responsabilidad del adaptador al cargar.
type InventoryStore interface {
	Load(ctx context.Context) ([]entity.Product, error)
	Save(ctx context.Context, items []entity.Product) error
}
