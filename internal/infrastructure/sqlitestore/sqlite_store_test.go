package sqlitestore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/sqlitestore"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func abrir(t *testing.T) *sqlitestore.Store {
	t.Helper()
	s, err := sqlitestore.New(filepath.Join(t.TempDir(), "inv.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func producto(id string, qty int) entity.Product {
	return entity.Product{
		ProductID:    id,
		Name:         "Item " + id,
		Category:     "General",
		Quantity:     qty,
		UnitPrice:    decimal.RequireFromString("19.95"),
		ReorderLevel: 3,
		Supplier:     "Acme",
		Location:     "A1-01",
		LastUpdated:  time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoad_BaseNuevaDevuelveVacio(t *testing.T) {
	s := abrir(t)

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSaveLoad_PreservaOrdenDeInsercion(t *testing.T) {
	s := abrir(t)
	ctx := context.Background()

	original := []entity.Product{producto("P003", 1), producto("P001", 2), producto("P002", 3)}
	require.NoError(t, s.Save(ctx, original))

	items, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, p := range original {
		assert.Equal(t, p.ProductID, items[i].ProductID, "el orden de inserción no es alfabético, es el del almacén")
		assert.Equal(t, p.Quantity, items[i].Quantity)
		assert.True(t, p.UnitPrice.Equal(items[i].UnitPrice))
	}
}

func TestSave_ReescrituraCompleta(t *testing.T) {
	s := abrir(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []entity.Product{producto("P001", 1), producto("P002", 2)}))
	// Segundo guardado con un registro menos: la tabla refleja exactamente el conjunto nuevo.
	require.NoError(t, s.Save(ctx, []entity.Product{producto("P002", 9)}))

	items, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "P002", items[0].ProductID)
	assert.Equal(t, 9, items[0].Quantity)
}
