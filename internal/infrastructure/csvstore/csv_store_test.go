package csvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func producto(id string) entity.Product {
	return entity.Product{
		ProductID:    id,
		Name:         "Impresora Láser",
		Category:     "Electrónica",
		Quantity:     12,
		UnitPrice:    decimal.RequireFromString("249.99"),
		ReorderLevel: 5,
		Supplier:     "Suministros Bogotá",
		Location:     "B2-04",
		LastUpdated:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoad_ArchivoInexistenteDevuelveVacio(t *testing.T) {
	s := csvstore.New(filepath.Join(t.TempDir(), "no_existe.csv"), logger.Nop())

	items, err := s.Load(context.Background())

	require.NoError(t, err, "un archivo faltante no es un error de carga")
	assert.Empty(t, items)
}

func TestSaveLoad_IdaYVuelta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos", "inventario.csv")
	s := csvstore.New(path, logger.Nop())

	original := []entity.Product{producto("P001"), producto("P002")}
	require.NoError(t, s.Save(context.Background(), original), "Save debe crear el directorio que falte")

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "P001", items[0].ProductID, "el orden del archivo se preserva")
	assert.Equal(t, "Impresora Láser", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("249.99")),
		"el precio sobrevive el viaje como texto sin perder precisión")
	assert.Equal(t, "2026-08-01", items[0].LastUpdated.Format(entity.DateLayout))
}

func TestLoad_DescartaFilasMalformadas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.csv")
	contenido := "product_id,product_name,category,quantity,unit_price,reorder_level,supplier,warehouse_location,last_updated\n" +
		"P001,Laptop,Electronics,10,999.99,5,TechCorp,A1-01,2026-08-01\n" +
		"P002,Mouse,Electronics,muchos,25.00,5,TechCorp,A1-02,2026-08-01\n" + // quantity no numérica
		"P003,Teclado,Electronics,8,45.00,4,TechCorp,A1-03,2026-08-01\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	items, err := csvstore.New(path, logger.Nop()).Load(context.Background())

	require.NoError(t, err, "una fila mala no aborta la carga")
	require.Len(t, items, 2)
	assert.Equal(t, "P001", items[0].ProductID)
	assert.Equal(t, "P003", items[1].ProductID)
}

func TestLoad_DecodificaLatin1(t *testing.T) {
	// "Electrónica" y "Bogotá" codificados en ISO-8859-1 (ó = 0xF3, á = 0xE1),
	// como los exporta Excel en Windows.
	path := filepath.Join(t.TempDir(), "legacy.csv")
	contenido := []byte("product_id,product_name,category,quantity,unit_price,reorder_level,supplier,warehouse_location,last_updated\n" +
		"P001,Impresora,Electr\xf3nica,12,249.99,5,Suministros Bogot\xe1,B2-04,2026-08-01\n")
	require.NoError(t, os.WriteFile(path, contenido, 0o644))

	items, err := csvstore.New(path, logger.Nop()).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Electrónica", items[0].Category)
	assert.Equal(t, "Suministros Bogotá", items[0].Supplier)
}

func TestLoad_CabeceraEnOtroOrden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reordenado.csv")
	contenido := "quantity,product_id,supplier,product_name,category,unit_price,reorder_level,warehouse_location,last_updated\n" +
		"7,P009,Acme,Silla,Muebles,89.90,3,C1-11,2026-07-15\n"
	require.NoError(t, os.WriteFile(path, []byte(contenido), 0o644))

	items, err := csvstore.New(path, logger.Nop()).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "P009", items[0].ProductID)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, "Muebles", items[0].Category)
}
