package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/application/inventory"
	"github.com/jhoicas/inventario-almacen/internal/domain"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeBackend respaldo en memoria que registra cada Save para poder
// verificar la política de escritura directa tras cada mutación.
type fakeBackend struct {
	initial []entity.Product
	loadErr error
	saveErr error
	saves   int
	last    []entity.Product
}

func (f *fakeBackend) Load(context.Context) ([]entity.Product, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]entity.Product(nil), f.initial...), nil
}

func (f *fakeBackend) Save(_ context.Context, items []entity.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.last = append([]entity.Product(nil), items...)
	return nil
}

// prod construye un registro válido con los campos que importan en cada test.
func prod(id, name, category string, qty int, price string, reorder int, supplier string) entity.Product {
	return entity.Product{
		ProductID:    id,
		Name:         name,
		Category:     category,
		Quantity:     qty,
		UnitPrice:    decimal.RequireFromString(price),
		ReorderLevel: reorder,
		Supplier:     supplier,
		Location:     "A1-01",
	}
}

func newTestStore(t *testing.T, items ...entity.Product) (*inventory.Store, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{initial: items}
	return inventory.NewStore(context.Background(), backend, logger.Nop()), backend
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestNewStore_CargaInicial(t *testing.T) {
	s, _ := newTestStore(t,
		prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"),
		prod("P002", "Mouse", "Electronics", 5, "50", 5, "TechCorp"),
	)

	assert.Equal(t, 2, s.Len())
	got, ok := s.Get("P001")
	require.True(t, ok, "P001 debe existir tras la carga")
	assert.Equal(t, "Laptop", got.Name)
}

func TestNewStore_FalloDeCargaIniciaVacio(t *testing.T) {
	backend := &fakeBackend{loadErr: errors.New("archivo corrupto")}
	s := inventory.NewStore(context.Background(), backend, logger.Nop())

	// La construcción nunca falla: fallo de carga => inventario vacío.
	assert.Equal(t, 0, s.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Add
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_SellaFechaYPersiste(t *testing.T) {
	s, backend := newTestStore(t)

	err := s.Add(context.Background(), prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"))
	require.NoError(t, err)

	got, ok := s.Get("P001")
	require.True(t, ok)
	assert.False(t, got.LastUpdated.IsZero(), "Add debe sellar last_updated")
	assert.Equal(t, 1, backend.saves, "cada mutación exitosa persiste el inventario completo")
	require.Len(t, backend.last, 1)
	assert.Equal(t, "P001", backend.last[0].ProductID)
}

func TestAdd_DuplicadoNoMuta(t *testing.T) {
	s, backend := newTestStore(t, prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"))

	err := s.Add(context.Background(), prod("P001", "Otro", "Electronics", 1, "1", 1, "Acme"))

	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, s.Len(), "un alta duplicada no cambia la longitud del inventario")
	assert.Zero(t, backend.saves, "un alta rechazada no debe persistir nada")
}

func TestAdd_RegistroInvalido(t *testing.T) {
	cases := []struct {
		name string
		p    entity.Product
	}{
		{"sin product_id", prod("", "Laptop", "Electronics", 1, "1", 1, "Acme")},
		{"sin nombre", prod("P001", "", "Electronics", 1, "1", 1, "Acme")},
		{"sin categoría", prod("P001", "Laptop", "", 1, "1", 1, "Acme")},
		{"sin proveedor", prod("P001", "Laptop", "Electronics", 1, "1", 1, "")},
		{"cantidad negativa", prod("P001", "Laptop", "Electronics", -1, "1", 1, "Acme")},
		{"precio negativo", prod("P001", "Laptop", "Electronics", 1, "-1", 1, "Acme")},
		{"reorden negativo", prod("P001", "Laptop", "Electronics", 1, "1", -1, "Acme")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, backend := newTestStore(t)
			err := s.Add(context.Background(), tc.p)
			require.ErrorIs(t, err, domain.ErrInvalidRecord)
			assert.Zero(t, s.Len())
			assert.Zero(t, backend.saves)
		})
	}
}

func TestAdd_Unicidad(t *testing.T) {
	// Tras cualquier secuencia de altas exitosas no hay dos ids iguales.
	s, _ := newTestStore(t)
	ids := []string{"P001", "P002", "P001", "P003", "P002"}
	for _, id := range ids {
		_ = s.Add(context.Background(), prod(id, "Item "+id, "General", 1, "1", 1, "Acme"))
	}

	seen := map[string]bool{}
	for _, p := range s.Items() {
		assert.False(t, seen[p.ProductID], "product_id repetido en el inventario: %s", p.ProductID)
		seen[p.ProductID] = true
	}
	assert.Equal(t, 3, s.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ParcialSoloCamposPresentes(t *testing.T) {
	s, _ := newTestStore(t, prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"))

	nuevoNombre := "Laptop Pro"
	nuevaCantidad := 7
	err := s.Update(context.Background(), "P001", dto.UpdateProductRequest{
		Name:     &nuevoNombre,
		Quantity: &nuevaCantidad,
	})
	require.NoError(t, err)

	got, _ := s.Get("P001")
	assert.Equal(t, "Laptop Pro", got.Name)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, "Electronics", got.Category, "los campos ausentes quedan intactos")
	assert.Equal(t, "TechCorp", got.Supplier)
	assert.False(t, got.LastUpdated.IsZero(), "Update debe resellar last_updated")
}

func TestUpdate_NoEncontrado(t *testing.T) {
	s, _ := newTestStore(t)
	nombre := "X"
	err := s.Update(context.Background(), "P999", dto.UpdateProductRequest{Name: &nombre})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_MezclaInvalidaNoMuta(t *testing.T) {
	s, backend := newTestStore(t, prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"))
	backend.saves = 0

	vacio := ""
	err := s.Update(context.Background(), "P001", dto.UpdateProductRequest{Name: &vacio})

	require.ErrorIs(t, err, domain.ErrInvalidRecord)
	got, _ := s.Get("P001")
	assert.Equal(t, "Laptop", got.Name, "una mezcla inválida no debe tocar el registro")
	assert.Zero(t, backend.saves)
}

func TestDelete_PreservaOrden(t *testing.T) {
	s, _ := newTestStore(t,
		prod("P001", "A", "Cat", 1, "1", 1, "S"),
		prod("P002", "B", "Cat", 1, "1", 1, "S"),
		prod("P003", "C", "Cat", 1, "1", 1, "S"),
	)

	require.NoError(t, s.Delete(context.Background(), "P002"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "P001", items[0].ProductID)
	assert.Equal(t, "P003", items[1].ProductID, "el orden de inserción se preserva tras borrar")

	err := s.Delete(context.Background(), "P002")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_Escenarios(t *testing.T) {
	s, _ := newTestStore(t,
		prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"),
		prod("P002", "Mouse", "Electronics", 5, "50", 5, "TechCorp"),
	)

	// Retiro que dejaría negativo: rechazado sin mutación.
	_, err := s.AdjustQuantity(context.Background(), "P002", -10)
	require.ErrorIs(t, err, domain.ErrNegativeStock)
	got, _ := s.Get("P002")
	assert.Equal(t, 5, got.Quantity, "el rechazo no debe tocar la cantidad")

	// Retiro exacto hasta cero: permitido.
	nueva, err := s.AdjustQuantity(context.Background(), "P001", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, nueva)
	got, _ = s.Get("P001")
	assert.Equal(t, 0, got.Quantity)

	// Reposición.
	nueva, err = s.AdjustQuantity(context.Background(), "P002", 3)
	require.NoError(t, err)
	assert.Equal(t, 8, nueva)

	_, err = s.AdjustQuantity(context.Background(), "P999", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistencia_FalloNoRevierteMemoria(t *testing.T) {
	s, backend := newTestStore(t)
	backend.saveErr = errors.New("disco lleno")

	err := s.Add(context.Background(), prod("P001", "Laptop", "Electronics", 10, "100", 5, "TechCorp"))

	require.ErrorIs(t, err, domain.ErrPersistence, "el fallo de guardado se reporta al llamador")
	_, ok := s.Get("P001")
	assert.True(t, ok, "la mutación en memoria se mantiene aunque el respaldo falle")
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func inventarioDePrueba(t *testing.T) *inventory.Store {
	t.Helper()
	s, _ := newTestStore(t,
		prod("P001", "Laptop Computer", "Electronics", 10, "999.99", 5, "TechCorp Inc"),
		prod("P002", "Office Chair", "Furniture", 3, "149.50", 4, "FurniSupply"),
		prod("P003", "Wireless Mouse", "Electronics", 40, "25.00", 10, "TechCorp Inc"),
		prod("P004", "Desk Lamp", "Furniture", 0, "35.00", 6, "Bright Lights SA"),
	)
	return s
}

func TestFilterByCategory_ExactaSinMayusculas(t *testing.T) {
	s := inventarioDePrueba(t)

	got := s.FilterByCategory("electronics")
	require.Len(t, got, 2)
	assert.Equal(t, "P001", got[0].ProductID)
	assert.Equal(t, "P003", got[1].ProductID)

	// Exacta: una subcadena de la categoría no coincide.
	assert.Empty(t, s.FilterByCategory("Electro"))
}

func TestFilterBySupplier_SubcadenaSinMayusculas(t *testing.T) {
	s := inventarioDePrueba(t)

	// Subcadena: "techcorp" coincide con "TechCorp Inc".
	got := s.FilterBySupplier("techcorp")
	require.Len(t, got, 2)
	assert.Equal(t, "P001", got[0].ProductID)

	assert.Len(t, s.FilterBySupplier("supply"), 1)
	assert.Empty(t, s.FilterBySupplier("nadie"))
}

func TestSearch_NombreOCategoriaSinDuplicados(t *testing.T) {
	s := inventarioDePrueba(t)

	// "lamp" está en el nombre de P004; "furniture" en la categoría de P002 y P004.
	got := s.Search("furniture")
	require.Len(t, got, 2)
	assert.Equal(t, "P002", got[0].ProductID, "los resultados respetan el orden del almacén")
	assert.Equal(t, "P004", got[1].ProductID)

	// Coincidencia en nombre Y categoría del mismo registro: aparece una sola vez.
	got = s.Search("o")
	ids := map[string]int{}
	for _, p := range got {
		ids[p.ProductID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "registro duplicado en la búsqueda: %s", id)
	}
}

func TestCategoriesYSuppliers_DistintosOrdenados(t *testing.T) {
	s := inventarioDePrueba(t)

	assert.Equal(t, []string{"Electronics", "Furniture"}, s.Categories())
	assert.Equal(t, []string{"Bright Lights SA", "FurniSupply", "TechCorp Inc"}, s.Suppliers())
}
