// Package inventory implementa el almacén de registros de inventario en
// memoria: altas, consultas, actualizaciones parciales, ajustes de stock
// y filtros por atributo. Es el dueño exclusivo de la secuencia de
// registros; el orden de inserción se preserva y nunca se reordena.
//
// Cada mutación exitosa sella last_updated y escribe el inventario
// COMPLETO al respaldo (contrato de conjunto entero, sin escrituras
// incrementales). El acceso es de un solo dueño: no hay protección de
// concurrencia; quien comparta el Store debe serializar por fuera.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/inventario-almacen/internal/application/dto"
	"github.com/jhoicas/inventario-almacen/internal/domain"
	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/internal/domain/repository"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// Store almacén de inventario en memoria con escritura directa al
// respaldo tras cada mutación.
type Store struct {
	backend repository.InventoryStore
	log     *logger.Logger
	items   []entity.Product
}

// NewStore construye el almacén y carga el inventario desde el respaldo.
// Una fuente inexistente o un fallo de carga dejan el almacén vacío: la
// construcción nunca falla, el fallo se registra y se sigue operando.
func NewStore(ctx context.Context, backend repository.InventoryStore, log *logger.Logger) *Store {
	s := &Store{backend: backend, log: log}

	items, err := backend.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cargar inventario: se inicia vacío")
		return s
	}
	s.items = items
	log.Info().Int("productos", len(items)).Msg("inventario cargado")
	return s
}

// Len devuelve cuántos registros hay en el inventario.
func (s *Store) Len() int { return len(s.items) }

// Items devuelve una copia de la secuencia completa, en orden de inserción.
func (s *Store) Items() []entity.Product {
	out := make([]entity.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Get busca un registro por product_id (coincidencia exacta, O(n)).
// Devuelve una copia; modificarla no afecta al almacén.
func (s *Store) Get(productID string) (entity.Product, bool) {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i], true
	}
	return entity.Product{}, false
}

// Add agrega un registro nuevo. Falla con domain.ErrDuplicate si el
// product_id ya existe y con domain.ErrInvalidRecord si algún campo
// obligatorio está vacío o un numérico es negativo. En éxito sella
// last_updated, agrega al final y persiste.
func (s *Store) Add(ctx context.Context, p entity.Product) error {
	if reason := p.Validate(); reason != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRecord, reason)
	}
	if s.indexOf(p.ProductID) >= 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, p.ProductID)
	}

	p.LastUpdated = time.Now()
	s.items = append(s.items, p)
	s.log.Info().Str("product_id", p.ProductID).Str("nombre", p.Name).Msg("producto agregado")
	return s.persist(ctx)
}

// Update aplica una actualización parcial: solo los campos presentes en
// la solicitud reemplazan a los actuales. Falla con domain.ErrNotFound si
// el id no existe y con domain.ErrInvalidRecord si el resultado de la
// mezcla viola algún invariante (nada se muta en ese caso).
func (s *Store) Update(ctx context.Context, productID string, in dto.UpdateProductRequest) error {
	i := s.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, productID)
	}

	merged := s.items[i]
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Category != nil {
		merged.Category = *in.Category
	}
	if in.Quantity != nil {
		merged.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		merged.UnitPrice = *in.UnitPrice
	}
	if in.ReorderLevel != nil {
		merged.ReorderLevel = *in.ReorderLevel
	}
	if in.Supplier != nil {
		merged.Supplier = *in.Supplier
	}
	if in.Location != nil {
		merged.Location = *in.Location
	}
	if reason := merged.Validate(); reason != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRecord, reason)
	}

	merged.LastUpdated = time.Now()
	s.items[i] = merged
	s.log.Info().Str("product_id", productID).Msg("producto actualizado")
	return s.persist(ctx)
}

// Delete elimina el registro con el id dado. Sin soft-delete ni
// tumbas: el registro desaparece de la secuencia.
func (s *Store) Delete(ctx context.Context, productID string) error {
	i := s.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, productID)
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.log.Info().Str("product_id", productID).Msg("producto eliminado")
	return s.persist(ctx)
}

// AdjustQuantity aplica un delta a la cantidad (positivo agrega stock,
// negativo retira). Si current+delta < 0 rechaza con
// domain.ErrNegativeStock sin mutar nada; en éxito devuelve la nueva
// cantidad. La mutación pasa por Update para sellar last_updated.
func (s *Store) AdjustQuantity(ctx context.Context, productID string, delta int) (int, error) {
	i := s.indexOf(productID)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrNotFound, productID)
	}

	current := s.items[i].Quantity
	next := current + delta
	if next < 0 {
		return 0, fmt.Errorf("%w: actual %d, delta %d", domain.ErrNegativeStock, current, delta)
	}

	if err := s.Update(ctx, productID, dto.UpdateProductRequest{Quantity: &next}); err != nil {
		return 0, err
	}
	s.log.Info().Str("product_id", productID).Int("anterior", current).Int("nueva", next).Msg("stock ajustado")
	return next, nil
}

// ── Filtros y búsqueda (lecturas puras, devuelven secuencias nuevas) ──────────

// FilterByCategory registros cuya categoría coincide exactamente con el
// nombre dado, sin distinguir mayúsculas.
func (s *Store) FilterByCategory(name string) []entity.Product {
	out := make([]entity.Product, 0)
	for _, p := range s.items {
		if strings.EqualFold(p.Category, name) {
			out = append(out, p)
		}
	}
	return out
}

// FilterBySupplier registros cuyo proveedor CONTIENE el texto dado, sin
// distinguir mayúsculas. La asimetría con FilterByCategory (subcadena vs
// exacta) es comportamiento heredado e intencional del sistema.
func (s *Store) FilterBySupplier(name string) []entity.Product {
	needle := strings.ToLower(name)
	out := make([]entity.Product, 0)
	for _, p := range s.items {
		if strings.Contains(strings.ToLower(p.Supplier), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Search registros cuyo nombre O categoría contienen la palabra clave,
// sin distinguir mayúsculas. Unión sin duplicados, en orden del almacén.
func (s *Store) Search(keyword string) []entity.Product {
	needle := strings.ToLower(keyword)
	out := make([]entity.Product, 0)
	for _, p := range s.items {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Categories nombres distintos de categoría presentes, ordenados.
func (s *Store) Categories() []string {
	return s.distinct(func(p entity.Product) string { return p.Category })
}

// Suppliers nombres distintos de proveedor presentes, ordenados.
func (s *Store) Suppliers() []string {
	return s.distinct(func(p entity.Product) string { return p.Supplier })
}

// ── Internos ──────────────────────────────────────────────────────────────────

func (s *Store) indexOf(productID string) int {
	for i, p := range s.items {
		if p.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) distinct(field func(entity.Product) string) []string {
	seen := make(map[string]struct{}, len(s.items))
	out := make([]string, 0, len(s.items))
	for _, p := range s.items {
		v := field(p)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// persist escribe el inventario completo al respaldo. Un fallo aquí NO
// revierte la mutación en memoria: se registra y se devuelve envuelto en
// domain.ErrPersistence para que el llamador sepa que memoria y respaldo
// pueden haber divergido.
func (s *Store) persist(ctx context.Context) error {
	if err := s.backend.Save(ctx, s.items); err != nil {
		s.log.Error().Err(err).Msg("guardar inventario")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
