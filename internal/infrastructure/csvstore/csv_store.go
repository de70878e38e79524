// Package csvstore implementa el puerto de persistencia sobre un archivo
// CSV plano con fila de cabecera, el formato en que las bodegas exportan
// y comparten sus planillas. Todos los valores viajan como texto; la
// interpretación numérica ocurre una sola vez al cargar.
package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// header columnas del archivo, en el orden de escritura.
var header = []string{
	"product_id", "product_name", "category", "quantity",
	"unit_price", "reorder_level", "supplier", "warehouse_location",
	"last_updated",
}

// Store adaptador CSV del puerto repository.InventoryStore.
type Store struct {
	path string
	log  *logger.Logger
}

// New construye el adaptador sobre la ruta dada.
func New(path string, log *logger.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load lee el inventario completo. Un archivo inexistente no es un
// error: se avisa y se devuelve un inventario vacío. Las filas
// malformadas se descartan con aviso en lugar de abortar la carga.
//
// Los exports hechos desde Excel en Windows suelen venir en ISO-8859-1;
// si el contenido no es UTF-8 válido se decodifica con ese charset antes
// de parsear.
func (s *Store) Load(_ context.Context) ([]entity.Product, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Warn().Str("ruta", s.path).Msg("archivo de inventario no encontrado, se inicia vacío")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", s.path, err)
	}

	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar %s como ISO-8859-1: %w", s.path, err)
		}
		s.log.Warn().Str("ruta", s.path).Msg("archivo no es UTF-8, decodificado como ISO-8859-1")
		raw = decoded
	}

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1 // la validación por fila la hacemos nosotros
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Mapa columna → índice a partir de la cabecera, tolerante al orden.
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}

	items := make([]entity.Product, 0, len(rows)-1)
	for n, row := range rows[1:] {
		p, err := parseRow(col, row)
		if err != nil {
			s.log.Warn().Int("fila", n+2).Err(err).Msg("fila de inventario descartada")
			continue
		}
		items = append(items, p)
	}
	return items, nil
}

// Save escribe el inventario completo, creando el directorio si no
// existe. Escribe a un archivo temporal y lo renombra para no dejar un
// CSV a medias si la escritura se interrumpe.
func (s *Store) Save(_ context.Context, items []entity.Product) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range items {
		row := []string{
			p.ProductID,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.UnitPrice.String(),
			strconv.Itoa(p.ReorderLevel),
			p.Supplier,
			p.Location,
			p.LastUpdated.Format(entity.DateLayout),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("renombrar %s: %w", tmp, err)
	}
	return nil
}

func parseRow(col map[string]int, row []string) (entity.Product, error) {
	get := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	qty, err := strconv.Atoi(get("quantity"))
	if err != nil {
		return entity.Product{}, fmt.Errorf("quantity %q: %w", get("quantity"), err)
	}
	reorder, err := strconv.Atoi(get("reorder_level"))
	if err != nil {
		return entity.Product{}, fmt.Errorf("reorder_level %q: %w", get("reorder_level"), err)
	}
	price, err := decimal.NewFromString(get("unit_price"))
	if err != nil {
		return entity.Product{}, fmt.Errorf("unit_price %q: %w", get("unit_price"), err)
	}

	// last_updated puede faltar en planillas antiguas; queda en cero y la
	// próxima mutación lo sella.
	var updated time.Time
	if v := get("last_updated"); v != "" {
		updated, err = time.Parse(entity.DateLayout, v)
		if err != nil {
			return entity.Product{}, fmt.Errorf("last_updated %q: %w", v, err)
		}
	}

	p := entity.Product{
		ProductID:    get("product_id"),
		Name:         get("product_name"),
		Category:     get("category"),
		Quantity:     qty,
		UnitPrice:    price,
		ReorderLevel: reorder,
		Supplier:     get("supplier"),
		Location:     get("warehouse_location"),
		LastUpdated:  updated,
	}
	if reason := p.Validate(); reason != "" {
		return entity.Product{}, fmt.Errorf("registro inválido: %s", reason)
	}
	return p, nil
}
