// Package sqlitestore implementa el puerto de persistencia sobre una
// base SQLite embebida (driver modernc, sin CGo ni servidor). Respeta el
// mismo contrato de conjunto entero que el respaldo CSV: cada Save
// reescribe la tabla completa dentro de una transacción.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

// seq preserva el orden de inserción del almacén; unit_price y
// last_updated viajan como texto, igual que en el CSV.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	seq                INTEGER PRIMARY KEY AUTOINCREMENT,
	product_id         TEXT NOT NULL UNIQUE,
	product_name       TEXT NOT NULL,
	category           TEXT NOT NULL,
	quantity           INTEGER NOT NULL,
	unit_price         TEXT NOT NULL,
	reorder_level      INTEGER NOT NULL,
	supplier           TEXT NOT NULL,
	warehouse_location TEXT NOT NULL,
	last_updated       TEXT NOT NULL
);`

// Store adaptador SQLite del puerto repository.InventoryStore.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// New abre (o crea) la base en la ruta dada y asegura el esquema.
func New(path string, log *logger.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

// Load lee el inventario completo en orden de inserción. Una base recién
// creada devuelve un inventario vacío sin error.
func (s *Store) Load(ctx context.Context) ([]entity.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, product_name, category, quantity, unit_price,
		       reorder_level, supplier, warehouse_location, last_updated
		FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("consultar productos: %w", err)
	}
	defer rows.Close()

	var items []entity.Product
	for rows.Next() {
		var p entity.Product
		var price, updated string
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Category, &p.Quantity,
			&price, &p.ReorderLevel, &p.Supplier, &p.Location, &updated); err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		if p.UnitPrice, err = decimal.NewFromString(price); err != nil {
			s.log.Warn().Str("product_id", p.ProductID).Str("unit_price", price).
				Msg("precio ilegible, fila descartada")
			continue
		}
		if updated != "" {
			if p.LastUpdated, err = time.Parse(entity.DateLayout, updated); err != nil {
				s.log.Warn().Str("product_id", p.ProductID).Str("last_updated", updated).
					Msg("fecha ilegible, queda en cero")
			}
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Save reescribe la tabla completa con los registros dados, en orden,
// dentro de una transacción.
func (s *Store) Save(ctx context.Context, items []entity.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("abrir transacción: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("vaciar productos: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (product_id, product_name, category, quantity,
			unit_price, reorder_level, supplier, warehouse_location, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparar insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range items {
		_, err := stmt.ExecContext(ctx, p.ProductID, p.Name, p.Category, p.Quantity,
			p.UnitPrice.String(), p.ReorderLevel, p.Supplier, p.Location,
			p.LastUpdated.Format(entity.DateLayout))
		if err != nil {
			return fmt.Errorf("insertar %s: %w", p.ProductID, err)
		}
	}
	return tx.Commit()
}
