// inventario-almacen: menú interactivo del sistema de inventario de bodega.
//
// Uso: go run ./cmd/inventory
// Configuración vía env vars (o .env): STORE_BACKEND, DATA_FILE,
// SQLITE_PATH, EXPORT_DIR, APP_ENV, LOG_LEVEL.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/inventario-almacen/internal/application/analytics"
	"github.com/jhoicas/inventario-almacen/internal/application/inventory"
	"github.com/jhoicas/inventario-almacen/internal/domain/repository"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/export"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/sqlitestore"
	"github.com/jhoicas/inventario-almacen/internal/interfaces/cli"
	"github.com/jhoicas/inventario-almacen/pkg/config"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando sistema de inventario")

	ctx := context.Background()

	var backend repository.InventoryStore
	switch cfg.Store.Backend {
	case "sqlite":
		s, err := sqlitestore.New(cfg.Store.SQLitePath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir respaldo sqlite")
		}
		defer s.Close()
		backend = s
	default:
		backend = csvstore.New(cfg.Store.DataFile, log)
	}

	store := inventory.NewStore(ctx, backend, log)
	agg := analytics.NewAggregator(store)
	exporter := export.New(cfg.Export.Dir, log)

	menu := cli.NewMenu(store, agg, exporter, pdf.NewReportGenerator(), log, os.Stdin, os.Stdout)
	menu.Run(ctx)
}
