// seed genera el archivo CSV de inventario de ejemplo con el que operan
// el menú y el demo.
//
// Uso: go run ./cmd/seed [ruta/inventario.csv]
// Por defecto escribe data/warehouse_inventory.csv.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-almacen/internal/domain/entity"
	"github.com/jhoicas/inventario-almacen/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-almacen/pkg/logger"
)

func main() {
	path := "data/warehouse_inventory.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"})
	store := csvstore.New(path, log)

	items := sampleInventory()
	if err := store.Save(context.Background(), items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos\n", path, len(items))
}

func p(id, name, category string, qty int, price string, reorder int, supplier, location string) entity.Product {
	return entity.Product{
		ProductID:    id,
		Name:         name,
		Category:     category,
		Quantity:     qty,
		UnitPrice:    decimal.RequireFromString(price),
		ReorderLevel: reorder,
		Supplier:     supplier,
		Location:     location,
		LastUpdated:  time.Now(),
	}
}

// sampleInventory veinte productos repartidos en varias categorías y
// proveedores, con algunos registros deliberadamente en o bajo su punto
// de reorden para que los reportes de stock bajo tengan contenido.
func sampleInventory() []entity.Product {
	return []entity.Product{
		p("P001", "Laptop Computer", "Electronics", 45, "899.99", 10, "TechCorp Inc", "A1-01"),
		p("P002", "Wireless Mouse", "Electronics", 120, "24.99", 30, "TechCorp Inc", "A1-02"),
		p("P003", "Mechanical Keyboard", "Electronics", 85, "79.99", 20, "TechCorp Inc", "A1-03"),
		p("P004", "27in Monitor", "Electronics", 38, "249.99", 12, "DisplayMax Ltd", "A2-01"),
		p("P005", "USB-C Hub", "Electronics", 150, "39.99", 40, "TechCorp Inc", "A2-02"),
		p("P006", "Office Chair", "Furniture", 22, "189.50", 8, "FurniSupply SA", "B1-01"),
		p("P007", "Standing Desk", "Furniture", 15, "449.00", 6, "FurniSupply SA", "B1-02"),
		p("P008", "Desk Lamp", "Furniture", 60, "34.50", 15, "Bright Lights Co", "B1-03"),
		p("P009", "Bookshelf", "Furniture", 12, "129.99", 5, "FurniSupply SA", "B2-01"),
		p("P010", "Laser Printer", "Office Equipment", 8, "299.99", 6, "PrintPro Supply", "C1-01"),
		p("P011", "Paper Ream A4", "Office Supplies", 500, "5.99", 100, "PaperWorks Ltd", "C1-02"),
		p("P012", "Stapler Heavy Duty", "Office Supplies", 75, "12.50", 20, "PaperWorks Ltd", "C1-03"),
		p("P013", "Whiteboard 120cm", "Office Equipment", 18, "89.00", 5, "PrintPro Supply", "C2-01"),
		p("P014", "Ink Cartridge Set", "Office Supplies", 25, "64.99", 25, "PrintPro Supply", "C2-02"),
		p("P015", "Ethernet Cable 5m", "Networking", 200, "8.99", 50, "NetParts Co", "D1-01"),
		p("P016", "WiFi Router", "Networking", 30, "119.99", 10, "NetParts Co", "D1-02"),
		p("P017", "Paper Shredder", "Office Equipment", 9, "149.99", 4, "PrintPro Supply", "D1-03"),
		p("P018", "Network Switch 8p", "Networking", 14, "79.50", 8, "NetParts Co", "D2-01"),
		p("P019", "Warehouse Ladder", "Safety Equipment", 6, "219.00", 3, "SafetyFirst SA", "E1-01"),
		p("P020", "Safety Helmet", "Safety Equipment", 40, "18.75", 15, "SafetyFirst SA", "E1-02"),
	}
}
