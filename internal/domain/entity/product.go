package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout es el formato del campo last_updated, tanto en memoria
// (truncado a día) como en el archivo de respaldo.
const DateLayout = "2006-01-02"

// Product representa un registro de inventario de bodega. Es la única
// entidad del sistema: los totales por categoría y proveedor se derivan,
// nunca se almacenan.
//
// Quantity y ReorderLevel son enteros no negativos; UnitPrice es decimal
// para evitar errores de redondeo binario en los totales. Los campos
// numéricos se parsean UNA vez al cargar, no en cada acceso.
type Product struct {
	ProductID    string // clave única en todo el inventario
	Name         string
	Category     string // coincidencia exacta sin distinguir mayúsculas
	Quantity     int    // invariante: nunca negativo
	UnitPrice    decimal.Decimal
	ReorderLevel int    // umbral de reposición, no negativo
	Supplier     string // coincidencia por subcadena sin distinguir mayúsculas
	Location     string // ubicación en bodega, texto libre
	LastUpdated  time.Time
}

// Validate verifica los campos obligatorios y los invariantes numéricos.
// Devuelve la razón del rechazo o "" si el registro es válido.
func (p Product) Validate() string {
	switch {
	case strings.TrimSpace(p.ProductID) == "":
		return "product_id es obligatorio"
	case strings.TrimSpace(p.Name) == "":
		return "product_name es obligatorio"
	case strings.TrimSpace(p.Category) == "":
		return "category es obligatoria"
	case strings.TrimSpace(p.Supplier) == "":
		return "supplier es obligatorio"
	case p.Quantity < 0:
		return "quantity no puede ser negativa"
	case p.UnitPrice.IsNegative():
		return "unit_price no puede ser negativo"
	case p.ReorderLevel < 0:
		return "reorder_level no puede ser negativo"
	}
	return ""
}

// Value devuelve el valor de inventario del registro: quantity × unit_price.
func (p Product) Value() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// IsLowStock indica si el registro está en o por debajo del punto de
// reorden. El umbral es inclusivo: quantity == reorder_level cuenta como bajo.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
