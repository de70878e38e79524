package dto

import "github.com/shopspring/decimal"

// UpdateProductRequest actualización parcial de un registro: solo los
// campos no nil se aplican; el resto queda intacto. product_id no es
// modificable (es la clave del registro).
type UpdateProductRequest struct {
	Name         *string          `json:"product_name"`
	Category     *string          `json:"category"`
	Quantity     *int             `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	ReorderLevel *int             `json:"reorder_level"`
	Supplier     *string          `json:"supplier"`
	Location     *string          `json:"warehouse_location"`
}

// IsEmpty indica si la solicitud no trae ningún campo a modificar.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Category == nil && r.Quantity == nil &&
		r.UnitPrice == nil && r.ReorderLevel == nil && r.Supplier == nil &&
		r.Location == nil
}
