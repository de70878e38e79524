package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores de validación (duplicado, registro inválido, no encontrado,
// stock negativo) se verifican ANTES de mutar el inventario en memoria.
// ErrPersistence se reporta DESPUÉS de aplicar la mutación: ante este fallo
// el inventario en memoria y el archivo de respaldo pueden divergir.
var (
	ErrNotFound      = errors.New("producto no encontrado")
	ErrDuplicate     = errors.New("el product_id ya existe en el inventario")
	ErrInvalidRecord = errors.New("registro de inventario inválido")
	ErrNegativeStock = errors.New("la cantidad resultante sería negativa")
	ErrPersistence   = errors.New("fallo de persistencia del inventario")
)
