package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("código de producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("código duplicado")
	ErrOutOfStock        = errors.New("producto agotado")
	ErrInsufficientFunds = errors.New("saldo insuficiente")
	ErrInsufficientCash  = errors.New("efectivo insuficiente")
	ErrCardDeclined      = errors.New("tarjeta rechazada")
	ErrInvalidIdentifier = errors.New("identificador de tarjeta inválido")
	ErrLimitExceeded     = errors.New("monto supera el límite de la tarjeta")
	ErrInvalidState      = errors.New("operación no permitida en el estado actual")
	ErrSessionFinished   = errors.New("la sesión ya finalizó")
)
