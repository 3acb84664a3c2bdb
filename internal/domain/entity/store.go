package entity

import "time"

// Store representa una tienda calificable. OwnerID es una referencia débil a un
// User con rol owner; puede ser vacío (tienda sin dueño asignado).
type Store struct {
	ID        string
	Name      string
	Email     string
	Address   string
	OwnerID   string // opcional; "" cuando no hay dueño
	CreatedAt time.Time
	UpdatedAt time.Time
}
