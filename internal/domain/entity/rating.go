package entity

import "time"

// Límites del puntaje de una calificación.
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating es la calificación de un usuario sobre una tienda.
// Invariante: a lo sumo una fila por par (UserID, StoreID); un reenvío
// reemplaza el valor en la misma fila (upsert), nunca crea una segunda.
type Rating struct {
	ID        string
	UserID    string
	StoreID   string
	Rating    int // entero en [1,5]
	CreatedAt time.Time
	UpdatedAt time.Time
}
