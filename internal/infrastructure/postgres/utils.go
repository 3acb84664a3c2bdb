package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// sortClause resuelve la columna de orden contra una allow-list de nombres de
// caller a identificadores SQL fijos. Nunca se interpola el valor del caller:
// si no está en el mapa se usa la columna por defecto.
func sortClause(allowed map[string]string, field, def string, desc bool) string {
	col, ok := allowed[field]
	if !ok {
		col = def
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return col + " " + dir
}
