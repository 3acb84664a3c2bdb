package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SortRequest parámetros de orden de los listados. Field se valida contra una
// allow-list por recurso; Order es asc|desc con asc por defecto.
type SortRequest struct {
	Sort  string `query:"sort"`
	Order string `query:"order"`
}

// Desc indica si se pidió orden descendente (cualquier otro valor es asc).
func (s SortRequest) Desc() bool {
	return s.Order == "desc"
}
