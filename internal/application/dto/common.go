package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SortRequest parámetros de orden comunes a las vistas tabulares.
// Direction acepta "asc" o "desc"; cualquier otro valor se trata como "asc".
type SortRequest struct {
	SortBy    string `query:"sort_by"`
	Direction string `query:"direction"`
}
