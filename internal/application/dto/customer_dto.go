package dto

// CustomerResponse cliente expuesto por la API.
type CustomerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
