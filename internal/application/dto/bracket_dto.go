package dto

// BracketResponse bracket expuesto por la API.
type BracketResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CustomerID int64  `json:"customerId"`
}
