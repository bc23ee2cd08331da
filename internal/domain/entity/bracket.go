package entity

// Bracket representa una fila de la tabla brackets. CustomerID referencia a customers.id.
type Bracket struct {
	ID         int64
	Name       string
	CustomerID int64
}
