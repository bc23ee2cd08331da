package entity

// Customer representa una fila de la tabla customers.
type Customer struct {
	ID   int64
	Name string
}
