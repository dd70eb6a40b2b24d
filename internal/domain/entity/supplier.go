package entity

import "time"

// Supplier representa un proveedor. Name es único; Contact y Address son opcionales.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
