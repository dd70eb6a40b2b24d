package entity

import "time"

// Category representa una categoría de productos. Name es único.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
