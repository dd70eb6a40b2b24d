package repository

import "github.com/jhoicas/stock-manager-api/internal/domain/entity"

// ProductCounts totales para el dashboard, derivados en cada lectura.
type ProductCounts struct {
	Total      int
	LowStock   int // 0 < cantidad <= umbral
	OutOfStock int // cantidad == 0
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción (SELECT FOR UPDATE).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, quantity int) error
	List(search string, limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	ListAtOrBelowThreshold() ([]*entity.Product, error)
	Counts() (ProductCounts, error)
	Delete(id string) error
}
