package repository

import "github.com/jhoicas/stock-manager-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Delete devuelve domain.ErrProtected si el proveedor tiene movimientos asociados.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByName(name string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Delete(id string) error
}
