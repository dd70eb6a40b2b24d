package repository

import "github.com/jhoicas/stock-manager-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete devuelve domain.ErrProtected si la categoría tiene productos asociados.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
