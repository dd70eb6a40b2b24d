package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
	"github.com/jhoicas/stock-manager-api/internal/application/usecase"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
)

// protectedCategoryRepo fake que simula categorías con productos asociados.
type protectedCategoryRepo struct {
	byID      map[string]*entity.Category
	byName    map[string]*entity.Category
	protected map[string]bool
}

func newProtectedCategoryRepo() *protectedCategoryRepo {
	return &protectedCategoryRepo{
		byID:      make(map[string]*entity.Category),
		byName:    make(map[string]*entity.Category),
		protected: make(map[string]bool),
	}
}

func (r *protectedCategoryRepo) Create(c *entity.Category) error {
	r.byID[c.ID] = c
	r.byName[c.Name] = c
	return nil
}
func (r *protectedCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.byID[id], nil
}
func (r *protectedCategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.byName[name], nil
}
func (r *protectedCategoryRepo) Update(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *protectedCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}
func (r *protectedCategoryRepo) Delete(id string) error {
	if r.protected[id] {
		return domain.ErrProtected
	}
	delete(r.byID, id)
	return nil
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newProtectedCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Eliminar una categoría con productos asociados se rechaza sin efecto.
func TestCategoryDelete_ConProductos_Protegida(t *testing.T) {
	repo := newProtectedCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	repo.protected[created.ID] = true

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrProtected)

	still, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, still, "la categoría sigue existiendo tras el rechazo")
}

func TestCategoryDelete_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newProtectedCategoryRepo())

	err := uc.Delete("66666666-6666-4666-8666-666666666666")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_RenombrarASuPropioNombre(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newProtectedCategoryRepo())

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)
}
