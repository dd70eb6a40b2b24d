package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
	"github.com/jhoicas/stock-manager-api/internal/application/usecase"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID      map[string]*entity.Product
	byBarcode map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:      make(map[string]*entity.Product),
		byBarcode: make(map[string]*entity.Product),
	}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	r.byBarcode[p.Barcode] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}
func (r *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	return r.byBarcode[barcode], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                  { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateQuantity(string, int) error                { return nil }
func (r *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)           { return nil, nil }
func (r *fakeProductRepo) ListAtOrBelowThreshold() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Counts() (repository.ProductCounts, error) {
	return repository.ProductCounts{}, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.byID, id); return nil }

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.byID[id], nil
}
func (r *fakeCategoryRepo) GetByName(string) (*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(*entity.Category) error              { return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error)          { return nil, nil }
func (r *fakeCategoryRepo) Delete(string) error                        { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_CantidadInicialCeroYUmbralPorDefecto(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:    "Café molido 500g",
		Barcode: "7791234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Quantity, "la cantidad solo la mueven los movimientos")
	assert.Equal(t, entity.DefaultLowStockThreshold, out.LowStockThreshold)
	assert.True(t, out.OutOfStock)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Café", Barcode: "111"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Otro café", Barcode: "111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	_, err := uc.Create(dto.CreateProductRequest{
		Name:      "Café",
		Barcode:   "111",
		UnitPrice: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	missing := "44444444-4444-4444-8444-444444444444"
	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Café",
		Barcode:    "111",
		CategoryID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_RedondeaElPrecio(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	out, err := uc.Create(dto.CreateProductRequest{
		Name:      "Café",
		Barcode:   "111",
		UnitPrice: decimal.RequireFromString("12.999"),
	})
	require.NoError(t, err)
	assert.True(t, out.UnitPrice.Equal(decimal.RequireFromString("13.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_NoPermiteCambiarABarcodeAjeno(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, newFakeCategoryRepo())

	first, err := uc.Create(dto.CreateProductRequest{Name: "Café", Barcode: "111"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Name: "Azúcar", Barcode: "222"})
	require.NoError(t, err)

	taken := "222"
	_, err = uc.Update(first.ID, dto.UpdateProductRequest{Barcode: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	name := "Nuevo nombre"
	out, err := uc.Update("55555555-5555-4555-8555-555555555555", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductDelete_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeCategoryRepo())

	err := uc.Delete("55555555-5555-4555-8555-555555555555")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
