package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager-api/internal/application/dto"
	"github.com/jhoicas/stock-manager-api/internal/application/report"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	"github.com/jhoicas/stock-manager-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakeMovementRepo captura el filtro recibido y devuelve filas fijas.
type fakeMovementRepo struct {
	lastFilter repository.MovementFilter
	rows       []repository.MovementReportRow
	recent     []repository.MovementReportRow
	monthIn    int
	monthOut   int
}

func (f *fakeMovementRepo) Create(*entity.StockMovement) error          { return nil }
func (f *fakeMovementRepo) GetByID(string) (*entity.StockMovement, error) { return nil, nil }
func (f *fakeMovementRepo) Delete(string) error                         { return nil }
func (f *fakeMovementRepo) ListReport(filter repository.MovementFilter) ([]repository.MovementReportRow, error) {
	f.lastFilter = filter
	return f.rows, nil
}
func (f *fakeMovementRepo) Recent(int) ([]repository.MovementReportRow, error) {
	return f.recent, nil
}
func (f *fakeMovementRepo) SumQuantitiesSince(time.Time) (int, int, error) {
	return f.monthIn, f.monthOut, nil
}

type fakeProductRepo struct {
	counts    repository.ProductCounts
	lowStock  []*entity.Product
	threshold []*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (f *fakeProductRepo) GetByID(string) (*entity.Product, error)       { return nil, nil }
func (f *fakeProductRepo) GetByBarcode(string) (*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(string) (*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (f *fakeProductRepo) UpdateQuantity(string, int) error              { return nil }
func (f *fakeProductRepo) List(string, int, int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListLowStock() ([]*entity.Product, error)      { return f.lowStock, nil }
func (f *fakeProductRepo) ListAtOrBelowThreshold() ([]*entity.Product, error) {
	return f.threshold, nil
}
func (f *fakeProductRepo) Counts() (repository.ProductCounts, error) { return f.counts, nil }
func (f *fakeProductRepo) Delete(string) error                       { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Movements: normalización de filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestMovements_SinFiltros(t *testing.T) {
	movRepo := &fakeMovementRepo{}
	uc := report.NewUseCase(movRepo, &fakeProductRepo{})

	out, err := uc.Movements(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)

	assert.Nil(t, movRepo.lastFilter.DateFrom)
	assert.Nil(t, movRepo.lastFilter.DateTo)
	assert.Empty(t, movRepo.lastFilter.ProductID)
	assert.Empty(t, movRepo.lastFilter.Type)
	assert.Empty(t, out.Filters)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Rows, "rows debe serializar como [] y no como null")
}

// date_to incluye el día completo: el filtro debe quedar en la medianoche
// del día siguiente como límite exclusivo.
func TestMovements_DateToIncluyeElDiaCompleto(t *testing.T) {
	movRepo := &fakeMovementRepo{}
	uc := report.NewUseCase(movRepo, &fakeProductRepo{})

	_, err := uc.Movements(context.Background(), dto.ReportQuery{
		DateFrom: "2026-03-01",
		DateTo:   "2026-03-15",
	})
	require.NoError(t, err)

	require.NotNil(t, movRepo.lastFilter.DateFrom)
	require.NotNil(t, movRepo.lastFilter.DateTo)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local)
	assert.True(t, movRepo.lastFilter.DateFrom.Equal(from))
	assert.True(t, movRepo.lastFilter.DateTo.Equal(to))
}

func TestMovements_MismoDiaEsRangoValido(t *testing.T) {
	movRepo := &fakeMovementRepo{}
	uc := report.NewUseCase(movRepo, &fakeProductRepo{})

	_, err := uc.Movements(context.Background(), dto.ReportQuery{
		DateFrom: "2026-03-15",
		DateTo:   "2026-03-15",
	})
	assert.NoError(t, err)
}

func TestMovements_RangoInvertidoEsError(t *testing.T) {
	uc := report.NewUseCase(&fakeMovementRepo{}, &fakeProductRepo{})

	_, err := uc.Movements(context.Background(), dto.ReportQuery{
		DateFrom: "2026-03-20",
		DateTo:   "2026-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestMovements_FechaMalformada(t *testing.T) {
	uc := report.NewUseCase(&fakeMovementRepo{}, &fakeProductRepo{})

	_, err := uc.Movements(context.Background(), dto.ReportQuery{DateFrom: "15/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovements_EtiquetasDeFiltrosActivos(t *testing.T) {
	movRepo := &fakeMovementRepo{}
	uc := report.NewUseCase(movRepo, &fakeProductRepo{})

	out, err := uc.Movements(context.Background(), dto.ReportQuery{
		DateFrom:  "2026-01-01",
		Type:      entity.MovementTypeOut,
		ProductID: "7b0f8a1e-0000-4000-8000-000000000001",
	})
	require.NoError(t, err)

	require.Len(t, out.Filters, 3)
	assert.Equal(t, dto.ReportFilterLabel{Name: "Desde", Value: "2026-01-01"}, out.Filters[0])
	assert.Equal(t, "Producto", out.Filters[1].Name)
	assert.Equal(t, dto.ReportFilterLabel{Name: "Tipo", Value: "Salida"}, out.Filters[2])
}

func TestMovements_UsuarioBorradoQuedaVacio(t *testing.T) {
	user := "Ana Torres"
	movRepo := &fakeMovementRepo{rows: []repository.MovementReportRow{
		{ID: "m1", ProductName: "Café", Type: entity.MovementTypeIn, Quantity: 3, UserName: &user},
		{ID: "m2", ProductName: "Café", Type: entity.MovementTypeOut, Quantity: 1, UserName: nil},
	}}
	uc := report.NewUseCase(movRepo, &fakeProductRepo{})

	out, err := uc.Movements(context.Background(), dto.ReportQuery{})
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	assert.Equal(t, "Ana Torres", out.Rows[0].User)
	assert.Equal(t, "Entrada", out.Rows[0].TypeLabel)
	assert.Empty(t, out.Rows[1].User)
	assert.Equal(t, "Salida", out.Rows[1].TypeLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ArmaElResumen(t *testing.T) {
	movRepo := &fakeMovementRepo{
		recent: []repository.MovementReportRow{
			{ID: "m1", ProductName: "Café", Type: entity.MovementTypeIn, Quantity: 5},
		},
		monthIn:  40,
		monthOut: 12,
	}
	productRepo := &fakeProductRepo{
		counts: repository.ProductCounts{Total: 9, LowStock: 2, OutOfStock: 1},
		lowStock: []*entity.Product{
			{ID: "p1", Name: "Azúcar", Quantity: 2, LowStockThreshold: 10},
		},
	}
	uc := report.NewUseCase(movRepo, productRepo)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 9, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockProducts)
	assert.Equal(t, 1, out.OutOfStockProducts)
	assert.Equal(t, 40, out.MonthIn)
	assert.Equal(t, 12, out.MonthOut)

	require.Len(t, out.LowStock, 1)
	assert.True(t, out.LowStock[0].LowStock)
	assert.False(t, out.LowStock[0].OutOfStock)

	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "Entrada", out.RecentMovements[0].TypeLabel)
}

// Las alertas incluyen productos agotados, no solo los de stock bajo.
func TestAlerts_IncluyeAgotados(t *testing.T) {
	productRepo := &fakeProductRepo{
		threshold: []*entity.Product{
			{ID: "p1", Name: "Azúcar", Quantity: 0, LowStockThreshold: 10},
			{ID: "p2", Name: "Café", Quantity: 3, LowStockThreshold: 10},
		},
	}
	uc := report.NewUseCase(&fakeMovementRepo{}, productRepo)

	out, err := uc.Alerts(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	assert.True(t, out.Items[0].OutOfStock)
	assert.False(t, out.Items[0].LowStock, "agotado no cuenta como stock bajo")
	assert.True(t, out.Items[1].LowStock)
}
