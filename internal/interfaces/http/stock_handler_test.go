package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager-api/internal/application/stock"
	"github.com/jhoicas/stock-manager-api/internal/domain"
	"github.com/jhoicas/stock-manager-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stock-manager-api/internal/interfaces/http"
)

// stubLedger devuelve respuestas fijas y captura el input recibido.
type stubLedger struct {
	lastInput  stock.MovementInput
	recordErr  error
	reverseErr error
	resulting  int
}

func (s *stubLedger) RecordMovement(_ context.Context, input stock.MovementInput) (*entity.StockMovement, int, error) {
	s.lastInput = input
	if s.recordErr != nil {
		return nil, 0, s.recordErr
	}
	return &entity.StockMovement{
		ID:        "11111111-1111-4111-8111-111111111111",
		ProductID: input.ProductID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Reason:    input.Reason,
		CreatedAt: time.Now(),
	}, s.resulting, nil
}

func (s *stubLedger) ReverseMovement(context.Context, string) error {
	return s.reverseErr
}

func buildStockApp(ledger *stubLedger) *fiber.App {
	app := fiber.New()
	h := apphttp.NewStockHandler(ledger)
	app.Post("/stock/in", apphttp.AuthMiddleware(testJWTSecret), h.StockIn)
	app.Post("/stock/out", apphttp.AuthMiddleware(testJWTSecret), h.StockOut)
	app.Delete("/stock/movements/:id", apphttp.AuthMiddleware(testJWTSecret), h.Reverse)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "empleado"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

const productID = "22222222-2222-4222-8222-222222222222"

func TestStockIn_RegistraEntradaConUsuarioDelToken(t *testing.T) {
	ledger := &stubLedger{resulting: 15}
	app := buildStockApp(ledger)

	resp := postJSON(t, app, "/stock/in", fiber.Map{
		"product_id": productID,
		"quantity":   5,
		"reason":     "compra semanal",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// El tipo lo fija la ruta y el usuario sale del token, no del cuerpo.
	assert.Equal(t, entity.MovementTypeIn, ledger.lastInput.Type)
	assert.Equal(t, testUserID, ledger.lastInput.UserID)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(15), body["product_quantity"])
}

func TestStockOut_TipoFijadoPorLaRuta(t *testing.T) {
	ledger := &stubLedger{resulting: 2}
	app := buildStockApp(ledger)

	resp := postJSON(t, app, "/stock/out", fiber.Map{
		"product_id": productID,
		"quantity":   3,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, entity.MovementTypeOut, ledger.lastInput.Type)
}

func TestStockOut_StockInsuficiente_Retorna409(t *testing.T) {
	ledger := &stubLedger{recordErr: domain.ErrInsufficientStock}
	app := buildStockApp(ledger)

	resp := postJSON(t, app, "/stock/out", fiber.Map{
		"product_id": productID,
		"quantity":   99,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
}

func TestStock_ProductoInexistente_Retorna404(t *testing.T) {
	ledger := &stubLedger{recordErr: domain.ErrNotFound}
	app := buildStockApp(ledger)

	resp := postJSON(t, app, "/stock/in", fiber.Map{
		"product_id": productID,
		"quantity":   1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStock_CantidadCero_Retorna400(t *testing.T) {
	ledger := &stubLedger{}
	app := buildStockApp(ledger)

	resp := postJSON(t, app, "/stock/in", fiber.Map{
		"product_id": productID,
		"quantity":   0,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReverse_MovimientoInexistente_Retorna404(t *testing.T) {
	ledger := &stubLedger{reverseErr: domain.ErrNotFound}
	app := buildStockApp(ledger)

	req := httptest.NewRequest(http.MethodDelete, "/stock/movements/33333333-3333-4333-8333-333333333333", nil)
	req.Header.Set("Authorization", tokenForRole(t, "empleado"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReverse_OK(t *testing.T) {
	ledger := &stubLedger{}
	app := buildStockApp(ledger)

	req := httptest.NewRequest(http.MethodDelete, "/stock/movements/33333333-3333-4333-8333-333333333333", nil)
	req.Header.Set("Authorization", tokenForRole(t, "empleado"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
