package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/brackets-api/internal/application/dto"
	"github.com/jhoicas/brackets-api/internal/application/usecase"
	"github.com/jhoicas/brackets-api/internal/domain"
	"github.com/jhoicas/brackets-api/internal/domain/entity"
	"github.com/jhoicas/brackets-api/internal/domain/repository/mocks"
	apphttp "github.com/jhoicas/brackets-api/internal/interfaces/http"
	"github.com/jhoicas/brackets-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	customers *mocks.CustomerRepository
	brackets  *mocks.BracketRepository
}

func newTestEnv() *testEnv {
	customers := &mocks.CustomerRepository{}
	brackets := &mocks.BracketRepository{}
	bracketUC := usecase.NewBracketUseCase(brackets)
	customerUC := usecase.NewCustomerUseCase(customers, bracketUC)

	log := logger.Nop()
	app := apphttp.NewApp("brackets-api-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:    "brackets-api-test",
		CustomerUC: customerUC,
		BracketUC:  bracketUC,
		Log:        log,
	})
	return &testEnv{app: app, customers: customers, brackets: brackets}
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeProblem(t *testing.T, resp *http.Response, body []byte) dto.ProblemDetail {
	t.Helper()
	assert.Equal(t, apphttp.ProblemContentType, resp.Header.Get(fiber.HeaderContentType))
	var pd dto.ProblemDetail
	require.NoError(t, json.Unmarshal(body, &pd))
	return pd
}

// ──────────────────────────────────────────────────────────────────────────────
// /customers
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_List(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindAll", mock.Anything).Return([]entity.Customer{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Alice"}}, nil)

	resp, body := get(t, env.app, "/customers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":1,"name":"Ada"},{"id":2,"name":"Alice"}]`, string(body))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"), "cada respuesta lleva X-Request-ID")
}

func TestCustomers_List_Vacio(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindAll", mock.Anything).Return([]entity.Customer{}, nil)

	resp, body := get(t, env.app, "/customers")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCustomers_List_Idempotente(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindAll", mock.Anything).Return([]entity.Customer{{ID: 1, Name: "Ada"}}, nil)

	_, first := get(t, env.app, "/customers")
	_, second := get(t, env.app, "/customers")
	assert.Equal(t, first, second)
}

func TestCustomers_List_ErrorInterno(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindAll", mock.Anything).Return(nil, errors.New("conexión rechazada"))

	resp, body := get(t, env.app, "/customers")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	pd := decodeProblem(t, resp, body)
	assert.Equal(t, http.StatusInternalServerError, pd.Status)
	assert.NotContains(t, string(body), "conexión rechazada", "la causa no se expone al cliente")
}

func TestCustomers_ByName(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindByName", mock.Anything, "Alice").Return(&entity.Customer{ID: 3, Name: "Alice"}, nil)

	resp, body := get(t, env.app, "/customers/Alice")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":3,"name":"Alice"}`, string(body))
}

// Un nombre en minúscula responde 404 con el detalle fijo y nunca consulta la base.
func TestCustomers_ByName_MinusculaRetorna404(t *testing.T) {
	env := newTestEnv()

	resp, body := get(t, env.app, "/customers/alice")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	pd := decodeProblem(t, resp, body)
	assert.Equal(t, "The name must start with a capital letter", pd.Detail)
	assert.Equal(t, http.StatusNotFound, pd.Status)
	assert.Equal(t, "/customers/alice", pd.Instance)
	env.customers.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
}

func TestCustomers_ByName_NoExiste(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindByName", mock.Anything, "Zzyzx").
		Return(nil, &domain.NotFoundError{Resource: "customer", Key: "Zzyzx"})

	resp, body := get(t, env.app, "/customers/Zzyzx")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	pd := decodeProblem(t, resp, body)
	assert.Equal(t, "customer not found", pd.Detail)
}

func TestCustomers_ByName_NombreRepetido(t *testing.T) {
	env := newTestEnv()
	env.customers.On("FindByName", mock.Anything, "Ada").
		Return(nil, fmt.Errorf("customer Ada: %w", domain.ErrAmbiguous))

	resp, _ := get(t, env.app, "/customers/Ada")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// El nombre llega al repositorio byte a byte como viene en la ruta (solo se decodifica el %XX).
func TestCustomers_ByName_NombreExactoSinNormalizar(t *testing.T) {
	env := newTestEnv()
	decomposed := "E\u0301lodie"
	composed := "\u00c9lodie"
	env.customers.On("FindByName", mock.Anything, decomposed).Return(&entity.Customer{ID: 5, Name: decomposed}, nil)
	env.customers.On("FindByName", mock.Anything, composed).Return(&entity.Customer{ID: 6, Name: composed}, nil)

	resp, body := get(t, env.app, "/customers/E%CC%81lodie")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.CustomerResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, decomposed, got.Name)

	resp, body = get(t, env.app, "/customers/%C3%89lodie")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(6), got.ID)

	env.customers.AssertNumberOfCalls(t, "FindByName", 2)
	env.customers.AssertCalled(t, "FindByName", mock.Anything, decomposed)
	env.customers.AssertCalled(t, "FindByName", mock.Anything, composed)
}

func TestCustomers_Bracket(t *testing.T) {
	env := newTestEnv()
	env.brackets.On("FindByCustomerID", mock.Anything, int64(1)).
		Return(&entity.Bracket{ID: 10, Name: "Gold", CustomerID: 1}, nil)

	resp, body := get(t, env.app, "/customers/1/bracket")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":10,"name":"Gold","customerId":1}`, string(body))
}

func TestCustomers_Bracket_SinBracket(t *testing.T) {
	env := newTestEnv()
	env.brackets.On("FindByCustomerID", mock.Anything, int64(9)).
		Return(nil, &domain.NotFoundError{Resource: "bracket", Key: "customer 9"})

	resp, body := get(t, env.app, "/customers/9/bracket")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "bracket not found", decodeProblem(t, resp, body).Detail)
}

func TestCustomers_Bracket_IDInvalido(t *testing.T) {
	env := newTestEnv()

	resp, body := get(t, env.app, "/customers/Ada/bracket")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	decodeProblem(t, resp, body)
	env.brackets.AssertNotCalled(t, "FindByCustomerID", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// /brackets
// ──────────────────────────────────────────────────────────────────────────────

func TestBrackets_List(t *testing.T) {
	env := newTestEnv()
	env.brackets.On("FindAll", mock.Anything).Return([]entity.Bracket{{ID: 10, Name: "Gold", CustomerID: 1}}, nil)

	resp, body := get(t, env.app, "/brackets")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":10,"name":"Gold","customerId":1}]`, string(body))
}

func TestBrackets_ByName(t *testing.T) {
	env := newTestEnv()
	env.brackets.On("FindByName", mock.Anything, "Gold").Return(&entity.Bracket{ID: 10, Name: "Gold", CustomerID: 1}, nil)
	env.brackets.On("FindByName", mock.Anything, "Platinum").
		Return(nil, &domain.NotFoundError{Resource: "bracket", Key: "Platinum"})

	resp, _ := get(t, env.app, "/brackets/Gold")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, env.app, "/brackets/Platinum")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "bracket not found", decodeProblem(t, resp, body).Detail)
}

func TestBrackets_Ambiguo_Retorna500SinCausa(t *testing.T) {
	env := newTestEnv()
	env.brackets.On("FindByName", mock.Anything, "Gold").
		Return(nil, fmt.Errorf("bracket Gold: %w", domain.ErrAmbiguous))
	env.brackets.On("FindByCustomerID", mock.Anything, int64(1)).
		Return(nil, fmt.Errorf("bracket customer 1: %w", domain.ErrAmbiguous))

	for _, path := range []string{"/brackets/Gold", "/customers/1/bracket"} {
		resp, body := get(t, env.app, path)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		pd := decodeProblem(t, resp, body)
		assert.Equal(t, http.StatusInternalServerError, pd.Status, path)
		assert.Equal(t, path, pd.Instance)
		assert.NotContains(t, string(body), domain.ErrAmbiguous.Error(), path)
		assert.NotContains(t, pd.Detail, "Gold", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sistema
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	env := newTestEnv()

	resp, body := get(t, env.app, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"brackets-api-test"}`, string(body))
}

func TestOpenAPI(t *testing.T) {
	env := newTestEnv()

	resp, body := get(t, env.app, "/openapi.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/customers/{name}")
}

func TestRutaDesconocida(t *testing.T) {
	env := newTestEnv()

	resp, body := get(t, env.app, "/orders")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, decodeProblem(t, resp, body).Status)
}

// Un panic en un handler responde 500 como ProblemDetail y queda en el log de peticiones.
func TestPanicRecuperado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Out: &buf})
	app := apphttp.NewApp("brackets-api-test", log)
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, body := get(t, app, "/panic")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, decodeProblem(t, resp, body).Status)
	assert.NotContains(t, string(body), "boom")

	assert.Contains(t, buf.String(), `"path":"/panic"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Contains(t, buf.String(), `"message":"http"`)
}

func TestLogCustomersOnListen(t *testing.T) {
	customers := &mocks.CustomerRepository{}
	customers.On("FindAll", mock.Anything).Return([]entity.Customer{{ID: 1, Name: "Ada"}, {ID: 2, Name: "Alice"}}, nil)
	uc := usecase.NewCustomerUseCase(customers, usecase.NewBracketUseCase(&mocks.BracketRepository{}))

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Out: &buf})
	require.NoError(t, apphttp.LogCustomersOnListen(uc, log)(fiber.ListenData{}))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"name":"Ada"`)
	assert.Contains(t, string(lines[1]), `"name":"Alice"`)
}

func TestLogCustomersOnListen_ErrorNoDetieneArranque(t *testing.T) {
	customers := &mocks.CustomerRepository{}
	customers.On("FindAll", mock.Anything).Return(nil, errors.New("sin conexión"))
	uc := usecase.NewCustomerUseCase(customers, usecase.NewBracketUseCase(&mocks.BracketRepository{}))

	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Out: &buf})
	assert.NoError(t, apphttp.LogCustomersOnListen(uc, log)(fiber.ListenData{}))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
