package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/calculadora-promedio/internal/application/auth"
	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/memory"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/metrics"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/pdf"
	"github.com/jhoicas/calculadora-promedio/internal/infrastructure/xmlexport"
	apphttp "github.com/jhoicas/calculadora-promedio/internal/interfaces/http"
)

// newTestServer arma la API completa sobre repositorios en memoria.
func newTestServer(t *testing.T) (*fiber.App, *metrics.Registry) {
	t.Helper()
	settings := calculator.NewSettingsStore(calculator.DefaultSettings())
	reg := metrics.New(metrics.DefaultConfig())

	calcUC := usecase.NewCalculationUseCase(
		memory.NewCalculationRepository(), settings,
		pdf.NewMarotoReportGenerator("light"), xmlexport.New(2), reg,
	)
	inputUC := usecase.NewInputUseCase(settings, reg)
	users := memory.NewUserRepository()
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}).WithBcryptCost(bcrypt.MinCost)

	app := fiber.New()
	app.Use(apphttp.MetricsMiddleware(reg))
	apphttp.Router(app, apphttp.RouterDeps{
		CalculationUC: calcUC,
		InputUC:       inputUC,
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(users),
		JWTSecret:     testJWTSecret,
	})
	return app, reg
}

// call lanza una petición con body JSON opcional y devuelve status y cuerpo.
func call(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

// signup registra e inicia sesión; devuelve el token.
func signup(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, _ := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: email, Password: "secreto123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestPreview_EjemploCompleto(t *testing.T) {
	app, _ := newTestServer(t)
	resp, body := call(t, app, http.MethodPost, "/api/calculations/preview", "", dto.CalculateRequest{
		CurrentPrice: "1,000", CurrentQty: "50", AddPrice: "800", AddQty: "50",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Result    map[string]string `json:"result"`
		Formatted calculator.View   `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "50000", out.Result["current_total"])
	assert.Equal(t, "40000", out.Result["add_total"])
	assert.Equal(t, "100", out.Result["total_qty"])
	assert.Equal(t, "90000", out.Result["total_invested"])
	assert.Equal(t, "900", out.Result["avg_price"])
	assert.Equal(t, "50,000 원", out.Formatted.CurrentTotal)
	assert.Equal(t, "900", out.Formatted.AvgPrice)
}

func TestPreview_CuerpoInvalido(t *testing.T) {
	app, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/calculations/preview", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInputs_SanitizeYFilter(t *testing.T) {
	app, _ := newTestServer(t)

	resp, body := call(t, app, http.MethodPost, "/api/inputs/sanitize", "", dto.SanitizeRequest{Text: "12.34.56"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var san dto.SanitizeResponse
	require.NoError(t, json.Unmarshal(body, &san))
	assert.Equal(t, "12.3456", san.Text)
	assert.Equal(t, 5, san.DecimalPlaces)

	resp, body = call(t, app, http.MethodPost, "/api/inputs/filter", "", map[string]any{
		"edit": map[string]any{"dest": "1.12345", "start": 7, "end": 7, "source": "6"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fil dto.FilterResponse
	require.NoError(t, json.Unmarshal(body, &fil))
	assert.False(t, fil.Accepted)
	assert.Equal(t, "1.12345", fil.Text)
}

func TestTheme_ModoDesconocidoEsLight(t *testing.T) {
	app, _ := newTestServer(t)
	resp, body := call(t, app, http.MethodGet, "/api/theme/sepia", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out apphttp.ThemeResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "light", out.Mode)
	assert.Equal(t, "#11181C", out.Palette.Text)
}

func TestCalculations_RequiereToken(t *testing.T) {
	app, _ := newTestServer(t)
	resp, _ := call(t, app, http.MethodGet, "/api/calculations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCalculations_FlujoCompleto(t *testing.T) {
	app, reg := newTestServer(t)
	token := signup(t, app, "ana@example.com")

	// guardar
	resp, body := call(t, app, http.MethodPost, "/api/calculations", token, dto.CalculateRequest{
		Label: "Promedio enero", CurrentPrice: "1000", CurrentQty: "50", AddPrice: "800", AddQty: "50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var saved dto.CalculationResponse
	require.NoError(t, json.Unmarshal(body, &saved))
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, "Promedio enero", saved.Label)
	assert.Equal(t, "900", saved.Formatted.AvgPrice)

	// listar
	resp, body = call(t, app, http.MethodGet, "/api/calculations?limit=5", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.CalculationListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, 5, list.Page.Limit)

	// obtener
	resp, _ = call(t, app, http.MethodGet, "/api/calculations/"+saved.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// otro usuario no puede verlo
	other := signup(t, app, "beto@example.com")
	resp, _ = call(t, app, http.MethodGet, "/api/calculations/"+saved.ID, other, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// PDF
	resp, body = call(t, app, http.MethodGet, "/api/calculations/"+saved.ID+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "calculo-"+saved.ID+".pdf")

	// XML
	resp, body = call(t, app, http.MethodGet, "/api/calculations/export.xml", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `avg_price="900"`)
	assert.Contains(t, string(body), saved.ID)

	// borrar
	resp, _ = call(t, app, http.MethodDelete, "/api/calculations/"+saved.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = call(t, app, http.MethodGet, "/api/calculations/"+saved.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// métricas por patrón de ruta
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `route="/api/calculations/:id"`)
	assert.Contains(t, rec.Body.String(), "calc_api_calculations_saved_total 1")
}

func TestAuth_RegistroDuplicadoYCredencialesInvalidas(t *testing.T) {
	app, _ := newTestServer(t)
	signup(t, app, "ana@example.com")

	resp, body := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "ANA@example.com", Password: "secreto123"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "EMAIL_EXISTS")

	resp, _ = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: "x@example.com", Password: "corta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUsers_Me(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := call(t, app, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := signup(t, app, "bo@example.com")
	resp, body := call(t, app, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(body, &me))
	assert.Equal(t, "bo@example.com", me.Email)
	assert.Equal(t, "user", me.Role)
}

// Entradas fuera de rango: 200 con montos en cero o límites acotados, nunca 500.

var hugeExponents = dto.CalculateRequest{
	Label:        "exponentes",
	CurrentPrice: "1e2000000000",
	CurrentQty:   "1e2000000000",
	AddPrice:     "1e400",
	AddQty:       "1e3000000",
}

func TestPreview_ExponentesFueraDeRango(t *testing.T) {
	app, _ := newTestServer(t)
	resp, body := call(t, app, http.MethodPost, "/api/calculations/preview", "", hugeExponents)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out struct {
		Result    map[string]string `json:"result"`
		Formatted calculator.View   `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	for _, k := range []string{"current_total", "add_total", "total_qty", "total_invested", "avg_price"} {
		assert.Equal(t, "0", out.Result[k], k)
	}
	assert.Equal(t, "0", out.Formatted.AvgPrice)
}

func TestCalculations_CrearConExponentesFueraDeRango(t *testing.T) {
	app, _ := newTestServer(t)
	token := signup(t, app, "exp@example.com")

	resp, body := call(t, app, http.MethodPost, "/api/calculations", token, hugeExponents)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var saved dto.CalculationResponse
	require.NoError(t, json.Unmarshal(body, &saved))
	assert.True(t, saved.Current.Price.IsZero())
	assert.True(t, saved.Result.TotalInvested.IsZero())
	assert.True(t, saved.Result.AvgPrice.IsZero())
}

func TestInputs_SanitizeDecimalesFueraDeRango(t *testing.T) {
	app, _ := newTestServer(t)
	resp, body := call(t, app, http.MethodPost, "/api/inputs/sanitize", "", map[string]any{
		"text":           "1." + strings.Repeat("9", 40),
		"decimal_places": 1001,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var san dto.SanitizeResponse
	require.NoError(t, json.Unmarshal(body, &san))
	assert.Equal(t, decimalinput.MaxDecimalPlaces, san.DecimalPlaces)
	assert.Equal(t, "1."+strings.Repeat("9", decimalinput.MaxDecimalPlaces), san.Text)
}

func TestInputs_FilterLimitesFueraDeRango(t *testing.T) {
	app, _ := newTestServer(t)
	resp, body := call(t, app, http.MethodPost, "/api/inputs/filter", "", map[string]any{
		"edit":           map[string]any{"dest": "1.5", "start": 3, "end": 3, "source": "5"},
		"decimal_places": 1001,
		"max_length":     math.MaxInt,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var fil dto.FilterResponse
	require.NoError(t, json.Unmarshal(body, &fil))
	assert.True(t, fil.Accepted)
	assert.Equal(t, "1.55", fil.Text)
}
