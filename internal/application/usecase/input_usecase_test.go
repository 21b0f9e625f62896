package usecase_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/usecase"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
)

func intPtr(v int) *int { return &v }

func TestInputUseCase_Sanitize(t *testing.T) {
	m := &countingMetrics{}
	uc := usecase.NewInputUseCase(nil, m)

	out := uc.Sanitize(dto.SanitizeRequest{Text: "1,234.567891"})
	assert.Equal(t, "1234.56789", out.Text)
	assert.Equal(t, decimalinput.DefaultDecimalPlaces, out.DecimalPlaces)

	out = uc.Sanitize(dto.SanitizeRequest{Text: "3.14159", DecimalPlaces: intPtr(2)})
	assert.Equal(t, "3.14", out.Text)

	out = uc.Sanitize(dto.SanitizeRequest{Text: "7.5", DecimalPlaces: intPtr(-3)})
	assert.Equal(t, 0, out.DecimalPlaces)

	out = uc.Sanitize(dto.SanitizeRequest{Text: "42"})
	assert.Equal(t, "42", out.Text)

	assert.Equal(t, 1, m.edits["sanitize/accepted"])
	assert.Equal(t, 3, m.edits["sanitize/rejected"])
}

func TestInputUseCase_Filter(t *testing.T) {
	m := &countingMetrics{}
	uc := usecase.NewInputUseCase(nil, m)

	out := uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert("12.3", "4")})
	assert.True(t, out.Accepted)
	assert.Equal(t, "12.34", out.Text)

	out = uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert("1.23", "4"), DecimalPlaces: intPtr(2)})
	assert.False(t, out.Accepted)
	assert.Equal(t, "1.23", out.Text)

	out = uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert("1.2", ".")})
	assert.False(t, out.Accepted)

	out = uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert("123", "4"), MaxLength: intPtr(3)})
	assert.False(t, out.Accepted)

	assert.Equal(t, 1, m.edits["filter/accepted"])
	assert.Equal(t, 3, m.edits["filter/rejected"])
}

func TestInputUseCase_FilterUsaSettingsVigentes(t *testing.T) {
	store := calculator.NewSettingsStore(calculator.DefaultSettings())
	uc := usecase.NewInputUseCase(store, nil)

	s := store.Get()
	s.DecimalPlaces = 1
	store.Set(s)

	assert.False(t, uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert("0.5", "5")}).Accepted)
	assert.Equal(t, "0.5", uc.Sanitize(dto.SanitizeRequest{Text: "0.55"}).Text)
}

func TestInputUseCase_LimitesFueraDeRango(t *testing.T) {
	uc := usecase.NewInputUseCase(nil, nil)
	long := "1." + strings.Repeat("7", 40)

	var san dto.SanitizeResponse
	require.NotPanics(t, func() {
		san = uc.Sanitize(dto.SanitizeRequest{Text: long, DecimalPlaces: intPtr(1001)})
	})
	assert.Equal(t, decimalinput.MaxDecimalPlaces, san.DecimalPlaces)
	assert.Equal(t, "1."+strings.Repeat("7", decimalinput.MaxDecimalPlaces), san.Text)

	var out dto.FilterResponse
	require.NotPanics(t, func() {
		out = uc.Filter(dto.FilterRequest{
			Edit:          decimalinput.Insert("1.5", "5"),
			DecimalPlaces: intPtr(1001),
			MaxLength:     intPtr(math.MaxInt),
		})
	})
	assert.True(t, out.Accepted)
	assert.Equal(t, "1.55", out.Text)

	out = uc.Filter(dto.FilterRequest{Edit: decimalinput.Insert(long[:22], "7"), DecimalPlaces: intPtr(1001), MaxLength: intPtr(100)})
	assert.False(t, out.Accepted)
}
