package calculator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
)

func fill(t *testing.T, f *calculator.Form, v calculator.Values) {
	t.Helper()
	for name, text := range map[calculator.Field]string{
		calculator.FieldCurrentPrice: v.CurrentPrice,
		calculator.FieldCurrentQty:   v.CurrentQty,
		calculator.FieldAddPrice:     v.AddPrice,
		calculator.FieldAddQty:       v.AddQty,
	} {
		_, ok, err := f.SetText(name, text)
		require.NoError(t, err)
		require.True(t, ok, "campo %s=%q", name, text)
	}
}

func TestForm_ResultadoYVista(t *testing.T) {
	f := calculator.NewForm(calculator.DefaultSettings())
	fill(t, f, calculator.Values{CurrentPrice: "1000", CurrentQty: "50", AddPrice: "800", AddQty: "50"})

	res := f.Result()
	assert.True(t, res.AvgPrice.Equal(decimal.NewFromInt(900)))

	view := f.View()
	assert.Equal(t, calculator.View{
		CurrentTotal:  "50,000 원",
		AddTotal:      "40,000 원",
		TotalQty:      "100",
		TotalInvested: "90,000",
		AvgPrice:      "900",
	}, view)
}

func TestForm_ModoFilterRechaza(t *testing.T) {
	f := calculator.NewForm(calculator.DefaultSettings())

	_, ok, err := f.SetText(calculator.FieldAddPrice, "12.34.56")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", f.Values().AddPrice)

	for _, k := range []string{"1", ".", "5"} {
		_, ok, err = f.ApplyEdit(calculator.FieldAddPrice, decimalinput.Edit{Start: len(f.Values().AddPrice), End: len(f.Values().AddPrice), Source: k})
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, "1.5", f.Values().AddPrice)
}

func TestForm_ModoSanitizeReescribe(t *testing.T) {
	s := calculator.DefaultSettings()
	s.InputMode = calculator.ModeSanitize
	f := calculator.NewForm(s)

	v, ok, err := f.SetText(calculator.FieldAddPrice, "12.34.56")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12.3456", v)

	v, _, err = f.SetText(calculator.FieldAddQty, "1.123456")
	require.NoError(t, err)
	assert.Equal(t, "1.12345", v)

	// Edición en medio: "12.3456" + "9" al final -> se trunca a 5 decimales.
	v, ok, err = f.ApplyEdit(calculator.FieldAddPrice, decimalinput.Edit{Start: 7, End: 7, Source: "99"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12.34569", v)
}

func TestForm_CampoDesconocido(t *testing.T) {
	f := calculator.NewForm(calculator.DefaultSettings())
	_, _, err := f.SetText("precio", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	_, _, err = f.ApplyEdit("precio", decimalinput.Edit{})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestForm_Reset(t *testing.T) {
	f := calculator.NewForm(calculator.DefaultSettings())
	fill(t, f, calculator.Values{CurrentPrice: "1", CurrentQty: "2", AddPrice: "3", AddQty: "4"})
	f.Reset()
	assert.Equal(t, calculator.Values{}, f.Values())
	assert.True(t, f.Result().TotalQty.IsZero())
}

func TestForm_ConfigureConservaTexto(t *testing.T) {
	f := calculator.NewForm(calculator.DefaultSettings())
	fill(t, f, calculator.Values{CurrentPrice: "1.12345"})

	s := calculator.DefaultSettings()
	s.DecimalPlaces = 2
	s.CurrencySuffix = "KRW"
	f.Configure(s)

	assert.Equal(t, "1.12345", f.Values().CurrentPrice, "el texto existente no se reescribe")
	_, ok, err := f.SetText(calculator.FieldAddPrice, "1.123")
	require.NoError(t, err)
	assert.False(t, ok, "el nuevo límite aplica a las siguientes ediciones")
	assert.Equal(t, "0 KRW", f.View().AddTotal)
}

func TestSettings_Normalize(t *testing.T) {
	s := calculator.Settings{DecimalPlaces: -1, MaxLength: 0, InputMode: "SANITIZE", FractionDigits: -2}.Normalize()
	assert.Equal(t, 0, s.DecimalPlaces)
	assert.Equal(t, 16, s.MaxLength)
	assert.Equal(t, calculator.ModeSanitize, s.InputMode)
	assert.Equal(t, 0, s.FractionDigits)
	assert.Equal(t, "ko-KR", s.Locale)

	assert.Equal(t, calculator.ModeFilter, calculator.Settings{InputMode: "otro"}.Normalize().InputMode)
}

func TestSettings_NormalizeAcotaDigitos(t *testing.T) {
	s := calculator.Settings{DecimalPlaces: 1001, MaxLength: 1 << 20, FractionDigits: 1 << 30}.Normalize()
	assert.Equal(t, decimalinput.MaxDecimalPlaces, s.DecimalPlaces)
	assert.Equal(t, decimalinput.MaxDecimalPlaces, s.FractionDigits)
	assert.Equal(t, 1<<20, s.MaxLength)
}

func TestForm_SettingsFueraDeRango(t *testing.T) {
	var f *calculator.Form
	require.NotPanics(t, func() {
		f = calculator.NewForm(calculator.Settings{DecimalPlaces: 1001, MaxLength: 1 << 20, FractionDigits: 5000})
	})
	fill(t, f, calculator.Values{CurrentPrice: "1000", CurrentQty: "50", AddPrice: "800", AddQty: "50"})
	assert.True(t, f.Result().AvgPrice.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "900", f.View().AvgPrice)

	require.NotPanics(t, func() { f.Configure(calculator.Settings{DecimalPlaces: 5000}) })
	assert.Equal(t, decimalinput.MaxDecimalPlaces, f.Settings().DecimalPlaces)
}

func TestSettingsStore(t *testing.T) {
	st := calculator.NewSettingsStore(calculator.DefaultSettings())
	assert.Equal(t, 5, st.Get().DecimalPlaces)

	s := st.Get()
	s.DecimalPlaces = 3
	st.Set(s)
	assert.Equal(t, 3, st.Get().DecimalPlaces)

	var zero calculator.SettingsStore
	assert.Equal(t, calculator.DefaultSettings(), zero.Get())
}

func TestSettings_FromConfig(t *testing.T) {
	s := calculator.FromConfig(config.CalcConfig{DecimalPlaces: 2, MaxLength: 10, InputMode: "sanitize", Locale: "en-US", FractionDigits: 1, CurrencySuffix: " USD"})
	assert.Equal(t, 2, s.DecimalPlaces)
	assert.Equal(t, 10, s.MaxLength)
	assert.Equal(t, calculator.ModeSanitize, s.InputMode)
	assert.Equal(t, "en-US", s.Locale)
	assert.Equal(t, " USD", s.CurrencySuffix)
}
