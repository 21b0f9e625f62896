package calculator

import (
	"strings"
	"sync/atomic"

	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
	"github.com/jhoicas/calculadora-promedio/pkg/numfmt"
)

// Modos de captura.
const (
	// ModeFilter valida cada edición y la rechaza si no cumple la gramática.
	ModeFilter = "filter"
	// ModeSanitize reescribe el texto completo (descarta, fusiona y trunca).
	ModeSanitize = "sanitize"
)

// Settings parámetros de captura y presentación.
type Settings struct {
	DecimalPlaces  int    `json:"decimal_places"`
	MaxLength      int    `json:"max_length"`
	InputMode      string `json:"input_mode"`
	Locale         string `json:"locale"`
	FractionDigits int    `json:"fraction_digits"`
	CurrencySuffix string `json:"currency_suffix"`
}

// DefaultSettings valores de la app original.
func DefaultSettings() Settings {
	return Settings{
		DecimalPlaces:  decimalinput.DefaultDecimalPlaces,
		MaxLength:      16,
		InputMode:      ModeFilter,
		Locale:         numfmt.DefaultLocale,
		FractionDigits: numfmt.DefaultFractionDigits,
		CurrencySuffix: "원",
	}
}

// FromConfig traduce CALC_* a Settings normalizados.
func FromConfig(c config.CalcConfig) Settings {
	return Settings{
		DecimalPlaces:  c.DecimalPlaces,
		MaxLength:      c.MaxLength,
		InputMode:      c.InputMode,
		Locale:         c.Locale,
		FractionDigits: c.FractionDigits,
		CurrencySuffix: c.CurrencySuffix,
	}.Normalize()
}

// Normalize corrige valores fuera de rango. Los dígitos fraccionarios (captura y presentación)
// se acotan a [0, decimalinput.MaxDecimalPlaces].
func (s Settings) Normalize() Settings {
	s.DecimalPlaces = decimalinput.ClampPlaces(s.DecimalPlaces)
	if s.MaxLength <= 0 {
		s.MaxLength = DefaultSettings().MaxLength
	}
	s.FractionDigits = decimalinput.ClampPlaces(s.FractionDigits)
	if strings.ToLower(s.InputMode) == ModeSanitize {
		s.InputMode = ModeSanitize
	} else {
		s.InputMode = ModeFilter
	}
	if strings.TrimSpace(s.Locale) == "" {
		s.Locale = numfmt.DefaultLocale
	}
	return s
}

// SettingsStore contiene los Settings vigentes; se reemplazan atómicamente en la recarga de config.
type SettingsStore struct {
	v atomic.Pointer[Settings]
}

// NewSettingsStore crea el store con s normalizado.
func NewSettingsStore(s Settings) *SettingsStore {
	st := &SettingsStore{}
	st.Set(s)
	return st
}

// Get devuelve una copia de los Settings vigentes.
func (st *SettingsStore) Get() Settings {
	if p := st.v.Load(); p != nil {
		return *p
	}
	return DefaultSettings()
}

// Set reemplaza los Settings.
func (st *SettingsStore) Set(s Settings) {
	n := s.Normalize()
	st.v.Store(&n)
}
