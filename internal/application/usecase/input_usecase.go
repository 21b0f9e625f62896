package usecase

import (
	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/dto"
	"github.com/jhoicas/calculadora-promedio/internal/application/ports"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
)

// InputUseCase expone el saneamiento de texto para campos remotos.
type InputUseCase struct {
	settings *calculator.SettingsStore
	metrics  ports.Metrics
}

// NewInputUseCase construye el caso de uso.
func NewInputUseCase(settings *calculator.SettingsStore, metrics ports.Metrics) *InputUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if settings == nil {
		settings = calculator.NewSettingsStore(calculator.DefaultSettings())
	}
	return &InputUseCase{settings: settings, metrics: metrics}
}

// Sanitize reescribe el texto completo. DecimalPlaces del cliente se acota a decimalinput.MaxDecimalPlaces.
func (uc *InputUseCase) Sanitize(in dto.SanitizeRequest) dto.SanitizeResponse {
	places := uc.settings.Get().DecimalPlaces
	if in.DecimalPlaces != nil {
		places = decimalinput.ClampPlaces(*in.DecimalPlaces)
	}
	out := decimalinput.Sanitize(in.Text, places)
	uc.metrics.InputFiltered(calculator.ModeSanitize, out == in.Text)
	return dto.SanitizeResponse{Text: out, DecimalPlaces: places}
}

// Filter evalúa una edición de teclado sobre in.Edit.Dest; solo importa el texto resultante.
func (uc *InputUseCase) Filter(in dto.FilterRequest) dto.FilterResponse {
	s := uc.settings.Get()
	places, maxLen := s.DecimalPlaces, s.MaxLength
	if in.DecimalPlaces != nil {
		places = decimalinput.ClampPlaces(*in.DecimalPlaces)
	}
	if in.MaxLength != nil && *in.MaxLength > 0 {
		maxLen = *in.MaxLength
	}

	text, accepted := decimalinput.ApplyFilters(in.Edit,
		decimalinput.LengthFilter{Max: maxLen},
		decimalinput.NewDecimalDigitsFilter(places),
	)
	uc.metrics.InputFiltered(calculator.ModeFilter, accepted)
	return dto.FilterResponse{Text: text, Accepted: accepted}
}
