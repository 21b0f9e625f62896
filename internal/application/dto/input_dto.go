package dto

import "github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"

// SanitizeRequest body para POST /api/inputs/sanitize.
// DecimalPlaces nil usa el valor configurado.
type SanitizeRequest struct {
	Text          string `json:"text"`
	DecimalPlaces *int   `json:"decimal_places,omitempty"`
}

// SanitizeResponse texto normalizado.
type SanitizeResponse struct {
	Text          string `json:"text"`
	DecimalPlaces int    `json:"decimal_places"`
}

// FilterRequest body para POST /api/inputs/filter: una edición de teclado.
type FilterRequest struct {
	Edit          decimalinput.Edit `json:"edit"`
	DecimalPlaces *int              `json:"decimal_places,omitempty"`
	MaxLength     *int              `json:"max_length,omitempty"`
}

// FilterResponse texto resultante; Accepted=false si la edición se descartó.
type FilterResponse struct {
	Text     string `json:"text"`
	Accepted bool   `json:"accepted"`
}
