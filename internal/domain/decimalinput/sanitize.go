// Package decimalinput restringe la captura de texto numérico a un decimal no negativo
// con un máximo de dígitos fraccionarios (nunca más de MaxDecimalPlaces).
//
// Hay dos variantes:
//   - Sanitize reescribe el texto completo (descarta caracteres, une fragmentos, trunca).
//   - Field + DecimalDigitsFilter validan cada edición y la rechazan si no cumple la gramática.
package decimalinput

import "strings"

const (
	// DefaultDecimalPlaces límite de dígitos fraccionarios por defecto.
	DefaultDecimalPlaces = 5
	// MaxDecimalPlaces tope de dígitos fraccionarios aceptado desde config, CLI o clientes.
	MaxDecimalPlaces = 20
)

// ClampPlaces acota places a [0, MaxDecimalPlaces].
func ClampPlaces(places int) int {
	return min(max(places, 0), MaxDecimalPlaces)
}

// Sanitize normaliza text a la gramática \d*(\.\d{0,places})?.
// Elimina todo lo que no sea dígito o punto, fusiona los fragmentos posteriores al primer punto
// en una sola fracción y la trunca a places dígitos (acotado con ClampPlaces). Un punto sin parte entera produce "0.".
func Sanitize(text string, places int) string {
	if text == "" {
		return ""
	}
	places = ClampPlaces(places)
	clean := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)

	integer, fraction, hasDot := strings.Cut(clean, ".")
	if !hasDot {
		return integer
	}
	fraction = strings.ReplaceAll(fraction, ".", "")
	if len(fraction) > places {
		fraction = fraction[:places]
	}
	if integer == "" {
		integer = "0"
	}
	return integer + "." + fraction
}
