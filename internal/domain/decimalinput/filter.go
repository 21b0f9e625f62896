package decimalinput

import "strings"

// Edit una edición de teclado: reemplaza Dest[Start:End] por Source.
// Start y End son offsets en bytes; el texto aceptado es ASCII.
type Edit struct {
	Dest   string `json:"dest"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Source string `json:"source"`
}

// Insert construye la edición de escribir source al final de dest.
func Insert(dest, source string) Edit {
	return Edit{Dest: dest, Start: len(dest), End: len(dest), Source: source}
}

// Valid indica si el rango está dentro de Dest.
func (e Edit) Valid() bool {
	return e.Start >= 0 && e.Start <= e.End && e.End <= len(e.Dest)
}

// Result devuelve el texto candidato tras aplicar la edición. Requiere Valid().
func (e Edit) Result() string {
	return e.Dest[:e.Start] + e.Source + e.Dest[e.End:]
}

// InputFilter decide sobre una edición antes de aplicarla.
// replaced=false acepta Source tal cual; replaced=true sustituye Source por replacement
// ("" descarta la edición).
type InputFilter interface {
	Filter(e Edit) (replacement string, replaced bool)
}

// DecimalDigitsFilter acepta la edición solo si el texto resultante cumple \d*(\.\d{0,N})?.
type DecimalDigitsFilter struct {
	places int
}

// NewDecimalDigitsFilter construye el filtro; places se acota a [0, MaxDecimalPlaces].
func NewDecimalDigitsFilter(places int) *DecimalDigitsFilter {
	return &DecimalDigitsFilter{places: ClampPlaces(places)}
}

// Places límite de dígitos fraccionarios configurado.
func (f *DecimalDigitsFilter) Places() int { return f.places }

// Matches valida un texto completo contra la gramática.
func (f *DecimalDigitsFilter) Matches(text string) bool {
	integer, fraction, hasDot := strings.Cut(text, ".")
	if !digitsOnly(integer) {
		return false
	}
	if !hasDot {
		return true
	}
	return len(fraction) <= f.places && digitsOnly(fraction)
}

// Filter implementa InputFilter.
func (f *DecimalDigitsFilter) Filter(e Edit) (string, bool) {
	if !e.Valid() {
		return "", true
	}
	if f.Matches(e.Result()) {
		return "", false
	}
	return "", true
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LengthFilter limita la longitud total del campo truncando lo insertado.
type LengthFilter struct {
	Max int
}

// Filter implementa InputFilter.
func (f LengthFilter) Filter(e Edit) (string, bool) {
	if !e.Valid() {
		return "", true
	}
	keep := f.Max - (len(e.Dest) - (e.End - e.Start))
	if keep <= 0 {
		return "", true
	}
	if keep >= len(e.Source) {
		return "", false
	}
	return e.Source[:keep], true
}
