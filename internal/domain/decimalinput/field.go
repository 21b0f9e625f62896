package decimalinput

// Field campo de texto con una cadena de filtros. El filtro decimal propio siempre va al final.
// No es seguro para uso concurrente; cada sesión/formulario tiene los suyos.
type Field struct {
	text    string
	filters []InputFilter
	decimal *DecimalDigitsFilter
}

// NewField crea un campo vacío con el límite decimal indicado y filtros adicionales.
func NewField(places int, extra ...InputFilter) *Field {
	f := &Field{decimal: NewDecimalDigitsFilter(places)}
	f.SetFilters(extra...)
	return f
}

// Text contenido actual.
func (f *Field) Text() string { return f.text }

// DecimalPlaces límite fraccionario vigente.
func (f *Field) DecimalPlaces() int { return f.decimal.Places() }

// Filters copia de la cadena instalada.
func (f *Field) Filters() []InputFilter {
	out := make([]InputFilter, len(f.filters))
	copy(out, f.filters)
	return out
}

// SetDecimalPlaces cambia el límite fraccionario. Es idempotente: mismo valor, sin cambios.
func (f *Field) SetDecimalPlaces(places int) {
	places = ClampPlaces(places)
	if places == f.decimal.Places() {
		return
	}
	f.decimal = NewDecimalDigitsFilter(places)
	f.SetFilters(f.Filters()...)
}

// SetFilters reemplaza la cadena: descarta nil y cualquier filtro decimal previo,
// y agrega el filtro decimal vigente al final.
func (f *Field) SetFilters(filters ...InputFilter) {
	chain := make([]InputFilter, 0, len(filters)+1)
	for _, flt := range filters {
		if flt == nil {
			continue
		}
		if _, ok := flt.(*DecimalDigitsFilter); ok {
			continue
		}
		chain = append(chain, flt)
	}
	f.filters = append(chain, f.decimal)
}

// Apply ejecuta la cadena sobre la edición. Si algún filtro descarta lo insertado,
// el campo no cambia y accepted=false. La edición se evalúa sobre el texto actual del campo.
func (f *Field) Apply(e Edit) (text string, accepted bool) {
	e.Dest = f.text
	text, accepted = ApplyFilters(e, f.filters...)
	f.text = text
	return text, accepted
}

// ApplyFilters ejecuta filters en orden sobre e y devuelve el texto resultante.
// Un rango inválido o un filtro que descarta lo insertado deja e.Dest intacto (accepted=false).
// Los borrados (Source vacío) siempre se aplican.
func ApplyFilters(e Edit, filters ...InputFilter) (text string, accepted bool) {
	if !e.Valid() {
		return e.Dest, false
	}
	for _, flt := range filters {
		replacement, replaced := flt.Filter(e)
		if !replaced {
			continue
		}
		if replacement == "" && e.Source != "" {
			return e.Dest, false
		}
		e.Source = replacement
	}
	return e.Result(), true
}

// Type escribe s al final del campo.
func (f *Field) Type(s string) (string, bool) {
	return f.Apply(Insert(f.text, s))
}

// SetText asigna el texto completo como una sola edición que reemplaza todo el contenido.
func (f *Field) SetText(s string) (string, bool) {
	return f.Apply(Edit{Start: 0, End: len(f.text), Source: s})
}

// Clear vacía el campo sin pasar por los filtros.
func (f *Field) Clear() { f.text = "" }
