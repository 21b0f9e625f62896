// Package calculator modela el estado de la pantalla del calculador de promedio:
// cuatro campos de texto, el resultado recalculado en cada cambio y su presentación.
// Un Form no es seguro para uso concurrente; cada sesión tiene el suyo.
package calculator

import (
	"github.com/jhoicas/calculadora-promedio/internal/domain"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
	"github.com/jhoicas/calculadora-promedio/pkg/numfmt"
)

// Field nombre de un campo del formulario.
type Field string

// Campos del formulario.
const (
	FieldCurrentPrice Field = "current_price"
	FieldCurrentQty   Field = "current_qty"
	FieldAddPrice     Field = "add_price"
	FieldAddQty       Field = "add_qty"
)

// Fields orden de presentación.
var Fields = []Field{FieldCurrentPrice, FieldCurrentQty, FieldAddPrice, FieldAddQty}

// Values texto de los cuatro campos.
type Values struct {
	CurrentPrice string `json:"current_price" yaml:"current_price"`
	CurrentQty   string `json:"current_qty" yaml:"current_qty"`
	AddPrice     string `json:"add_price" yaml:"add_price"`
	AddQty       string `json:"add_qty" yaml:"add_qty"`
}

// View resultado formateado para mostrar.
type View struct {
	CurrentTotal  string `json:"current_total" yaml:"current_total"`
	AddTotal      string `json:"add_total" yaml:"add_total"`
	TotalQty      string `json:"total_qty" yaml:"total_qty"`
	TotalInvested string `json:"total_invested" yaml:"total_invested"`
	AvgPrice      string `json:"avg_price" yaml:"avg_price"`
}

// FormatResult presenta r según s: separadores de miles, máximo s.FractionDigits decimales;
// los totales de cada tarjeta llevan el sufijo de moneda.
func FormatResult(r averaging.Result, s Settings) View {
	s = s.Normalize()
	f := numfmt.New(s.Locale, s.FractionDigits)
	return formatWith(f, r, s.CurrencySuffix)
}

func formatWith(f *numfmt.Formatter, r averaging.Result, suffix string) View {
	return View{
		CurrentTotal:  f.FormatWithSuffix(r.CurrentTotal, suffix),
		AddTotal:      f.FormatWithSuffix(r.AddTotal, suffix),
		TotalQty:      f.Format(r.TotalQty),
		TotalInvested: f.Format(r.TotalInvested),
		AvgPrice:      f.Format(r.AvgPrice),
	}
}

// Form estado del calculador.
type Form struct {
	settings  Settings
	formatter *numfmt.Formatter
	fields    map[Field]*decimalinput.Field
}

// NewForm crea un formulario vacío.
func NewForm(s Settings) *Form {
	s = s.Normalize()
	f := &Form{
		settings:  s,
		formatter: numfmt.New(s.Locale, s.FractionDigits),
		fields:    make(map[Field]*decimalinput.Field, len(Fields)),
	}
	for _, name := range Fields {
		f.fields[name] = decimalinput.NewField(s.DecimalPlaces, decimalinput.LengthFilter{Max: s.MaxLength})
	}
	return f
}

// Settings vigentes.
func (f *Form) Settings() Settings { return f.settings }

// Configure aplica nuevos Settings conservando el texto capturado. Sin cambios, no hace nada.
func (f *Form) Configure(s Settings) {
	s = s.Normalize()
	if s == f.settings {
		return
	}
	if s.Locale != f.settings.Locale || s.FractionDigits != f.settings.FractionDigits {
		f.formatter = numfmt.New(s.Locale, s.FractionDigits)
	}
	for _, fld := range f.fields {
		fld.SetDecimalPlaces(s.DecimalPlaces)
		if s.MaxLength != f.settings.MaxLength {
			fld.SetFilters(decimalinput.LengthFilter{Max: s.MaxLength})
		}
	}
	f.settings = s
}

// SetText reemplaza el texto de un campo. En modo filter un texto inválido se rechaza
// (accepted=false, el campo no cambia); en modo sanitize se reescribe.
func (f *Form) SetText(name Field, text string) (value string, accepted bool, err error) {
	fld, ok := f.fields[name]
	if !ok {
		return "", false, domain.ErrUnknownField
	}
	if f.settings.InputMode == ModeSanitize {
		text = decimalinput.Sanitize(text, f.settings.DecimalPlaces)
	}
	value, accepted = fld.SetText(text)
	return value, accepted, nil
}

// ApplyEdit aplica una edición de teclado sobre el texto actual del campo (e.Dest se ignora).
func (f *Form) ApplyEdit(name Field, e decimalinput.Edit) (value string, accepted bool, err error) {
	fld, ok := f.fields[name]
	if !ok {
		return "", false, domain.ErrUnknownField
	}
	if f.settings.InputMode == ModeSanitize {
		e.Dest = fld.Text()
		if !e.Valid() {
			return fld.Text(), false, nil
		}
		return f.SetText(name, e.Result())
	}
	value, accepted = fld.Apply(e)
	return value, accepted, nil
}

// Values texto actual de los campos.
func (f *Form) Values() Values {
	return Values{
		CurrentPrice: f.fields[FieldCurrentPrice].Text(),
		CurrentQty:   f.fields[FieldCurrentQty].Text(),
		AddPrice:     f.fields[FieldAddPrice].Text(),
		AddQty:       f.fields[FieldAddQty].Text(),
	}
}

// Result recalcula con los valores actuales.
func (f *Form) Result() averaging.Result {
	v := f.Values()
	return averaging.CalculateText(v.CurrentPrice, v.CurrentQty, v.AddPrice, v.AddQty)
}

// View resultado actual formateado.
func (f *Form) View() View {
	return formatWith(f.formatter, f.Result(), f.settings.CurrencySuffix)
}

// Reset vacía los cuatro campos (botón "inicializar").
func (f *Form) Reset() {
	for _, fld := range f.fields {
		fld.Clear()
	}
}
