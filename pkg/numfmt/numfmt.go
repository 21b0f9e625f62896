// Package numfmt formatea montos para mostrar con separadores de miles según el locale.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale locale por defecto de la app.
const DefaultLocale = "ko-KR"

// DefaultFractionDigits máximo de decimales mostrados.
const DefaultFractionDigits = 2

// Formatter formatea decimales con un locale y un máximo de dígitos fraccionarios.
// Es seguro para uso concurrente.
type Formatter struct {
	tag       language.Tag
	maxDigits int
}

// New crea un Formatter. Un locale inválido cae en DefaultLocale; maxDigits negativo en 0.
func New(locale string, maxDigits int) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Korean
	}
	if maxDigits < 0 {
		maxDigits = 0
	}
	return &Formatter{tag: tag, maxDigits: maxDigits}
}

// Locale etiqueta BCP 47 efectiva.
func (f *Formatter) Locale() string { return f.tag.String() }

// Format redondea (mitad lejos de cero) a maxDigits y agrega separadores de miles.
// Ej. ko-KR: 1234567.891 -> "1,234,567.89"; 900 -> "900".
func (f *Formatter) Format(d decimal.Decimal) string {
	rounded := d.Round(int32(f.maxDigits))
	p := message.NewPrinter(f.tag)
	return p.Sprint(number.Decimal(rounded.InexactFloat64(), number.MaxFractionDigits(f.maxDigits)))
}

// FormatWithSuffix igual que Format pero agrega un sufijo de moneda separado por espacio.
func (f *Formatter) FormatWithSuffix(d decimal.Decimal, suffix string) string {
	s := f.Format(d)
	if strings.TrimSpace(suffix) == "" {
		return s
	}
	return s + " " + suffix
}
