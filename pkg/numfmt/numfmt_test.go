package numfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/calculadora-promedio/pkg/numfmt"
)

func TestFormat_Coreano(t *testing.T) {
	f := numfmt.New(numfmt.DefaultLocale, numfmt.DefaultFractionDigits)
	cases := map[string]string{
		"0":           "0",
		"900":         "900",
		"90000":       "90,000",
		"1234567.891": "1,234,567.89",
		"1234.5":      "1,234.5",
		"0.005":       "0.01",
		"12.344":      "12.34",
	}
	for in, want := range cases {
		assert.Equal(t, want, f.Format(decimal.RequireFromString(in)), "Format(%s)", in)
	}
}

func TestFormat_SinDecimales(t *testing.T) {
	f := numfmt.New("en-US", 0)
	assert.Equal(t, "1,235", f.Format(decimal.RequireFromString("1234.5")))
}

func TestNew_LocaleInvalido(t *testing.T) {
	f := numfmt.New("not a locale!!", -1)
	assert.Equal(t, "ko", f.Locale())
	assert.Equal(t, "3", f.Format(decimal.RequireFromString("2.6")))
}

func TestFormatWithSuffix(t *testing.T) {
	f := numfmt.New(numfmt.DefaultLocale, 2)
	assert.Equal(t, "50,000 원", f.FormatWithSuffix(decimal.NewFromInt(50000), "원"))
	assert.Equal(t, "50,000", f.FormatWithSuffix(decimal.NewFromInt(50000), " "))
}
