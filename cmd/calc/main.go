// calc calcula el precio promedio desde la línea de comandos.
//
// Uso:
//
//	calc [flags] compute <precio_actual> <cantidad_actual> <precio_adicional> <cantidad_adicional>
//	calc [flags] sanitize <texto>...
//	calc [flags] replay <export.xml>
//
// Los valores por defecto salen de CALC_* (pkg/config); los flags los reemplazan.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain/decimalinput"
	"github.com/jhoicas/calculadora-promedio/pkg/config"
)

var errUsage = errors.New("uso: calc [flags] compute|sanitize|replay ...")

func main() {
	base := calculator.DefaultSettings()
	if cfg, err := config.Load(); err == nil {
		base = calculator.FromConfig(cfg.Calc)
	} else {
		fmt.Fprintf(os.Stderr, "Configuración: %v (se usan valores por defecto)\n", err)
	}
	os.Exit(run(os.Args[1:], base, os.Stdout, os.Stderr))
}

// run ejecuta el subcomando y devuelve el código de salida.
func run(args []string, base calculator.Settings, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	s := base
	output := fs.String("output", "text", "formato de salida: text|json|yaml")
	fs.IntVar(&s.DecimalPlaces, "places", base.DecimalPlaces, "dígitos fraccionarios permitidos en la captura")
	fs.IntVar(&s.MaxLength, "max-length", base.MaxLength, "longitud máxima de cada campo")
	fs.StringVar(&s.InputMode, "mode", base.InputMode, "modo de captura: filter|sanitize")
	fs.StringVar(&s.Locale, "locale", base.Locale, "locale de presentación (BCP 47)")
	fs.IntVar(&s.FractionDigits, "digits", base.FractionDigits, "decimales máximos al mostrar")
	fs.StringVar(&s.CurrencySuffix, "suffix", base.CurrencySuffix, "sufijo de moneda de los totales")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	s = s.Normalize()

	r, err := newRenderer(*output, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	switch rest[0] {
	case "compute":
		err = compute(r, s, rest[1:])
	case "sanitize":
		err = sanitize(r, s, rest[1:])
	case "replay":
		err = replayFile(r, s, rest[1:])
	default:
		err = fmt.Errorf("subcomando desconocido %q: %w", rest[0], errUsage)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func compute(r *renderer, s calculator.Settings, args []string) error {
	if len(args) != len(calculator.Fields) {
		return fmt.Errorf("compute espera %d valores: %w", len(calculator.Fields), errUsage)
	}
	form := calculator.NewForm(s)
	for i, name := range calculator.Fields {
		_, ok, err := form.SetText(name, args[i])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: valor %q rechazado (máximo %d decimales, %d caracteres)",
				name, args[i], s.DecimalPlaces, s.MaxLength)
		}
	}
	return r.computation(newComputation(form))
}

func sanitize(r *renderer, s calculator.Settings, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sanitize espera al menos un texto: %w", errUsage)
	}
	out := make([]sanitized, 0, len(args))
	for _, a := range args {
		out = append(out, sanitized{Input: a, Value: decimalinput.Sanitize(a, s.DecimalPlaces)})
	}
	return r.sanitized(out)
}

func replayFile(r *renderer, s calculator.Settings, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("replay espera la ruta del XML exportado: %w", errUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("abrir XML: %w", err)
	}
	defer f.Close()

	checks, err := replay(f, s)
	if err != nil {
		return err
	}
	if err := r.checks(checks); err != nil {
		return err
	}
	for _, c := range checks {
		if !c.Match {
			return fmt.Errorf("replay: %s no coincide con el cálculo actual", c.ID)
		}
	}
	return nil
}
