// Package pdf genera el reporte PDF de un cálculo de promedio guardado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + etiqueta  │  fecha + ID                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Posición | Precio | Cantidad | Total                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: cantidad total / inversión total / PRECIO PROM.  │
//	│  FOOTER: QR con el ID + leyenda                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/application/ports"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
	"github.com/jhoicas/calculadora-promedio/internal/domain/theme"
	"github.com/jhoicas/calculadora-promedio/pkg/numfmt"
)

var _ ports.CalculationReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.CalculationReportGenerator con Maroto v2.
// Los colores salen de la paleta del tema indicado.
type MarotoReportGenerator struct {
	primary *props.Color
	text    *props.Color
	muted   *props.Color
	white   *props.Color
}

// NewMarotoReportGenerator construye el generador con la paleta de mode (light|dark).
func NewMarotoReportGenerator(mode string) *MarotoReportGenerator {
	p := theme.ForMode(mode)
	return &MarotoReportGenerator{
		primary: color(p.Primary),
		text:    color(p.Text),
		muted:   color(p.Icon),
		white:   &props.Color{Red: 255, Green: 255, Blue: 255},
	}
}

// GenerateCalculationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCalculationPDF(
	_ context.Context,
	c *entity.Calculation,
	view calculator.View,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cálculo de precio promedio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(c))
	m.AddRows(line.NewRow(1, props.Line{Color: g.primary, Thickness: 0.5}))
	m.AddRows(g.tableHeaderRow())
	m.AddRows(
		g.positionRow("Posición actual", c.Current.Price, c.Current.Quantity, view.CurrentTotal),
		g.positionRow("Compra adicional", c.Add.Price, c.Add.Quantity, view.AddTotal),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: g.primary, Thickness: 0.3}))
	m.AddRows(g.resultRow(view))
	m.AddRows(line.NewRow(4))
	m.AddRows(g.footerRow(c))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(c *entity.Calculation) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("CÁLCULO DE PRECIO PROMEDIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: g.primary, Top: 1,
			}),
			text.New(nonEmpty(c.Label, "Sin etiqueta"), props.Text{
				Size: 10, Top: 9, Color: g.text,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+c.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: g.muted,
			}),
			text.New("ID: "+shortID(c.ID), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: g.muted,
			}),
		),
	)
}

func (g *MarotoReportGenerator) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: g.white, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Posición", 3, align.Left),
		h("Precio", 3, align.Right),
		h("Cantidad", 3, align.Right),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: g.primary})
}

func (g *MarotoReportGenerator) positionRow(label string, price, qty decimal.Decimal, total string) core.Row {
	cell := func(s string, a align.Type) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 9, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	// Precio y cantidad tal como se capturaron (hasta 5 decimales), sin redondear a 2.
	raw := numfmt.New(numfmt.DefaultLocale, 5)
	return row.New(7).Add(
		cell(label, align.Left),
		cell(raw.Format(price), align.Right),
		cell(raw.Format(qty), align.Right),
		cell(total, align.Right),
	)
}

func (g *MarotoReportGenerator) resultRow(view calculator.View) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: g.primary, Right: 2})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: g.primary, Right: 1})
	}
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Cantidad total:"),
			label("Inversión total:"),
			grandLabel("PRECIO PROMEDIO:"),
		),
		col.New(4).Add(
			value(view.TotalQty),
			value(view.TotalInvested),
			grandValue(view.AvgPrice),
		),
	)
}

func (g *MarotoReportGenerator) footerRow(c *entity.Calculation) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr("calc:"+c.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Precio promedio = (precio actual × cantidad actual + precio adicional × cantidad adicional)"+
				" / (cantidad actual + cantidad adicional).", props.Text{
				Size: 8, Top: 4, Left: 3, Color: g.muted,
			}),
			text.New("Montos con hasta 2 decimales, redondeo a la mitad lejos de cero.", props.Text{
				Size: 8, Top: 16, Left: 3, Color: g.muted,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func color(hex string) *props.Color {
	r, gr, b, ok := theme.RGB(hex)
	if !ok {
		return &props.Color{}
	}
	return &props.Color{Red: r, Green: gr, Blue: b}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
