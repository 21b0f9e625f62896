// Package xmlexport serializa los cálculos guardados de un usuario a XML con etree.
//
//	<calculations user="..." count="2" generated_at="...">
//	  <calculation id="..." created_at="...">
//	    <label>...</label>
//	    <current price="1000" quantity="50"/>
//	    <add price="800" quantity="50"/>
//	    <result current_total="50000" add_total="40000" total_qty="100" total_invested="90000" avg_price="900"/>
//	  </calculation>
//	</calculations>
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/calculadora-promedio/internal/application/ports"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
	"github.com/jhoicas/calculadora-promedio/internal/domain/entity"
)

var _ ports.CalculationExporter = (*Exporter)(nil)

// Exporter implementa ports.CalculationExporter. Los montos se escriben sin redondear.
type Exporter struct {
	indent int
	now    func() time.Time
}

// New construye el exportador con sangría de indent espacios (0 = una sola línea).
func New(indent int) *Exporter {
	return &Exporter{indent: indent, now: time.Now}
}

// ExportCalculations genera el documento XML.
func (e *Exporter) ExportCalculations(ctx context.Context, userID string, list []*entity.Calculation) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("calculations")
	root.CreateAttr("user", userID)
	root.CreateAttr("count", strconv.Itoa(len(list)))
	root.CreateAttr("generated_at", e.now().UTC().Format(time.RFC3339))

	for _, c := range list {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		el := root.CreateElement("calculation")
		el.CreateAttr("id", c.ID)
		el.CreateAttr("created_at", c.CreatedAt.UTC().Format(time.RFC3339))
		if c.Label != "" {
			el.CreateElement("label").SetText(c.Label)
		}
		position(el.CreateElement("current"), c.Current)
		position(el.CreateElement("add"), c.Add)

		res := el.CreateElement("result")
		res.CreateAttr("current_total", c.Result.CurrentTotal.String())
		res.CreateAttr("add_total", c.Result.AddTotal.String())
		res.CreateAttr("total_qty", c.Result.TotalQty.String())
		res.CreateAttr("total_invested", c.Result.TotalInvested.String())
		res.CreateAttr("avg_price", c.Result.AvgPrice.String())
	}

	if e.indent > 0 {
		doc.Indent(e.indent)
	}
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func position(el *etree.Element, p averaging.Position) {
	el.CreateAttr("price", p.Price.String())
	el.CreateAttr("quantity", p.Quantity.String())
}
