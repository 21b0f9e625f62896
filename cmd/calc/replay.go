package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/calculadora-promedio/internal/application/calculator"
	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
)

// replay relee un XML de GET /api/calculations/export.xml y recalcula cada promedio.
// Acepta documentos UTF-8 e ISO-8859-1 (archivos re-guardados por hojas de cálculo).
func replay(r io.Reader, s calculator.Settings) ([]check, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	root := doc.SelectElement("calculations")
	if root == nil {
		return nil, fmt.Errorf("decodificar XML: falta el elemento <calculations>")
	}

	var out []check
	for _, el := range root.SelectElements("calculation") {
		cur, add, res := el.SelectElement("current"), el.SelectElement("add"), el.SelectElement("result")
		if cur == nil || add == nil || res == nil {
			return nil, fmt.Errorf("cálculo %q incompleto", el.SelectAttrValue("id", ""))
		}
		computed := averaging.CalculateText(
			cur.SelectAttrValue("price", ""), cur.SelectAttrValue("quantity", ""),
			add.SelectAttrValue("price", ""), add.SelectAttrValue("quantity", ""),
		)
		stored := averaging.ParseAmount(res.SelectAttrValue("avg_price", ""))

		c := check{
			ID:       el.SelectAttrValue("id", ""),
			Stored:   stored.String(),
			Computed: computed.AvgPrice.String(),
			Display:  calculator.FormatResult(computed, s).AvgPrice,
			Match:    stored.Equal(computed.AvgPrice),
		}
		if lbl := el.SelectElement("label"); lbl != nil {
			c.Label = strings.TrimSpace(lbl.Text())
		}
		out = append(out, c)
	}
	return out, nil
}
