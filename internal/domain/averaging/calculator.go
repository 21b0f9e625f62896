// Package averaging implementa el cálculo de precio promedio al ampliar una posición
// (promediar a la baja o al alza). Es lógica pura: no hay estado, errores ni I/O.
package averaging

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Position cantidad y precio de compra de una tenencia (actual o adicional).
type Position struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Total devuelve Price * Quantity.
func (p Position) Total() decimal.Decimal {
	return p.Price.Mul(p.Quantity)
}

// Result valores derivados; se recalcula completo en cada cambio de entrada.
type Result struct {
	CurrentTotal  decimal.Decimal `json:"current_total"`
	AddTotal      decimal.Decimal `json:"add_total"`
	TotalQty      decimal.Decimal `json:"total_qty"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
}

// Calculate aplica el promedio ponderado (servicio de dominio).
// AvgPrice = ((cp * cq) + (ap * aq)) / (cq + aq); si la cantidad total no es positiva, AvgPrice = 0.
func Calculate(current, add Position) Result {
	currentTotal := current.Total()
	addTotal := add.Total()
	totalQty := current.Quantity.Add(add.Quantity)
	totalInvested := currentTotal.Add(addTotal)

	avg := decimal.Zero
	if totalQty.GreaterThan(decimal.Zero) {
		avg = totalInvested.Div(totalQty)
	}
	return Result{
		CurrentTotal:  currentTotal,
		AddTotal:      addTotal,
		TotalQty:      totalQty,
		TotalInvested: totalInvested,
		AvgPrice:      avg,
	}
}

// CalculateText parsea los cuatro textos con ParseAmount y calcula.
func CalculateText(currentPrice, currentQty, addPrice, addQty string) Result {
	return Calculate(
		Position{Price: ParseAmount(currentPrice), Quantity: ParseAmount(currentQty)},
		Position{Price: ParseAmount(addPrice), Quantity: ParseAmount(addQty)},
	)
}

// numericPrefix prefijo numérico más largo aceptado (signo, entero, fracción, exponente).
var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseAmount convierte texto libre en un monto no negativo.
// Elimina separadores de miles (","), ignora espacios iniciales y basura al final ("12abc" -> 12,
// "1.2.3" -> 1.2). Vacío, ilegible o negativo -> 0.
//
// El rango es el de un float64: lo que desborda ("1e400") o se redondea a cero ("1e-400") vale 0.
// Así el exponente del decimal queda acotado y Mul no puede desbordar int32.
func ParseAmount(text string) decimal.Decimal {
	s := strings.TrimLeft(strings.ReplaceAll(text, ",", ""), " \t\r\n")
	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || f <= 0 {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
