package entity

import (
	"time"

	"github.com/jhoicas/calculadora-promedio/internal/domain/averaging"
)

// Calculation un cálculo de promedio guardado por un usuario (botón "guardar").
// Result se deriva de Current/Add al guardar y se persiste para el listado.
type Calculation struct {
	ID        string
	UserID    string
	Label     string
	Current   averaging.Position
	Add       averaging.Position
	Result    averaging.Result
	CreatedAt time.Time
}

// Recompute recalcula Result a partir de las posiciones.
func (c *Calculation) Recompute() {
	c.Result = averaging.Calculate(c.Current, c.Add)
}
