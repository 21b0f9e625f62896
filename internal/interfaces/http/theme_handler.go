package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/calculadora-promedio/internal/domain/theme"
)

// ThemeResponse paleta de un modo.
type ThemeResponse struct {
	Mode    string        `json:"mode"`
	Palette theme.Palette `json:"palette"`
}

// GetTheme godoc
// @Summary      Tokens de color
// @Description  Modo desconocido cae en light.
// @Tags         theme
// @Produce      json
// @Param        mode  path  string  true  "light | dark"
// @Success      200   {object}  ThemeResponse
// @Router       /api/theme/{mode} [get]
func GetTheme(c *fiber.Ctx) error {
	mode := theme.NormalizeMode(c.Params("mode"))
	return c.JSON(ThemeResponse{Mode: mode, Palette: theme.ForMode(mode)})
}
