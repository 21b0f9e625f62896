// Package theme tokens de color por modo claro/oscuro. Puramente cosmético.
package theme

import (
	"strconv"
	"strings"
)

// Modos soportados.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// Primary color de acento de la tarjeta de resultados y botones principales.
const Primary = "#0a7ea4"

// Palette tokens de color de un modo.
type Palette struct {
	Text            string `json:"text"`
	Background      string `json:"background"`
	Tint            string `json:"tint"`
	Icon            string `json:"icon"`
	TabIconDefault  string `json:"tab_icon_default"`
	TabIconSelected string `json:"tab_icon_selected"`
	Primary         string `json:"primary"`
}

var palettes = map[string]Palette{
	ModeLight: {
		Text:            "#11181C",
		Background:      "#fff",
		Tint:            Primary,
		Icon:            "#687076",
		TabIconDefault:  "#687076",
		TabIconSelected: Primary,
		Primary:         Primary,
	},
	ModeDark: {
		Text:            "#ECEDEE",
		Background:      "#151718",
		Tint:            "#fff",
		Icon:            "#9BA1A6",
		TabIconDefault:  "#9BA1A6",
		TabIconSelected: "#fff",
		Primary:         Primary,
	},
}

// NormalizeMode devuelve light o dark; cualquier otro valor cae en light.
func NormalizeMode(mode string) string {
	if strings.EqualFold(strings.TrimSpace(mode), ModeDark) {
		return ModeDark
	}
	return ModeLight
}

// ForMode paleta del modo indicado.
func ForMode(mode string) Palette {
	return palettes[NormalizeMode(mode)]
}

// RGB descompone un color "#rrggbb" o "#rgb". Devuelve ok=false si el formato no es válido.
func RGB(hex string) (r, g, b int, ok bool) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
