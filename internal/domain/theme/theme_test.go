package theme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/calculadora-promedio/internal/domain/theme"
)

func TestForMode(t *testing.T) {
	assert.Equal(t, "#151718", theme.ForMode("dark").Background)
	assert.Equal(t, "#151718", theme.ForMode(" DARK ").Background)
	assert.Equal(t, "#fff", theme.ForMode("light").Background)
	assert.Equal(t, "#fff", theme.ForMode("sepia").Background, "modo desconocido cae en light")
	assert.Equal(t, theme.Primary, theme.ForMode("dark").Primary)
}

func TestRGB(t *testing.T) {
	r, g, b, ok := theme.RGB(theme.Primary)
	assert.True(t, ok)
	assert.Equal(t, [3]int{10, 126, 164}, [3]int{r, g, b})

	r, g, b, ok = theme.RGB("#fff")
	assert.True(t, ok)
	assert.Equal(t, [3]int{255, 255, 255}, [3]int{r, g, b})

	_, _, _, ok = theme.RGB("#12345")
	assert.False(t, ok)
	_, _, _, ok = theme.RGB("#zzzzzz")
	assert.False(t, ok)
}
