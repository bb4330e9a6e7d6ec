package dashboard

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/codes"
)

func render(t *testing.T, config HTMLConfig, data chart.Dataset) (*Page, string) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	page := New(config, codes.Default(), "")
	_, err := chart.NewRenderer(chart.DefaultOptions(), logger).Render(page, data)
	require.NoError(t, err)
	html, err := page.Render()
	require.NoError(t, err)
	return page, html
}

func TestRenderWithData(t *testing.T) {
	page, html := render(t, DefaultConfig(), chart.Dataset{
		{Category: "PCR", Count: 10},
		{Category: "Antígeno", Count: 30},
	})

	require.NotNil(t, page.Chart())
	assert.Empty(t, page.Placeholder())

	expected := []string{
		"<!DOCTYPE html>",
		"<title>Panel de Administración</title>",
		`<select id="name"`,
		`<option value="Antígeno">Antígeno</option>`,
		`<input type="text" id="code"`,
		`<canvas id="graficaEstadoAdmin"></canvas>`,
		"chart.js",
		"function updateCode()",
		`"Anticuerpos":"ANT003"`,
		"createLinearGradient",
		`"Porcentaje: 75.0%"`,
		"Categoría: Antígeno",
		"<td>75.0%</td>",
		"easeInOutQuart",
	}
	for _, want := range expected {
		assert.Contains(t, html, want)
	}
	assert.NotContains(t, html, "No hay datos disponibles")
}

func TestRenderEmptyDatasetShowsPlaceholder(t *testing.T) {
	page, html := render(t, DefaultConfig(), chart.Dataset{})

	assert.Nil(t, page.Chart())
	assert.Equal(t, "No hay datos disponibles para mostrar", page.Placeholder())
	assert.Contains(t, html, `<div class="text-center text-gray-500 py-8"><p>No hay datos disponibles para mostrar</p></div>`)
	assert.NotContains(t, html, "<canvas")
	assert.NotContains(t, html, "new Chart(")
	assert.Contains(t, html, "Sin datos")
}

func TestLookupRequiresChartWidget(t *testing.T) {
	config := DefaultConfig()
	config.Widgets = []WidgetType{WidgetCodeForm}
	page := New(config, nil, "")

	_, ok := page.Lookup(chart.DefaultTargetID)
	assert.False(t, ok)

	logger, _ := test.NewNullLogger()
	_, err := chart.NewRenderer(chart.DefaultOptions(), logger).Render(page, chart.Dataset{{Category: "PCR", Count: 1}})
	require.ErrorIs(t, err, chart.ErrTargetNotFound)

	html, err := page.Render()
	require.NoError(t, err)
	assert.Contains(t, html, `id="code"`)
	assert.NotContains(t, html, "new Chart(")
}

func TestCanvasSurface(t *testing.T) {
	page := New(DefaultConfig(), nil, "")
	target, ok := page.Lookup(chart.DefaultTargetID)
	require.True(t, ok)

	_, err := target.LinearGradient(0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrDegenerateGradient)

	g, err := target.LinearGradient(0, 0, 0, 400)
	require.NoError(t, err)
	assert.Equal(t, float64(400), g.Y1)

	require.NoError(t, target.Attach(&chart.Chart{}))
	assert.ErrorIs(t, target.Attach(&chart.Chart{}), ErrAlreadyAttached)
}

func TestEscapesUserStrings(t *testing.T) {
	_, html := render(t, DefaultConfig(), chart.Dataset{{Category: "<b>x</b>", Count: 1}})
	assert.NotContains(t, html, "<strong><b>x</b></strong>")
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
}

func TestThemes(t *testing.T) {
	config := DefaultConfig()
	config.Theme = "dark"
	_, dark := render(t, config, nil)
	assert.Contains(t, dark, "#1a1a2e")

	_, light := render(t, DefaultConfig(), nil)
	assert.Contains(t, light, "#f3f4f6")
}

func TestWriteTo(t *testing.T) {
	page, html := render(t, DefaultConfig(), chart.Dataset{{Category: "PCR", Count: 2}})

	var buf bytes.Buffer
	n, err := page.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(html)), n)
	assert.Equal(t, html, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "</body></html>"))
}

func TestRenderReportsEncodingErrors(t *testing.T) {
	page := New(DefaultConfig(), nil, "")
	target, ok := page.Lookup(chart.DefaultTargetID)
	require.True(t, ok)

	broken := &chart.Chart{TargetID: chart.DefaultTargetID}
	broken.Config.Options.AspectRatio = math.NaN()
	require.NoError(t, target.Attach(broken))

	_, err := page.Render()
	assert.Error(t, err)

	var buf bytes.Buffer
	_, err = page.WriteTo(&buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
