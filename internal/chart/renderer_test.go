package chart

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	placeholder string
	attached    []*Chart
	gradientErr error
	gradients   int
}

func (f *fakeTarget) LinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) (*Gradient, error) {
	f.gradients++
	if f.gradientErr != nil {
		return nil, f.gradientErr
	}
	return &Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}, nil
}

func (f *fakeTarget) Placeholder(message string) { f.placeholder = message }

func (f *fakeTarget) Attach(c *Chart) error {
	f.attached = append(f.attached, c)
	return nil
}

type fakeDocument map[string]*fakeTarget

func (d fakeDocument) Lookup(id string) (Target, bool) {
	t, ok := d[id]
	if !ok {
		return nil, false
	}
	return t, true
}

func newTestRenderer() (*Renderer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewRenderer(DefaultOptions(), logger), hook
}

func TestRenderMissingTarget(t *testing.T) {
	r, hook := newTestRenderer()

	c, err := r.Render(fakeDocument{}, Dataset{{Category: "PCR", Count: 1}})
	require.ErrorIs(t, err, ErrTargetNotFound)
	assert.Nil(t, c)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "graficaEstadoAdmin")
}

func TestRenderEmptyDatasetShowsPlaceholder(t *testing.T) {
	r, _ := newTestRenderer()
	target := &fakeTarget{}
	doc := fakeDocument{DefaultTargetID: target}

	for _, data := range []Dataset{nil, {}} {
		c, err := r.Render(doc, data)
		require.NoError(t, err)
		assert.Nil(t, c)
	}

	assert.Equal(t, "No hay datos disponibles para mostrar", target.placeholder)
	assert.Empty(t, target.attached)
	assert.Zero(t, target.gradients)
}

func TestRenderBuildsChart(t *testing.T) {
	r, _ := newTestRenderer()
	target := &fakeTarget{}
	data := Dataset{
		{Category: "PCR", Count: 10},
		{Category: "Antígeno", Count: 30},
	}

	c, err := r.Render(fakeDocument{DefaultTargetID: target}, data)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Len(t, target.attached, 1)
	assert.Same(t, c, target.attached[0])

	assert.Equal(t, []string{"PCR", "Antígeno"}, c.Config.Data.Labels)
	assert.Equal(t, []Quantity{10, 30}, c.Config.Data.Datasets[0].Data)
	assert.Equal(t, float64(40), c.Total)

	assert.Equal(t, "Categoría: Antígeno", c.TooltipTitle(1))
	assert.Equal(t, []string{"Pruebas: 30", "Porcentaje: 75.0%"}, c.TooltipBody(1))
	assert.Equal(t, []string{"Pruebas: 10", "Porcentaje: 25.0%"}, c.TooltipBody(0))

	g := c.Bars[0].Fill.Gradient
	require.NotNil(t, g)
	assert.Equal(t, float64(400), g.Y1)
	assert.Equal(t, Palette[0].Gradient[0], g.Stops[0].Color)
	assert.Equal(t, Palette[1].Border, c.Config.Data.Datasets[0].BorderColor[1])

	assert.Equal(t, 1500, c.Config.Options.Animation.Duration)
	assert.False(t, c.Config.Options.Plugins.Legend.Display)
	assert.True(t, c.Config.Options.Scales.Y.BeginAtZero)
	assert.Equal(t, "Cantidad de Pruebas", c.Config.Options.Scales.Y.Title.Text)
	assert.Equal(t, "Categorías de Pruebas", c.Config.Options.Scales.X.Title.Text)
}

func TestRenderFallsBackToSolidFill(t *testing.T) {
	r, hook := newTestRenderer()
	target := &fakeTarget{gradientErr: errors.New("no gradients here")}
	data := Dataset{{Category: "A", Count: 1}, {Category: "B", Count: 2}}

	c, err := r.Render(fakeDocument{DefaultTargetID: target}, data)
	require.NoError(t, err)

	for i, bar := range c.Bars {
		assert.False(t, bar.Fill.IsGradient())
		assert.Equal(t, Palette[i].Fill, bar.Fill.Solid)
	}

	raw, err := json.Marshal(c.Config.Data.Datasets[0].BackgroundColor)
	require.NoError(t, err)
	assert.JSONEq(t, `["rgba(59, 130, 246, 0.8)", "rgba(16, 185, 129, 0.8)"]`, string(raw))
	assert.Equal(t, 2, target.gradients)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestPaletteCyclesEverySixBars(t *testing.T) {
	r, _ := newTestRenderer()
	target := &fakeTarget{}

	data := make(Dataset, 13)
	for i := range data {
		data[i] = Record{Category: string(rune('A' + i)), Count: float64(i + 1)}
	}

	c, err := r.Render(fakeDocument{DefaultTargetID: target}, data)
	require.NoError(t, err)

	assert.Equal(t, c.Bars[0].Scheme, c.Bars[6].Scheme)
	assert.Equal(t, c.Bars[0].Scheme, c.Bars[12].Scheme)
	assert.NotEqual(t, c.Bars[0].Scheme, c.Bars[1].Scheme)
	assert.Equal(t, SchemeFor(6), SchemeFor(0))
	assert.Equal(t, SchemeFor(-1), SchemeFor(5))
}

func TestPercentTiesRoundAwayFromZero(t *testing.T) {
	assert.Equal(t, "56.3", FormatPercent(Percentage(9, 16)))
	assert.Equal(t, "43.8", FormatPercent(Percentage(7, 16)))
	assert.Equal(t, "6.3", FormatPercent(Percentage(1, 16)))
	assert.Equal(t, "0.3", FormatPercent(0.25))
	assert.Equal(t, "-0.3", FormatPercent(-0.25))
	assert.Equal(t, "12.5", FormatPercent(12.5))
	// 0.15 and 1.45 are stored just below the midpoint.
	assert.Equal(t, "0.1", FormatPercent(0.15))
	assert.Equal(t, "1.4", FormatPercent(1.45))

	r, _ := newTestRenderer()
	c, err := r.Render(fakeDocument{DefaultTargetID: &fakeTarget{}}, Dataset{{Category: "PCR", Count: 9}, {Category: "Antígeno", Count: 7}})
	require.NoError(t, err)
	assert.Equal(t, "Porcentaje: 56.3%", c.TooltipBody(0)[1])
	assert.Equal(t, "Porcentaje: 43.8%", c.TooltipBody(1)[1])
}

func TestRenderBlankCountKeepsOtherPercentages(t *testing.T) {
	r, _ := newTestRenderer()
	data := Dataset{
		{Category: "A", Count: math.NaN(), Blank: true},
		{Category: "B", Count: 4},
	}

	c, err := r.Render(fakeDocument{DefaultTargetID: &fakeTarget{}}, data)
	require.NoError(t, err)
	assert.Equal(t, float64(4), c.Total)
	assert.Equal(t, "Porcentaje: 100.0%", c.TooltipBody(1)[1])

	raw, err := json.Marshal(c.Config.Data.Datasets[0].Data)
	require.NoError(t, err)
	assert.JSONEq(t, `[null, 4]`, string(raw))
}

func TestZeroTotalPercentageIsUnguarded(t *testing.T) {
	assert.True(t, math.IsNaN(Percentage(0, 0)))
	assert.True(t, math.IsInf(Percentage(3, 0), 1))
	assert.Equal(t, "NaN", FormatPercent(Percentage(0, 0)))
	assert.Equal(t, "Infinity", FormatPercent(Percentage(3, 0)))
	assert.Equal(t, "75.0", FormatPercent(Percentage(30, 40)))
	assert.Equal(t, "33.3", FormatPercent(Percentage(1, 3)))

	r, _ := newTestRenderer()
	target := &fakeTarget{}
	c, err := r.Render(fakeDocument{DefaultTargetID: target}, Dataset{{Category: "A"}, {Category: "B"}})
	require.NoError(t, err)
	assert.Equal(t, "Porcentaje: NaN%", c.TooltipBody(0)[1])
}

func TestConfigJSON(t *testing.T) {
	r, _ := newTestRenderer()
	target := &fakeTarget{}
	c, err := r.Render(fakeDocument{DefaultTargetID: target}, Dataset{
		{Category: "PCR", Count: 2},
		{Category: "Malformed", Count: math.NaN()},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(c.Config)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	data := decoded["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{float64(2), nil}, data["data"])

	fill := data["backgroundColor"].([]any)[0].(map[string]any)
	assert.Equal(t, "linearGradient", fill["type"])
	assert.Equal(t, float64(400), fill["y1"])

	tooltip := decoded["options"].(map[string]any)["plugins"].(map[string]any)["tooltip"].(map[string]any)
	assert.Equal(t, "rgba(0, 0, 0, 0.8)", tooltip["backgroundColor"])
	assert.Equal(t, float64(12), tooltip["padding"])

	x := decoded["options"].(map[string]any)["scales"].(map[string]any)["x"].(map[string]any)
	assert.Equal(t, map[string]any{"display": false}, x["grid"])
}

func TestRGBAString(t *testing.T) {
	assert.Equal(t, "rgba(59, 130, 246, 0.8)", Palette[0].Fill.String())
	assert.Equal(t, "rgba(59, 130, 246, 1)", Palette[0].Border.String())
}
