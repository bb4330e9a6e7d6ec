package dashboard

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/junkd0g/labchart/internal/chart"
)

// summaryData holds the numbers shown on the summary cards.
type summaryData struct {
	TotalTests  string
	Categories  int
	TopCategory string
}

func (p *Page) buildSummary() summaryData {
	s := summaryData{TotalTests: "0", TopCategory: "-"}
	if p.chart == nil {
		return s
	}

	s.TotalTests = formatCount(p.chart.Total)
	s.Categories = len(p.chart.Bars)

	best := -1
	for i, bar := range p.chart.Bars {
		if best < 0 || bar.Count > p.chart.Bars[best].Count {
			best = i
		}
	}
	if best >= 0 {
		s.TopCategory = p.chart.Bars[best].Label
	}
	return s
}

// Render returns the complete HTML document.
func (p *Page) Render() (string, error) {
	scripts, err := p.renderScripts()
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(p.renderHead())
	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(p.renderHeader())

	for _, widget := range p.config.Widgets {
		sb.WriteString(p.renderWidget(widget))
	}

	sb.WriteString(p.renderFooter())
	sb.WriteString(`</div>`)
	sb.WriteString(scripts)
	sb.WriteString(`</body></html>`)

	return sb.String(), nil
}

func (p *Page) renderHead() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>%s</style>
</head>`, html.EscapeString(p.config.Title), p.getThemeCSS())
}

func (p *Page) getThemeCSS() string {
	if p.config.Theme == "dark" {
		return darkThemeCSS
	}
	return lightThemeCSS
}

func (p *Page) renderHeader() string {
	return fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>%s</p>
</header>`, html.EscapeString(p.config.Title), html.EscapeString(p.config.Description))
}

func (p *Page) renderFooter() string {
	return `<footer><p>Generated by labchart</p></footer>`
}

func (p *Page) renderWidget(widget WidgetType) string {
	switch widget {
	case WidgetSummaryCards:
		return p.renderSummaryCards()
	case WidgetCodeForm:
		return p.renderCodeForm()
	case WidgetTestChart:
		return p.renderTestChart()
	case WidgetCategoryTable:
		return p.renderCategoryTable()
	default:
		return ""
	}
}

func (p *Page) renderSummaryCards() string {
	s := p.buildSummary()
	return fmt.Sprintf(`
<div class="widget stats-grid">
    <div class="stat-card">
        <div class="number">%s</div>
        <div class="label">Pruebas</div>
    </div>
    <div class="stat-card">
        <div class="number">%d</div>
        <div class="label">Categorías</div>
    </div>
    <div class="stat-card">
        <div class="number small">%s</div>
        <div class="label">Más solicitada</div>
    </div>
</div>`, s.TotalTests, s.Categories, html.EscapeString(s.TopCategory))
}

func (p *Page) renderCodeForm() string {
	var options strings.Builder
	options.WriteString(`
            <option value="">Seleccione una prueba</option>`)
	for _, name := range p.table.Names() {
		escaped := html.EscapeString(name)
		options.WriteString(fmt.Sprintf(`
            <option value="%s">%s</option>`, escaped, escaped))
	}

	return fmt.Sprintf(`
<div class="widget form-box">
    <h3>Nueva prueba</h3>
    <form>
        <label for="name">Nombre</label>
        <select id="name" name="name" onchange="updateCode()">%s
        </select>
        <label for="code">Código</label>
        <input type="text" id="code" name="code" readonly>
    </form>
</div>`, options.String())
}

func (p *Page) renderTestChart() string {
	body := fmt.Sprintf(`<canvas id="%s"></canvas>`, html.EscapeString(p.targetID))
	if p.placeholder != "" {
		body = fmt.Sprintf(`<div class="text-center text-gray-500 py-8"><p>%s</p></div>`, html.EscapeString(p.placeholder))
	}
	return fmt.Sprintf(`
<div class="widget chart-box">
    <h3>Pruebas por categoría</h3>
    <div class="chart-container">%s</div>
</div>`, body)
}

func (p *Page) renderCategoryTable() string {
	if p.chart == nil {
		return `
<div class="widget table-box">
    <h3>Detalle por categoría</h3>
    <p class="empty">Sin datos</p>
</div>`
	}

	var rows strings.Builder
	for _, bar := range p.chart.Bars {
		rows.WriteString(fmt.Sprintf(`
        <tr>
            <td><span class="swatch" style="background:%s;border-color:%s"></span><strong>%s</strong></td>
            <td>%s</td>
            <td>%s%%</td>
        </tr>`,
			bar.Scheme.Fill, bar.Scheme.Border, html.EscapeString(bar.Label),
			formatCount(bar.Count),
			chart.FormatPercent(chart.Percentage(bar.Count, p.chart.Total))))
	}

	return fmt.Sprintf(`
<div class="widget table-box">
    <h3>Detalle por categoría</h3>
    <table>
        <thead>
            <tr><th>Categoría</th><th>Pruebas</th><th>Porcentaje</th></tr>
        </thead>
        <tbody>%s</tbody>
    </table>
</div>`, rows.String())
}

func (p *Page) renderScripts() (string, error) {
	var scripts strings.Builder

	if p.hasWidget(WidgetCodeForm) {
		codesJSON, err := json.Marshal(p.table.Map())
		if err != nil {
			return "", fmt.Errorf("failed to encode codes: %w", err)
		}
		scripts.WriteString(fmt.Sprintf(codeFormScript, codesJSON))
	}

	if p.chart != nil {
		configJSON, err := json.Marshal(p.chart.Config)
		if err != nil {
			return "", fmt.Errorf("failed to encode chart config: %w", err)
		}
		tooltipsJSON, err := json.Marshal(p.chart.Tooltips)
		if err != nil {
			return "", fmt.Errorf("failed to encode tooltips: %w", err)
		}
		targetJSON, err := json.Marshal(p.chart.TargetID)
		if err != nil {
			return "", fmt.Errorf("failed to encode target id: %w", err)
		}
		scripts.WriteString(fmt.Sprintf(chartScript, targetJSON, targetJSON, configJSON, tooltipsJSON))
	}

	if scripts.Len() == 0 {
		return "", nil
	}
	return "<script>" + scripts.String() + "</script>", nil
}

func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

const codeFormScript = `
const testCodes = %s;
function updateCode() {
    const nameSelect = document.getElementById('name');
    const codeInput = document.getElementById('code');
    codeInput.value = testCodes[nameSelect.value] || '';
}
`

const chartScript = `
document.addEventListener('DOMContentLoaded', function () {
    const ctx = document.getElementById(%s);
    if (!ctx) {
        console.error('no element with id ' + %s);
        return;
    }
    const config = %s;
    const tooltips = %s;
    const g2d = ctx.getContext('2d');
    const dataset = config.data.datasets[0];
    dataset.backgroundColor = dataset.backgroundColor.map(function (fill) {
        if (typeof fill === 'string') {
            return fill;
        }
        const gradient = g2d.createLinearGradient(fill.x0, fill.y0, fill.x1, fill.y1);
        fill.stops.forEach(function (stop) {
            gradient.addColorStop(stop.offset, stop.color);
        });
        return gradient;
    });
    config.options.plugins.tooltip.callbacks = {
        label: function (context) {
            return tooltips[context.dataIndex].body;
        },
        title: function (context) {
            return tooltips[context[0].dataIndex].title;
        }
    };
    new Chart(ctx, config);
});
`
