package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, logLevel = "", ""
	dataFile, outFile, formatName, resultsFile = "", "", "", ""
	jsonPath = "datos_grafica"

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append([]string{"--no-color", "--log-level", "error"}, args...))
	err := RootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCodeCommand(t *testing.T) {
	out, err := run(t, "code", "PCR")
	require.NoError(t, err)
	assert.Equal(t, "PCR001\n", out)

	out, err = run(t, "code", "Hemograma")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestCodesCommand(t *testing.T) {
	out, err := run(t, "codes")
	require.NoError(t, err)
	assert.Contains(t, out, "PCR")
	assert.Contains(t, out, "ANT002")
	assert.Contains(t, out, "ANT003")
}

func TestCodeCommandWithConfig(t *testing.T) {
	cfg := writeFile(t, "labchart.yaml", "codes:\n  - name: Cultivo\n    code: CUL004\n")
	out, err := run(t, "--config", cfg, "code", "Cultivo")
	require.NoError(t, err)
	assert.Equal(t, "CUL004\n", out)
}

func TestChartCommandHTML(t *testing.T) {
	data := writeFile(t, "admin.json", `{"datos_grafica":[{"categoria":"PCR","cantidad":3},{"categoria":"Antígeno","cantidad":1}]}`)
	dest := filepath.Join(t.TempDir(), "admin.html")

	out, err := run(t, "chart", "--data", data, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Chart written to")
	assert.Contains(t, out, "2 categories")

	page, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(page), "graficaEstadoAdmin")
}

func TestChartCommandCreatesOutputDirectory(t *testing.T) {
	data := writeFile(t, "admin.json", `{"datos_grafica":[{"categoria":"PCR","cantidad":3}]}`)
	dest := filepath.Join(t.TempDir(), "reports", "2024", "admin.html")

	out, err := run(t, "chart", "--data", data, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Chart written to")
	assert.FileExists(t, dest)
}

func TestChartCommandPageWithoutChart(t *testing.T) {
	cfg := writeFile(t, "labchart.yaml", "dashboard:\n  widgets: [code_form]\n")
	data := writeFile(t, "admin.json", `{"datos_grafica":[{"categoria":"PCR","cantidad":3}]}`)
	dest := filepath.Join(t.TempDir(), "admin.html")

	out, err := run(t, "--config", cfg, "chart", "--data", data, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "No chart canvas with id 'graficaEstadoAdmin'")

	page, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="code"`)
}

func TestChartCommandEmptyImage(t *testing.T) {
	data := writeFile(t, "empty.json", `{"datos_grafica":[]}`)
	dest := filepath.Join(t.TempDir(), "chart.png")

	out, err := run(t, "chart", "--data", data, "--out", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "No hay datos disponibles")
	assert.NoFileExists(t, dest)
}

func TestChartCommandFormatOverride(t *testing.T) {
	data := writeFile(t, "tests.yaml", "- categoria: PCR\n  cantidad: 2\n")
	dest := filepath.Join(t.TempDir(), "chart.out")

	_, err := run(t, "chart", "--data", data, "--out", dest, "--format", "svg")
	require.NoError(t, err)

	body, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<svg")

	_, err = run(t, "chart", "--data", data, "--out", dest, "--format", "gif")
	assert.Error(t, err)
}

func TestAggregateCommand(t *testing.T) {
	results := writeFile(t, "results.json", `[
		{"id": 1, "test": "PCR"},
		{"id": 2, "test": "PCR"},
		{"id": 3, "test": "Antígeno"}
	]`)

	out, err := run(t, "aggregate", "--results", results)
	require.NoError(t, err)
	assert.Contains(t, out, "PCR")
	assert.Contains(t, out, " 2\n")

	dest := filepath.Join(t.TempDir(), "admin.json")
	_, err = run(t, "aggregate", "--results", results, "--out", dest)
	require.NoError(t, err)
	assert.FileExists(t, dest)
}
