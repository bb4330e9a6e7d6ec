package diagram

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
	"golang.org/x/text/unicode/norm"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/codes"
)

// Generate renders the test catalog and saves it to the output path. The
// format follows the extension: .svg for SVG, anything else PNG.
func Generate(ctx context.Context, table *codes.Table, data chart.Dataset, outputPath string) error {
	g, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer g.Close()

	dotString := GenerateDOT(table, data)

	graph, err := graphviz.ParseBytes([]byte(dotString))
	if err != nil {
		return fmt.Errorf("failed to parse DOT: %w", err)
	}
	defer graph.Close()

	format := graphviz.PNG
	if strings.HasSuffix(outputPath, ".svg") {
		format = graphviz.SVG
	}

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, format, &buf); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	if err := writeFileBytes(outputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// GenerateDOT creates a left-to-right DOT graph linking each test name to
// its code. Counts from data are shown on the name nodes when present.
func GenerateDOT(table *codes.Table, data chart.Dataset) string {
	var sb strings.Builder

	sb.WriteString("digraph Catalog {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  label=\"Catálogo de Pruebas\";\n")
	sb.WriteString("  labelloc=t;\n")
	sb.WriteString("  fontsize=20;\n")
	sb.WriteString("  fontname=\"Helvetica-Bold\";\n")
	sb.WriteString("  pad=0.5;\n")
	sb.WriteString("  nodesep=0.5;\n")
	sb.WriteString("  ranksep=1.0;\n\n")

	sb.WriteString("  node [fontname=\"Helvetica\", fontsize=14, margin=\"0.3,0.2\", penwidth=2];\n")
	sb.WriteString("  edge [fontname=\"Helvetica\", fontsize=10, penwidth=2, color=\"#555555\"];\n\n")

	counts := make(map[string]float64, len(data))
	for _, r := range data {
		counts[norm.NFC.String(r.Category)] += r.Count
	}

	for i, e := range table.Entries() {
		scheme := chart.SchemeFor(i)
		nameNode := fmt.Sprintf("test_%d", i)
		codeNode := fmt.Sprintf("code_%d", i)

		label := escape(e.Name)
		if n, ok := counts[norm.NFC.String(e.Name)]; ok {
			label = fmt.Sprintf("%s\\n%s pruebas", label, formatCount(n))
		}

		sb.WriteString(fmt.Sprintf("  %s [shape=box, style=\"rounded,filled\", fillcolor=\"%s\", color=\"%s\", label=\"%s\", fontcolor=\"white\"];\n",
			nameNode, hexColor(scheme.Fill), hexColor(scheme.Border), label))
		sb.WriteString(fmt.Sprintf("  %s [shape=note, style=filled, fillcolor=\"#FAFAFA\", color=\"%s\", label=\"%s\"];\n",
			codeNode, hexColor(scheme.Border), escape(e.Code)))
		sb.WriteString(fmt.Sprintf("  %s -> %s;\n\n", nameNode, codeNode))
	}

	sb.WriteString("}\n")

	return sb.String()
}

// hexColor drops the alpha channel; graphviz colours are opaque here.
func hexColor(c chart.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func formatCount(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func writeFileBytes(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
