package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/dataset"
	"github.com/junkd0g/labchart/internal/diagram"
	"github.com/junkd0g/labchart/internal/report"
)

// Toolkit holds what the tool handlers share.
type Toolkit struct {
	builder *report.Builder
}

// New returns a toolkit rendering with builder.
func New(builder *report.Builder) *Toolkit {
	return &Toolkit{builder: builder}
}

// Register registers all tools with the MCP server.
func (tk *Toolkit) Register(s *server.MCPServer) {
	tk.registerResolveCodeTool(s)
	tk.registerRenderChartTool(s)
	tk.registerCatalogDiagramTool(s)
}

func (tk *Toolkit) registerResolveCodeTool(s *server.MCPServer) {
	tool := mcp.NewTool("resolve_test_code",
		mcp.WithDescription("Returns the lookup code of a laboratory test display name. Unknown names resolve to an empty code."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The test display name, e.g. PCR, Antígeno or Anticuerpos"),
		),
	)

	s.AddTool(tool, tk.resolveCodeHandler)
}

func (tk *Toolkit) resolveCodeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, ok := request.Params.Arguments["name"].(string)
	if !ok {
		return newToolResultError("name is required"), nil
	}

	return mcp.NewToolResultText(tk.builder.Table.Resolve(name)), nil
}

func (tk *Toolkit) registerRenderChartTool(s *server.MCPServer) {
	tool := mcp.NewTool("render_test_chart",
		mcp.WithDescription("Renders the bar chart of tests per category. Supports an HTML dashboard page, PNG and SVG output."),
		mcp.WithString("data_path",
			mcp.Required(),
			mcp.Description("Absolute path to a JSON or YAML file with {categoria, cantidad} records"),
		),
		mcp.WithString("json_path",
			mcp.Description("gjson path of the records inside a JSON file. Defaults to datos_grafica"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Output file. The format follows the extension (.html, .png, .svg) unless format is given"),
		),
		mcp.WithString("format",
			mcp.Description("html, png or svg"),
		),
	)

	s.AddTool(tool, tk.renderChartHandler)
}

func (tk *Toolkit) renderChartHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataPath, ok := request.Params.Arguments["data_path"].(string)
	if !ok || dataPath == "" {
		return newToolResultError("data_path is required"), nil
	}
	outputPath, ok := request.Params.Arguments["output_path"].(string)
	if !ok || outputPath == "" {
		return newToolResultError("output_path is required"), nil
	}
	jsonPath, _ := request.Params.Arguments["json_path"].(string)

	var format report.Format
	if f, ok := request.Params.Arguments["format"].(string); ok && f != "" {
		parsed, err := report.ParseFormat(f)
		if err != nil {
			return newToolResultError(err.Error()), nil
		}
		format = parsed
	}

	data, err := dataset.Load(dataPath, jsonPath)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	summary, err := tk.builder.WriteFile(data, outputPath, format)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to render chart: %v", err)), nil
	}

	return mcp.NewToolResultText(buildSummary(summary, outputPath, tk.builder.Config.Chart)), nil
}

func (tk *Toolkit) registerCatalogDiagramTool(s *server.MCPServer) {
	tool := mcp.NewTool("generate_catalog_diagram",
		mcp.WithDescription("Generates a diagram of the test catalog linking each test name to its code. Supports PNG and SVG output formats."),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("The output path for the diagram file. Supports .png and .svg extensions"),
		),
		mcp.WithString("data_path",
			mcp.Description("Optional dataset whose counts are shown on the test nodes"),
		),
	)

	s.AddTool(tool, tk.catalogDiagramHandler)
}

func (tk *Toolkit) catalogDiagramHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	outputPath, ok := request.Params.Arguments["output_path"].(string)
	if !ok || outputPath == "" {
		return newToolResultError("output_path is required"), nil
	}

	var data chart.Dataset
	if dataPath, ok := request.Params.Arguments["data_path"].(string); ok && dataPath != "" {
		loaded, err := dataset.Load(dataPath, "")
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
		}
		data = loaded
	}

	if err := diagram.Generate(ctx, tk.builder.Table, data, outputPath); err != nil {
		return newToolResultError(fmt.Sprintf("failed to generate diagram: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Catalog diagram generated successfully!\n\nOutput: %s\nTests: %d\n", outputPath, tk.builder.Table.Len())), nil
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

func buildSummary(s report.Summary, outputPath string, opts chart.Options) string {
	if s.NoTarget {
		return fmt.Sprintf("Page written without a chart: no element with id '%s'.\n\nOutput: %s (%s)\n", opts.TargetID, outputPath, s.Format)
	}
	if s.Placeholder {
		return fmt.Sprintf("%s\n\nOutput: %s (%s)\n", opts.Placeholder, outputPath, s.Format)
	}
	return fmt.Sprintf("Chart rendered successfully!\n\nOutput: %s (%s)\nCategories: %d\nTotal tests: %s\n",
		outputPath, s.Format, s.Bars, formatTotal(s.Total))
}

func formatTotal(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
