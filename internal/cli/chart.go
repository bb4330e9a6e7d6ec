package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junkd0g/labchart/internal/chart"
	"github.com/junkd0g/labchart/internal/dataset"
	"github.com/junkd0g/labchart/internal/diagram"
	"github.com/junkd0g/labchart/internal/report"
)

var (
	dataFile    string
	jsonPath    string
	outFile     string
	formatName  string
	resultsFile string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the tests-per-category chart",
	Long: `Render the tests-per-category bar chart from a dataset file.
JSON files are read at --path (default datos_grafica); YAML files hold a
plain list of {categoria, cantidad} records. The format follows the
output extension unless --format is given.`,
	Example: `  labchart chart --data admin.json --out admin.html
  labchart chart --data tests.yaml --out chart.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, _, err := loadEnv()
		if err != nil {
			return err
		}

		var format report.Format
		if formatName != "" {
			if format, err = report.ParseFormat(formatName); err != nil {
				return err
			}
		}

		data, err := dataset.Load(dataFile, jsonPath)
		if err != nil {
			return err
		}

		summary, err := builder.WriteFile(data, outFile, format)
		if err != nil {
			return err
		}

		colors := DefaultColorScheme()
		out := cmd.OutOrStdout()
		if summary.NoTarget {
			colors.Warning.Fprintf(out, "No chart canvas with id '%s' on the page\n", builder.Config.Chart.TargetID)
		}
		if summary.Placeholder {
			colors.Warning.Fprintln(out, builder.Config.Chart.Placeholder)
		}
		if !summary.Written {
			return nil
		}

		colors.Success.Fprintf(out, "Chart written to %s ", outFile)
		fmt.Fprintf(out, "(%s, %d categories)\n", summary.Format, summary.Bars)
		return nil
	},
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Count performed tests per test name",
	Long: `Read a list of performed tests ({id, test}) and write the chart dataset,
counting distinct ids per test name, largest first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadEnv()
		if err != nil {
			return err
		}

		results, err := dataset.LoadResults(resultsFile)
		if err != nil {
			return err
		}

		data := dataset.Aggregate(results)
		dataset.Reconcile(logger, results, data)

		if outFile == "" {
			colors := DefaultColorScheme()
			for _, r := range data {
				colors.Name.Fprintf(cmd.OutOrStdout(), "%-16s", r.Category)
				fmt.Fprintf(cmd.OutOrStdout(), " %g\n", r.Count)
			}
			return nil
		}

		if err := dataset.WriteJSON(outFile, data); err != nil {
			return err
		}
		DefaultColorScheme().Success.Fprintf(cmd.OutOrStdout(), "Dataset written to %s\n", outFile)
		return nil
	},
}

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Render the test catalog diagram",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, _, err := loadEnv()
		if err != nil {
			return err
		}

		var data chart.Dataset
		if dataFile != "" {
			if data, err = dataset.Load(dataFile, jsonPath); err != nil {
				return err
			}
		}

		if err := diagram.Generate(cmd.Context(), builder.Table, data, outFile); err != nil {
			return err
		}
		DefaultColorScheme().Success.Fprintf(cmd.OutOrStdout(), "Diagram written to %s\n", outFile)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Dataset file (JSON or YAML)")
	chartCmd.Flags().StringVarP(&jsonPath, "path", "p", dataset.DefaultPath, "gjson path of the records in a JSON dataset")
	chartCmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (.html, .png, .svg)")
	chartCmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format (html, png, svg)")
	chartCmd.MarkFlagRequired("data")
	chartCmd.MarkFlagRequired("out")

	aggregateCmd.Flags().StringVarP(&resultsFile, "results", "r", "", "Performed tests file (JSON or YAML)")
	aggregateCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the dataset as JSON instead of printing it")
	aggregateCmd.MarkFlagRequired("results")

	diagramCmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (.png, .svg)")
	diagramCmd.Flags().StringVarP(&dataFile, "data", "d", "", "Optional dataset whose counts are shown")
	diagramCmd.Flags().StringVarP(&jsonPath, "path", "p", dataset.DefaultPath, "gjson path of the records in a JSON dataset")
	diagramCmd.MarkFlagRequired("out")
}
