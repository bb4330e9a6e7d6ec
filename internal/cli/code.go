package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var codeCmd = &cobra.Command{
	Use:   "code <name>",
	Short: "Print the lookup code of a test name",
	Long: `Print the lookup code of a test display name.
An unknown name prints an empty line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, _, err := loadEnv()
		if err != nil {
			return err
		}

		code := builder.Table.Resolve(args[0])
		DefaultColorScheme().Code.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the test code table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder, _, err := loadEnv()
		if err != nil {
			return err
		}

		colors := DefaultColorScheme()
		out := cmd.OutOrStdout()
		for _, e := range builder.Table.Entries() {
			colors.Name.Fprintf(out, "%-16s", e.Name)
			fmt.Fprint(out, " ")
			colors.Code.Fprintln(out, e.Code)
		}
		return nil
	},
}
