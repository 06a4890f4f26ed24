package cli

import (
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create employees from an .xlsx or .xls workbook",
		Long: "Reads the first sheet. The header row must name the first name, last name, email, " +
			"phone and department columns; each following row becomes one employee.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.importer().ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderImport(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
