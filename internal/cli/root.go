package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the console with configuration taken from --config or CONFIG_PATH.
func Execute(ctx context.Context) error {
	return NewRootCmd(&App{}).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "ems",
		Short:        "Employee management console",
		Long:         "ems lists, searches, edits and imports employees stored by the employee service.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app.init(cmd.Context(), cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "path to the YAML config (defaults to $CONFIG_PATH)")

	root.AddCommand(
		newListCmd(app),
		newSearchCmd(app),
		newGetCmd(app),
		newCreateCmd(app),
		newUpdateCmd(app),
		newDeleteCmd(app),
		newDeleteAllCmd(app),
		newImportCmd(app),
		newBrowseCmd(app),
	)

	return root
}
