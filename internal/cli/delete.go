package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/ems-console/internal/directory"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.directory(nil)
			defer dir.Close()

			if err := dir.Delete(cmd.Context(), models.EmployeeID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employee %s deleted\n", args[0])
			return nil
		},
	}
}

func newDeleteAllCmd(app *App) *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every employee",
		Long: fmt.Sprintf("Deletes every employee. The confirmation %q is read from --confirm "+
			"or prompted for on stdin.", directory.DeleteAllConfirmation),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("confirm") {
				fmt.Fprintf(cmd.OutOrStdout(), "Type %q to confirm: ", directory.DeleteAllConfirmation)
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				confirm = strings.TrimRight(line, "\r\n")
			}

			dir := app.directory(nil)
			defer dir.Close()

			err := dir.DeleteAll(cmd.Context(), confirm)
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "All employees deleted")
				return nil
			}
			if msg := dir.Snapshot().DeleteAllError; msg != "" && !errors.Is(err, models.ErrForbidden) {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(msg))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&confirm, "confirm", "", "confirmation text")

	return cmd
}
