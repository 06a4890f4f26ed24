package cli

import (
	"errors"
	"fmt"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/forms"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/phone"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		page        int
		departments []string
		sortDir     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees page by page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := models.ParseSortDir(sortDir)
			if err != nil {
				return err
			}

			view := app.directory(nil)
			defer view.Close()

			view.SetFilter(models.ListFilter{Departments: departments, SortDir: dir})
			if err = view.LoadPage(cmd.Context(), page-1); err != nil {
				return err
			}
			renderState(cmd.OutOrStdout(), view.Snapshot())
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")
	cmd.Flags().StringArrayVar(&departments, "department", nil, "only list this department; repeat for several")
	cmd.Flags().StringVar(&sortDir, "sort", "", "order by first name, asc or desc")

	return cmd
}

func newSearchCmd(app *App) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search employees by name, email or phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.directory(nil)
			defer dir.Close()

			if err := dir.Search(cmd.Context(), args[0], page-1); err != nil {
				return err
			}
			renderState(cmd.OutOrStdout(), dir.Snapshot())
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number, starting at 1")

	return cmd
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := app.API.Get(cmd.Context(), models.EmployeeID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to get employee: %w", err)
			}
			renderEmployee(cmd.OutOrStdout(), employee)
			return nil
		},
	}
}

// employeeFlags are the editable fields shared by create and update.
type employeeFlags struct {
	firstName   string
	lastName    string
	email       string
	countryCode string
	phone       string
}

func (f *employeeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.countryCode, "country-code", phone.DefaultCountryCode,
		fmt.Sprintf("phone country code, one of %v", phone.Codes()))
	cmd.Flags().StringVar(&f.phone, "phone", "", "local phone number without the country code")
}

// apply copies the flags that were set on the command line into form.
func (f *employeeFlags) apply(cmd *cobra.Command, form *forms.Form) {
	flags := cmd.Flags()
	if flags.Changed("first-name") {
		form.FirstName = f.firstName
	}
	if flags.Changed("last-name") {
		form.LastName = f.lastName
	}
	if flags.Changed("email") {
		form.Email = f.email
	}
	if flags.Changed("country-code") || form.IsNew() {
		form.CountryCode = f.countryCode
	}
	if flags.Changed("phone") {
		form.SetPhoneDigits(f.phone)
	}
}

func submit(cmd *cobra.Command, app *App, form *forms.Form) error {
	saved, err := app.editor().Submit(cmd.Context(), form)
	switch {
	case err == nil:
		renderEmployee(cmd.OutOrStdout(), saved)
		return nil
	case errors.Is(err, forms.ErrInvalid), errors.Is(err, client.ErrConflict):
		renderFieldErrors(cmd.ErrOrStderr(), form.Errors)
	}
	return err
}

func newCreateCmd(app *App) *cobra.Command {
	var flags employeeFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := forms.NewForm()
			flags.apply(cmd, form)
			return submit(cmd, app, form)
		},
	}
	flags.register(cmd)

	return cmd
}

func newUpdateCmd(app *App) *cobra.Command {
	var flags employeeFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change an employee; fields without a flag keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := app.editor().Open(cmd.Context(), models.EmployeeID(args[0]))
			if err != nil {
				return err
			}
			flags.apply(cmd, form)
			return submit(cmd, app, form)
		},
	}
	flags.register(cmd)

	return cmd
}
