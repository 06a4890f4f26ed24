package cli

import (
	"fmt"
	"io"

	"github.com/UnknownOlympus/ems-console/internal/directory"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/validation"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func employeeTable(employees []models.Employee) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("ID", "FIRST NAME", "LAST NAME", "EMAIL", "PHONE", "DEPARTMENT")

	for _, e := range employees {
		tbl.Row(e.ID.String(), e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.Department)
	}

	return tbl.String()
}

func renderState(out io.Writer, state directory.State) {
	if len(state.Employees) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("No employees found."))
	} else {
		fmt.Fprintln(out, employeeTable(state.Employees))
	}

	footer := fmt.Sprintf("Page %d of %d", state.CurrentPage+1, state.TotalPages)
	if state.Searching() {
		footer += fmt.Sprintf(" · search %q", state.Query)
	}
	fmt.Fprintln(out, mutedStyle.Render(footer))

	if state.DeleteAllError != "" {
		fmt.Fprintln(out, errorStyle.Render(state.DeleteAllError))
	}
}

func renderEmployee(out io.Writer, e models.Employee) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Row("ID", e.ID.String()).
		Row("First name", e.FirstName).
		Row("Last name", e.LastName).
		Row("Email", e.Email).
		Row("Phone", e.PhoneNumber).
		Row("Department", e.Department)

	fmt.Fprintln(out, tbl.String())
}

func renderFieldErrors(out io.Writer, errs validation.Errors) {
	for _, field := range validation.Fields {
		if msg := errs[field]; msg != "" {
			fmt.Fprintf(out, "%s %s\n", errorStyle.Render(field+":"), msg)
		}
	}
}

func renderImport(out io.Writer, result models.ImportResult) {
	fmt.Fprintf(out, "Processed %d rows: %d created, %d failed\n",
		result.TotalRows, result.SuccessCount, result.FailureCount)
	if len(result.Errors) == 0 {
		return
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("ROW", "ERROR")
	for _, rowErr := range result.Errors {
		tbl.Row(fmt.Sprint(rowErr.Row), rowErr.Message)
	}
	fmt.Fprintln(out, tbl.String())
}
