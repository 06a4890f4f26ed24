// Package bulkimport creates employees from an Excel workbook, one row per employee.
package bulkimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/phone"
	"github.com/UnknownOlympus/ems-console/internal/validation"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

const (
	msgAllRequired    = "All fields are required"
	msgDuplicateEmail = "Duplicate email in file"
	msgDuplicatePhone = "Duplicate phone number in file"
)

type Importer struct {
	log     *slog.Logger
	api     client.EmployeeAPI
	metrics *metrics.Metrics
	role    models.Role
	workers int
}

func NewImporter(
	log *slog.Logger,
	api client.EmployeeAPI,
	metrics *metrics.Metrics,
	role models.Role,
	workers int,
) *Importer {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Importer{log: log, api: api, metrics: metrics, role: role, workers: workers}
}

func (i *Importer) initLogger(opn string) *slog.Logger {
	return i.log.With(sl.Op(opn), sl.Division("import"))
}

// pending is a row that passed the local checks and waits to be created.
type pending struct {
	row      int
	employee models.Employee
}

// ImportFile opens path and imports it.
func (i *Importer) ImportFile(ctx context.Context, path string) (models.ImportResult, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return i.Import(ctx, file, filepath.Base(path))
}

// Import reads the first sheet of the workbook and creates one employee per
// non-blank row. A row that fails never stops the others; its spreadsheet row number
// and reason are reported in the result.
func (i *Importer) Import(ctx context.Context, reader io.Reader, filename string) (models.ImportResult, error) {
	const opn = "Importer.Import"
	log := i.initLogger(opn)

	if !i.role.IsAdmin() {
		return models.ImportResult{}, models.ErrForbidden
	}

	rows, err := ReadRows(reader, filename)
	if err != nil {
		return models.ImportResult{}, err
	}
	layout, err := parseHeader(rows[0])
	if err != nil {
		return models.ImportResult{}, err
	}

	result := models.ImportResult{}
	queue := i.check(rows[1:], layout, &result)

	log.InfoContext(ctx, "Spreadsheet parsed", "file", filename, "rows", result.TotalRows, "to_create", len(queue))

	failures := make([]*models.RowError, len(queue))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(i.workers)
	for idx, item := range queue {
		group.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, createErr := i.api.Create(gctx, item.employee); createErr != nil {
				failures[idx] = &models.RowError{Row: item.row, Message: rowMessage(createErr)}
				log.WarnContext(gctx, "Row rejected by the employee service", "row", item.row, sl.Err(createErr))
			}
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return models.ImportResult{}, fmt.Errorf("import interrupted: %w", err)
	}

	for _, failure := range failures {
		if failure != nil {
			result.Errors = append(result.Errors, *failure)
		}
	}
	sort.SliceStable(result.Errors, func(a, b int) bool {
		return result.Errors[a].Row < result.Errors[b].Row
	})

	result.FailureCount = len(result.Errors)
	result.SuccessCount = result.TotalRows - result.FailureCount
	i.metrics.ImportRows.WithLabelValues("success").Add(float64(result.SuccessCount))
	i.metrics.ImportRows.WithLabelValues("failure").Add(float64(result.FailureCount))

	log.InfoContext(ctx, "Import finished",
		"total", result.TotalRows, "success", result.SuccessCount, "failure", result.FailureCount)

	return result, nil
}

// check applies the per-row rules and returns the rows left to create. Rejected rows
// are recorded in result.
func (i *Importer) check(rows [][]string, layout layout, result *models.ImportResult) []pending {
	emails := make(map[string]struct{})
	phones := make(map[string]struct{})
	queue := make([]pending, 0, len(rows))

	reject := func(row int, msg string) {
		result.Errors = append(result.Errors, models.RowError{Row: row, Message: msg})
	}

	for idx, row := range rows {
		if isBlank(row) {
			continue
		}
		result.TotalRows++
		rowNumber := idx + 2 // header is row 1

		employee := models.Employee{
			FirstName:   layout.value(row, "firstName"),
			LastName:    layout.value(row, "lastName"),
			Email:       layout.value(row, "email"),
			PhoneNumber: layout.value(row, "phoneNumber"),
			Department:  layout.value(row, "department"),
		}
		if employee.FirstName == "" || employee.LastName == "" || employee.Email == "" ||
			employee.PhoneNumber == "" || employee.Department == "" {
			reject(rowNumber, msgAllRequired)
			continue
		}

		code, local := splitPhone(employee.PhoneNumber)
		employee.PhoneNumber = phone.Compose(code, local)

		email := strings.ToLower(employee.Email)
		if _, dup := emails[email]; dup {
			reject(rowNumber, msgDuplicateEmail)
			continue
		}
		emails[email] = struct{}{}

		if _, dup := phones[employee.PhoneNumber]; dup {
			reject(rowNumber, msgDuplicatePhone)
			continue
		}
		phones[employee.PhoneNumber] = struct{}{}

		candidate := employee
		candidate.PhoneNumber = local
		if errs, ok := validation.Validate(candidate, code); !ok {
			reject(rowNumber, errs.First())
			continue
		}

		queue = append(queue, pending{row: rowNumber, employee: employee})
	}

	return queue
}

// splitPhone reads a phone cell. Numbers written with a leading '+' carry their own
// country code; bare digits use the default one.
func splitPhone(cell string) (string, string) {
	if strings.HasPrefix(cell, "+") {
		code, local := phone.Decompose(cell)
		return code, phone.DigitsOnly(local)
	}
	return phone.DefaultCountryCode, phone.DigitsOnly(cell)
}

func rowMessage(err error) string {
	if msg := client.ServerMessage(err); msg != "" {
		return msg
	}
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Employee service returned status %d", statusErr.StatusCode)
	}
	return "Failed to create employee"
}
