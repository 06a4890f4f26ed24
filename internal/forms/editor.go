package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/validation"
)

var (
	// ErrInvalid is returned when local validation fails; nothing was sent.
	ErrInvalid = errors.New("employee form is invalid")
	// ErrForbidden is returned when a non-admin submits the form.
	ErrForbidden = models.ErrForbidden
)

const (
	msgEmailTaken  = "Email already taken"
	msgPhoneExists = "Phone number already exists"
)

type Editor struct {
	log     *slog.Logger
	api     client.EmployeeAPI
	metrics *metrics.Metrics
	role    models.Role
}

func NewEditor(log *slog.Logger, api client.EmployeeAPI, metrics *metrics.Metrics, role models.Role) *Editor {
	return &Editor{log: log, api: api, metrics: metrics, role: role}
}

func (e *Editor) initLogger(opn string) *slog.Logger {
	return e.log.With(sl.Op(opn), sl.Division("form"))
}

// Open fetches a fresh copy of the employee and loads it into a new form.
func (e *Editor) Open(ctx context.Context, id models.EmployeeID) (*Form, error) {
	employee, err := e.api.Get(ctx, id)
	if err != nil {
		e.initLogger("Editor.Open").ErrorContext(ctx, "Failed to load employee", "id", id, sl.Err(err))
		return nil, fmt.Errorf("failed to open employee %s: %w", id, err)
	}

	form := NewForm()
	form.Load(employee)

	return form, nil
}

// Submit validates the form and creates or updates the employee. Validation failures
// return ErrInvalid with form.Errors filled in. A conflict reported by the service is
// mapped onto the email or phone field and returned wrapping client.ErrConflict; every
// other failure is logged and returned without touching the field messages.
func (e *Editor) Submit(ctx context.Context, form *Form) (models.Employee, error) {
	const opn = "Editor.Submit"
	log := e.initLogger(opn)

	if !e.role.IsAdmin() {
		return models.Employee{}, ErrForbidden
	}

	if !form.Validate() {
		for field, msg := range form.Errors {
			if msg != "" {
				e.metrics.ValidationFailures.WithLabelValues(field).Inc()
			}
		}
		log.DebugContext(ctx, "Form rejected by local validation", "first_error", form.Errors.First())
		return models.Employee{}, ErrInvalid
	}

	record := form.Record()

	var (
		saved models.Employee
		err   error
	)
	if form.IsNew() {
		saved, err = e.api.Create(ctx, record)
	} else {
		saved, err = e.api.Update(ctx, form.ID, record)
	}
	if err == nil {
		log.InfoContext(ctx, "Employee saved", "id", saved.ID)
		return saved, nil
	}

	var conflict *client.ConflictError
	if errors.As(err, &conflict) {
		if !e.applyConflict(form, conflict.Message) {
			log.WarnContext(ctx, "Conflict did not name a known field", "message", conflict.Message)
		}
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	log.ErrorContext(ctx, "Unexpected error while saving employee", sl.Err(err))
	return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
}

// applyConflict surfaces a conflict message on the fields it mentions, keeping the
// other messages as they were.
func (e *Editor) applyConflict(form *Form, message string) bool {
	lower := strings.ToLower(message)
	errs := form.Errors.Clone()
	if errs == nil {
		errs = validation.Empty()
	}

	matched := false
	if strings.Contains(lower, "email") {
		errs[validation.FieldEmail] = msgEmailTaken
		e.metrics.Conflicts.WithLabelValues(validation.FieldEmail).Inc()
		matched = true
	}
	if strings.Contains(lower, "phone") {
		errs[validation.FieldPhoneNumber] = msgPhoneExists
		e.metrics.Conflicts.WithLabelValues(validation.FieldPhoneNumber).Inc()
		matched = true
	}

	form.Errors = errs
	return matched
}
