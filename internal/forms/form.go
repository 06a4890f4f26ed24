// Package forms holds the state of the employee edit view and submits it to the
// employee service.
package forms

import (
	"strings"

	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/phone"
	"github.com/UnknownOlympus/ems-console/internal/validation"
)

// Form is the local, unsaved state of one employee. PhoneDigits holds only the
// local part; CountryCode is selected separately.
type Form struct {
	ID          models.EmployeeID
	FirstName   string
	LastName    string
	Email       string
	CountryCode string
	PhoneDigits string
	Department  string
	Errors      validation.Errors
}

// NewForm returns an empty form for a new employee.
func NewForm() *Form {
	return &Form{
		CountryCode: phone.DefaultCountryCode,
		Errors:      validation.Empty(),
	}
}

// Load replaces the form content with a fetched record, splitting its phone number.
func (f *Form) Load(employee models.Employee) {
	code, local := phone.Decompose(employee.PhoneNumber)

	f.ID = employee.ID
	f.FirstName = employee.FirstName
	f.LastName = employee.LastName
	f.Email = employee.Email
	f.CountryCode = code
	f.PhoneDigits = local
	f.Department = employee.Department
	f.Errors = validation.Empty()
}

// IsNew reports whether submitting the form creates a record.
func (f *Form) IsNew() bool {
	return f.ID == ""
}

// SetPhoneDigits stores the local number, keeping digits only.
func (f *Form) SetPhoneDigits(value string) {
	f.PhoneDigits = phone.DigitsOnly(value)
}

// Validate recomputes every field message and reports whether the form is valid.
func (f *Form) Validate() bool {
	errs, ok := validation.Validate(f.input(), f.CountryCode)
	f.Errors = errs
	return ok
}

// Touch recomputes the message of a single field after it changed.
func (f *Form) Touch(field string) error {
	msg, err := validation.ValidateField(f.input(), f.CountryCode, field)
	if err != nil {
		return err
	}
	if f.Errors == nil {
		f.Errors = validation.Empty()
	}
	f.Errors[field] = msg
	return nil
}

// Record builds the payload sent to the employee service.
func (f *Form) Record() models.Employee {
	return models.Employee{
		ID:          f.ID,
		FirstName:   strings.TrimSpace(f.FirstName),
		LastName:    strings.TrimSpace(f.LastName),
		Email:       strings.TrimSpace(f.Email),
		PhoneNumber: phone.Compose(f.CountryCode, f.PhoneDigits),
		Department:  f.Department,
	}
}

func (f *Form) input() models.Employee {
	return models.Employee{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Email:       f.Email,
		PhoneNumber: f.PhoneDigits,
	}
}
