// Package validation checks employee form input before it is sent to the employee service.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/phone"
	"github.com/go-playground/validator/v10"
)

// Field keys of the error map.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
)

// Fields lists every validated field in display order.
var Fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber}

// ErrUnknownField is returned by ValidateField for names outside Fields.
var ErrUnknownField = errors.New("unknown field")

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z\s'-]*$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// candidate is the trimmed form input. Tag order encodes message precedence:
// the validator stops at the first failing tag of a field.
type candidate struct {
	FirstName   string `json:"firstName"   validate:"required,personname,min=2"`
	LastName    string `json:"lastName"    validate:"required,personname,min=2"`
	Email       string `json:"email"       validate:"required,simpleemail"`
	PhoneNumber string `json:"phoneNumber" validate:"required,localphone"`
	CountryCode string `json:"-"           validate:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	mustRegister("simpleemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister("localphone", func(fl validator.FieldLevel) bool {
		code := fl.Parent().FieldByName("CountryCode").String()
		return phone.Matches(code, fl.Field().String())
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic("failed to register validation " + tag + ": " + err.Error())
	}
}

// Validate checks a record whose PhoneNumber holds only the local digits, with
// countryCode selected separately. The returned map always has an entry for every
// field; passing fields map to the empty string.
func Validate(record models.Employee, countryCode string) (Errors, bool) {
	errs := Empty()
	in := newCandidate(record, countryCode)

	err := validate.Struct(in)
	if err == nil {
		return errs, true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		for _, field := range Fields {
			errs[field] = "Invalid value"
		}
		return errs, false
	}

	for _, fe := range verrs {
		errs[fe.Field()] = message(fe.Field(), fe.Tag(), countryCode)
	}

	return errs, errs.Valid()
}

// ValidateField recomputes the message of a single field.
func ValidateField(record models.Employee, countryCode, field string) (string, error) {
	errs, _ := Validate(record, countryCode)
	msg, ok := errs[field]
	if !ok {
		return "", ErrUnknownField
	}
	return msg, nil
}

func newCandidate(record models.Employee, countryCode string) candidate {
	return candidate{
		FirstName:   strings.TrimSpace(record.FirstName),
		LastName:    strings.TrimSpace(record.LastName),
		Email:       strings.TrimSpace(record.Email),
		PhoneNumber: strings.TrimSpace(record.PhoneNumber),
		CountryCode: countryCode,
	}
}
