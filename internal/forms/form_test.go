package forms_test

import (
	"testing"

	"github.com/UnknownOlympus/ems-console/internal/forms"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_Defaults(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()

	assert.True(t, form.IsNew())
	assert.Equal(t, "+91", form.CountryCode)
	assert.Equal(t, validation.Empty(), form.Errors)
}

func TestForm_LoadDecomposesPhone(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()
	form.Load(models.Employee{
		ID: "3", FirstName: "Ben", LastName: "Cole", Email: "ben@example.com",
		PhoneNumber: "+14155551234", Department: "IT",
	})

	assert.False(t, form.IsNew())
	assert.Equal(t, "+1", form.CountryCode)
	assert.Equal(t, "4155551234", form.PhoneDigits)
	assert.Equal(t, "IT", form.Department)
}

func TestForm_LoadUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()
	form.Load(models.Employee{PhoneNumber: "+9999999999999"})

	assert.Equal(t, "+91", form.CountryCode)
	assert.Equal(t, "9999999999999", form.PhoneDigits)
}

func TestForm_RecordComposesPhone(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()
	form.FirstName = " Asha "
	form.LastName = "Rao"
	form.Email = " asha@example.com"
	form.CountryCode = "+44"
	form.SetPhoneDigits("20-7123 4567")

	record := form.Record()

	assert.Equal(t, "2071234567", form.PhoneDigits)
	assert.Equal(t, models.Employee{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", PhoneNumber: "+442071234567",
	}, record)
}

func TestForm_ValidateReplacesErrorsWholesale(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()
	require.False(t, form.Validate())
	assert.Equal(t, "First name is required", form.Errors["firstName"])

	form.FirstName = "Asha"
	form.LastName = "Rao"
	form.Email = "asha@example.com"
	form.PhoneDigits = "9876543210"

	require.True(t, form.Validate())
	assert.True(t, form.Errors.Valid())
}

func TestForm_TouchUpdatesSingleField(t *testing.T) {
	t.Parallel()

	form := forms.NewForm()
	form.Email = "broken"

	require.NoError(t, form.Touch(validation.FieldEmail))

	assert.Equal(t, "Enter a valid email address", form.Errors["email"])
	assert.Empty(t, form.Errors["firstName"], "untouched fields keep their message")
	require.ErrorIs(t, form.Touch("department"), validation.ErrUnknownField)
}
