package forms_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/forms"
	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	mocks "github.com/UnknownOlympus/ems-console/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEditor(t *testing.T, role models.Role) (*forms.Editor, *mocks.EmployeeAPI, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := mocks.NewEmployeeAPI(t)
	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return forms.NewEditor(logger, api, appMetrics, role), api, appMetrics
}

func filledForm() *forms.Form {
	form := forms.NewForm()
	form.FirstName = "Asha"
	form.LastName = "Rao"
	form.Email = "asha@example.com"
	form.PhoneDigits = "9876543210"
	return form
}

func TestEditor_Open(t *testing.T) {
	t.Parallel()

	editor, api, _ := newEditor(t, models.RoleAdmin)
	api.On("Get", mock.Anything, models.EmployeeID("8")).Return(models.Employee{
		ID: "8", FirstName: "Omar", LastName: "Haddad", Email: "omar@example.com", PhoneNumber: "+971501234567",
	}, nil).Once()

	form, err := editor.Open(context.Background(), "8")

	require.NoError(t, err)
	assert.Equal(t, "+971", form.CountryCode)
	assert.Equal(t, "501234567", form.PhoneDigits)
}

func TestEditor_OpenError(t *testing.T) {
	t.Parallel()

	editor, api, _ := newEditor(t, models.RoleAdmin)
	api.On("Get", mock.Anything, models.EmployeeID("8")).Return(models.Employee{}, assert.AnError).Once()

	form, err := editor.Open(context.Background(), "8")

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, form)
}

func TestEditor_Submit(t *testing.T) {
	t.Parallel()

	t.Run("creates a new employee with composed phone", func(t *testing.T) {
		t.Parallel()

		editor, api, _ := newEditor(t, models.RoleAdmin)
		form := filledForm()
		expected := models.Employee{
			FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", PhoneNumber: "+919876543210",
		}
		saved := expected
		saved.ID = "11"
		api.On("Create", mock.Anything, expected).Return(saved, nil).Once()

		got, err := editor.Submit(context.Background(), form)

		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("updates an existing employee", func(t *testing.T) {
		t.Parallel()

		editor, api, _ := newEditor(t, models.RoleAdmin)
		form := filledForm()
		form.ID = "4"
		form.Department = "HR"
		api.On("Update", mock.Anything, models.EmployeeID("4"), mock.MatchedBy(func(e models.Employee) bool {
			return e.PhoneNumber == "+919876543210" && e.Department == "HR"
		})).Return(models.Employee{ID: "4"}, nil).Once()

		_, err := editor.Submit(context.Background(), form)

		require.NoError(t, err)
	})

	t.Run("invalid form never reaches the service", func(t *testing.T) {
		t.Parallel()

		editor, api, appMetrics := newEditor(t, models.RoleAdmin)
		form := filledForm()
		form.PhoneDigits = "5876543210"

		_, err := editor.Submit(context.Background(), form)

		require.ErrorIs(t, err, forms.ErrInvalid)
		assert.Equal(t, "Enter a valid phone number for +91", form.Errors["phoneNumber"])
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.ValidationFailures.WithLabelValues("phoneNumber")), 0)
		api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non admin is rejected", func(t *testing.T) {
		t.Parallel()

		editor, api, _ := newEditor(t, models.RoleUser)

		_, err := editor.Submit(context.Background(), filledForm())

		require.ErrorIs(t, err, forms.ErrForbidden)
		api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("email conflict is mapped onto the email field", func(t *testing.T) {
		t.Parallel()

		editor, api, appMetrics := newEditor(t, models.RoleAdmin)
		form := filledForm()
		api.On("Create", mock.Anything, mock.Anything).
			Return(models.Employee{}, &client.ConflictError{Message: "Email already taken"}).Once()

		_, err := editor.Submit(context.Background(), form)

		require.ErrorIs(t, err, client.ErrConflict)
		assert.Equal(t, "Email already taken", form.Errors["email"])
		assert.Empty(t, form.Errors["phoneNumber"])
		assert.InDelta(t, 1, testutil.ToFloat64(appMetrics.Conflicts.WithLabelValues("email")), 0)
	})

	t.Run("phone conflict is mapped onto the phone field", func(t *testing.T) {
		t.Parallel()

		editor, api, _ := newEditor(t, models.RoleAdmin)
		form := filledForm()
		form.ID = "4"
		api.On("Update", mock.Anything, models.EmployeeID("4"), mock.Anything).
			Return(models.Employee{}, &client.ConflictError{Message: "PHONE number already exists"}).Once()

		_, err := editor.Submit(context.Background(), form)

		require.ErrorIs(t, err, client.ErrConflict)
		assert.Equal(t, "Phone number already exists", form.Errors["phoneNumber"])
		assert.Empty(t, form.Errors["email"])
	})

	t.Run("unclassified error leaves field messages alone", func(t *testing.T) {
		t.Parallel()

		editor, api, _ := newEditor(t, models.RoleAdmin)
		form := filledForm()
		api.On("Create", mock.Anything, mock.Anything).
			Return(models.Employee{}, &client.StatusError{StatusCode: 500}).Once()

		_, err := editor.Submit(context.Background(), form)

		require.ErrorIs(t, err, client.ErrUnexpectedStatus)
		assert.True(t, form.Errors.Valid())
	})
}
