package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	t.Run("Validation errors map to 400", func(t *testing.T) {
		for _, err := range []error{
			ErrMissingFields,
			ErrInvalidUserID,
			ErrInvalidTransactionType,
			ErrInvalidAmount,
			ErrNoFileUploaded,
			ErrInvalidImageExtension,
			ErrImageTypeMismatch,
			ErrImageTooLarge,
		} {
			assert.Equal(t, http.StatusBadRequest, HTTPStatus(err), err.Error())
		}
	})

	t.Run("Credential errors map to 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidCredential))
	})

	t.Run("Not found errors map to 404", func(t *testing.T) {
		for _, err := range []error{ErrUserNotFound, ErrTransactionNotFound, ErrNotFound} {
			assert.Equal(t, http.StatusNotFound, HTTPStatus(err), err.Error())
		}
	})

	t.Run("Conflict errors map to 409", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, HTTPStatus(ErrDuplicateUser))
		assert.Equal(t, http.StatusConflict, HTTPStatus(ErrConstraintViolation))
	})

	t.Run("Everything else maps to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrInternalServer))
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(ErrStorageFailure))
		assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything")))
	})

	t.Run("Wrapped errors keep their mapping", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: transfer", ErrInvalidTransactionType)
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrMissingFields))
	assert.True(t, IsValidationError(fmt.Errorf("%w: .php", ErrInvalidImageExtension)))
	assert.False(t, IsValidationError(ErrUserNotFound))
	assert.False(t, IsValidationError(ErrInternalServer))
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrMissingFields))
}
