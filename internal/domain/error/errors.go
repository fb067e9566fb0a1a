package error

import (
	"errors"
	"net/http"
)

// Base error types
var (
	// ErrMissingFields is returned when a required request field is empty
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be a positive integer")

	// ErrInvalidTransactionType is returned when the type is not income or expense
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

	// ErrInvalidAmount is returned when the amount is empty or not numeric
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrUserNotFound is returned when no user matches the given email or ID
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredential is returned when the password does not match the stored hash
	ErrInvalidCredential = errors.New("password does not match")

	// ErrTransactionNotFound is returned when a mutation matched no row owned by the user
	ErrTransactionNotFound = errors.New("transaction not found or not owned by user")

	// ErrNoFileUploaded is returned when the multipart file field is absent or unreadable
	ErrNoFileUploaded = errors.New("no file uploaded or upload error")

	// ErrInvalidImageExtension is returned when the file extension is not in the allow-set
	ErrInvalidImageExtension = errors.New("invalid file extension")

	// ErrImageTypeMismatch is returned when the detected content type is not an allowed image type
	ErrImageTypeMismatch = errors.New("file content is not an allowed image type")

	// ErrImageTooLarge is returned when the uploaded file exceeds the size limit
	ErrImageTooLarge = errors.New("file size exceeds the maximum allowed")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrStorageFailure is returned when a filesystem operation failed
	ErrStorageFailure = errors.New("storage operation failed")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when a user with the same email already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatus maps known errors to the HTTP status code of their response envelope.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidTransactionType),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNoFileUploaded),
		errors.Is(err, ErrInvalidImageExtension),
		errors.Is(err, ErrImageTypeMismatch),
		errors.Is(err, ErrImageTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrConstraintViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsValidationError reports whether the error was raised before any mutating call.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidTransactionType) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNoFileUploaded) ||
		errors.Is(err, ErrInvalidImageExtension) ||
		errors.Is(err, ErrImageTypeMismatch) ||
		errors.Is(err, ErrImageTooLarge)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
