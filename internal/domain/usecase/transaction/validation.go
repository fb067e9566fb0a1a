package transaction

import (
	"fmt"

	"github.com/fintrack-app/fintrack-backend/internal/domain/entity"
	errs "github.com/fintrack-app/fintrack-backend/internal/domain/error"
)

// Validator checks transaction requests before any database call is made
type Validator struct{}

// NewValidator creates a new transaction Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreate validates the fields of a create request and returns the
// parsed amount. Presence checks run before shape checks so an empty field
// always reads as "missing", matching the wire contract.
func (v *Validator) ValidateCreate(userID uint64, transactionType, amount string) (float64, error) {
	if userID == 0 {
		return 0, errs.ErrInvalidUserID
	}
	if transactionType == "" || amount == "" {
		return 0, errs.ErrMissingFields
	}
	if !entity.IsValidTransactionType(transactionType) {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, transactionType)
	}

	value, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	return value, nil
}

// ValidateUpdate validates the fields of an update request, which additionally
// requires the transaction ID
func (v *Validator) ValidateUpdate(id, userID uint64, transactionType, amount string) (float64, error) {
	if id == 0 {
		return 0, errs.ErrMissingFields
	}
	return v.ValidateCreate(userID, transactionType, amount)
}

// ValidateDelete validates the fields of a delete request
func (v *Validator) ValidateDelete(id, userID uint64) error {
	if id == 0 || userID == 0 {
		return errs.ErrMissingFields
	}
	return nil
}
