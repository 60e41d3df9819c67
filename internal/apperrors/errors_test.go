package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/branch_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperrors.NewValidationError("amount must be positive"), want: http.StatusBadRequest},
		{name: "rate bounds", err: apperrors.NewRateBoundsError("rate 9 outside [10, 20]"), want: http.StatusBadRequest},
		{name: "resolution", err: apperrors.NewResolutionError("cash box 3 has no account"), want: http.StatusUnprocessableEntity},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", apperrors.ErrNotFound), want: http.StatusNotFound},
		{name: "store", err: apperrors.NewStoreError("failed to insert", errors.New("pq: deadlock")), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	err := apperrors.NewValidationError("settings: %s is not configured", "customer_credit_account")
	assert.Equal(t, "settings: customer_credit_account is not configured", apperrors.PublicMessage(err, "failed"))

	storeErr := apperrors.NewStoreError("failed to insert journal entries", errors.New("duplicate key value violates unique constraint"))
	assert.Equal(t, "failed", apperrors.PublicMessage(storeErr, "failed"))
	assert.True(t, errors.Is(storeErr, apperrors.ErrStore))

	assert.Equal(t, "failed", apperrors.PublicMessage(errors.New("raw"), "failed"))
}
