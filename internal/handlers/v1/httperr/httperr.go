// Package httperr maps service errors onto HTTP status codes so every
// handler reports them the same way.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
)

// FromService converts a service error into a huma error. Validation errors
// become 400, missing records 404, everything else 500.
func FromService(err error) error {
	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		return huma.NewError(http.StatusBadRequest, verr.Error())
	}
	var nferr *finance.NotFoundError
	if errors.As(err, &nferr) {
		return huma.NewError(http.StatusNotFound, nferr.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "internal error", err)
}

// RequireCompany rejects requests from users who have not finished company
// setup.
func RequireCompany(companyID uuid.UUID) error {
	if companyID == uuid.Nil {
		return huma.NewError(http.StatusForbidden, "company not configured")
	}
	return nil
}
