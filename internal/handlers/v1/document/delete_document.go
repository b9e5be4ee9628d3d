package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// DeleteDocumentInput is the Huma input for deleting a document.
type DeleteDocumentInput struct {
	ID string `path:"id" format:"uuid" doc:"Document UUID"`
}

// DeleteDocumentOutput is the Huma output for deleting a document.
type DeleteDocumentOutput struct {
	Status int
}

// DeleteDocumentHandler handles DELETE /v1/documents/{id}.
type DeleteDocumentHandler struct {
	svc documentService
}

// NewDeleteDocumentHandler creates a new DeleteDocumentHandler.
func NewDeleteDocumentHandler(svc documentService) *DeleteDocumentHandler {
	return &DeleteDocumentHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DeleteDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-document",
		Method:        http.MethodDelete,
		Path:          "/v1/documents/{id}",
		Summary:       "Delete document",
		Description:   "Removes a document and its generated transactions.",
		Tags:          []string{"Documents"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteDocumentHandler) handle(ctx context.Context, input *DeleteDocumentInput) (*DeleteDocumentOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.svc.Delete(ctx, companyID, id); err != nil {
		return nil, httperr.FromService(err)
	}

	return &DeleteDocumentOutput{Status: http.StatusNoContent}, nil
}
