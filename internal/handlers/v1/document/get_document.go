package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// GetDocumentInput is the Huma input for fetching one document.
type GetDocumentInput struct {
	ID string `path:"id" format:"uuid" doc:"Document UUID"`
}

// GetDocumentOutput is the Huma output for fetching one document.
type GetDocumentOutput struct {
	Body Document
}

// GetDocumentHandler handles GET /v1/documents/{id}.
type GetDocumentHandler struct {
	svc documentService
}

// NewGetDocumentHandler creates a new GetDocumentHandler.
func NewGetDocumentHandler(svc documentService) *GetDocumentHandler {
	return &GetDocumentHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *GetDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-document",
		Method:      http.MethodGet,
		Path:        "/v1/documents/{id}",
		Summary:     "Get document",
		Description: "Returns one document with its analysis.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *GetDocumentHandler) handle(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	doc, err := h.svc.Get(ctx, companyID, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &GetDocumentOutput{Body: documentFromService(*doc)}, nil
}
