package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListDocumentsInput is the Huma input for listing documents.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the Huma output for listing documents.
type ListDocumentsOutput struct {
	Body struct {
		Documents []Document `json:"documents"`
	}
}

// ListDocumentsHandler handles GET /v1/documents.
type ListDocumentsHandler struct {
	svc documentService
}

// NewListDocumentsHandler creates a new ListDocumentsHandler.
func NewListDocumentsHandler(svc documentService) *ListDocumentsHandler {
	return &ListDocumentsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListDocumentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-documents",
		Method:      http.MethodGet,
		Path:        "/v1/documents",
		Summary:     "List documents",
		Description: "Lists the company's documents, newest first.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *ListDocumentsHandler) handle(ctx context.Context, _ *ListDocumentsInput) (*ListDocumentsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	docs, err := h.svc.List(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListDocumentsOutput{}
	out.Body.Documents = make([]Document, len(docs))
	for i, doc := range docs {
		out.Body.Documents[i] = documentFromService(doc)
	}
	return out, nil
}
