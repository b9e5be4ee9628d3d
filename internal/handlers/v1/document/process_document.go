package document

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ProcessDocumentInput is the Huma input for rerunning analysis.
type ProcessDocumentInput struct {
	ID string `path:"id" format:"uuid" doc:"Document UUID"`
}

// ProcessDocumentOutput is the Huma output for rerunning analysis.
type ProcessDocumentOutput struct {
	Body Document
}

// ProcessDocumentHandler handles POST /v1/documents/{id}/process.
type ProcessDocumentHandler struct {
	svc documentService
	log *logrus.Logger
}

// NewProcessDocumentHandler creates a new ProcessDocumentHandler.
func NewProcessDocumentHandler(svc documentService, log *logrus.Logger) *ProcessDocumentHandler {
	return &ProcessDocumentHandler{svc: svc, log: log}
}

// Register registers the endpoint with the Huma API.
func (h *ProcessDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "process-document",
		Method:      http.MethodPost,
		Path:        "/v1/documents/{id}/process",
		Summary:     "Reprocess document",
		Description: "Reruns analysis on a stored document, replacing prior results.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *ProcessDocumentHandler) handle(ctx context.Context, input *ProcessDocumentInput) (*ProcessDocumentOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	// Same containment as upload: a failed analysis moves the document to
	// the error state and the caller gets it back with that status. A
	// missing document is a real 404, not an analysis failure.
	if err := h.svc.Process(ctx, companyID, id); err != nil {
		var nferr *finance.NotFoundError
		if errors.As(err, &nferr) {
			return nil, httperr.FromService(err)
		}
		h.log.WithError(err).WithField("documentID", id).Error("Handler.ProcessDocument.AnalysisError")
	}

	doc, err := h.svc.Get(ctx, companyID, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &ProcessDocumentOutput{Body: documentFromService(*doc)}, nil
}
