package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// UploadDocumentBody is the request body for uploading a document.
type UploadDocumentBody struct {
	FileName string `json:"fileName" required:"true" minLength:"1" doc:"Original file name"`
	FileSize string `json:"fileSize" doc:"Display file size"`
	FileType string `json:"fileType" doc:"MIME type"`
	FileData string `json:"fileData" required:"true" doc:"Base64 encoded file contents"`
	Category string `json:"category" doc:"Document category hint"`
}

// UploadDocumentInput is the Huma input for uploading a document.
type UploadDocumentInput struct {
	Body UploadDocumentBody
}

// UploadDocumentOutput is the Huma output for uploading a document.
type UploadDocumentOutput struct {
	Status int
	Body   Document
}

// UploadDocumentHandler handles POST /v1/documents.
type UploadDocumentHandler struct {
	svc documentService
	log *logrus.Logger
}

// NewUploadDocumentHandler creates a new UploadDocumentHandler.
func NewUploadDocumentHandler(svc documentService, log *logrus.Logger) *UploadDocumentHandler {
	return &UploadDocumentHandler{svc: svc, log: log}
}

// Register registers the endpoint with the Huma API.
func (h *UploadDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-document",
		Method:        http.MethodPost,
		Path:          "/v1/documents",
		Summary:       "Upload document",
		Description:   "Stores a document and runs analysis over it.",
		Tags:          []string{"Documents"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *UploadDocumentHandler) handle(ctx context.Context, input *UploadDocumentInput) (*UploadDocumentOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := h.svc.Upload(ctx, companyID, middleware.UserID(ctx), service.DocumentUpload{
		FileName: input.Body.FileName,
		FileSize: input.Body.FileSize,
		FileType: input.Body.FileType,
		FileData: input.Body.FileData,
		Category: input.Body.Category,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	// An analysis failure parks the document in the error state. The upload
	// itself succeeded, so the client still gets the document back.
	if err := h.svc.Process(ctx, companyID, id); err != nil {
		h.log.WithError(err).WithField("documentID", id).Error("Handler.UploadDocument.AnalysisError")
	}

	doc, err := h.svc.Get(ctx, companyID, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UploadDocumentOutput{
		Status: http.StatusCreated,
		Body:   documentFromService(*doc),
	}, nil
}
