package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// ApplyAnalysis writes the analyzer's verdict onto a document and replaces
// its generated transactions.
type ApplyAnalysis struct {
	Company    uuid.UUID
	DocumentID uuid.UUID
	Update     *storage.DocumentAnalysisUpdate

	IAction
}

func (a *ApplyAnalysis) CompanyID() uuid.UUID { return a.Company }

func (a *ApplyAnalysis) Perform(ctx context.Context, writer *storage.Writer) error {
	doc, err := writer.Documents.FindByID(ctx, a.Company, a.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return &finance.NotFoundError{Entity: "document", ID: a.DocumentID.String()}
	}

	return writer.Documents.ApplyAnalysis(ctx, a.Company, a.DocumentID, a.Update)
}
