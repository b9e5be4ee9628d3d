package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// SetDocumentStatus flips a document's status; used to park a document in
// the error state when its analysis fails.
type SetDocumentStatus struct {
	Company    uuid.UUID
	DocumentID uuid.UUID
	Status     string

	IAction
}

func (s *SetDocumentStatus) CompanyID() uuid.UUID { return s.Company }

func (s *SetDocumentStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Documents.SetStatus(ctx, s.Company, s.DocumentID, s.Status)
}
