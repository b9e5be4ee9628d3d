package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// DeleteDocument removes a document and its generated transactions.
type DeleteDocument struct {
	Company    uuid.UUID
	DocumentID uuid.UUID

	IAction
}

func (d *DeleteDocument) CompanyID() uuid.UUID { return d.Company }

func (d *DeleteDocument) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Documents.Delete(ctx, d.Company, d.DocumentID)
	if err != nil {
		return err
	}
	if !found {
		return &finance.NotFoundError{Entity: "document", ID: d.DocumentID.String()}
	}
	return nil
}
