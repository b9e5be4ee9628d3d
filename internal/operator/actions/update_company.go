package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type UpdateCompany struct {
	Company uuid.UUID
	Update  *storage.CompanyUpdate

	IAction
}

func (u *UpdateCompany) CompanyID() uuid.UUID { return u.Company }

func (u *UpdateCompany) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Companies.Update(ctx, u.Company, u.Update)
}
