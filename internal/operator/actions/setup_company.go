package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// SetupCompany creates the tenant and attaches the owner to it. The company
// id does not exist yet, so it routes by the nil id.
type SetupCompany struct {
	UserID  uuid.UUID
	Company *storage.Company

	ID uuid.UUID

	IAction
}

func (s *SetupCompany) CompanyID() uuid.UUID { return uuid.Nil }

func (s *SetupCompany) Perform(ctx context.Context, writer *storage.Writer) error {
	s.Company.OwnerID = s.UserID
	id, err := writer.Companies.Insert(ctx, s.Company)
	if err != nil {
		return err
	}

	if err := writer.Users.SetCompany(ctx, s.UserID, id); err != nil {
		return err
	}

	s.ID = id
	return nil
}
