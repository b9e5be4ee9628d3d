package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// RegisterUser stores a new user. Registration happens before the user has a
// company, so it routes by the nil id.
type RegisterUser struct {
	User *storage.User

	ID uuid.UUID

	IAction
}

func (r *RegisterUser) CompanyID() uuid.UUID { return uuid.Nil }

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Users.Insert(ctx, r.User)
	if err != nil {
		return err
	}

	r.ID = id
	return nil
}
