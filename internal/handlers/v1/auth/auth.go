package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// authService is the service surface the auth handlers need.
type authService interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.Session, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
	SetupCompany(ctx context.Context, userID uuid.UUID, input service.CompanyInput) (*service.Session, error)
	Me(ctx context.Context, userID uuid.UUID) (*service.User, error)
}

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	CompanyID string `json:"companyID,omitempty" doc:"Company UUID once setup is done"`
}

// Session is the API response model for an authenticated session.
type Session struct {
	Token string `json:"token" doc:"JWT bearer token"`
	User  User   `json:"user"`
}

func userFromService(u service.User) User {
	out := User{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
	if u.CompanyID != nil {
		out.CompanyID = u.CompanyID.String()
	}
	return out
}

func sessionFromService(s *service.Session) Session {
	return Session{
		Token: s.Token,
		User:  userFromService(s.User),
	}
}
