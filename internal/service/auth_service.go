package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/auth"
	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

const minPasswordLen = 8

// AuthService handles registration, login and company setup.
type AuthService struct {
	storage   *storage.Storage
	op        Processor
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, op Processor, jwtSecret string) *AuthService {
	return &AuthService{storage: store, op: op, jwtSecret: jwtSecret}
}

// Register creates a user and returns a session without a company; the user
// finishes onboarding through SetupCompany.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &finance.ValidationError{Field: "email", Reason: "invalid email address"}
	}
	if len(input.Password) < minPasswordLen {
		return nil, &finance.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	existing, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &finance.ValidationError{Field: "email", Reason: "already registered"}
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		User: &storage.User{
			Email:        email,
			PasswordHash: hash,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.sessionFor(action.User)
}

// Login validates the credentials and returns a fresh session. Invalid email
// and invalid password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.storage.Users.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return nil, &finance.ValidationError{Field: "credentials", Reason: "invalid email or password"}
	}

	if err := s.storage.Users.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	return s.sessionFor(user)
}

// SetupCompany creates the tenant for a user who has none yet and re-issues
// the token with the company claim.
func (s *AuthService) SetupCompany(ctx context.Context, userID uuid.UUID, input CompanyInput) (*Session, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &finance.NotFoundError{Entity: "user", ID: userID.String()}
	}
	if user.CompanyID != nil {
		return nil, &finance.ValidationError{Field: "company", Reason: "already configured"}
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, &finance.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(input.CUI) == "" {
		return nil, &finance.ValidationError{Field: "cui", Reason: "required"}
	}

	company := &storage.Company{
		Name:          input.Name,
		CUI:           input.CUI,
		RegCom:        input.RegCom,
		Address:       input.Address,
		Phone:         input.Phone,
		Email:         input.Email,
		Currency:      input.Currency,
		InvoicePrefix: input.InvoicePrefix,
	}
	if input.VATRate > 0 {
		company.VATRate = input.VATRate
	}

	action := &actions.SetupCompany{UserID: userID, Company: company}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	user.CompanyID = &action.ID
	return s.sessionFor(user)
}

// Me returns the user's profile.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &finance.NotFoundError{Entity: "user", ID: userID.String()}
	}
	converted := userFromStorage(user)
	return &converted, nil
}

func (s *AuthService) sessionFor(user *storage.User) (*Session, error) {
	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.CompanyID, auth.DefaultTokenTTL)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: userFromStorage(user)}, nil
}
