package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// User represents a user in the service layer.
type User struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	CompanyID *uuid.UUID
}

// Session is an authenticated user plus their bearer token.
type Session struct {
	Token string
	User  User
}

// RegisterInput carries the signup fields.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// CompanyInput carries the company setup fields.
type CompanyInput struct {
	Name          string
	CUI           string
	RegCom        string
	Address       string
	Phone         string
	Email         string
	VATRate       int
	Currency      string
	InvoicePrefix string
}

func userFromStorage(row *storage.User) User {
	return User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Role:      row.Role,
		CompanyID: row.CompanyID,
	}
}
