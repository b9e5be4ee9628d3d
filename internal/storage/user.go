package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string
	LastName     string
	Role         string     `gorm:"size:16;default:user"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type IUserTable interface {
	Insert(ctx context.Context, user *User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	SetCompany(ctx context.Context, id, companyID uuid.UUID) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

var _ IUserTable = (*UsersTable)(nil)

type UsersTable struct {
	db *gorm.DB
}

func (t *UsersTable) Insert(ctx context.Context, user *User) (uuid.UUID, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(user).Error; err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := t.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := t.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *UsersTable) SetCompany(ctx context.Context, id, companyID uuid.UUID) error {
	return t.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("company_id", companyID).Error
}

func (t *UsersTable) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return t.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Update("last_login", at).Error
}
