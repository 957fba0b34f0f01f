package owner

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidRole  = errors.New("invalid role")
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	v := strings.TrimSpace(strings.ToLower(value))
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 || !strings.Contains(v[at:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string {
	return e.value
}

// Owner is a share holder or an administrator acting as one. The points
// balance is persisted alongside the owner row but mutated only through the
// points ledger operations.
type Owner struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOwner(name string, email Email, passwordHash string, role Role) *Owner {
	return &Owner{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func Reconstruct(id uuid.UUID, name string, email Email, passwordHash string, role Role, createdAt, updatedAt time.Time) *Owner {
	return &Owner{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Owner) ID() uuid.UUID        { return o.id }
func (o *Owner) Name() string         { return o.name }
func (o *Owner) Email() Email         { return o.email }
func (o *Owner) PasswordHash() string { return o.passwordHash }
func (o *Owner) Role() Role           { return o.role }
func (o *Owner) CreatedAt() time.Time { return o.createdAt }
func (o *Owner) UpdatedAt() time.Time { return o.updatedAt }
