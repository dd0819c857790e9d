// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"photoboard/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// NewUser carries the fields needed to create an account.
// PasswordHash must already be hashed; repositories never see plaintext.
type NewUser struct {
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
}

// UserRepository covers account storage.
//
// Lookups by a syntactically malformed id fail with a validation error;
// lookups that match nothing fail with a not-found error; creating a user
// with an email that is already taken fails with a conflict error.
type UserRepository interface {
	CreateUser(ctx context.Context, nu NewUser) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// GetUserByEmail returns the user including the password hash.
	// It is only used by the credential-verification path.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}

// CardRepository covers card storage.
//
// AddLike and RemoveLike are idempotent: liking twice leaves a single
// entry in the liker set, removing an absent entry is a no-op. Both
// return the card with its current liker set.
type CardRepository interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
	CreateCard(ctx context.Context, ownerID, name, link string) (*domain.Card, error)
	GetCardByID(ctx context.Context, id string) (*domain.Card, error)
	DeleteCard(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
	RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}

// BoardRepository is the composite repository covering all domain operations.
type BoardRepository interface {
	Repository
	UserRepository
	CardRepository
}
