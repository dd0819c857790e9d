package usecase

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"photoboard/src/core/domain"
	"photoboard/src/core/ports"
)

// UserService handles registration, credential verification, and profile flows.
type UserService struct {
	repo ports.BoardRepository
	log  *slog.Logger
}

func NewUserService(repo ports.BoardRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// RegisterInput carries validated sign-up fields. Name, About, and Avatar
// are optional; empty values fall back to the profile defaults.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

// Register creates a new account with a hashed password.
// A duplicate email surfaces as a conflict error from the repository.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only hashes the first 72 bytes; a longer password is a
		// client input problem, not a server failure.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("password", "password must be at most 72 bytes")
		}
		return nil, err
	}

	nu := ports.NewUser{
		Name:         in.Name,
		About:        in.About,
		Avatar:       in.Avatar,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if nu.Name == "" {
		nu.Name = domain.DefaultUserName
	}
	if nu.About == "" {
		nu.About = domain.DefaultUserAbout
	}
	if nu.Avatar == "" {
		nu.Avatar = domain.DefaultUserAvatar
	}

	return s.repo.CreateUser(ctx, nu)
}

// Authenticate verifies an email/password pair and returns the account.
// An unknown email and a wrong password produce the same unauthorized
// error so the outcome carries no account-enumeration signal.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewUnauthorizedError("incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("incorrect email or password")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error) {
	return s.repo.UpdateProfile(ctx, userID, name, about)
}

func (s *UserService) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	return s.repo.UpdateAvatar(ctx, userID, avatar)
}
