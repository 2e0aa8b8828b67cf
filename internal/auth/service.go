// Package auth covers credential verification, account registration and
// profile updates. It produces the session identity the rest of the site
// consumes; it never touches sessions itself.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dangsuk1211/Website-banthucung/internal/domain"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordMismatch   = errors.New("new password and confirmation do not match")
	ErrPasswordIncomplete = errors.New("all three password fields are required to change the password")
)

type Service struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewService(users repository.UserRepository, hasher PasswordHasher) *Service {
	return &Service{users: users, hasher: hasher}
}

// Verify checks the credentials and returns the identity to store in the
// session. Unknown emails and bad passwords are indistinguishable to the
// caller.
func (s *Service) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Compare(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return domain.IdentityOf(user), nil
}

// Register creates a customer account from an already-validated form.
// A duplicate email comes back as repository.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, form RegisterForm) error {
	email := normalizeEmail(form.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return repository.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing email: %w", err)
	}

	digest, err := s.hasher.Hash(form.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Fullname:  form.Fullname,
		Email:     email,
		Password:  digest,
		Roles:     []string{domain.RoleCustomer},
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

// ProfileForm carries an account update. The three password fields are either
// all empty (keep the password) or all set.
type ProfileForm struct {
	Fullname        string
	Email           string
	Phone           string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (f ProfileForm) wantsPasswordChange() bool {
	return f.CurrentPassword != "" || f.NewPassword != "" || f.ConfirmPassword != ""
}

// UpdateProfile applies the form to the stored user and returns the refreshed
// identity for the session. On any password error nothing is written.
func (s *Service) UpdateProfile(ctx context.Context, userID string, form ProfileForm) (*domain.Identity, error) {
	update := repository.ProfileUpdate{
		Fullname: form.Fullname,
		Email:    normalizeEmail(form.Email),
		Phone:    form.Phone,
	}

	if form.wantsPasswordChange() {
		if form.CurrentPassword == "" || form.NewPassword == "" || form.ConfirmPassword == "" {
			return nil, ErrPasswordIncomplete
		}

		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		if !s.hasher.Compare(form.CurrentPassword, user.Password) {
			return nil, ErrWrongPassword
		}
		if form.NewPassword != form.ConfirmPassword {
			return nil, ErrPasswordMismatch
		}

		digest, err := s.hasher.Hash(form.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		update.Password = digest
	}

	updated, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	return domain.IdentityOf(updated), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
