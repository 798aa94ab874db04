package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// demoAdmin is a hardcoded credential pair that short-circuits login to a
// fixed identity without touching the credential store. A demo shortcut
// kept for the admin flows; not meant for production use.
type demoAdmin struct {
	password string
	identity User
}

var demoAdmins = map[string]demoAdmin{
	"admin@demo.com": {
		password: "admin123",
		identity: User{
			ID:      "admin-demo-id",
			Name:    "Admin User",
			Email:   "admin@demo.com",
			IsAdmin: true,
		},
	},
	"bharanipt2006@gmail.com": {
		password: "bharanee123",
		identity: User{
			ID:      "admin-bharani-id",
			Name:    "Bharani Admin",
			Email:   "bharanipt2006@gmail.com",
			IsAdmin: true,
		},
	},
}

// demoAdminByID indexes the fixed identities by id so token subjects can be
// resolved without a store round-trip.
var demoAdminByID = func() map[string]User {
	m := make(map[string]User, len(demoAdmins))
	for _, d := range demoAdmins {
		m[d.identity.ID] = d.identity
	}
	return m
}()

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	log    *zap.Logger
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher, log *zap.Logger) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		log:    log,
	}
}

// Register creates a new account. It does not issue a token; callers log in
// separately.
func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if strings.TrimSpace(name) == "" || cleanEmail == "" || password == "" {
		return nil, ErrMissingFields
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		// Found an existing user.
		return nil, ErrEmailAlreadyUsed
	}
	// If the error is something other than "not found", propagate it.
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Name:         strings.TrimSpace(name),
		Email:        cleanEmail,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered", zap.String("user_id", u.ID), zap.String("email", u.Email))

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || password == "" {
		return nil, ErrMissingFields
	}

	// Demo admin credentials bypass the store entirely. The match is exact:
	// no trimming or lowercasing is applied to the demo emails.
	if d, ok := demoAdmins[email]; ok && d.password == password {
		s.log.Info("demo admin login", zap.String("user_id", d.identity.ID))
		identity := d.identity
		return &identity, nil
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// GetByID resolves a token subject to a user. Demo admin ids resolve to
// their fixed identities; everything else is read from the store.
func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	if identity, ok := demoAdminByID[id]; ok {
		return &identity, nil
	}
	return s.repo.GetByID(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
