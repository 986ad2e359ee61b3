package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
	tx     ports.TransactionManager
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer, tx ports.TransactionManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, tx: tx, logger: logger}
}

// Signup registers a new account. The email is normalized before the
// uniqueness check so "A@X.com " and "a@x.com" are the same account, and
// the password is trimmed before hashing.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)
	password := trimmed(input.Password)
	s.logger.Info().Str("email", email).Msg("signup attempt")

	var created *domain.User
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			s.logger.Warn().Str("email", email).Msg("signup rejected: email already registered")
			return domain.ErrEmailExists
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		created, err = s.users.Create(ctx, &domain.User{
			FirstName:    trimmed(input.FirstName),
			LastName:     trimmed(input.LastName),
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")
	return s.authResult(created)
}

// Login authenticates by normalized email and trimmed password. Unknown
// email and wrong password both yield ErrInvalidCredentials so callers
// cannot tell which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	normalized := domain.NormalizeEmail(email)
	password = trimmed(password)
	s.logger.Info().Str("email", normalized).Msg("login attempt")

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		s.logger.Warn().Str("email", normalized).Msg("login failed: user not found")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn().Str("email", normalized).Msg("login failed: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return s.authResult(user)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

func (s *AuthService) authResult(user *domain.User) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		Token:     token,
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}
