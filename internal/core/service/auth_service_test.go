package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medilog/medilog-api/internal/auth"
	"github.com/medilog/medilog-api/internal/core/domain"
	"github.com/medilog/medilog-api/internal/core/ports"
)

func signupInput(first, last, email, password string) ports.SignupInput {
	return ports.SignupInput{FirstName: first, LastName: last, Email: email, Password: password}
}

// passTx runs the function directly, standing in for a real transaction
// manager.
type passTx struct{}

func (passTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	created := *user
	created.ID = r.nextID
	r.users[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func newTestAuthService(repo *stubUserRepo) (*AuthService, *auth.Codec) {
	codec := auth.NewCodec("secret", time.Hour)
	return NewAuthService(repo, codec, passTx{}, zerolog.Nop()), codec
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, codec := newTestAuthService(repo)

	result, err := svc.Signup(context.Background(), signupInput("Ann", "Bell", "Ann@Example.COM ", "pw123456"))
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Email != "ann@example.com" {
		t.Fatalf("expected normalized email, got %q", result.Email)
	}
	if !codec.Validate(result.Token) {
		t.Fatalf("issued token did not validate")
	}
	if got := codec.UserID(result.Token); got != result.ID {
		t.Fatalf("token user id = %d, want %d", got, result.ID)
	}

	stored, err := repo.FindByID(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "pw123456" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Signup(context.Background(), signupInput("A", "B", "a@x.com", "pw123456")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), signupInput("A", "B", "A@X.COM", "other-pw")); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Login_NormalizedCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	signedUp, err := svc.Signup(context.Background(), signupInput("A", "B", "a@x.com", "pw123456"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	// Untrimmed email and password resolve to the same account.
	result, err := svc.Login(context.Background(), "A@X.com ", " pw123456")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.ID != signedUp.ID {
		t.Fatalf("login returned user %d, signup created %d", result.ID, signedUp.ID)
	}
}

func TestAuthService_Signup_PasswordTrimmedBeforeHashing(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Signup(context.Background(), signupInput("A", "B", "a@x.com", " pw123456 ")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if _, err := svc.Login(context.Background(), "a@x.com", "pw123456"); err != nil {
		t.Fatalf("login with trimmed password failed: %v", err)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Signup(context.Background(), signupInput("A", "B", "a@x.com", "pw123456")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "a@x.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "pw123456")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", wrongPassword, unknownEmail)
	}
}
