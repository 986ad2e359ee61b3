package ports

import "context"

// SignupInput carries the raw signup request fields. Normalization and
// hashing happen inside the service.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthResult is the identity + token package returned by both signup and
// login.
type AuthResult struct {
	Token     string
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
