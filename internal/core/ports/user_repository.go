package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Emails passed in are expected to be already normalized.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
