package ports

import (
	"context"

	"github.com/medilog/medilog-api/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
