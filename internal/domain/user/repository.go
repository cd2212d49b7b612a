package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create reports a taken username or email as ErrUsernameExists or ErrUserEmailExists.
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByUsername ignores the user with excludeID, which may be empty.
	ExistsByUsername(ctx context.Context, username string, excludeID string) (bool, error)
	Update(ctx context.Context, u User) (User, error)
}
