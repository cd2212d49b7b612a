package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-records-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-records-backend-go/internal/pkg/database"
)

const userColumns = "id, username, first_name, last_name, email, password_hash, created_at, updated_at"

type userRepositoryImpl struct {
	table[user.User]
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{
		table: table[user.User]{db: db, name: "users", columns: userColumns},
	}
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.get(ctx, "email = $1", email)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *userRepositoryImpl) get(ctx context.Context, condition string, arg any) (user.User, error) {
	u, err := r.one(ctx, user.ErrUserNotFound, "SELECT "+userColumns+" FROM users WHERE "+condition, arg)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	query := `
		INSERT INTO users (id, username, first_name, last_name, email, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := r.one(ctx, nil, query,
		newUser.ID,
		newUser.Username,
		newUser.FirstName,
		newUser.LastName,
		newUser.Email,
		newUser.PasswordHash,
	)
	if err != nil {
		return user.User{}, userWriteError("create", err)
	}
	return created, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = $1", email)
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID string) (bool, error) {
	return r.exists(ctx, "username = $1 AND ($2 = '' OR id::text <> $2)", username, excludeID)
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	query := `
		UPDATE users
		SET username = $1, first_name = $2, last_name = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + userColumns

	updated, err := r.one(ctx, user.ErrUserNotFound, query, u.Username, u.FirstName, u.LastName, u.ID)
	if errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, err
	}
	if err != nil {
		return user.User{}, userWriteError("update", err)
	}
	return updated, nil
}

func userWriteError(op string, err error) error {
	constraint, ok := uniqueViolation(err)
	if ok {
		switch constraint {
		case "users_username_key":
			return user.ErrUsernameExists
		case "users_email_key":
			return user.ErrUserEmailExists
		}
	}
	return fmt.Errorf("failed to %s user: %w", op, err)
}
