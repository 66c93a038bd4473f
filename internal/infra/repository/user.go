package repository

import (
	"context"
	"time"

	"bidloop/internal/domain/user"
	"bidloop/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, u.ID(), u.Email().String(), u.PasswordHash(), u.DisplayName())
	if err != nil {
		return classifyErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	const query = `
		SELECT id, email, password_hash, display_name, created_at
		FROM users
		WHERE email = $1`

	var (
		id           uuid.UUID
		rawEmail     string
		passwordHash string
		displayName  string
		createdAt    time.Time
	)
	err := r.db.QueryRow(ctx, query, email.String()).Scan(&id, &rawEmail, &passwordHash, &displayName, &createdAt)
	if err != nil {
		return nil, classifyErr("failed to find user by email", err)
	}

	return user.Reconstruct(id, user.Email(rawEmail), passwordHash, displayName, createdAt), nil
}
