package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VhudzikiIV/PeaQBodyCare/internal/domain"
	"github.com/lib/pq"
)

func (p *Postgres) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	query := `INSERT INTO users (first_name, last_name, email, password_hash)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	var id int64
	err := p.db.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
	).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, created_at
	          FROM users WHERE email = $1`

	var user domain.User
	err := p.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	return &user, nil
}
