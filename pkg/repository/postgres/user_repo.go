package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urbanfood/usersvc/pkg/users"
)

// UserRepository implements users.Repository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	repo := &UserRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *users.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (first_name, last_name, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.IsAdmin, user.CreatedAt)
	if err := row.Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return users.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password_hash, is_admin, created_at
		FROM users WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password_hash, is_admin, created_at
		FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, password_hash, is_admin, created_at
		FROM users ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []users.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (users.User, error) {
	var user users.User
	var createdAt time.Time
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordHash, &user.IsAdmin, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("scan user: %w", err)
	}
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
