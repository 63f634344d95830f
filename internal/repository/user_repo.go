package repository

import (
	"context"

	"github.com/BakedBeans3210/limigo/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, char_balance, post_count, last_post, last_regen, created_at`

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)

	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.CharBalance,
		&u.PostCount,
		&u.LastPost,
		&u.LastRegen,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)

	var u domain.User
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.CharBalance,
		&u.PostCount,
		&u.LastPost,
		&u.LastRegen,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts a new user. CharBalance must be set by the caller
// (provisioning grants a full storage).
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO users (username, char_balance)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		u.Username,
		u.CharBalance,
	).Scan(&u.ID, &u.CreatedAt)
}
