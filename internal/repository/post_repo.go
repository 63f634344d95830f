package repository

import (
	"context"
	"encoding/json"

	"github.com/BakedBeans3210/limigo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepository struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// CreateWithTx inserts a post inside an existing transaction so the insert
// commits together with the author's debit.
func (r *PostRepository) CreateWithTx(ctx context.Context, tx pgx.Tx, p *domain.Post) error {
	mediaJSON, err := json.Marshal(p.Media)
	if err != nil {
		mediaJSON = []byte("{}")
	}

	return tx.QueryRow(ctx,
		`INSERT INTO posts (author_id, content, media, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.AuthorID, p.Content, mediaJSON, p.CreatedAt,
	).Scan(&p.ID)
}

// GetLatest returns the newest posts across all authors
func (r *PostRepository) GetLatest(ctx context.Context, limit int) ([]*domain.Post, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, author_id, content, media, created_at
		 FROM posts
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByAuthor returns the newest posts of a single author
func (r *PostRepository) GetByAuthor(ctx context.Context, authorID int64, limit int) ([]*domain.Post, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, author_id, content, media, created_at
		 FROM posts
		 WHERE author_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		authorID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *PostRepository) scanRows(rows pgx.Rows) ([]*domain.Post, error) {
	var result []*domain.Post

	for rows.Next() {
		var (
			p         domain.Post
			mediaJSON []byte
		)

		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Content, &mediaJSON, &p.CreatedAt); err != nil {
			return nil, err
		}

		if len(mediaJSON) > 0 {
			_ = json.Unmarshal(mediaJSON, &p.Media)
		}

		result = append(result, &p)
	}

	return result, rows.Err()
}
