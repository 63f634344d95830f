package service

import (
	"context"
	"errors"
	"time"

	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRegenTooSoon        = errors.New("regen too soon")
)

// LedgerService owns every mutation of a user's character balance.
// All read-check-write cycles run inside a single transaction holding a
// row lock on the user, so concurrent debits and regenerations on the
// same user cannot interleave.
type LedgerService struct {
	db      *pgxpool.Pool
	posts   *repository.PostRepository
	entries *repository.LedgerRepository
}

func NewLedgerService(db *pgxpool.Pool) *LedgerService {
	return &LedgerService{
		db:      db,
		posts:   repository.NewPostRepository(db),
		entries: repository.NewLedgerRepository(db),
	}
}

// PostResult contains the outcome of a successful post creation
type PostResult struct {
	Post       *domain.Post `json:"post"`
	Cost       int64        `json:"cost"`
	NewBalance int64        `json:"remaining_chars"`
}

// CreatePost charges the author for the post and persists it. The debit,
// post-count bump, post insert and ledger entry commit together.
func (s *LedgerService) CreatePost(ctx context.Context, userID int64, content string, links, images []string, video *string) (*PostResult, error) {
	cost := CharCost(content, links, images, video)

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock and check balance
	var balance int64
	err = tx.QueryRow(ctx, `SELECT char_balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if balance < cost {
		return nil, ErrInsufficientBalance
	}

	now := time.Now().UTC()

	var newBalance int64
	err = tx.QueryRow(ctx,
		`UPDATE users
		 SET char_balance = char_balance - $1, post_count = post_count + 1, last_post = $2
		 WHERE id = $3
		 RETURNING char_balance`,
		cost, now, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		AuthorID: userID,
		Content:  content,
		Media: domain.Media{
			Links:  links,
			Images: images,
			Video:  video,
		},
		CreatedAt: now,
	}
	if err = s.posts.CreateWithTx(ctx, tx, post); err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		UserID: userID,
		Type:   domain.EntryPostDebit,
		Amount: -cost,
		Meta:   map[string]interface{}{"post_id": post.ID},
	}
	if err = s.entries.CreateWithTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PostResult{Post: post, Cost: cost, NewBalance: newBalance}, nil
}

// Regenerate credits the user for every whole hour since the last
// regeneration, up to MaxCharStorage. The regeneration mark snaps to the
// current instant, so a fractional hour is discarded on each call.
func (s *LedgerService) Regenerate(ctx context.Context, userID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		balance   int64
		lastRegen *time.Time
	)
	err = tx.QueryRow(ctx, `SELECT char_balance, last_regen FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance, &lastRegen)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	now := time.Now().UTC()
	hours := hoursSince(lastRegen, now)
	if hours < 1 {
		return 0, ErrRegenTooSoon
	}

	newBalance := regenBalance(balance, hours)

	if _, err = tx.Exec(ctx,
		`UPDATE users SET char_balance = $1, last_regen = $2 WHERE id = $3`,
		newBalance, now, userID,
	); err != nil {
		return 0, err
	}

	entry := &domain.LedgerEntry{
		UserID: userID,
		Type:   domain.EntryRegen,
		Amount: newBalance - balance,
		Meta:   map[string]interface{}{"hours": hours},
	}
	if err = s.entries.CreateWithTx(ctx, tx, entry); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}

	return newBalance, nil
}

// hoursSince returns the whole hours elapsed since the last regeneration.
// A user that has never regenerated counts as exactly one hour behind,
// which makes the first call eligible.
func hoursSince(last *time.Time, now time.Time) int64 {
	if last == nil {
		return 1
	}
	return int64(now.Sub(*last) / time.Hour)
}

// regenBalance applies the hourly credit and caps at MaxCharStorage.
func regenBalance(balance, hours int64) int64 {
	b := balance + hours*CharRegenRate
	if b > MaxCharStorage {
		b = MaxCharStorage
	}
	return b
}
