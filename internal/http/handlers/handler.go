package handlers

import (
	"context"

	"github.com/BakedBeans3210/limigo/internal/cache"
	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/repository"
	"github.com/BakedBeans3210/limigo/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Ledger is the balance-accounting surface handlers talk to. Satisfied by
// *service.LedgerService; tests inject fakes.
type Ledger interface {
	CreatePost(ctx context.Context, userID int64, content string, links, images []string, video *string) (*service.PostResult, error)
	Regenerate(ctx context.Context, userID int64) (int64, error)
}

// UserDirectory resolves and provisions user documents. Satisfied by
// *repository.UserRepository.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// LedgerLog reads the balance movement audit trail. Satisfied by
// *repository.LedgerRepository.
type LedgerLog interface {
	GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.LedgerEntry, error)
}

// HandlerConfig holds configuration for handler
type HandlerConfig struct {
	FeedLimit int
}

type Handler struct {
	DB        *pgxpool.Pool
	Ledger    Ledger
	Users     UserDirectory
	Entries   LedgerLog
	PostRepo  *repository.PostRepository
	Feed      *cache.FeedCache
	FeedLimit int
}

func NewHandler(db *pgxpool.Pool, feed *cache.FeedCache, cfg HandlerConfig) *Handler {
	feedLimit := cfg.FeedLimit
	if feedLimit <= 0 {
		feedLimit = 50
	}
	return &Handler{
		DB:        db,
		Ledger:    service.NewLedgerService(db),
		Users:     repository.NewUserRepository(db),
		Entries:   repository.NewLedgerRepository(db),
		PostRepo:  repository.NewPostRepository(db),
		Feed:      feed,
		FeedLimit: feedLimit,
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
