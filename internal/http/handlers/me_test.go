package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/BakedBeans3210/limigo/internal/domain"

	"github.com/gin-gonic/gin"
)

type fakeLedgerLog struct {
	entries []*domain.LedgerEntry
	err     error
}

func (f *fakeLedgerLog) GetByUserID(_ context.Context, _ int64, _ int) ([]*domain.LedgerEntry, error) {
	return f.entries, f.err
}

func newLedgerRouter(log LedgerLog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Entries: log}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	})
	r.GET("/me/ledger", h.MyLedger)
	return r
}

func TestMyLedgerEmptyHistory(t *testing.T) {
	r := newLedgerRouter(&fakeLedgerLog{})

	w := doJSON(t, r, http.MethodGet, "/me/ledger", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"ledger":[]`) {
		t.Fatalf("empty history must render as []: %s", w.Body.String())
	}
}

func TestMyLedgerWithEntries(t *testing.T) {
	r := newLedgerRouter(&fakeLedgerLog{entries: []*domain.LedgerEntry{
		{ID: 1, UserID: 1, Type: domain.EntryPostDebit, Amount: -16},
		{ID: 2, UserID: 1, Type: domain.EntryRegen, Amount: 100},
	}})

	w := doJSON(t, r, http.MethodGet, "/me/ledger", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, domain.EntryPostDebit) || !strings.Contains(body, domain.EntryRegen) {
		t.Fatalf("expected both entry types in body: %s", body)
	}
}
