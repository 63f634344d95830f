package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/service"

	"github.com/gin-gonic/gin"
)

// fakeLedger implements the Ledger interface without a database.
type fakeLedger struct {
	balance   int64
	createErr error
	regenErr  error
}

func (f *fakeLedger) CreatePost(_ context.Context, userID int64, content string, links, images []string, video *string) (*service.PostResult, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cost := service.CharCost(content, links, images, video)
	f.balance -= cost
	return &service.PostResult{
		Post:       &domain.Post{ID: 1, AuthorID: userID, Content: content},
		Cost:       cost,
		NewBalance: f.balance,
	}, nil
}

func (f *fakeLedger) Regenerate(_ context.Context, _ int64) (int64, error) {
	if f.regenErr != nil {
		return 0, f.regenErr
	}
	return f.balance, nil
}

func newTestRouter(l Ledger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{Ledger: l}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", int64(1))
		c.Next()
	})
	r.POST("/posts", h.CreatePost)
	r.POST("/regen", h.Regenerate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePostHandler(t *testing.T) {
	r := newTestRouter(&fakeLedger{balance: 200})

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{
		"content": "hello world",
		"images":  []string{"img1"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Cost           int64 `json:"cost"`
		RemainingChars int64 `json:"remaining_chars"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Cost != 16 { // 11 runes + 5 image surcharge
		t.Fatalf("cost = %d; want 16", resp.Cost)
	}
	if resp.RemainingChars != 184 {
		t.Fatalf("remaining = %d; want 184", resp.RemainingChars)
	}
}

func TestCreatePostInsufficientBalance(t *testing.T) {
	r := newTestRouter(&fakeLedger{createErr: service.ErrInsufficientBalance})

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{"content": "x"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d; want 403", w.Code)
	}
}

func TestCreatePostUserNotFound(t *testing.T) {
	r := newTestRouter(&fakeLedger{createErr: service.ErrUserNotFound})

	w := doJSON(t, r, http.MethodPost, "/posts", gin.H{"content": "x"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
}

func TestRegenerateHandler(t *testing.T) {
	r := newTestRouter(&fakeLedger{balance: 200})

	w := doJSON(t, r, http.MethodPost, "/regen", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		NewBalance int64 `json:"new_balance"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.NewBalance != 200 {
		t.Fatalf("new_balance = %d; want 200", resp.NewBalance)
	}
}

func TestRegenerateTooSoon(t *testing.T) {
	r := newTestRouter(&fakeLedger{regenErr: service.ErrRegenTooSoon})

	w := doJSON(t, r, http.MethodPost, "/regen", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d; want 429", w.Code)
	}
}
