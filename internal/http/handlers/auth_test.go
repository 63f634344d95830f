package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/BakedBeans3210/limigo/internal/domain"
	"github.com/BakedBeans3210/limigo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// fakeUserDirectory implements UserDirectory without a database.
type fakeUserDirectory struct {
	users   map[string]*domain.User
	nextID  int64
	lookErr error
}

func newFakeUserDirectory() *fakeUserDirectory {
	return &fakeUserDirectory{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserDirectory) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserDirectory) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.lookErr != nil {
		return nil, f.lookErr
	}
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserDirectory) Create(_ context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.Username] = u
	return nil
}

func newAuthRouter(users UserDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	service.InitJWT("test-secret")
	h := &Handler{Users: users}

	r := gin.New()
	r.POST("/auth", h.Auth)
	return r
}

func TestAuthProvisionsNewUser(t *testing.T) {
	r := newAuthRouter(newFakeUserDirectory())

	w := doJSON(t, r, http.MethodPost, "/auth", gin.H{"username": "alice"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username    string `json:"username"`
			CharBalance int64  `json:"char_balance"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}
	if resp.User.CharBalance != service.MaxCharStorage {
		t.Fatalf("char_balance = %d; want %d", resp.User.CharBalance, service.MaxCharStorage)
	}
}

func TestAuthReturnsExistingUser(t *testing.T) {
	users := newFakeUserDirectory()
	users.users["bob"] = &domain.User{ID: 9, Username: "bob", CharBalance: 40}
	r := newAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/auth", gin.H{"username": "bob"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}
	if len(users.users) != 1 {
		t.Fatalf("existing user must not be re-provisioned")
	}
}

// A store outage during lookup must surface as 503, not as a doomed
// provisioning attempt.
func TestAuthStoreOutage(t *testing.T) {
	users := newFakeUserDirectory()
	users.lookErr = errors.New("connection refused")
	r := newAuthRouter(users)

	w := doJSON(t, r, http.MethodPost, "/auth", gin.H{"username": "carol"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503 (%s)", w.Code, w.Body.String())
	}
	if len(users.users) != 0 {
		t.Fatalf("no user must be created during an outage")
	}
}
