package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"loopcart/catalog"
	"loopcart/middleware"
	"loopcart/models"
	"loopcart/store"
	"loopcart/utils"
)

func init() {
	utils.JwtKey = []byte("controllers-test-secret")
}

// fakeUserStore is an in-memory store.UserStore with the same semantics as the
// Mongo implementation: unique emails, idempotent wishlist updates.
type fakeUserStore struct {
	users map[string]*models.User // keyed by id hex
	// failWith, when set, is returned by every method.
	failWith error
	// lastCtxHadDeadline records whether the most recent call carried a
	// request deadline.
	lastCtxHadDeadline bool
}

func (f *fakeUserStore) noteDeadline(ctx context.Context) {
	_, f.lastCtxHadDeadline = ctx.Deadline()
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	f.users[user.ID.Hex()] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) All(ctx context.Context) ([]models.User, error) {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return nil, f.failWith
	}
	all := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Hex() < all[j].ID.Hex() })
	return all, nil
}

func (f *fakeUserStore) AddToWishlist(ctx context.Context, id, productID string) ([]string, error) {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	for _, existing := range u.Wishlist {
		if existing == productID {
			return append([]string{}, u.Wishlist...), nil
		}
	}
	u.Wishlist = append(u.Wishlist, productID)
	return append([]string{}, u.Wishlist...), nil
}

func (f *fakeUserStore) RemoveFromWishlist(ctx context.Context, id, productID string) ([]string, error) {
	f.noteDeadline(ctx)
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	kept := []string{}
	for _, existing := range u.Wishlist {
		if existing != productID {
			kept = append(kept, existing)
		}
	}
	u.Wishlist = kept
	return append([]string{}, kept...), nil
}

// addUser seeds the fake store directly, bypassing the signup handler.
func addUser(t *testing.T, f *fakeUserStore, name, email, role string, wishlist ...string) *models.User {
	t.Helper()
	u := &models.User{
		Name:     name,
		Email:    email,
		Password: "$2a$10$fakedhashfakedhashfakedhashfakedhashfakedhashfakedha",
		Role:     role,
		Wishlist: append([]string{}, wishlist...),
	}
	require.NoError(t, f.Create(context.Background(), u))
	return u
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJSONAs(t, handler, method, target, body, nil)
}

// doJSONAs performs a request with optional authenticated claims attached, the
// way the auth middleware would.
func doJSONAs(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}, claims *utils.Claims) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	}

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func ctxWithClaims(r *http.Request, claims *utils.Claims) context.Context {
	return context.WithValue(r.Context(), middleware.UserContextKey, claims)
}

func claimsFor(u *models.User) *utils.Claims {
	return &utils.Claims{UserID: u.ID.Hex(), Email: u.Email}
}

// testCatalog writes a small product file and returns a reader over it.
func testCatalog(t *testing.T, productCount int) *catalog.Reader {
	t.Helper()

	products := make([]models.Product, 0, productCount)
	for i := 0; i < productCount; i++ {
		products = append(products, models.Product{
			ID:       string(rune('a' + i)),
			Title:    "Product " + string(rune('A'+i)),
			Brand:    "Brand",
			Category: "Category",
			Price:    float64(i + 1),
		})
	}
	raw, err := json.Marshal(products)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "product.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return catalog.NewReader(path)
}
