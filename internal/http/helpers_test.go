package http_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	_ "github.com/tazhibayda/trade-service/docs"
	"github.com/tazhibayda/trade-service/internal/config"
	"github.com/tazhibayda/trade-service/internal/domain"
	api "github.com/tazhibayda/trade-service/internal/http"
	"github.com/tazhibayda/trade-service/internal/queue"
	"github.com/tazhibayda/trade-service/internal/repo"
)

// memStore is an in-memory stand-in for *repo.Store with the same
// observable semantics: clamped guarded decrement, upsert-on-import,
// idempotent record removal, opaque-id fallback (any string key works).
type memStore struct {
	mu       sync.Mutex
	seq      int
	products map[string]domain.Product
	users    map[string]domain.User
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]domain.Product),
		users:    make(map[string]domain.User),
	}
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) seed(id string, p domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	p.CreatedAt = time.Unix(int64(m.seq), 0).UTC()
	m.products[id] = p
}

func (m *memStore) ListProducts(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memStore) ListLatest(_ context.Context, n int) ([]domain.Product, error) {
	out, _ := m.ListProducts(context.Background())
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *memStore) ListByOwner(_ context.Context, email string) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Product{}
	for _, p := range m.products {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *memStore) CreateProduct(_ context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Unix(int64(m.seq), 0).UTC()
	m.products[p.ID.Hex()] = *p
	return nil
}

func (m *memStore) UpdateProduct(_ context.Context, id string, in *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	p.ProductName = in.ProductName
	p.Image = in.Image
	p.Price = in.Price
	p.OriginCountry = in.OriginCountry
	p.Rating = in.Rating
	p.AvailableQuantity = in.AvailableQuantity
	m.products[id] = p
	cp := p
	return &cp, nil
}

func (m *memStore) DeleteProduct(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memStore) RegisterUser(_ context.Context, u *domain.User, admin bool) (*domain.User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[u.UID]; ok {
		if admin && existing.Role != domain.RoleAdmin {
			existing.Role = domain.RoleAdmin
			m.users[u.UID] = existing
		}
		cp := existing
		return &cp, true, nil
	}
	u.Role = domain.RoleUser
	if admin {
		u.Role = domain.RoleAdmin
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	m.users[u.UID] = *u
	cp := *u
	return &cp, false, nil
}

func (m *memStore) ImportProduct(_ context.Context, productID, userID string, quantity int) (*repo.ImportResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	transfer := quantity
	if p.AvailableQuantity < transfer {
		transfer = p.AvailableQuantity
	}
	if transfer <= 0 {
		return nil, repo.ErrOutOfStock
	}
	p.AvailableQuantity -= transfer
	m.products[productID] = p

	u, ok := m.users[userID]
	if !ok {
		u = domain.User{UID: userID, Role: domain.RoleUser, CreatedAt: time.Now().UTC()}
	}
	u.Imports = append(u.Imports, domain.ImportRecord{
		ProductID:        productID,
		ImportedQuantity: transfer,
		Date:             time.Now().UTC(),
	})
	m.users[userID] = u

	return &repo.ImportResult{
		ImportedQuantity:  transfer,
		AvailableQuantity: p.AvailableQuantity,
	}, nil
}

func (m *memStore) ListImports(_ context.Context, userID string) ([]domain.ImportedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.ImportedProduct{}
	u, ok := m.users[userID]
	if !ok {
		return out, nil
	}
	for _, rec := range u.Imports {
		p, ok := m.products[rec.ProductID]
		if !ok {
			continue
		}
		out = append(out, domain.ImportedProduct{
			Product:          p,
			ImportedQuantity: rec.ImportedQuantity,
			Date:             rec.Date,
		})
	}
	return out, nil
}

func (m *memStore) RemoveImport(_ context.Context, userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil
	}
	kept := u.Imports[:0]
	for _, rec := range u.Imports {
		if rec.ProductID != productID {
			kept = append(kept, rec)
		}
	}
	u.Imports = kept
	m.users[userID] = u
	return nil
}

type testEnv struct {
	Store  *memStore
	Router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ms := newMemStore()
	cfg := config.Config{AdminEmails: []string{"boss@trade.local"}}
	h := api.NewHandler(ms, nil, cfg, queue.NewNoop())

	return &testEnv{Store: ms, Router: api.NewRouter(h)}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.Router.ServeHTTP(w, req)
	return w
}
