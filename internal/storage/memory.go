package storage

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/arzan03/ProductHub/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps users and products in process memory. It backs
// STORE_DRIVER=memory and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	clock    func() time.Time
	users    []models.User
	products []models.Product
}

// NewMemoryStore returns an empty store. A nil clock means time.Now.
func NewMemoryStore(clock func() time.Time) *MemoryStore {
	if clock == nil {
		clock = time.Now
	}
	return &MemoryStore{clock: clock}
}

// Users and Products expose the two halves of the store under the
// repository interfaces, whose Insert methods would otherwise collide.
func (m *MemoryStore) Users() UserStore       { return memoryUsers{m} }
func (m *MemoryStore) Products() ProductStore { return memoryProducts{m} }

type memoryUsers struct{ m *MemoryStore }

func (u memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u.m.mu.RLock()
	defer u.m.mu.RUnlock()

	for _, user := range u.m.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (u memoryUsers) Insert(_ context.Context, user *models.User) error {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()

	ts := now(u.m.clock)
	user.ID = primitive.NewObjectID()
	user.CreatedAt = ts
	user.UpdatedAt = ts
	u.m.users = append(u.m.users, *user)
	return nil
}

type memoryProducts struct{ m *MemoryStore }

func (p memoryProducts) Insert(_ context.Context, product *models.Product) error {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()

	ts := now(p.m.clock)
	product.ID = primitive.NewObjectID()
	product.CreatedAt = ts
	product.UpdatedAt = ts
	p.m.products = append(p.m.products, *product)
	return nil
}

func (p memoryProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	p.m.mu.RLock()
	defer p.m.mu.RUnlock()

	i := p.m.indexOf(objID)
	if i < 0 {
		return nil, ErrNotFound
	}
	found := p.m.products[i]
	return &found, nil
}

func (p memoryProducts) UpdateByID(_ context.Context, id string, in models.ProductInput) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	p.m.mu.Lock()
	defer p.m.mu.Unlock()

	i := p.m.indexOf(objID)
	if i < 0 {
		return nil
	}
	product := &p.m.products[i]
	product.Name = in.Name
	product.Price = in.Price
	product.Category = in.Category
	product.Company = in.Company
	product.UserID = in.UserID
	product.UpdatedAt = now(p.m.clock)
	return nil
}

func (p memoryProducts) DeleteByID(_ context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	p.m.mu.Lock()
	defer p.m.mu.Unlock()

	i := p.m.indexOf(objID)
	if i < 0 {
		return 0, nil
	}
	p.m.products = append(p.m.products[:i], p.m.products[i+1:]...)
	return 1, nil
}

func (p memoryProducts) ListByCreatedDesc(_ context.Context) ([]models.Product, error) {
	p.m.mu.RLock()
	products := make([]models.Product, len(p.m.products))
	copy(products, p.m.products)
	p.m.mu.RUnlock()

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) > 0
	})
	return products, nil
}

func (p memoryProducts) Search(_ context.Context, pattern string) ([]models.Product, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("search pattern: %w", err)
	}

	p.m.mu.RLock()
	defer p.m.mu.RUnlock()

	products := []models.Product{}
	for _, product := range p.m.products {
		if re.MatchString(product.Name) || re.MatchString(product.Company) || re.MatchString(product.Category) {
			products = append(products, product)
		}
	}
	return products, nil
}

// indexOf must be called with mu held.
func (m *MemoryStore) indexOf(id primitive.ObjectID) int {
	for i := range m.products {
		if m.products[i].ID == id {
			return i
		}
	}
	return -1
}
