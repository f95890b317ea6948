package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-api/internal/events"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

var errStoreDown = errors.New("store down")

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[string]model.Product
	failWith error
}

func newMemoryProductRepo(seed ...model.Product) *memoryProductRepo {
	r := &memoryProductRepo{products: make(map[string]model.Product)}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *memoryProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memoryProductRepo) FindAll(_ context.Context, f repository.ProductFilter) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Product{}
	kw := strings.ToLower(f.Keyword)
	for _, p := range r.products {
		if !f.IncludeInactive && !p.IsActive {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if kw != "" && !strings.Contains(strings.ToLower(p.Name+" "+strings.Join(p.Tags, " ")+" "+p.Description), kw) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (r *memoryProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memoryProductRepo) FindActiveByIDs(_ context.Context, ids []string) (map[string]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make(map[string]model.Product)
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.IsActive {
			out[id] = p
		}
	}
	return out, nil
}

func (r *memoryProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memoryProductRepo) Stats(_ context.Context, threshold int) (*repository.CatalogStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s repository.CatalogStats
	for _, p := range r.products {
		s.TotalProducts++
		if !p.IsActive {
			continue
		}
		s.ActiveProducts++
		if p.Stock < threshold {
			s.LowStockCount++
		}
		s.TotalValuation += p.Price * int64(p.Stock)
	}
	return &s, nil
}

func (r *memoryProductRepo) SeedDefaults(ctx context.Context) (int, error) {
	if len(r.products) > 0 {
		return 0, nil
	}
	seed := model.DefaultCatalog()
	for i := range seed {
		_ = r.Create(ctx, &seed[i])
	}
	return len(seed), nil
}

type memoryLeadRepo struct {
	leads []model.Lead
}

func (r *memoryLeadRepo) Create(_ context.Context, l *model.Lead) error {
	l.ID = uuid.NewString()
	r.leads = append(r.leads, *l)
	return nil
}

func (r *memoryLeadRepo) FindAll(context.Context) ([]model.Lead, error) {
	out := make([]model.Lead, len(r.leads))
	for i, l := range r.leads {
		out[len(r.leads)-1-i] = l
	}
	return out, nil
}

func (r *memoryLeadRepo) Count(context.Context) (int64, error) {
	return int64(len(r.leads)), nil
}

type memoryOrderRepo struct {
	orders []model.Order
}

func (r *memoryOrderRepo) Create(_ context.Context, o *model.Order) error {
	o.ID = uuid.NewString()
	r.orders = append(r.orders, *o)
	return nil
}

func (r *memoryOrderRepo) FindAll(context.Context) ([]model.Order, error) {
	out := make([]model.Order, len(r.orders))
	for i, o := range r.orders {
		out[len(r.orders)-1-i] = o
	}
	return out, nil
}

func (r *memoryOrderRepo) FindSince(_ context.Context, since time.Time) ([]model.Order, error) {
	var out []model.Order
	for _, o := range r.orders {
		if !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memoryOrderRepo) Summary(context.Context) (*repository.OrderSummary, error) {
	var s repository.OrderSummary
	for _, o := range r.orders {
		s.TotalOrders++
		s.TotalRevenue += o.Total
	}
	return &s, nil
}

type capturePublisher struct {
	events []events.Event
}

func (c *capturePublisher) Publish(_ context.Context, e events.Event) error {
	c.events = append(c.events, e)
	return nil
}

func (c *capturePublisher) Close() error { return nil }

func (c *capturePublisher) actions() []string {
	out := make([]string, len(c.events))
	for i, e := range c.events {
		out[i] = e.Action
	}
	return out
}

// withClock pins nowFunc for the duration of a test.
func withClock(t interface{ Cleanup(func()) }, at time.Time) {
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func ptr[T any](v T) *T { return &v }
