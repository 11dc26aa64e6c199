package property

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"estatehub/database"
	"estatehub/database/query"
	propertyRepo "estatehub/database/repository/property"
	"estatehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo keeps listings in insertion order and filters with
// ListingFilter.Matches.
type memRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	byID  map[primitive.ObjectID]models.Property
	views map[primitive.ObjectID]int
}

func newMemRepo() *memRepo {
	return &memRepo{byID: map[primitive.ObjectID]models.Property{}, views: map[primitive.ObjectID]int{}}
}

func (r *memRepo) Create(_ context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	p.Normalize()
	r.order = append(r.order, p.ID)
	r.byID[p.ID] = *p
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("find property: %w", database.ErrNotFound)
	}
	return &p, nil
}

func (r *memRepo) Update(_ context.Context, p *models.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[p.ID]
	if !ok {
		return database.ErrNotFound
	}
	// Images and creation data are never written by Update.
	p.Images, p.CreatedBy, p.CreatedAt = stored.Images, stored.CreatedBy, stored.CreatedAt
	p.Normalize()
	r.byID[p.ID] = *p
	return nil
}

func (r *memRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return database.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memRepo) window(items []models.Property, w query.Window) query.Page[models.Property] {
	start := int(w.Offset())
	if start > len(items) {
		start = len(items)
	}
	end := start + w.Limit
	if end > len(items) {
		end = len(items)
	}
	return query.NewPage(items[start:end], w, int64(len(items)))
}

func (r *memRepo) FindPage(_ context.Context, f query.ListingFilter, _ bson.D, w query.Window) (query.Page[models.Property], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Property
	for _, id := range r.order {
		p, ok := r.byID[id]
		if ok && f.Matches(&p) {
			matched = append(matched, p)
		}
	}
	return r.window(matched, w), nil
}

func (r *memRepo) Search(_ context.Context, q string, w query.Window) (query.Page[models.Property], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []models.Property
	for _, id := range r.order {
		p, ok := r.byID[id]
		if ok && p.Status == models.StatusAvailable && strings.Contains(strings.ToLower(p.Name+" "+p.Description), strings.ToLower(q)) {
			matched = append(matched, p)
		}
	}
	return r.window(matched, w), nil
}

func (r *memRepo) Featured(_ context.Context, limit int) ([]models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Property{}
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok && p.Featured && p.Status == models.StatusAvailable && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memRepo) IncrementViews(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id]++
	return nil
}

func (r *memRepo) AddImages(_ context.Context, id primitive.ObjectID, images []models.Image) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	p.Images = append(p.Images, images...)
	r.byID[id] = p
	return &p, nil
}

func (r *memRepo) Stats(context.Context) (*propertyRepo.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &propertyRepo.Stats{Total: int64(len(r.byID))}, nil
}

type recordedViews struct {
	mu  sync.Mutex
	ids []primitive.ObjectID
}

func (v *recordedViews) Record(id primitive.ObjectID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ids = append(v.ids, id)
}

type memImages struct {
	mu      sync.Mutex
	stored  map[string]string
	failOn  string
	deleted []string
}

func (m *memImages) Upload(_ context.Context, name string, r io.Reader) (models.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if name == m.failOn {
		return models.Image{}, errors.New("upload rejected")
	}
	b, _ := io.ReadAll(r)
	if m.stored == nil {
		m.stored = map[string]string{}
	}
	id := "props/" + name
	m.stored[id] = string(b)
	return models.Image{URL: "https://cdn.example/" + id, PublicID: id}, nil
}

func (m *memImages) Delete(_ context.Context, publicID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stored, publicID)
	m.deleted = append(m.deleted, publicID)
	return nil
}
