package backend

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and demo mode.
type MemoryRepository struct {
	mu         sync.RWMutex
	categories []CategoryDoc
	products   []ProductDoc
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory catalog repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) ListCategories(_ context.Context) ([]CategoryDoc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CategoryDoc, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *MemoryRepository) InsertCategory(_ context.Context, doc CategoryDoc) (CategoryDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	r.categories = append(r.categories, doc)
	return doc, nil
}

func (r *MemoryRepository) UpdateCategory(_ context.Context, id string, patch CategoryPatch) (*CategoryDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID != id {
			continue
		}
		doc := r.categories[i]
		overlay(&doc.Name, patch.Name)
		overlay(&doc.Slug, patch.Slug)
		overlay(&doc.Image, patch.Image)
		overlay(&doc.MainHeading, patch.MainHeading)
		overlay(&doc.Content, patch.Content)
		overlay(&doc.MetaTitle, patch.MetaTitle)
		overlay(&doc.MetaDescription, patch.MetaDescription)
		overlay(&doc.Keywords, patch.Keywords)
		doc.UpdatedAt = time.Now()
		r.categories[i] = doc
		return &doc, nil
	}
	return nil, nil
}

func (r *MemoryRepository) DeleteCategory(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.categories {
		if r.categories[i].ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) ListProducts(_ context.Context) ([]ProductDoc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ProductDoc, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryRepository) InsertProduct(_ context.Context, doc ProductDoc) (ProductDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	r.products = append(r.products, doc)
	return doc, nil
}

func (r *MemoryRepository) UpdateProduct(_ context.Context, id string, patch ProductPatch) (*ProductDoc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		doc := r.products[i]
		overlay(&doc.Name, patch.Name)
		overlay(&doc.Category, patch.Category)
		overlay(&doc.Slug, patch.Slug)
		overlay(&doc.SKU, patch.SKU)
		overlay(&doc.Description, patch.Description)
		overlay(&doc.Price, patch.Price)
		overlay(&doc.PreviousPrice, patch.PreviousPrice)
		overlay(&doc.Stock, patch.Stock)
		overlay(&doc.Featured, patch.Featured)
		overlay(&doc.Image1, patch.Image1)
		overlay(&doc.Image2, patch.Image2)
		overlay(&doc.Image3, patch.Image3)
		overlay(&doc.Image4, patch.Image4)
		overlay(&doc.MetaTitle, patch.MetaTitle)
		overlay(&doc.MetaDescription, patch.MetaDescription)
		overlay(&doc.Keywords, patch.Keywords)
		doc.UpdatedAt = time.Now()
		r.products[i] = doc
		return &doc, nil
	}
	return nil, nil
}

func (r *MemoryRepository) DeleteProduct(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
