package menu

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
)

// Service lists the kiosk menu for a POS session.
type Service interface {
	ListCategories(ctx context.Context, token string) ([]Category, error)
	ListItems(ctx context.Context, token, categoryID string) ([]MenuItem, error)
}

// foodsSource is satisfied by the menu read-through cache.
type foodsSource interface {
	Get(ctx context.Context, token string) ([]pos.RawFood, error)
}

type service struct {
	foods foodsSource
}

func NewService(foods foodsSource) (Service, error) {
	if foods == nil {
		return nil, fmt.Errorf("foods source is required")
	}
	return &service{foods: foods}, nil
}

// ListCategories returns the distinct categories of available items, sorted by name.
// Items without a category id are left out.
func (s *service) ListCategories(ctx context.Context, token string) ([]Category, error) {
	items, err := s.available(ctx, token)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Category)
	order := make([]string, 0)
	for _, entry := range items {
		item := entry.item
		if item.Category == "" {
			continue
		}
		existing, ok := byID[item.Category]
		if !ok {
			byID[item.Category] = &Category{ID: item.Category, Name: item.CategoryName, Image: entry.categoryImage}
			order = append(order, item.Category)
			continue
		}
		if existing.Image == "" {
			existing.Image = entry.categoryImage
		}
	}

	categories := make([]Category, 0, len(order))
	for _, id := range order {
		categories = append(categories, *byID[id])
	}
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Name != categories[j].Name {
			return categories[i].Name < categories[j].Name
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

// ListItems returns available items in POS order, optionally restricted to one category.
func (s *service) ListItems(ctx context.Context, token, categoryID string) ([]MenuItem, error) {
	items, err := s.available(ctx, token)
	if err != nil {
		return nil, err
	}

	categoryID = strings.TrimSpace(categoryID)
	out := make([]MenuItem, 0, len(items))
	for _, entry := range items {
		if categoryID != "" && entry.item.Category != categoryID {
			continue
		}
		out = append(out, entry.item)
	}
	return out, nil
}

type normalized struct {
	item          MenuItem
	categoryImage string
}

func (s *service) available(ctx context.Context, token string) ([]normalized, error) {
	foods, err := s.foods.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]normalized, 0, len(foods))
	for _, raw := range foods {
		item := Normalize(raw)
		if !item.Available {
			continue
		}
		out = append(out, normalized{item: item, categoryImage: raw.Category.Image})
	}
	return out, nil
}
