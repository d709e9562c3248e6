package services

import (
	"context"
	"errors"
	"treehouse/libs"
	"treehouse/models"
	"treehouse/repositories"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuService struct {
	repo   repositories.MenuRepository
	images *libs.ImageResolver
}

func NewMenuService(repo repositories.MenuRepository, images *libs.ImageResolver) *MenuService {
	return &MenuService{repo: repo, images: images}
}

// ListItems returns one catalog, optionally narrowed to a category.
func (s *MenuService) ListItems(ctx context.Context, members bool, category string) ([]models.MenuItem, error) {
	items, err := s.repo.ListItems(ctx, members)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		item.Image = s.images.Resolve(item.Image)
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *MenuService) GetItem(ctx context.Context, members bool, id string) (*models.MenuItem, error) {
	items, err := s.ListItems(ctx, members, "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// Categories groups a catalog by category in order of first appearance.
func (s *MenuService) Categories(ctx context.Context, members bool) ([]models.MenuCategory, error) {
	items, err := s.ListItems(ctx, members, "")
	if err != nil {
		return nil, err
	}

	categories := []models.MenuCategory{}
	index := map[string]int{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(categories)
			index[item.Category] = i
			categories = append(categories, models.MenuCategory{Name: item.Category, Items: []models.MenuItem{}})
		}
		categories[i].Items = append(categories[i].Items, item)
	}
	return categories, nil
}

// IsMembersItem reports whether id belongs to the members catalog. The
// client's own isMembers flag is never trusted for gating.
func (s *MenuService) IsMembersItem(ctx context.Context, id string) (bool, error) {
	items, err := s.repo.ListItems(ctx, true)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.ID == id {
			return true, nil
		}
	}
	return false, nil
}
