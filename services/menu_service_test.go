package services

import (
	"context"
	"errors"
	"testing"
	"treehouse/libs"
	"treehouse/models"
	"treehouse/repositories"
)

func newTestMenuService(t *testing.T) *MenuService {
	t.Helper()
	images, err := libs.NewImageResolver("", "", "", "")
	if err != nil {
		t.Fatalf("NewImageResolver: %v", err)
	}
	return NewMenuService(repositories.NewStaticMenuRepository(), images)
}

func TestMenuServiceCategoryFilter(t *testing.T) {
	s := newTestMenuService(t)

	items, err := s.ListItems(context.Background(), false, models.CategoryMains)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d mains, want 3", len(items))
	}
	for _, item := range items {
		if item.Category != models.CategoryMains {
			t.Errorf("item %q has category %q", item.ID, item.Category)
		}
	}
}

func TestMenuServiceCategoriesOrder(t *testing.T) {
	s := newTestMenuService(t)

	categories, err := s.Categories(context.Background(), false)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}

	want := []string{
		models.CategoryStarters,
		models.CategoryMains,
		models.CategoryDesserts,
		models.CategoryCocktails,
		models.CategoryWine,
	}
	if len(categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(categories), len(want))
	}
	total := 0
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("category %d = %q, want %q", i, categories[i].Name, name)
		}
		total += len(categories[i].Items)
	}
	if total != 11 {
		t.Errorf("categories hold %d items, want 11", total)
	}
}

func TestMenuServiceGetItem(t *testing.T) {
	s := newTestMenuService(t)
	ctx := context.Background()

	item, err := s.GetItem(ctx, false, "9")
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if item.Name != "Espresso Martini" {
		t.Errorf("GetItem(9) = %q", item.Name)
	}

	if _, err := s.GetItem(ctx, false, "e1"); !errors.Is(err, ErrMenuItemNotFound) {
		t.Errorf("members item served from public catalog: %v", err)
	}

	item, err = s.GetItem(ctx, true, "e1")
	if err != nil || item.Name != "Wagyu Beef Tasting" {
		t.Errorf("GetItem(members, e1) = %+v, %v", item, err)
	}
}

func TestMenuServiceIsMembersItem(t *testing.T) {
	s := newTestMenuService(t)

	tests := []struct {
		id   string
		want bool
	}{
		{"e1", true},
		{"e9", true},
		{"1", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		got, err := s.IsMembersItem(context.Background(), tt.id)
		if err != nil {
			t.Fatalf("IsMembersItem(%q): %v", tt.id, err)
		}
		if got != tt.want {
			t.Errorf("IsMembersItem(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
