package models

const (
	CategoryStarters        = "starters"
	CategoryMains           = "mains"
	CategoryDesserts        = "desserts"
	CategoryCocktails       = "cocktails"
	CategoryWine            = "wine"
	CategoryExclusive       = "exclusive"
	CategoryDessert         = "dessert"
	CategoryExclusiveDrinks = "exclusive-drinks"
)

// MenuItem is a catalog entry. Catalogs are seeded at deploy time and never
// mutated while serving.
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	IsMembers   bool   `json:"isMembers"`
}

type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
