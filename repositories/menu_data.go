package repositories

import "treehouse/models"

var publicMenu = []models.MenuItem{
	{
		ID:          "1",
		Name:        "Roasted Beet & Goat Cheese Salad",
		Description: "Locally sourced golden and ruby beets, whipped goat cheese, candied walnuts, microgreens, and aged balsamic reduction. A perfect harmony of earth and elegance.",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryStarters,
	},
	{
		ID:          "2",
		Name:        "Pan-Seared Halibut",
		Description: "Fresh Pacific halibut with citrus quinoa, roasted fennel, and saffron butter sauce. Sustainably caught and prepared with Mediterranean influences.",
		Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryMains,
	},
	{
		ID:          "3",
		Name:        "Heritage Pork Tenderloin",
		Description: "Herb-crusted pork tenderloin with rosemary-infused fingerling potatoes, seasonal vegetables, and apple-sage jus. Sourced from local heritage farms.",
		Image:       "https://images.unsplash.com/photo-1600891964092-4316c288032e?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryMains,
	},
	{
		ID:          "4",
		Name:        "Wild Mushroom Risotto",
		Description: "Creamy Arborio rice with foraged wild mushrooms, truffle oil, aged Parmesan, and fresh herbs. A vegetarian celebration of forest flavors.",
		Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryMains,
	},
	{
		ID:          "5",
		Name:        "Burrata & Heirloom Tomatoes",
		Description: "Fresh burrata cheese with colorful heirloom tomatoes, basil oil, sea salt flakes, and toasted sourdough. Simple ingredients, extraordinary execution.",
		Image:       "https://images.unsplash.com/photo-1608897013039-887f21d8c804?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryStarters,
	},
	{
		ID:          "6",
		Name:        "Lavender Honey Cheesecake",
		Description: "House-made cheesecake infused with local lavender honey, graham cracker crust, and fresh berry compote. A delicate finish to your dining experience.",
		Image:       "https://images.unsplash.com/photo-1565958011703-44f9829ba187?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryDesserts,
	},
	{
		ID:          "7",
		Name:        "Amaretto Sour",
		Description: "Classic cocktail with amaretto liqueur, fresh lemon juice, simple syrup, and a whisper of egg white foam. Garnished with a cherry and orange twist.",
		Image:       "/amaretto sour.jpg",
		Category:    models.CategoryCocktails,
	},
	{
		ID:          "8",
		Name:        "Appletini",
		Description: "Crisp and refreshing vodka-based cocktail with sour apple schnapps and fresh lime juice. Served in a chilled martini glass with a thin apple slice.",
		Image:       "https://images.unsplash.com/photo-1609951651556-5334e2706168?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryCocktails,
	},
	{
		ID:          "9",
		Name:        "Espresso Martini",
		Description: "Rich and sophisticated blend of premium vodka, fresh espresso, coffee liqueur, and simple syrup. Topped with three coffee beans for good fortune.",
		Image:       "/espressomartini.jpg",
		Category:    models.CategoryCocktails,
	},
	{
		ID:          "10",
		Name:        "Pinot Noir Selection",
		Description: "Curated selection of premium Pinot Noir wines from renowned vineyards. Rich, earthy notes with hints of cherry and spice. Perfect pairing for our cuisine.",
		Image:       "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryWine,
	},
	{
		ID:          "11",
		Name:        "Chardonnay Reserve",
		Description: "Elegant white wine with notes of vanilla, oak, and tropical fruits. Perfectly balanced acidity with a smooth, lingering finish.",
		Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryWine,
	},
}

var membersMenu = []models.MenuItem{
	{
		ID:          "e1",
		Name:        "Wagyu Beef Tasting",
		Description: "A curated selection of A5 Wagyu cuts, each prepared differently to showcase the exceptional marbling and flavor. Accompanied by artisanal salts and house-made sauces.",
		Image:       "https://images.unsplash.com/photo-1558030006-450675393462?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusive,
		IsMembers:   true,
	},
	{
		ID:          "e2",
		Name:        "Truffle & Caviar Experience",
		Description: "Fresh black truffle shavings over warm potato blinis, topped with Ossetra caviar and crème fraîche. An indulgent celebration of luxury ingredients.",
		Image:       "https://images.unsplash.com/photo-1553909489-cd47e0ef937f?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusive,
		IsMembers:   true,
	},
	{
		ID:          "e3",
		Name:        "Chef's Secret Garden",
		Description: "A seasonal tasting of rare heirloom vegetables from our private garden, each prepared with techniques known only to our kitchen. Changes monthly with the harvest.",
		Image:       "https://images.unsplash.com/photo-1490645935967-10de6ba17061?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusive,
		IsMembers:   true,
	},
	{
		ID:          "e4",
		Name:        "Vintage Wine Pairing Flight",
		Description: "Five exceptional wines from our private cellar, each paired with complementary small plates. Includes vintages not available elsewhere.",
		Image:       "https://images.unsplash.com/photo-1506377247377-2a5b3b417ebb?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusive,
		IsMembers:   true,
	},
	{
		ID:          "e5",
		Name:        "Molecular Gastronomy Surprise",
		Description: "Our chef's experimental creations using molecular gastronomy techniques. A seven-course journey through unexpected textures and flavor combinations.",
		Image:       "https://images.unsplash.com/photo-1551218808-94e220e084d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusive,
		IsMembers:   true,
	},
	{
		ID:          "e6",
		Name:        "Golden Honey Soufflé",
		Description: "A delicate soufflé infused with rare Manuka honey, served with gold leaf and vanilla bean ice cream. Available only to our most valued guests.",
		Image:       "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryDessert,
		IsMembers:   true,
	},
	{
		ID:          "e7",
		Name:        "Platinum Champagne Service",
		Description: "Exclusive Dom Pérignon vintage selection served with personalized crystal flutes and caviar accompaniment. A celebration of life's finest moments.",
		Image:       "https://images.unsplash.com/photo-1547595628-c61a29f496f0?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusiveDrinks,
		IsMembers:   true,
	},
	{
		ID:          "e8",
		Name:        "Royal Manhattan",
		Description: "Premium aged bourbon, sweet vermouth, and rare bitters aged in oak barrels for 30 days. Garnished with a Luxardo cherry and served in crystal.",
		Image:       "https://images.unsplash.com/photo-1581546910019-8b9d51e2c3aa?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusiveDrinks,
		IsMembers:   true,
	},
	{
		ID:          "e9",
		Name:        "Truffle Old Fashioned",
		Description: "House-infused truffle bourbon with demerara sugar and aromatic bitters. An indulgent twist on the classic cocktail, finished with truffle shavings.",
		Image:       "https://images.unsplash.com/photo-1536935338788-846bb9981813?ixlib=rb-4.0.3&auto=format&fit=crop&w=2940&q=80",
		Category:    models.CategoryExclusiveDrinks,
		IsMembers:   true,
	},
}
