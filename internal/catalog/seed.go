package catalog

// Seed returns the fixed product set the catalog is populated with at
// startup. IDs are assigned here and never change.
func Seed() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Organic Carrots",
			Category:    CategoryVegetables,
			Description: "Fresh organic carrots perfect for restaurants and catering",
			ImageURL:    "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37",
			PricePerKg:  50,
			MinQuantity: 10,
			Available:   true,
		},
		{
			ID:          2,
			Name:        "Premium Apples",
			Category:    CategoryFruits,
			Description: "Crisp and sweet apples sourced directly from local orchards",
			ImageURL:    "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6",
			PricePerKg:  100,
			MinQuantity: 20,
			Available:   true,
		},
		{
			ID:          3,
			Name:        "Fresh Lettuce",
			Category:    CategoryVegetables,
			Description: "Hydroponically grown lettuce, perfect for salads and sandwiches",
			ImageURL:    "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1",
			PricePerKg:  50,
			MinQuantity: 5,
			Available:   true,
		},
		{
			ID:          4,
			Name:        "Bell Peppers Mix",
			Category:    CategoryVegetables,
			Description: "Colorful mix of red, yellow, and green bell peppers",
			ImageURL:    "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83",
			PricePerKg:  80,
			MinQuantity: 10,
			Available:   true,
		},
		{
			ID:          5,
			Name:        "Sweet Mangoes",
			Category:    CategoryFruits,
			Description: "Premium mangoes perfect for restaurants and juice bars",
			ImageURL:    "https://images.unsplash.com/photo-1601493700631-2b16ec4b4716",
			PricePerKg:  100,
			MinQuantity: 15,
			Available:   true,
		},
		{
			ID:          6,
			Name:        "Fresh Oranges",
			Category:    CategoryFruits,
			Description: "Juicy citrus oranges ideal for fresh juice and culinary use",
			ImageURL:    "https://images.unsplash.com/photo-1547514701-42782101795e",
			PricePerKg:  80,
			MinQuantity: 20,
			Available:   true,
		},
		{
			ID:          7,
			Name:        "Fresh Tomatoes",
			Category:    CategoryVegetables,
			Description: "Vine-ripened tomatoes perfect for salads and cooking",
			ImageURL:    "https://images.unsplash.com/photo-1592924357228-91a4daadcfea",
			PricePerKg:  50,
			MinQuantity: 10,
			Available:   true,
		},
		{
			ID:          8,
			Name:        "Green Beans",
			Category:    CategoryVegetables,
			Description: "Crisp and tender green beans for wholesale buyers",
			ImageURL:    "https://images.unsplash.com/photo-1567375698348-5d9d5ae99de0",
			PricePerKg:  50,
			MinQuantity: 8,
			Available:   true,
		},
		{
			ID:          9,
			Name:        "Fresh Berries Mix",
			Category:    CategoryFruits,
			Description: "Premium mix of strawberries, blueberries, and raspberries",
			ImageURL:    "https://images.unsplash.com/photo-1563746098251-d35aef196e83",
			PricePerKg:  70,
			MinQuantity: 5,
			Available:   true,
		},
	}
}
