package catalog

func int64Ptr(value int64) *int64 {
	return &value
}

// DefaultProducts is the fixed-at-build catalog the storefront ships with.
var DefaultProducts = []Product{
	{
		ID:            "1",
		Name:          "Wireless Bluetooth Headphones",
		Price:         10999,
		OriginalPrice: int64Ptr(14999),
		Image:         "https://images.unsplash.com/photo-1609255386725-b9b6a8ad829c?w=1080",
		Category:      "Electronics",
		Rating:        4.5,
		ReviewCount:   1247,
		Description:   "Premium wireless headphones with active noise cancellation, 30-hour battery life, and studio-quality sound.",
		InStock:       true,
		Featured:      true,
	},
	{
		ID:          "2",
		Name:        "Premium Smartphone",
		Price:       65999,
		Image:       "https://images.unsplash.com/photo-1641457474122-5bce8b622ace?w=1080",
		Category:    "Electronics",
		Rating:      4.8,
		ReviewCount: 892,
		Description: "Latest flagship smartphone with advanced camera system, lightning-fast processor, and all-day battery life.",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:            "3",
		Name:          "Modern Laptop",
		Price:         105999,
		OriginalPrice: int64Ptr(124999),
		Image:         "https://images.unsplash.com/photo-1754928864131-21917af96dfd?w=1080",
		Category:      "Electronics",
		Rating:        4.6,
		ReviewCount:   634,
		Description:   "Ultra-thin laptop with powerful performance, stunning display, and exceptional build quality.",
		InStock:       true,
	},
	{
		ID:          "4",
		Name:        "Classic White Sneakers",
		Price:       7499,
		Image:       "https://images.unsplash.com/photo-1625622176741-a21f738d0756?w=1080",
		Category:    "Fashion",
		Rating:      4.3,
		ReviewCount: 512,
		Description: "Timeless white sneakers with premium materials and all-day comfort. Perfect for any occasion.",
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          "5",
		Name:        "Luxury Minimal Watch",
		Price:       24999,
		Image:       "https://images.unsplash.com/photo-1561634343-3a2787687046?w=1080",
		Category:    "Fashion",
		Rating:      4.7,
		ReviewCount: 328,
		Description: "Elegant minimalist watch with precision Swiss movement and premium leather strap.",
		InStock:     true,
	},
	{
		ID:          "6",
		Name:        "Premium Coffee Maker",
		Price:       20999,
		Image:       "https://images.unsplash.com/photo-1607273177147-e7304c4d5d6c?w=1080",
		Category:    "Home & Kitchen",
		Rating:      4.4,
		ReviewCount: 756,
		Description: "Professional-grade coffee maker with precise temperature control and programmable settings.",
		InStock:     true,
	},
}
