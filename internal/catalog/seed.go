package catalog

// SeedProducts is the demo inventory for the storefront. Seller ids are
// stable so messaging threads can reference them.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "iPhone 12 Pro 128GB",
			Price:         7500000,
			OriginalPrice: 12000000,
			Discount:      38,
			Condition:     ConditionLikeNew,
			Image:         "https://placehold.co/600x600?text=iPhone+12+Pro",
			Rating:        4.8,
			ReviewCount:   156,
			Seller: Seller{
				ID: "s1", Name: "TechStore Jakarta", Avatar: "https://placehold.co/100x100",
				Rating: 4.9, ResponseTime: "< 1 hour", TotalSales: 1240, Verified: true,
			},
			IsPremium:   true,
			Category:    "Electronics",
			Description: "Kondisi mulus seperti baru, fullset box, charger original, no minus",
			Location:    "Jakarta Selatan",
			Stock:       1,
		},
		{
			ID:            "2",
			Name:          "Nike Air Max 270 React",
			Price:         850000,
			OriginalPrice: 2100000,
			Discount:      60,
			Condition:     ConditionGood,
			Image:         "https://placehold.co/600x600?text=Air+Max+270",
			Rating:        4.6,
			ReviewCount:   89,
			Seller: Seller{
				ID: "s2", Name: "SneakerHub", Avatar: "https://placehold.co/100x100",
				Rating: 4.7, ResponseTime: "< 2 hours", TotalSales: 560, Verified: true,
			},
			Category:    "Fashion",
			Description: "Size 42, kondisi 85%, no box",
			Location:    "Bandung",
			Stock:       1,
		},
		{
			ID:            "3",
			Name:          "MacBook Pro 2019 13\"",
			Price:         12500000,
			OriginalPrice: 24000000,
			Discount:      48,
			Condition:     ConditionLikeNew,
			Image:         "https://placehold.co/600x600?text=MacBook+Pro",
			Rating:        4.9,
			ReviewCount:   203,
			Seller: Seller{
				ID: "s3", Name: "LaptopPremium", Avatar: "https://placehold.co/100x100",
				Rating: 4.9, ResponseTime: "< 30 mins", TotalSales: 890, Verified: true,
			},
			IsPremium:   true,
			Category:    "Electronics",
			Description: "i5 8GB RAM 256GB SSD, battery health 95%, no dent",
			Location:    "Surabaya",
			Stock:       1,
		},
		{
			ID:            "4",
			Name:          "IKEA Sofa 3 Seater",
			Price:         2500000,
			OriginalPrice: 5500000,
			Discount:      55,
			Condition:     ConditionGood,
			Image:         "https://placehold.co/600x600?text=IKEA+Sofa",
			Rating:        4.5,
			ReviewCount:   67,
			Seller: Seller{
				ID: "s4", Name: "FurnitureCo", Avatar: "https://placehold.co/100x100",
				Rating: 4.6, ResponseTime: "< 3 hours", TotalSales: 210, Verified: false,
			},
			Category:    "Furniture",
			Description: "Bahan fabric, warna grey, kondisi bersih terawat",
			Location:    "Tangerang",
			Stock:       1,
		},
		{
			ID:            "5",
			Name:          "Canon EOS M50 Kit",
			Price:         6800000,
			OriginalPrice: 10500000,
			Discount:      35,
			Condition:     ConditionLikeNew,
			Image:         "https://placehold.co/600x600?text=Canon+EOS+M50",
			Rating:        4.7,
			ReviewCount:   124,
			Seller: Seller{
				ID: "s5", Name: "CameraShop", Avatar: "https://placehold.co/100x100",
				Rating: 4.8, ResponseTime: "< 1 hour", TotalSales: 430, Verified: true,
			},
			IsPremium:   true,
			Category:    "Electronics",
			Description: "Shutter count rendah, lengkap dengan lensa kit 15-45mm",
			Location:    "Jakarta Pusat",
			Stock:       1,
		},
		{
			ID:            "6",
			Name:          "Adidas Ultraboost 21",
			Price:         1200000,
			OriginalPrice: 2800000,
			Discount:      57,
			Condition:     ConditionGood,
			Image:         "https://placehold.co/600x600?text=Ultraboost+21",
			Rating:        4.4,
			ReviewCount:   78,
			Seller: Seller{
				ID: "s6", Name: "RunnersPro", Avatar: "https://placehold.co/100x100",
				Rating: 4.5, ResponseTime: "< 2 hours", TotalSales: 340, Verified: false,
			},
			Category:    "Fashion",
			Description: "Size 43, kondisi bagus, masih empuk",
			Location:    "Bekasi",
			Stock:       1,
		},
		{
			ID:            "7",
			Name:          "Harry Potter Complete Set",
			Price:         650000,
			OriginalPrice: 1200000,
			Discount:      46,
			Condition:     ConditionGood,
			Image:         "https://placehold.co/600x600?text=Harry+Potter",
			Rating:        4.8,
			ReviewCount:   145,
			Seller: Seller{
				ID: "s7", Name: "BookLover", Avatar: "https://placehold.co/100x100",
				Rating: 4.7, ResponseTime: "< 4 hours", TotalSales: 520, Verified: false,
			},
			Category:    "Books",
			Description: "7 books, English version, paperback, kondisi buku bagus",
			Location:    "Yogyakarta",
			Stock:       1,
		},
		{
			ID:            "8",
			Name:          "PlayStation 4 Pro 1TB",
			Price:         3500000,
			OriginalPrice: 6500000,
			Discount:      46,
			Condition:     ConditionGood,
			Image:         "https://placehold.co/600x600?text=PS4+Pro",
			Rating:        4.6,
			ReviewCount:   189,
			Seller: Seller{
				ID: "s8", Name: "GamingHub", Avatar: "https://placehold.co/100x100",
				Rating: 4.8, ResponseTime: "< 1 hour", TotalSales: 760, Verified: true,
			},
			IsPremium:   true,
			Category:    "Electronics",
			Description: "Termasuk 2 stik, 5 game, kondisi normal lancar",
			Location:    "Semarang",
			Stock:       1,
		},
	}
}
