package repository

import (
	"time"

	"github.com/sankofamarket/catalog-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func fptr(f float64) *float64 { return &f }

// SeedCategories returns the demo category hierarchy used by the in-memory
// repositories and the test suite.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			ID: "1", Name: "Women's Fashion", Description: "Dresses, tops and wraps", IsActive: true, CreatedAt: date(2025, 1, 10),
			SubCategories: []models.SubCategory{
				{
					ID: "1-1", CategoryID: "1", Name: "Dresses", Description: "Occasion and everyday dresses", IsActive: true, CreatedAt: date(2025, 1, 10),
					Types: []models.SubCategoryType{
						{ID: "1-1-1", SubCategoryID: "1-1", Name: "Kente Dresses", Description: "Dresses in woven kente", IsActive: true, CreatedAt: date(2025, 1, 10)},
						{ID: "1-1-2", SubCategoryID: "1-1", Name: "Ankara Dresses", Description: "Dresses in ankara wax print", IsActive: true, CreatedAt: date(2025, 1, 10)},
					},
				},
				{
					ID: "1-2", CategoryID: "1", Name: "Tops", Description: "Blouses and shirts", IsActive: true, CreatedAt: date(2025, 1, 10),
					Types: []models.SubCategoryType{
						{ID: "1-2-1", SubCategoryID: "1-2", Name: "Printed Blouses", Description: "Wax print blouses", IsActive: true, CreatedAt: date(2025, 1, 10)},
					},
				},
			},
		},
		{
			ID: "2", Name: "Men's Fashion", Description: "Shirts and traditional wear", IsActive: true, CreatedAt: date(2025, 1, 10),
			SubCategories: []models.SubCategory{
				{
					ID: "2-1", CategoryID: "2", Name: "Shirts", Description: "Casual and ceremonial shirts", IsActive: true, CreatedAt: date(2025, 1, 10),
					Types: []models.SubCategoryType{
						{ID: "2-1-1", SubCategoryID: "2-1", Name: "Kente Shirts", Description: "Shirts in woven kente", IsActive: true, CreatedAt: date(2025, 1, 10)},
					},
				},
			},
		},
		{
			ID: "3", Name: "Beauty & Care", Description: "Natural skincare", IsActive: true, CreatedAt: date(2025, 1, 12),
			SubCategories: []models.SubCategory{
				{
					ID: "3-1", CategoryID: "3", Name: "Skincare", Description: "Butters, soaps and oils", IsActive: true, CreatedAt: date(2025, 1, 12),
					Types: []models.SubCategoryType{
						{ID: "3-1-1", SubCategoryID: "3-1", Name: "Shea Butters", Description: "Raw and whipped shea", IsActive: true, CreatedAt: date(2025, 1, 12)},
						{ID: "3-1-2", SubCategoryID: "3-1", Name: "Black Soaps", Description: "Traditional black soap", IsActive: true, CreatedAt: date(2025, 1, 12)},
					},
				},
			},
		},
		{
			ID: "4", Name: "Home & Living", Description: "Handcrafted homeware", IsActive: true, CreatedAt: date(2025, 1, 15),
			SubCategories: []models.SubCategory{
				{
					ID: "4-1", CategoryID: "4", Name: "Decor", Description: "Baskets, textiles and carvings", IsActive: true, CreatedAt: date(2025, 1, 15),
					Types: []models.SubCategoryType{
						{ID: "4-1-1", SubCategoryID: "4-1", Name: "Woven Baskets", Description: "Bolga and rattan baskets", IsActive: true, CreatedAt: date(2025, 1, 15)},
					},
				},
			},
		},
		{
			ID: "5", Name: "Jewelry & Accessories", Description: "Beadwork and brass", IsActive: true, CreatedAt: date(2025, 1, 18),
			SubCategories: []models.SubCategory{
				{
					ID: "5-1", CategoryID: "5", Name: "Jewelry", Description: "Necklaces, bracelets and earrings", IsActive: true, CreatedAt: date(2025, 1, 18),
					Types: []models.SubCategoryType{
						{ID: "5-1-1", SubCategoryID: "5-1", Name: "Beaded Jewelry", Description: "Hand-strung glass beads", IsActive: true, CreatedAt: date(2025, 1, 18)},
					},
				},
			},
		},
	}
}

// SeedProducts returns the demo product collection. Ids, prices and
// classifications are referenced by the test suite, so changes here ripple.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Kente Royal Dress", Description: "A-line dress cut from authentic handwoven cloth",
			Price: 38, Rating: 4.8, Reviews: 124,
			Vendor: models.VendorRef{Name: "Adwoa Textiles"},
			Image:  "https://cdn.sankofamarket.com/p/1/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/1/main.jpg"},
			CategoryID: "1", SubCategoryID: "1-1", SubCategoryTypeID: "1-1-1",
			Tags:    models.StringList{"handwoven", "dress", "occasion"},
			InStock: true, StockQuantity: 14, IsFeatured: true,
			Specifications:   models.StringMap{"material": "woven cotton blend"},
			ProductionMethod: models.ProductionHandwoven, Status: models.ProductStatusActive, Sales: 61,
			CreatedAt: date(2025, 2, 3), UpdatedAt: date(2025, 3, 20),
		},
		{
			ID: "2", Name: "Ankara Flare Dress", Description: "Flared midi dress in bold wax print",
			Price: 42, Rating: 4.6, Reviews: 89,
			Vendor: models.VendorRef{Name: "Nana Couture"},
			Image:  "https://cdn.sankofamarket.com/p/2/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/2/main.jpg"},
			CategoryID: "1", SubCategoryID: "1-1", SubCategoryTypeID: "1-1-2",
			Tags:    models.StringList{"ankara", "dress"},
			InStock: true, StockQuantity: 9,
			Specifications:   models.StringMap{"material": "100% cotton"},
			ProductionMethod: models.ProductionHandmade, Status: models.ProductStatusActive, Sales: 44,
			CreatedAt: date(2025, 2, 8), UpdatedAt: date(2025, 3, 18),
		},
		{
			ID: "3", Name: "Ankara Maxi Dress", Description: "Floor-length wax print dress with headwrap",
			Price: 45, OriginalPrice: fptr(55), Rating: 4.9, Reviews: 210,
			Vendor: models.VendorRef{Name: "Adwoa Textiles"},
			Image:  "https://cdn.sankofamarket.com/p/3/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/3/main.jpg", "https://cdn.sankofamarket.com/p/3/alt.jpg"},
			CategoryID: "1", SubCategoryID: "1-1", SubCategoryTypeID: "1-1-2",
			Tags:    models.StringList{"ankara", "dress", "maxi"},
			InStock: true, StockQuantity: 5, IsFeatured: true, IsOnSale: true,
			Specifications:   models.StringMap{"material": "100% cotton", "includes": "matching headwrap"},
			ProductionMethod: models.ProductionHandmade, Status: models.ProductStatusActive, Sales: 127,
			CreatedAt: date(2025, 1, 22), UpdatedAt: date(2025, 3, 25),
		},
		{
			ID: "4", Name: "Men's Kente Shirt", Description: "Short-sleeve shirt with woven accent panels",
			Price: 35, Rating: 4.7, Reviews: 67,
			Vendor: models.VendorRef{Name: "Kofi & Sons"},
			Image:  "https://cdn.sankofamarket.com/p/4/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/4/main.jpg"},
			CategoryID: "2", SubCategoryID: "2-1", SubCategoryTypeID: "2-1-1",
			Tags:    models.StringList{"shirt", "men"},
			InStock: true, StockQuantity: 22,
			Specifications:   models.StringMap{"fit": "regular"},
			ProductionMethod: models.ProductionHandwoven, Status: models.ProductStatusActive, Sales: 33,
			CreatedAt: date(2025, 2, 14), UpdatedAt: date(2025, 3, 10),
		},
		{
			ID: "5", Name: "Raw Shea Butter", Description: "Unrefined shea butter from northern cooperatives",
			Price: 24, Rating: 4.5, Reviews: 143,
			Vendor: models.VendorRef{Name: "Abena Naturals"},
			Image:  "https://cdn.sankofamarket.com/p/5/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/5/main.jpg"},
			CategoryID: "3", SubCategoryID: "3-1", SubCategoryTypeID: "3-1-1",
			Tags:    models.StringList{"shea", "organic", "skincare"},
			InStock: true, StockQuantity: 60,
			Specifications:   models.StringMap{"weight": "250g"},
			ProductionMethod: models.ProductionOrganic, Status: models.ProductStatusActive, Sales: 98,
			CreatedAt: date(2025, 1, 30), UpdatedAt: date(2025, 3, 5),
		},
		{
			ID: "6", Name: "African Black Soap", Description: "Plantain-ash soap bar, fragrance free",
			Price: 26, OriginalPrice: fptr(30), Rating: 4.4, Reviews: 52,
			Vendor: models.VendorRef{Name: "Abena Naturals"},
			Image:  "https://cdn.sankofamarket.com/p/6/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/6/main.jpg"},
			CategoryID: "3", SubCategoryID: "3-1", SubCategoryTypeID: "3-1-2",
			Tags:    models.StringList{"soap", "organic", "skincare"},
			InStock: false, StockQuantity: 0, IsOnSale: true,
			Specifications:   models.StringMap{"weight": "120g"},
			ProductionMethod: models.ProductionOrganic, Status: models.ProductStatusActive, Sales: 40,
			CreatedAt: date(2025, 2, 20), UpdatedAt: date(2025, 2, 28),
		},
		{
			ID: "7", Name: "Bolga Woven Basket", Description: "Market basket woven from elephant grass",
			Price: 32, Rating: 4.2, Reviews: 38,
			Vendor: models.VendorRef{Name: "Tamale Weavers"},
			Image:  "https://cdn.sankofamarket.com/p/7/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/7/main.jpg"},
			CategoryID: "4", SubCategoryID: "4-1", SubCategoryTypeID: "4-1-1",
			Tags:    models.StringList{"basket", "handwoven", "home"},
			InStock: true, StockQuantity: 11,
			Specifications:   models.StringMap{"dimensions": "40cm x 30cm"},
			ProductionMethod: models.ProductionHandwoven, Status: models.ProductStatusActive, Sales: 19,
			CreatedAt: date(2025, 3, 1), UpdatedAt: date(2025, 3, 2),
		},
		{
			ID: "8", Name: "Beaded Charm Bracelet", Description: "Hand-strung recycled glass beads on brass clasp",
			Price: 20, Rating: 4.0, Reviews: 75,
			Vendor: models.VendorRef{ID: "v8", Name: "Amara Beads"},
			Image:  "https://cdn.sankofamarket.com/p/8/main.jpg",
			Images: models.StringList{"https://cdn.sankofamarket.com/p/8/main.jpg"},
			CategoryID: "5", SubCategoryID: "5-1", SubCategoryTypeID: "5-1-1",
			Tags:    models.StringList{"beads", "bracelet", "jewelry"},
			InStock: true, StockQuantity: 34,
			Specifications:   models.StringMap{"material": "recycled glass, brass"},
			ProductionMethod: models.ProductionHandmade, Status: models.ProductStatusActive, Sales: 27,
			CreatedAt: date(2025, 3, 8), UpdatedAt: date(2025, 3, 15),
		},
	}
}
