package state

import (
	"time"

	"atelier-admin-core/internal/domain"
)

// applySeed loads the demo dataset a fresh store starts with. Hydration
// replaces the category and product slices when the remote API is reachable;
// everything else is local-only and lives for the process lifetime.
//
// Counts here are consistent by construction: every category's ProductCount
// matches the seeded products referencing it by name.
func applySeed(s *Store) {
	s.categories = []domain.Category{
		{
			ID: "seed-cat-1", Name: "Crochet Flowers", Slug: "crochet-flowers",
			Icon: "flower", ProductCount: 2,
			Keywords:     []string{"crochet", "flowers", "handmade"},
			DisplayOrder: 1, Active: true,
		},
		{
			ID: "seed-cat-2", Name: "Tote Bags", Slug: "tote-bags",
			Icon: "bag", ProductCount: 1,
			Keywords:     []string{"tote", "bags"},
			DisplayOrder: 2, Active: true,
		},
		{
			ID: "seed-cat-3", Name: "Wall Hangings", Slug: "wall-hangings",
			Icon: "frame", ProductCount: 1,
			Keywords:     []string{"wall", "decor"},
			DisplayOrder: 3, Active: true,
		},
		{
			ID: "seed-cat-4", Name: "Keychains", Slug: "keychains",
			Icon: "key", ProductCount: 0,
			Keywords:     []string{"keychain"},
			DisplayOrder: 4, Active: true,
		},
	}

	s.products = []domain.Product{
		{
			ID: "seed-prod-1", Name: "Sunflower Bouquet", Category: "Crochet Flowers",
			SKU: "CF-001", Slug: "sunflower-bouquet", Price: 1450, Stock: 8,
			Featured: true, Image: "/images/sunflower-bouquet.jpg",
			Images:      []string{"/images/sunflower-bouquet.jpg"},
			Description: "Hand-crocheted sunflower bouquet, five stems.",
			Keywords:    []string{"sunflower", "bouquet"},
			Status:      domain.ProductActive,
		},
		{
			ID: "seed-prod-2", Name: "Rose Trio", Category: "Crochet Flowers",
			SKU: "CF-002", Slug: "rose-trio", Price: 890, PreviousPrice: 990,
			Stock: 12, Image: "/images/rose-trio.jpg",
			Images:      []string{"/images/rose-trio.jpg"},
			Description: "Three crocheted roses in a kraft wrap.",
			Keywords:    []string{"rose"},
			Status:      domain.ProductActive,
		},
		{
			ID: "seed-prod-3", Name: "Market Tote", Category: "Tote Bags",
			SKU: "TB-001", Slug: "market-tote", Price: 1900, Stock: 5,
			Featured: true, Image: "/images/market-tote.jpg",
			Images:      []string{"/images/market-tote.jpg", "/images/market-tote-2.jpg"},
			Description: "Sturdy cotton market tote with jute handles.",
			Keywords:    []string{"tote", "market"},
			Status:      domain.ProductActive,
		},
		{
			ID: "seed-prod-4", Name: "Macrame Moon", Category: "Wall Hangings",
			SKU: "WH-001", Slug: "macrame-moon", Price: 2400, Stock: 3,
			Image:       "/images/macrame-moon.jpg",
			Images:      []string{"/images/macrame-moon.jpg"},
			Description: "Crescent moon macrame wall hanging.",
			Keywords:    []string{"macrame", "moon"},
			Status:      domain.ProductDraft,
		},
	}

	s.collections = []domain.Collection{
		{
			ID: "seed-coll-1", Name: "Spring Favourites",
			Description:  "Bestsellers for the spring storefront banner.",
			Image:        "/images/spring.jpg",
			ProductIDs:   []string{"seed-prod-1", "seed-prod-3"},
			ProductNames: []string{"Sunflower Bouquet", "Market Tote"},
			CreatedAt:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	s.orders = []domain.Order{
		{
			ID: "seed-order-1", OrderNumber: "ORD-1042",
			CustomerName: "Nusrat Jahan", Email: "nusrat@example.com",
			Phone: "+8801712000000",
			Date:  time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC),
			Status: domain.OrderProcessing, PaymentStatus: domain.PaymentPaid,
			Total: 2340,
			Items: []domain.OrderItem{
				{ProductID: "seed-prod-1", ProductName: "Sunflower Bouquet", Quantity: 1, Price: 1450, Image: "/images/sunflower-bouquet.jpg"},
				{ProductID: "seed-prod-2", ProductName: "Rose Trio", Quantity: 1, Price: 890, Image: "/images/rose-trio.jpg"},
			},
			ShippingAddress: "House 12, Road 5, Dhanmondi, Dhaka",
			CustomerType:    "returning",
		},
		{
			ID: "seed-order-2", OrderNumber: "ORD-1043",
			CustomerName: "Adnan Rahman", Email: "adnan@example.com",
			Phone: "+8801913000000",
			Date:  time.Date(2026, 8, 24, 9, 15, 0, 0, time.UTC),
			Status: domain.OrderPending, PaymentStatus: domain.PaymentPending,
			Total: 1900,
			Items: []domain.OrderItem{
				{ProductID: "seed-prod-3", ProductName: "Market Tote", Quantity: 1, Price: 1900, Image: "/images/market-tote.jpg"},
			},
			ShippingAddress: "Flat 3B, Agrabad, Chattogram",
			CustomerType:    "new",
		},
	}

	s.notifications = []domain.Notification{
		{
			ID: "seed-notif-1", Type: domain.NotifyOrder,
			Title: "New order", Message: "ORD-1043 placed by Adnan Rahman",
			Timestamp: time.Date(2026, 8, 24, 9, 15, 0, 0, time.UTC),
		},
		{
			ID: "seed-notif-2", Type: domain.NotifyProduct,
			Title: "Low stock", Message: "Macrame Moon is down to 3 in stock",
			Timestamp: time.Date(2026, 8, 23, 18, 0, 0, 0, time.UTC),
		},
		{
			ID: "seed-notif-3", Type: domain.NotifySystem,
			Title: "Welcome", Message: "Your dashboard is ready",
			Timestamp: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC),
			Read:      true,
		},
	}

	s.profile = domain.UserProfile{
		Name:     "Farhana Akter",
		Email:    "hello@atelierhandmade.example",
		Phone:    "+8801811000000",
		ShopName: "Atelier Handmade",
		Address:  "Mirpur DOHS, Dhaka",
	}

	s.payment = domain.PaymentMethods{
		BkashNumber:    "+8801811000000",
		NagadNumber:    "+8801811000000",
		CashOnDelivery: true,
	}

	s.social = []domain.SocialAccount{
		{Platform: "instagram", Handle: "@atelierhandmade", URL: "https://instagram.com/atelierhandmade", Active: true},
		{Platform: "facebook", Handle: "AtelierHandmade", URL: "https://facebook.com/atelierhandmade", Active: true},
	}
}
