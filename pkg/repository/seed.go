package repository

import (
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SampleProducts returns the starter catalog used when the product table
// is empty at startup.
func SampleProducts() []models.Product {
	now := time.Now()
	products := []models.Product{
		{
			Name:        "Wireless Bluetooth Headphones",
			Description: "Premium wireless headphones with active noise cancellation and 30-hour battery life.",
			Price:       299.99,
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Electronics",
			Stock:       15,
			Rating:      4.8,
			Reviews:     234,
		},
		{
			Name:        "Smart Watch Series 8",
			Description: "Advanced smartwatch with health monitoring, GPS, and cellular connectivity.",
			Price:       399.99,
			Image:       "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Electronics",
			Stock:       8,
			Rating:      4.6,
			Reviews:     567,
		},
		{
			Name:        "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable organic cotton t-shirt in various colors.",
			Price:       29.99,
			Image:       "https://images.pexels.com/photos/1183266/pexels-photo-1183266.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Clothing",
			Stock:       25,
			Rating:      4.4,
			Reviews:     89,
		},
		{
			Name:        "Professional Camera Lens",
			Description: "85mm f/1.4 portrait lens with exceptional image quality and bokeh.",
			Price:       799.99,
			Image:       "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Electronics",
			Stock:       5,
			Rating:      4.9,
			Reviews:     156,
		},
		{
			Name:        "Bestselling Novel",
			Description: "Award-winning fiction novel that has captivated readers worldwide.",
			Price:       14.99,
			Image:       "https://images.pexels.com/photos/159866/books-book-pages-read-literature-159866.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Books",
			Stock:       50,
			Rating:      4.7,
			Reviews:     1234,
		},
		{
			Name:        "Yoga Mat Premium",
			Description: "Non-slip yoga mat with superior grip and cushioning for all types of yoga.",
			Price:       79.99,
			Image:       "https://images.pexels.com/photos/6740818/pexels-photo-6740818.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Sports",
			Stock:       18,
			Rating:      4.5,
			Reviews:     203,
		},
		{
			Name:        "Minimalist Desk Lamp",
			Description: "Modern LED desk lamp with adjustable brightness and wireless charging base.",
			Price:       149.99,
			Image:       "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Home",
			Stock:       12,
			Rating:      4.3,
			Reviews:     78,
		},
		{
			Name:        "Running Shoes Pro",
			Description: "High-performance running shoes with advanced cushioning and breathable mesh.",
			Price:       159.99,
			Image:       "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    "Sports",
			Stock:       22,
			Rating:      4.6,
			Reviews:     445,
		},
	}

	for i := range products {
		products[i].ID = uuid.NewString()
		// Spread creation times so listings have a stable, deterministic order.
		products[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
	}
	return products
}

// SeedCatalog inserts the sample products when the catalog is empty.
func SeedCatalog(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := SampleProducts()
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	logger.Info("Sample products added to database", zap.Int("count", len(products)))
	return nil
}

// SeedMemory fills an in-memory store with the sample products.
func SeedMemory(store *MemoryStore) {
	if store.ProductCount() > 0 {
		return
	}
	for _, product := range SampleProducts() {
		store.AddProduct(product)
	}
}
