package main

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/config"
	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/orders"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/slider"
	"github.com/Gemy-star/reverse/internal/modules/users"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
)

func main() {
	cfg := config.Load()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&users.User{},
		&middleware.Session{},
		&catalog.Category{},
		&catalog.SubCategory{},
		&catalog.FitType{},
		&catalog.Brand{},
		&catalog.Color{},
		&catalog.Size{},
		&catalog.Product{},
		&catalog.ProductImage{},
		&catalog.ProductVariant{},
		&cart.Cart{},
		&cart.CartItem{},
		&wishlist.Wishlist{},
		&wishlist.WishlistItem{},
		&orders.Order{},
		&orders.OrderItem{},
		&slider.HomeSlider{},
		&settings.SiteSetting{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	log.Println("Migration complete")
}
