package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/config"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/slider"
	"github.com/Gemy-star/reverse/internal/modules/users"
	"github.com/Gemy-star/reverse/internal/shared/slug"
	"github.com/Gemy-star/reverse/internal/storage"
)

// Seeds demo data for local development: the catalog taxonomy, a few
// products with variants and images, the home sliders, default settings
// and an admin account (admin@reverse-eg.com / admin12345).
func main() {
	ctx := context.Background()
	cfg := config.Load()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	log.Printf("storage driver: %s", store.Driver)

	s := &seeder{ctx: ctx, db: db, store: store.Storage}
	s.settings()
	s.adminUser()
	s.sliders()
	s.catalog()

	log.Println("Seed complete")
}

type seeder struct {
	ctx   context.Context
	db    *gorm.DB
	store storage.Storage
}

// placeholder returns the URL of a generated solid-color PNG, stored
// under a stable key so reruns overwrite instead of piling up files.
func (s *seeder) placeholder(key string, c color.RGBA) string {
	img := image.NewRGBA(image.Rect(0, 0, 600, 800))
	for y := 0; y < 800; y++ {
		for x := 0; x < 600; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Fatalf("Failed to encode placeholder: %v", err)
	}

	res, err := s.store.Put(s.ctx, &buf, storage.PutInput{
		Filename:    key,
		ContentType: "image/png",
		KeyHint:     key,
	})
	if err != nil {
		log.Fatalf("Failed to store placeholder %s: %v", key, err)
	}
	return res.URL
}

func (s *seeder) settings() {
	svc := settings.NewService(s.db)
	if err := svc.SeedDefaults(s.ctx); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
}

func (s *seeder) adminUser() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	u := users.User{
		ID:           uuid.NewString(),
		Email:        "admin@reverse-eg.com",
		PasswordHash: hash,
		FirstName:    "Admin",
		IsAdmin:      true,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.firstOrCreate(&users.User{}, "email = ?", []any{u.Email}, &u)
}

func (s *seeder) sliders() {
	slides := []slider.HomeSlider{
		{
			Heading:    "Summer Collection",
			Subheading: "Light fits for hot days. New drops every week.",
			ButtonText: "Shop Now",
			ButtonURL:  "/category/men/",
			Position:   1,
		},
		{
			Heading:    "Winter Essentials",
			Subheading: "Layer up with hoodies, jackets and knits.",
			ButtonText: "Explore",
			ButtonURL:  "/category/women/",
			Position:   2,
		},
		{
			Heading:    "Clearance Sale",
			Subheading: "Up to 50% off selected items while stocks last.",
			ButtonText: "Grab a Deal",
			ButtonURL:  "/",
			Position:   3,
		},
	}
	tints := []color.RGBA{
		{R: 236, G: 170, B: 85, A: 255},
		{R: 90, G: 120, B: 180, A: 255},
		{R: 190, G: 70, B: 70, A: 255},
	}
	for i := range slides {
		slides[i].ID = uuid.NewString()
		slides[i].AltText = slides[i].Heading
		slides[i].ImageURL = s.placeholder(
			"slider/slide"+string(rune('1'+i))+".png", tints[i])
		slides[i].IsActive = true
		slides[i].CreatedAt = time.Now()
		slides[i].UpdatedAt = time.Now()
		s.firstOrCreate(&slider.HomeSlider{}, "heading = ?", []any{slides[i].Heading}, &slides[i])
	}
}

func (s *seeder) catalog() {
	men := s.category("Men", "Everything for him.")
	women := s.category("Women", "Everything for her.")

	tshirts := s.subcategory(men, "T-Shirts")
	hoodies := s.subcategory(men, "Hoodies")
	dresses := s.subcategory(women, "Dresses")

	slimFit := s.fitType("Slim Fit")
	oversized := s.fitType("Oversized")

	reverseBrand := s.brand("Reverse")
	nileWear := s.brand("Nile Wear")

	black := s.color("Black", "#000000", color.RGBA{A: 255})
	white := s.color("White", "#FFFFFF", color.RGBA{R: 240, G: 240, B: 240, A: 255})
	navy := s.color("Navy", "#001F54", color.RGBA{B: 84, G: 31, A: 255})

	sizes := []catalog.Size{}
	for i, name := range []string{"S", "M", "L", "XL"} {
		sizes = append(sizes, s.size(name, "clothing", i+1))
	}

	type productSpec struct {
		name      string
		cat       catalog.Category
		sub       catalog.SubCategory
		fit       *catalog.FitType
		brand     *catalog.Brand
		price     string
		salePrice string
		featured  bool
		newAriv   bool
		bestSell  bool
		colors    []catalog.Color
		tint      color.RGBA
	}
	specs := []productSpec{
		{"Classic Crew Tee", men, tshirts, &slimFit, &reverseBrand, "349.00", "", true, true, false,
			[]catalog.Color{black, white}, color.RGBA{R: 40, G: 40, B: 40, A: 255}},
		{"Oversized Graphic Tee", men, tshirts, &oversized, &reverseBrand, "449.00", "329.00", true, false, true,
			[]catalog.Color{white, navy}, color.RGBA{R: 220, G: 220, B: 220, A: 255}},
		{"Heavyweight Hoodie", men, hoodies, &oversized, &nileWear, "899.00", "", false, true, true,
			[]catalog.Color{black, navy}, color.RGBA{R: 20, G: 30, B: 60, A: 255}},
		{"Summer Wrap Dress", women, dresses, nil, &nileWear, "1199.00", "949.00", true, true, false,
			[]catalog.Color{navy, white}, color.RGBA{R: 150, G: 60, B: 90, A: 255}},
	}

	for _, spec := range specs {
		price, _ := decimal.NewFromString(spec.price)
		p := catalog.Product{
			ID:            uuid.NewString(),
			Name:          spec.name,
			Description:   spec.name + " from the Reverse Egypt collection.",
			CategoryID:    spec.cat.ID,
			SubCategoryID: spec.sub.ID,
			Price:         price,
			IsFeatured:    spec.featured,
			IsNewArrival:  spec.newAriv,
			IsBestSeller:  spec.bestSell,
			IsActive:      true,
			IsAvailable:   true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if spec.salePrice != "" {
			sp, _ := decimal.NewFromString(spec.salePrice)
			p.SalePrice = &sp
		}
		if spec.fit != nil {
			p.FitTypeID = &spec.fit.ID
		}
		if spec.brand != nil {
			p.BrandID = &spec.brand.ID
		}
		if !s.firstOrCreate(&catalog.Product{}, "name = ?", []any{p.Name}, &p) {
			continue
		}

		mainURL := s.placeholder("products/"+p.Slug+"-main.png", spec.tint)
		hoverURL := s.placeholder("products/"+p.Slug+"-hover.png", spec.tint)
		s.db.Create(&catalog.ProductImage{
			ID: uuid.NewString(), ProductID: p.ID, URL: mainURL,
			AltText: p.Name, IsMain: true, Position: 1, CreatedAt: time.Now(),
		})
		s.db.Create(&catalog.ProductImage{
			ID: uuid.NewString(), ProductID: p.ID, URL: hoverURL,
			AltText: p.Name, IsHover: true, Position: 2, CreatedAt: time.Now(),
		})

		for _, col := range spec.colors {
			for _, sz := range sizes {
				col, sz := col, sz
				v := catalog.ProductVariant{
					ID:            uuid.NewString(),
					ProductID:     p.ID,
					ColorID:       col.ID,
					SizeID:        sz.ID,
					StockQuantity: 25,
					IsAvailable:   true,
					CreatedAt:     time.Now(),
					Product:       &p,
					Color:         &col,
					Size:          &sz,
				}
				s.db.Create(&v)
			}
		}
	}
}

func (s *seeder) category(name, desc string) catalog.Category {
	c := catalog.Category{
		ID: uuid.NewString(), Name: name, Description: desc,
		IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	c.ImageURL = s.placeholder("categories/"+name+".png", color.RGBA{R: 120, G: 120, B: 120, A: 255})
	s.firstOrCreate(&catalog.Category{}, "name = ?", []any{name}, &c)
	s.db.Where("name = ?", name).First(&c)
	return c
}

func (s *seeder) subcategory(cat catalog.Category, name string) catalog.SubCategory {
	sc := catalog.SubCategory{
		ID: uuid.NewString(), CategoryID: cat.ID, Name: name,
		IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	s.firstOrCreate(&catalog.SubCategory{}, "category_id = ? AND name = ?", []any{cat.ID, name}, &sc)
	s.db.Where("category_id = ? AND name = ?", cat.ID, name).First(&sc)
	return sc
}

func (s *seeder) fitType(name string) catalog.FitType {
	f := catalog.FitType{ID: uuid.NewString(), Name: name, Slug: slug.FromName(name), IsActive: true}
	s.firstOrCreate(&catalog.FitType{}, "name = ?", []any{name}, &f)
	s.db.Where("name = ?", name).First(&f)
	return f
}

func (s *seeder) brand(name string) catalog.Brand {
	b := catalog.Brand{ID: uuid.NewString(), Name: name, Slug: slug.FromName(name), IsActive: true}
	s.firstOrCreate(&catalog.Brand{}, "name = ?", []any{name}, &b)
	s.db.Where("name = ?", name).First(&b)
	return b
}

func (s *seeder) color(name, hex string, _ color.RGBA) catalog.Color {
	c := catalog.Color{ID: uuid.NewString(), Name: name, HexCode: hex, IsActive: true}
	s.firstOrCreate(&catalog.Color{}, "name = ?", []any{name}, &c)
	s.db.Where("name = ?", name).First(&c)
	return c
}

func (s *seeder) size(name, sizeType string, pos int) catalog.Size {
	sz := catalog.Size{ID: uuid.NewString(), Name: name, SizeType: sizeType, Position: pos, IsActive: true}
	s.firstOrCreate(&catalog.Size{}, "name = ? AND size_type = ?", []any{name, sizeType}, &sz)
	s.db.Where("name = ? AND size_type = ?", name, sizeType).First(&sz)
	return sz
}

// firstOrCreate creates value unless a row matching cond exists; returns
// true when a new row was inserted.
func (s *seeder) firstOrCreate(model any, cond string, args []any, value any) bool {
	var n int64
	s.db.Model(model).Where(cond, args...).Count(&n)
	if n > 0 {
		return false
	}
	if err := s.db.Create(value).Error; err != nil {
		log.Fatalf("Failed to seed %T: %v", value, err)
	}
	return true
}
