package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Gemy-star/reverse/internal/config"
	"github.com/Gemy-star/reverse/internal/http/flash"
	"github.com/Gemy-star/reverse/internal/http/handlers"
	"github.com/Gemy-star/reverse/internal/http/middleware"
	"github.com/Gemy-star/reverse/internal/http/render"
	"github.com/Gemy-star/reverse/internal/mailer"
	"github.com/Gemy-star/reverse/internal/modules/cart"
	"github.com/Gemy-star/reverse/internal/modules/catalog"
	"github.com/Gemy-star/reverse/internal/modules/orders"
	"github.com/Gemy-star/reverse/internal/modules/settings"
	"github.com/Gemy-star/reverse/internal/modules/slider"
	"github.com/Gemy-star/reverse/internal/modules/users"
	"github.com/Gemy-star/reverse/internal/modules/wishlist"
	"github.com/Gemy-star/reverse/web"
)

// NewRouter wires the full storefront: repositories, services,
// middleware chain and routes.
func NewRouter(logger *slog.Logger, db *gorm.DB, cfg config.Config, mail mailer.Service) (*gin.Engine, error) {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := render.New(web.Templates)
	if err != nil {
		return nil, err
	}

	// repositories + services
	catalogRepo := catalog.NewGormRepo(db)
	cartRepo := cart.NewGormRepo(db)
	wishlistRepo := wishlist.NewGormRepo(db)
	ordersRepo := orders.NewGormRepo(db)
	usersRepo := users.NewGormRepo(db)
	sliderRepo := slider.NewGormRepo(db)

	settingsSvc := settings.NewService(db)
	cartSvc := cart.NewService(cartRepo, settingsSvc)
	usersSvc := users.NewService(usersRepo)
	ordersSvc := orders.NewService(ordersRepo, mail, cfg.SMTP.FromName, cfg.SMTP.FromAddr, logger)

	flashCodec := flash.NewCodec([]byte(cfg.CookieSecret), "reverse_flash", cfg.SecureCookies)
	sessionCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: "reverse_sid",
		Secure:     cfg.SecureCookies,
		TTL:        cfg.SessionTTL,
	}
	guestCfg := middleware.GuestCfg{Secure: cfg.SecureCookies}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger, renderer.ErrorPage),
		middleware.SessionMiddleware(sessionCfg),
		middleware.GuestSession(guestCfg),
		middleware.CSRF(middleware.CSRFCfg{Secure: cfg.SecureCookies}),
		middleware.FlashMiddleware(flashCodec),
	)

	// handlers
	home := handlers.NewHomeHandler(catalogRepo, sliderRepo, wishlistRepo, settingsSvc, renderer)
	category := handlers.NewCategoryHandler(catalogRepo, wishlistRepo, settingsSvc, renderer)
	product := handlers.NewProductHandler(catalogRepo, wishlistRepo, settingsSvc, renderer)
	cartPage := handlers.NewCartPageHandler(catalogRepo, cartSvc, renderer)
	wishlistPage := handlers.NewWishlistPageHandler(catalogRepo, wishlistRepo, settingsSvc, renderer)
	ordersPage := handlers.NewOrdersHandler(catalogRepo, ordersRepo, settingsSvc, renderer)
	auth := handlers.NewAuthHandler(catalogRepo, usersSvc, cartSvc, sessionCfg, flashCodec, renderer)

	counts := handlers.NewCountsHandler(cartSvc, wishlistRepo)
	cartAPI := handlers.NewCartAPIHandler(catalogRepo, cartSvc, guestCfg)
	wishlistAPI := handlers.NewWishlistAPIHandler(catalogRepo, wishlistRepo)
	variantsAPI := handlers.NewVariantsAPIHandler(catalogRepo, settingsSvc)
	searchAPI := handlers.NewSearchAPIHandler(catalogRepo, settingsSvc)
	adminOrders := handlers.NewAdminOrdersHandler(ordersSvc)

	// pages
	r.GET("/", home.Show)
	r.GET("/category/:slug/", category.Show)
	r.GET("/category/:slug/:subslug/", category.ShowSub)
	r.GET("/product/:slug/", product.Show)
	r.GET("/cart", cartPage.Show)
	r.GET("/wishlist", wishlistPage.Show)

	account := r.Group("/account", middleware.RequireAuth(flashCodec))
	{
		account.GET("/orders", ordersPage.List)
		account.GET("/orders/:number", ordersPage.Show)
	}

	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.POST("/logout", auth.Logout)

	// fetch API
	api := r.Group("/shop/api")
	{
		api.GET("/get-counts/", counts.Get)
		api.POST("/add-to-cart/", cartAPI.Add)
		api.POST("/update-cart/", cartAPI.Update)
		api.POST("/remove-from-cart/", cartAPI.Remove)
		api.POST("/add-to-wishlist/", wishlistAPI.Add)
		api.POST("/remove-from-wishlist/", wishlistAPI.Remove)
		api.GET("/variants/:productID", variantsAPI.Get)
		api.GET("/search/", searchAPI.Get)
	}

	admin := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	{
		admin.POST("/orders/:number/status", adminOrders.UpdateStatus)
	}

	// local media when the disk storage driver is active
	r.Static("/media", "./storage/media")

	return r, nil
}
