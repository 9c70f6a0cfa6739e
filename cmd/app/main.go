package main

import (
	"log"
	"os"

	"github.com/manojgowri/stitchpop-ecommerce-sub000/external/midtrans"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/db"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/repository"
	"github.com/manojgowri/stitchpop-ecommerce-sub000/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	snapClient := midtrans.NewSnapClient()

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	themeRepo := repository.NewThemeRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	wishlistRepo := repository.NewWishlistRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo)
	productSvc := services.NewProductService(productRepo, categoryRepo, themeRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	themeSvc := services.NewThemeService(themeRepo)
	bannerSvc := services.NewBannerService(bannerRepo)
	couponSvc := services.NewCouponService(couponRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, couponRepo, couponSvc, snapClient)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/stitch-pop")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerProductRoutes(api, productSvc)
	registerCategoryRoutes(api, categorySvc)
	registerThemeRoutes(api, themeSvc)
	registerBannerRoutes(api, bannerSvc)
	registerCouponRoutes(api, couponSvc)
	registerCartRoutes(api, cartSvc)
	registerWishlistRoutes(api, wishlistSvc)
	registerReviewRoutes(api, reviewSvc)
	registerOrderRoutes(api, orderSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
