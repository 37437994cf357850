package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/criscode097/vacarent/internal/config"
	"github.com/criscode097/vacarent/internal/database"
	"github.com/criscode097/vacarent/internal/middleware"
	"github.com/criscode097/vacarent/internal/modules/auth"
	"github.com/criscode097/vacarent/internal/modules/booking"
	"github.com/criscode097/vacarent/internal/modules/catalog"
	"github.com/criscode097/vacarent/internal/modules/listings"
	"github.com/criscode097/vacarent/internal/notify"
	jwtsvc "github.com/criscode097/vacarent/internal/pkg/jwt"
	"github.com/criscode097/vacarent/internal/registry"
	"github.com/criscode097/vacarent/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}

	listingRepo := repository.NewListingRepository(db)
	if err := listingRepo.Migrate(); err != nil {
		log.Fatal(err)
	}

	reg := registry.New()
	hub := notify.NewHub()
	defer hub.Close()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(reg, j, hub)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(reg, hub)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(reg, hub)
	bookingHandler := booking.NewHandler(bookingService)

	listingService := listings.NewService(context.Background(), listingRepo, hub)
	listingHandler := listings.NewHandler(listingService)

	notifyHandler := notify.NewHandler(hub)

	if cfg.DemoData {
		seedDemoData(reg, bookingService)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		listingHandler.RegisterPublicRoutes(v1)
		notifyHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			catalogHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			listingHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
