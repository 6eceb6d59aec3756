package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"grandstay/internal/config"
	"grandstay/internal/database"
	"grandstay/internal/domain"
	"grandstay/internal/middleware"
	"grandstay/internal/modules/analytics"
	"grandstay/internal/modules/auth"
	"grandstay/internal/modules/catalog"
	"grandstay/internal/modules/feed"
	"grandstay/internal/modules/rating"
	"grandstay/internal/modules/reservation"
	jwtsvc "grandstay/internal/pkg/jwt"
	"grandstay/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	roomReservations := repository.NewReservationRepository(db, domain.KindRoom)
	serviceReservations := repository.NewReservationRepository(db, domain.KindService)
	roomRatings := repository.NewRatingRepository(db, domain.KindRoom)
	serviceRatings := repository.NewRatingRepository(db, domain.KindService)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()
	feedHandler := feed.NewHandler(hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(roomRepo, serviceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	roomLifecycle := reservation.NewService(domain.KindRoom, roomReservations, hub)
	roomQuery := reservation.NewQueryService(roomReservations)
	roomHandler := reservation.NewHandler(roomLifecycle, roomQuery, domain.KindRoom)

	serviceLifecycle := reservation.NewService(domain.KindService, serviceReservations, hub)
	serviceQuery := reservation.NewQueryService(serviceReservations)
	serviceHandler := reservation.NewHandler(serviceLifecycle, serviceQuery, domain.KindService)

	ratingHandler := rating.NewHandler(roomRatings, serviceRatings)

	analyticsService := analytics.NewService(analyticsRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("")
	{
		// public
		authHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		ratingHandler.RegisterRoutes(root)

		// guest endpoints
		protected := root.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			roomHandler.RegisterRoutes(protected)
			serviceHandler.RegisterRoutes(protected)
		}

		// staff endpoints
		admin := root.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.StaffOnly())
		{
			roomHandler.RegisterAdminRoutes(admin)
			serviceHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			feedHandler.RegisterRoutes(admin)
		}

		staffRead := root.Group("")
		staffRead.Use(middleware.JWTAuth(j), middleware.StaffOnly())
		{
			analyticsHandler.RegisterRoutes(staffRead)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
