package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"repairshop/internal/config"
	"repairshop/internal/database"
	"repairshop/internal/middleware"
	"repairshop/internal/modules/auth"
	"repairshop/internal/modules/catalog"
	"repairshop/internal/modules/customer"
	"repairshop/internal/modules/dashboard"
	"repairshop/internal/modules/device"
	"repairshop/internal/modules/repair"
	"repairshop/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	repairRepo := repository.NewRepairRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	partRepo := repository.NewPartRepository(db)

	authService := auth.NewService(userRepo, sessionRepo, cfg.SessionPepper, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService)

	customerService := customer.NewService(customerRepo, repairRepo)
	customerHandler := customer.NewHandler(customerService)

	deviceService := device.NewService(deviceRepo, repairRepo)
	deviceHandler := device.NewHandler(deviceService)

	repairService := repair.NewService(repairRepo, customerRepo, deviceRepo, serviceRepo)
	repairHandler := repair.NewHandler(repairService)

	catalogService := catalog.NewService(serviceRepo, partRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	dashboardService := dashboard.NewService(customerRepo, deviceRepo, repairRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: only login
		authHandler.RegisterPublicRoutes(v1)

		// everything else sits behind a valid session
		protected := v1.Group("/")
		protected.Use(middleware.SessionAuth(authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			customerHandler.RegisterRoutes(protected)
			deviceHandler.RegisterRoutes(protected)
			repairHandler.RegisterRoutes(protected)
			catalogHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
