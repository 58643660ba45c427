// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/fleetbook/backend/config"
	"github.com/fleetbook/backend/internal/application/usecase/auth"
	"github.com/fleetbook/backend/internal/application/usecase/cost"
	"github.com/fleetbook/backend/internal/application/usecase/dashboard"
	"github.com/fleetbook/backend/internal/application/usecase/photo"
	"github.com/fleetbook/backend/internal/application/usecase/report"
	"github.com/fleetbook/backend/internal/application/usecase/vehicle"
	"github.com/fleetbook/backend/internal/infra/server/router"
	"github.com/fleetbook/backend/internal/integration/adapters"
	"github.com/fleetbook/backend/internal/integration/entrypoint/controller"
	"github.com/fleetbook/backend/internal/integration/entrypoint/middleware"
	"github.com/fleetbook/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	vehicleRepo := persistence.NewVehicleRepository(db)
	costRepo := persistence.NewCostRepository(db)
	photoRepo := persistence.NewPhotoRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create vehicle use cases
	listVehiclesUseCase := vehicle.NewListVehiclesUseCase(vehicleRepo, costRepo)
	getVehicleUseCase := vehicle.NewGetVehicleUseCase(vehicleRepo, costRepo, photoRepo)
	createVehicleUseCase := vehicle.NewCreateVehicleUseCase(vehicleRepo)
	updateVehicleUseCase := vehicle.NewUpdateVehicleUseCase(vehicleRepo, costRepo)
	deleteVehicleUseCase := vehicle.NewDeleteVehicleUseCase(vehicleRepo)

	// Create cost use cases
	listCostsUseCase := cost.NewListCostsUseCase(vehicleRepo, costRepo)
	createCostUseCase := cost.NewCreateCostUseCase(vehicleRepo, costRepo)
	updateCostUseCase := cost.NewUpdateCostUseCase(vehicleRepo, costRepo)
	deleteCostUseCase := cost.NewDeleteCostUseCase(vehicleRepo, costRepo)

	// Create photo use cases
	listPhotosUseCase := photo.NewListPhotosUseCase(vehicleRepo, photoRepo)
	addPhotoUseCase := photo.NewAddPhotoUseCase(vehicleRepo, photoRepo)
	deletePhotoUseCase := photo.NewDeletePhotoUseCase(vehicleRepo, photoRepo)

	// Create dashboard and export use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(vehicleRepo, costRepo, clock)
	exportVehiclePDFUseCase := report.NewExportVehiclePDFUseCase(vehicleRepo, costRepo, photoRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(userRepo)

	vehicleController := controller.NewVehicleController(
		listVehiclesUseCase,
		getVehicleUseCase,
		createVehicleUseCase,
		updateVehicleUseCase,
		deleteVehicleUseCase,
	)

	costController := controller.NewCostController(
		listCostsUseCase,
		createCostUseCase,
		updateCostUseCase,
		deleteCostUseCase,
	)

	photoController := controller.NewPhotoController(
		listPhotosUseCase,
		addPhotoUseCase,
		deletePhotoUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)
	exportController := controller.NewExportController(exportVehiclePDFUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		vehicleController,
		costController,
		photoController,
		dashboardController,
		exportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
