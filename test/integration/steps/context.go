// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	"github.com/fleetbook/backend/internal/integration/persistence/model"
	"github.com/fleetbook/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri              string
	headers          map[string]string
	client           *http.Client
	response         *response
	db               *mock.Db
	clock            *mock.Clock
	serverPort       int
	accessToken      string
	refreshToken     string
	currentUserID    uuid.UUID
	currentVehicleID uuid.UUID
	currentCostID    uuid.UUID
	currentPhotoID   uuid.UUID
}

type response struct {
	status int
	raw    []byte
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testClock = mock.NewClock()
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		clock:      testClock,
		serverPort: testServerPort,
		db: mock.NewDb("fleetbook", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"vehicles":       &model.VehicleModel{},
			"cost_entries":   &model.CostModel{},
			"photos":         &model.PhotoModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Fleet setup steps
	ctx.Given(`^a vehicle exists with make "([^"]*)" and model "([^"]*)"$`, test.aVehicleExistsWithMakeAndModel)
	ctx.Given(`^a vehicle exists with make "([^"]*)" and status "([^"]*)"$`, test.aVehicleExistsWithMakeAndStatus)
	ctx.Given(`^a vehicle sold in "([^"]*)" exists with purchase price (\d+) and sale price (\d+)$`, test.aVehicleSoldInExists)
	ctx.Given(`^a cost of (\d+) with label "([^"]*)" exists for the vehicle$`, test.aCostExistsForTheVehicle)
	ctx.Given(`^a photo exists for the vehicle$`, test.aPhotoExistsForTheVehicle)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response body should start with "([^"]*)"$`, test.theResponseBodyShouldStartWith)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentVehicleID = uuid.Nil
	t.currentCostID = uuid.Nil
	t.currentPhotoID = uuid.Nil
	t.clock.Reset()

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			vehicleRepo := persistence.NewVehicleRepository(testDB.DbConn)
			costRepo := persistence.NewCostRepository(testDB.DbConn)
			photoRepo := persistence.NewPhotoRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)

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

			// Dashboard runs on the controllable clock so scenarios can pin time
			getDashboardUseCase := dashboard.NewGetDashboardUseCase(vehicleRepo, costRepo, testClock)
			exportPDFUseCase := report.NewExportVehiclePDFUseCase(vehicleRepo, costRepo, photoRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
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
			exportController := controller.NewExportController(exportPDFUseCase)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
