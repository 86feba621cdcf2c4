package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

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

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// Use in-memory SQLite for testing
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	repairRepo := repository.NewRepairRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	partRepo := repository.NewPartRepository(db)

	authService := auth.NewService(userRepo, sessionRepo, "test-pepper", time.Hour)
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

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)

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

	// accounts the flows below log in with
	for _, u := range []auth.CreateUserRequest{
		{Username: "admin", Password: "admin123", Role: "admin"},
		{Username: "frontdesk", Password: "staff123", Role: "staff"},
	} {
		_, err := authService.CreateUser(context.Background(), u)
		require.NoError(t, err, "Failed to create user %s", u.Username)
	}

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp),
		"Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	return &resp
}

func (s *E2ETestSuite) login(t *testing.T, username, password string) string {
	w := s.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	resp := parseResponse(t, w)
	require.True(t, resp.Success)
	return resp.Data["token"].(string)
}

func TestFlow1_AuthAndSessions(t *testing.T) {
	suite := setupTestSuite(t)

	var token string

	t.Run("POST /auth/login", func(t *testing.T) {
		token = suite.login(t, "frontdesk", "staff123")
		assert.NotEmpty(t, token)
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"username": "frontdesk",
			"password": "not-it",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("GET /users/me", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/users/me", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		user := resp.Data["user"].(map[string]interface{})
		assert.Equal(t, "frontdesk", user["username"])
		assert.Equal(t, "staff", user["role"])
	})

	t.Run("GET /customers without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/customers", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("POST /auth/logout invalidates the session", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/logout", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/api/v1/users/me", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("PUT /users/me/password", func(t *testing.T) {
		token := suite.login(t, "frontdesk", "staff123")

		w := suite.makeRequest("PUT", "/api/v1/users/me/password", map[string]interface{}{
			"current_password": "staff123",
			"new_password":     "rotated456",
		}, token)
		assert.Equal(t, http.StatusOK, w.Code)

		// old password no longer works, new one does
		w = suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"username": "frontdesk",
			"password": "staff123",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		suite.login(t, "frontdesk", "rotated456")
	})
}

func TestFlow2_RepairIntake(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.login(t, "frontdesk", "staff123")

	var customerID, deviceID, repairID int64
	var reference string

	t.Run("POST /customers", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/customers", map[string]interface{}{
			"name":    "Jane Doe",
			"address": "12 Elm Street",
			"phone":   "555-1234",
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		customerID = int64(resp.Data["customer"].(map[string]interface{})["customer_id"].(float64))
	})

	t.Run("POST /devices", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/devices", map[string]interface{}{
			"device_type":   "smartphone",
			"model":         "iPhone 12",
			"serial_number": "SN-IP12-0001",
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		deviceID = int64(resp.Data["device"].(map[string]interface{})["device_id"].(float64))
	})

	t.Run("POST /devices duplicate serial", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/devices", map[string]interface{}{
			"device_type":   "smartphone",
			"model":         "iPhone 12",
			"serial_number": "SN-IP12-0001",
		}, token)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "SERIAL_NUMBER_EXISTS")
	})

	t.Run("POST /repairs", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/repairs", map[string]interface{}{
			"customer_id":         customerID,
			"device_id":           deviceID,
			"problem_description": "cracked screen",
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		rp := resp.Data["repair"].(map[string]interface{})
		repairID = int64(rp["repair_id"].(float64))
		reference = rp["reference_number"].(string)

		assert.Regexp(t, `^REP-\d{8}-[0-9A-F]{6}$`, reference)
		assert.Equal(t, "pending", rp["status"])
	})

	t.Run("POST /repairs unknown customer", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/repairs", map[string]interface{}{
			"customer_id":         int64(9999),
			"device_id":           deviceID,
			"problem_description": "whatever",
		}, token)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /repairs lists newest first", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/repairs", nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		repairs := resp.Data["repairs"].([]interface{})
		require.NotEmpty(t, repairs)
		first := repairs[0].(map[string]interface{})
		assert.Equal(t, reference, first["reference_number"])
	})

	t.Run("GET /repairs/:id embeds customer and device", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/repairs/%d", repairID), nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		rp := resp.Data["repair"].(map[string]interface{})
		assert.Equal(t, "Jane Doe", rp["customer"].(map[string]interface{})["name"])
		assert.Equal(t, "SN-IP12-0001", rp["device"].(map[string]interface{})["serial_number"])
	})

	t.Run("PATCH /repairs/:id/status to completed", func(t *testing.T) {
		w := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/repairs/%d/status", repairID), map[string]interface{}{
			"status": "completed",
		}, token)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := parseResponse(t, w)
		rp := resp.Data["repair"].(map[string]interface{})
		assert.Equal(t, "completed", rp["status"])
		assert.NotNil(t, rp["completion_date"])
	})

	t.Run("PATCH /repairs/:id/status back to pending clears completion date", func(t *testing.T) {
		w := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/repairs/%d/status", repairID), map[string]interface{}{
			"status": "pending",
		}, token)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		rp := resp.Data["repair"].(map[string]interface{})
		assert.Equal(t, "pending", rp["status"])
		assert.Nil(t, rp["completion_date"])
	})

	t.Run("PATCH /repairs/:id/status rejects unknown status", func(t *testing.T) {
		w := suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/repairs/%d/status", repairID), map[string]interface{}{
			"status": "cancelled",
		}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET /customers/:id/repairs", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/customers/%d/repairs", customerID), nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		resp := parseResponse(t, w)
		assert.Len(t, resp.Data["repairs"].([]interface{}), 1)
	})
}

func TestFlow3_CatalogAndPerformedServices(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.login(t, "frontdesk", "staff123")

	var serviceID, partID, repairID int64

	t.Run("Setup: customer, device, repair", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/customers", map[string]interface{}{
			"name":  "Tom Brown",
			"phone": "555-2345",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		customerID := int64(parseResponse(t, w).Data["customer"].(map[string]interface{})["customer_id"].(float64))

		w = suite.makeRequest("POST", "/api/v1/devices", map[string]interface{}{
			"device_type":   "laptop",
			"model":         "ThinkPad X1",
			"serial_number": "SN-TPX1-0002",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		deviceID := int64(parseResponse(t, w).Data["device"].(map[string]interface{})["device_id"].(float64))

		w = suite.makeRequest("POST", "/api/v1/repairs", map[string]interface{}{
			"customer_id":         customerID,
			"device_id":           deviceID,
			"problem_description": "battery drains fast",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		repairID = int64(parseResponse(t, w).Data["repair"].(map[string]interface{})["repair_id"].(float64))
	})

	t.Run("POST /services", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/services", map[string]interface{}{
			"description": "Battery replacement",
			"charge":      49.50,
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		serviceID = int64(parseResponse(t, w).Data["service"].(map[string]interface{})["service_id"].(float64))
	})

	t.Run("POST /parts", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"part_number":       "BAT-UNI-3000",
			"description":       "3000mAh battery",
			"quantity_in_stock": 15,
			"cost":              12.80,
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		partID = int64(parseResponse(t, w).Data["part"].(map[string]interface{})["part_id"].(float64))
	})

	t.Run("POST /parts duplicate part number", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/parts", map[string]interface{}{
			"part_number": "BAT-UNI-3000",
			"description": "another battery",
		}, token)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PART_NUMBER_EXISTS")
	})

	t.Run("POST /services/:id/parts", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/services/%d/parts", serviceID), map[string]interface{}{
			"part_id": partID,
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		sp := parseResponse(t, w).Data["service_part"].(map[string]interface{})
		assert.Equal(t, float64(1), sp["quantity_required"])
	})

	t.Run("GET /services/:id/parts", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/services/%d/parts", serviceID), nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		parts := parseResponse(t, w).Data["parts"].([]interface{})
		require.Len(t, parts, 1)
	})

	t.Run("POST /repairs/:id/services", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/repairs/%d/services", repairID), map[string]interface{}{
			"service_id": serviceID,
		}, token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("GET /repairs/:id/services", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/repairs/%d/services", repairID), nil, token)

		require.Equal(t, http.StatusOK, w.Code)
		services := parseResponse(t, w).Data["services"].([]interface{})
		require.Len(t, services, 1)
		performed := services[0].(map[string]interface{})
		assert.Equal(t, "Battery replacement", performed["service"].(map[string]interface{})["description"])
	})
}

func TestFlow4_DashboardAndAdmin(t *testing.T) {
	suite := setupTestSuite(t)
	adminToken := suite.login(t, "admin", "admin123")
	staffToken := suite.login(t, "frontdesk", "staff123")

	t.Run("Setup: one customer, one device, two repairs", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/customers", map[string]interface{}{
			"name":  "Maria Lopez",
			"phone": "555-3456",
		}, staffToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		customerID := int64(parseResponse(t, w).Data["customer"].(map[string]interface{})["customer_id"].(float64))

		w = suite.makeRequest("POST", "/api/v1/devices", map[string]interface{}{
			"device_type":   "tablet",
			"model":         "Galaxy Tab S8",
			"serial_number": "SN-GTS8-0003",
		}, staffToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		deviceID := int64(parseResponse(t, w).Data["device"].(map[string]interface{})["device_id"].(float64))

		var repairID int64
		for _, problem := range []string{"will not boot", "flickering display"} {
			w = suite.makeRequest("POST", "/api/v1/repairs", map[string]interface{}{
				"customer_id":         customerID,
				"device_id":           deviceID,
				"problem_description": problem,
			}, staffToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			repairID = int64(parseResponse(t, w).Data["repair"].(map[string]interface{})["repair_id"].(float64))
		}

		w = suite.makeRequest("PATCH", fmt.Sprintf("/api/v1/repairs/%d/status", repairID), map[string]interface{}{
			"status": "completed",
		}, staffToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET /dashboard", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/dashboard", nil, staffToken)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		stats := parseResponse(t, w).Data
		assert.Equal(t, float64(1), stats["total_customers"])
		assert.Equal(t, float64(1), stats["total_devices"])
		assert.Equal(t, float64(1), stats["pending_repairs"])
		assert.Equal(t, float64(1), stats["completed_repairs"])
		assert.Len(t, stats["recent_repairs"].([]interface{}), 2)
	})

	t.Run("POST /users as staff is forbidden", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/users", map[string]interface{}{
			"username": "intruder",
			"password": "secret123",
		}, staffToken)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("POST /users as admin", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/users", map[string]interface{}{
			"username": "newhire",
			"password": "secret123",
		}, adminToken)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		user := parseResponse(t, w).Data["user"].(map[string]interface{})
		assert.Equal(t, "staff", user["role"])

		suite.login(t, "newhire", "secret123")
	})

	t.Run("POST /users duplicate username", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/users", map[string]interface{}{
			"username": "newhire",
			"password": "secret123",
		}, adminToken)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "USERNAME_EXISTS")
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
