package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yellowboat/backoffice/database"
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.RateLimit.MaxAttempts = 5
	cfg.RateLimit.WindowSecs = 300
	cfg.Cron.Key = "cron-secret"
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@example.com"
	cfg.Admin.Password = "admin-pass-123"
	return cfg
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	cfg := testConfig()
	require.NoError(t, seedFirstAdmin(db, cfg))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return SetupRouter(ctx, cfg, db), db, cfg
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

func loginAs(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, body := doRequest(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "ok")
}

func TestLoginAndMe(t *testing.T) {
	router, _, _ := newTestServer(t)

	token := loginAs(t, router, "admin", "admin-pass-123")

	rec, body := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `"username":"admin"`)
	assert.NotContains(t, body, "password", "password data must never leak")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffRoutesRequireAuth(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/customers", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBrandCRUDOverHTTP(t *testing.T) {
	router, _, _ := newTestServer(t)
	token := loginAs(t, router, "admin", "admin-pass-123")

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/brands", token, map[string]string{
		"name": "Leadership Line",
		"slug": "leadership-line",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	var brand models.Brand
	require.NoError(t, json.Unmarshal([]byte(body), &brand))
	require.NotEmpty(t, brand.ID)

	rec, body = doRequest(t, router, http.MethodGet, "/api/v1/brands/"+brand.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Leadership Line")
}

func TestTrainerRoleCannotReachStaffRoutes(t *testing.T) {
	router, db, _ := newTestServer(t)
	adminToken := loginAs(t, router, "admin", "admin-pass-123")

	// Admin creates a trainer account.
	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/users", adminToken, map[string]string{
		"username":   "becker",
		"email":      "becker@example.com",
		"password":   "trainer-pass-1",
		"role":       "trainer",
		"first_name": "Jan",
		"last_name":  "Becker",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	trainerToken := loginAs(t, router, "becker", "trainer-pass-1")

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/customers", trainerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/users", trainerToken, map[string]string{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTrainerDashboard(t *testing.T) {
	router, db, _ := newTestServer(t)
	adminToken := loginAs(t, router, "admin", "admin-pass-123")

	// Existing trainer profile gets linked when the matching account is created.
	require.NoError(t, db.Create(&models.Trainer{
		FirstName: "Jan",
		LastName:  "Becker",
		Email:     "becker@example.com",
	}).Error)

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/users", adminToken, map[string]string{
		"username":   "becker",
		"email":      "becker@example.com",
		"password":   "trainer-pass-1",
		"role":       "trainer",
		"first_name": "Jan",
		"last_name":  "Becker",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	trainerToken := loginAs(t, router, "becker", "trainer-pass-1")

	rec, body = doRequest(t, router, http.MethodGet, "/api/v1/portal/dashboard", trainerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, body)
	assert.Contains(t, body, "open_trainings")
	assert.Contains(t, body, "pending_applications")
	assert.Contains(t, body, `"last_name":"Becker"`)
}

func TestPublicTrainerRegistration(t *testing.T) {
	router, db, _ := newTestServer(t)

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/registrations", "", map[string]interface{}{
		"email":      "nina.vogel@example.com",
		"password":   "trainerpass1",
		"first_name": "Nina",
		"last_name":  "Vogel",
	})
	require.Equal(t, http.StatusCreated, rec.Code, body)

	var reg models.TrainerRegistration
	require.NoError(t, db.First(&reg, "email = ?", "nina.vogel@example.com").Error)
	assert.Equal(t, models.RegistrationStatusPending, reg.Status)
}

func TestValidationErrorsReturnErrorShape(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, body := doRequest(t, router, http.MethodPost, "/api/v1/registrations", "", map[string]interface{}{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "",
		"last_name":  "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body, "VALIDATION_FAILED")
}

func TestCronEndpointRequiresKey(t *testing.T) {
	router, _, cfg := newTestServer(t)

	rec, _ := doRequest(t, router, http.MethodPost, "/cron/send-training-reminders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/cron/send-training-reminders", nil)
	req.Header.Set("X-Cron-Key", cfg.Cron.Key)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), "sent")
}
