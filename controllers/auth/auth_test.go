package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"lms/config"
	authController "lms/controllers/auth"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	authRoutes "lms/routers/authRoutes"
	"lms/utils"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*fiber.App, *repository.UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTKey: "test-secret", AccessTokenMinutes: 30}
	users := repository.NewUserRepository(db)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(users, cfg, utils.NewEmailService(cfg)), middleware.NewAuth(users, cfg))
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestRegister(t *testing.T) {
	app, users := newTestServer(t)

	resp, env := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name":     "Jane Doe",
		"email":    "Jane@Test.test",
		"password": "s3cret-pwd",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	// registration always produces a learner with a lowercased email
	user, err := users.GetByEmail("jane@test.test")
	require.NoError(t, err)
	assert.Equal(t, models.RoleLearner, user.Role)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret-pwd", *user.PasswordHash)

	// the hash never leaves the API
	assert.NotContains(t, string(env.Data), *user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name": "Jane", "email": "jane@test.test", "password": "s3cret-pwd",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name": "Impostor", "email": "JANE@test.test", "password": "other-pwd1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name": "J", "email": "not-an-email", "password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginAndMe(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name": "Jane", "email": "jane@test.test", "password": "s3cret-pwd",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := postJSON(t, app, "/v1/auth/login", fiber.Map{
		"email": "jane@test.test", "password": "s3cret-pwd",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginData struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.Token)
	assert.Equal(t, "jane@test.test", loginData.User.Email)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginData.Token)
	meResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)

	// no token, no identity
	req = httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	meResp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := postJSON(t, app, "/v1/auth/register", fiber.Map{
		"name": "Jane", "email": "jane@test.test", "password": "s3cret-pwd",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = postJSON(t, app, "/v1/auth/login", fiber.Map{
		"email": "jane@test.test", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = postJSON(t, app, "/v1/auth/login", fiber.Map{
		"email": "nobody@test.test", "password": "s3cret-pwd",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginPasswordlessIdentity(t *testing.T) {
	app, users := newTestServer(t)

	// provisioned externally, no local password
	require.NoError(t, users.Create(&models.User{Email: "sso@test.test", Name: "SSO User"}))

	resp, _ := postJSON(t, app, "/v1/auth/login", fiber.Map{
		"email": "sso@test.test", "password": "anything-goes",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
