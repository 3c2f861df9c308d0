package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"lms/config"
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"
	courseRoutes "lms/routers/courseRoutes"
	"lms/security"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app          *fiber.App
	adminToken   string
	learnerToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
	))

	cfg := &config.Config{JWTKey: "test-secret", AccessTokenMinutes: 30}
	users := repository.NewUserRepository(db)
	courses := repository.NewCourseRepository(db)
	modules := repository.NewModuleRepository(db)
	lessons := repository.NewLessonRepository(db)

	admin := &models.User{Email: "admin@test.test", Name: "Admin", Role: models.RoleAdmin}
	require.NoError(t, users.Create(admin))
	learner := &models.User{Email: "learner@test.test", Name: "Learner", Role: models.RoleLearner}
	require.NoError(t, users.Create(learner))

	adminToken, err := security.GenerateToken(cfg.JWTKey, time.Hour, admin.ID, admin.Email)
	require.NoError(t, err)
	learnerToken, err := security.GenerateToken(cfg.JWTKey, time.Hour, learner.ID, learner.Email)
	require.NoError(t, err)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, controllers.New(courses, modules, lessons), middleware.NewAuth(users, cfg))

	return &testServer{app: app, adminToken: adminToken, learnerToken: learnerToken}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func (s *testServer) createCourse(t *testing.T, slug string) courseModels.Course {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/v1/admin/courses", s.adminToken, fiber.Map{
		"slug": slug, "title": "Course " + slug,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var course courseModels.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	return course
}

func (s *testServer) createModule(t *testing.T, courseID uuid.UUID, title string) courseModels.Module {
	t.Helper()
	resp, env := s.do(t, http.MethodPost, "/v1/admin/courses/"+courseID.String()+"/modules", s.adminToken, fiber.Map{
		"title": title,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var module courseModels.Module
	require.NoError(t, json.Unmarshal(env.Data, &module))
	return module
}

func TestAdminCourseCRUDRequiresAdmin(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodPost, "/v1/admin/courses", "", fiber.Map{"slug": "intro-go", "title": "Intro"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/v1/admin/courses", s.learnerToken, fiber.Map{"slug": "intro-go", "title": "Intro"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/v1/admin/courses", s.adminToken, fiber.Map{"slug": "intro-go", "title": "Intro"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAdminCreateCourseDuplicateSlug(t *testing.T) {
	s := newTestServer(t)
	s.createCourse(t, "intro-go")

	resp, _ := s.do(t, http.MethodPost, "/v1/admin/courses", s.adminToken, fiber.Map{
		"slug": "intro-go", "title": "Another",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAdminUpdateCoursePatchSemantics(t *testing.T) {
	s := newTestServer(t)
	course := s.createCourse(t, "intro-go")

	resp, env := s.do(t, http.MethodPatch, "/v1/admin/courses/"+course.ID.String(), s.adminToken, fiber.Map{
		"description": "Learn Go from scratch",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated courseModels.Course
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Learn Go from scratch", updated.Description)
	// omitted fields stay untouched
	assert.Equal(t, course.Slug, updated.Slug)
	assert.Equal(t, course.Title, updated.Title)
	assert.Equal(t, course.Locale, updated.Locale)
}

func TestAdminDeleteCourse(t *testing.T) {
	s := newTestServer(t)
	course := s.createCourse(t, "intro-go")
	module := s.createModule(t, course.ID, "Basics")

	resp, _ := s.do(t, http.MethodDelete, "/v1/admin/courses/"+course.ID.String(), s.adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/v1/admin/courses/"+course.ID.String(), s.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// the module went with it
	resp, _ = s.do(t, http.MethodPatch, "/v1/admin/modules/"+module.ID.String(), s.adminToken, fiber.Map{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/v1/admin/courses/"+uuid.NewString(), s.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminModulesAppendOrder(t *testing.T) {
	s := newTestServer(t)
	course := s.createCourse(t, "intro-go")

	first := s.createModule(t, course.ID, "Basics")
	assert.Equal(t, 1, first.OrderIndex)

	second := s.createModule(t, course.ID, "Structs")
	assert.Equal(t, 2, second.OrderIndex)

	resp, _ := s.do(t, http.MethodPost, "/v1/admin/courses/"+course.ID.String()+"/modules", s.adminToken, fiber.Map{
		"title": "Clash", "order_index": 1,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPost, "/v1/admin/courses/"+uuid.NewString()+"/modules", s.adminToken, fiber.Map{
		"title": "Orphan",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicCatalogShowsPublishedOnly(t *testing.T) {
	s := newTestServer(t)

	published := s.createCourse(t, "published-course")
	s.createCourse(t, "draft-course")

	module := s.createModule(t, published.ID, "Basics")

	resp, _ := s.do(t, http.MethodPost, "/v1/admin/modules/"+module.ID.String()+"/lessons", s.adminToken, fiber.Map{
		"slug": "hello", "title": "Hello World", "content_type": "video",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = s.do(t, http.MethodPost, "/v1/admin/modules/"+module.ID.String()+"/lessons", s.adminToken, fiber.Map{
		"slug": "draft-lesson", "title": "Draft Lesson",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// publish the course and the first lesson only
	resp, _ = s.do(t, http.MethodPost, "/v1/admin/courses/"+published.ID.String()+"/publish", s.adminToken, fiber.Map{"published": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := s.do(t, http.MethodGet, "/v1/admin/modules/"+module.ID.String()+"/lessons", s.adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []courseModels.Lesson
	require.NoError(t, json.Unmarshal(env.Data, &all))
	require.Len(t, all, 2)
	firstLesson := all[0]

	resp, _ = s.do(t, http.MethodPost, "/v1/admin/lessons/"+firstLesson.ID.String()+"/publish", s.adminToken, fiber.Map{"published": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// anonymous catalog: one course
	resp, env = s.do(t, http.MethodGet, "/v1/courses", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listData struct {
		Courses []courseModels.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listData))
	require.Len(t, listData.Courses, 1)
	assert.Equal(t, "published-course", listData.Courses[0].Slug)

	// course detail: only the published lesson shows
	resp, env = s.do(t, http.MethodGet, "/v1/courses/published-course", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail struct {
		Course  courseModels.Course `json:"course"`
		Modules []struct {
			courseModels.Module
			Lessons []courseModels.Lesson `json:"lessons"`
		} `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Modules, 1)
	require.Len(t, detail.Modules[0].Lessons, 1)
	assert.Equal(t, "hello", detail.Modules[0].Lessons[0].Slug)

	// drafts stay invisible
	resp, _ = s.do(t, http.MethodGet, "/v1/courses/draft-course", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminLessonValidation(t *testing.T) {
	s := newTestServer(t)
	course := s.createCourse(t, "intro-go")
	module := s.createModule(t, course.ID, "Basics")

	resp, _ := s.do(t, http.MethodPost, "/v1/admin/modules/"+module.ID.String()+"/lessons", s.adminToken, fiber.Map{
		"slug": "Bad Slug!", "title": "X", "content_type": "podcast",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
