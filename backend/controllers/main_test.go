package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"project/backend/config"
	"project/backend/models"
	"project/backend/routes"
	"project/backend/utils"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	app   *fiber.App
	db    *gorm.DB
	cfg   *config.Config
	store *utils.MemoryStorage
)

const testPassword = "password123"

func TestMain(m *testing.M) {
	cfg = &config.Config{
		DBHost:     getTestEnv("TEST_DB_HOST", "localhost"),
		DBPort:     getTestEnv("TEST_DB_PORT", "5432"),
		DBUser:     getTestEnv("TEST_DB_USER", "postgres"),
		DBPassword: getTestEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:     getTestEnv("TEST_DB_NAME", "diu_lms_test"),
		DBSSLMode:  "disable",
		JWTSecret:  "testsecret",
	}

	var err error
	db, err = utils.InitDB(cfg)
	if err != nil {
		fmt.Println("skipping controller tests: test database unavailable:", err)
		os.Exit(0)
	}

	dropTables()
	if err := utils.MigrateDB(db); err != nil {
		panic(err)
	}

	store = utils.NewMemoryStorage()
	app = fiber.New()
	routes.SetupRoutes(app, db, cfg, store)

	code := m.Run()

	dropTables()
	os.Exit(code)
}

func getTestEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func dropTables() {
	db.Migrator().DropTable(
		&models.Enrollment{},
		&models.StudyTool{},
		&models.Slide{},
		&models.Video{},
		&models.Topic{},
		&models.Course{},
		&models.Semester{},
		&models.StudentUser{},
		&models.AdminUser{},
	)
}

// createAdmin сажает администратора прямо в базу
func createAdmin(t *testing.T, email, role, department string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	user := &models.AdminUser{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   department,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

// login выполняет вход и возвращает cookie admin_token
func login(t *testing.T, email string) *http.Cookie {
	t.Helper()

	resp := doJSON(t, "POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": testPassword,
	}, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	for _, ck := range resp.Cookies() {
		if ck.Name == utils.AuthCookieName {
			return ck
		}
	}
	t.Fatal("no admin_token cookie in login response")
	return nil
}

// doJSON шлет JSON запрос через app.Test
func doJSON(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, int(10*time.Second/time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

// decodeData разбирает конверт ответа и возвращает поле data
func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	data, _ := result["data"].(map[string]interface{})
	return data
}

// decodeDataList разбирает конверт ответа со списком в data
func decodeDataList(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	list, _ := result["data"].([]interface{})
	return list
}

// createSemester сажает семестр прямо в базу
func createSemester(t *testing.T, title, section string, active bool) *models.Semester {
	t.Helper()

	semester := &models.Semester{Title: title, Section: section, IsActive: active}
	if err := db.Create(semester).Error; err != nil {
		t.Fatal(err)
	}
	return semester
}

// createCourse сажает курс прямо в базу
func createCourse(t *testing.T, title, code string, semesterID uint) *models.Course {
	t.Helper()

	course := &models.Course{Title: title, CourseCode: code, SemesterID: semesterID}
	if err := db.Create(course).Error; err != nil {
		t.Fatal(err)
	}
	return course
}

// createStudent сажает студента прямо в базу
func createStudent(t *testing.T, userID, section string) *models.StudentUser {
	t.Helper()

	student := &models.StudentUser{UserID: userID, Section: section, Batch: "63"}
	if err := db.Create(student).Error; err != nil {
		t.Fatal(err)
	}
	return student
}
