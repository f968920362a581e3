package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/database"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/app"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer runs the fully wired application against a real postgres
// database. Tests share one instance; isolation comes from unique
// emails and titles, not per-test transactions, so t.Parallel is safe.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to TEST_DATABASE_URL, migrates the schema and
// starts an httptest server around the real router.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	cfg := testConfig(dsn)
	// Packages that read configuration lazily (jwt signing) need the
	// global set before the first request.
	config.AppConfig = cfg
	logger.Init("test")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect to test database (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get *sql.DB from GORM: %v", err)
	}

	router := app.SetupRouter(cfg, db, sqlDB)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func testConfig(dsn string) *config.Config {
	cfg := &config.Config{}
	cfg.Database.DSN = dsn
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.AccessTTLMinutes = 30
	cfg.JWT.RefreshTTLDays = 7
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = os.TempDir() + "/jobportal-test-uploads"
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxResumeSize = 5 * 1024 * 1024
	cfg.Upload.MaxImageSize = 2 * 1024 * 1024
	cfg.Upload.ResumeTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	cfg.Upload.ImageTypes = []string{"image/jpeg", "image/png", "image/webp"}
	cfg.Workers.JobExpiryIntervalMinutes = 60
	cfg.Workers.AlertDailySpec = "0 8 * * *"
	cfg.Workers.AlertWeeklySpec = "0 8 * * 1"
	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables wipes all domain tables. Called once at suite start so a
// failed previous run cannot poison this one.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	err := ts.DB.Exec(`TRUNCATE TABLE
		users, refresh_tokens, job_seeker_profiles, recruiter_profiles,
		companies, company_verifications, jobs, applications, saved_jobs,
		notifications, job_alerts, resumes, reviews
		RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the test server and
// returns the response plus its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}

// SendMultipart uploads one file under the given field name.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token, field, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("build multipart request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("send multipart request: %v", err)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}

// DecodeJSON unmarshals a response body string into out.
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("decode response %q: %v", body, err)
	}
}
