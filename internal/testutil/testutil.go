package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/community-portal/internal/api"
	"github.com/dom/community-portal/internal/config"
	"github.com/dom/community-portal/internal/domain"
	"github.com/dom/community-portal/internal/repository"
	repoPostgres "github.com/dom/community-portal/internal/repository/postgres"
	"github.com/dom/community-portal/internal/service"
	"github.com/dom/community-portal/internal/session"
	"github.com/dom/community-portal/internal/web"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_community_portal"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Appointment{},
		&domain.Review{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"appointments",
		"reviews",
		"users",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows for the given model
func (tdb *TestDB) CountRows(t *testing.T, model any) int64 {
	t.Helper()

	var count int64
	if err := tdb.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	return &config.Config{
		Port:          "0", // Random port
		Environment:   "test",
		SessionSecret: "test-session-secret-for-testing-only",
		SessionTTL:    time.Hour,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Sessions *session.Manager
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()

	repos := repoPostgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	render, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	router := api.NewRouter(services, sessions, render)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Sessions: sessions,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// URL returns the full URL for a given path
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// NewClient returns a client with a cookie jar, emulating one browser.
func (ts *TestServer) NewClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// NewNoRedirectClient returns a cookie-jar client that does not follow
// redirects, for asserting on Location headers.
func (ts *TestServer) NewNoRedirectClient(t *testing.T) *http.Client {
	t.Helper()

	client := ts.NewClient(t)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return client
}
