package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"team-management-backend/internal/config"
	"team-management-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ExternalDatabaseEnv points the integration tests at an existing Postgres
// instead of starting a container.
const ExternalDatabaseEnv = "TEST_DATABASE_URL"

const (
	pgUser     = "teams"
	pgPassword = "teams"
	pgDatabase = "teams_test"
)

// sharedPostgres is started once per test binary and reused by every suite
var sharedPostgres struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

// BaseTestSuite gives integration suites a migrated database that is
// truncated before and after every test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite returns a suite bound to the shared database, starting it on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedPostgres.once.Do(func() { sharedPostgres.err = startSharedPostgres() })
	if sharedPostgres.err != nil {
		t.Fatalf("failed to initialize shared test database: %v", sharedPostgres.err)
	}
	return &BaseTestSuite{
		DB:     sharedPostgres.db,
		Config: sharedPostgres.cfg,
	}
}

// CleanupSharedContainer closes the shared connection and removes the container.
// Call it from TestMain once every suite has run.
func CleanupSharedContainer() {
	if sharedPostgres.db != nil {
		if sqlDB, err := sharedPostgres.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedPostgres.db = nil
	}
	if sharedPostgres.pool == nil || sharedPostgres.resource == nil {
		return
	}
	if err := sharedPostgres.pool.Purge(sharedPostgres.resource); err != nil {
		logrus.Warnf("could not purge postgres container %s: %v", sharedPostgres.resource.Container.Name, err)
	}
	sharedPostgres.resource = nil
	sharedPostgres.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every migrated table in one statement so foreign keys never block it
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := make([]string, 0, len(database.Models()))
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: s.DB}
		if err := stmt.Parse(model); err != nil {
			logrus.Warnf("parse %T: %v", model, err)
			continue
		}
		if s.DB.Migrator().HasTable(stmt.Schema.Table) {
			tables = append(tables, quoteTable(stmt.Schema))
		}
	}
	if len(tables) == 0 {
		return
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(tables, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		logrus.Warnf("truncate test tables: %v", err)
	}
}

func quoteTable(sch *schema.Schema) string {
	return `"` + sch.Table + `"`
}

func startSharedPostgres() error {
	if dsn := os.Getenv(ExternalDatabaseEnv); dsn != "" {
		return connectShared(dsn, pgDatabase)
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPostgres.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedPostgres.resource = resource
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return pingPostgres(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}
	return connectShared(dsn, pgDatabase)
}

// pingPostgres checks readiness over database/sql before GORM runs migrations
func pingPostgres(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

func connectShared(dsn, dbName string) error {
	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	sharedPostgres.db = db
	sharedPostgres.cfg = &config.Config{
		Environment:      "test",
		Port:             "7008",
		LogLevel:         "debug",
		DatabaseURL:      dsn,
		DatabaseName:     dbName,
		IdentityProvider: config.IdentityProviderNone,
	}
	logrus.Infof("integration database ready: %s", dbName)
	return nil
}
