//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver for wait.ForSQL
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"trip-booking/cmd/bootstrap"
	"trip-booking/cmd/bootstrap/components"
	"trip-booking/internal/infra/db"
	"trip-booking/internal/infra/lock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/password"
	"trip-booking/internal/usecase/commands"
	"trip-booking/tests/common/dbtest"
	"trip-booking/tests/common/gatewaytest"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin-password"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgImage    = "postgres:17"
)

// One container per test binary; each suite gets its own database in it.
var (
	pgOnce   sync.Once
	pgServer postgresServer
	pgErr    error
)

type postgresServer struct {
	host string
	port nat.Port
}

func (p postgresServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, p.host, p.port.Port(), database)
}

type e2eEnvironment struct {
	pool    *pgxpool.Pool
	router  *gin.Engine
	cfg     config.Config
	gateway *gatewaytest.FakeGateway
}

func setupE2EEnvironment(t *testing.T) e2eEnvironment {
	gin.SetMode(gin.TestMode)

	server := sharedPostgres(t)
	dbConfig := createDatabase(t, server)
	pool := migrateAndConnect(t, dbConfig)

	gateway := gatewaytest.NewFakeGateway()
	router, cfg, app := buildE2EApp(t, pool, dbConfig, gateway)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return e2eEnvironment{pool: pool, router: router, cfg: cfg, gateway: gateway}
}

func sharedPostgres(t *testing.T) postgresServer {
	t.Helper()
	pgOnce.Do(func() {
		pgServer, pgErr = startPostgres()
	})
	require.NoError(t, pgErr, "failed to start PostgreSQL container")
	return pgServer
}

// startPostgres runs a throwaway server tuned for speed over durability.
func startPostgres() (postgresServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return postgresServer{host: host, port: port}.dsn("postgres")
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "trip-booking-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return postgresServer{}, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return postgresServer{}, err
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return postgresServer{}, err
	}
	return postgresServer{host: host, port: port}, nil
}

func createDatabase(t *testing.T, server postgresServer) config.DBConfig {
	t.Helper()

	name := "trip_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := server.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// CREATE DATABASE fails while another session copies template1.
	require.Eventually(t, func() bool {
		_, execErr := admin.Exec(ctx, "CREATE DATABASE "+name)
		return execErr == nil
	}, 10*time.Second, 500*time.Millisecond, "create database %s", name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		conn, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			return
		}
		defer conn.Close()
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     server.host,
		Port:     server.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 30,
	}
}

func migrateAndConnect(t *testing.T, dbConfig config.DBConfig) *pgxpool.Pool {
	t.Helper()

	require.NoError(t, db.Migrate(dbConfig.BuildDSN()), "database migration failed")

	pool, cleanup, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(cleanup)
	return pool
}

// buildE2EApp assembles the HTTP graph with the gateway and delivery lock
// replaced by test doubles.
func buildE2EApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig, gateway *gatewaytest.FakeGateway) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfig := createTestConfig(t, dbConfig)
	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	testDoublesModule := fx.Module("testdoubles",
		fx.Provide(
			func() commands.PaymentGateway { return gateway },
			func() commands.DeliveryLock { return lock.Noop{} },
		),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		testDoublesModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "fx app produced no router")

	return router, cfg, app
}

func createTestConfig(t *testing.T, dbConfig config.DBConfig) config.Config {
	hash, err := password.HashPassword(AdminPassword)
	require.NoError(t, err)

	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Admin = config.AdminConfig{Username: AdminUsername, PasswordHash: hash}
	return testConfig
}

// SharedSuite gives every e2e suite a router over a fresh database. Each
// subtest starts from empty tables and an empty fake gateway.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Gateway *gatewaytest.FakeGateway
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	env := setupE2EEnvironment(t)
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.Gateway = env.gateway
	require.NotNil(t, s.DB, "database setup failed")
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "failed to reset database state")
	s.Gateway.Reset()
}
