package config

import (
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

var codePrefix = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Admin       AdminConfig
	MercadoPago MercadoPagoConfig
	Booking     BookingConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

// AdminConfig holds the single dashboard account. PasswordHash is a bcrypt hash
// (see `tripctl hash-password`).
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

type MercadoPagoConfig struct {
	AccessToken         string        `envconfig:"MP_ACCESS_TOKEN"`
	PublicBaseURL       string        `envconfig:"MP_PUBLIC_BASE_URL" default:"http://localhost:8080"`
	StatementDescriptor string        `envconfig:"MP_STATEMENT_DESCRIPTOR" default:"TRIP"`
	Currency            string        `envconfig:"MP_CURRENCY" default:"ARS"`
	Timeout             time.Duration `envconfig:"MP_TIMEOUT" default:"10s"`
}

// Configured reports whether the gateway can be called at all.
func (c MercadoPagoConfig) Configured() bool {
	return c.AccessToken != ""
}

type BookingConfig struct {
	SeatPrice  decimal.Decimal `envconfig:"BOOKING_SEAT_PRICE" default:"150000"`
	TripName   string          `envconfig:"BOOKING_TRIP_NAME" default:"Group trip"`
	CodePrefix string          `envconfig:"BOOKING_CODE_PREFIX" default:"TRIP"`
	MaxSeats   int             `envconfig:"BOOKING_MAX_SEATS" default:"20"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	LockTTL  time.Duration `envconfig:"REDIS_LOCK_TTL" default:"30s"`
}

type KafkaConfig struct {
	Enabled      bool          `envconfig:"KAFKA_ENABLED" default:"false"`
	Brokers      []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"KAFKA_TOPIC" default:"trip.payments.recorded"`
	PollInterval time.Duration `envconfig:"KAFKA_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"KAFKA_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"KAFKA_MAX_ATTEMPTS" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("JWT_DURATION: %w", err)
	}
	if !c.Booking.SeatPrice.IsPositive() {
		return fmt.Errorf("BOOKING_SEAT_PRICE must be positive, got %s", c.Booking.SeatPrice)
	}
	if c.Booking.MaxSeats < 1 {
		return fmt.Errorf("BOOKING_MAX_SEATS must be at least 1, got %d", c.Booking.MaxSeats)
	}
	if !codePrefix.MatchString(c.Booking.CodePrefix) {
		return fmt.Errorf("BOOKING_CODE_PREFIX must be 2-10 letters or digits, got %q", c.Booking.CodePrefix)
	}
	u, err := url.Parse(c.MercadoPago.PublicBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("MP_PUBLIC_BASE_URL must be an absolute http(s) URL, got %q", c.MercadoPago.PublicBaseURL)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}
	return nil
}

// LoadDBConfig reads only the database settings, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		MercadoPago: MercadoPagoConfig{
			PublicBaseURL:       "https://trip.example.com",
			StatementDescriptor: "TRIP",
			Currency:            "ARS",
			Timeout:             5 * time.Second,
		},
		Booking: BookingConfig{
			SeatPrice:  decimal.NewFromInt(500),
			TripName:   "Test trip",
			CodePrefix: "TRIP",
			MaxSeats:   20,
		},
		Redis: RedisConfig{
			LockTTL: 5 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic:        "trip.payments.recorded",
			PollInterval: 100 * time.Millisecond,
			BatchSize:    10,
			MaxAttempts:  3,
		},
	}
}
