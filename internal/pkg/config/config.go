package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Session  SessionConfig
	Calendar CalendarConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	TxMaxRetries    int           `envconfig:"DB_TX_MAX_RETRIES" default:"3"`
	TxRetryBase     time.Duration `envconfig:"DB_TX_RETRY_BASE" default:"100ms"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// Tokens are issued by the external session service; this service only verifies them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string `envconfig:"JWT_ISSUER" default:""`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SessionConfig struct {
	CookieName string `envconfig:"SESSION_COOKIE_NAME" default:"access_token"`
}

type CalendarConfig struct {
	TimeZone             string `envconfig:"CALENDAR_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	EnforceBusinessHours bool   `envconfig:"BOOKING_ENFORCE_BUSINESS_HOURS" default:"true"`
}

// BuildDSN escapes credentials, so passwords may contain URL metacharacters.
func (c *DBConfig) BuildDSN() string {
	q := url.Values{"sslmode": []string{c.SSLMode}}
	if c.TimeZone != "" {
		q.Set("timezone", c.TimeZone)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c CalendarConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// LoadConfig reads an optional dotenv file (ENV_FILE, default ".env") and then
// the process environment. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDBConfig reads only the database section, for tools that do not run the server.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := load(&cfg); err != nil {
		return DBConfig{}, err
	}
	return cfg, nil
}

func load(spec any) error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	if err := envconfig.Process("", spec); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		DB: DBConfig{
			Host:            "localhost",
			Port:            "15433", // Test DB port
			User:            "test",
			Password:        "test",
			DBName:          "test_db",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxConns:        10,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			TxMaxRetries:    3,
			TxRetryBase:     10 * time.Millisecond,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-civic-hub",
			Duration: "1h",
		},
		Session: SessionConfig{
			CookieName: "access_token",
		},
		Calendar: CalendarConfig{
			TimeZone:             "UTC",
			EnforceBusinessHours: true,
		},
	}
}
