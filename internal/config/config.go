package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DynamoDB DynamoDBConfig
	Auth     AuthConfig
	Desk     DeskConfig
}

// Load reads the configuration from the environment (a .env file is loaded
// beforehand by the mains).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env       string `envconfig:"APP_ENV" default:"dev"`
	APIPort   string `envconfig:"API_PORT" default:"8080"`
	DeskPort  string `envconfig:"DESK_PORT" default:"8081"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, "dev")
}

// DynamoDBConfig is local-friendly: DynamoDB Local does not validate
// credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`

	OrdersTable    string `envconfig:"ORDERS_TABLE" default:"repair_orders"`
	TestsTable     string `envconfig:"ORDER_TESTS_TABLE" default:"order_tests"`
	PartsTable     string `envconfig:"ORDER_PARTS_TABLE" default:"order_parts"`
	PaymentsTable  string `envconfig:"PAYMENTS_TABLE" default:"payments"`
	WarehouseTable string `envconfig:"WAREHOUSE_TABLE" default:"warehouse_items"`
	CountersTable  string `envconfig:"COUNTERS_TABLE" default:"counters"`
}

// AuthConfig drives the bearer check of the repository service. With no secret
// the service trusts the tenant/user headers, which is only meant for local use.
type AuthConfig struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	JWTIssuer string `envconfig:"AUTH_JWT_ISSUER"`
}

func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

type DeskConfig struct {
	RepositoryURL  string        `envconfig:"DESK_REPOSITORY_URL" default:"http://localhost:8080/v1"`
	HTTPTimeout    time.Duration `envconfig:"DESK_HTTP_TIMEOUT" default:"15s"`
	SearchDebounce time.Duration `envconfig:"DESK_SEARCH_DEBOUNCE" default:"300ms"`
	SearchLimit    int           `envconfig:"DESK_SEARCH_LIMIT" default:"20"`
	SessionIdleTTL time.Duration `envconfig:"DESK_SESSION_IDLE_TTL" default:"2h"`
	SessionSweep   time.Duration `envconfig:"DESK_SESSION_SWEEP" default:"5m"`
}
