package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port      string
	APIPrefix string
	LogLevel  string

	StorageBackend string
	AutoMigrate    bool

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers int
	RequestTimeout  time.Duration
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"port":              "9446",
	"api_prefix":        "/api/v1",
	"log_level":         "info",
	"storage_backend":   BackendPostgres,
	"auto_migrate":      "false",
	"postgres_address":  "localhost",
	"postgres_port":     "5433",
	"postgres_db":       "postgres",
	"postgres_username": "postgres",
	"postgres_password": "testpassword",
	"operator_workers":  "4",
	"request_timeout":   "10s",
}

// ProcessEnvironmentVariables layers defaults, an optional YAML file named by
// CONFIG_FILE, and the process environment (after loading any .env file).
func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return fromKoanf(k)
}

// envKey maps known environment variables to config keys and drops the rest.
func envKey(name string) string {
	key := strings.ToLower(name)
	if _, ok := defaults[key]; !ok {
		return ""
	}
	return key
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	timeout, err := time.ParseDuration(k.String("request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid request_timeout %q: %w", k.String("request_timeout"), err)
	}

	autoMigrate, err := strconv.ParseBool(k.String("auto_migrate"))
	if err != nil {
		return nil, fmt.Errorf("invalid auto_migrate %q: %w", k.String("auto_migrate"), err)
	}

	workers, err := strconv.Atoi(k.String("operator_workers"))
	if err != nil {
		return nil, fmt.Errorf("invalid operator_workers %q: %w", k.String("operator_workers"), err)
	}

	env := Config{
		Port:             k.String("port"),
		APIPrefix:        strings.TrimRight(k.String("api_prefix"), "/"),
		LogLevel:         k.String("log_level"),
		StorageBackend:   strings.ToLower(k.String("storage_backend")),
		AutoMigrate:      autoMigrate,
		PostgresAddress:  k.String("postgres_address"),
		PostgresPort:     k.String("postgres_port"),
		PostgresDB:       k.String("postgres_db"),
		PostgresUsername: k.String("postgres_username"),
		PostgresPassword: k.String("postgres_password"),
		OperatorWorkers:  workers,
		RequestTimeout:   timeout,
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StorageBackend {
	case BackendPostgres, BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of [%s %s]", c.StorageBackend, BackendPostgres, BackendMemory))
	}

	if c.APIPrefix != "" && !strings.HasPrefix(c.APIPrefix, "/") {
		problems = append(problems, fmt.Sprintf("invalid api prefix '%s': must start with /", c.APIPrefix))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must be positive", c.RequestTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresURL is the connection string shared by the server and the migration script.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" + c.PostgresPassword + "@" +
		c.PostgresAddress + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
